package main

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/spf13/cobra"
	"github.com/thcabral/fastjet/jetcluster"
)

var (
	benchPoints int
	benchR      float64
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "time a tiled and a plain reconstruction over synthetic particles",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		jets := generateSyntheticJets(benchPoints)

		start := time.Now()
		_, err := jetcluster.TiledReconstruct(jets, jetcluster.AntiKt, jetcluster.WithR[jetcluster.Jet](benchR))
		tiledDuration := time.Since(start)
		if err != nil {
			return fmt.Errorf("tiled reconstruct: %w", err)
		}

		start = time.Now()
		_, err = jetcluster.EEReconstruct(jets, jetcluster.Durham)
		plainDuration := time.Since(start)
		if err != nil {
			return fmt.Errorf("ee reconstruct: %w", err)
		}

		fmt.Printf("%d particles\n", benchPoints)
		fmt.Printf("tiled antikt R=%.2f: %v\n", benchR, tiledDuration)
		fmt.Printf("plain durham:       %v\n", plainDuration)
		return nil
	},
}

// generateSyntheticJets mirrors the teacher's generateRandomPoints: a
// deterministic seed so runs are comparable across machines.
func generateSyntheticJets(n int) []jetcluster.Jet {
	r := rand.New(rand.NewSource(42))
	jets := make([]jetcluster.Jet, n)
	for i := 0; i < n; i++ {
		pt := 1.0 + r.Float64()*100.0
		eta := -4.0 + r.Float64()*8.0
		phi := r.Float64() * 2 * math.Pi
		px := pt * math.Cos(phi)
		py := pt * math.Sin(phi)
		pz := pt * math.Sinh(eta)
		e := pt * math.Cosh(eta)
		jets[i] = jetcluster.NewJet(px, py, pz, e, i)
	}
	return jets
}

func init() {
	benchCmd.Flags().IntVar(&benchPoints, "points", 10000, "number of synthetic particles")
	benchCmd.Flags().Float64Var(&benchR, "r", 0.4, "jet radius for the tiled run")
	rootCmd.AddCommand(benchCmd)
}
