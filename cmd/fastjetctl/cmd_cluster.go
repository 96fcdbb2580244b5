package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/thcabral/fastjet/jetcluster"
	"github.com/thcabral/fastjet/jetcluster/fixture"
	"github.com/thcabral/fastjet/jetcluster/preprocess"
	"github.com/thcabral/fastjet/jetcluster/report"
)

var (
	clusterAlgorithm string
	clusterP         float64
	clusterR         float64
	clusterMMap      bool
	clusterCheck     bool
)

var algorithms = map[string]jetcluster.Algorithm{
	"kt":     jetcluster.Kt,
	"antikt": jetcluster.AntiKt,
	"ca":     jetcluster.CA,
	"genkt":  jetcluster.GenKt,
	"eekt":   jetcluster.EEKt,
	"durham": jetcluster.Durham,
}

var clusterCmd = &cobra.Command{
	Use:   "cluster <fixture>",
	Short: "run a reconstruction over a particle fixture and print its summary",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		alg, ok := algorithms[clusterAlgorithm]
		if !ok {
			return fmt.Errorf("unknown algorithm %q", clusterAlgorithm)
		}

		var particles []preprocess.PxPyPzE
		var err error
		if clusterMMap {
			particles, err = fixture.LoadMMap(args[0])
		} else {
			particles, err = fixture.Load(args[0])
		}
		if err != nil {
			return fmt.Errorf("loading fixture: %w", err)
		}

		jets := convertWithProgress(particles)

		var opts []jetcluster.Option[jetcluster.Jet]
		if cmd.Flags().Changed("p") {
			opts = append(opts, jetcluster.WithP[jetcluster.Jet](clusterP))
		}
		if cmd.Flags().Changed("r") {
			opts = append(opts, jetcluster.WithR[jetcluster.Jet](clusterR))
		}
		if clusterCheck {
			opts = append(opts, jetcluster.WithConsistencyCheck[jetcluster.Jet]())
		}

		var cs *jetcluster.ClusterSequence
		switch alg {
		case jetcluster.Kt, jetcluster.AntiKt, jetcluster.CA, jetcluster.GenKt:
			cs, err = jetcluster.TiledReconstruct(jets, alg, opts...)
		default:
			cs, err = jetcluster.EEReconstruct(jets, alg, opts...)
		}
		if err != nil {
			return fmt.Errorf("reconstruct: %w", err)
		}

		fmt.Println(report.Calculate(cs).String())
		return nil
	},
}

// convertWithProgress builds the engine's jet slice from loaded
// particles, reporting progress to stderr when it is a terminal.
func convertWithProgress(particles []preprocess.PxPyPzE) []jetcluster.Jet {
	var bar *progressbar.ProgressBar
	if isatty.IsTerminal(os.Stderr.Fd()) {
		bar = progressbar.NewOptions(len(particles),
			progressbar.OptionSetDescription("Converting particles"),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
	}

	jets := make([]jetcluster.Jet, len(particles))
	for i, p := range particles {
		jets[i] = preprocess.FromPxPyPzE(p, i)
		if bar != nil {
			bar.Add(1)
		}
	}
	return jets
}

func init() {
	clusterCmd.Flags().StringVar(&clusterAlgorithm, "algorithm", "antikt", "kt, antikt, ca, genkt, eekt, or durham")
	clusterCmd.Flags().Float64Var(&clusterP, "p", 0, "generalised-kT power (required for genkt, eekt)")
	clusterCmd.Flags().Float64Var(&clusterR, "r", 1.0, "jet radius")
	clusterCmd.Flags().BoolVar(&clusterMMap, "mmap", false, "load the fixture via mmap instead of the zstd stream format")
	clusterCmd.Flags().BoolVar(&clusterCheck, "check", false, "run CheckConsistency on the resulting sequence")
	rootCmd.AddCommand(clusterCmd)
}
