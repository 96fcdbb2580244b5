package main

import (
	"flag"
	"fmt"
	"math"
	"math/rand"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/thcabral/fastjet/jetcluster"
)

var (
	cpuprofile  = flag.String("cpuprofile", "", "write cpu profile to file")
	memprofile  = flag.String("memprofile", "", "write memory profile to file")
	heapprofile = flag.String("heapprofile", "", "write heap profile to file")
	numPoints   = flag.Int("points", 100000, "number of particles to generate")
	radius      = flag.Float64("r", 0.4, "jet radius for the tiled run")
	testall     = flag.Bool("testall", false, "run the full point-count battery")
)

// generateJets creates n synthetic particles within a realistic
// collider pt/eta range, using a deterministic seed for reproducibility.
func generateJets(n int) []jetcluster.Jet {
	source := rand.NewSource(42)
	r := rand.New(source)

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

func runSingleProfile(numPoints int, radius float64) {
	fmt.Printf("Profiling with %d particles, R=%.2f\n", numPoints, radius)

	jets := generateJets(numPoints)

	var memStatsBefore, memStatsAfter runtime.MemStats
	runtime.ReadMemStats(&memStatsBefore)

	start := time.Now()
	_, err := jetcluster.TiledReconstruct(jets, jetcluster.AntiKt, jetcluster.WithR[jetcluster.Jet](radius))
	tiledDuration := time.Since(start)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tiled reconstruct failed: %v\n", err)
		return
	}

	start = time.Now()
	_, err = jetcluster.EEReconstruct(jets, jetcluster.Durham)
	plainDuration := time.Since(start)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ee reconstruct failed: %v\n", err)
		return
	}

	runtime.ReadMemStats(&memStatsAfter)
	allocMB := float64(memStatsAfter.TotalAlloc-memStatsBefore.TotalAlloc) / 1024 / 1024

	fmt.Printf("tiled (antikt) completed in %v\n", tiledDuration)
	fmt.Printf("plain (durham) completed in %v\n", plainDuration)
	fmt.Printf("memory allocated: %.2f MB\n", allocMB)
	fmt.Printf("memory in use: %.2f MB\n", float64(memStatsAfter.Alloc)/1024/1024)
}

func runProfileBattery() {
	pointCounts := []int{1000, 10000, 50000, 100000, 500000}

	fmt.Println("Running reconstruction profile battery...")
	fmt.Println("===========================================")
	fmt.Printf("%-10s | %-12s | %-15s | %-15s | %-12s | %-10s\n",
		"Points", "Strategy", "Algorithm", "Duration", "Memory (MB)", "GC Runs")
	fmt.Println("-----------------------------------------------------------------------------")

	for _, points := range pointCounts {
		jets := generateJets(points)

		for _, run := range []struct {
			strategy, algorithm string
			fn                  func() error
		}{
			{"Tiled", "AntiKt", func() error {
				_, err := jetcluster.TiledReconstruct(jets, jetcluster.AntiKt, jetcluster.WithR[jetcluster.Jet](0.4))
				return err
			}},
			{"Plain", "Durham", func() error {
				_, err := jetcluster.EEReconstruct(jets, jetcluster.Durham)
				return err
			}},
		} {
			var memStatsBefore, memStatsAfter runtime.MemStats
			runtime.ReadMemStats(&memStatsBefore)

			start := time.Now()
			err := run.fn()
			duration := time.Since(start)

			runtime.ReadMemStats(&memStatsAfter)
			memMB := float64(memStatsAfter.TotalAlloc-memStatsBefore.TotalAlloc) / 1024 / 1024
			gcRuns := memStatsAfter.NumGC - memStatsBefore.NumGC

			if err != nil {
				fmt.Printf("%-10d | %-12s | %-15s | failed: %v\n", points, run.strategy, run.algorithm, err)
				continue
			}
			fmt.Printf("%-10d | %-12s | %-15s | %-15v | %-12.2f | %-10d\n",
				points, run.strategy, run.algorithm, duration, memMB, gcRuns)
		}
		fmt.Println("-----------------------------------------------------------------------------")
	}
}

func main() {
	flag.Parse()

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "could not create cpu profile: %v\n", err)
			return
		}
		defer f.Close()

		fmt.Println("starting cpu profiling...")
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "could not start cpu profile: %v\n", err)
			return
		}
		defer pprof.StopCPUProfile()
	}

	if *testall {
		runProfileBattery()
	} else {
		runSingleProfile(*numPoints, *radius)
	}

	if *memprofile != "" {
		f, err := os.Create(*memprofile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "could not create memory profile: %v\n", err)
			return
		}
		defer f.Close()
		runtime.GC()
		if err := pprof.WriteHeapProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "could not write memory profile: %v\n", err)
		}
	}

	if *heapprofile != "" {
		f, err := os.Create(*heapprofile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "could not create heap profile: %v\n", err)
			return
		}
		defer f.Close()

		heapProfile := pprof.Lookup("heap")
		if heapProfile == nil {
			fmt.Fprintf(os.Stderr, "could not find heap profile\n")
			return
		}
		if err := heapProfile.WriteTo(f, 0); err != nil {
			fmt.Fprintf(os.Stderr, "could not write heap profile: %v\n", err)
		}
	}
}
