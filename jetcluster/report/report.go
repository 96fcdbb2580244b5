// Package report builds human-readable summaries of a finished
// jetcluster.ClusterSequence.
package report

import (
	"fmt"

	"github.com/thcabral/fastjet/jetcluster"
)

// DijStats summarises the distribution of history-step dij values.
type DijStats struct {
	Min, Max, Sum, Average float64
}

// Summary is a flat, serialisation-friendly digest of a cluster
// sequence: step counts by kind plus the dij distribution.
type Summary struct {
	Algorithm    string   `json:"algorithm"`
	Strategy     string   `json:"strategy"`
	P            float64  `json:"p"`
	R            float64  `json:"r"`
	NumInputs    int      `json:"numInputs"`
	NumMerges    int      `json:"numMerges"`
	NumBeamSteps int      `json:"numBeamSteps"`
	NumFinalJets int      `json:"numFinalJets"`
	Qtot         float64  `json:"qtot"`
	Dij          DijStats `json:"dij"`
}

// Calculate walks a finished ClusterSequence's history once and builds
// a Summary, grounded on the same tally-while-scanning shape as the
// teacher's metadata summariser.
func Calculate(cs *jetcluster.ClusterSequence) Summary {
	s := Summary{
		Algorithm: cs.Algorithm.String(),
		Strategy:  cs.Strategy.String(),
		P:         cs.P,
		R:         cs.R,
		Qtot:      cs.Qtot(),
	}

	steps := cs.History()
	var sum float64
	for i, step := range steps {
		if step.Parent2 == jetcluster.BeamSentinel {
			s.NumBeamSteps++
		} else {
			s.NumMerges++
		}
		d := step.Dij
		if i == 0 || d < s.Dij.Min {
			s.Dij.Min = d
		}
		if i == 0 || d > s.Dij.Max {
			s.Dij.Max = d
		}
		sum += d
	}
	s.NumInputs = s.NumMerges + s.NumBeamSteps
	if len(steps) > 0 {
		s.Dij.Sum = sum
		s.Dij.Average = sum / float64(len(steps))
	}
	// The inclusive jets are exactly those recombined with the beam, not
	// every entry in the jet store (which also holds every merge's
	// intermediate jet).
	s.NumFinalJets = s.NumBeamSteps
	return s
}

// String renders a one-line human-readable summary.
func (s Summary) String() string {
	return fmt.Sprintf(
		"%s/%s p=%.1f R=%.2f: %d inputs -> %d merges, %d beam steps, %d inclusive jets, Qtot=%.3f, dij[min=%.4g max=%.4g avg=%.4g]",
		s.Algorithm, s.Strategy, s.P, s.R, s.NumInputs, s.NumMerges, s.NumBeamSteps, s.NumFinalJets,
		s.Qtot, s.Dij.Min, s.Dij.Max, s.Dij.Average,
	)
}
