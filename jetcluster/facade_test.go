package jetcluster

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTiledReconstructMergesTwoNearbyParticles(t *testing.T) {
	// Two collinear-ish particles a small rapidity-phi distance apart
	// should merge into a single jet under a radius that covers them.
	particles := []Jet{
		NewJet(10, 0, 0, 10, 0),
		NewJet(9, 1, 0, 9.1, 1),
	}
	cs, err := TiledReconstruct(particles, AntiKt, WithR[Jet](1.0))
	require.NoError(t, err)
	assert.Equal(t, StrategyTiled, cs.Strategy)
	assert.Equal(t, 2, cs.jets.Len()-1, "two inputs should yield exactly one merge record on top of the inputs")

	steps := cs.History()
	require.Len(t, steps, 2, "one merge then one beam step for the resulting single jet")
	assert.NotEqual(t, BeamSentinel, steps[0].Parent2, "the first step should be the pairwise merge")
	assert.Equal(t, BeamSentinel, steps[1].Parent2, "the final jet always leaves via the beam")
}

func TestTiledReconstructIsolatedParticlesAllBeamOut(t *testing.T) {
	// Particles spread far apart in rapidity never fall within a small R
	// of one another, so every one of them beams out individually.
	particles := []Jet{
		NewJet(10, 0, 10, 14.14, 0),
		NewJet(0, 10, -10, 14.14, 1),
		NewJet(-10, -10, 0, 14.14, 2),
	}
	cs, err := TiledReconstruct(particles, AntiKt, WithR[Jet](0.01))
	require.NoError(t, err)

	steps := cs.History()
	require.Len(t, steps, 3)
	for _, s := range steps {
		assert.Equal(t, BeamSentinel, s.Parent2)
	}
	assert.Len(t, cs.Jets(), 3)
}

func TestEEReconstructDurhamMergesCollinearPair(t *testing.T) {
	particles := []Jet{
		NewJet(1, 0, 0, 1, 0),
		NewJet(0.99, 0.05, 0, 1, 1),
		NewJet(-1, 0, 0, 1, 2),
	}
	cs, err := EEReconstruct(particles, Durham)
	require.NoError(t, err)
	assert.Equal(t, StrategyPlain, cs.Strategy)
	assert.Equal(t, 4.0, cs.R, "Durham always runs at R=4.0 regardless of WithR")

	// Durham has no beam distance: the collinear pair merges, the result
	// merges with the third particle, and only the last jet beams out.
	steps := cs.History()
	require.Len(t, steps, 3)
}

func TestTiledReconstructRejectsNonHadronAlgorithm(t *testing.T) {
	_, err := TiledReconstruct([]Jet{NewJet(1, 0, 0, 1, 0)}, Durham)
	require.Error(t, err)
	var cfgErr *ConfigError
	assert.True(t, errors.As(err, &cfgErr))
}

func TestEEReconstructRejectsNonEEAlgorithm(t *testing.T) {
	_, err := EEReconstruct([]Jet{NewJet(1, 0, 0, 1, 0)}, AntiKt)
	require.Error(t, err)
	var cfgErr *ConfigError
	assert.True(t, errors.As(err, &cfgErr))
}

func TestGenKtRequiresExplicitPower(t *testing.T) {
	_, err := TiledReconstruct([]Jet{NewJet(1, 0, 0, 1, 0), NewJet(1, 0, 0, 1, 1)}, GenKt)
	require.Error(t, err)
	var cfgErr *ConfigError
	assert.True(t, errors.As(err, &cfgErr))
}

func TestGenKtWithPowerSucceeds(t *testing.T) {
	particles := []Jet{NewJet(1, 0, 0, 1, 0), NewJet(1, 0, 0, 1, 1)}
	cs, err := TiledReconstruct(particles, GenKt, WithP[Jet](0.5), WithR[Jet](1.0))
	require.NoError(t, err)
	assert.Equal(t, 0.5, cs.P)
}

func TestReconstructRejectsEmptyInput(t *testing.T) {
	_, err := TiledReconstruct([]Jet{}, AntiKt)
	require.Error(t, err)
	var domErr *DomainError
	assert.True(t, errors.As(err, &domErr))
}

func TestReconstructRejectsNonFiniteInput(t *testing.T) {
	_, err := TiledReconstruct([]Jet{NewJet(math.NaN(), 0, 0, 1, 0)}, AntiKt)
	require.Error(t, err)
	var domErr *DomainError
	assert.True(t, errors.As(err, &domErr))
}

// rawPt is a Momentum-satisfying type distinct from Jet, proving
// WithPreprocess drives the conversion for a caller's own particle type
// rather than only ever seeing Jet on both sides.
type rawPt struct{ px, py, pz, e float64 }

func (p rawPt) Px() float64 { return p.px }
func (p rawPt) Py() float64 { return p.py }
func (p rawPt) Pz() float64 { return p.pz }
func (p rawPt) E() float64  { return p.e }

func TestWithPreprocessIsHonoured(t *testing.T) {
	particles := []rawPt{{1, 0, 0, 1}, {0, 1, 0, 1}}
	preprocess := func(p rawPt, histIndex int) Jet {
		return NewJet(p.px, p.py, p.pz, p.e, histIndex)
	}

	cs, err := TiledReconstruct(particles, Kt, WithPreprocess[rawPt](preprocess), WithR[rawPt](1.0))
	require.NoError(t, err)
	assert.Len(t, cs.Jets(), 2)
}

func TestWithRecombineOverridesDefaultMerge(t *testing.T) {
	// A recombiner that always returns the first jet (winner-take-all).
	// The tiled strategy passes the jet with the higher store index
	// first, so the merged jet's momentum equals particle 1's.
	winnerTakeAll := func(a, b Jet, histIndex int) Jet {
		return NewJet(a.Px(), a.Py(), a.Pz(), a.E(), histIndex)
	}
	particles := []Jet{NewJet(5, 0, 0, 5, 0), NewJet(4.9, 0.1, 0, 4.9, 1)}
	cs, err := TiledReconstruct(particles, AntiKt, WithR[Jet](1.0), WithRecombine[Jet](winnerTakeAll))
	require.NoError(t, err)

	merged := cs.Jets()[2]
	assert.Equal(t, 4.9, merged.Px())
	assert.Equal(t, 4.9, merged.E())
}

func TestWithConsistencyCheckPassesOnValidRun(t *testing.T) {
	particles := []Jet{NewJet(5, 0, 0, 5, 0), NewJet(-5, 0, 0, 5, 1)}
	_, err := TiledReconstruct(particles, AntiKt, WithR[Jet](1.0), WithConsistencyCheck[Jet]())
	require.NoError(t, err)
}

func TestQtotIsFixedAtInputEnergySum(t *testing.T) {
	particles := []Jet{NewJet(5, 0, 0, 5, 0), NewJet(-5, 0, 0, 5, 1)}
	cs, err := TiledReconstruct(particles, AntiKt, WithR[Jet](1.0))
	require.NoError(t, err)
	assert.Equal(t, 10.0, cs.Qtot())
}

func TestTiledAndPlainAgreeOnBeamStepCountForDisjointInput(t *testing.T) {
	tiledParticles := []Jet{
		NewJet(10, 0, 10, 14.14, 0),
		NewJet(0, 10, -10, 14.14, 1),
	}
	tiled, err := TiledReconstruct(tiledParticles, AntiKt, WithR[Jet](0.001))
	require.NoError(t, err)

	// EEKt with R < pi, not Durham: Durham has no beam distance and
	// always merges the last two jets, while EEKt's beam clamp lets
	// both back-to-back particles beam out.
	plainParticles := []Jet{
		NewJet(1, 0, 0, 1, 0),
		NewJet(-1, 0, 0, 1, 1),
	}
	plain, err := EEReconstruct(plainParticles, EEKt, WithP[Jet](1), WithR[Jet](1.0))
	require.NoError(t, err)

	tiledBeams := countBeamSteps(tiled.History())
	plainBeams := countBeamSteps(plain.History())
	if diff := cmp.Diff(tiledBeams, plainBeams); diff != "" {
		t.Errorf("expected both disjoint two-particle runs to beam out every input (-tiled +plain):\n%s", diff)
	}
}

func countBeamSteps(steps []HistoryStep) int {
	n := 0
	for _, s := range steps {
		if s.Parent2 == BeamSentinel {
			n++
		}
	}
	return n
}
