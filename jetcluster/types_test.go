package jetcluster

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJetAccessors(t *testing.T) {
	j := NewJet(3, 4, 5, 10, 2)
	assert.Equal(t, 3.0, j.Px())
	assert.Equal(t, 4.0, j.Py())
	assert.Equal(t, 5.0, j.Pz())
	assert.Equal(t, 10.0, j.E())
	assert.Equal(t, 2, j.ClusterHistIndex())
	assert.Equal(t, 25.0, j.Pt2())
}

func TestJetDirectionIsUnit(t *testing.T) {
	j := NewJet(3, 4, 0, 5, 0)
	nx, ny, nz := j.Direction()
	mag := math.Sqrt(nx*nx + ny*ny + nz*nz)
	assert.InDelta(t, 1.0, mag, 1e-12)
	assert.InDelta(t, 0.6, nx, 1e-12)
	assert.InDelta(t, 0.8, ny, 1e-12)
	assert.InDelta(t, 0.0, nz, 1e-12)
}

func TestJetDirectionAtRest(t *testing.T) {
	j := NewJet(0, 0, 0, 0, 0)
	nx, ny, nz := j.Direction()
	assert.Equal(t, 0.0, nx)
	assert.Equal(t, 0.0, ny)
	assert.Equal(t, 1.0, nz)
}

func TestJetPhiWrapsToPositive(t *testing.T) {
	j := NewJet(-1, -1, 0, 2, 0)
	phi := j.Phi()
	assert.GreaterOrEqual(t, phi, 0.0)
	assert.Less(t, phi, 2*math.Pi)
}

func TestJetPhiDegenerate(t *testing.T) {
	j := NewJet(0, 0, 5, 5, 0)
	assert.Equal(t, 0.0, j.Phi())
}

func TestJetRapidityAlongBeamZeroEnergy(t *testing.T) {
	forward := NewJet(0, 0, 1, 0, 0)
	assert.Equal(t, maxRapidity, forward.Rapidity())

	backward := NewJet(0, 0, -1, 0, 0)
	assert.Equal(t, -maxRapidity, backward.Rapidity())

	atRest := NewJet(0, 0, 0, 0, 0)
	assert.Equal(t, 0.0, atRest.Rapidity())
}

func TestJetRapidityMasslessAlongZ(t *testing.T) {
	// A massless particle along +z has y -> +infinity in the limit;
	// a large but finite pz should still give a large positive rapidity.
	j := NewJet(0, 0, 1000, 1000, 0)
	assert.Greater(t, j.Rapidity(), 5.0)
}

func TestAlgorithmString(t *testing.T) {
	cases := map[Algorithm]string{
		Kt: "kt", AntiKt: "antikt", CA: "ca",
		GenKt: "genkt", EEKt: "eekt", Durham: "durham",
		Algorithm(99): "unknown",
	}
	for alg, want := range cases {
		assert.Equal(t, want, alg.String())
	}
}

func TestStrategyString(t *testing.T) {
	assert.Equal(t, "tiled", StrategyTiled.String())
	assert.Equal(t, "plain", StrategyPlain.String())
}

func TestAddRecombineSumsFourMomentum(t *testing.T) {
	a := NewJet(1, 2, 3, 10, 0)
	b := NewJet(4, 5, 6, 20, 1)
	merged := AddRecombine(a, b, 7)
	assert.Equal(t, 5.0, merged.Px())
	assert.Equal(t, 7.0, merged.Py())
	assert.Equal(t, 9.0, merged.Pz())
	assert.Equal(t, 30.0, merged.E())
	assert.Equal(t, 7, merged.ClusterHistIndex())
}

func TestKtWeightGuardsZeroPt(t *testing.T) {
	assert.Equal(t, kt2Overflow, ktWeight(0, -1))
	assert.Equal(t, 2.0, ktWeight(2, 1))
}
