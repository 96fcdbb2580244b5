package jetcluster

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistYPhiWrapsAtPi(t *testing.T) {
	// Two points at phi=0.1 and phi=2*pi-0.1 are close across the seam,
	// not far apart as a naive subtraction would suggest.
	d := distYPhi(0, 0.1, 0, 2*math.Pi-0.1)
	assert.InDelta(t, 0.04, d, 1e-9)
}

func TestDistYPhiCombinesRapidityAndPhi(t *testing.T) {
	d := distYPhi(1, 0, 0, 0)
	assert.InDelta(t, 1.0, d, 1e-12)
}

func TestAngularClampsCosine(t *testing.T) {
	// Identical directions: cos == 1 exactly, distance == 0.
	assert.InDelta(t, 0.0, angular(1, 0, 0, 1, 0, 0), 1e-12)
	// Opposite directions: cos == -1, distance == 2.
	assert.InDelta(t, 2.0, angular(1, 0, 0, -1, 0, 0), 1e-12)
	// Orthogonal: cos == 0, distance == 1.
	assert.InDelta(t, 1.0, angular(1, 0, 0, 0, 1, 0), 1e-12)
}

func TestWrapPhi(t *testing.T) {
	assert.InDelta(t, 0.5, wrapPhi(0.5), 1e-12)
	assert.InDelta(t, 0.5, wrapPhi(0.5+2*math.Pi), 1e-9)
	assert.InDelta(t, 2*math.Pi-0.5, wrapPhi(-0.5), 1e-9)
}
