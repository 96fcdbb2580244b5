package jetcluster

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArgMinFindsLowestIndexOnTie(t *testing.T) {
	values := []float64{3, 1, 1, 2}
	idx, val := argMin(values, len(values))
	assert.Equal(t, 1, idx)
	assert.Equal(t, 1.0, val)
}

func TestArgMinRespectsBound(t *testing.T) {
	values := []float64{5, 0.1, 0.2}
	idx, val := argMin(values, 1)
	assert.Equal(t, 0, idx)
	assert.Equal(t, 5.0, val)
}
