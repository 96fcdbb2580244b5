package jetcluster

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHistoryAppendAndSteps(t *testing.T) {
	h := NewHistory(100, 4)
	idx := h.Append(0, 1, 2, 0.5)
	assert.Equal(t, 0, idx)
	assert.Equal(t, 1, h.Len())

	h.Append(2, BeamSentinel, InvalidSentinel, 1.5)
	steps := h.Steps()
	assert.Len(t, steps, 2)
	assert.Equal(t, HistoryStep{Parent1: 0, Parent2: 1, Child: 2, Dij: 0.5}, steps[0])
	assert.Equal(t, HistoryStep{Parent1: 2, Parent2: BeamSentinel, Child: InvalidSentinel, Dij: 1.5}, steps[1])
	assert.Equal(t, 100.0, h.Qtot())
}

func TestHistoryAt(t *testing.T) {
	h := NewHistory(0, 1)
	h.Append(3, 4, 5, 0.1)
	assert.Equal(t, HistoryStep{Parent1: 3, Parent2: 4, Child: 5, Dij: 0.1}, h.At(0))
}

func TestMinMaxOrdersAscending(t *testing.T) {
	a, b := minmax(5, 2)
	assert.Equal(t, 2, a)
	assert.Equal(t, 5, b)

	a, b = minmax(2, 5)
	assert.Equal(t, 2, a)
	assert.Equal(t, 5, b)
}
