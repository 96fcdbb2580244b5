package jetcluster

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJetStorePushAndGet(t *testing.T) {
	s := NewJetStore(3)
	idx0 := s.Push(NewJet(1, 0, 0, 1, 0))
	idx1 := s.Push(NewJet(0, 1, 0, 1, 1))

	assert.Equal(t, 0, idx0)
	assert.Equal(t, 1, idx1)
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, 1.0, s.Get(0).Px())
	assert.Equal(t, 1.0, s.Get(1).Py())
}

func TestJetStoreAllIsASnapshot(t *testing.T) {
	s := NewJetStore(1)
	s.Push(NewJet(1, 0, 0, 1, 0))

	snapshot := s.All()
	s.Push(NewJet(0, 1, 0, 1, 1))

	assert.Len(t, snapshot, 1, "All() must not observe jets pushed after it was taken")
	assert.Equal(t, 2, s.Len())
}
