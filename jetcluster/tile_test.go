package jetcluster

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTileGridSizing(t *testing.T) {
	g := NewTileGrid(-2, 2, 1.0)
	assert.GreaterOrEqual(t, g.nPhi, 3)
	assert.GreaterOrEqual(t, g.nEta, 1)
	assert.Equal(t, g.nEta*g.nPhi, g.NumTiles())
}

func TestTileGridDegenerateRadiusDefaultsToOne(t *testing.T) {
	g := NewTileGrid(0, 0, 0)
	assert.GreaterOrEqual(t, g.nEta, 1)
	assert.GreaterOrEqual(t, g.nPhi, 3)
}

func TestTileOfClampsEtaAtEdges(t *testing.T) {
	g := NewTileGrid(-1, 1, 0.5)
	below := g.TileOf(-100, 0)
	above := g.TileOf(100, 0)
	ietaBelow, _ := g.coords(below)
	ietaAbove, _ := g.coords(above)
	assert.Equal(t, 0, ietaBelow)
	assert.Equal(t, g.nEta-1, ietaAbove)
}

func TestTileOfWrapsPhi(t *testing.T) {
	g := NewTileGrid(-1, 1, 0.5)
	a := g.TileOf(0, -0.0001)
	b := g.TileOf(0, 2*math.Pi-0.0001)
	assert.Equal(t, a, b)
}

func TestSurroundingIncludesSelf(t *testing.T) {
	g := NewTileGrid(-1, 1, 0.5)
	buf := make([]int, 0, 9)
	neighbours := g.Surrounding(0, buf)
	assert.Contains(t, neighbours, 0)
}

func TestInsertAtHeadAndRemove(t *testing.T) {
	g := NewTileGrid(-1, 1, 1.0)
	jets := make([]tiledJet, 3)
	for i := range jets {
		jets[i].nn = noTiledJet
	}
	g.InsertAtHead(jets, 0, 5)
	g.InsertAtHead(jets, 1, 5)

	assert.Equal(t, int32(1), g.Head(5))
	assert.Equal(t, int32(0), jets[1].next)
	assert.Equal(t, int32(1), jets[0].prev)

	g.Remove(jets, 1)
	assert.Equal(t, int32(0), g.Head(5))
	assert.Equal(t, noTiledJet, jets[0].prev)
}

func TestTagUntag(t *testing.T) {
	g := NewTileGrid(-1, 1, 1.0)
	assert.False(t, g.IsTagged(0))
	g.Tag(0)
	assert.True(t, g.IsTagged(0))
	g.Untag(0)
	assert.False(t, g.IsTagged(0))
}

// TestRightNeighboursCoverEachUnorderedPairOnce exercises the invariant
// NN initialisation depends on: walking every tile's RightNeighbours
// and forming pairs visits each unordered pair of distinct tiles in the
// 3x3 neighbourhood exactly once, never both (A,B) and (B,A).
func TestRightNeighboursCoverEachUnorderedPairOnce(t *testing.T) {
	g := NewTileGrid(-3, 3, 1.0)
	seen := make(map[[2]int]int)
	buf := make([]int, 0, 4)
	for tileID := 0; tileID < g.NumTiles(); tileID++ {
		buf = g.RightNeighbours(tileID, buf)
		for _, other := range buf {
			if other == tileID {
				continue
			}
			key := [2]int{tileID, other}
			if tileID > other {
				key = [2]int{other, tileID}
			}
			seen[key]++
		}
	}
	for pair, count := range seen {
		assert.Equal(t, 1, count, "pair %v counted more than once", pair)
	}
	surBuf := make([]int, 0, 9)
	for tileID := 0; tileID < g.NumTiles(); tileID++ {
		surBuf = g.Surrounding(tileID, surBuf)
		for _, other := range surBuf {
			if other == tileID {
				continue
			}
			key := [2]int{tileID, other}
			if tileID > other {
				key = [2]int{other, tileID}
			}
			assert.Equal(t, 1, seen[key], "neighbour pair %v not visited exactly once", key)
		}
	}
}
