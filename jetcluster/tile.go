package jetcluster

import "math"

// noTiledJet is the arena-index sentinel meaning "no jet" (empty list,
// no NN found yet). Mirrors spec.md §9's "noTiledJet" sentinel.
const noTiledJet = int32(-1)

type tileCell struct {
	head   int32 // arena index of the head of this tile's jet list
	tagged bool
}

// TileGrid is the fixed 2D grid over (rapidity, phi) used by the tiled
// strategy. Rapidity bins are open-ended at the extremes (edge values
// clamp into the first/last bin); phi bins wrap periodically.
type TileGrid struct {
	cells              []tileCell
	nEta, nPhi         int
	etaMin, dEta, dPhi float64
}

// NewTileGrid sizes a grid covering [etaMin, etaMax] with tile edges
// >= R in both directions, per spec.md §3/§4.1. Phi always gets at
// least 3 bins so the periodic 3x3 neighbourhood never aliases onto
// itself.
func NewTileGrid(etaMin, etaMax, r float64) *TileGrid {
	if r <= 0 {
		r = 1
	}
	nPhi := int(2 * math.Pi / r)
	if nPhi < 3 {
		nPhi = 3
	}
	dPhi := 2 * math.Pi / float64(nPhi)

	span := etaMax - etaMin
	if span <= 0 {
		span = r
	}
	nEta := int(span / r)
	if nEta < 1 {
		nEta = 1
	}
	dEta := span / float64(nEta)

	g := &TileGrid{
		cells:  make([]tileCell, nEta*nPhi),
		nEta:   nEta,
		nPhi:   nPhi,
		etaMin: etaMin,
		dEta:   dEta,
		dPhi:   dPhi,
	}
	for i := range g.cells {
		g.cells[i].head = noTiledJet
	}
	return g
}

// TileOf maps (eta, phi) to a tile id, clamping eta at the open-ended
// edges and wrapping phi modulo 2*pi, per spec.md §4.1.
func (g *TileGrid) TileOf(eta, phi float64) int {
	ieta := int((eta - g.etaMin) / g.dEta)
	if ieta < 0 {
		ieta = 0
	}
	if ieta >= g.nEta {
		ieta = g.nEta - 1
	}
	iphi := int(wrapPhi(phi) / g.dPhi)
	if iphi < 0 {
		iphi = 0
	}
	if iphi >= g.nPhi {
		iphi = g.nPhi - 1
	}
	return iphi*g.nEta + ieta
}

func (g *TileGrid) coords(tileID int) (ieta, iphi int) {
	return tileID % g.nEta, tileID / g.nEta
}

func (g *TileGrid) id(ieta, iphi int) int {
	iphi = ((iphi % g.nPhi) + g.nPhi) % g.nPhi
	return iphi*g.nEta + ieta
}

// Surrounding returns the (<=9) tile ids in the 3x3 neighbourhood of
// tileID, including itself. Eta is clipped at the grid edges; phi
// wraps.
func (g *TileGrid) Surrounding(tileID int, buf []int) []int {
	ieta, iphi := g.coords(tileID)
	out := buf[:0]
	for deta := -1; deta <= 1; deta++ {
		etaN := ieta + deta
		if etaN < 0 || etaN >= g.nEta {
			continue
		}
		for dphi := -1; dphi <= 1; dphi++ {
			out = append(out, g.id(etaN, iphi+dphi))
		}
	}
	return out
}

// RightNeighbours returns the (<=4) tiles forming the "right half" of
// the 3x3 neighbourhood of tileID, used exclusively by NN
// initialisation to visit every unordered neighbour pair exactly once:
// deta=+1 (all three dphi) plus deta=0,dphi=+1. This is expressed via
// relative offsets rather than a literal index comparison so it stays
// correct across the periodic phi wrap (a tile at iphi=0 still has a
// well-defined "dphi=+1" neighbour, even though its linear id can be
// smaller than that neighbour's).
func (g *TileGrid) RightNeighbours(tileID int, buf []int) []int {
	ieta, iphi := g.coords(tileID)
	out := buf[:0]
	etaN := ieta + 1
	if etaN < g.nEta {
		for dphi := -1; dphi <= 1; dphi++ {
			out = append(out, g.id(etaN, iphi+dphi))
		}
	}
	out = append(out, g.id(ieta, iphi+1))
	return out
}

// InsertAtHead prepends jetIdx (an arena index) to tileID's list.
func (g *TileGrid) InsertAtHead(jets []tiledJet, jetIdx int32, tileID int) {
	head := g.cells[tileID].head
	jets[jetIdx].prev = noTiledJet
	jets[jetIdx].next = head
	if head != noTiledJet {
		jets[head].prev = jetIdx
	}
	g.cells[tileID].head = jetIdx
	jets[jetIdx].tileIndex = tileID
}

// Remove unlinks jetIdx from its tile's list using its prev/next
// pointers.
func (g *TileGrid) Remove(jets []tiledJet, jetIdx int32) {
	j := &jets[jetIdx]
	if j.prev != noTiledJet {
		jets[j.prev].next = j.next
	} else {
		g.cells[j.tileIndex].head = j.next
	}
	if j.next != noTiledJet {
		jets[j.next].prev = j.prev
	}
	j.prev, j.next = noTiledJet, noTiledJet
}

func (g *TileGrid) Tag(tileID int)   { g.cells[tileID].tagged = true }
func (g *TileGrid) Untag(tileID int) { g.cells[tileID].tagged = false }
func (g *TileGrid) IsTagged(tileID int) bool {
	return g.cells[tileID].tagged
}

// Head returns the arena index at the head of tileID's list, or
// noTiledJet if empty.
func (g *TileGrid) Head(tileID int) int32 { return g.cells[tileID].head }

// NumTiles returns the total tile count.
func (g *TileGrid) NumTiles() int { return len(g.cells) }
