package jetcluster

import "math"

// newTiledState seeds the tiled strategy's arena and tile grid from a
// freshly-populated JetStore holding exactly n input jets (indices
// 0..n-1), then runs the one-shot NN initialisation pass of spec.md
// §4.5.
func newTiledState(store *JetStore, hist *History, n int, r, p float64) *tiledState {
	etaMin, etaMax := math.Inf(1), math.Inf(-1)
	etas := make([]float64, n)
	phis := make([]float64, n)
	for i := 0; i < n; i++ {
		j := store.Get(i)
		y := j.Rapidity()
		etas[i] = y
		phis[i] = j.Phi()
		if y < etaMin {
			etaMin = y
		}
		if y > etaMax {
			etaMax = y
		}
	}

	grid := NewTileGrid(etaMin, etaMax, r)

	st := &tiledState{
		jets:     make([]tiledJet, n),
		grid:     grid,
		store:    store,
		hist:     hist,
		nns:      make([]int32, n),
		diJ:      make([]float64, n),
		ilast:    n - 1,
		r2:       r * r,
		p:        p,
		unionBuf: make([]int, 0, 27),
		surBuf:   make([]int, 0, 9),
		innerSurBuf: make([]int, 0, 9),
	}

	for i := 0; i < n; i++ {
		j := store.Get(i)
		tj := &st.jets[i]
		tj.eta = etas[i]
		tj.phi = phis[i]
		tj.kt2 = ktWeight(j.Pt2(), p)
		tj.jetsIndex = i
		tj.nn = noTiledJet
		tj.nnDist = st.r2
		tj.dijPosn = i
		tileID := grid.TileOf(tj.eta, tj.phi)
		grid.InsertAtHead(st.jets, int32(i), tileID)
	}

	rightBuf := make([]int, 0, 4)
	for tileID := 0; tileID < grid.NumTiles(); tileID++ {
		// Pairs within the same tile: every unordered pair visited once
		// by walking the list and comparing each element to the ones
		// already seen ("B earlier than A").
		members := st.collectTile(tileID)
		for ai := 0; ai < len(members); ai++ {
			for bi := 0; bi < ai; bi++ {
				updatePairTiled(st.jets, members[ai], members[bi])
			}
		}

		rightBuf = grid.RightNeighbours(tileID, rightBuf)
		if len(rightBuf) == 0 {
			continue
		}
		for _, rtile := range rightBuf {
			rmembers := st.collectTile(rtile)
			for _, a := range members {
				for _, b := range rmembers {
					updatePairTiled(st.jets, a, b)
				}
			}
		}
	}

	for i := 0; i < n; i++ {
		st.nns[i] = int32(i)
		st.diJ[i] = tjDiJ(st.jets, int32(i))
		st.jets[i].dijPosn = i
	}

	return st
}

// collectTile walks a tile's linked list into a slice. Only used
// during one-shot initialisation; the reduction loop itself never
// materialises a tile's membership into a slice.
func (st *tiledState) collectTile(tileID int) []int32 {
	var out []int32
	for idx := st.grid.Head(tileID); idx != noTiledJet; idx = st.jets[idx].next {
		out = append(out, idx)
	}
	return out
}

func updatePairTiled(jets []tiledJet, a, b int32) {
	d := distYPhi(jets[a].eta, jets[a].phi, jets[b].eta, jets[b].phi)
	if d < jets[a].nnDist {
		jets[a].nnDist = d
		jets[a].nn = b
	}
	if d < jets[b].nnDist {
		jets[b].nnDist = d
		jets[b].nn = a
	}
}
