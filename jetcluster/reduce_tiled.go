package jetcluster

// iterate performs one step of the tiled reduction loop: find the
// global minimum diJ, recombine (jet-jet or jet-beam), repair the
// affected neighbourhood, and compact the retired slot. See spec.md
// §4.6 for the numbered steps this mirrors.
func (st *tiledState) iterate(recombine RecombineFunc) {
	ibest, dijMinRaw := argMin(st.diJ, st.ilast+1)
	A := st.nns[ibest]
	B := st.jets[A].nn
	dijMin := dijMinRaw / st.r2

	var bValid bool
	var aTile, oldBTile, newBTile int

	if B != noTiledJet {
		bValid = true
		if st.jets[A].jetsIndex < st.jets[B].jetsIndex {
			A, B = B, A
		}

		jetAVal := st.store.Get(st.jets[A].jetsIndex)
		jetBVal := st.store.Get(st.jets[B].jetsIndex)
		p1, p2 := minmax(jetAVal.ClusterHistIndex(), jetBVal.ClusterHistIndex())
		newHistIdx := st.store.Len()
		merged := recombine(jetAVal, jetBVal, newHistIdx)
		newIdx := st.store.Push(merged)
		st.hist.Append(p1, p2, newIdx, dijMin)

		aTile = st.jets[A].tileIndex
		oldBTile = st.jets[B].tileIndex
		st.grid.Remove(st.jets, A)
		st.grid.Remove(st.jets, B)

		newEta, newPhi := merged.Rapidity(), merged.Phi()
		st.jets[B].eta, st.jets[B].phi = newEta, newPhi
		st.jets[B].kt2 = ktWeight(merged.Pt2(), st.p)
		st.jets[B].jetsIndex = newIdx
		st.jets[B].nn = noTiledJet
		st.jets[B].nnDist = st.r2
		newBTile = st.grid.TileOf(newEta, newPhi)
		st.grid.InsertAtHead(st.jets, B, newBTile)
	} else {
		jetAVal := st.store.Get(st.jets[A].jetsIndex)
		st.hist.Append(jetAVal.ClusterHistIndex(), BeamSentinel, InvalidSentinel, dijMin)
		aTile = st.jets[A].tileIndex
		st.grid.Remove(st.jets, A)
	}

	aSlot := st.jets[A].dijPosn

	// step 5: affected tile union, deduped via the tags bitmap.
	union := st.unionBuf[:0]
	addTile := func(id int) {
		if !st.grid.IsTagged(id) {
			st.grid.Tag(id)
			union = append(union, id)
		}
	}
	st.surBuf = st.grid.Surrounding(aTile, st.surBuf)
	for _, id := range st.surBuf {
		addTile(id)
	}
	if bValid {
		st.surBuf = st.grid.Surrounding(newBTile, st.surBuf)
		for _, id := range st.surBuf {
			addTile(id)
		}
		if oldBTile != aTile && oldBTile != newBTile {
			st.surBuf = st.grid.Surrounding(oldBTile, st.surBuf)
			for _, id := range st.surBuf {
				addTile(id)
			}
		}
	}
	st.unionBuf = union

	// step 6: compact the retired slot.
	if aSlot != st.ilast {
		moved := st.nns[st.ilast]
		st.nns[aSlot] = moved
		st.diJ[aSlot] = st.diJ[st.ilast]
		st.jets[moved].dijPosn = aSlot
	}
	st.ilast--

	// step 7: repair neighbours over the affected union.
	for _, tileID := range union {
		for idx := st.grid.Head(tileID); idx != noTiledJet; idx = st.jets[idx].next {
			if st.jets[idx].nn == A || (bValid && st.jets[idx].nn == B) {
				st.recomputeNN(idx)
			}
			if bValid && idx != B {
				d := distYPhi(st.jets[idx].eta, st.jets[idx].phi, st.jets[B].eta, st.jets[B].phi)
				if d < st.jets[idx].nnDist {
					st.jets[idx].nnDist = d
					st.jets[idx].nn = B
					st.diJ[st.jets[idx].dijPosn] = tjDiJ(st.jets, idx)
				}
				if d < st.jets[B].nnDist {
					st.jets[B].nnDist = d
					st.jets[B].nn = idx
				}
			}
		}
		st.grid.Untag(tileID)
	}

	// step 8: B's own diJ reflects every cross-update it may have
	// received during step 7b.
	if bValid {
		st.diJ[st.jets[B].dijPosn] = tjDiJ(st.jets, B)
	}
}

// recomputeNN rescans idx's full 3x3 tile neighbourhood for its
// nearest live neighbour, per spec.md §4.6 step 7a.
func (st *tiledState) recomputeNN(idx int32) {
	jt := &st.jets[idx]
	jt.nn = noTiledJet
	jt.nnDist = st.r2
	st.innerSurBuf = st.grid.Surrounding(jt.tileIndex, st.innerSurBuf)
	for _, tileID := range st.innerSurBuf {
		for j := st.grid.Head(tileID); j != noTiledJet; j = st.jets[j].next {
			if j == idx {
				continue
			}
			d := distYPhi(jt.eta, jt.phi, st.jets[j].eta, st.jets[j].phi)
			if d < jt.nnDist {
				jt.nnDist = d
				jt.nn = j
			}
		}
	}
	st.diJ[jt.dijPosn] = tjDiJ(st.jets, idx)
}

// runTiled drives the N-iteration reduction loop to completion.
func runTiled(store *JetStore, hist *History, n int, r, p float64, recombine RecombineFunc) {
	st := newTiledState(store, hist, n, r, p)
	for i := 0; i < n; i++ {
		st.iterate(recombine)
	}
}
