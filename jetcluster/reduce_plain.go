package jetcluster

// iterate performs one step of the plain reduction loop: find the
// global minimum dijdist, recombine (jet-jet or jet-beam), squash the
// retired slot by swap-with-last, and repair neighbours, per spec.md
// §4.7.
func (st *plainState) iterate(recombine RecombineFunc) {
	idx, dijMin := argMin(st.dijdist[1:], st.n)
	iA := idx + 1
	iB := st.nni[iA]

	if iB == 0 || st.n == 1 {
		iB = iA
		jetAVal := st.store.Get(st.index[iA])
		st.hist.Append(jetAVal.ClusterHistIndex(), BeamSentinel, InvalidSentinel, dijMin)
	} else {
		if iA > iB {
			iA, iB = iB, iA
		}
		jetAVal := st.store.Get(st.index[iA])
		jetBVal := st.store.Get(st.index[iB])
		p1, p2 := minmax(jetAVal.ClusterHistIndex(), jetBVal.ClusterHistIndex())
		newHistIdx := st.store.Len()
		merged := recombine(jetAVal, jetBVal, newHistIdx)
		newIdx := st.store.Push(merged)
		st.hist.Append(p1, p2, newIdx, dijMin)
		st.insertNewJet(iA, newIdx, merged)
	}

	n := st.n
	if iB != n {
		st.copySlot(n, iB)
	}
	st.n--
	newN := st.n

	for i := 1; i <= newN; i++ {
		if iB != n && st.nni[i] == n {
			st.nni[i] = iB
		} else if st.nni[i] == iA || st.nni[i] == iB || st.nni[i] > newN {
			st.updateNNNoCross(i)
		}
	}

	if iA != iB {
		st.updateNNCross(iA)
	}
}

// runPlain drives the plain strategy's N-iteration reduction loop to
// completion.
func runPlain(store *JetStore, hist *History, n int, alg Algorithm, r, p float64, recombine RecombineFunc) {
	st := newPlainState(store, hist, n, alg, r, p)
	for i := 0; i < n; i++ {
		st.iterate(recombine)
	}
}
