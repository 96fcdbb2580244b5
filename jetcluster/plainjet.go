package jetcluster

import "math"

// plainState holds the plain (e+e-) strategy's structure-of-arrays
// columns. Slot 0 is reserved as the "beam" sentinel target for nni;
// live jets occupy slots [1, n]. All eight columns are allocated once,
// at size n0+1, and reused for the life of one reconstruction.
type plainState struct {
	store *JetStore
	hist  *History

	index   []int
	nni     []int
	nndist  []float64
	dijdist []float64
	nx, ny, nz []float64
	e2p     []float64

	n int // current live count

	r2        float64
	p         float64
	dijFactor float64
	isEEKt    bool
}

// dijFactorFor returns the normalisation factor from spec.md §4.7's
// "dij factor" note.
func dijFactorFor(alg Algorithm, r float64) float64 {
	switch alg {
	case EEKt:
		if r < math.Pi {
			return 1 / (1 - math.Cos(r))
		}
		return 1 / (3 + math.Cos(r))
	default: // Durham
		return 2
	}
}

// energyWeight returns energy^(2p), guarded the same way ktWeight
// guards pt^(2p): this is the same kind of kt-like weight, just taken
// over total energy instead of transverse momentum, so it shares the
// strategy-scoped floor/overflow constants.
func energyWeight(e, p float64) float64 {
	e2 := e * e
	if e2 > kt2Floor {
		return math.Pow(e2, p)
	}
	return kt2Overflow
}

func newPlainState(store *JetStore, hist *History, n int, alg Algorithm, r, p float64) *plainState {
	st := &plainState{
		store:     store,
		hist:      hist,
		index:     make([]int, n+1),
		nni:       make([]int, n+1),
		nndist:    make([]float64, n+1),
		dijdist:   make([]float64, n+1),
		nx:        make([]float64, n+1),
		ny:        make([]float64, n+1),
		nz:        make([]float64, n+1),
		e2p:       make([]float64, n+1),
		n:         n,
		r2:        r * r,
		p:         p,
		dijFactor: dijFactorFor(alg, r),
		isEEKt:    alg == EEKt,
	}

	for i := 1; i <= n; i++ {
		j := store.Get(i - 1)
		st.index[i] = i - 1
		nx, ny, nz := j.Direction()
		st.nx[i], st.ny[i], st.nz[i] = nx, ny, nz
		st.e2p[i] = energyWeight(j.E(), p)
	}
	for i := 1; i <= n; i++ {
		st.updateNNNoCross(i)
	}
	return st
}

// finalizeDij computes dijdist[i] from the current nni[i]/nndist[i],
// applying the EEKt beam clamp, per spec.md §4.7.
func (st *plainState) finalizeDij(i int) {
	if st.nni[i] == i {
		st.dijdist[i] = largeDij
		return
	}
	j := st.nni[i]
	m := st.e2p[i]
	if st.e2p[j] < m {
		m = st.e2p[j]
	}
	raw := m * st.dijFactor * st.nndist[i]
	if st.isEEKt && raw > st.e2p[i] {
		st.dijdist[i] = st.e2p[i]
		st.nni[i] = 0
		return
	}
	st.dijdist[i] = raw
}

// updateNNNoCross recomputes i's own nearest neighbour by scanning
// every other live slot, without touching any other slot's state.
func (st *plainState) updateNNNoCross(i int) {
	st.nndist[i] = largeDistance
	st.nni[i] = i
	for j := 1; j <= st.n; j++ {
		if j == i {
			continue
		}
		d := angular(st.nx[i], st.ny[i], st.nz[i], st.nx[j], st.ny[j], st.nz[j])
		if d < st.nndist[i] {
			st.nndist[i] = d
			st.nni[i] = j
		}
	}
	st.finalizeDij(i)
}

// updateNNCross recomputes i's nearest neighbour and, for every j it
// scans, updates j's own state immediately if i improves on j's
// current nearest neighbour.
func (st *plainState) updateNNCross(i int) {
	st.nndist[i] = largeDistance
	st.nni[i] = i
	for j := 1; j <= st.n; j++ {
		if j == i {
			continue
		}
		d := angular(st.nx[i], st.ny[i], st.nz[i], st.nx[j], st.ny[j], st.nz[j])
		if d < st.nndist[i] {
			st.nndist[i] = d
			st.nni[i] = j
		}
		if d < st.nndist[j] {
			st.nndist[j] = d
			st.nni[j] = i
			st.finalizeDij(j)
		}
	}
	st.finalizeDij(i)
}

// copySlot copies all eight columns from src into dst, per spec.md
// §4.7's squash step.
func (st *plainState) copySlot(src, dst int) {
	st.index[dst] = st.index[src]
	st.nni[dst] = st.nni[src]
	st.nndist[dst] = st.nndist[src]
	st.dijdist[dst] = st.dijdist[src]
	st.nx[dst] = st.nx[src]
	st.ny[dst] = st.ny[src]
	st.nz[dst] = st.nz[src]
	st.e2p[dst] = st.e2p[src]
}

// insertNewJet re-seeds slot with the merged jet's identity, per
// spec.md §4.7's "insert_new_jet" reference.
func (st *plainState) insertNewJet(slot, storeIdx int, merged Jet) {
	st.index[slot] = storeIdx
	st.nni[slot] = 0
	st.nndist[slot] = st.r2
	nx, ny, nz := merged.Direction()
	st.nx[slot], st.ny[slot], st.nz[slot] = nx, ny, nz
	st.e2p[slot] = energyWeight(merged.E(), st.p)
}
