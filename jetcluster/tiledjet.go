package jetcluster

// tiledJet is the per-jet mutable state for the tiled strategy: an
// arena slot addressed by its own index, with prev/next/NN expressed
// as arena indices rather than pointers (spec.md §9's "language without
// unrestricted pointers" note).
type tiledJet struct {
	eta, phi  float64
	kt2       float64
	jetsIndex int // index into the JetStore
	nn        int32
	nnDist    float64
	tileIndex int
	prev, next int32
	dijPosn   int
}

// tjDiJ is `_tj_diJ` from spec.md §4.5: min(kt2_i, kt2_NN(i)) * nnDist_i,
// or kt2_i * nnDist_i when i has no live neighbour.
func tjDiJ(jets []tiledJet, i int32) float64 {
	j := &jets[i]
	if j.nn == noTiledJet {
		return j.kt2 * j.nnDist
	}
	nnKt2 := jets[j.nn].kt2
	m := j.kt2
	if nnKt2 < m {
		m = nnKt2
	}
	return m * j.nnDist
}

// tiledState bundles the tiled strategy's arena, grid and compact
// arrays. Every slice is allocated once (capacity N) and reused for
// the life of one reconstruction, per spec.md §5.
type tiledState struct {
	jets  []tiledJet // arena, size N, one slot per input
	grid  *TileGrid
	store *JetStore
	hist  *History

	nns []int32   // NNs[k] = arena index of the jet at compact slot k
	diJ []float64 // diJ[k] = tjDiJ of that jet

	ilast int // index of the last live compact slot (live length - 1)

	r2       float64
	p        float64
	unionBuf []int // scratch, length 3*9, per spec.md §4.6 step 5
	surBuf   []int // scratch, <=9, reused across Surrounding() calls
	innerSurBuf []int // scratch, <=9, reused inside recomputeNN
}
