package align

import "testing"

// Affine recurrence law — spec §8 property 6:
// m_new = max(diag_in + s, h_in, v_prev).
func TestStepAffineRecurrenceLaw(t *testing.T) {
	gap := BroadcastGap[int32](GapModel{GapOpen: -4, GapExtend: -1}, 1)

	cache := KernelCache[int32]{
		DiagIn: broadcastVec[int32](5, 1),
		HIn:    broadcastVec[int32](-2, 1),
	}
	cell := &Cell[int32]{
		M: broadcastVec[int32](0, 1),
		V: broadcastVec[int32](3, 1),
	}
	s := broadcastVec[int32](4, 1)

	wantM := max3(5+4, -2, 3)

	Step(&cache, cell, s, gap, false)
	if got := cell.M.At(0); int(got) != wantM {
		t.Errorf("m_new = %d, want max(diag+s, h_in, v_prev) = %d", got, wantM)
	}
}

func max3(a, b, c int) int {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}

func TestStepPropagatesDiagonalFromPreviousM(t *testing.T) {
	gap := BroadcastGap[int32](GapModel{GapOpen: -4, GapExtend: -1}, 1)
	cache := &KernelCache[int32]{DiagIn: broadcastVec[int32](0, 1), HIn: broadcastVec[int32](-100, 1)}
	cell := &Cell[int32]{M: broadcastVec[int32](7, 1), V: broadcastVec[int32](-100, 1)}
	s := broadcastVec[int32](1, 1)

	Step(cache, cell, s, gap, false)

	if got := cache.DiagIn.At(0); got != 7 {
		t.Errorf("cache.DiagIn after Step = %d, want the pre-Step m (7)", got)
	}
}

func TestStepSaturatedMatchesUnsaturatedWithinRange(t *testing.T) {
	gap := BroadcastGap[int8](GapModel{GapOpen: -4, GapExtend: -1}, 1)

	mk := func() (*KernelCache[int8], *Cell[int8]) {
		return &KernelCache[int8]{DiagIn: broadcastVec[int8](10, 1), HIn: broadcastVec[int8](-20, 1)},
			&Cell[int8]{M: broadcastVec[int8](0, 1), V: broadcastVec[int8](-30, 1)}
	}
	s := broadcastVec[int8](4, 1)

	cacheA, cellA := mk()
	Step(cacheA, cellA, s, gap, false)
	cacheB, cellB := mk()
	Step(cacheB, cellB, s, gap, true)

	if cellA.M.At(0) != cellB.M.At(0) || cellA.V.At(0) != cellB.V.At(0) {
		t.Errorf("saturated and unsaturated Step disagree within range: (%d,%d) vs (%d,%d)",
			cellA.M.At(0), cellA.V.At(0), cellB.M.At(0), cellB.V.At(0))
	}
}
