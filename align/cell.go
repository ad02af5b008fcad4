package align

import "github.com/kvlabs/simdpa/hwy"

// Cell is the affine DP cell from spec §3: m is the best score reaching
// this cell from any direction, v is the best score whose last step
// opens or extends a vertical gap. Both are score lanes — each holds one
// value per batched alignment pair sharing this DP sweep.
type Cell[T hwy.SignedInts] struct {
	M hwy.Vec[T]
	V hwy.Vec[T]
}

// negInfinity returns a sentinel "very negative" value for lane type T,
// used to seed v in both modes, the gap state that must never win a max
// before a gap is actually opened. It deliberately stops short of T's true minimum: spec §9 notes
// the source's end-index arithmetic and saturation path do one more
// subtraction before the sentinel is compared against, and a literal
// MinInt would wrap instead of staying saturated.
func negInfinity[T hwy.SignedInts]() T {
	var zero T
	var v int64
	switch any(zero).(type) {
	case int8:
		v = -64
	case int16:
		v = -16384
	default:
		v = -1 << 30
	}
	return T(v)
}

// broadcastCell returns a Cell whose every lane of M and V is set to m
// and v respectively, at batch width b.
func broadcastCell[T hwy.SignedInts](m, v T, b int) Cell[T] {
	mData := make([]T, b)
	vData := make([]T, b)
	for i := range mData {
		mData[i] = m
		vData[i] = v
	}
	return Cell[T]{M: hwy.Load(mData), V: hwy.Load(vData)}
}

// broadcastVec returns a batch-b vector with every lane set to x.
func broadcastVec[T hwy.SignedInts](x T, b int) hwy.Vec[T] {
	data := make([]T, b)
	for i := range data {
		data[i] = x
	}
	return hwy.Load(data)
}
