package align

import "github.com/kvlabs/simdpa/hwy"

// KernelCache carries the per-column sweep state that isn't stored in
// every cell (spec §3: "a symmetric h ... is carried in a per-column
// cache register during the sweep"): the sliding diagonal and the
// incoming horizontal-gap score.
type KernelCache[T hwy.SignedInts] struct {
	DiagIn hwy.Vec[T]
	HIn    hwy.Vec[T]
}

// GapVectors holds the gap-extend and gap-open+extend penalties
// broadcast to the kernel's batch width, computed once per alignment
// rather than once per cell.
type GapVectors[T hwy.SignedInts] struct {
	Extend    hwy.Vec[T]
	OpenDelta hwy.Vec[T]
	Open      hwy.Vec[T] // raw gap_open, used only by the lane head-cell preamble
}

// BroadcastGap precomputes GapVectors for gap at the given batch width.
func BroadcastGap[T hwy.SignedInts](gap GapModel, batch int) GapVectors[T] {
	extend := make([]T, batch)
	openDelta := make([]T, batch)
	open := make([]T, batch)
	for i := range extend {
		extend[i] = T(gap.GapExtend)
		openDelta[i] = T(gap.OpenDelta())
		open[i] = T(gap.GapOpen)
	}
	return GapVectors[T]{Extend: hwy.Load(extend), OpenDelta: hwy.Load(openDelta), Open: hwy.Load(open)}
}

// Step performs one affine-recurrence update (spec §4.H):
//
//	diag_new    = cache.diag_in + s
//	m_new       = max(diag_new, cache.h_in, v_prev)
//	col_cell.m  = m_new
//	cache.h_in  = max(cache.h_in + ge, m_new + open_delta)
//	col_cell.v  = max(v_prev + ge,     m_new + open_delta)
//	cache.diag_in = m_prev
//
// saturated selects clamping (narrow-lane) addition vs ordinary wide
// addition — spec §8 property 4 requires both give identical scores
// whenever the wide engine never overflows.
func Step[T hwy.SignedInts](cache *KernelCache[T], colCell *Cell[T], s hwy.Vec[T], gap GapVectors[T], saturated bool) {
	add := hwy.Add[T]
	if saturated {
		add = hwy.SaturatedAdd[T]
	}

	mPrev := colCell.M
	vPrev := colCell.V

	diagNew := add(cache.DiagIn, s)
	mNew := hwy.Max(hwy.Max(diagNew, cache.HIn), vPrev)
	colCell.M = mNew

	mPlusOpen := add(mNew, gap.OpenDelta)
	cache.HIn = hwy.Max(add(cache.HIn, gap.Extend), mPlusOpen)
	colCell.V = hwy.Max(add(vPrev, gap.Extend), mPlusOpen)

	cache.DiagIn = mPrev
}
