package align

import "github.com/kvlabs/simdpa/hwy"

// Lane is the width-W stripe across a row block from spec §4.F: it
// bulk-loads W row cells out of the persistent row vector into a local
// cache, lets the kernel sweep the column against each of them in
// turn, and bulk-stores the results back on Flush. Caching keeps the
// working set that the column sweep touches small and contiguous
// instead of reaching back into the row vector on every cell.
//
// A lane's width is bounded at construction to the row vector's
// remaining length, so the trailing lane of a row block that doesn't
// divide evenly is simply narrower — no separate tail-handling path.
type Lane[T hwy.SignedInts] struct {
	vec   *Vector[T]
	start int
	cells []Cell[T]
}

// NewLane caches width cells of vec starting at the global index
// start, clipped to vec's bounds.
func NewLane[T hwy.SignedInts](vec *Vector[T], start, width int) *Lane[T] {
	end := start + width
	if end > vec.Size() {
		end = vec.Size()
	}
	if end < start {
		end = start
	}
	n := end - start
	cells := make([]Cell[T], n)
	for i := 0; i < n; i++ {
		cells[i] = vec.CellAt(start + i)
	}
	return &Lane[T]{vec: vec, start: start, cells: cells}
}

// Width returns the lane's actual (possibly clipped) width.
func (l *Lane[T]) Width() int {
	return len(l.cells)
}

// CellAt returns the j-th cached cell.
func (l *Lane[T]) CellAt(j int) Cell[T] {
	return l.cells[j]
}

// SetCellAt replaces the j-th cached cell.
func (l *Lane[T]) SetCellAt(j int, c Cell[T]) {
	l.cells[j] = c
}

// Flush bulk-stores the cached cells back into the row vector.
func (l *Lane[T]) Flush() {
	for i, c := range l.cells {
		l.vec.SetCellAt(l.start+i, c)
	}
}
