package align

import "github.com/kvlabs/simdpa/hwy"

// Vector is the DP vector from spec §4.B: an ordered sequence of DP
// cells plus a signed offset. The logical score at position i is
// cells[i].M + offset (widened arithmetic, one value per batch lane).
type Vector[T hwy.SignedInts] struct {
	cells  []Cell[T]
	offset hwy.Vec[int32] // one wide offset per batch lane
	batch  int
}

// Size returns N+1, the number of cells.
func (v *Vector[T]) Size() int {
	return len(v.cells)
}

// BatchWidth returns the number of independent alignment pairs sharing
// this vector's sweep.
func (v *Vector[T]) BatchWidth() int {
	return v.batch
}

// CellAt returns the cell at position i.
func (v *Vector[T]) CellAt(i int) Cell[T] {
	return v.cells[i]
}

// SetCellAt replaces the cell at position i.
func (v *Vector[T]) SetCellAt(i int, c Cell[T]) {
	v.cells[i] = c
}

// Offset returns the vector's current wide offset.
func (v *Vector[T]) Offset() hwy.Vec[int32] {
	return v.offset
}

// UpdateOffset replaces the stored offset. It does not rebase cell
// contents — that is Rebase's job (spec §4.B, §4.G).
func (v *Vector[T]) UpdateOffset(newOffset hwy.Vec[int32]) {
	v.offset = newOffset
}

// InitVector sizes a DP vector to seq.Len()+1 and seeds it per mode
// (spec §4.B): global mode seeds cell i with (i*gapExtend+gapOpen, -inf),
// except cell 0 which seeds to (0, -inf); local mode seeds every cell to
// (0, -inf).
func InitVector[T hwy.SignedInts](seq RankedSequence, gap GapModel, mode Mode, batch int) *Vector[T] {
	n := seq.Len() + 1
	cells := make([]Cell[T], n)
	negInf := negInfinity[T]()
	for i := 0; i < n; i++ {
		var m int
		switch mode {
		case Local:
			m = 0
		default: // Global
			if i == 0 {
				m = 0
			} else {
				m = gap.GapOpen + i*gap.GapExtend
			}
		}
		cells[i] = broadcastCell[T](T(m), negInf, batch)
	}
	offData := make([]int32, batch)
	return &Vector[T]{cells: cells, offset: hwy.Load(offData), batch: batch}
}
