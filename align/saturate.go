package align

import "github.com/kvlabs/simdpa/hwy"

// Rebase implements the saturated-wrapper rebase protocol (spec §4.G):
// subtract the pivot (cell 0's m) from every cell and add back the
// saturated-zero constant, folding the pivot into the vector's wide
// offset so the logical score cell.M+offset is unchanged by the
// rewrite. Block.RowAt calls this once per row block, for both the column
// vector and the row vector, each with its own pivot; ComputeBatch calls
// it on the column vector before every row position.
//
// When DebugSaturation is true (build tag satcheck) every cell is also
// independently recomputed in a widened type and compared against the
// narrow saturating result; a mismatch returns *SaturationOverflowError
// instead of silently producing a wrong score.
func Rebase[T hwy.SignedInts](v *Vector[T], zero T) error {
	if v.Size() == 0 {
		return nil
	}
	pivot := v.CellAt(0).M
	zeroVec := broadcastVec[T](zero, v.batch)

	if DebugSaturation {
		if err := verifyRebase(v, pivot, zeroVec); err != nil {
			return err
		}
	}

	for i := 0; i < v.Size(); i++ {
		c := v.CellAt(i)
		newM := hwy.SaturatedAdd(hwy.SaturatedSub(c.M, pivot), zeroVec)
		newV := hwy.SaturatedAdd(hwy.SaturatedSub(c.V, pivot), zeroVec)
		v.SetCellAt(i, Cell[T]{M: newM, V: newV})
	}

	pivotWide := hwy.Widen[T, int32](pivot)
	zeroWide := hwy.Widen[T, int32](zeroVec)
	v.UpdateOffset(hwy.Sub(hwy.Add(v.Offset(), pivotWide), zeroWide))
	return nil
}

// verifyRebase recomputes m (and, for i>0, v) in a widened type for
// every cell and lane and compares it against the narrow saturating
// rewrite, per spec §4.G's overflow-verification contract.
func verifyRebase[T hwy.SignedInts](v *Vector[T], pivot, zeroVec hwy.Vec[T]) error {
	pivotWide := hwy.Widen[T, int32](pivot)
	zeroWide := hwy.Widen[T, int32](zeroVec)
	for i := 0; i < v.Size(); i++ {
		c := v.CellAt(i)
		if err := verifyCellLane(i, c.M, pivot, pivotWide, zeroVec, zeroWide); err != nil {
			return err
		}
		if i > 0 {
			if err := verifyCellLane(i, c.V, pivot, pivotWide, zeroVec, zeroWide); err != nil {
				return err
			}
		}
	}
	return nil
}

func verifyCellLane[T hwy.SignedInts](cellIndex int, narrow, pivot hwy.Vec[T], pivotWide hwy.Vec[int32], zeroVec hwy.Vec[T], zeroWide hwy.Vec[int32]) error {
	narrowResult := hwy.SaturatedAdd(hwy.SaturatedSub(narrow, pivot), zeroVec)
	wideExpected := hwy.Sub(hwy.Add(hwy.Widen[T, int32](narrow), zeroWide), pivotWide)
	for lane := 0; lane < narrow.NumLanes(); lane++ {
		if int32(narrowResult.At(lane)) != wideExpected.At(lane) {
			return &SaturationOverflowError{
				CellIndex:    cellIndex,
				LaneIndex:    lane,
				NarrowResult: int32(narrowResult.At(lane)),
				WideExpected: wideExpected.At(lane),
				Delta:        int32(pivot.At(lane)),
				ZeroOffset:   int32(zeroVec.At(lane)),
			}
		}
	}
	return nil
}
