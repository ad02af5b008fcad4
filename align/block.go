package align

import "github.com/kvlabs/simdpa/hwy"

// Block is the DP tile from spec §4.E: a column segment (the whole
// column vector, here — Hcol is not further subdivided since a single
// alignment's query axis already fits the working set) crossed with a
// row segment of width Wrow. Block owns the column and row vectors,
// the substitution model and sequences needed to build per-lane
// profiles, and the running optimum tracker.
//
// RowAt drives one row block: it rebases both vectors when running in
// saturated mode (spec §4.G — "interposes an offset rebase before
// producing the block"), then sweeps each lane of the block in turn.
type Block[T hwy.SignedInts] struct {
	colVec *Vector[T]
	rowVec *Vector[T]
	colSeq RankedSequence
	rowSeq RankedSequence
	model  ScoreModel
	gap    GapVectors[T]

	laneWidth int
	saturated bool
	zero      T

	tracker Tracker
}

// NewBlock assembles a Block over the given column/row vectors.
func NewBlock[T hwy.SignedInts](colVec, rowVec *Vector[T], colSeq, rowSeq RankedSequence, model ScoreModel, gap GapVectors[T], laneWidth int, saturated bool, zero T, tracker Tracker) *Block[T] {
	if laneWidth < 1 {
		laneWidth = 1
	}
	// A lane's profile rows are Vec[T]s, which hold at most MaxLanes[T] lanes.
	if max := hwy.MaxLanes[T](); laneWidth > max {
		laneWidth = max
	}
	return &Block[T]{
		colVec: colVec, rowVec: rowVec,
		colSeq: colSeq, rowSeq: rowSeq,
		model: model, gap: gap,
		laneWidth: laneWidth, saturated: saturated, zero: zero,
		tracker: tracker,
	}
}

// RowAt sweeps the row block covering rowSeq positions
// [rowBlockStart, rowBlockStart+rowBlockLen).
func (b *Block[T]) RowAt(rowBlockStart, rowBlockLen int) error {
	if b.saturated {
		if err := Rebase(b.colVec, b.zero); err != nil {
			return err
		}
		if err := Rebase(b.rowVec, b.zero); err != nil {
			return err
		}
	}

	for laneStart := 0; laneStart < rowBlockLen; laneStart += b.laneWidth {
		laneLen := b.laneWidth
		if laneStart+laneLen > rowBlockLen {
			laneLen = rowBlockLen - laneStart
		}
		// +1: index 0 of the row vector is the boundary cell shared
		// with the previous block, not part of any lane.
		globalStart := rowBlockStart + 1 + laneStart
		lane := NewLane(b.rowVec, globalStart, laneLen)
		if lane.Width() == 0 {
			continue
		}
		rowSlice := b.rowSeq.Slice(rowBlockStart+laneStart, rowBlockStart+laneStart+lane.Width())
		profile := BuildProfile[T](b.model, rowSlice, lane.Width())

		for j := 0; j < lane.Width(); j++ {
			b.sweepColumn(lane, j, profile)
		}
		lane.Flush()
	}
	return nil
}

// sweepColumn runs one full top-to-bottom column sweep against the
// single row position cached at lane[j], per spec §4.H's preamble /
// recurrence / postamble structure: the preamble swaps the column
// head's m for the row cell's m so the diagonal for cell 1 comes from
// the row vector, and the postamble writes the column's tail back into
// the row cell so the next block continues from it.
func (b *Block[T]) sweepColumn(lane *Lane[T], j int, profile *Profile[T]) {
	rowCell := lane.CellAt(j)
	colHead := b.colVec.CellAt(0)

	add := hwy.Add[T]
	if b.saturated {
		add = hwy.SaturatedAdd[T]
	}

	cache := KernelCache[T]{DiagIn: colHead.M, HIn: rowCell.V}
	newHeadV := hwy.Max(add(cache.DiagIn, b.gap.Open), add(colHead.V, b.gap.Extend))
	// rowCell.M is stored relative to the row vector's offset; the column
	// head is stored relative to the column vector's.
	headM := int64(rowCell.M.At(0)) + int64(b.rowVec.Offset().At(0)) - int64(b.colVec.Offset().At(0))
	b.colVec.SetCellAt(0, Cell[T]{M: broadcastVec[T](T(headM), 1), V: newHeadV})

	n := b.colVec.Size() - 1
	for i := 1; i <= n; i++ {
		c := b.colVec.CellAt(i)
		r := b.colSeq.At(i - 1)
		s := broadcastVec[T](T(profile.Row(r).At(j)), 1)
		Step(&cache, &c, s, b.gap, b.saturated)
		b.colVec.SetCellAt(i, c)

		score := int64(c.M.At(0)) + int64(b.colVec.Offset().At(0))
		b.tracker.Observe(score)
	}

	last := b.colVec.CellAt(n)
	rowCell.M = last.M
	rowCell.V = cache.HIn
	lane.SetCellAt(j, rowCell)
}
