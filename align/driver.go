package align

import (
	"fmt"

	"github.com/kvlabs/simdpa/hwy"
)

// Result is the outcome of one alignment.
type Result struct {
	Score int64
	Mode  Mode
}

// Pair is one (seq1, seq2) input to ComputeBatch. All pairs in a batch
// must share the same seq1 length and the same seq2 length — batching
// expresses independent alignment PAIRS as SIMD lanes (spec §5), which
// only makes sense when every lane sweeps the same number of columns
// and rows.
type Pair struct {
	Seq1 []byte
	Seq2 []byte
}

// Driver is the top-level entry point (spec §4.I): it owns the
// configuration, the alphabet's rank map, and the substitution model,
// and drives either a single alignment (Compute) or a batch of
// independent alignments sharing one SIMD sweep (ComputeBatch).
type Driver[T hwy.SignedInts] struct {
	cfg   Config
	rank  *RankMap
	model ScoreModel
}

// New validates cfg and returns a Driver bound to rank and model.
func New[T hwy.SignedInts](cfg Config, rank *RankMap, model ScoreModel) (*Driver[T], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rank.Dimension() != model.Dimension() {
		return nil, fmt.Errorf("align: rank map dimension %d does not match score model dimension %d", rank.Dimension(), model.Dimension())
	}
	return &Driver[T]{cfg: cfg, rank: rank, model: model}, nil
}

// Compute aligns one pair of sequences end to end (spec §4.I):
// rank both sequences, initialise the column and row DP vectors, sweep
// row blocks of lanes across the row vector running the affine kernel
// over every column, and read the optimum out of the tracker.
func (d *Driver[T]) Compute(seq1, seq2 []byte) (Result, error) {
	seq1RK, err := NewRankedSequence(seq1, d.rank, "seq1")
	if err != nil {
		return Result{}, err
	}
	seq2RK, err := NewRankedSequence(seq2, d.rank, "seq2")
	if err != nil {
		return Result{}, err
	}

	n, m := seq1RK.Len(), seq2RK.Len()
	if n == 0 && m == 0 {
		return Result{Score: 0, Mode: d.cfg.Mode}, nil
	}
	if m == 0 {
		colVec := InitVector[T](seq1RK, d.cfg.Gap, d.cfg.Mode, 1)
		return Result{Score: finalizeEdgeVector(colVec, d.cfg.Mode), Mode: d.cfg.Mode}, nil
	}
	if n == 0 {
		rowVec := InitVector[T](seq2RK, d.cfg.Gap, d.cfg.Mode, 1)
		return Result{Score: finalizeEdgeVector(rowVec, d.cfg.Mode), Mode: d.cfg.Mode}, nil
	}

	colVec := InitVector[T](seq1RK, d.cfg.Gap, d.cfg.Mode, 1)
	rowVec := InitVector[T](seq2RK, d.cfg.Gap, d.cfg.Mode, 1)
	gapVecs := BroadcastGap[T](d.cfg.Gap, 1)
	tracker := NewTracker(d.cfg.Mode)

	block := NewBlock(colVec, rowVec, seq1RK, seq2RK, d.model, gapVecs, d.cfg.LaneWidth, d.cfg.Saturated, T(d.cfg.ZeroOffset), tracker)

	rowBlockWidth := d.cfg.LaneWidth * 4
	if rowBlockWidth < 1 {
		rowBlockWidth = m
	}
	for rowBlockStart := 0; rowBlockStart < m; rowBlockStart += rowBlockWidth {
		blockLen := rowBlockWidth
		if rowBlockStart+blockLen > m {
			blockLen = m - rowBlockStart
		}
		if err := block.RowAt(rowBlockStart, blockLen); err != nil {
			return Result{}, err
		}
	}

	return Result{Score: tracker.Finalize(), Mode: d.cfg.Mode}, nil
}

// ComputeBatch aligns len(pairs) independent alignments in lock-step,
// one SIMD lane per pair (spec §5, §8 scenario 6). Every pair must
// share seq1's length and seq2's length; the batch cannot exceed the
// lane width available for T on this platform.
func (d *Driver[T]) ComputeBatch(pairs []Pair) ([]Result, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	batch := len(pairs)
	if max := hwy.MaxLanes[T](); batch > max {
		return nil, fmt.Errorf("align: batch of %d pairs exceeds the %d-lane width available for this score type", batch, max)
	}

	n := len(pairs[0].Seq1)
	m := len(pairs[0].Seq2)
	for _, p := range pairs {
		if len(p.Seq1) != n || len(p.Seq2) != m {
			return nil, fmt.Errorf("align: ComputeBatch requires every pair to share seq1 and seq2 length")
		}
	}

	if n == 0 || m == 0 {
		results := make([]Result, batch)
		for i, p := range pairs {
			res, err := d.Compute(p.Seq1, p.Seq2)
			if err != nil {
				return nil, err
			}
			results[i] = res
		}
		return results, nil
	}

	seq1RKs := make([]RankedSequence, batch)
	seq2RKs := make([]RankedSequence, batch)
	for i, p := range pairs {
		rk1, err := NewRankedSequence(p.Seq1, d.rank, fmt.Sprintf("seq1[%d]", i))
		if err != nil {
			return nil, err
		}
		rk2, err := NewRankedSequence(p.Seq2, d.rank, fmt.Sprintf("seq2[%d]", i))
		if err != nil {
			return nil, err
		}
		seq1RKs[i], seq2RKs[i] = rk1, rk2
	}

	colVec := InitVector[T](seq1RKs[0], d.cfg.Gap, d.cfg.Mode, batch)
	gapVecs := BroadcastGap[T](d.cfg.Gap, batch)
	trackers := make([]Tracker, batch)
	for i := range trackers {
		trackers[i] = NewTracker(d.cfg.Mode)
	}
	zero := T(d.cfg.ZeroOffset)

	negInf := broadcastVec[T](negInfinity[T](), batch)
	sData := make([]T, batch)

	for j := 0; j < m; j++ {
		if d.cfg.Saturated {
			if err := Rebase(colVec, zero); err != nil {
				return nil, err
			}
		}
		// The new column head is the boundary row's seed for column j+1,
		// stored relative to each lane's current column offset.
		top := 0
		if d.cfg.Mode == Global {
			top = d.cfg.Gap.GapOpen + (j+1)*d.cfg.Gap.GapExtend
		}
		colOff := colVec.Offset()
		for lane := 0; lane < batch; lane++ {
			sData[lane] = T(int64(top) - int64(colOff.At(lane)))
		}
		rowCell := Cell[T]{M: hwy.Load(sData), V: negInf}
		colHead := colVec.CellAt(0)
		add := hwy.Add[T]
		if d.cfg.Saturated {
			add = hwy.SaturatedAdd[T]
		}
		cache := KernelCache[T]{DiagIn: colHead.M, HIn: rowCell.V}
		newHeadV := hwy.Max(add(cache.DiagIn, gapVecs.Open), add(colHead.V, gapVecs.Extend))
		colVec.SetCellAt(0, Cell[T]{M: rowCell.M, V: newHeadV})

		for i := 1; i <= n; i++ {
			c := colVec.CellAt(i)
			for lane := 0; lane < batch; lane++ {
				sData[lane] = T(d.model.Score(seq1RKs[lane].At(i-1), seq2RKs[lane].At(j)))
			}
			s := hwy.Load(sData)
			Step(&cache, &c, s, gapVecs, d.cfg.Saturated)
			colVec.SetCellAt(i, c)

			off := colVec.Offset()
			for lane := 0; lane < batch; lane++ {
				trackers[lane].Observe(int64(c.M.At(lane)) + int64(off.At(lane)))
			}
		}
	}

	results := make([]Result, batch)
	for lane := 0; lane < batch; lane++ {
		results[lane] = Result{Score: trackers[lane].Finalize(), Mode: d.cfg.Mode}
	}
	return results, nil
}

// finalizeEdgeVector reads the alignment score straight off a lone DP
// vector when the other sequence is empty and no sweep ever runs.
func finalizeEdgeVector[T hwy.SignedInts](v *Vector[T], mode Mode) int64 {
	off := v.Offset()
	if mode == Local {
		var best int64
		for i := 0; i < v.Size(); i++ {
			s := int64(v.CellAt(i).M.At(0)) + int64(off.At(0))
			if s > best {
				best = s
			}
		}
		return best
	}
	last := v.CellAt(v.Size() - 1)
	return int64(last.M.At(0)) + int64(off.At(0))
}
