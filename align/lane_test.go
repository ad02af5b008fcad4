package align

import "testing"

// Lane round-trip — spec §8 property 3: constructing a lane and
// flushing it straight back leaves the row vector bitwise unchanged.
func TestLaneRoundTrip(t *testing.T) {
	rm, err := NewRankMap("ACGT")
	if err != nil {
		t.Fatalf("NewRankMap: %v", err)
	}
	seq2, err := NewRankedSequence([]byte("ACGTACGT"), rm, "seq2")
	if err != nil {
		t.Fatalf("NewRankedSequence: %v", err)
	}
	v := InitVector[int16](seq2, GapModel{GapOpen: -4, GapExtend: -1}, Global, 1)

	before := make([]Cell[int16], v.Size())
	for i := range before {
		before[i] = v.CellAt(i)
	}

	lane := NewLane(v, 2, 4)
	if lane.Width() != 4 {
		t.Fatalf("Width() = %d, want 4", lane.Width())
	}
	lane.Flush()

	for i := range before {
		got := v.CellAt(i)
		if got.M.At(0) != before[i].M.At(0) || got.V.At(0) != before[i].V.At(0) {
			t.Errorf("cell %d changed across an unmodified lane round trip", i)
		}
	}
}

func TestLaneClipsToVectorBounds(t *testing.T) {
	rm, err := NewRankMap("ACGT")
	if err != nil {
		t.Fatalf("NewRankMap: %v", err)
	}
	seq2, err := NewRankedSequence([]byte("AC"), rm, "seq2")
	if err != nil {
		t.Fatalf("NewRankedSequence: %v", err)
	}
	v := InitVector[int16](seq2, GapModel{GapOpen: -4, GapExtend: -1}, Global, 1)
	// v has 3 cells (0,1,2); asking for width 8 starting at 1 should clip to 2.
	lane := NewLane(v, 1, 8)
	if lane.Width() != 2 {
		t.Fatalf("Width() = %d, want 2 (clipped to vector bounds)", lane.Width())
	}
}

func TestLaneFlushWritesModifications(t *testing.T) {
	rm, err := NewRankMap("ACGT")
	if err != nil {
		t.Fatalf("NewRankMap: %v", err)
	}
	seq2, err := NewRankedSequence([]byte("ACGT"), rm, "seq2")
	if err != nil {
		t.Fatalf("NewRankedSequence: %v", err)
	}
	v := InitVector[int16](seq2, GapModel{GapOpen: -4, GapExtend: -1}, Global, 1)

	lane := NewLane(v, 1, 2)
	modified := broadcastCell[int16](99, -5, 1)
	lane.SetCellAt(0, modified)
	lane.Flush()

	if got := v.CellAt(1).M.At(0); got != 99 {
		t.Errorf("v.CellAt(1).M = %d after flush, want 99", got)
	}
}
