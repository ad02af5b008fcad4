package align

import "testing"

func TestInitVectorGlobalSeeding(t *testing.T) {
	rm, err := NewRankMap("ACGT")
	if err != nil {
		t.Fatalf("NewRankMap: %v", err)
	}
	seq, err := NewRankedSequence([]byte("ACGT"), rm, "seq1")
	if err != nil {
		t.Fatalf("NewRankedSequence: %v", err)
	}
	gap := GapModel{GapOpen: -4, GapExtend: -1}
	v := InitVector[int32](seq, gap, Global, 1)

	if v.Size() != 5 {
		t.Fatalf("Size() = %d, want len(seq)+1 = 5", v.Size())
	}
	if got := v.CellAt(0).M.At(0); got != 0 {
		t.Errorf("cell 0 m = %d, want 0", got)
	}
	for i := 1; i < v.Size(); i++ {
		want := int32(gap.GapOpen + i*gap.GapExtend)
		if got := v.CellAt(i).M.At(0); got != want {
			t.Errorf("cell %d m = %d, want gap_open+%d*gap_extend = %d", i, got, i, want)
		}
	}
}

func TestInitVectorLocalSeedsAllZero(t *testing.T) {
	rm, err := NewRankMap("ACGT")
	if err != nil {
		t.Fatalf("NewRankMap: %v", err)
	}
	seq, err := NewRankedSequence([]byte("ACGT"), rm, "seq1")
	if err != nil {
		t.Fatalf("NewRankedSequence: %v", err)
	}
	v := InitVector[int32](seq, GapModel{GapOpen: -4, GapExtend: -1}, Local, 1)
	for i := 0; i < v.Size(); i++ {
		if got := v.CellAt(i).M.At(0); got != 0 {
			t.Errorf("cell %d m = %d, want 0 in local mode", i, got)
		}
	}
}

func TestUpdateOffsetDoesNotTouchCells(t *testing.T) {
	rm, err := NewRankMap("ACGT")
	if err != nil {
		t.Fatalf("NewRankMap: %v", err)
	}
	seq, err := NewRankedSequence([]byte("AC"), rm, "seq1")
	if err != nil {
		t.Fatalf("NewRankedSequence: %v", err)
	}
	v := InitVector[int32](seq, GapModel{GapOpen: -4, GapExtend: -1}, Global, 1)
	before := v.CellAt(1).M.At(0)

	v.UpdateOffset(broadcastVec[int32](42, 1))

	if got := v.CellAt(1).M.At(0); got != before {
		t.Errorf("UpdateOffset mutated cell contents: %d -> %d", before, got)
	}
	if got := v.Offset().At(0); got != 42 {
		t.Errorf("Offset() = %d, want 42", got)
	}
}
