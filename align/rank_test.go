package align

import "testing"

func TestRankMapRank(t *testing.T) {
	rm, err := NewRankMap("ACGT")
	if err != nil {
		t.Fatalf("NewRankMap: %v", err)
	}
	if rm.Dimension() != 4 {
		t.Fatalf("Dimension() = %d, want 4", rm.Dimension())
	}
	tests := []struct {
		b    byte
		want byte
	}{
		{'A', 0}, {'C', 1}, {'G', 2}, {'T', 3},
	}
	for _, tt := range tests {
		if !rm.Contains(tt.b) {
			t.Errorf("Contains(%q) = false, want true", tt.b)
		}
		if got := rm.Rank(tt.b); got != tt.want {
			t.Errorf("Rank(%q) = %d, want %d", tt.b, got, tt.want)
		}
	}
	if rm.Contains('N') {
		t.Errorf("Contains('N') = true, want false")
	}
}

func TestNewRankMapRejectsDuplicate(t *testing.T) {
	if _, err := NewRankMap("AACT"); err == nil {
		t.Fatal("NewRankMap(\"AACT\") succeeded, want error on duplicate symbol")
	}
}

func TestNewRankedSequenceRejectsInvalidSymbol(t *testing.T) {
	rm, err := NewRankMap("ACGT")
	if err != nil {
		t.Fatalf("NewRankMap: %v", err)
	}
	_, err = NewRankedSequence([]byte("ACGN"), rm, "seq1")
	if err == nil {
		t.Fatal("NewRankedSequence accepted symbol N outside the alphabet")
	}
	var symErr *InvalidSymbolError
	if !asInvalidSymbolError(err, &symErr) {
		t.Fatalf("error %v is not *InvalidSymbolError", err)
	}
	if symErr.Position != 3 || symErr.Symbol != 'N' {
		t.Errorf("got position=%d symbol=%q, want position=3 symbol='N'", symErr.Position, symErr.Symbol)
	}
}

func asInvalidSymbolError(err error, target **InvalidSymbolError) bool {
	e, ok := err.(*InvalidSymbolError)
	if !ok {
		return false
	}
	*target = e
	return true
}

func TestRankedSequenceSlice(t *testing.T) {
	rm, err := NewRankMap("ACGT")
	if err != nil {
		t.Fatalf("NewRankMap: %v", err)
	}
	seq, err := NewRankedSequence([]byte("ACGTACGT"), rm, "seq1")
	if err != nil {
		t.Fatalf("NewRankedSequence: %v", err)
	}
	sub := seq.Slice(2, 5)
	if sub.Len() != 3 {
		t.Fatalf("Slice(2,5).Len() = %d, want 3", sub.Len())
	}
	if sub.Raw(0) != 'G' || sub.Raw(1) != 'T' || sub.Raw(2) != 'A' {
		t.Errorf("Slice(2,5) raw bytes = %c%c%c, want GTA", sub.Raw(0), sub.Raw(1), sub.Raw(2))
	}
}
