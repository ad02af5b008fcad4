package align

import "testing"

// Profile correctness — spec §8 property 5: for every row symbol r and
// column symbol c, the profile's entry equals M[rank(c)][rank(r)].
func TestProfileMatchesScoreModel(t *testing.T) {
	rm, err := NewRankMap("ACGT")
	if err != nil {
		t.Fatalf("NewRankMap: %v", err)
	}
	model := NewUniformScoreModel(rm.Dimension(), 4, -2)
	rowSlice, err := NewRankedSequence([]byte("AGCT"), rm, "seq2")
	if err != nil {
		t.Fatalf("NewRankedSequence: %v", err)
	}

	profile := BuildProfile[int16](model, rowSlice, rowSlice.Len())
	if profile.Width() != rowSlice.Len() {
		t.Fatalf("Width() = %d, want %d", profile.Width(), rowSlice.Len())
	}

	for c := 0; c < rm.Dimension(); c++ {
		row := profile.Row(byte(c))
		for j := 0; j < rowSlice.Len(); j++ {
			want := model.Score(byte(c), rowSlice.At(j))
			if got := int(row.At(j)); got != want {
				t.Errorf("profile.Row(%d).At(%d) = %d, want %d", c, j, got, want)
			}
		}
	}
}

func TestProfileClipsToTrailingTail(t *testing.T) {
	rm, err := NewRankMap("ACGT")
	if err != nil {
		t.Fatalf("NewRankMap: %v", err)
	}
	model := NewUniformScoreModel(rm.Dimension(), 4, -2)
	rowSlice, err := NewRankedSequence([]byte("AC"), rm, "seq2")
	if err != nil {
		t.Fatalf("NewRankedSequence: %v", err)
	}

	profile := BuildProfile[int16](model, rowSlice, 8)
	if profile.Width() != 8 {
		t.Fatalf("Width() = %d, want 8 (profile width is always the requested lane width)", profile.Width())
	}
	row := profile.Row(0)
	for j := 0; j < rowSlice.Len(); j++ {
		want := model.Score(0, rowSlice.At(j))
		if got := int(row.At(j)); got != want {
			t.Errorf("profile.Row(0).At(%d) = %d, want %d", j, got, want)
		}
	}
	for j := rowSlice.Len(); j < 8; j++ {
		if got := row.At(j); got != 0 {
			t.Errorf("profile.Row(0).At(%d) = %d, want 0 padding past the tail", j, got)
		}
	}
}
