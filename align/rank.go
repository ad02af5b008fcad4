package align

// invalidRank marks a byte that has no place in the alphabet.
const invalidRank = 255

// RankMap is the dense 256-entry byte→rank table from spec §3: every
// possible byte value maps either to a rank in [0, D) or to 255
// (invalid). It is immutable after construction and shared read-only by
// every block and lane of one alignment.
type RankMap struct {
	table [256]byte
	dim   int
}

// NewRankMap builds a RankMap from an alphabet string, e.g. "ACGT". Each
// byte of alphabet gets the next rank in order; alphabet must not
// repeat a byte or exceed 255 symbols.
func NewRankMap(alphabet string) (*RankMap, error) {
	if len(alphabet) == 0 {
		return nil, &InvalidSymbolError{Sequence: "alphabet", Position: 0}
	}
	if len(alphabet) > invalidRank {
		return nil, &InvalidSymbolError{Symbol: alphabet[invalidRank], Sequence: "alphabet", Position: invalidRank}
	}
	rm := &RankMap{dim: len(alphabet)}
	for i := range rm.table {
		rm.table[i] = invalidRank
	}
	for i := 0; i < len(alphabet); i++ {
		b := alphabet[i]
		if rm.table[b] != invalidRank {
			return nil, &InvalidSymbolError{Symbol: b, Sequence: "alphabet", Position: i}
		}
		rm.table[b] = byte(i)
	}
	return rm, nil
}

// Dimension returns D, the number of distinct symbols in the alphabet.
func (r *RankMap) Dimension() int {
	return r.dim
}

// Contains reports whether b has a rank in this map.
func (r *RankMap) Contains(b byte) bool {
	return r.table[b] != invalidRank
}

// Rank returns the rank of b, or 255 if b is not in the alphabet.
func (r *RankMap) Rank(b byte) byte {
	return r.table[b]
}

// RankedSequence wraps a raw byte sequence and a RankMap, translating
// symbol→rank on read without copying or mutating the cell storage the
// sequence indexes into (spec §4.C).
type RankedSequence struct {
	raw  []byte
	rank *RankMap
}

// NewRankedSequence validates every byte of seq against rank and wraps
// it. name is used only to identify the sequence in InvalidSymbolError
// ("seq1"/"seq2").
func NewRankedSequence(seq []byte, rank *RankMap, name string) (RankedSequence, error) {
	for i, b := range seq {
		if !rank.Contains(b) {
			return RankedSequence{}, &InvalidSymbolError{Symbol: b, Sequence: name, Position: i}
		}
	}
	return RankedSequence{raw: seq, rank: rank}, nil
}

// Len returns the number of symbols in the sequence.
func (s RankedSequence) Len() int {
	return len(s.raw)
}

// At returns the rank of the symbol at position i.
func (s RankedSequence) At(i int) byte {
	return s.rank.Rank(s.raw[i])
}

// Raw returns the i-th raw (unranked) byte.
func (s RankedSequence) Raw(i int) byte {
	return s.raw[i]
}

// Slice returns the sub-sequence [start, end), sharing the same rank map.
func (s RankedSequence) Slice(start, end int) RankedSequence {
	return RankedSequence{raw: s.raw[start:end], rank: s.rank}
}
