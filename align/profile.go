package align

import "github.com/kvlabs/simdpa/hwy"

// Profile is the pre-computed D×W substitution-score table from spec
// §4.D: for a fixed row slice of width W, Row(r) gives the W-wide score
// lane of M[r][rank(rowSlice[j])] for j in [0, W). Built once per lane
// (construction is eager and cheap — D*W integers, spec §9). Rows are
// built with hwy.Load, so a row holds at most hwy.MaxLanes[T]() lanes;
// NewBlock caps its lane width to that.
type Profile[T hwy.SignedInts] struct {
	dim  int
	w    int
	rows []hwy.Vec[T] // len == dim
}

// BuildProfile computes the profile for model against a row slice of up
// to width w symbols (fewer if the row segment is the trailing tail).
func BuildProfile[T hwy.SignedInts](model ScoreModel, rowSlice RankedSequence, w int) *Profile[T] {
	dim := model.Dimension()
	n := rowSlice.Len()
	if n > w {
		n = w
	}
	rows := make([]hwy.Vec[T], dim)
	scratch := make([]T, w)
	for r := 0; r < dim; r++ {
		for j := 0; j < n; j++ {
			scratch[j] = T(model.Score(byte(r), rowSlice.At(j)))
		}
		for j := n; j < w; j++ {
			scratch[j] = 0
		}
		rows[r] = hwy.Load(scratch)
	}
	return &Profile[T]{dim: dim, w: w, rows: rows}
}

// Row returns the W-wide score lane for column-symbol rank r against
// this profile's row slice.
func (p *Profile[T]) Row(r byte) hwy.Vec[T] {
	return p.rows[r]
}

// Width returns W.
func (p *Profile[T]) Width() int {
	return p.w
}
