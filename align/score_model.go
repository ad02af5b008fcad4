package align

import "fmt"

// ScoreModel is the substitution-model provider named in spec §6: given
// two already-ranked symbols it returns the substitution score between
// them, and it knows the alphabet dimension D its table is built over.
type ScoreModel interface {
	Score(rank1, rank2 byte) int
	Dimension() int
}

// MatrixScoreModel is a ScoreModel backed by a dense D×D table of
// integer scores, indexed by rank (spec §6: "For matrix-based models,
// constructed from a D×D table of integer scores plus a symbol→rank
// map").
type MatrixScoreModel struct {
	dim   int
	table []int // row-major, dim*dim
}

// NewMatrixScoreModel builds a MatrixScoreModel from a row-major D×D
// table. It returns an error if table's length isn't dim*dim.
func NewMatrixScoreModel(dim int, table []int) (*MatrixScoreModel, error) {
	if len(table) != dim*dim {
		return nil, fmt.Errorf("align: score matrix has %d entries, want %d*%d=%d", len(table), dim, dim, dim*dim)
	}
	cp := make([]int, len(table))
	copy(cp, table)
	return &MatrixScoreModel{dim: dim, table: cp}, nil
}

// NewUniformScoreModel builds the common two-parameter DNA/protein model:
// `match` on the diagonal, `mismatch` everywhere else, over an alphabet
// of dimension dim.
func NewUniformScoreModel(dim, match, mismatch int) *MatrixScoreModel {
	table := make([]int, dim*dim)
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			if i == j {
				table[i*dim+j] = match
			} else {
				table[i*dim+j] = mismatch
			}
		}
	}
	return &MatrixScoreModel{dim: dim, table: table}
}

// Score returns M[rank1][rank2].
func (m *MatrixScoreModel) Score(rank1, rank2 byte) int {
	return m.table[int(rank1)*m.dim+int(rank2)]
}

// Dimension returns D.
func (m *MatrixScoreModel) Dimension() int {
	return m.dim
}
