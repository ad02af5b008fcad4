package align

// GapModel is the affine gap-penalty record from spec §6: gap of length
// k costs GapOpen + k*GapExtend. Both fields are conventionally
// negative.
type GapModel struct {
	GapOpen   int
	GapExtend int
}

// OpenDelta is the cost to open a gap and immediately take one extend
// step — the quantity the kernel adds once per cell when starting a new
// gap (spec §4.H).
func (g GapModel) OpenDelta() int {
	return g.GapOpen + g.GapExtend
}
