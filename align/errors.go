package align

import "fmt"

// InvalidSymbolError is returned when a sequence byte has no rank in the
// alphabet's rank map. Per spec §7 this aborts the alignment; the driver
// never substitutes a default score for an unrecognised symbol.
type InvalidSymbolError struct {
	Symbol   byte
	Sequence string // "seq1", "seq2", "seq1[i]"/"seq2[i]" in a batch, or "alphabet"
	Position int
}

func (e *InvalidSymbolError) Error() string {
	return fmt.Sprintf("align: invalid symbol %q in %s at position %d", e.Symbol, e.Sequence, e.Position)
}

// SaturationOverflowError is raised by the debug-time rebase check
// (spec §4.G, §7) when a narrow saturating rebase disagrees with the
// same computation performed in a widened integer type. It identifies
// everything the spec requires for diagnosis: cell and lane index, the
// narrow and expected results, and the offsets involved.
type SaturationOverflowError struct {
	CellIndex    int
	LaneIndex    int
	NarrowResult int32
	WideExpected int32
	Delta        int32
	ZeroOffset   int32
}

func (e *SaturationOverflowError) Error() string {
	return fmt.Sprintf(
		"align: saturation rebase overflow at cell %d, lane %d: narrow=%d expected=%d (delta=%d, zero=%d)",
		e.CellIndex, e.LaneIndex, e.NarrowResult, e.WideExpected, e.Delta, e.ZeroOffset,
	)
}
