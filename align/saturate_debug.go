//go:build satcheck

package align

// DebugSaturation gates the overflow-verification pass in Rebase. Built
// in via the satcheck tag so the check can ship in release binaries
// without always paying for it (spec §9 Open Question).
const DebugSaturation = true
