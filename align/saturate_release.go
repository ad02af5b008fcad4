//go:build !satcheck

package align

// DebugSaturation is off by default; build with -tags satcheck to
// enable Rebase's widened-arithmetic overflow check.
const DebugSaturation = false
