//go:build amd64 && !goexperiment.simd

package hwy

// Fallback for when GOEXPERIMENT=simd is not enabled.
// This version does no CPU detection and selects SSE2, the amd64 baseline.
// For actual CPU detection, build with GOEXPERIMENT=simd.
//
// align's saturated int8 engine only needs MaxLanes[int8]() to report
// something sane here; SSE2's 16-byte width still gives it 16 lanes.

func init() {
	// Check if SIMD is disabled via environment variable
	if NoSimdEnv() {
		scalarFallback()
		return
	}

	detectCPUFeatures()
}

func detectCPUFeatures() {
	// Without GOEXPERIMENT=simd, we can't use archsimd for CPU detection.
	// Default to SSE2 which is baseline for all amd64 CPUs.
	// Build with GOEXPERIMENT=simd for proper AVX2/AVX512 detection.
	currentLevel = DispatchSSE2
	currentWidth = 16
	currentName = "sse2"
}
