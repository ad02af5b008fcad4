//go:build amd64 && goexperiment.simd

package hwy

import "simd/archsimd"

func init() {
	// Check if SIMD is disabled via environment variable
	if NoSimdEnv() {
		scalarFallback()
		return
	}

	detectCPUFeatures()
}

// detectCPUFeatures picks the widest level this process can use. The
// wider the level, the more int8 lanes align.Driver's saturated engine
// can pack into one Vec[int8] sweep (MaxLanes[int8]() = currentWidth).
func detectCPUFeatures() {
	// Use actual CPU detection from archsimd package
	if archsimd.X86.AVX512() {
		currentLevel = DispatchAVX512
		currentWidth = 64
		currentName = "avx512"
	} else if archsimd.X86.AVX2() {
		currentLevel = DispatchAVX2
		currentWidth = 32
		currentName = "avx2"
	} else if archsimd.X86.AVX() {
		// AVX without AVX2: stay at SSE2's 128-bit width
		currentLevel = DispatchSSE2 // Treat as SSE2 for safety
		currentWidth = 16
		currentName = "sse2"
	} else {
		// SSE2 is baseline for amd64
		currentLevel = DispatchSSE2
		currentWidth = 16
		currentName = "sse2"
	}
}
