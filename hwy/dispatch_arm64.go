//go:build arm64

package hwy

import "golang.org/x/sys/cpu"

func init() {
	if NoSimdEnv() {
		scalarFallback()
		return
	}
	detectCPUFeatures()
}

func detectCPUFeatures() {
	if cpu.ARM64.HasASIMD {
		currentLevel = DispatchNEON
		currentWidth = 16
		currentName = "neon"
		return
	}
	scalarFallback()
}

// HasF16C returns false on ARM64 (F16C is an x86-specific feature).
func HasF16C() bool {
	return false
}

// HasAVX512FP16 returns false on ARM64 (AVX-512 is x86-specific).
func HasAVX512FP16() bool {
	return false
}

// HasAVX512BF16 returns false on ARM64 (AVX-512 is x86-specific).
func HasAVX512BF16() bool {
	return false
}

// HasARMFP16 reports whether the CPU supports ARMv8.2 FP16 scalar arithmetic.
func HasARMFP16() bool {
	return cpu.ARM64.HasFPHP
}

// HasARMBF16 reports cpu.ARM64.HasASIMDFHM (the FP16 fused multiply-add
// extension); it does not read a dedicated BFloat16 feature bit.
func HasARMBF16() bool {
	return cpu.ARM64.HasASIMDFHM
}
