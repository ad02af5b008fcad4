//go:build amd64

package hwy

import "golang.org/x/sys/cpu"

// HasF16C reports whether the CPU supports the F16C half-precision
// conversion instructions.
func HasF16C() bool {
	return cpu.X86.HasF16C
}

// HasAVX512FP16 reports whether AVX-512 F, BW and VL are all present; it
// does not read the AVX512-FP16 feature bit itself.
func HasAVX512FP16() bool {
	return cpu.X86.HasAVX512F && cpu.X86.HasAVX512BW && cpu.X86.HasAVX512VL
}

// HasAVX512BF16 returns false: golang.org/x/sys/cpu does not currently
// expose an AVX512_BF16 feature bit.
func HasAVX512BF16() bool {
	return false
}

// HasARMFP16 returns false on x86 (ARM FP16 is ARM-specific).
func HasARMFP16() bool {
	return false
}

// HasARMBF16 returns false on x86 (ARM BF16 is ARM-specific).
func HasARMBF16() bool {
	return false
}
