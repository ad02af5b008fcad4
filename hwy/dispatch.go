// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package hwy

import "os"

// DispatchLevel identifies the SIMD instruction set the runtime has
// selected for this process.
type DispatchLevel int

const (
	DispatchScalar DispatchLevel = iota
	DispatchSSE2
	DispatchNEON
	DispatchAVX2
	DispatchAVX512
)

func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchNEON:
		return "neon"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	default:
		return "unknown"
	}
}

var (
	currentLevel DispatchLevel
	currentWidth int
	currentName  string
)

// CurrentLevel returns the SIMD dispatch level selected at init time.
func CurrentLevel() DispatchLevel { return currentLevel }

// CurrentWidth returns the native vector register width in bytes for the
// selected dispatch level.
func CurrentWidth() int { return currentWidth }

// CurrentName is a short human-readable name for the selected dispatch level.
func CurrentName() string { return currentName }

// NoSimdEnv reports whether SIMD dispatch has been disabled via the
// HWY_NO_SIMD environment variable. Set at process start to force the
// scalar fallback, e.g. for reproducing a bug on a machine with wider
// native vectors.
func NoSimdEnv() bool {
	return os.Getenv("HWY_NO_SIMD") != ""
}

// scalarFallback selects the pure-Go scalar path: no native vector
// registers, 16-byte Vec[T] backing for every lane type. Every
// per-architecture dispatch file routes through this one definition
// instead of keeping its own copy, since it's the width align.Driver's
// lane budget (hwy.MaxLanes[T], keyed off currentWidth) falls back to
// on any machine with no usable SIMD.
func scalarFallback() {
	currentLevel = DispatchScalar
	currentWidth = 16
	currentName = "scalar"
}
