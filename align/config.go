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

// Package align implements a vectorized affine-gap pairwise alignment
// engine: a lane/block DP matrix layout, the affine recurrence kernel,
// and the saturated-arithmetic offset rebasing that lets the kernel run
// in narrow 8-bit SIMD lanes. It is built on top of package hwy, the
// same generics-over-Vec[T] abstraction hwy uses for its other numeric
// kernels.
package align

import "fmt"

// Mode selects global (Needleman-Wunsch-style, end-to-end) or local
// (Smith-Waterman-style, best local substring) alignment.
type Mode int

const (
	Global Mode = iota
	Local
)

func (m Mode) String() string {
	if m == Local {
		return "local"
	}
	return "global"
}

// Config is the configuration record described in the design notes: a
// flat set of enumerated options rather than a nested type-list
// assembly. Build one with NewConfig and the With* options, or set the
// fields directly — there is no hidden derived state.
type Config struct {
	Mode       Mode
	Gap        GapModel
	LaneWidth  int  // number of lanes per Vec[int8], e.g. 8 or 32
	Saturated  bool // run the int8 saturated-offset engine vs a wide scalar one
	ZeroOffset int8 // saturated-zero constant, spec §3/§4.G
}

// Option configures a Config during construction.
type Option func(*Config)

// WithMode sets the alignment mode (Global or Local).
func WithMode(m Mode) Option {
	return func(c *Config) { c.Mode = m }
}

// WithGapModel sets the affine gap-open/gap-extend penalties.
func WithGapModel(gap GapModel) Option {
	return func(c *Config) { c.Gap = gap }
}

// WithLaneWidth sets the SIMD lane width (number of int8 lanes per Vec).
func WithLaneWidth(w int) Option {
	return func(c *Config) { c.LaneWidth = w }
}

// WithSaturated toggles the saturated int8 engine; false runs the
// unsaturated wide-integer engine instead (spec §8 property 4).
func WithSaturated(sat bool) Option {
	return func(c *Config) { c.Saturated = sat }
}

// WithZeroOffset overrides the saturated-zero constant. The default (0)
// centres excursions around the midpoint of int8's range when combined
// with the rebase protocol's own recentring; callers with a markedly
// skewed scoring matrix may want to shift it.
func WithZeroOffset(zero int8) Option {
	return func(c *Config) { c.ZeroOffset = zero }
}

// NewConfig builds a Config with sane defaults (global mode, width 32,
// saturated engine on) and applies opts in order.
func NewConfig(opts ...Option) Config {
	c := Config{
		Mode:      Global,
		LaneWidth: 32,
		Saturated: true,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Validate checks that gap and lane-width parameters are well-formed.
// Per spec §7, gap/score parameters are validated at configuration time;
// the core assumes them well-formed thereafter.
func (c Config) Validate() error {
	if c.Gap.GapOpen > 0 || c.Gap.GapExtend > 0 {
		return fmt.Errorf("align: gap penalties must be non-positive, got open=%d extend=%d",
			c.Gap.GapOpen, c.Gap.GapExtend)
	}
	if c.LaneWidth <= 0 || c.LaneWidth&(c.LaneWidth-1) != 0 {
		return fmt.Errorf("align: lane width must be a positive power of two, got %d", c.LaneWidth)
	}
	return nil
}
