/*
Copyright 2026 The Vitess Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package filter stacks case folding and normalization on top of a
// charset.Cursor and keeps track of how many source units back the
// codepoints it has produced.
//
// A Chain is pull based. Next peeks at the upcoming codepoint, Advance
// consumes it. Because normalization may compose or reorder codepoints, a
// produced prefix only maps onto a whole range of source units at segment
// boundaries; Boundary reports when that is the case and Mark records the
// source length of the prefix produced so far.
package filter

import (
	"slices"

	"vitess.io/unitext/go/text/charset"
	"vitess.io/unitext/go/text/locale"
)

// MaxSegment caps the number of codepoints buffered for a single canonical
// segment. Longer runs of non-starters are emitted unnormalized.
const MaxSegment = 256

// Transformer is the part of a locale a Chain needs.
type Transformer interface {
	locale.Normalizer
	locale.CaseFolder
}

// Chain is the decode, fold and normalize pipeline over one Text.
type Chain struct {
	src charset.Cursor
	opt Option
	loc Transformer

	// normalize stage: seg holds the output of the current canonical
	// segment in emission order, pos is the next codepoint to emit.
	run      []rune
	seg      []rune
	pos      int
	segUnits int
	done     int  // units behind every segment before the current one
	overflow bool // inside a run of non-starters longer than MaxSegment

	marked int
}

// New returns a forward Chain over t. A nil loc selects locale.Root.
func New(t charset.Text, opt Option, loc Transformer) Chain {
	return newChain(t, opt, loc, false)
}

// NewBackward returns a Chain producing the codepoints of t from its end. The
// produced sequence is the reverse of what New produces for the same input.
func NewBackward(t charset.Text, opt Option, loc Transformer) Chain {
	return newChain(t, opt, loc, true)
}

func newChain(t charset.Text, opt Option, loc Transformer, backward bool) Chain {
	if loc == nil {
		loc = locale.Root()
	}
	return Chain{src: charset.NewCursor(t, backward), opt: opt, loc: loc}
}

// Option returns the transforms applied by the chain.
func (c *Chain) Option() Option {
	return c.opt
}

// Backward reports whether the chain runs from the end of its text.
func (c *Chain) Backward() bool {
	return c.src.Backward()
}

func (c *Chain) decode() rune {
	r := c.src.Next()
	if c.opt&Fold != 0 {
		r = c.loc.FoldRune(r)
	}
	return r
}

// HasData reports whether the chain can produce another codepoint.
func (c *Chain) HasData() bool {
	if c.opt&Normalize == 0 {
		return c.src.HasData()
	}
	c.fill()
	return c.pos < len(c.seg)
}

// Next returns the upcoming codepoint without consuming it. It returns
// charset.RuneError when the chain is exhausted.
func (c *Chain) Next() rune {
	if c.opt&Normalize == 0 {
		if !c.src.HasData() {
			return charset.RuneError
		}
		return c.decode()
	}
	c.fill()
	if c.pos >= len(c.seg) {
		return charset.RuneError
	}
	return c.seg[c.pos]
}

// Advance consumes the codepoint returned by Next.
func (c *Chain) Advance() {
	if c.opt&Normalize == 0 {
		if c.src.HasData() {
			c.src.Advance()
		}
		return
	}
	c.fill()
	if c.pos < len(c.seg) {
		c.pos++
	}
}

// Boundary reports whether the codepoints produced so far correspond to a
// whole prefix of the source units.
func (c *Chain) Boundary() bool {
	return c.opt&Normalize == 0 || c.pos == 0 || c.pos == len(c.seg)
}

// Consumed returns the number of source units behind the codepoints produced
// so far. It is exact when Boundary is true; inside a segment it reports the
// units before the segment.
func (c *Chain) Consumed() int {
	if c.opt&Normalize == 0 {
		return c.src.Consumed()
	}
	if c.pos > 0 && c.pos == len(c.seg) {
		return c.done + c.segUnits
	}
	return c.done
}

// Mark records the current source position; see Consumed.
func (c *Chain) Mark() {
	c.marked = c.Consumed()
}

// MarkedLength returns the source length recorded by the last Mark, or 0.
func (c *Chain) MarkedLength() int {
	return c.marked
}

// fill loads the next canonical segment once the current one is exhausted.
func (c *Chain) fill() {
	if c.pos < len(c.seg) {
		return
	}
	c.done += c.segUnits
	c.seg, c.pos, c.segUnits = c.seg[:0], 0, 0
	if !c.src.HasData() {
		return
	}

	start := c.src.Consumed()
	if c.src.Backward() {
		c.collectBackward()
	} else {
		c.collectForward()
	}
	c.segUnits = c.src.Consumed() - start

	switch {
	case c.overflow:
		c.seg = append(c.seg, c.run...)
	case c.src.Backward():
		slices.Reverse(c.run)
		c.seg = c.loc.Normalize(c.seg, c.run)
		slices.Reverse(c.seg)
	default:
		c.seg = c.loc.Normalize(c.seg, c.run)
	}
}

// collectForward reads a starter and the non-starters that follow it.
func (c *Chain) collectForward() {
	first := c.decode()
	c.src.Advance()
	c.run = append(c.run[:0], first)
	if c.loc.StartsSegment(first) {
		c.overflow = false
	}
	for c.src.HasData() {
		r := c.decode()
		if c.loc.StartsSegment(r) {
			return
		}
		if len(c.run) == MaxSegment {
			c.overflow = true
			return
		}
		c.run = append(c.run, r)
		c.src.Advance()
	}
}

// collectBackward reads non-starters up to and including the starter that
// owns them. The run is left in reverse order.
func (c *Chain) collectBackward() {
	c.run = c.run[:0]
	overflow := false
	for c.src.HasData() {
		if len(c.run) == MaxSegment {
			overflow = true
			break
		}
		r := c.decode()
		c.run = append(c.run, r)
		c.src.Advance()
		if c.loc.StartsSegment(r) {
			break
		}
	}
	c.overflow = overflow
}

// Runes drains a forward chain over t.
func Runes(t charset.Text, opt Option, loc Transformer) []rune {
	c := New(t, opt, loc)
	out := make([]rune, 0, t.Len())
	for c.HasData() {
		out = append(out, c.Next())
		c.Advance()
	}
	return out
}
