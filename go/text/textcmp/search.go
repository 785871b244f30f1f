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

package textcmp

import (
	"unicode/utf16"

	"vitess.io/unitext/go/text/charset"
	"vitess.io/unitext/go/text/filter"
)

// An empty needle is never found: searches report -1 or false for it.

// single returns the only codepoint a filtered needle produces.
func (e *Engine) single(needle charset.Text, opt filter.Option) (rune, bool) {
	c := e.forward(needle, opt)
	if !c.HasData() {
		return 0, false
	}
	r := c.Next()
	c.Advance()
	if c.HasData() {
		return 0, false
	}
	return r, true
}

// prepare filters a lone needle codepoint the way a chain would.
func (e *Engine) prepare(r rune, opt filter.Option) (rune, bool) {
	if opt&filter.Fold != 0 {
		r = e.loc.FoldRune(r)
	}
	if opt&filter.Normalize != 0 {
		out := e.loc.Normalize(nil, []rune{r})
		if len(out) != 1 {
			return 0, false
		}
		r = out[0]
	}
	return r, true
}

// startsCandidate reports whether a match may begin at unit offset off of t.
// Under normalization only segment starts qualify.
func (e *Engine) startsCandidate(t charset.Text, off int, opt filter.Option) bool {
	if off == 0 || opt&filter.Normalize == 0 {
		return true
	}
	r, _ := charset.DecodeRune(t, off)
	if opt&filter.Fold != 0 {
		r = e.loc.FoldRune(r)
	}
	return e.loc.StartsSegment(r)
}

// matchAt reports whether needle occurs at unit offset off of t and returns
// the number of units of t it covers.
func (e *Engine) matchAt(t charset.Text, off int, needle charset.Text, opt filter.Option) (int, bool) {
	ct := e.forward(t.Slice(off, t.Len()), opt)
	cn := e.forward(needle, opt)
	nt, nn := sharedPrefix(&ct, &cn)
	if nn != needle.Len() || nt == 0 {
		return 0, false
	}
	return nt, true
}

// indexOf is the forward scan shared by FirstIndexOf and Find.
func (e *Engine) indexOf(t, needle charset.Text, opt filter.Option) Range {
	if needle.IsEmpty() {
		return Range{Offset: -1}
	}
	if r, ok := e.single(needle, opt); ok {
		return e.indexOfChar(t, r, opt)
	}
	for off := 0; off < t.Len(); {
		if e.startsCandidate(t, off, opt) {
			if n, ok := e.matchAt(t, off, needle, opt); ok {
				return Range{Offset: off, Length: n}
			}
		}
		_, w := charset.DecodeRune(t, off)
		off += w
	}
	return Range{Offset: -1}
}

func (e *Engine) lastIndexOf(t, needle charset.Text, opt filter.Option) Range {
	if needle.IsEmpty() {
		return Range{Offset: -1}
	}
	if r, ok := e.single(needle, opt); ok {
		return e.lastIndexOfChar(t, r, opt)
	}
	for end := t.Len(); end > 0; {
		_, w := charset.DecodeLastRune(t, end)
		off := end - w
		if e.startsCandidate(t, off, opt) {
			if n, ok := e.matchAt(t, off, needle, opt); ok {
				return Range{Offset: off, Length: n}
			}
		}
		end = off
	}
	return Range{Offset: -1}
}

// indexOfChar scans the filtered codepoints of t for r, which must already
// be filtered. A hit must cover whole source segments.
func (e *Engine) indexOfChar(t charset.Text, r rune, opt filter.Option) Range {
	c := e.forward(t, opt)
	for c.HasData() {
		start, whole := c.Consumed(), c.Boundary()
		hit := c.Next() == r
		c.Advance()
		if hit && whole && c.Boundary() {
			return Range{Offset: start, Length: c.Consumed() - start}
		}
	}
	return Range{Offset: -1}
}

func (e *Engine) lastIndexOfChar(t charset.Text, r rune, opt filter.Option) Range {
	c := e.backward(t, opt)
	for c.HasData() {
		end, whole := c.Consumed(), c.Boundary()
		hit := c.Next() == r
		c.Advance()
		if hit && whole && c.Boundary() {
			start := t.Len() - c.Consumed()
			return Range{Offset: start, Length: t.Len() - end - start}
		}
	}
	return Range{Offset: -1}
}

// FirstIndexOf returns the unit offset of the first occurrence of needle in
// t, or -1.
func (e *Engine) FirstIndexOf(t, needle charset.Text, opt filter.Option) int {
	return e.indexOf(t, needle, opt).Offset
}

// LastIndexOf returns the unit offset of the last occurrence of needle in t,
// or -1.
func (e *Engine) LastIndexOf(t, needle charset.Text, opt filter.Option) int {
	return e.lastIndexOf(t, needle, opt).Offset
}

// Contains reports whether needle occurs in t.
func (e *Engine) Contains(t, needle charset.Text, opt filter.Option) bool {
	return e.FirstIndexOf(t, needle, opt) >= 0
}

// charNeedle filters r for a codepoint search. It returns false when
// normalization expands r, in which case a text search is needed.
func (e *Engine) charNeedle(r rune, opt filter.Option) (rune, charset.Text, bool) {
	if p, ok := e.prepare(r, opt); ok {
		return p, charset.Text{}, true
	}
	return 0, charset.NewUTF16(utf16.AppendRune(nil, r)), false
}

// FirstIndexOfChar returns the unit offset of the first occurrence of the
// codepoint r in t, or -1.
func (e *Engine) FirstIndexOfChar(t charset.Text, r rune, opt filter.Option) int {
	p, needle, ok := e.charNeedle(r, opt)
	if !ok {
		return e.FirstIndexOf(t, needle, opt)
	}
	return e.indexOfChar(t, p, opt).Offset
}

// LastIndexOfChar returns the unit offset of the last occurrence of the
// codepoint r in t, or -1.
func (e *Engine) LastIndexOfChar(t charset.Text, r rune, opt filter.Option) int {
	p, needle, ok := e.charNeedle(r, opt)
	if !ok {
		return e.LastIndexOf(t, needle, opt)
	}
	return e.lastIndexOfChar(t, p, opt).Offset
}

// Find looks for needle inside the units of t covered by within and returns
// the matched source range. Its length may differ from the needle's under
// normalization. Out of range bounds are clipped; a negative length extends
// to the end of t.
func (e *Engine) Find(t charset.Text, within Range, needle charset.Text, opt filter.Option) (Range, bool) {
	within = within.clip(t.Len())
	found := e.indexOf(t.Slice(within.Offset, within.End()), needle, opt)
	if found.Offset < 0 {
		return Range{Offset: -1}, false
	}
	found.Offset += within.Offset
	return found, true
}

// Count returns the number of non-overlapping occurrences of needle inside
// within.
func (e *Engine) Count(t charset.Text, within Range, needle charset.Text, opt filter.Option) int {
	within = within.clip(t.Len())
	n := 0
	for within.Length > 0 {
		found, ok := e.Find(t, within, needle, opt)
		if !ok {
			break
		}
		n++
		end := found.End()
		within = Range{Offset: end, Length: within.End() - end}
	}
	return n
}
