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

package textbreak

import (
	"vitess.io/unitext/go/text/charset"
	"vitess.io/unitext/go/text/locale"
)

// Span is a segment of a Text in units: [Start, End).
type Span struct {
	Start, End int
}

// riBefore counts the regional indicators that end right before unit offset
// end.
func riBefore(t charset.Text, end int) int {
	n := 0
	for end > 0 {
		r, w := charset.DecodeLastRune(t, end)
		if GraphemeProperty(r) != GraphemeRegionalIndicator {
			break
		}
		n++
		end -= w
	}
	return n
}

// breakFunc reports whether unit offset p of t, which must start a codepoint,
// is a boundary. ri is the number of regional indicators ending right before
// p, which callers carry along while scanning.
type breakFunc func(t charset.Text, p, ri int) bool

// graphemeBreakAt is the breakFunc of grapheme clusters.
func graphemeBreakAt(t charset.Text, p, ri int) bool {
	if p <= 0 || p >= t.Len() {
		return true
	}
	left, _ := charset.DecodeLastRune(t, p)
	right, _ := charset.DecodeRune(t, p)
	if GraphemeProperty(left) == GraphemeRegionalIndicator && GraphemeProperty(right) == GraphemeRegionalIndicator {
		return ri%2 == 0
	}
	return IsGraphemeBoundary(left, right)
}

// base returns the codepoint owning the unit offset end of t, skipping back
// over combining marks, and the offset where it starts. It returns None when
// there is no such codepoint.
func base(t charset.Text, end int) (rune, int) {
	for end > 0 {
		r, w := charset.DecodeLastRune(t, end)
		end -= w
		if !extends(GraphemeProperty(r)) {
			return r, end
		}
	}
	return None, 0
}

// following returns the first codepoint at or after p that is not a
// combining mark, or None.
func following(t charset.Text, p int) rune {
	for p < t.Len() {
		r, w := charset.DecodeRune(t, p)
		if !extends(GraphemeProperty(r)) {
			return r
		}
		p += w
	}
	return None
}

// newline reports whether r ends a line for word segmentation.
func newline(r rune) bool {
	switch r {
	case '\r', '\n', '\v', '\f', 0x85, 0x2028, 0x2029:
		return true
	}
	return false
}

// wordBreakAt is the breakFunc of words. Combining marks stay with the
// codepoint they follow, except after a line end.
func wordBreakAt(t charset.Text, p, ri int) bool {
	if p <= 0 || p >= t.Len() {
		return true
	}
	if prev, _ := charset.DecodeLastRune(t, p); newline(prev) {
		return true
	}
	right, w := charset.DecodeRune(t, p)
	if extends(GraphemeProperty(right)) {
		return false
	}
	left, start := base(t, p)
	if left == None {
		return true
	}
	if GraphemeProperty(left) == GraphemeRegionalIndicator && GraphemeProperty(right) == GraphemeRegionalIndicator {
		return ri%2 == 0
	}
	farLeft, _ := base(t, start)
	return CanBreakWord(farLeft, left, right, following(t, p+w))
}

// countRI returns ri updated for a step over r.
func countRI(ri int, r rune) int {
	if GraphemeProperty(r) == GraphemeRegionalIndicator {
		return ri + 1
	}
	return 0
}

func nextBoundary(t charset.Text, off int, at breakFunc) int {
	if off < 0 {
		off = 0
	}
	end, _ := scanBoundary(t, off, riBefore(t, off), at)
	return end
}

// scanBoundary returns the first boundary after off together with the number
// of regional indicators ending there, given that ri of them end at off.
func scanBoundary(t charset.Text, off, ri int, at breakFunc) (int, int) {
	for off < t.Len() {
		r, w := charset.DecodeRune(t, off)
		off += w
		ri = countRI(ri, r)
		if at(t, off, ri) {
			return off, ri
		}
	}
	return t.Len(), ri
}

func prevBoundary(t charset.Text, off int, at breakFunc) int {
	if off > t.Len() {
		off = t.Len()
	}
	ri := riBefore(t, off)
	for off > 0 {
		r, w := charset.DecodeLastRune(t, off)
		off -= w
		if ri > 0 && GraphemeProperty(r) == GraphemeRegionalIndicator {
			ri--
		} else {
			ri = riBefore(t, off)
		}
		if at(t, off, ri) {
			return off
		}
	}
	return 0
}

// NextGraphemeBoundary returns the first grapheme cluster boundary after
// unit offset off, or t.Len().
func NextGraphemeBoundary(t charset.Text, off int) int {
	return nextBoundary(t, off, graphemeBreakAt)
}

// PrevGraphemeBoundary returns the last grapheme cluster boundary before
// unit offset off, or 0.
func PrevGraphemeBoundary(t charset.Text, off int) int {
	return prevBoundary(t, off, graphemeBreakAt)
}

// NextWordBoundary returns the first word boundary after unit offset off, or
// t.Len().
func NextWordBoundary(t charset.Text, off int) int {
	return nextBoundary(t, off, wordBreakAt)
}

// PrevWordBoundary returns the last word boundary before unit offset off, or
// 0.
func PrevWordBoundary(t charset.Text, off int) int {
	return prevBoundary(t, off, wordBreakAt)
}

func boundaries(t charset.Text, at breakFunc) []int {
	out := []int{0}
	for off, ri := 0, 0; off < t.Len(); {
		off, ri = scanBoundary(t, off, ri, at)
		out = append(out, off)
	}
	return out
}

func spans(bounds []int) []Span {
	out := make([]Span, 0, len(bounds))
	for i := 1; i < len(bounds); i++ {
		out = append(out, Span{Start: bounds[i-1], End: bounds[i]})
	}
	return out
}

// Graphemes splits t into grapheme clusters.
func Graphemes(t charset.Text) []Span {
	return spans(boundaries(t, graphemeBreakAt))
}

// Words splits t into words and the runs between them.
func Words(t charset.Text) []Span {
	return spans(boundaries(t, wordBreakAt))
}

// Segment returns the boundaries of kind in t, 0 and t.Len() included. seg
// is used when it is not nil; otherwise graphemes and words come from the
// tables of this package and sentences from locale.Root.
func Segment(t charset.Text, kind locale.BreakKind, seg locale.Segmenter) []int {
	if seg != nil {
		return seg.Boundaries(t, kind)
	}
	switch kind {
	case locale.Grapheme:
		return boundaries(t, graphemeBreakAt)
	case locale.Word:
		return boundaries(t, wordBreakAt)
	default:
		return locale.Root().Boundaries(t, kind)
	}
}
