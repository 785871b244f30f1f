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
	"vitess.io/unitext/go/text/charset"
	"vitess.io/unitext/go/text/filter"
)

type match byte

const (
	matchOK match = iota
	matchFail
	matchOver
)

// wildcardRecursionDepth is the maximum number of nested '*' expansions
// tried while matching a single pattern. Deeper patterns do not match.
const wildcardRecursionDepth = 128

const (
	wildcardOne   = '?'
	wildcardMany  = '*'
	classOpen     = '['
	classClose    = ']'
	classNegate   = '!'
	classRangeSep = '-'
)

// WildcardMatch reports whether src matches the glob pattern pat. '?'
// matches one codepoint, '*' any run of codepoints, and '[...]' one
// codepoint out of a set of literals and ranges ('[!...]' negates the set).
// Literals and set members compare under opt. An unterminated '[' is a
// literal.
func (e *Engine) WildcardMatch(src, pat charset.Text, opt filter.Option) bool {
	w := wildcard{e: e, src: src, pat: pat, opt: opt}
	return w.matchInner(0, 0, 0) == matchOK
}

type wildcard struct {
	e        *Engine
	src, pat charset.Text
	opt      filter.Option
}

// matchInner matches the source from unit offset sOff against the pattern
// from unit offset pOff. Recursion only happens on '*', always on offsets
// into the two buffers.
func (w *wildcard) matchInner(sOff, pOff, depth int) match {
	if depth >= wildcardRecursionDepth {
		return matchFail
	}

	s := w.e.forward(w.src.Slice(sOff, w.src.Len()), w.opt)
	p := w.e.forward(w.pat.Slice(pOff, w.pat.Len()), w.opt)

	for p.HasData() {
		switch p.Next() {
		case wildcardMany:
			// Marks after the stars stay in the pattern as literals.
			rest := w.skipStars(pOff + p.Consumed())
			if rest == w.pat.Len() {
				return matchOK
			}
			return w.matchMany(&s, sOff, rest, depth)

		case wildcardOne:
			if !s.HasData() {
				return matchFail
			}
			s.Advance()
			p.Advance()

		case classOpen:
			start := pOff + p.Consumed()
			cls, end, ok := w.parseClass(start)
			if !ok {
				// unterminated: the bracket is a literal
				if !s.HasData() || s.Next() != classOpen {
					return matchFail
				}
				s.Advance()
				p.Advance()
				continue
			}
			if !s.HasData() || !cls.contains(s.Next()) {
				return matchFail
			}
			s.Advance()
			pOff = end
			p = w.e.forward(w.pat.Slice(pOff, w.pat.Len()), w.opt)

		default:
			if !s.HasData() || s.Next() != p.Next() {
				return matchFail
			}
			s.Advance()
			p.Advance()
		}
	}

	if s.HasData() {
		return matchFail
	}
	return matchOK
}

// skipStars returns the pattern offset past the run of '*' starting at off.
func (w *wildcard) skipStars(off int) int {
	for off < w.pat.Len() {
		r, size := charset.DecodeRune(w.pat, off)
		if r != wildcardMany {
			break
		}
		off += size
	}
	return off
}

// matchMany tries the pattern from pOff against every source position from
// the current one onward. It returns matchOver once the source runs out, so
// enclosing stars stop trying shorter suffixes.
func (w *wildcard) matchMany(s *filter.Chain, sOff, pOff, depth int) match {
	for {
		if s.Boundary() {
			m := w.matchInner(sOff+s.Consumed(), pOff, depth+1)
			if m != matchFail {
				return m
			}
		}
		if !s.HasData() {
			return matchOver
		}
		s.Advance()
	}
}

type classRange struct {
	lo, hi rune
}

type charClass struct {
	negate bool
	ranges []classRange
}

func (c *charClass) contains(r rune) bool {
	for _, rg := range c.ranges {
		if rg.lo <= r && r <= rg.hi {
			return !c.negate
		}
	}
	return c.negate
}

// parseClass reads the bracket expression starting at pattern offset start
// and returns it together with the offset just past its closing bracket. A
// ']' right after the opening bracket or the negation is a member.
func (w *wildcard) parseClass(start int) (charClass, int, bool) {
	var cls charClass
	p := w.e.forward(w.pat.Slice(start, w.pat.Len()), w.opt)
	p.Advance() // '['

	if p.HasData() && p.Next() == classNegate {
		cls.negate = true
		p.Advance()
	}

	first := true
	for p.HasData() {
		// exact for starters such as the closing bracket
		at := start + p.Consumed()
		lo := p.Next()
		p.Advance()
		if lo == classClose && !first {
			_, size := charset.DecodeRune(w.pat, at)
			return cls, at + size, true
		}
		first = false

		hi := lo
		if p.HasData() && p.Next() == classRangeSep {
			p.Advance()
			if !p.HasData() {
				break
			}
			if p.Next() == classClose {
				// trailing '-' is a member
				cls.ranges = append(cls.ranges, classRange{lo, lo}, classRange{classRangeSep, classRangeSep})
				continue
			}
			hi = p.Next()
			p.Advance()
		}
		if hi < lo {
			lo, hi = hi, lo
		}
		cls.ranges = append(cls.ranges, classRange{lo, hi})
	}
	return charClass{}, 0, false
}
