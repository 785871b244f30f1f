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

package locale

import (
	"cmp"
	"slices"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

const (
	// Below this codepoint every character is a stable NFC starter.
	firstCombining = 0x300
	// maxStreamSafe is a starter plus the 30 non-starters allowed by the
	// Stream-Safe Text Format. norm inserts U+034F into longer runs, so they
	// are ordered and composed by composeLong instead.
	maxStreamSafe = 31
)

// Normalize appends the NFC form of run to dst. Runs holding codepoints that
// have no UTF-8 form, such as unpaired surrogates, are appended unchanged.
func (l *Locale) Normalize(dst, run []rune) []rune {
	if len(run) == 1 && run[0] < firstCombining {
		return append(dst, run[0])
	}
	for _, r := range run {
		if !utf8.ValidRune(r) {
			return append(dst, run...)
		}
	}
	if len(run) > maxStreamSafe {
		return composeLong(dst, run)
	}

	var stack [64]byte
	buf := stack[:0]
	for _, r := range run {
		buf = utf8.AppendRune(buf, r)
	}

	composed := norm.NFC.Bytes(buf)
	for len(composed) > 0 {
		r, size := utf8.DecodeRune(composed)
		dst = append(dst, r)
		composed = composed[size:]
	}
	return dst
}

func ccc(r rune) uint8 {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	return norm.NFC.Properties(buf[:n]).CCC()
}

// composePair returns the primary composite of a and b, if any.
func composePair(a, b rune) (rune, bool) {
	var buf [2 * utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], a)
	n += utf8.EncodeRune(buf[n:], b)
	out := norm.NFC.Bytes(buf[:n])
	r, size := utf8.DecodeRune(out)
	if size != len(out) {
		return 0, false
	}
	return r, true
}

// composeLong applies the canonical decomposition, ordering and composition
// steps of NFC to a run of any length, one codepoint at a time.
func composeLong(dst, run []rune) []rune {
	seq := make([]rune, 0, len(run)+8)
	for _, r := range run {
		for _, d := range norm.NFD.String(string(r)) {
			seq = append(seq, d)
		}
	}

	for i := 0; i < len(seq); {
		if ccc(seq[i]) == 0 {
			i++
			continue
		}
		j := i + 1
		for j < len(seq) && ccc(seq[j]) != 0 {
			j++
		}
		slices.SortStableFunc(seq[i:j], func(a, b rune) int {
			return cmp.Compare(ccc(a), ccc(b))
		})
		i = j
	}

	if ccc(seq[0]) != 0 {
		return append(dst, seq...)
	}

	// rest holds what follows starter without composing with it; it never
	// contains a starter, and its last element has the highest class.
	starter := seq[0]
	var rest []rune
	var last uint8
	for _, r := range seq[1:] {
		class := ccc(r)
		if len(rest) == 0 || last < class {
			if p, ok := composePair(starter, r); ok {
				starter = p
				continue
			}
		}
		if class == 0 {
			dst = append(append(dst, starter), rest...)
			starter, rest = r, rest[:0]
			continue
		}
		rest = append(rest, r)
		last = class
	}
	return append(append(dst, starter), rest...)
}

// StartsSegment reports whether r has a normalization boundary before it,
// that is, whether r can never combine with anything that precedes it.
func (l *Locale) StartsSegment(r rune) bool {
	if r < firstCombining || !utf8.ValidRune(r) {
		return true
	}
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	return norm.NFC.Properties(buf[:n]).BoundaryBefore()
}
