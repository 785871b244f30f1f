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
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/clipperhouse/uax29/v2/graphemes"
	"github.com/clipperhouse/uax29/v2/sentences"
	"github.com/clipperhouse/uax29/v2/words"

	"vitess.io/unitext/go/text/charset"
)

// BreakKind selects the unit of segmentation.
type BreakKind uint8

const (
	Grapheme BreakKind = iota
	Word
	Sentence
)

func (k BreakKind) String() string {
	switch k {
	case Grapheme:
		return "grapheme"
	case Word:
		return "word"
	case Sentence:
		return "sentence"
	default:
		return fmt.Sprintf("BreakKind(%d)", uint8(k))
	}
}

// ParseBreakKind parses the name of a BreakKind.
func ParseBreakKind(name string) (BreakKind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "grapheme", "graphemes", "char":
		return Grapheme, nil
	case "word", "words":
		return Word, nil
	case "sentence", "sentences":
		return Sentence, nil
	}
	return 0, fmt.Errorf("invalid break kind %q: expected grapheme, word or sentence", name)
}

type tokenIterator interface {
	Next() bool
	End() int
}

// Boundaries returns the sorted unit offsets of every boundary of kind in t,
// including 0 and t.Len(). The text is segmented with the UAX #29 rules.
func (l *Locale) Boundaries(t charset.Text, kind BreakKind) []int {
	if t.IsEmpty() {
		return []int{0}
	}

	// unitAt maps the byte offset of every rune start in s back to the
	// unit offset it was decoded from.
	var sb strings.Builder
	sb.Grow(t.Len())
	unitAt := make([]int, 0, t.Len()+1)
	for i := 0; i < t.Len(); {
		r, w := charset.DecodeRune(t, i)
		if !utf8.ValidRune(r) {
			r = utf8.RuneError
		}
		for range utf8.RuneLen(r) {
			unitAt = append(unitAt, i)
		}
		sb.WriteRune(r)
		i += w
	}
	unitAt = append(unitAt, t.Len())
	s := sb.String()

	var iter tokenIterator
	switch kind {
	case Word:
		iter = words.FromString(s)
	case Sentence:
		iter = sentences.FromString(s)
	default:
		iter = graphemes.FromString(s)
	}

	out := []int{0}
	for iter.Next() {
		out = append(out, unitAt[iter.End()])
	}
	return out
}
