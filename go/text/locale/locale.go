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

// Package locale provides the locale services consumed by the text engine:
// canonical normalization, simple case folding, strength-aware collation and
// full text segmentation. The engine only sees the small interfaces declared
// here; Locale implements all of them on top of golang.org/x/text and
// github.com/clipperhouse/uax29.
package locale

import (
	"fmt"
	"strings"
	"sync"

	"golang.org/x/text/language"

	"vitess.io/unitext/go/text/charset"
)

// Normalizer composes canonical segments.
type Normalizer interface {
	// Normalize appends the canonical composition of run to dst. run is a
	// single segment: a starter followed by its non-starters.
	Normalize(dst, run []rune) []rune
	// StartsSegment reports whether a canonical segment may begin at r.
	StartsSegment(r rune) bool
}

// CaseFolder maps a codepoint to its simple case fold.
type CaseFolder interface {
	FoldRune(r rune) rune
}

// Collator orders two texts according to the locale's collation rules.
type Collator interface {
	Collate(a, b charset.Text, s Strength) int
}

// Segmenter finds the boundaries of a text with a full segmentation engine.
type Segmenter interface {
	Boundaries(t charset.Text, kind BreakKind) []int
}

// Services is everything the engine may ask of a locale.
type Services interface {
	Normalizer
	CaseFolder
	Collator
	Segmenter
}

var _ Services = (*Locale)(nil)

// Locale is a set of locale services bound to a language tag. A Locale is
// safe for concurrent use and must not be copied.
type Locale struct {
	tag    language.Tag
	turkic bool

	collators [numStrengths]sync.Pool
}

var (
	turkish     = language.MustParseBase("tr")
	azerbaijani = language.MustParseBase("az")

	root = New(language.Und)
)

// Root returns the locale-independent locale.
func Root() *Locale {
	return root
}

// New returns a Locale for tag.
func New(tag language.Tag) *Locale {
	l := &Locale{tag: tag}
	base, conf := tag.Base()
	if conf >= language.High {
		l.turkic = base == turkish || base == azerbaijani
	}
	for s := range l.collators {
		l.collators[s].New = l.newCollator(Strength(s))
	}
	return l
}

// Parse returns a Locale for a BCP 47 name. The empty name and "root" yield Root.
func Parse(name string) (*Locale, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.EqualFold(name, "root") {
		return Root(), nil
	}
	tag, err := language.Parse(name)
	if err != nil {
		return nil, fmt.Errorf("parsing locale %q: %w", name, err)
	}
	return New(tag), nil
}

// Tag returns the language tag of the locale.
func (l *Locale) Tag() language.Tag {
	return l.tag
}

func (l *Locale) String() string {
	if l.tag == language.Und {
		return "root"
	}
	return l.tag.String()
}

// Turkic reports whether the locale folds dotted and dotless i the Turkic way.
func (l *Locale) Turkic() bool {
	return l.turkic
}
