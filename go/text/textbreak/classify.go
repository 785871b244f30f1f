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
	"fmt"
	"unicode"
)

// LineFlags is the general break class of a codepoint.
type LineFlags uint8

const (
	// ProhibitBefore marks codepoints a line must not start with.
	ProhibitBefore LineFlags = 1 << iota
	// ProhibitAfter marks codepoints a line must not end with.
	ProhibitAfter
	// Ideographic codepoints may be broken between without a space.
	Ideographic
)

// LineClass returns the general break class of r.
func LineClass(r rune) LineFlags {
	if r < 0x21 || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
		return 0
	}
	v, _ := search(lineTable, r)
	return LineFlags(v)
}

// Category is the word break category of a codepoint.
type Category uint8

const (
	WordOther Category = iota
	WordLetter
	WordNumeric
	WordKatakana
	WordMidLetter
	WordMidNum
	WordMidNumLet
	WordExtendNumLet
)

var categoryNames = [...]string{
	WordOther:        "Other",
	WordLetter:       "ALetter",
	WordNumeric:      "Numeric",
	WordKatakana:     "Katakana",
	WordMidLetter:    "MidLetter",
	WordMidNum:       "MidNum",
	WordMidNumLet:    "MidNumLet",
	WordExtendNumLet: "ExtendNumLet",
}

func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return fmt.Sprintf("Category(%d)", c)
}

// WordCategory returns the word break category of r. Codepoints the word
// table does not list are letters or digits by their general category, and
// Other otherwise.
func WordCategory(r rune) Category {
	if v, ok := search(wordTable, r); ok {
		return Category(v)
	}
	switch {
	case unicode.IsLetter(r):
		return WordLetter
	case unicode.Is(unicode.Nd, r):
		return WordNumeric
	}
	return WordOther
}

// Property is the grapheme cluster break property of a codepoint.
type Property uint8

const (
	GraphemeOther Property = iota
	GraphemeCR
	GraphemeLF
	GraphemeControl
	GraphemeExtend
	GraphemeZWJ
	GraphemeRegionalIndicator
	GraphemePrepend
	GraphemeSpacingMark
	GraphemeL
	GraphemeV
	GraphemeT
	GraphemeLV
	GraphemeLVT
)

const (
	zwnj = 0x200C
	zwj  = 0x200D

	hangulBase  = 0xAC00
	hangulEnd   = 0xD7A3
	hangulTails = 28
)

// prepend lists the Prepend codepoints that are not prepended
// concatenation marks.
var prepend = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x0D4E, Hi: 0x0D4E, Stride: 1},
	},
	R32: []unicode.Range32{
		{Lo: 0x111C2, Hi: 0x111C3, Stride: 1},
		{Lo: 0x1193F, Hi: 0x11941, Stride: 2},
		{Lo: 0x11A3A, Hi: 0x11A3A, Stride: 1},
		{Lo: 0x11A84, Hi: 0x11A89, Stride: 1},
		{Lo: 0x11D46, Hi: 0x11D46, Stride: 1},
		{Lo: 0x11F02, Hi: 0x11F02, Stride: 1},
	},
}

// emojiModifiers are Extend although their general category is Sk.
var emojiModifiers = &unicode.RangeTable{
	R32: []unicode.Range32{
		{Lo: 0x1F3FB, Hi: 0x1F3FF, Stride: 1},
	},
}

// GraphemeProperty returns the grapheme cluster break property of r.
func GraphemeProperty(r rune) Property {
	if r >= 0x20 && r < 0x7F {
		return GraphemeOther
	}
	switch r {
	case '\r':
		return GraphemeCR
	case '\n':
		return GraphemeLF
	case zwj:
		return GraphemeZWJ
	case zwnj:
		return GraphemeExtend
	}

	switch {
	case r >= 0x1100 && r <= 0x115F, r >= 0xA960 && r <= 0xA97C:
		return GraphemeL
	case r >= 0x1160 && r <= 0x11A7, r >= 0xD7B0 && r <= 0xD7C6:
		return GraphemeV
	case r >= 0x11A8 && r <= 0x11FF, r >= 0xD7CB && r <= 0xD7FB:
		return GraphemeT
	case r >= hangulBase && r <= hangulEnd:
		if (r-hangulBase)%hangulTails == 0 {
			return GraphemeLV
		}
		return GraphemeLVT
	}

	switch {
	case unicode.Is(unicode.Regional_Indicator, r):
		return GraphemeRegionalIndicator
	case unicode.Is(unicode.Prepended_Concatenation_Mark, r), unicode.Is(prepend, r):
		return GraphemePrepend
	case unicode.In(r, unicode.Mn, unicode.Me, unicode.Other_Grapheme_Extend, emojiModifiers):
		return GraphemeExtend
	case r >= 0xE0020 && r <= 0xE007F:
		return GraphemeExtend
	case unicode.Is(unicode.Mc, r):
		return GraphemeSpacingMark
	case unicode.In(r, unicode.Cc, unicode.Zl, unicode.Zp, unicode.Cf, unicode.Cs):
		return GraphemeControl
	}
	return GraphemeOther
}

func extends(p Property) bool {
	return p == GraphemeExtend || p == GraphemeZWJ || p == GraphemeSpacingMark
}
