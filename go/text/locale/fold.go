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
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

var turkicFold = strings.NewReplacer("I", "ı", "İ", "i")

// FoldRune returns the simple case fold of r. Turkic locales fold 'I' to
// dotless 'ı' and 'İ' to 'i'.
func (l *Locale) FoldRune(r rune) rune {
	if l.turkic {
		switch r {
		case 'I':
			return 'ı'
		case 'İ':
			return 'i'
		}
	}
	return SimpleFold(r)
}

// SimpleFold maps r to its simple (one-to-one) case fold, the status C and S
// entries of CaseFolding.txt. Characters whose only fold expands, like 'ß',
// fold to themselves.
func SimpleFold(r rune) rune {
	if r < utf8.RuneSelf {
		if 'A' <= r && r <= 'Z' {
			return r + 'a' - 'A'
		}
		return r
	}
	switch {
	case r == 'İ' || r == 'ı':
		// only the Turkic entries touch these
		return r
	case 0x13A0 <= r && r <= 0x13F5, 0x13F8 <= r && r <= 0x13FD, 0xAB70 <= r && r <= 0xABBF:
		// Cherokee folds to uppercase
		return unicode.ToUpper(r)
	}
	return unicode.ToLower(unicode.ToUpper(r))
}

// Upper maps s to upper case using the locale's rules.
func (l *Locale) Upper(s string) string {
	return cases.Upper(l.tag).String(s)
}

// Lower maps s to lower case using the locale's rules.
func (l *Locale) Lower(s string) string {
	return cases.Lower(l.tag).String(s)
}

// Title maps s to title case using the locale's rules.
func (l *Locale) Title(s string) string {
	return cases.Title(l.tag).String(s)
}

// Fold applies full case folding to s. Unlike FoldRune it may change the
// number of codepoints.
func (l *Locale) Fold(s string) string {
	if l.turkic {
		s = turkicFold.Replace(s)
	}
	return cases.Fold().String(s)
}
