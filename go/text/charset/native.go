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

package charset

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Codepage is a single-byte legacy character set. Every byte decodes to
// exactly one codepoint. Code pages with combining diacritic bytes, such as
// Windows-1258, decode those bytes to combining codepoints; composing them
// with the preceding letter is left to normalization so that equality does
// not depend on the storage encoding.
type Codepage struct {
	name      string
	cmap      *charmap.Charmap
	toUnicode [256]rune
	// latin1 is set when every byte maps to the codepoint of the same value.
	latin1 bool
}

func newCodepage(name string, cmap *charmap.Charmap) *Codepage {
	cp := &Codepage{name: name, cmap: cmap, latin1: true}
	for b := 0; b < 256; b++ {
		r := cmap.DecodeByte(byte(b))
		if r == utf8.RuneError {
			// undefined in this code page: pass the raw value through
			r = rune(b)
		}
		cp.toUnicode[b] = r
		if r != rune(b) {
			cp.latin1 = false
		}
	}
	return cp
}

var (
	// Latin1 is ISO-8859-1, where every byte is its own codepoint.
	Latin1 = newCodepage("iso-8859-1", charmap.ISO8859_1)
	// Latin9 is ISO-8859-15.
	Latin9 = newCodepage("iso-8859-15", charmap.ISO8859_15)
	// Windows1252 is the Windows western European code page.
	Windows1252 = newCodepage("windows-1252", charmap.Windows1252)
	// Windows1258 is the Windows Vietnamese code page; it carries combining
	// diacritic bytes.
	Windows1258 = newCodepage("windows-1258", charmap.Windows1258)
	// MacRoman is the classic Macintosh code page.
	MacRoman = newCodepage("macintosh", charmap.Macintosh)

	// DefaultCodepage is used by native Text values created without an
	// explicit code page.
	DefaultCodepage = Latin1
)

var codepagesByName = map[string]*Codepage{
	"iso-8859-1":   Latin1,
	"latin1":       Latin1,
	"iso-8859-15":  Latin9,
	"latin9":       Latin9,
	"windows-1252": Windows1252,
	"cp1252":       Windows1252,
	"windows-1258": Windows1258,
	"cp1258":       Windows1258,
	"macintosh":    MacRoman,
	"macroman":     MacRoman,
}

// LookupCodepage resolves a code page by name, case-insensitively.
func LookupCodepage(name string) (*Codepage, error) {
	cp, ok := codepagesByName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("unknown code page %q (known: %s)", name, strings.Join(CodepageNames(), ", "))
	}
	return cp, nil
}

// CodepageNames lists the names accepted by LookupCodepage.
func CodepageNames() []string {
	names := make([]string, 0, len(codepagesByName))
	for name := range codepagesByName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Name returns the canonical name of the code page.
func (cp *Codepage) Name() string {
	return cp.name
}

// DecodeByte maps a single byte to its codepoint.
func (cp *Codepage) DecodeByte(b byte) rune {
	return cp.toUnicode[b]
}

// EncodeRune maps a codepoint to its byte in this code page.
func (cp *Codepage) EncodeRune(r rune) (byte, bool) {
	if cp.latin1 {
		if r < 0 || r > 0xFF {
			return 0, false
		}
		return byte(r), true
	}
	if r < utf8.RuneSelf {
		if cp.toUnicode[r] == r {
			return byte(r), true
		}
	}
	return cp.cmap.EncodeRune(r)
}
