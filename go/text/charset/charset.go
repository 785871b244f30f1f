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

// Package charset is the codepoint source of the text engine. It wraps a raw
// buffer of storage units, either 8-bit bytes in a native code page or UTF-16
// code units, and decodes it into Unicode codepoints in either direction.
package charset

import (
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"vitess.io/unitext/go/hack"
)

// RuneError is returned by the decoding helpers when no data is available.
const RuneError = utf8.RuneError

// Encoding tags the storage representation of a Text.
type Encoding uint8

const (
	// Native is an 8-bit encoding: one byte per unit, decoded through a Codepage.
	Native Encoding = iota
	// UTF16 stores 16-bit code units; supplementary codepoints use surrogate pairs.
	UTF16
)

func (e Encoding) String() string {
	switch e {
	case Native:
		return "native"
	case UTF16:
		return "utf16"
	default:
		return "unknown"
	}
}

// UnitSize returns the number of bytes in a single storage unit.
func (e Encoding) UnitSize() int {
	if e == UTF16 {
		return 2
	}
	return 1
}

// Text is a read-only view over a buffer of storage units. It is the only
// thing the engine knows about string storage: its encoding, its length in
// units and the unit at a given index. The zero value is an empty native Text.
type Text struct {
	enc   Encoding
	cp    *Codepage
	bytes []byte
	units []uint16
}

// NewNative wraps an 8-bit buffer encoded with the given code page. A nil
// code page selects DefaultCodepage.
func NewNative(b []byte, cp *Codepage) Text {
	if cp == nil {
		cp = DefaultCodepage
	}
	return Text{enc: Native, cp: cp, bytes: b}
}

// NewUTF16 wraps a buffer of UTF-16 code units. Unpaired surrogates are allowed.
func NewUTF16(u []uint16) Text {
	return Text{enc: UTF16, units: u}
}

// NativeString encodes s with DefaultCodepage. Codepoints the code page cannot
// represent are replaced with '?'.
func NativeString(s string) Text {
	b, _ := Encode(nil, s, DefaultCodepage)
	return NewNative(b, DefaultCodepage)
}

// UTF16String encodes s as UTF-16.
func UTF16String(s string) Text {
	return NewUTF16(utf16.Encode([]rune(s)))
}

// FromString picks the most compact encoding that represents s losslessly:
// native bytes when every codepoint fits DefaultCodepage, UTF-16 otherwise.
// ASCII input shares memory with s.
func FromString(s string) Text {
	ascii := true
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			ascii = false
			break
		}
	}
	if ascii {
		return NewNative(hack.StringBytes(s), DefaultCodepage)
	}
	if b, err := Encode(nil, s, DefaultCodepage); err == nil {
		return NewNative(b, DefaultCodepage)
	}
	return UTF16String(s)
}

// Encoding returns the storage encoding tag.
func (t Text) Encoding() Encoding {
	return t.enc
}

// Codepage returns the code page of a native Text, or nil for UTF-16.
func (t Text) Codepage() *Codepage {
	if t.enc != Native {
		return nil
	}
	if t.cp == nil {
		return DefaultCodepage
	}
	return t.cp
}

// Len returns the length of the Text in storage units.
func (t Text) Len() int {
	if t.enc == UTF16 {
		return len(t.units)
	}
	return len(t.bytes)
}

// IsEmpty reports whether the Text holds no units.
func (t Text) IsEmpty() bool {
	return t.Len() == 0
}

// UnitAt returns the storage unit at index i.
func (t Text) UnitAt(i int) uint16 {
	if t.enc == UTF16 {
		return t.units[i]
	}
	return uint16(t.bytes[i])
}

// Slice returns the units in [from, to). Out of range bounds are clamped and
// an inverted range yields an empty Text, so Slice never panics.
func (t Text) Slice(from, to int) Text {
	n := t.Len()
	from = clamp(from, 0, n)
	to = clamp(to, from, n)
	out := t
	if t.enc == UTF16 {
		out.units = t.units[from:to]
	} else {
		out.bytes = t.bytes[from:to]
	}
	return out
}

// Runes decodes the whole Text.
func (t Text) Runes() []rune {
	out := make([]rune, 0, t.Len())
	for i := 0; i < t.Len(); {
		r, w := DecodeRune(t, i)
		out = append(out, r)
		i += w
	}
	return out
}

// String returns the Text as UTF-8. Unpaired surrogates become U+FFFD.
func (t Text) String() string {
	var sb strings.Builder
	sb.Grow(t.Len())
	for i := 0; i < t.Len(); {
		r, w := DecodeRune(t, i)
		sb.WriteRune(r)
		i += w
	}
	return sb.String()
}

// DecodeRune decodes the codepoint starting at unit index i and returns it
// together with the number of units it occupies. It returns (RuneError, 0)
// when i is out of range.
func DecodeRune(t Text, i int) (rune, int) {
	if i < 0 || i >= t.Len() {
		return RuneError, 0
	}
	if t.enc == UTF16 {
		return decodeUTF16(t.units, i)
	}
	return t.Codepage().DecodeByte(t.bytes[i]), 1
}

// DecodeLastRune decodes the codepoint ending right before unit index end.
// It returns (RuneError, 0) when end is out of range or zero.
func DecodeLastRune(t Text, end int) (rune, int) {
	if end <= 0 || end > t.Len() {
		return RuneError, 0
	}
	if t.enc == UTF16 {
		return decodeLastUTF16(t.units, end)
	}
	return t.Codepage().DecodeByte(t.bytes[end-1]), 1
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
