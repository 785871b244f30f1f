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
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(c Cursor) (out []rune) {
	for c.HasData() {
		out = append(out, c.Next())
		c.Advance()
	}
	return out
}

func TestCursorDirections(t *testing.T) {
	testCases := []struct {
		name string
		text Text
		want []rune
	}{
		{"ascii native", NativeString("abc"), []rune("abc")},
		{"latin1 native", NativeString("café"), []rune("café")},
		{"bmp utf16", UTF16String("naïve"), []rune("naïve")},
		{"supplementary", UTF16String("a😊b🤢"), []rune("a😊b🤢")},
		{"unpaired high", NewUTF16([]uint16{'a', 0xD83D, 'b'}), []rune{'a', 0xD83D, 'b'}},
		{"unpaired low", NewUTF16([]uint16{0xDE0A, 'x'}), []rune{0xDE0A, 'x'}},
		{"trailing high", NewUTF16([]uint16{'x', 0xD83D}), []rune{'x', 0xD83D}},
		{"reversed pair", NewUTF16([]uint16{0xDE0A, 0xD83D}), []rune{0xDE0A, 0xD83D}},
		{"empty", Text{}, nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			fwd := collect(NewCursor(tc.text, false))
			assert.Equal(t, tc.want, fwd)

			bwd := collect(NewCursor(tc.text, true))
			slices.Reverse(bwd)
			assert.Equal(t, tc.want, bwd, "backward traversal must mirror forward traversal")
		})
	}
}

func TestCursorPeekIsStable(t *testing.T) {
	c := NewCursor(UTF16String("😊x"), false)
	require.True(t, c.HasData())
	assert.Equal(t, rune(0x1F60A), c.Next())
	assert.Equal(t, rune(0x1F60A), c.Next())
	assert.Equal(t, 0, c.Consumed())

	c.Advance()
	assert.Equal(t, 2, c.Consumed())
	assert.Equal(t, 'x', c.Next())
	c.Advance()
	assert.False(t, c.HasData())
	assert.Equal(t, 3, c.Consumed())

	b := NewCursor(UTF16String("x😊"), true)
	assert.Equal(t, rune(0x1F60A), b.Next())
	b.Advance()
	assert.Equal(t, 2, b.Consumed())
	assert.True(t, b.Backward())
}

func TestCodepages(t *testing.T) {
	assert.Equal(t, '€', Windows1252.DecodeByte(0x80))
	// 0x81 is undefined in windows-1252 and passes through
	assert.Equal(t, rune(0x81), Windows1252.DecodeByte(0x81))
	assert.Equal(t, rune(0xE9), Latin1.DecodeByte(0xE9))
	assert.Equal(t, rune(0x0300), Windows1258.DecodeByte(0xCC))
	assert.Equal(t, 'é', MacRoman.DecodeByte(0x8E))

	b, ok := Windows1252.EncodeRune('€')
	assert.True(t, ok)
	assert.Equal(t, byte(0x80), b)

	_, ok = Latin1.EncodeRune('€')
	assert.False(t, ok)

	cp, err := LookupCodepage(" CP1252 ")
	require.NoError(t, err)
	assert.Same(t, Windows1252, cp)

	_, err = LookupCodepage("ebcdic")
	assert.Error(t, err)
	assert.Contains(t, CodepageNames(), "macroman")
}

func TestFromString(t *testing.T) {
	ascii := FromString("hello")
	assert.Equal(t, Native, ascii.Encoding())
	assert.Equal(t, 5, ascii.Len())

	latin := FromString("straße")
	assert.Equal(t, Native, latin.Encoding())
	assert.Equal(t, 6, latin.Len())
	assert.Equal(t, "straße", latin.String())

	wide := FromString("日本😊")
	assert.Equal(t, UTF16, wide.Encoding())
	assert.Equal(t, 4, wide.Len())
	assert.Equal(t, "日本😊", wide.String())
	assert.Nil(t, wide.Codepage())
}

func TestSliceClamps(t *testing.T) {
	txt := UTF16String("hello")
	assert.Equal(t, "ell", txt.Slice(1, 4).String())
	assert.Equal(t, "hello", txt.Slice(-3, 99).String())
	assert.True(t, txt.Slice(4, 2).IsEmpty())
	assert.Equal(t, UTF16, txt.Slice(4, 2).Encoding())

	n := NativeString("hello")
	assert.Equal(t, uint16('e'), n.UnitAt(1))
	assert.Equal(t, "lo", n.Slice(3, 5).String())
}

func TestDecodeHelpers(t *testing.T) {
	txt := UTF16String("a😊")
	r, w := DecodeRune(txt, 1)
	assert.Equal(t, rune(0x1F60A), r)
	assert.Equal(t, 2, w)

	r, w = DecodeLastRune(txt, 3)
	assert.Equal(t, rune(0x1F60A), r)
	assert.Equal(t, 2, w)

	_, w = DecodeRune(txt, 3)
	assert.Equal(t, 0, w)
	_, w = DecodeLastRune(txt, 0)
	assert.Equal(t, 0, w)

	assert.Equal(t, []rune("a😊"), txt.Runes())
	assert.True(t, IsSurrogate(0xDC00))
	assert.False(t, IsSurrogate(0xE000))
}

func TestEncode(t *testing.T) {
	b, err := Encode(nil, "café", Latin1)
	require.NoError(t, err)
	assert.Equal(t, []byte{'c', 'a', 'f', 0xE9}, b)

	b, err = Encode(nil, "a€b日", Latin1)
	var failed ErrFailedConversion
	require.ErrorAs(t, err, &failed)
	assert.Equal(t, ErrFailedConversion(2), failed)
	assert.Equal(t, []byte("a?b?"), b)
	assert.Equal(t, "failed to convert 2 codepoints", err.Error())
}

func TestDecode(t *testing.T) {
	le, err := Decode([]byte{0xFF, 0xFE, 'h', 0, 'i', 0}, "utf-16")
	require.NoError(t, err)
	assert.Equal(t, "hi", le.String())

	be, err := Decode([]byte{0, 'h', 0, 'i'}, "UTF-16BE")
	require.NoError(t, err)
	assert.Equal(t, "hi", be.String())

	_, err = Decode([]byte{0, 'h', 0}, "utf-16le")
	assert.ErrorIs(t, err, ErrOddLength)

	n, err := Decode([]byte{0x80}, "windows-1252")
	require.NoError(t, err)
	assert.Equal(t, "€", n.String())

	bom, err := Decode([]byte("\xEF\xBB\xBFhi"), "UTF-8")
	require.NoError(t, err)
	assert.Equal(t, "hi", bom.String())

	u, err := Decode([]byte("日本"), "utf-8")
	require.NoError(t, err)
	assert.Equal(t, UTF16, u.Encoding())

	_, err = Decode(nil, "klingon")
	assert.Error(t, err)
}
