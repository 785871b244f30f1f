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
	"fmt"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vitess.io/unitext/go/text/charset"
	"vitess.io/unitext/go/text/filter"
	"vitess.io/unitext/go/text/locale"
)

var allOptions = []filter.Option{filter.Exact, filter.Normalized, filter.Folded, filter.Caseless}

const (
	cafeNFC = "caf\u00e9"
	cafeNFD = "cafe\u0301"
)

func TestCompare(t *testing.T) {
	testCases := []struct {
		a, b charset.Text
		opt  filter.Option
		want int
	}{
		{native("abc"), wide("abc"), filter.Exact, 0},
		{native("abc"), native("abd"), filter.Exact, -1},
		{wide("abd"), native("abc"), filter.Exact, 1},
		{native("ab"), wide("abc"), filter.Exact, -1},
		{native(""), wide(""), filter.Exact, 0},
		{native(""), native("a"), filter.Caseless, -1},
		{wide(cafeNFC), wide(cafeNFD), filter.Normalized, 0},
		{wide(cafeNFC), wide(cafeNFD), filter.Exact, 1},
		{native(cafeNFC), wide(cafeNFD), filter.Normalized, 0},
		{native("HELLO"), wide("hello"), filter.Caseless, 0},
		{native("HELLO"), wide("hello"), filter.Normalized, -1},
		{wide("\u00c9T\u00c9"), wide("e\u0301te\u0301"), filter.Caseless, 0},
		{wide("stra\u00dfe"), wide("STRASSE"), filter.Caseless, 1},
		{charset.NewUTF16([]uint16{0xD800}), charset.NewUTF16([]uint16{0xDC00}), filter.Exact, -1},
		{charset.NewUTF16([]uint16{0xD800, 0x0301}), charset.NewUTF16([]uint16{0xD800, 0x0301}), filter.Caseless, 0},
		{wide("\U0001F600"), wide("\uffff"), filter.Exact, 1},
	}

	for i, tc := range testCases {
		t.Run(fmt.Sprintf("%d/%s", i, tc.opt), func(t *testing.T) {
			assert.Equal(t, tc.want, Compare(tc.a, tc.b, tc.opt))
			assert.Equal(t, -tc.want, Compare(tc.b, tc.a, tc.opt))
			assert.Equal(t, tc.want == 0, Equal(tc.a, tc.b, tc.opt))
		})
	}
}

func TestSharedPrefix(t *testing.T) {
	testCases := []struct {
		name   string
		a, b   charset.Text
		opt    filter.Option
		na, nb int
	}{
		{"simple folding keeps sharp s", native("straße"), native("strasse"), filter.Folded, 4, 4},
		{"caseless sharp s", wide("STRAßE"), native("strasse"), filter.Caseless, 4, 4},
		{"mixed forms", wide(cafeNFC), wide(cafeNFD + "x"), filter.Normalized, 4, 5},
		{"no partial segment", wide("a\u0301\u0301"), wide("\u00e1"), filter.Normalized, 0, 0},
		{"exact stops at mark", wide(cafeNFD), wide("cafe"), filter.Exact, 4, 4},
		{"normalized refuses base of composed", wide(cafeNFD), wide("cafe"), filter.Normalized, 3, 3},
		{"surrogates", wide("\U0001F600a"), wide("\U0001F600b"), filter.Exact, 2, 2},
		{"mixed encodings", native("hello"), wide("help"), filter.Exact, 3, 3},
		{"empty", native(""), wide("abc"), filter.Caseless, 0, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			na, nb := SharedPrefix(tc.a, tc.b, tc.opt)
			assert.Equal(t, tc.na, na, "length in a")
			assert.Equal(t, tc.nb, nb, "length in b")

			nb, na = SharedPrefix(tc.b, tc.a, tc.opt)
			assert.Equal(t, tc.na, na, "swapped length in a")
			assert.Equal(t, tc.nb, nb, "swapped length in b")
		})
	}
}

func TestSharedSuffix(t *testing.T) {
	testCases := []struct {
		name   string
		a, b   charset.Text
		opt    filter.Option
		na, nb int
	}{
		{"ascii", native("testing"), wide("running"), filter.Exact, 3, 3},
		{"mixed forms", wide(cafeNFD), wide("\u00e9"), filter.Normalized, 2, 1},
		{"caseless", native("Hello, WORLD"), wide("world"), filter.Caseless, 5, 5},
		{"exact mark", wide(cafeNFD), wide("\u0301"), filter.Exact, 1, 1},
		{"normalized mark", wide(cafeNFD), wide("\u0301"), filter.Normalized, 0, 0},
		{"surrogates", wide("a\U0001F600"), wide("b\U0001F600"), filter.Exact, 2, 2},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			na, nb := SharedSuffix(tc.a, tc.b, tc.opt)
			assert.Equal(t, tc.na, na, "length in a")
			assert.Equal(t, tc.nb, nb, "length in b")
		})
	}
}

func TestBeginsEndsWith(t *testing.T) {
	n, ok := Default().BeginsWithLength(native("Hello, World"), wide("HELLO"), filter.Caseless)
	require.True(t, ok)
	assert.Equal(t, 5, n)

	assert.False(t, BeginsWith(native("Hello, World"), wide("HELLO"), filter.Exact))
	assert.True(t, BeginsWith(native("Hello"), native(""), filter.Exact))
	assert.True(t, BeginsWith(native(""), native(""), filter.Exact))
	assert.False(t, BeginsWith(native(""), native("a"), filter.Exact))
	assert.False(t, BeginsWith(wide("e\u0301te\u0301"), wide("e"), filter.Normalized))
	assert.True(t, BeginsWith(wide("e\u0301te\u0301"), wide("e"), filter.Exact))
	assert.True(t, BeginsWith(wide("e\u0301te\u0301"), native("\u00e9"), filter.Normalized))

	n, ok = Default().EndsWithLength(wide(cafeNFD), wide("\u00e9"), filter.Normalized)
	require.True(t, ok)
	assert.Equal(t, 2, n)

	assert.True(t, EndsWith(native("Hello, World"), wide("WORLD"), filter.Caseless))
	assert.False(t, EndsWith(native("Hello, World"), wide("WORLD"), filter.Exact))
	assert.True(t, EndsWith(native("abc"), native(""), filter.Caseless))
	assert.False(t, EndsWith(wide(cafeNFD), wide("e"), filter.Normalized))
	assert.True(t, EndsWith(wide(cafeNFD), wide("\u0301"), filter.Exact))
}

func TestLongMarkRuns(t *testing.T) {
	interleaved := "a" + strings.Repeat("\u0316\u0301", 20)
	sorted := "a" + strings.Repeat("\u0316", 20) + strings.Repeat("\u0301", 20)
	composed := "\u00e1" + strings.Repeat("\u0316", 20) + strings.Repeat("\u0301", 19)

	for _, other := range []string{sorted, composed} {
		a, b := wide(interleaved+"x"), wide(other+"x")
		assert.Equal(t, 0, Compare(a, b, filter.Normalized), "%+q", other)
		assert.Equal(t, 0, Compare(b, a, filter.Caseless), "%+q", other)
		assert.Equal(t, Hash(a, filter.Normalized), Hash(b, filter.Normalized))
		assert.Equal(t, Hash64(a, filter.Folded), Hash64(b, filter.Folded))

		sa, sb := SharedSuffix(a, b, filter.Normalized)
		assert.Equal(t, a.Len(), sa)
		assert.Equal(t, b.Len(), sb)
	}
	assert.NotEqual(t, 0, Compare(wide(interleaved), wide(sorted), filter.Exact))
}

func reversed(s string) charset.Text {
	r := []rune(s)
	slices.Reverse(r)
	return wide(string(r))
}

func TestPrefixSuffixDuality(t *testing.T) {
	pairs := [][2]string{
		{"abcdef", "xbcdef"},
		{"Hello", "hello"},
		{"straße", "STRASSE"},
		{"\U0001F600\U0001F601x", "\U0001F601x"},
		{"", "abc"},
		{"same", "same"},
	}
	for _, p := range pairs {
		for _, opt := range []filter.Option{filter.Exact, filter.Folded} {
			sa, sb := SharedSuffix(wide(p[0]), wide(p[1]), opt)
			ra, rb := SharedPrefix(reversed(p[0]), reversed(p[1]), opt)
			assert.Equal(t, ra, sa, "%q/%q %s", p[0], p[1], opt)
			assert.Equal(t, rb, sb, "%q/%q %s", p[0], p[1], opt)
		}
	}
}

func TestReflexivity(t *testing.T) {
	inputs := []charset.Text{
		native(""),
		native("plain ascii"),
		wide("caf\u00e9 e\u0301te\u0301"),
		wide("\uac01\U0001F600"),
		charset.NewUTF16([]uint16{0xDC00, 'a', 0xD800}),
		wide("\u0301\u0301a"),
	}
	for _, in := range inputs {
		for _, opt := range allOptions {
			assert.Equal(t, 0, Compare(in, in, opt))
			na, nb := SharedPrefix(in, in, opt)
			assert.Equal(t, in.Len(), na)
			assert.Equal(t, in.Len(), nb)
			sa, sb := SharedSuffix(in, in, opt)
			assert.Equal(t, in.Len(), sa)
			assert.Equal(t, in.Len(), sb)
		}
	}
}

func TestOptionMonotonicity(t *testing.T) {
	pairs := [][2]charset.Text{
		{native("abc"), wide("abc")},
		{native(cafeNFC), wide(cafeNFC)},
		{wide("\U0001F600"), charset.NewUTF16([]uint16{0xD83D, 0xDE00})},
	}
	for _, p := range pairs {
		require.Equal(t, 0, Compare(p[0], p[1], filter.Exact))
		for _, opt := range allOptions {
			assert.Equal(t, 0, Compare(p[0], p[1], opt), "option %s", opt)
		}
	}
}

func TestEngineLocale(t *testing.T) {
	tr, err := locale.Parse("tr")
	require.NoError(t, err)
	e := New(tr)
	assert.Same(t, tr, e.Locale())

	assert.True(t, e.Equal(wide("ISTANBUL"), wide("ıstanbul"), filter.Folded))
	assert.False(t, Equal(wide("ISTANBUL"), wide("ıstanbul"), filter.Folded))
	assert.True(t, Equal(wide("ISTANBUL"), wide("istanbul"), filter.Folded))

	assert.Equal(t, 0, Collate(native("a"), native("A"), locale.Primary))
	assert.Equal(t, -1, e.Collate(native("a"), native("b"), locale.Tertiary))
}
