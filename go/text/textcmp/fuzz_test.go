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
	"testing"

	"vitess.io/unitext/go/text/charset"
	"vitess.io/unitext/go/text/filter"
)

func FuzzCompare(f *testing.F) {
	f.Add("caf\u00e9", "cafe\u0301", uint8(filter.Normalized))
	f.Add("Hello, WORLD", "world", uint8(filter.Caseless))
	f.Add("stra\u00dfe", "strasse", uint8(filter.Folded))
	f.Add("report_2024.csv", "report_*.csv", uint8(filter.Exact))

	f.Fuzz(func(t *testing.T, left, right string, rawOpt uint8) {
		opt := filter.Option(rawOpt) & filter.Caseless
		a, b := charset.FromString(left), charset.UTF16String(right)

		cmp := Compare(a, b, opt)
		if back := Compare(b, a, opt); back != -cmp {
			t.Fatalf("Compare(%q, %q, %s) = %d but reversed = %d", left, right, opt, cmp, back)
		}
		if cmp == 0 && Hash64(a, opt) != Hash64(b, opt) {
			t.Fatalf("%q and %q are equal under %s but hash differently", left, right, opt)
		}

		na, nb := SharedPrefix(a, b, opt)
		if na > a.Len() || nb > b.Len() || na < 0 || nb < 0 {
			t.Fatalf("SharedPrefix(%q, %q, %s) = (%d, %d) out of range", left, right, opt, na, nb)
		}
		if r, ok := Find(a, Range{Length: -1}, b, opt); ok {
			if Compare(a.Slice(r.Offset, r.End()), b, opt) != 0 {
				t.Fatalf("Find(%q, %q, %s) = %v does not compare equal", left, right, opt, r)
			}
		}
		_ = WildcardMatch(a, b, opt)
	})
}
