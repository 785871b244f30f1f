//go:build gofuzz

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
	fuzz "github.com/AdaLogics/go-fuzz-headers"

	"vitess.io/unitext/go/text/charset"
	"vitess.io/unitext/go/text/filter"
)

var fuzzOptions = []filter.Option{filter.Exact, filter.Normalized, filter.Folded, filter.Caseless}

// FuzzEngine drives every search primitive with UTF-16 inputs, including
// unpaired surrogates.
func FuzzEngine(data []byte) int {
	f := fuzz.NewConsumer(data)
	optIndex, err := f.GetInt()
	if err != nil {
		return 0
	}
	opt := fuzzOptions[uint(optIndex)%uint(len(fuzzOptions))]

	left, err := f.GetBytes()
	if err != nil {
		return 0
	}
	right, err := f.GetBytes()
	if err != nil {
		return 0
	}
	a, err := charset.DecodeUTF16(left[:len(left)&^1], false)
	if err != nil {
		return 0
	}
	b := charset.NewNative(right, charset.DefaultCodepage)

	if Compare(a, b, opt) != -Compare(b, a, opt) {
		panic("compare is not symmetric")
	}
	_ = FirstIndexOf(a, b, opt)
	_ = LastIndexOf(a, b, opt)
	_ = Count(a, Range{Length: -1}, b, opt)
	_ = WildcardMatch(a, b, opt)
	_, _ = SharedSuffix(a, b, opt)
	return 1
}
