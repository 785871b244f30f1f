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
	"vitess.io/unitext/go/text/charset"
	"vitess.io/unitext/go/text/filter"
	"vitess.io/unitext/go/text/locale"
)

// The functions below use the root locale.

func Compare(a, b charset.Text, opt filter.Option) int {
	return defaultEngine.Compare(a, b, opt)
}

func Equal(a, b charset.Text, opt filter.Option) bool {
	return defaultEngine.Equal(a, b, opt)
}

func BeginsWith(a, b charset.Text, opt filter.Option) bool {
	return defaultEngine.BeginsWith(a, b, opt)
}

func EndsWith(a, b charset.Text, opt filter.Option) bool {
	return defaultEngine.EndsWith(a, b, opt)
}

func SharedPrefix(a, b charset.Text, opt filter.Option) (int, int) {
	return defaultEngine.SharedPrefix(a, b, opt)
}

func SharedSuffix(a, b charset.Text, opt filter.Option) (int, int) {
	return defaultEngine.SharedSuffix(a, b, opt)
}

func Contains(t, needle charset.Text, opt filter.Option) bool {
	return defaultEngine.Contains(t, needle, opt)
}

func FirstIndexOf(t, needle charset.Text, opt filter.Option) int {
	return defaultEngine.FirstIndexOf(t, needle, opt)
}

func LastIndexOf(t, needle charset.Text, opt filter.Option) int {
	return defaultEngine.LastIndexOf(t, needle, opt)
}

func FirstIndexOfChar(t charset.Text, r rune, opt filter.Option) int {
	return defaultEngine.FirstIndexOfChar(t, r, opt)
}

func LastIndexOfChar(t charset.Text, r rune, opt filter.Option) int {
	return defaultEngine.LastIndexOfChar(t, r, opt)
}

func Find(t charset.Text, within Range, needle charset.Text, opt filter.Option) (Range, bool) {
	return defaultEngine.Find(t, within, needle, opt)
}

func Count(t charset.Text, within Range, needle charset.Text, opt filter.Option) int {
	return defaultEngine.Count(t, within, needle, opt)
}

func WildcardMatch(src, pat charset.Text, opt filter.Option) bool {
	return defaultEngine.WildcardMatch(src, pat, opt)
}

func Hash(t charset.Text, opt filter.Option) uint32 {
	return defaultEngine.Hash(t, opt)
}

func Hash64(t charset.Text, opt filter.Option) uint64 {
	return defaultEngine.Hash64(t, opt)
}

func Collate(a, b charset.Text, s locale.Strength) int {
	return defaultEngine.Collate(a, b, s)
}
