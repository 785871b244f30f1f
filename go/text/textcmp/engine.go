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

// Package textcmp compares, searches, matches and hashes text. Every
// operation is written against filter.Chain, so any pair of encodings and
// any combination of folding and normalization is handled the same way.
//
// The engine is stateless: chains are created per call and nothing is
// cached, so an Engine may be shared between goroutines. Operations never
// fail; malformed input is compared by its raw codepoints.
package textcmp

import (
	"vitess.io/unitext/go/text/charset"
	"vitess.io/unitext/go/text/filter"
	"vitess.io/unitext/go/text/locale"
)

// Engine binds the comparison primitives to a locale.
type Engine struct {
	loc locale.Services
}

var defaultEngine = New(nil)

// New returns an Engine using loc. A nil loc selects locale.Root.
func New(loc locale.Services) *Engine {
	if loc == nil {
		loc = locale.Root()
	}
	return &Engine{loc: loc}
}

// Default returns the Engine behind the package-level functions.
func Default() *Engine {
	return defaultEngine
}

// Locale returns the locale services of the engine.
func (e *Engine) Locale() locale.Services {
	return e.loc
}

func (e *Engine) forward(t charset.Text, opt filter.Option) filter.Chain {
	return filter.New(t, opt, e.loc)
}

func (e *Engine) backward(t charset.Text, opt filter.Option) filter.Chain {
	return filter.NewBackward(t, opt, e.loc)
}

// Collate orders a and b with the locale's collator.
func (e *Engine) Collate(a, b charset.Text, s locale.Strength) int {
	return e.loc.Collate(a, b, s)
}

// Range is a span of source units.
type Range struct {
	Offset int
	Length int
}

// End returns the offset just past the range.
func (r Range) End() int {
	return r.Offset + r.Length
}

// clip bounds r to a text of n units.
func (r Range) clip(n int) Range {
	start := clamp(r.Offset, 0, n)
	end := n
	if r.Length >= 0 && r.Length <= n-start {
		end = start + r.Length
	}
	return Range{Offset: start, Length: end - start}
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
