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
)

// Compare orders a and b codepoint by codepoint after filtering. It returns
// -1, 0 or +1; when one side is a prefix of the other the shorter is less.
// This is a binary order, use Collate for a linguistic one.
func (e *Engine) Compare(a, b charset.Text, opt filter.Option) int {
	ca, cb := e.forward(a, opt), e.forward(b, opt)
	for ca.HasData() && cb.HasData() {
		ra, rb := ca.Next(), cb.Next()
		if ra != rb {
			if ra < rb {
				return -1
			}
			return 1
		}
		ca.Advance()
		cb.Advance()
	}
	switch {
	case ca.HasData():
		return 1
	case cb.HasData():
		return -1
	}
	return 0
}

// Equal reports whether a and b compare equal under opt.
func (e *Engine) Equal(a, b charset.Text, opt filter.Option) bool {
	if opt == filter.Exact && a.Encoding() == b.Encoding() && a.Codepage() == b.Codepage() && a.Len() != b.Len() {
		return false
	}
	return e.Compare(a, b, opt) == 0
}

// sharedPrefix advances both chains while they agree and returns the source
// lengths of the longest agreeing prefix that ends on a boundary of both.
func sharedPrefix(ca, cb *filter.Chain) (int, int) {
	for ca.HasData() && cb.HasData() && ca.Next() == cb.Next() {
		ca.Advance()
		cb.Advance()
		if ca.Boundary() && cb.Boundary() {
			ca.Mark()
			cb.Mark()
		}
	}
	return ca.MarkedLength(), cb.MarkedLength()
}

// SharedPrefix returns the source lengths, in a and in b, of the longest
// common prefix of a and b. The lengths may differ when the two sides use
// different encodings or different but equivalent forms.
func (e *Engine) SharedPrefix(a, b charset.Text, opt filter.Option) (int, int) {
	ca, cb := e.forward(a, opt), e.forward(b, opt)
	return sharedPrefix(&ca, &cb)
}

// SharedSuffix is the mirror of SharedPrefix: it returns the source lengths
// of the longest common suffix.
func (e *Engine) SharedSuffix(a, b charset.Text, opt filter.Option) (int, int) {
	ca, cb := e.backward(a, opt), e.backward(b, opt)
	return sharedPrefix(&ca, &cb)
}

// BeginsWithLength reports whether a begins with b and, if so, how many
// units of a the prefix covers.
func (e *Engine) BeginsWithLength(a, b charset.Text, opt filter.Option) (int, bool) {
	na, nb := e.SharedPrefix(a, b, opt)
	if nb != b.Len() {
		return 0, false
	}
	return na, true
}

// BeginsWith reports whether a begins with b. Every text begins with the
// empty text.
func (e *Engine) BeginsWith(a, b charset.Text, opt filter.Option) bool {
	_, ok := e.BeginsWithLength(a, b, opt)
	return ok
}

// EndsWithLength reports whether a ends with b and, if so, how many units
// of a the suffix covers.
func (e *Engine) EndsWithLength(a, b charset.Text, opt filter.Option) (int, bool) {
	na, nb := e.SharedSuffix(a, b, opt)
	if nb != b.Len() {
		return 0, false
	}
	return na, true
}

// EndsWith reports whether a ends with b.
func (e *Engine) EndsWith(a, b charset.Text, opt filter.Option) bool {
	_, ok := e.EndsWithLength(a, b, opt)
	return ok
}
