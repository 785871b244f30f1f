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
	"encoding/binary"
	"hash"
	"hash/fnv"

	"github.com/cespare/xxhash/v2"

	"vitess.io/unitext/go/text/charset"
	"vitess.io/unitext/go/text/filter"
)

// feed writes every filtered codepoint of t to h as four little endian
// bytes. Texts that compare equal under opt feed identical streams.
func (e *Engine) feed(h hash.Hash, t charset.Text, opt filter.Option) {
	var buf [64]byte
	n := 0
	c := e.forward(t, opt)
	for c.HasData() {
		binary.LittleEndian.PutUint32(buf[n:], uint32(c.Next()))
		c.Advance()
		n += 4
		if n == len(buf) {
			h.Write(buf[:n])
			n = 0
		}
	}
	h.Write(buf[:n])
}

// Hash returns the 32-bit FNV-1a hash of the filtered codepoints of t.
func (e *Engine) Hash(t charset.Text, opt filter.Option) uint32 {
	h := fnv.New32a()
	e.feed(h, t, opt)
	return h.Sum32()
}

// Hash64 returns the 64-bit xxHash of the filtered codepoints of t.
func (e *Engine) Hash64(t charset.Text, opt filter.Option) uint64 {
	h := xxhash.New()
	e.feed(h, t, opt)
	return h.Sum64()
}
