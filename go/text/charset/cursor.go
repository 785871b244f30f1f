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

// Cursor produces the codepoints of a Text one at a time, forward or
// backward. Next peeks at the upcoming codepoint without consuming it;
// Advance commits it. A backward Cursor yields exactly the reverse of the
// forward sequence, surrogate pairs included.
type Cursor struct {
	text     Text
	pos      int // forward: next unit to read; backward: units left to read
	backward bool

	pending rune
	width   int // width of pending in units; 0 when nothing is peeked
}

// NewCursor returns a Cursor positioned at the start of t, or at its end
// when backward is set.
func NewCursor(t Text, backward bool) Cursor {
	c := Cursor{text: t, backward: backward}
	if backward {
		c.pos = t.Len()
	}
	return c
}

// HasData reports whether codepoints remain in the traversal direction.
func (c *Cursor) HasData() bool {
	if c.backward {
		return c.pos > 0
	}
	return c.pos < c.text.Len()
}

// Next returns the upcoming codepoint. Calling it again before Advance
// returns the same value.
func (c *Cursor) Next() rune {
	if c.width == 0 {
		if c.backward {
			c.pending, c.width = DecodeLastRune(c.text, c.pos)
		} else {
			c.pending, c.width = DecodeRune(c.text, c.pos)
		}
	}
	return c.pending
}

// Advance consumes the codepoint returned by Next.
func (c *Cursor) Advance() {
	if c.width == 0 {
		c.Next()
	}
	if c.backward {
		c.pos -= c.width
	} else {
		c.pos += c.width
	}
	c.width = 0
}

// Consumed returns the number of units consumed so far.
func (c *Cursor) Consumed() int {
	if c.backward {
		return c.text.Len() - c.pos
	}
	return c.pos
}

// Backward reports the traversal direction.
func (c *Cursor) Backward() bool {
	return c.backward
}
