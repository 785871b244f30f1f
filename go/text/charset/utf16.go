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
	"encoding/binary"
	"errors"
)

// 0xd800-0xdc00 encodes the high 10 bits of a pair.
// 0xdc00-0xe000 encodes the low 10 bits of a pair.
// the value is those 20 bits plus 0x10000.
const (
	surr1    = 0xd800
	surr2    = 0xdc00
	surr3    = 0xe000
	surrSelf = 0x10000
)

// IsSurrogate reports whether r lies in the UTF-16 surrogate range.
func IsSurrogate(r rune) bool {
	return surr1 <= r && r < surr3
}

func decodeUTF16(u []uint16, i int) (rune, int) {
	r1 := rune(u[i])
	if r1 < surr1 || surr3 <= r1 {
		return r1, 1
	}
	if r1 < surr2 && i+1 < len(u) {
		r2 := rune(u[i+1])
		if surr2 <= r2 && r2 < surr3 {
			return (r1-surr1)<<10 | (r2 - surr2) + surrSelf, 2
		}
	}
	// unpaired surrogate: returned as-is
	return r1, 1
}

func decodeLastUTF16(u []uint16, end int) (rune, int) {
	r2 := rune(u[end-1])
	if r2 < surr1 || surr3 <= r2 {
		return r2, 1
	}
	if surr2 <= r2 && end >= 2 {
		r1 := rune(u[end-2])
		if surr1 <= r1 && r1 < surr2 {
			return (r1-surr1)<<10 | (r2 - surr2) + surrSelf, 2
		}
	}
	return r2, 1
}

// ErrOddLength is returned by DecodeUTF16 when the input cannot be split
// into whole 16-bit units.
var ErrOddLength = errors.New("utf-16 input has an odd number of bytes")

// DecodeUTF16 wraps raw UTF-16 bytes in a Text without transcoding, so
// unpaired surrogates survive. A leading byte order mark selects the byte
// order and is dropped; without one, bigEndian decides.
func DecodeUTF16(b []byte, bigEndian bool) (Text, error) {
	if len(b)%2 != 0 {
		return Text{}, ErrOddLength
	}
	var order binary.ByteOrder = binary.LittleEndian
	if bigEndian {
		order = binary.BigEndian
	}
	if len(b) >= 2 {
		switch {
		case b[0] == 0xFF && b[1] == 0xFE:
			order, b = binary.LittleEndian, b[2:]
		case b[0] == 0xFE && b[1] == 0xFF:
			order, b = binary.BigEndian, b[2:]
		}
	}
	units := make([]uint16, len(b)/2)
	for i := range units {
		units[i] = order.Uint16(b[2*i:])
	}
	return NewUTF16(units), nil
}
