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
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/encoding/unicode"

	"vitess.io/unitext/go/hack"
)

// ErrFailedConversion counts the codepoints that could not be represented in
// the destination code page and were replaced with '?'.
type ErrFailedConversion int

func (e ErrFailedConversion) Error() string {
	return fmt.Sprintf("failed to convert %d codepoints", e)
}

// ErrNoMapping is returned when a code page cannot even encode the '?'
// replacement character.
var ErrNoMapping = errors.New("cannot encode all codepoints in this encoding")

// Encode appends the UTF-8 string s to dst, encoded with the code page cp.
// Unencodable codepoints are replaced with '?' and reported through an
// ErrFailedConversion; the returned bytes are usable in both cases.
func Encode(dst []byte, s string, cp *Codepage) ([]byte, error) {
	if cp == nil {
		cp = DefaultCodepage
	}
	if dst == nil {
		dst = make([]byte, 0, len(s))
	}

	var failed int
	for _, r := range s {
		b, ok := cp.EncodeRune(r)
		if !ok {
			failed++
			if b, ok = cp.EncodeRune('?'); !ok {
				return dst, ErrNoMapping
			}
		}
		dst = append(dst, b)
	}
	if failed > 0 {
		return dst, ErrFailedConversion(failed)
	}
	return dst, nil
}

// Decode wraps b, encoded as name, in a Text. Accepted names are "utf-8",
// "utf-16le", "utf-16be", "utf-16" (byte order mark or little endian) and
// every name known to LookupCodepage. UTF-8 input loses its byte order mark,
// has invalid sequences replaced with U+FFFD and is re-encoded with FromString.
func Decode(b []byte, name string) (Text, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		s, err := unicode.UTF8BOM.NewDecoder().Bytes(b)
		if err != nil {
			return Text{}, fmt.Errorf("decoding utf-8 input: %w", err)
		}
		// s is a fresh buffer owned by the decoder
		return FromString(hack.String(s)), nil
	case "utf-16", "utf16", "utf-16le", "utf16le":
		return DecodeUTF16(b, false)
	case "utf-16be", "utf16be":
		return DecodeUTF16(b, true)
	}
	cp, err := LookupCodepage(name)
	if err != nil {
		return Text{}, err
	}
	return NewNative(b, cp), nil
}
