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

package filter

import (
	"fmt"
	"strings"
)

// Option selects the transforms stacked on top of decoding.
type Option uint8

const (
	// Normalize composes every canonical segment to NFC.
	Normalize Option = 1 << iota
	// Fold applies simple case folding.
	Fold
)

const (
	Exact      Option = 0
	Normalized        = Normalize
	Folded            = Fold
	Caseless          = Normalize | Fold
)

func (o Option) String() string {
	switch o {
	case Exact:
		return "exact"
	case Normalized:
		return "normalized"
	case Folded:
		return "folded"
	case Caseless:
		return "caseless"
	default:
		return fmt.Sprintf("Option(%d)", uint8(o))
	}
}

// ParseOption parses the name of an Option.
func ParseOption(name string) (Option, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "exact", "":
		return Exact, nil
	case "normalized", "normalize", "nfc":
		return Normalized, nil
	case "folded", "fold":
		return Folded, nil
	case "caseless", "ci":
		return Caseless, nil
	}
	return 0, fmt.Errorf("invalid comparison option %q: expected exact, normalized, folded or caseless", name)
}
