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

package locale

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/collate"

	"vitess.io/unitext/go/text/charset"
	"vitess.io/unitext/go/vt/log"
)

// Strength selects which differences the collator takes into account.
type Strength uint8

const (
	// Primary compares base letters only: case, accents and width are ignored.
	Primary Strength = iota
	// Secondary also distinguishes accents.
	Secondary
	// Tertiary also distinguishes case and width.
	Tertiary
	// Identical breaks remaining ties by codepoint order.
	Identical

	numStrengths = int(Identical) + 1
)

func (s Strength) String() string {
	switch s {
	case Primary:
		return "primary"
	case Secondary:
		return "secondary"
	case Tertiary:
		return "tertiary"
	case Identical:
		return "identical"
	default:
		return fmt.Sprintf("Strength(%d)", uint8(s))
	}
}

// ParseStrength parses the name of a Strength.
func ParseStrength(name string) (Strength, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "primary", "1":
		return Primary, nil
	case "secondary", "2":
		return Secondary, nil
	case "tertiary", "3", "":
		return Tertiary, nil
	case "identical", "4":
		return Identical, nil
	}
	return 0, fmt.Errorf("invalid collation strength %q: expected primary, secondary, tertiary or identical", name)
}

func (s Strength) options() []collate.Option {
	switch s {
	case Primary:
		return []collate.Option{collate.Loose}
	case Secondary:
		return []collate.Option{collate.IgnoreCase, collate.IgnoreWidth}
	default:
		return nil
	}
}

// newCollator builds the constructor of the collator pool for one strength.
// A collate.Collator cannot be used concurrently, so each strength keeps a
// pool of them.
func (l *Locale) newCollator(s Strength) func() any {
	return func() any {
		log.DebugS("creating collator", "locale", l.String(), "strength", s.String())
		return collate.New(l.tag, s.options()...)
	}
}

// Collate orders a and b, returning -1, 0 or +1.
func (l *Locale) Collate(a, b charset.Text, s Strength) int {
	if int(s) >= numStrengths {
		s = Identical
	}
	pool := &l.collators[s]
	col := pool.Get().(*collate.Collator)
	cmp := col.CompareString(a.String(), b.String())
	pool.Put(col)

	if cmp == 0 && s == Identical {
		cmp = slices.Compare(a.Runes(), b.Runes())
	}
	return cmp
}
