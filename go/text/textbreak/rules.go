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

package textbreak

import "unicode"

// None stands for a missing neighbor in CanBreakWord.
const None rune = -1

// IsGraphemeBoundary reports whether a grapheme cluster boundary separates
// left and right.
//
// CR and LF always form clusters of their own, a CR LF pair included. Two
// regional indicators never break here; pairing runs of them is left to the
// iteration functions, which know the parity of the run.
func IsGraphemeBoundary(left, right rune) bool {
	pl, pr := GraphemeProperty(left), GraphemeProperty(right)

	switch {
	case pl == GraphemeCR || pl == GraphemeLF || pl == GraphemeControl:
		return true
	case pr == GraphemeCR || pr == GraphemeLF || pr == GraphemeControl:
		return true
	}

	switch pl {
	case GraphemeL:
		if pr == GraphemeL || pr == GraphemeV || pr == GraphemeLV || pr == GraphemeLVT {
			return false
		}
	case GraphemeLV, GraphemeV:
		if pr == GraphemeV || pr == GraphemeT {
			return false
		}
	case GraphemeLVT, GraphemeT:
		if pr == GraphemeT {
			return false
		}
	}

	switch {
	case extends(pr):
		return false
	case pl == GraphemePrepend:
		return false
	case pl == GraphemeRegionalIndicator && pr == GraphemeRegionalIndicator:
		return false
	}
	return true
}

func letterLike(c Category) bool {
	return c == WordLetter || c == WordNumeric || c == WordKatakana || c == WordExtendNumLet
}

// CanBreakWord reports whether a word boundary may separate left and right.
// farLeft precedes left and farRight follows right; pass None when there is
// no such codepoint.
func CanBreakWord(farLeft, left, right, farRight rune) bool {
	if extends(GraphemeProperty(right)) {
		return false
	}

	cl, cr := WordCategory(left), WordCategory(right)
	switch {
	case (cl == WordLetter || cl == WordNumeric) && (cr == WordLetter || cr == WordNumeric):
		return false
	case cl == WordKatakana && cr == WordKatakana:
		return false
	case cl == WordExtendNumLet && letterLike(cr), cr == WordExtendNumLet && letterLike(cl):
		return false
	}

	switch {
	case cl == WordLetter && (cr == WordMidLetter || cr == WordMidNumLet):
		return WordCategory(farRight) != WordLetter
	case (cl == WordMidLetter || cl == WordMidNumLet) && cr == WordLetter:
		return WordCategory(farLeft) != WordLetter
	case cl == WordNumeric && (cr == WordMidNum || cr == WordMidNumLet):
		return WordCategory(farRight) != WordNumeric
	case (cl == WordMidNum || cl == WordMidNumLet) && cr == WordNumeric:
		return WordCategory(farLeft) != WordNumeric
	}
	return true
}

// CanBreakLine reports whether a line may be wrapped between left and right.
// Wrapping is allowed after white space and around ideographs, unless the
// general class of either side prohibits it.
func CanBreakLine(left, right rune) bool {
	fl, fr := LineClass(left), LineClass(right)
	switch {
	case fl&ProhibitAfter != 0, fr&ProhibitBefore != 0:
		return false
	case extends(GraphemeProperty(right)):
		return false
	case unicode.IsSpace(right):
		return false
	case unicode.IsSpace(left):
		return true
	case fl&Ideographic != 0, fr&Ideographic != 0:
		return true
	}
	return false
}
