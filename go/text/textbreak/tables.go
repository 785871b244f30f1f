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

// entry maps the codepoints [start, start+length) to value. Tables are
// sorted by start and never overlap.
type entry struct {
	start  rune
	length uint32
	value  uint8
}

// search returns the value of the entry covering r.
func search(table []entry, r rune) (uint8, bool) {
	lo, hi := 0, len(table)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		e := &table[mid]
		switch {
		case r < e.start:
			hi = mid
		case r >= e.start+rune(e.length):
			lo = mid + 1
		default:
			return e.value, true
		}
	}
	return 0, false
}

// The tables below keep the kinsoku rules for CJK punctuation and small
// kana, and the word break categories that the general category alone
// cannot tell apart. Codepoints missing from wordTable fall back to their
// general category in WordCategory.

var lineTable = []entry{
	{0x0021, 1, uint8(ProhibitBefore)},
	{0x0024, 1, uint8(ProhibitAfter)},
	{0x0025, 1, uint8(ProhibitBefore)},
	{0x0028, 1, uint8(ProhibitAfter)},
	{0x0029, 1, uint8(ProhibitBefore)},
	{0x002C, 1, uint8(ProhibitBefore)},
	{0x002E, 1, uint8(ProhibitBefore)},
	{0x003A, 2, uint8(ProhibitBefore)},
	{0x003F, 1, uint8(ProhibitBefore)},
	{0x005B, 1, uint8(ProhibitAfter)},
	{0x005D, 1, uint8(ProhibitBefore)},
	{0x007B, 1, uint8(ProhibitAfter)},
	{0x007D, 1, uint8(ProhibitBefore)},
	{0x00A2, 1, uint8(ProhibitBefore)},
	{0x00A3, 1, uint8(ProhibitAfter)},
	{0x00A5, 1, uint8(ProhibitAfter)},
	{0x00AB, 1, uint8(ProhibitAfter)},
	{0x00B0, 1, uint8(ProhibitBefore)},
	{0x00BB, 1, uint8(ProhibitBefore)},
	{0x1100, 96, uint8(Ideographic)},
	{0x2018, 1, uint8(ProhibitAfter)},
	{0x2019, 1, uint8(ProhibitBefore)},
	{0x201C, 1, uint8(ProhibitAfter)},
	{0x201D, 1, uint8(ProhibitBefore)},
	{0x2025, 2, uint8(ProhibitBefore)},
	{0x2030, 1, uint8(ProhibitBefore)},
	{0x2032, 2, uint8(ProhibitBefore)},
	{0x2103, 1, uint8(ProhibitBefore)},
	{0x2E80, 385, uint8(Ideographic)},
	{0x3001, 2, uint8(ProhibitBefore | Ideographic)},
	{0x3003, 2, uint8(Ideographic)},
	{0x3005, 1, uint8(ProhibitBefore | Ideographic)},
	{0x3006, 2, uint8(Ideographic)},
	{0x3008, 1, uint8(ProhibitAfter | Ideographic)},
	{0x3009, 1, uint8(ProhibitBefore | Ideographic)},
	{0x300A, 1, uint8(ProhibitAfter | Ideographic)},
	{0x300B, 1, uint8(ProhibitBefore | Ideographic)},
	{0x300C, 1, uint8(ProhibitAfter | Ideographic)},
	{0x300D, 1, uint8(ProhibitBefore | Ideographic)},
	{0x300E, 1, uint8(ProhibitAfter | Ideographic)},
	{0x300F, 1, uint8(ProhibitBefore | Ideographic)},
	{0x3010, 1, uint8(ProhibitAfter | Ideographic)},
	{0x3011, 1, uint8(ProhibitBefore | Ideographic)},
	{0x3012, 2, uint8(Ideographic)},
	{0x3014, 1, uint8(ProhibitAfter | Ideographic)},
	{0x3015, 1, uint8(ProhibitBefore | Ideographic)},
	{0x3016, 1, uint8(ProhibitAfter | Ideographic)},
	{0x3017, 1, uint8(ProhibitBefore | Ideographic)},
	{0x3018, 1, uint8(ProhibitAfter | Ideographic)},
	{0x3019, 1, uint8(ProhibitBefore | Ideographic)},
	{0x301A, 1, uint8(ProhibitAfter | Ideographic)},
	{0x301B, 1, uint8(ProhibitBefore | Ideographic)},
	{0x301C, 1, uint8(Ideographic)},
	{0x301D, 1, uint8(ProhibitAfter | Ideographic)},
	{0x301E, 2, uint8(ProhibitBefore | Ideographic)},
	{0x3020, 33, uint8(Ideographic)},
	{0x3041, 1, uint8(ProhibitBefore | Ideographic)},
	{0x3042, 1, uint8(Ideographic)},
	{0x3043, 1, uint8(ProhibitBefore | Ideographic)},
	{0x3044, 1, uint8(Ideographic)},
	{0x3045, 1, uint8(ProhibitBefore | Ideographic)},
	{0x3046, 1, uint8(Ideographic)},
	{0x3047, 1, uint8(ProhibitBefore | Ideographic)},
	{0x3048, 1, uint8(Ideographic)},
	{0x3049, 1, uint8(ProhibitBefore | Ideographic)},
	{0x304A, 25, uint8(Ideographic)},
	{0x3063, 1, uint8(ProhibitBefore | Ideographic)},
	{0x3064, 31, uint8(Ideographic)},
	{0x3083, 1, uint8(ProhibitBefore | Ideographic)},
	{0x3084, 1, uint8(Ideographic)},
	{0x3085, 1, uint8(ProhibitBefore | Ideographic)},
	{0x3086, 1, uint8(Ideographic)},
	{0x3087, 1, uint8(ProhibitBefore | Ideographic)},
	{0x3088, 6, uint8(Ideographic)},
	{0x308E, 1, uint8(ProhibitBefore | Ideographic)},
	{0x308F, 6, uint8(Ideographic)},
	{0x3095, 2, uint8(ProhibitBefore | Ideographic)},
	{0x3097, 4, uint8(Ideographic)},
	{0x309B, 4, uint8(ProhibitBefore | Ideographic)},
	{0x309F, 1, uint8(Ideographic)},
	{0x30A0, 2, uint8(ProhibitBefore | Ideographic)},
	{0x30A2, 1, uint8(Ideographic)},
	{0x30A3, 1, uint8(ProhibitBefore | Ideographic)},
	{0x30A4, 1, uint8(Ideographic)},
	{0x30A5, 1, uint8(ProhibitBefore | Ideographic)},
	{0x30A6, 1, uint8(Ideographic)},
	{0x30A7, 1, uint8(ProhibitBefore | Ideographic)},
	{0x30A8, 1, uint8(Ideographic)},
	{0x30A9, 1, uint8(ProhibitBefore | Ideographic)},
	{0x30AA, 25, uint8(Ideographic)},
	{0x30C3, 1, uint8(ProhibitBefore | Ideographic)},
	{0x30C4, 31, uint8(Ideographic)},
	{0x30E3, 1, uint8(ProhibitBefore | Ideographic)},
	{0x30E4, 1, uint8(Ideographic)},
	{0x30E5, 1, uint8(ProhibitBefore | Ideographic)},
	{0x30E6, 1, uint8(Ideographic)},
	{0x30E7, 1, uint8(ProhibitBefore | Ideographic)},
	{0x30E8, 6, uint8(Ideographic)},
	{0x30EE, 1, uint8(ProhibitBefore | Ideographic)},
	{0x30EF, 6, uint8(Ideographic)},
	{0x30F5, 2, uint8(ProhibitBefore | Ideographic)},
	{0x30F7, 4, uint8(Ideographic)},
	{0x30FB, 4, uint8(ProhibitBefore | Ideographic)},
	{0x30FF, 241, uint8(Ideographic)},
	{0x31F0, 16, uint8(ProhibitBefore | Ideographic)},
	{0x3200, 7104, uint8(Ideographic)},
	{0x4E00, 22224, uint8(Ideographic)},
	{0xAC00, 11172, uint8(Ideographic)},
	{0xF900, 512, uint8(Ideographic)},
	{0xFE30, 32, uint8(Ideographic)},
	{0xFF00, 1, uint8(Ideographic)},
	{0xFF01, 1, uint8(ProhibitBefore | Ideographic)},
	{0xFF02, 2, uint8(Ideographic)},
	{0xFF04, 1, uint8(ProhibitAfter | Ideographic)},
	{0xFF05, 1, uint8(ProhibitBefore | Ideographic)},
	{0xFF06, 2, uint8(Ideographic)},
	{0xFF08, 1, uint8(ProhibitAfter | Ideographic)},
	{0xFF09, 1, uint8(ProhibitBefore | Ideographic)},
	{0xFF0A, 2, uint8(Ideographic)},
	{0xFF0C, 1, uint8(ProhibitBefore | Ideographic)},
	{0xFF0D, 1, uint8(Ideographic)},
	{0xFF0E, 1, uint8(ProhibitBefore | Ideographic)},
	{0xFF0F, 11, uint8(Ideographic)},
	{0xFF1A, 2, uint8(ProhibitBefore | Ideographic)},
	{0xFF1C, 3, uint8(Ideographic)},
	{0xFF1F, 1, uint8(ProhibitBefore | Ideographic)},
	{0xFF20, 27, uint8(Ideographic)},
	{0xFF3B, 1, uint8(ProhibitAfter | Ideographic)},
	{0xFF3C, 1, uint8(Ideographic)},
	{0xFF3D, 1, uint8(ProhibitBefore | Ideographic)},
	{0xFF3E, 29, uint8(Ideographic)},
	{0xFF5B, 1, uint8(ProhibitAfter | Ideographic)},
	{0xFF5C, 1, uint8(Ideographic)},
	{0xFF5D, 1, uint8(ProhibitBefore | Ideographic)},
	{0xFF5E, 1, uint8(Ideographic)},
	{0xFF5F, 1, uint8(ProhibitAfter | Ideographic)},
	{0xFF60, 1, uint8(ProhibitBefore | Ideographic)},
	{0xFF61, 1, uint8(ProhibitBefore)},
	{0xFF62, 1, uint8(ProhibitAfter)},
	{0xFF63, 2, uint8(ProhibitBefore)},
	{0xFF67, 10, uint8(ProhibitBefore)},
	{0xFF9E, 2, uint8(ProhibitBefore)},
	{0xFFE0, 1, uint8(ProhibitBefore | Ideographic)},
	{0xFFE1, 1, uint8(ProhibitAfter | Ideographic)},
	{0xFFE2, 3, uint8(Ideographic)},
	{0xFFE5, 1, uint8(ProhibitAfter | Ideographic)},
	{0xFFE6, 1, uint8(Ideographic)},
	{0x20000, 65534, uint8(Ideographic)},
	{0x30000, 65534, uint8(Ideographic)},
}

var wordTable = []entry{
	{0x0027, 1, uint8(WordMidLetter)},
	{0x002C, 1, uint8(WordMidNum)},
	{0x002E, 1, uint8(WordMidNumLet)},
	{0x0030, 10, uint8(WordNumeric)},
	{0x003A, 1, uint8(WordMidLetter)},
	{0x003B, 1, uint8(WordMidNum)},
	{0x0041, 26, uint8(WordLetter)},
	{0x0061, 26, uint8(WordLetter)},
	{0x00AA, 1, uint8(WordLetter)},
	{0x00B5, 1, uint8(WordLetter)},
	{0x00B7, 1, uint8(WordMidLetter)},
	{0x00BA, 1, uint8(WordLetter)},
	{0x00C0, 23, uint8(WordLetter)},
	{0x00D8, 31, uint8(WordLetter)},
	{0x00F8, 480, uint8(WordLetter)},
	{0x0370, 5, uint8(WordLetter)},
	{0x0376, 2, uint8(WordLetter)},
	{0x037A, 4, uint8(WordLetter)},
	{0x037E, 1, uint8(WordMidNum)},
	{0x0386, 1, uint8(WordLetter)},
	{0x0387, 1, uint8(WordMidLetter)},
	{0x0388, 250, uint8(WordLetter)},
	{0x048A, 166, uint8(WordLetter)},
	{0x055F, 1, uint8(WordMidLetter)},
	{0x0589, 1, uint8(WordMidNum)},
	{0x05D0, 27, uint8(WordLetter)},
	{0x05F4, 1, uint8(WordMidLetter)},
	{0x060C, 2, uint8(WordMidNum)},
	{0x0620, 43, uint8(WordLetter)},
	{0x0660, 10, uint8(WordNumeric)},
	{0x066B, 1, uint8(WordNumeric)},
	{0x066C, 1, uint8(WordMidNum)},
	{0x06F0, 10, uint8(WordNumeric)},
	{0x07F8, 1, uint8(WordMidNum)},
	{0x0966, 10, uint8(WordNumeric)},
	{0x2018, 2, uint8(WordMidNumLet)},
	{0x2024, 1, uint8(WordMidNumLet)},
	{0x2027, 1, uint8(WordMidLetter)},
	{0x202F, 1, uint8(WordExtendNumLet)},
	{0x203F, 2, uint8(WordExtendNumLet)},
	{0x2044, 1, uint8(WordMidNum)},
	{0x2054, 1, uint8(WordExtendNumLet)},
	{0x3031, 5, uint8(WordKatakana)},
	{0x3041, 86, uint8(WordOther)},
	{0x309B, 2, uint8(WordKatakana)},
	{0x309D, 3, uint8(WordOther)},
	{0x30A0, 91, uint8(WordKatakana)},
	{0x30FC, 4, uint8(WordKatakana)},
	{0x31F0, 16, uint8(WordKatakana)},
	{0x32D0, 47, uint8(WordKatakana)},
	{0x3300, 88, uint8(WordKatakana)},
	{0x3400, 6592, uint8(WordOther)},
	{0x4E00, 20992, uint8(WordOther)},
	{0xF900, 512, uint8(WordOther)},
	{0xFE10, 1, uint8(WordMidNum)},
	{0xFE13, 1, uint8(WordMidLetter)},
	{0xFE14, 1, uint8(WordMidNum)},
	{0xFE33, 2, uint8(WordExtendNumLet)},
	{0xFE4D, 3, uint8(WordExtendNumLet)},
	{0xFE50, 1, uint8(WordMidNum)},
	{0xFE52, 1, uint8(WordMidNumLet)},
	{0xFE54, 1, uint8(WordMidNum)},
	{0xFE55, 1, uint8(WordMidLetter)},
	{0xFF07, 1, uint8(WordMidNumLet)},
	{0xFF0C, 1, uint8(WordMidNum)},
	{0xFF0E, 1, uint8(WordMidNumLet)},
	{0xFF10, 10, uint8(WordNumeric)},
	{0xFF1A, 1, uint8(WordMidLetter)},
	{0xFF1B, 1, uint8(WordMidNum)},
	{0xFF3F, 1, uint8(WordExtendNumLet)},
	{0xFF66, 56, uint8(WordKatakana)},
	{0x20000, 65534, uint8(WordOther)},
}
