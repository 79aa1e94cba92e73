// Package cellwidth decides how many grid columns a Unicode scalar
// occupies when printed to the terminal grid.
package cellwidth

import "golang.org/x/text/width"

// emojiRange is an inclusive [lo, hi] codepoint range forced to display
// width 2, overriding the Unicode East Asian Width tables for consistency
// with the emoji rendering of common terminal fonts.
type emojiRange struct{ lo, hi rune }

var emojiRanges = []emojiRange{
	{0x1F600, 0x1F64F}, // Emoticons
	{0x1F300, 0x1F5FF}, // Misc symbols and pictographs
	{0x1F680, 0x1F6FF}, // Transport and map symbols
	{0x1F900, 0x1F9FF}, // Supplemental symbols and pictographs
	{0x2700, 0x27BF},   // Dingbats
	{0x2600, 0x26FF},   // Misc symbols
	{0x2B50, 0x2B55},   // Stars
	{0x1F100, 0x1F1FF}, // Enclosed alphanumeric supplement
	{0x1F200, 0x1F2FF}, // Enclosed ideographic supplement
}

func isEmoji(r rune) bool {
	for _, rg := range emojiRanges {
		if r >= rg.lo && r <= rg.hi {
			return true
		}
	}
	return false
}

// Width returns the display width of r, always 1 or 2.
//
//  1. Characters in the explicit emoji ranges are always width 2.
//  2. Otherwise the Unicode East-Asian-Width table decides; wide and
//     fullwidth collapse to 2, everything else (including ambiguous and
//     unassigned) collapses to 1.
//
// Width(0) is 1; callers must special-case the null sentinel themselves
// before printing (see the grid package), since write_char ignores nulls
// outright rather than consulting their width.
func Width(r rune) int {
	if isEmoji(r) {
		return 2
	}
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	default:
		return 1
	}
}

// StringWidth sums Width over every rune of s.
func StringWidth(s string) int {
	total := 0
	for _, r := range s {
		total += Width(r)
	}
	return total
}
