// Package wcwidth computes terminal display-column widths for runes and
// strings, the way a VT100-class terminal would lay them out: combining
// marks and variation selectors occupy no column of their own, East Asian
// wide/fullwidth glyphs occupy two, and everything else occupies one.
package wcwidth

import (
	"unicode"

	"golang.org/x/text/width"
)

// isCombining reports whether r is a combining mark (zero display width).
func isCombining(r rune) bool {
	return unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Me, r) || unicode.Is(unicode.Mc, r)
}

// isVariationSelector reports whether r is a variation selector (zero width).
func isVariationSelector(r rune) bool {
	return (r >= 0xFE00 && r <= 0xFE0F) || (r >= 0xE0100 && r <= 0xE01EF)
}

// IsRegionalIndicator reports whether r is a regional indicator rune (flag halves).
func IsRegionalIndicator(r rune) bool { return r >= 0x1F1E6 && r <= 0x1F1FF }

// IsZWJ reports whether r is ZERO WIDTH JOINER.
func IsZWJ(r rune) bool { return r == 0x200D }

func isEmoji(r rune) bool {
	return (r >= 0x1F300 && r <= 0x1F5FF) ||
		(r >= 0x1F600 && r <= 0x1F64F) ||
		(r >= 0x1F680 && r <= 0x1F6FF) ||
		(r >= 0x1F700 && r <= 0x1F77F) ||
		(r >= 0x1F780 && r <= 0x1F7FF) ||
		(r >= 0x1F800 && r <= 0x1F8FF) ||
		(r >= 0x1F900 && r <= 0x1F9FF) ||
		(r >= 0x1FA00 && r <= 0x1FAFF) ||
		(r >= 0x2600 && r <= 0x26FF) ||
		(r >= 0x2700 && r <= 0x27BF)
}

// Rune returns the number of terminal columns used by r.
func Rune(r rune) int {
	if isCombining(r) || isVariationSelector(r) || IsZWJ(r) {
		return 0
	}
	switch width.LookupRune(r).Kind() {
	case width.EastAsianFullwidth, width.EastAsianWide:
		return 2
	}
	if isEmoji(r) {
		return 2
	}
	return 1
}

// String returns the total display width of s.
func String(s string) int {
	total := 0
	for _, r := range s {
		total += Rune(r)
	}
	return total
}

// Runes returns the total display width of a rune slice.
func Runes(rs []rune) int {
	total := 0
	for _, r := range rs {
		total += Rune(r)
	}
	return total
}

// RunesBetween sums the display width of rs[from:to], clamping to bounds.
func RunesBetween(rs []rune, from, to int) int {
	if from < 0 {
		from = 0
	}
	if to > len(rs) {
		to = len(rs)
	}
	if from > to {
		from, to = to, from
	}
	total := 0
	for i := from; i < to; i++ {
		total += Rune(rs[i])
	}
	return total
}
