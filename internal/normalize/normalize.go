// Package normalize canonicalizes label text for matching. All comparisons in
// the verification engine go through here so that OCR noise (case, stray
// punctuation, split whitespace) never shows up as a field mismatch.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// String lowercases s, strips periods except decimal points (a period is kept
// only when both neighbors are digits, so "12.5%" survives but "Co." loses its
// dot), strips common punctuation, collapses whitespace, and trims. Pure and
// deterministic; ASCII case folding only.
func String(s string) string {
	s = strings.ToLower(s)

	var b strings.Builder
	b.Grow(len(s))
	rs := []rune(s)
	for i, r := range rs {
		switch r {
		case '.':
			if i > 0 && i < len(rs)-1 && unicode.IsDigit(rs[i-1]) && unicode.IsDigit(rs[i+1]) {
				b.WriteRune(r)
			}
		case ',', ';', ':', '!', '?', '\'', '"', '(', ')', '-':
			// stripped
		default:
			b.WriteRune(r)
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// FoldDiacritics removes combining marks so "Rosé" compares equal to "Rose".
// Used by the fuzzy comparison strategy; the OCR-side matcher stays byte-exact.
func FoldDiacritics(s string) string {
	out, _, err := transform.String(stripMarks, s)
	if err != nil {
		return s
	}
	return out
}
