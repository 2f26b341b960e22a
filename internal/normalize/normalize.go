// Package normalize cleans raw syllabus text before deadline scanning.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// symbolRanges covers the decorative pictograph and symbol blocks that PDF
// text extraction tends to leave behind (U+2600–U+27BF, U+1F300–U+1FAFF).
var symbolRanges = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x2600, Hi: 0x27BF, Stride: 1},
	},
	R32: []unicode.Range32{
		{Lo: 0x1F300, Hi: 0x1FAFF, Stride: 1},
	},
}

// stripSymbols maps each emoji/symbol rune to a single space so adjacent
// words are not glued together when the rune disappears.
var stripSymbols = runes.Map(func(r rune) rune {
	if unicode.Is(symbolRanges, r) {
		return ' '
	}
	return r
})

var dashFolder = strings.NewReplacer("–", "-", "—", "-")

// Normalize folds dash variants to ASCII hyphens, removes emoji and symbol
// runes, and collapses all whitespace runs to single spaces. It is pure and
// idempotent; any input, including empty, yields a valid output.
func Normalize(raw string) string {
	txt := dashFolder.Replace(raw)
	txt, _, _ = transform.String(stripSymbols, txt)
	return collapseSpaces(txt)
}

// collapseSpaces reduces every run of whitespace (spaces, tabs, newlines,
// non-breaking spaces) to one ASCII space and trims the ends.
func collapseSpaces(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	lastSpace := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			if !lastSpace {
				b.WriteByte(' ')
				lastSpace = true
			}
			continue
		}
		b.WriteRune(r)
		lastSpace = false
	}
	return strings.TrimSpace(b.String())
}
