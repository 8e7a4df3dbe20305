package scanner

import (
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// StripDiacritics decomposes accented characters and drops the
// resulting combining marks, so "á" and "a" tokenize identically. This
// runs once, up front, before the character walk begins.
func StripDiacritics(s string) string {
	decomposed := norm.NFKD.String(s)
	out := make([]rune, 0, len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		out = append(out, r)
	}
	return string(out)
}
