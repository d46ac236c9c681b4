package match

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// asciiOnly decomposes runes and drops everything outside ASCII, which removes
// combining diacritical marks along with any symbol without an ASCII form.
var asciiOnly = transform.Chain(
	norm.NFKD,
	runes.Remove(runes.Predicate(func(r rune) bool { return r > unicode.MaxASCII })),
)

// Normalize returns the comparable form of a description.
func Normalize(description string) string {
	out, _, err := transform.String(asciiOnly, description)
	if err != nil {
		// Keep Normalize total even if the chain rejects the input.
		out = stripNonASCII(norm.NFKD.String(description))
	}
	return strings.ToLower(out)
}

func stripNonASCII(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r <= unicode.MaxASCII {
			b.WriteRune(r)
		}
	}
	return b.String()
}
