// Package text canonicalizes question and label text so every matcher
// compares the same shape: lowercase, no diacritics, no surrounding space.
package text

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes to NFD and drops the combining marks, so "árbitro"
// compares equal to "arbitro".
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))

// Normalize lowercases s, strips diacritical marks and trims surrounding
// whitespace. It is pure and idempotent; both the incoming question and any
// stored label must pass through it before comparison.
func Normalize(s string) string {
	lowered := strings.ToLower(s)
	stripped, _, err := transform.String(stripMarks, lowered)
	if err != nil {
		// Transform only fails on invalid UTF-8; fall back to the
		// lowercased input rather than dropping the question.
		stripped = lowered
	}
	return strings.TrimSpace(stripped)
}
