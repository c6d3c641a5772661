// Package palindrome normalizes raw text and classifies it as a palindrome.
//
// Normalization is ASCII-only. Two projections are derived from the same raw
// input:
//   - the comparison token keeps [A-Za-z0-9] and lower-cases it
//   - the display token keeps [A-Za-z] and upper-cases it
//
// Runes outside ASCII are stripped, never folded.
package palindrome

import "strings"

// Tokens holds both projections of one raw input.
type Tokens struct {
	Comparison string `json:"comparison"`
	Display    string `json:"display"`
}

// Normalize derives both tokens from the same raw snapshot.
func Normalize(raw string) Tokens {
	return Tokens{
		Comparison: ComparisonToken(raw),
		Display:    DisplayToken(raw),
	}
}

// ComparisonToken returns raw with every byte outside [A-Za-z0-9] removed,
// lower-cased.
func ComparisonToken(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	// Multi-byte UTF-8 sequences never contain ASCII bytes, so a byte scan
	// drops non-ASCII runes and invalid bytes alike.
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		switch {
		case 'a' <= c && c <= 'z', '0' <= c && c <= '9':
			b.WriteByte(c)
		case 'A' <= c && c <= 'Z':
			b.WriteByte(c + ('a' - 'A'))
		}
	}
	return b.String()
}

// DisplayToken returns raw with every byte outside [A-Za-z] removed,
// upper-cased. Digits are dropped here.
func DisplayToken(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		switch {
		case 'A' <= c && c <= 'Z':
			b.WriteByte(c)
		case 'a' <= c && c <= 'z':
			b.WriteByte(c - ('a' - 'A'))
		}
	}
	return b.String()
}
