package palindrome

import (
	"fmt"
	"strings"
)

// Verdict is the tri-state classification of a comparison token.
type Verdict int

const (
	// Indeterminate means the token is too short to judge (length 0 or 1).
	Indeterminate Verdict = iota
	// Palindrome means the token reads the same in both directions.
	Palindrome
	// NotPalindrome means it does not.
	NotPalindrome
)

// String returns the wire name of the verdict.
func (v Verdict) String() string {
	switch v {
	case Indeterminate:
		return "indeterminate"
	case Palindrome:
		return "palindrome"
	case NotPalindrome:
		return "not_palindrome"
	default:
		return fmt.Sprintf("Verdict(%d)", int(v))
	}
}

// Known reports whether the verdict is a definite true/false answer.
func (v Verdict) Known() bool {
	return v == Palindrome || v == NotPalindrome
}

// MarshalText implements encoding.TextMarshaler.
func (v Verdict) MarshalText() ([]byte, error) {
	switch v {
	case Indeterminate, Palindrome, NotPalindrome:
		return []byte(v.String()), nil
	default:
		return nil, fmt.Errorf("palindrome: invalid verdict %d", int(v))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Verdict) UnmarshalText(text []byte) error {
	parsed, err := ParseVerdict(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// ParseVerdict parses the wire name of a verdict.
func ParseVerdict(s string) (Verdict, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "indeterminate":
		return Indeterminate, nil
	case "palindrome":
		return Palindrome, nil
	case "not_palindrome":
		return NotPalindrome, nil
	default:
		return Indeterminate, fmt.Errorf("palindrome: unknown verdict %q", s)
	}
}

// Classify judges a comparison token. Tokens of length 0 or 1 are never
// judged true or false.
func Classify(comparison string) Verdict {
	if len(comparison) <= 1 {
		return Indeterminate
	}
	for i, j := 0, len(comparison)-1; i < j; i, j = i+1, j-1 {
		if comparison[i] != comparison[j] {
			return NotPalindrome
		}
	}
	return Palindrome
}

// Check normalizes raw and classifies its comparison token.
func Check(raw string) Verdict {
	return Classify(ComparisonToken(raw))
}
