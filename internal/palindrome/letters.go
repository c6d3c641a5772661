package palindrome

// LetterPosition is one character of a display token and its index.
type LetterPosition struct {
	Letter rune `json:"letter"`
	Index  int  `json:"index"`
}

// Letters splits a display token into its characters, preserving order.
func Letters(display string) []LetterPosition {
	if display == "" {
		return nil
	}
	out := make([]LetterPosition, 0, len(display))
	i := 0
	for _, r := range display {
		out = append(out, LetterPosition{Letter: r, Index: i})
		i++
	}
	return out
}
