// Package presenter maps a session snapshot onto what the window draws:
// the style role, caption, letters and animation clocks. It has no
// dependency on the GUI toolkit so the mapping can be tested directly.
package presenter

import (
	"palinview/internal/palindrome"
	"palinview/internal/session"
)

// Role selects the palette used for background, letters and caption.
type Role int

const (
	// RoleNeutral is used while the verdict is indeterminate.
	RoleNeutral Role = iota
	// RoleCelebrate is used for palindromes.
	RoleCelebrate
	// RoleMuted is used for non-palindromes.
	RoleMuted
)

func (r Role) String() string {
	switch r {
	case RoleCelebrate:
		return "celebrate"
	case RoleMuted:
		return "muted"
	default:
		return "neutral"
	}
}

// Caption texts.
const (
	CaptionPalindrome    = "It's a palindrome! Amazing!"
	CaptionNotPalindrome = "Not quite a palindrome..."
	CaptionKeepTyping    = "Keep typing..."
)

// Presentation is everything the renderer needs for one frame.
type Presentation struct {
	Role    Role
	Icon    string
	Glyph   string
	Caption string

	// Letters is empty when the display token is empty; nothing but the
	// input field is drawn then.
	Letters []palindrome.LetterPosition

	// Pulse fades letters and caption in and out.
	Pulse bool
	// Bounce lifts the caption up and down.
	Bounce bool
	// Celebrate shows the particle overlay.
	Celebrate bool

	Epoch    uint64
	Spinning bool
}

// Visible reports whether letters and caption are drawn.
func (p Presentation) Visible() bool {
	return len(p.Letters) > 0
}

// View derives a presentation from a snapshot.
func View(s session.Snapshot) Presentation {
	p := Presentation{
		Letters:  s.Letters(),
		Epoch:    s.Epoch,
		Spinning: s.Active,
	}

	switch s.Verdict {
	case palindrome.Palindrome:
		p.Role = RoleCelebrate
		p.Icon, p.Glyph = "🎉", `\o/`
		p.Caption = CaptionPalindrome
		p.Bounce = true
		p.Celebrate = true
	case palindrome.NotPalindrome:
		p.Role = RoleMuted
		p.Icon, p.Glyph = "😔", ":("
		p.Caption = CaptionNotPalindrome
		p.Pulse = true
	default:
		p.Role = RoleNeutral
		p.Icon, p.Glyph = "🤔", "?"
		p.Caption = CaptionKeepTyping
	}
	return p
}
