// Package report renders a session snapshot as a versioned JSON document.
// The shape is pinned by docs/schema/report-v1.schema.json.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"palinview/internal/palindrome"
	"palinview/internal/presenter"
	"palinview/internal/session"
)

// Version is the report schema version.
const Version = 1

// Letter is one display character.
type Letter struct {
	Letter string `json:"letter"`
	Index  int    `json:"index"`
}

// Report is the machine-readable result of one check.
type Report struct {
	Version    int                `json:"version"`
	Input      string             `json:"input"`
	Comparison string             `json:"comparison"`
	Display    string             `json:"display"`
	Verdict    palindrome.Verdict `json:"verdict"`
	Epoch      uint64             `json:"epoch"`
	Active     bool               `json:"active"`
	Letters    []Letter           `json:"letters"`
	Caption    string             `json:"caption"`
}

// FromSnapshot builds a report.
func FromSnapshot(s session.Snapshot) Report {
	letters := make([]Letter, 0, len(s.Tokens.Display))
	for _, lp := range s.Letters() {
		letters = append(letters, Letter{Letter: string(lp.Letter), Index: lp.Index})
	}
	return Report{
		Version:    Version,
		Input:      s.Raw,
		Comparison: s.Tokens.Comparison,
		Display:    s.Tokens.Display,
		Verdict:    s.Verdict,
		Epoch:      s.Epoch,
		Active:     s.Active,
		Letters:    letters,
		Caption:    presenter.View(s).Caption,
	}
}

// Write encodes r as indented JSON followed by a newline.
func Write(w io.Writer, r Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}

// Text renders r as the two-line human form used by the CLI.
func Text(r Report) string {
	display := r.Display
	if display == "" {
		display = "(nothing to show)"
	}
	icon := presenter.View(session.Snapshot{Verdict: r.Verdict}).Icon
	return fmt.Sprintf("%s\n%s %s [%s]\n", display, icon, r.Caption, r.Verdict)
}
