// Package session owns the raw input of one running UI instance and the
// state derived from it.
//
// SetInput is the only mutation point. It recomputes, in order, the
// comparison and display tokens, the verdict and the animation trigger, then
// notifies observers synchronously. A Session is not safe for concurrent use;
// it belongs to the goroutine that runs the UI event loop.
package session

import (
	"github.com/google/uuid"

	"palinview/internal/examples"
	"palinview/internal/logging"
	"palinview/internal/palindrome"
)

// Snapshot is the complete derived state for one raw input.
type Snapshot struct {
	Raw     string             `json:"raw"`
	Tokens  palindrome.Tokens  `json:"tokens"`
	Verdict palindrome.Verdict `json:"verdict"`
	Epoch   uint64             `json:"epoch"`
	Active  bool               `json:"active"`
}

// Letters splits the display token for per-character layout.
func (s Snapshot) Letters() []palindrome.LetterPosition {
	return palindrome.Letters(s.Tokens.Display)
}

// Observer is called after every input change with the previous and the
// new snapshot.
type Observer func(prev, next Snapshot)

// Session holds one RawInput and its derived tuple.
type Session struct {
	id        string
	current   Snapshot
	trigger   Trigger
	observers []Observer
	log       *logging.Logger
}

// New creates an empty session. A nil logger uses the default logger.
func New(log *logging.Logger) *Session {
	if log == nil {
		log = logging.Default()
	}
	id := uuid.NewString()
	return &Session{
		id:  id,
		log: log.WithComponent("session").With("session_id", id),
	}
}

// ID returns the random identifier used in log lines.
func (s *Session) ID() string {
	return s.id
}

// OnChange registers an observer.
func (s *Session) OnChange(fn Observer) {
	s.observers = append(s.observers, fn)
}

// Snapshot returns the current state.
func (s *Session) Snapshot() Snapshot {
	return s.current
}

// Letters splits the current display token.
func (s *Session) Letters() []palindrome.LetterPosition {
	return s.current.Letters()
}

// SetInput replaces RawInput and recomputes everything derived from it.
// Every call counts as one change for the animation trigger.
func (s *Session) SetInput(raw string) Snapshot {
	prev := s.current

	tokens := palindrome.Normalize(raw)
	verdict := palindrome.Classify(tokens.Comparison)
	epoch, active := s.trigger.Observe(raw)

	s.current = Snapshot{
		Raw:     raw,
		Tokens:  tokens,
		Verdict: verdict,
		Epoch:   epoch,
		Active:  active,
	}

	s.log.Debug("input changed",
		"length", len(raw),
		"verdict", verdict.String(),
		"epoch", epoch,
		"active", active,
	)
	if verdict != prev.Verdict {
		s.log.Info("verdict changed", "from", prev.Verdict.String(), "to", verdict.String())
	}

	for _, fn := range s.observers {
		fn(prev, s.current)
	}
	return s.current
}

// Apply is SetInput for callers that may report the same value twice; it
// does nothing when raw equals the stored input.
func (s *Session) Apply(raw string) Snapshot {
	if raw == s.current.Raw {
		return s.current
	}
	return s.SetInput(raw)
}

// LoadExample overwrites RawInput with the picker's next phrase. Like
// Apply, it changes nothing when the phrase is already the input.
func (s *Session) LoadExample(p *examples.Picker) Snapshot {
	phrase := p.Next()
	s.log.Debug("example loaded", "phrase", phrase)
	return s.Apply(phrase)
}
