// Package examples picks palindromic example phrases for the input field.
package examples

import (
	"errors"
	"math/rand/v2"
)

// ErrNoPhrases is returned when a picker is built over an empty list.
var ErrNoPhrases = errors.New("examples: phrase list is empty")

// Source yields uniform integers in [0, n). *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// NewSeededSource returns a deterministic source.
func NewSeededSource(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Picker draws phrases uniformly at random without repeating the previous
// draw. Only the last index is mutable.
type Picker struct {
	phrases []string
	rnd     Source
	last    int
}

// NewPicker copies phrases and returns a picker over them. A nil source uses
// the process-wide generator.
func NewPicker(phrases []string, rnd Source) (*Picker, error) {
	if len(phrases) == 0 {
		return nil, ErrNoPhrases
	}
	if rnd == nil {
		rnd = globalSource{}
	}
	p := &Picker{
		phrases: make([]string, len(phrases)),
		rnd:     rnd,
		last:    -1,
	}
	copy(p.phrases, phrases)
	return p, nil
}

// NewDefaultPicker returns a picker over DefaultPhrases.
func NewDefaultPicker(rnd Source) *Picker {
	p, _ := NewPicker(defaultPhrases[:], rnd)
	return p
}

// Next selects and returns a phrase different from the previous selection
// whenever more than one phrase exists.
func (p *Picker) Next() string {
	n := len(p.phrases)
	var i int
	switch {
	case n == 1:
		i = 0
	case p.last < 0:
		i = p.rnd.IntN(n)
	default:
		// Draw from the n-1 other slots and step over the last one.
		i = p.rnd.IntN(n - 1)
		if i >= p.last {
			i++
		}
	}
	p.last = i
	return p.phrases[i]
}

// Last returns the index of the previous selection, if any.
func (p *Picker) Last() (int, bool) {
	return p.last, p.last >= 0
}

// Len returns the number of phrases.
func (p *Picker) Len() int {
	return len(p.phrases)
}

// Phrases returns a copy of the phrase list.
func (p *Picker) Phrases() []string {
	out := make([]string, len(p.phrases))
	copy(out, p.phrases)
	return out
}
