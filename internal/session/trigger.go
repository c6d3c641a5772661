package session

import "strings"

// Trigger tracks the animation epoch. Every observed change whose trimmed
// value is non-blank moves the epoch forward by one and marks the display
// active; blank input only clears the active flag.
type Trigger struct {
	epoch  uint64
	active bool
}

// Observe records one raw input change.
func (t *Trigger) Observe(raw string) (epoch uint64, active bool) {
	if strings.TrimSpace(raw) != "" {
		t.epoch++
		t.active = true
	} else {
		t.active = false
	}
	return t.epoch, t.active
}

// Epoch returns the current epoch.
func (t *Trigger) Epoch() uint64 {
	return t.epoch
}

// Active reports whether the last observed input was non-blank.
func (t *Trigger) Active() bool {
	return t.active
}
