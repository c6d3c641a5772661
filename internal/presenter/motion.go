package presenter

import (
	"math"
	"time"
)

// Spin is the per-letter spin clock. The row turns at a constant rate for
// as long as the input is active. A new animation epoch restarts the turn
// from angle zero; blank input stops it.
type Spin struct {
	Period time.Duration

	epoch   uint64
	start   time.Time
	running bool
}

// NewSpin returns a spin clock completing one turn per period.
func NewSpin(period time.Duration) *Spin {
	return &Spin{Period: period}
}

// Sync feeds the latest epoch. It reports whether the clock restarted.
func (s *Spin) Sync(epoch uint64, active bool, now time.Time) bool {
	if !active {
		s.running = false
		s.epoch = epoch
		return false
	}
	if epoch == s.epoch && s.running {
		return false
	}
	s.epoch = epoch
	s.start = now
	s.running = true
	return true
}

// Progress returns the phase of the current turn in [0, 1). It is 0 when
// the clock is stopped.
func (s *Spin) Progress(now time.Time) float64 {
	if !s.Animating(now) {
		return 0
	}
	elapsed := now.Sub(s.start)
	if elapsed <= 0 {
		return 0
	}
	return float64(elapsed%s.Period) / float64(s.Period)
}

// Angle returns the container rotation in radians. Letters rotate by the
// negated angle so they stay upright.
func (s *Spin) Angle(now time.Time) float32 {
	return float32(2 * math.Pi * s.Progress(now))
}

// Animating reports whether frames are still needed.
func (s *Spin) Animating(time.Time) bool {
	return s.running && s.Period > 0
}

// Pulse returns an opacity in [0.5, 1] cycling with the given period.
func Pulse(now time.Time, period time.Duration) float32 {
	if period <= 0 {
		return 1
	}
	phase := float64(now.UnixNano()%int64(period)) / float64(period)
	return float32(0.75 + 0.25*math.Cos(2*math.Pi*phase))
}

// Bounce returns a lift in [0, 1] cycling with the given period.
func Bounce(now time.Time, period time.Duration) float32 {
	if period <= 0 {
		return 0
	}
	phase := float64(now.UnixNano()%int64(period)) / float64(period)
	return float32(math.Abs(math.Sin(math.Pi * phase)))
}
