package presenter

import (
	"math"
	"math/rand/v2"
	"time"
)

// Rand yields floats in [0, 1). *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// Particle is one celebration dot. X and Y are fractions of the window.
type Particle struct {
	X, Y     float32
	Delay    time.Duration
	Duration time.Duration
}

// Particles regenerates its dots each time celebration starts.
type Particles struct {
	Count int

	rnd   Rand
	items []Particle
	start time.Time
	on    bool
}

// NewParticles returns a particle field. A nil rnd uses a time-seeded
// generator.
func NewParticles(count int, rnd Rand) *Particles {
	if rnd == nil {
		seed := uint64(time.Now().UnixNano())
		rnd = rand.New(rand.NewPCG(seed, seed>>1))
	}
	return &Particles{Count: count, rnd: rnd}
}

// Sync turns the field on or off, scattering new particles on the rising
// edge.
func (p *Particles) Sync(celebrate bool, now time.Time) {
	if !celebrate {
		p.on = false
		p.items = nil
		return
	}
	if p.on {
		return
	}
	p.on = true
	p.start = now
	p.items = make([]Particle, p.Count)
	for i := range p.items {
		p.items[i] = Particle{
			X:        float32(p.rnd.Float64()),
			Y:        float32(p.rnd.Float64()),
			Delay:    time.Duration(p.rnd.Float64() * float64(2*time.Second)),
			Duration: time.Second + time.Duration(p.rnd.Float64()*float64(time.Second)),
		}
	}
}

// Items returns the current particles; nil when off.
func (p *Particles) Items() []Particle {
	return p.items
}

// Active reports whether the overlay is shown.
func (p *Particles) Active() bool {
	return p.on
}

// Alpha returns particle i's opacity at now. Particles wait out their
// delay, then fade in and out once per duration, forever.
func (p *Particles) Alpha(i int, now time.Time) float32 {
	if !p.on || i < 0 || i >= len(p.items) {
		return 0
	}
	pt := p.items[i]
	elapsed := now.Sub(p.start) - pt.Delay
	if elapsed < 0 || pt.Duration <= 0 {
		return 0
	}
	phase := float64(elapsed%pt.Duration) / float64(pt.Duration)
	return float32(math.Sin(math.Pi * phase))
}
