package metrics

import "palinview/internal/palindrome"

// PalinviewMetrics holds the counters a UI session feeds.
type PalinviewMetrics struct {
	registry *Registry

	ChecksTotal   *Counter
	ExamplesTotal *Counter
	Verdicts      map[palindrome.Verdict]*Counter

	AnimationEpoch *Gauge
}

// NewPalinviewMetrics creates and registers all palinview metrics.
func NewPalinviewMetrics(registry *Registry) *PalinviewMetrics {
	if registry == nil {
		registry = NewRegistry("palinview")
	}

	m := &PalinviewMetrics{
		registry: registry,
		ChecksTotal: registry.RegisterCounter(
			"checks_total",
			"Total number of input changes classified",
			nil,
		),
		ExamplesTotal: registry.RegisterCounter(
			"examples_total",
			"Total number of example phrases loaded",
			nil,
		),
		Verdicts:       make(map[palindrome.Verdict]*Counter, 3),
		AnimationEpoch: registry.RegisterGauge("animation_epoch", "Current animation epoch", nil),
	}

	for _, v := range []palindrome.Verdict{palindrome.Indeterminate, palindrome.Palindrome, palindrome.NotPalindrome} {
		m.Verdicts[v] = registry.RegisterCounter(
			"verdicts_total",
			"Classifications by verdict",
			Labels{"verdict": v.String()},
		)
	}
	return m
}

// Registry returns the underlying registry.
func (m *PalinviewMetrics) Registry() *Registry {
	return m.registry
}

// RecordCheck counts one classification and tracks the epoch.
func (m *PalinviewMetrics) RecordCheck(v palindrome.Verdict, epoch uint64) {
	m.ChecksTotal.Inc()
	if c, ok := m.Verdicts[v]; ok {
		c.Inc()
	}
	m.AnimationEpoch.Set(int64(epoch))
}

// RecordExample counts one example phrase load.
func (m *PalinviewMetrics) RecordExample() {
	m.ExamplesTotal.Inc()
}
