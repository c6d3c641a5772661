// Package metrics provides Prometheus-compatible in-process metrics for
// palinview.
//
// Only counters and gauges are needed; values are atomics so the config
// watcher goroutine may read a snapshot while the UI loop updates them.
package metrics

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
)

// MetricType represents the type of metric.
type MetricType int

const (
	// TypeCounter is a monotonically increasing counter.
	TypeCounter MetricType = iota
	// TypeGauge is a value that can go up and down.
	TypeGauge
)

// String returns the Prometheus type name.
func (t MetricType) String() string {
	switch t {
	case TypeCounter:
		return "counter"
	case TypeGauge:
		return "gauge"
	default:
		return "unknown"
	}
}

// Labels represents metric labels.
type Labels map[string]string

// String renders labels in Prometheus form with sorted keys.
func (l Labels) String() string {
	if len(l) == 0 {
		return ""
	}

	keys := make([]string, 0, len(l))
	for k := range l {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(l))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf(`%s="%s"`, k, l[k]))
	}
	return "{" + strings.Join(parts, ",") + "}"
}

// Counter is a monotonically increasing counter.
type Counter struct {
	name   string
	help   string
	labels Labels
	value  atomic.Uint64
}

// Inc increments the counter by 1.
func (c *Counter) Inc() {
	c.value.Add(1)
}

// Add adds the given value to the counter.
func (c *Counter) Add(v uint64) {
	c.value.Add(v)
}

// Value returns the current value.
func (c *Counter) Value() uint64 {
	return c.value.Load()
}

// Name returns the metric name.
func (c *Counter) Name() string {
	return c.name
}

// Gauge is a value that can go up and down.
type Gauge struct {
	name   string
	help   string
	labels Labels
	value  atomic.Int64
}

// Set sets the gauge.
func (g *Gauge) Set(v int64) {
	g.value.Store(v)
}

// Value returns the current value.
func (g *Gauge) Value() int64 {
	return g.value.Load()
}

// Name returns the metric name.
func (g *Gauge) Name() string {
	return g.name
}

// Registry holds all registered metrics, keyed by full name and labels.
type Registry struct {
	mu       sync.RWMutex
	counters map[string]*Counter
	gauges   map[string]*Gauge

	namespace string
}

// NewRegistry creates a new Registry.
func NewRegistry(namespace string) *Registry {
	return &Registry{
		counters:  make(map[string]*Counter),
		gauges:    make(map[string]*Gauge),
		namespace: namespace,
	}
}

func (r *Registry) fullName(name string) string {
	if r.namespace == "" {
		return name
	}
	return r.namespace + "_" + name
}

// RegisterCounter registers a counter, returning the existing one on reuse.
func (r *Registry) RegisterCounter(name, help string, labels Labels) *Counter {
	r.mu.Lock()
	defer r.mu.Unlock()

	full := r.fullName(name)
	key := full + labels.String()
	if c, ok := r.counters[key]; ok {
		return c
	}

	c := &Counter{name: full, help: help, labels: labels}
	r.counters[key] = c
	return c
}

// RegisterGauge registers a gauge, returning the existing one on reuse.
func (r *Registry) RegisterGauge(name, help string, labels Labels) *Gauge {
	r.mu.Lock()
	defer r.mu.Unlock()

	full := r.fullName(name)
	key := full + labels.String()
	if g, ok := r.gauges[key]; ok {
		return g
	}

	g := &Gauge{name: full, help: help, labels: labels}
	r.gauges[key] = g
	return g
}

// WritePrometheus writes metrics in Prometheus text format, sorted by name.
func (r *Registry) WritePrometheus(w io.Writer) error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	type line struct {
		name, labels, help, typ string
		value               int64
	}
	var lines []line
	for _, c := range r.counters {
		lines = append(lines, line{c.name, c.labels.String(), c.help, TypeCounter.String(), int64(c.Value())})
	}
	for _, g := range r.gauges {
		lines = append(lines, line{g.name, g.labels.String(), g.help, TypeGauge.String(), g.Value()})
	}
	// Samples of one metric must stay together under a single HELP/TYPE.
	sort.Slice(lines, func(i, j int) bool {
		if lines[i].name != lines[j].name {
			return lines[i].name < lines[j].name
		}
		return lines[i].labels < lines[j].labels
	})

	seen := make(map[string]bool)
	for _, l := range lines {
		if !seen[l.name] {
			seen[l.name] = true
			if _, err := fmt.Fprintf(w, "# HELP %s %s\n# TYPE %s %s\n", l.name, l.help, l.name, l.typ); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "%s%s %d\n", l.name, l.labels, l.value); err != nil {
			return err
		}
	}
	return nil
}

// Snapshot returns current values keyed by name plus labels.
func (r *Registry) Snapshot() map[string]int64 {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot := make(map[string]int64, len(r.counters)+len(r.gauges))
	for key, c := range r.counters {
		snapshot[key] = int64(c.Value())
	}
	for key, g := range r.gauges {
		snapshot[key] = g.Value()
	}
	return snapshot
}

// WriteJSON writes the snapshot as indented JSON.
func (r *Registry) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r.Snapshot())
}
