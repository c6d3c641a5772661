package config

import "sync"

// Latest hands reloaded configs from Loader callbacks to a consumer that
// applies them on its own goroutine. Only the newest unapplied config is
// kept, and Put never blocks.
type Latest struct {
	mu  sync.Mutex
	cfg *Config
}

// Put replaces the pending config.
func (l *Latest) Put(cfg *Config) {
	l.mu.Lock()
	l.cfg = cfg
	l.mu.Unlock()
}

// Take returns the pending config, or nil, and empties the slot.
func (l *Latest) Take() *Config {
	l.mu.Lock()
	defer l.mu.Unlock()
	cfg := l.cfg
	l.cfg = nil
	return cfg
}
