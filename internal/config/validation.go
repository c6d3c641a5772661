package config

import (
	"fmt"
	"strings"

	"palinview/internal/logging"
	"palinview/internal/palindrome"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	msgs := make([]string, 0, len(e))
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs ValidationErrors
	add := func(field, format string, args ...any) {
		errs = append(errs, ValidationError{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	if c.Version < 1 || c.Version > Version {
		add("version", "unsupported version %d (current: %d)", c.Version, Version)
	}

	if c.Window.Width < 200 || c.Window.Height < 200 {
		add("window", "size %dx%d is below the 200x200 minimum", c.Window.Width, c.Window.Height)
	}

	switch c.Theme.Mode {
	case "light", "dark":
	default:
		add("theme.mode", "must be \"light\" or \"dark\", got %q", c.Theme.Mode)
	}

	if c.Animation.SpinMs < 0 || c.Animation.PulseMs < 0 || c.Animation.BounceMs < 0 {
		add("animation", "durations must not be negative")
	}
	if c.Animation.Particles < 0 || c.Animation.Particles > 500 {
		add("animation.particles", "must be between 0 and 500, got %d", c.Animation.Particles)
	}

	for i, p := range c.Examples.Phrases {
		if v := palindrome.Check(p); v != palindrome.Palindrome {
			add(fmt.Sprintf("examples.phrases[%d]", i), "%q is not a palindrome (%s)", p, v)
		}
	}

	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		add("logging.level", "%v", err)
	}
	if _, err := logging.ParseFormat(c.Logging.Format); err != nil {
		add("logging.format", "%v", err)
	}
	switch strings.ToLower(c.Logging.Output) {
	case "stdout", "stderr", "discard":
	case "file", "both":
		if c.Logging.FilePath == "" {
			add("logging.file_path", "required when output is %q", c.Logging.Output)
		}
	default:
		add("logging.output", "unknown output %q", c.Logging.Output)
	}

	if c.Logging.CrashRetentionDays < 0 {
		add("logging.crash_retention_days", "must not be negative, got %d", c.Logging.CrashRetentionDays)
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
