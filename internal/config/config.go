// Package config handles configuration loading, validation, and management for palinview.
package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"palinview/internal/examples"
	"palinview/internal/logging"
)

// Version is the current configuration schema version.
const Version = 1

// Config holds the complete application configuration.
type Config struct {
	// Version is the configuration schema version.
	Version int `toml:"version" json:"version" yaml:"version"`

	// Window configuration for the desktop app.
	Window WindowConfig `toml:"window" json:"window" yaml:"window"`

	// Theme configuration.
	Theme ThemeConfig `toml:"theme" json:"theme" yaml:"theme"`

	// Animation timings for the letter display.
	Animation AnimationConfig `toml:"animation" json:"animation" yaml:"animation"`

	// Examples configuration for the example picker.
	Examples ExamplesConfig `toml:"examples" json:"examples" yaml:"examples"`

	// Logging configuration.
	Logging LoggingConfig `toml:"logging" json:"logging" yaml:"logging"`
}

// WindowConfig holds desktop window settings.
type WindowConfig struct {
	// Title is the window title.
	Title string `toml:"title" json:"title" yaml:"title"`

	// Width and Height are the initial size in dp.
	Width  int `toml:"width" json:"width" yaml:"width"`
	Height int `toml:"height" json:"height" yaml:"height"`
}

// ThemeConfig selects the palette family.
type ThemeConfig struct {
	// Mode is "light" or "dark".
	Mode string `toml:"mode" json:"mode" yaml:"mode"`
}

// AnimationConfig holds animation timings.
type AnimationConfig struct {
	// Enabled turns all motion on or off. Verdict colors are unaffected.
	Enabled bool `toml:"enabled" json:"enabled" yaml:"enabled"`

	// SpinMs is the time for one full turn of the letter row.
	SpinMs int `toml:"spin_ms" json:"spin_ms" yaml:"spin_ms"`

	// PulseMs is the period of the not-a-palindrome fade.
	PulseMs int `toml:"pulse_ms" json:"pulse_ms" yaml:"pulse_ms"`

	// BounceMs is the period of the palindrome caption bounce.
	BounceMs int `toml:"bounce_ms" json:"bounce_ms" yaml:"bounce_ms"`

	// Particles is the number of celebration particles.
	Particles int `toml:"particles" json:"particles" yaml:"particles"`
}

// ExamplesConfig configures the example picker.
type ExamplesConfig struct {
	// Phrases are extra example phrases. Each must be a palindrome.
	Phrases []string `toml:"phrases" json:"phrases" yaml:"phrases"`

	// IncludeDefaults keeps the built-in phrases alongside Phrases.
	IncludeDefaults bool `toml:"include_defaults" json:"include_defaults" yaml:"include_defaults"`

	// Seed makes the picker deterministic when non-zero.
	Seed uint64 `toml:"seed" json:"seed" yaml:"seed"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `toml:"level" json:"level" yaml:"level"`

	// Format is "text" or "json".
	Format string `toml:"format" json:"format" yaml:"format"`

	// Output is "stdout", "stderr", "file", "both" or "discard".
	Output string `toml:"output" json:"output" yaml:"output"`

	// FilePath is the log file when Output includes a file.
	FilePath string `toml:"file_path" json:"file_path" yaml:"file_path"`

	// CrashDir holds crash reports. Empty uses the platform default.
	CrashDir string `toml:"crash_dir" json:"crash_dir" yaml:"crash_dir"`

	// CrashRetentionDays is how long crash reports are kept. Zero keeps
	// them forever.
	CrashRetentionDays int `toml:"crash_retention_days" json:"crash_retention_days" yaml:"crash_retention_days"`
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version: Version,
		Window: WindowConfig{
			Title:  "Palindrome Visualizer",
			Width:  900,
			Height: 640,
		},
		Theme: ThemeConfig{
			Mode: "light",
		},
		Animation: AnimationConfig{
			Enabled:   true,
			SpinMs:    4000,
			PulseMs:   2000,
			BounceMs:  1000,
			Particles: 20,
		},
		Examples: ExamplesConfig{
			Phrases:         []string{},
			IncludeDefaults: true,
		},
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "text",
			Output:   "stderr",
			FilePath: logging.DefaultConfig().FilePath,

			CrashRetentionDays: 30,
		},
	}
}

// Dir returns the platform-specific configuration directory.
//
// Platform paths:
//   - macOS:   ~/Library/Application Support/palinview/
//   - Linux:   $XDG_CONFIG_HOME/palinview/ or ~/.config/palinview/
//   - Windows: %APPDATA%\palinview\
//
// Falls back to ~/.palinview.
func Dir() string {
	home, _ := os.UserHomeDir()
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "palinview")
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "palinview")
		}
	case "linux":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "palinview")
		}
		return filepath.Join(home, ".config", "palinview")
	}
	return filepath.Join(home, ".palinview")
}

// ConfigPath returns the default configuration file path.
func ConfigPath() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads configuration from the specified path.
// If the file doesn't exist, returns default configuration.
// Supports TOML, JSON, and YAML formats based on file extension.
func Load(path string) (*Config, error) {
	if path == "" {
		path = ConfigPath()
	}

	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config file: %w", err)
	}

	if err := decode(path, data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decode(path string, data []byte, cfg *Config) error {
	switch filepath.Ext(path) {
	case ".json":
		if err := json.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("decode JSON: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("decode YAML: %w", err)
		}
	default:
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return fmt.Errorf("decode TOML: %w", err)
		}
	}
	return nil
}

// Save writes cfg to path in the format implied by its extension.
func Save(cfg *Config, path string) error {
	var data []byte
	var err error

	switch filepath.Ext(path) {
	case ".json":
		data, err = json.MarshalIndent(cfg, "", "  ")
	case ".yaml", ".yml":
		data, err = yaml.Marshal(cfg)
	default:
		var buf bytes.Buffer
		err = toml.NewEncoder(&buf).Encode(cfg)
		data = buf.Bytes()
	}
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// WriteTOML writes cfg as TOML.
func (c *Config) WriteTOML(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// ApplyEnvOverrides applies PALINVIEW_* environment variables.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("PALINVIEW_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("PALINVIEW_LOG_FORMAT"); v != "" {
		c.Logging.Format = v
	}
	if v := os.Getenv("PALINVIEW_LOG_PATH"); v != "" {
		c.Logging.FilePath = v
	}
	if v := os.Getenv("PALINVIEW_THEME"); v != "" {
		c.Theme.Mode = v
	}
	if v := os.Getenv("PALINVIEW_SEED"); v != "" {
		if seed, err := strconv.ParseUint(v, 10, 64); err == nil {
			c.Examples.Seed = seed
		}
	}
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	out := *c
	out.Examples.Phrases = append([]string(nil), c.Examples.Phrases...)
	return &out
}

// SpinDuration returns the period of one letter-row turn, zero when motion
// is off.
func (c *Config) SpinDuration() time.Duration {
	if !c.Animation.Enabled {
		return 0
	}
	return time.Duration(c.Animation.SpinMs) * time.Millisecond
}

// PulsePeriod returns the pulse period, zero when motion is off.
func (c *Config) PulsePeriod() time.Duration {
	if !c.Animation.Enabled {
		return 0
	}
	return time.Duration(c.Animation.PulseMs) * time.Millisecond
}

// BouncePeriod returns the bounce period, zero when motion is off.
func (c *Config) BouncePeriod() time.Duration {
	if !c.Animation.Enabled {
		return 0
	}
	return time.Duration(c.Animation.BounceMs) * time.Millisecond
}

// ExamplePhrases returns the phrase list the picker should use. Phrases
// repeated in the config or already among the defaults appear once, in
// first-seen order.
func (c *Config) ExamplePhrases() []string {
	var all []string
	if c.Examples.IncludeDefaults || len(c.Examples.Phrases) == 0 {
		all = examples.DefaultPhrases()
	}
	all = append(all, c.Examples.Phrases...)

	seen := make(map[string]bool, len(all))
	out := all[:0]
	for _, p := range all {
		if seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out
}

// CrashRetention returns the crash report retention, zero for forever.
func (c *Config) CrashRetention() time.Duration {
	return time.Duration(c.Logging.CrashRetentionDays) * 24 * time.Hour
}

// NewPicker builds the example picker described by the config.
func (c *Config) NewPicker() (*examples.Picker, error) {
	var src examples.Source
	if c.Examples.Seed != 0 {
		src = examples.NewSeededSource(c.Examples.Seed)
	}
	return examples.NewPicker(c.ExamplePhrases(), src)
}

// LoggerConfig converts the logging section.
func (c *Config) LoggerConfig(component string) (*logging.Config, error) {
	level, err := logging.ParseLevel(c.Logging.Level)
	if err != nil {
		return nil, err
	}
	format, err := logging.ParseFormat(c.Logging.Format)
	if err != nil {
		return nil, err
	}

	lc := logging.DefaultConfig()
	lc.Level = level
	lc.Format = format
	lc.Output = c.Logging.Output
	lc.FilePath = c.Logging.FilePath
	lc.Component = component
	return lc, nil
}
