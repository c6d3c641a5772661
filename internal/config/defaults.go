package config

import (
	"os"
	"path/filepath"
)

// SupportedConfigFormats returns the config file extensions Load understands,
// in search order.
func SupportedConfigFormats() []string {
	return []string{
		"toml",
		"yaml",
		"yml",
		"json",
	}
}

// FindConfigFile searches the config directory for config.<ext>.
// Returns the path to the first found config file, or empty string if none found.
func FindConfigFile() string {
	return findIn(Dir())
}

func findIn(dir string) string {
	for _, ext := range SupportedConfigFormats() {
		path := filepath.Join(dir, "config."+ext)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// DefaultPath returns the existing config file if there is one, otherwise
// ConfigPath.
func DefaultPath() string {
	if path := FindConfigFile(); path != "" {
		return path
	}
	return ConfigPath()
}
