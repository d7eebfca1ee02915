package config

import (
	_ "embed"
)

//go:embed defaults/config.yaml
var defaultConfigYAML []byte

// DefaultSettings returns the built-in settings.
func DefaultSettings() Settings {
	return Settings{
		LogLevel: "warn",
		Swatches: true,
	}
}

// DefaultYAML returns the embedded settings document.
func DefaultYAML() []byte {
	out := make([]byte, len(defaultConfigYAML))
	copy(out, defaultConfigYAML)
	return out
}
