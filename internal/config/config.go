// Package config provides viper-based settings loading for the chocodye
// command line and menu.
package config

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
)

// ErrInvalidSettings is returned when a settings value is out of range.
var ErrInvalidSettings = errors.New("invalid settings")

// Settings keys.
const (
	KeyLogLevel      = "log_level"
	KeyCatalog       = "catalog"
	KeyMaxExpansions = "max_expansions"
	KeyWorkers       = "workers"
	KeySwatches      = "swatches"
)

// Settings holds the application settings.
type Settings struct {
	LogLevel      string `mapstructure:"log_level"`
	Catalog       string `mapstructure:"catalog"`
	MaxExpansions int    `mapstructure:"max_expansions"` // 0 = sized to the catalog
	Workers       int    `mapstructure:"workers"`        // 0 = GOMAXPROCS
	Swatches      bool   `mapstructure:"swatches"`
}

// Validate checks every value.
func (s Settings) Validate() error {
	if _, err := log.ParseLevel(s.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level %q: %v", ErrInvalidSettings, s.LogLevel, err)
	}
	if s.MaxExpansions < 0 {
		return fmt.Errorf("%w: max_expansions must not be negative, got %d", ErrInvalidSettings, s.MaxExpansions)
	}
	if s.Workers < 0 {
		return fmt.Errorf("%w: workers must not be negative, got %d", ErrInvalidSettings, s.Workers)
	}
	return nil
}

// Level returns the parsed log level, or warn when it does not parse.
func (s Settings) Level() log.Level {
	lvl, err := log.ParseLevel(s.LogLevel)
	if err != nil {
		return log.WarnLevel
	}
	return lvl
}
