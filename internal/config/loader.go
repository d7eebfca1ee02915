package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes the environment variables that override settings.
const EnvPrefix = "CHOCODYE"

// SourceEmbedded names the built-in settings in Load results.
const SourceEmbedded = "embedded"

// Load reads the settings and returns them along with the file they came from.
// Search order: customPath -> ~/.chocodye/config.yaml -> ./configs/config.yaml -> embedded default.
// CHOCODYE_* environment variables override whatever file was found.
func Load(customPath string) (Settings, string, error) {
	v, source, err := newViper(customPath)
	if err != nil {
		return Settings{}, "", err
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, "", fmt.Errorf("failed to decode settings from %s: %w", source, err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, "", fmt.Errorf("settings from %s: %w", source, err)
	}
	return s, source, nil
}

func newViper(customPath string) (*viper.Viper, string, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	// Embedded defaults register every key, so env overrides reach Unmarshal.
	if err := v.ReadConfig(bytes.NewReader(defaultConfigYAML)); err != nil {
		return nil, "", fmt.Errorf("embedded settings: %w", err)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	// Custom path must exist
	if customPath != "" {
		if err := mergeFile(v, customPath); err != nil {
			return nil, "", err
		}
		return v, customPath, nil
	}

	candidates := []string{filepath.Join("configs", "config.yaml")}
	if userPath := userConfigPath(); userPath != "" {
		candidates = append([]string{userPath}, candidates...)
	}

	for _, path := range candidates {
		err := mergeFile(v, path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, "", err
		}
		return v, path, nil
	}

	return v, SourceEmbedded, nil
}

func mergeFile(v *viper.Viper, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read settings %s: %w", path, err)
	}
	if err := v.MergeConfig(bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to parse settings %s: %w", path, err)
	}
	return nil
}

// userConfigPath returns the per-user settings path, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".chocodye", "config.yaml")
}
