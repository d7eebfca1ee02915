package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

//go:embed defaults/catalog.yaml
var defaultCatalogYAML []byte

// SourceEmbedded names the built-in catalog in Load results.
const SourceEmbedded = "embedded"

// Default parses the built-in catalog of chocobo dyes.
func Default() (*Catalog, error) {
	cat, err := Parse(defaultCatalogYAML)
	if err != nil {
		return nil, fmt.Errorf("embedded catalog: %w", err)
	}
	return cat, nil
}

// DefaultYAML returns the embedded catalog document.
func DefaultYAML() []byte {
	out := make([]byte, len(defaultCatalogYAML))
	copy(out, defaultCatalogYAML)
	return out
}

// Load loads the catalog and returns it along with the source it came from.
// Search order: customPath -> ~/.chocodye/catalog.yaml -> ./configs/catalog.yaml -> embedded default.
//
// Only a missing file moves the search on. A catalog that exists but does
// not parse or validate is returned as an error.
func Load(customPath string) (*Catalog, string, error) {
	// Custom path must exist
	if customPath != "" {
		cat, err := loadFile(customPath)
		if err != nil {
			return nil, "", err
		}
		return cat, customPath, nil
	}

	candidates := []string{"configs/catalog.yaml"}
	if userPath := userCatalogPath(); userPath != "" {
		candidates = append([]string{userPath}, candidates...)
	}

	for _, path := range candidates {
		cat, err := loadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, "", err
		}
		return cat, path, nil
	}

	cat, err := Default()
	if err != nil {
		return nil, "", err
	}
	return cat, SourceEmbedded, nil
}

func loadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}
	cat, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog %s: %w", path, err)
	}
	return cat, nil
}

// userCatalogPath returns the per-user catalog path, or empty if home is unavailable.
func userCatalogPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".chocodye", "catalog.yaml")
}
