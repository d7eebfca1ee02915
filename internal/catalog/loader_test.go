package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const smallCatalogYAML = `
discount_percent: 50
default_color: desert-yellow
categories:
  - name: white
    color: "#ffffff"
    colors:
      - { name: snow-white, color: "#e4dfd0" }
      - { name: charcoal-grey, color: "#484742" }
  - name: yellow
    color: "#e6c83c"
    colors:
      - { name: desert-yellow, color: "#dbb457" }
transforms:
  - { from: charcoal-grey, fruit: lemon, to: desert-yellow, units: 1 }
  - { from: desert-yellow, fruit: apple, to: snow-white, units: 3 }
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParseSmallCatalog(t *testing.T) {
	cat, err := Parse([]byte(smallCatalogYAML))
	require.NoError(t, err)

	assert.Equal(t, 3, cat.Len())
	assert.Equal(t, 50, cat.DiscountPercent())
	assert.Len(t, cat.Transforms(), 2)
	assert.Len(t, cat.ColorsIn(CategoryWhite), 2)
	assert.Empty(t, cat.ColorsIn(CategoryBlue))
}

func TestParseRejectsUnknownFields(t *testing.T) {
	_, err := Parse([]byte(smallCatalogYAML + "\nextra: true\n"))
	assert.Error(t, err)
}

func TestParseRejectsBadHex(t *testing.T) {
	data := `
discount_percent: 10
default_color: a
categories:
  - name: red
    color: "#ff0000"
    colors:
      - { name: a, color: "ff0000" }
`
	_, err := Parse([]byte(data))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestParseEmptyDocument(t *testing.T) {
	_, err := Parse(nil)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoadCustomPath(t *testing.T) {
	path := writeFile(t, "catalog.yaml", smallCatalogYAML)

	cat, source, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, source)
	assert.Equal(t, 3, cat.Len())
}

func TestLoadCustomPathMissing(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadCustomPathInvalid(t *testing.T) {
	path := writeFile(t, "catalog.yaml", "discount_percent: 0\n")

	_, _, err := Load(path)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cat, source, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, SourceEmbedded, source)
	assert.Equal(t, 85, cat.Len())
}

func TestDefaultYAMLIsACopy(t *testing.T) {
	data := DefaultYAML()
	require.NotEmpty(t, data)
	data[0] = 'X'
	assert.NotEqual(t, byte('X'), DefaultYAML()[0])
}
