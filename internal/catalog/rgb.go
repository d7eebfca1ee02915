package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Errors returned by ParseHex.
var (
	ErrHexLength      = errors.New("bad length")
	ErrHexMissingHash = errors.New("missing `#` prefix")
	ErrHexDigits      = errors.New("bad hex digits")
)

// RGB is a 24-bit display color. It is never used by the path search.
type RGB struct {
	R, G, B uint8
}

// Reference colors.
var (
	White = RGB{R: 255, G: 255, B: 255}
	Black = RGB{}
)

// Gray returns the gray with all three channels set to v.
func Gray(v uint8) RGB {
	return RGB{R: v, G: v, B: v}
}

// ParseHex parses a color in the "#rrggbb" form.
func ParseHex(s string) (RGB, error) {
	if len(s) != 7 {
		return RGB{}, fmt.Errorf("parse color %q: %w", s, ErrHexLength)
	}
	if s[0] != '#' {
		return RGB{}, fmt.Errorf("parse color %q: %w", s, ErrHexMissingHash)
	}

	c, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, fmt.Errorf("parse color %q: %w", s, ErrHexDigits)
	}

	// colorful.Hex tolerates trailing garbage, so insist on a round trip.
	if c.Hex() != strings.ToLower(s) {
		return RGB{}, fmt.Errorf("parse color %q: %w", s, ErrHexDigits)
	}

	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}, nil
}

// Hex formats the color as "#rrggbb".
func (c RGB) Hex() string {
	return c.colorful().Hex()
}

// String implements fmt.Stringer.
func (c RGB) String() string {
	return c.Hex()
}

// Distance returns the squared euclidean distance between two colors.
func (c RGB) Distance(other RGB) uint32 {
	dr := int32(c.R) - int32(other.R)
	dg := int32(c.G) - int32(other.G)
	db := int32(c.B) - int32(other.B)

	return uint32(dr*dr) + uint32(dg*dg) + uint32(db*db)
}

// AddSigned shifts every channel by the given deltas.
// Returns false if any channel leaves the 0..255 range.
func (c RGB) AddSigned(dr, dg, db int8) (RGB, bool) {
	r, okR := addChannel(c.R, dr)
	g, okG := addChannel(c.G, dg)
	b, okB := addChannel(c.B, db)
	if !okR || !okG || !okB {
		return c, false
	}
	return RGB{R: r, G: g, B: b}, true
}

func addChannel(v uint8, d int8) (uint8, bool) {
	sum := int16(v) + int16(d)
	if sum < 0 || sum > 255 {
		return v, false
	}
	return uint8(sum), true
}

func (c RGB) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}
