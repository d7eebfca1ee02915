package tui

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/chocodye/internal/catalog"
)

// Palette renders catalog colors as terminal swatches.
// Swatches need a truecolor terminal; on anything else text is left plain.
type Palette struct {
	renderer  *lipgloss.Renderer
	trueColor bool
}

// NewPalette creates a palette writing for w with the given color profile.
func NewPalette(w io.Writer, profile termenv.Profile, enabled bool) Palette {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(profile)
	return Palette{
		renderer:  r,
		trueColor: enabled && profile == termenv.TrueColor,
	}
}

// DetectPalette creates a palette for stdout using the detected profile.
func DetectPalette(enabled bool) Palette {
	out := termenv.NewOutput(os.Stdout)
	return NewPalette(os.Stdout, out.EnvColorProfile(), enabled)
}

// TrueColor reports whether swatches are drawn.
func (p Palette) TrueColor() bool {
	return p.trueColor
}

// Swatch renders text on a background of rgb.
func (p Palette) Swatch(rgb catalog.RGB, text string) string {
	if !p.trueColor {
		return text
	}
	return p.renderer.NewStyle().
		Background(lipgloss.Color(rgb.Hex())).
		Foreground(lipgloss.Color(TextColor(rgb).Hex())).
		Render(text)
}

// Chip renders a short colored block, or nothing without truecolor.
func (p Palette) Chip(rgb catalog.RGB) string {
	if !p.trueColor {
		return ""
	}
	return p.Swatch(rgb, "  ") + " "
}

// Style returns a style bound to the palette's renderer.
func (p Palette) Style() lipgloss.Style {
	return p.renderer.NewStyle()
}

// TextColor picks black or white text for a background, whichever is
// further away.
func TextColor(background catalog.RGB) catalog.RGB {
	if background.Distance(catalog.White) < background.Distance(catalog.Black) {
		return catalog.Black
	}
	return catalog.White
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}
