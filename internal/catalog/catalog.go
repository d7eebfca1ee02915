// Package catalog holds the static color and transform tables that define
// the chocobo plumage transition graph.
//
// A Catalog is validated once when it is constructed and never changes
// afterwards, so a single instance can be shared by any number of readers.
package catalog

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ColorID is the dense index of a color inside its catalog.
type ColorID int

// Color is a named plumage color.
type Color struct {
	ID       ColorID
	Name     string // kebab-case, unique
	Category Category
	RGB      RGB
}

// Transform feeds Units of Fruit to a chocobo of color From, turning it To.
type Transform struct {
	From  ColorID
	Fruit Fruit
	To    ColorID
	Units int
}

// Spec is the unvalidated input of New.
type Spec struct {
	// DiscountPercent is the cost reduction, in percent, of every feeding
	// that follows a discount-fruit feeding.
	DiscountPercent int
	DefaultColor    string
	Categories      []CategorySpec
	// Transforms is derived from the colors when empty.
	Transforms []TransformSpec
}

// CategorySpec lists the colors of one category.
type CategorySpec struct {
	Name   string
	RGB    RGB
	Colors []ColorSpec
}

// ColorSpec declares one color.
type ColorSpec struct {
	Name string
	RGB  RGB
}

// TransformSpec declares one transform by names.
type TransformSpec struct {
	From  string
	Fruit string
	To    string
	Units int
}

type categoryInfo struct {
	present bool
	rgb     RGB
	colors  []ColorID
}

// Catalog is the validated, immutable set of colors and transforms.
type Catalog struct {
	colors          []Color
	byName          map[string]ColorID
	categories      [CategoryCount]categoryInfo
	transforms      []Transform
	discountPercent int
	defaultColor    ColorID
	derived         bool
}

// New validates spec and builds a Catalog from it.
func New(spec Spec) (*Catalog, error) {
	c := &Catalog{
		byName:          make(map[string]ColorID),
		discountPercent: spec.DiscountPercent,
	}

	if spec.DiscountPercent < 1 || spec.DiscountPercent > 99 {
		return nil, invalid(CodeInvalidDiscount, ErrInvalidConfig,
			"discount percent %d outside 1..99", spec.DiscountPercent)
	}

	if err := c.addColors(spec.Categories); err != nil {
		return nil, err
	}

	def, ok := c.byName[spec.DefaultColor]
	if !ok {
		return nil, invalid(CodeUnknownColor, ErrUnknownColor,
			"default color %q is not in the catalog", spec.DefaultColor)
	}
	c.defaultColor = def

	if len(spec.Transforms) == 0 {
		c.transforms = Derive(c.colors, c.defaultColor)
		c.derived = true
	} else {
		transforms, err := c.resolveTransforms(spec.Transforms)
		if err != nil {
			return nil, err
		}
		c.transforms = transforms
	}

	slices.SortFunc(c.transforms, compareTransforms)

	return c, nil
}

func (c *Catalog) addColors(categories []CategorySpec) error {
	for _, cs := range categories {
		cat, ok := ParseCategory(cs.Name)
		if !ok {
			return invalid(CodeUnknownCategory, ErrInvalidConfig, "unknown category %q", cs.Name)
		}
		if c.categories[cat].present {
			return invalid(CodeDuplicateCategory, ErrDuplicate, "category %q declared twice", cs.Name)
		}
		c.categories[cat].present = true
		c.categories[cat].rgb = cs.RGB

		for _, col := range cs.Colors {
			if !validName(col.Name) {
				return invalid(CodeInvalidName, ErrInvalidConfig, "color name %q is not kebab-case", col.Name)
			}
			if _, exists := c.byName[col.Name]; exists {
				return invalid(CodeDuplicateColor, ErrDuplicate, "color %q declared twice", col.Name)
			}

			id := ColorID(len(c.colors))
			c.colors = append(c.colors, Color{
				ID:       id,
				Name:     col.Name,
				Category: cat,
				RGB:      col.RGB,
			})
			c.byName[col.Name] = id
			c.categories[cat].colors = append(c.categories[cat].colors, id)
		}
	}

	if len(c.colors) == 0 {
		return invalid(CodeEmptyCatalog, ErrInvalidConfig, "catalog declares no colors")
	}
	return nil
}

func (c *Catalog) resolveTransforms(specs []TransformSpec) ([]Transform, error) {
	type key struct {
		from  ColorID
		fruit Fruit
	}
	seen := make(map[key]bool, len(specs))
	out := make([]Transform, 0, len(specs))

	for _, ts := range specs {
		from, ok := c.byName[ts.From]
		if !ok {
			return nil, invalid(CodeUnknownColor, ErrUnknownColor,
				"transform source %q is not in the catalog", ts.From)
		}
		to, ok := c.byName[ts.To]
		if !ok {
			return nil, invalid(CodeUnknownColor, ErrUnknownColor,
				"transform destination %q is not in the catalog", ts.To)
		}
		fruit, ok := ParseFruit(ts.Fruit)
		if !ok {
			return nil, invalid(CodeUnknownFruit, ErrInvalidConfig, "unknown fruit %q", ts.Fruit)
		}
		if ts.Units < 1 {
			return nil, invalid(CodeInvalidUnits, ErrInvalidConfig,
				"transform %s/%s has non-positive units %d", ts.From, ts.Fruit, ts.Units)
		}

		k := key{from: from, fruit: fruit}
		if seen[k] {
			return nil, invalid(CodeDuplicateTransform, ErrDuplicate,
				"transform %s/%s declared twice", ts.From, fruit)
		}
		seen[k] = true

		out = append(out, Transform{From: from, Fruit: fruit, To: to, Units: ts.Units})
	}

	return out, nil
}

// compareTransforms orders transforms by source color, then fruit.
// This is the transform identifier order.
func compareTransforms(a, b Transform) int {
	if a.From != b.From {
		return int(a.From) - int(b.From)
	}
	return int(a.Fruit) - int(b.Fruit)
}

// Len returns the number of colors.
func (c *Catalog) Len() int {
	return len(c.colors)
}

// Lookup finds a color by its kebab-case name.
func (c *Catalog) Lookup(name string) (Color, error) {
	id, ok := c.byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Color{}, fmt.Errorf("%w: %q", ErrUnknownColor, name)
	}
	return c.colors[id], nil
}

// Color returns the color with the given ID.
func (c *Catalog) Color(id ColorID) (Color, error) {
	if !c.Has(id) {
		return Color{}, fmt.Errorf("%w: id %d", ErrUnknownColor, id)
	}
	return c.colors[id], nil
}

// Has reports whether id belongs to the catalog.
func (c *Catalog) Has(id ColorID) bool {
	return id >= 0 && int(id) < len(c.colors)
}

// Name returns the name of a color, or "" for an unknown ID.
func (c *Catalog) Name(id ColorID) string {
	if !c.Has(id) {
		return ""
	}
	return c.colors[id].Name
}

// Colors returns a copy of every color in catalog order.
func (c *Catalog) Colors() []Color {
	return slices.Clone(c.colors)
}

// ColorsIn returns the colors of one category in catalog order.
func (c *Catalog) ColorsIn(cat Category) []Color {
	if !cat.Valid() {
		return nil
	}
	ids := c.categories[cat].colors
	out := make([]Color, len(ids))
	for i, id := range ids {
		out[i] = c.colors[id]
	}
	return out
}

// CategoryRGB returns the representative color of a category.
// It does not necessarily match any catalog color.
func (c *Catalog) CategoryRGB(cat Category) (RGB, bool) {
	if !cat.Valid() || !c.categories[cat].present {
		return RGB{}, false
	}
	return c.categories[cat].rgb, true
}

// Transforms returns a copy of the transform table in identifier order.
func (c *Catalog) Transforms() []Transform {
	return slices.Clone(c.transforms)
}

// Derived reports whether the transform table was derived from the colors.
func (c *Catalog) Derived() bool {
	return c.derived
}

// DiscountPercent returns the cost reduction applied after a discount feeding.
func (c *Catalog) DiscountPercent() int {
	return c.discountPercent
}

// DefaultColor returns the plumage color of a freshly hatched chocobo.
func (c *Catalog) DefaultColor() Color {
	return c.colors[c.defaultColor]
}

// Nearest returns the catalog color closest to rgb and whether it is an
// exact match. Ties go to the color declared first.
func (c *Catalog) Nearest(rgb RGB) (Color, bool) {
	id := nearest(c.colors, rgb)
	col := c.colors[id]
	return col, col.RGB == rgb
}

func nearest(colors []Color, rgb RGB) ColorID {
	best := ColorID(0)
	bestDist := ^uint32(0)
	for _, col := range colors {
		if d := col.RGB.Distance(rgb); d < bestDist {
			best = col.ID
			bestDist = d
		}
	}
	return best
}

// DisplayName turns a kebab-case color name into a title, e.g.
// "opo-opo-brown" becomes "Opo Opo Brown".
func DisplayName(name string) string {
	caser := cases.Title(language.English)
	return caser.String(strings.ReplaceAll(name, "-", " "))
}
