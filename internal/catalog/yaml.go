package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// yamlCatalog is the on-disk catalog layout.
type yamlCatalog struct {
	DiscountPercent int             `yaml:"discount_percent"`
	DefaultColor    string          `yaml:"default_color"`
	Categories      []yamlCategory  `yaml:"categories"`
	Transforms      []yamlTransform `yaml:"transforms,omitempty"`
}

type yamlCategory struct {
	Name   string      `yaml:"name"`
	Color  string      `yaml:"color"`
	Colors []yamlColor `yaml:"colors"`
}

type yamlColor struct {
	Name  string `yaml:"name"`
	Color string `yaml:"color"`
}

type yamlTransform struct {
	From  string `yaml:"from"`
	Fruit string `yaml:"fruit"`
	To    string `yaml:"to"`
	Units int    `yaml:"units"`
}

// Parse decodes a YAML catalog and validates it.
// Unknown keys are rejected.
func Parse(data []byte) (*Catalog, error) {
	spec, err := parseSpec(data)
	if err != nil {
		return nil, err
	}
	return New(spec)
}

func parseSpec(data []byte) (Spec, error) {
	var yc yamlCatalog

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&yc); err != nil {
		if errors.Is(err, io.EOF) {
			return Spec{}, invalid(CodeEmptyCatalog, ErrInvalidConfig, "catalog document is empty")
		}
		return Spec{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	spec := Spec{
		DiscountPercent: yc.DiscountPercent,
		DefaultColor:    yc.DefaultColor,
		Categories:      make([]CategorySpec, 0, len(yc.Categories)),
	}

	for _, yCat := range yc.Categories {
		catRGB, err := ParseHex(yCat.Color)
		if err != nil {
			return Spec{}, invalid(CodeInvalidColor, ErrInvalidConfig, "category %q: %v", yCat.Name, err)
		}

		cs := CategorySpec{
			Name:   yCat.Name,
			RGB:    catRGB,
			Colors: make([]ColorSpec, 0, len(yCat.Colors)),
		}
		for _, yCol := range yCat.Colors {
			rgb, err := ParseHex(yCol.Color)
			if err != nil {
				return Spec{}, invalid(CodeInvalidColor, ErrInvalidConfig, "color %q: %v", yCol.Name, err)
			}
			cs.Colors = append(cs.Colors, ColorSpec{Name: yCol.Name, RGB: rgb})
		}
		spec.Categories = append(spec.Categories, cs)
	}

	for _, yt := range yc.Transforms {
		spec.Transforms = append(spec.Transforms, TransformSpec(yt))
	}

	return spec, nil
}
