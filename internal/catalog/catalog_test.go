package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	cat, err := Default()
	require.NoError(t, err)

	assert.Equal(t, 85, cat.Len())
	assert.Equal(t, 20, cat.DiscountPercent())
	assert.Equal(t, "desert-yellow", cat.DefaultColor().Name)
	assert.True(t, cat.Derived())

	total := 0
	for _, category := range Categories() {
		colors := cat.ColorsIn(category)
		assert.NotEmpty(t, colors, "category %s has no colors", category)
		for _, col := range colors {
			assert.Equal(t, category, col.Category, "color %s in wrong category", col.Name)
		}
		total += len(colors)

		_, ok := cat.CategoryRGB(category)
		assert.True(t, ok, "category %s has no representative color", category)
	}
	assert.Equal(t, cat.Len(), total)

	col, err := cat.Lookup("desert-yellow")
	require.NoError(t, err)
	assert.Equal(t, RGB{R: 219, G: 180, B: 87}, col.RGB)
	assert.Equal(t, CategoryYellow, col.Category)
}

func TestLookupUnknownColor(t *testing.T) {
	cat, err := Default()
	require.NoError(t, err)

	_, err = cat.Lookup("vanilla-yellow")
	assert.ErrorIs(t, err, ErrUnknownColor)

	_, err = cat.Color(ColorID(cat.Len()))
	assert.ErrorIs(t, err, ErrUnknownColor)

	_, err = cat.Color(-1)
	assert.ErrorIs(t, err, ErrUnknownColor)
}

func TestLookupNormalizesInput(t *testing.T) {
	cat, err := Default()
	require.NoError(t, err)

	col, err := cat.Lookup("  Snow-White ")
	require.NoError(t, err)
	assert.Equal(t, "snow-white", col.Name)
}

func TestNearest(t *testing.T) {
	cat, err := Default()
	require.NoError(t, err)

	tests := []struct {
		name      string
		rgb       RGB
		want      string
		wantExact bool
	}{
		{name: "exact apple green", rgb: RGB{R: 155, G: 179, B: 99}, want: "apple-green", wantExact: true},
		{name: "near apple green", rgb: RGB{R: 155, G: 179, B: 98}, want: "apple-green", wantExact: false},
		{name: "white", rgb: White, want: "lotus-pink", wantExact: false},
		{name: "black", rgb: Black, want: "ink-blue", wantExact: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			col, exact := cat.Nearest(tt.rgb)
			assert.Equal(t, tt.want, col.Name)
			assert.Equal(t, tt.wantExact, exact)
		})
	}
}

func TestCatalogAccessorsReturnCopies(t *testing.T) {
	cat, err := Default()
	require.NoError(t, err)

	colors := cat.Colors()
	colors[0].Name = "mutated"
	assert.NotEqual(t, "mutated", cat.Colors()[0].Name)

	transforms := cat.Transforms()
	require.NotEmpty(t, transforms)
	transforms[0].Units = 999
	assert.NotEqual(t, 999, cat.Transforms()[0].Units)
}

func TestTransformsSortedByIdentifier(t *testing.T) {
	cat, err := Default()
	require.NoError(t, err)

	transforms := cat.Transforms()
	for i := 1; i < len(transforms); i++ {
		prev, cur := transforms[i-1], transforms[i]
		if prev.From == cur.From {
			assert.Less(t, prev.Fruit, cur.Fruit)
		} else {
			assert.Less(t, prev.From, cur.From)
		}
	}
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Opo Opo Brown", DisplayName("opo-opo-brown"))
	assert.Equal(t, "Snow White", DisplayName("snow-white"))
}

func validSpec() Spec {
	return Spec{
		DiscountPercent: 50,
		DefaultColor:    "red-one",
		Categories: []CategorySpec{
			{
				Name: "red",
				RGB:  RGB{R: 200},
				Colors: []ColorSpec{
					{Name: "red-one", RGB: RGB{R: 200, G: 10, B: 10}},
					{Name: "red-two", RGB: RGB{R: 150, G: 10, B: 10}},
				},
			},
		},
		Transforms: []TransformSpec{
			{From: "red-one", Fruit: "apple", To: "red-two", Units: 2},
		},
	}
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(s *Spec)
		wantCode string
		wantErr  error
	}{
		{
			name:     "discount zero",
			mutate:   func(s *Spec) { s.DiscountPercent = 0 },
			wantCode: CodeInvalidDiscount,
			wantErr:  ErrInvalidConfig,
		},
		{
			name:     "discount hundred",
			mutate:   func(s *Spec) { s.DiscountPercent = 100 },
			wantCode: CodeInvalidDiscount,
			wantErr:  ErrInvalidConfig,
		},
		{
			name:     "no colors",
			mutate:   func(s *Spec) { s.Categories = nil },
			wantCode: CodeEmptyCatalog,
			wantErr:  ErrInvalidConfig,
		},
		{
			name:     "unknown category",
			mutate:   func(s *Spec) { s.Categories[0].Name = "orange" },
			wantCode: CodeUnknownCategory,
			wantErr:  ErrInvalidConfig,
		},
		{
			name: "duplicate category",
			mutate: func(s *Spec) {
				s.Categories = append(s.Categories, CategorySpec{Name: "red"})
			},
			wantCode: CodeDuplicateCategory,
			wantErr:  ErrDuplicate,
		},
		{
			name: "duplicate color",
			mutate: func(s *Spec) {
				s.Categories[0].Colors = append(s.Categories[0].Colors, ColorSpec{Name: "red-two"})
			},
			wantCode: CodeDuplicateColor,
			wantErr:  ErrDuplicate,
		},
		{
			name:     "bad color name",
			mutate:   func(s *Spec) { s.Categories[0].Colors[1].Name = "Red Two" },
			wantCode: CodeInvalidName,
			wantErr:  ErrInvalidConfig,
		},
		{
			name:     "unknown default color",
			mutate:   func(s *Spec) { s.DefaultColor = "red-three" },
			wantCode: CodeUnknownColor,
			wantErr:  ErrUnknownColor,
		},
		{
			name:     "dangling destination",
			mutate:   func(s *Spec) { s.Transforms[0].To = "red-three" },
			wantCode: CodeUnknownColor,
			wantErr:  ErrUnknownColor,
		},
		{
			name:     "dangling source",
			mutate:   func(s *Spec) { s.Transforms[0].From = "red-three" },
			wantCode: CodeUnknownColor,
			wantErr:  ErrUnknownColor,
		},
		{
			name:     "unknown fruit",
			mutate:   func(s *Spec) { s.Transforms[0].Fruit = "banana" },
			wantCode: CodeUnknownFruit,
			wantErr:  ErrInvalidConfig,
		},
		{
			name:     "zero units",
			mutate:   func(s *Spec) { s.Transforms[0].Units = 0 },
			wantCode: CodeInvalidUnits,
			wantErr:  ErrInvalidConfig,
		},
		{
			name: "duplicate transform",
			mutate: func(s *Spec) {
				s.Transforms = append(s.Transforms, TransformSpec{From: "red-one", Fruit: "apple", To: "red-one", Units: 1})
			},
			wantCode: CodeDuplicateTransform,
			wantErr:  ErrDuplicate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := validSpec()
			tt.mutate(&spec)

			_, err := New(spec)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)

			var verr ValidationError
			require.True(t, errors.As(err, &verr), "expected ValidationError, got %T", err)
			assert.Equal(t, tt.wantCode, verr.Code)
		})
	}
}

func TestNewExplicitTransforms(t *testing.T) {
	cat, err := New(validSpec())
	require.NoError(t, err)

	assert.False(t, cat.Derived())
	require.Len(t, cat.Transforms(), 1)

	tr := cat.Transforms()[0]
	assert.Equal(t, "red-one", cat.Name(tr.From))
	assert.Equal(t, "red-two", cat.Name(tr.To))
	assert.Equal(t, FruitApple, tr.Fruit)
	assert.Equal(t, 2, tr.Units)
}

func TestFruitEnum(t *testing.T) {
	assert.Len(t, Fruits(), FruitCount)
	assert.Equal(t, "pineapple", FruitPineapple.String())
	assert.Equal(t, "Fruit(42)", Fruit(42).String())
	assert.True(t, FruitLemon.IsDiscount())
	assert.False(t, FruitApple.IsDiscount())
	assert.False(t, Fruit(42).Valid())

	for _, f := range Fruits() {
		parsed, ok := ParseFruit(f.String())
		assert.True(t, ok)
		assert.Equal(t, f, parsed)
	}

	_, ok := ParseFruit("banana")
	assert.False(t, ok)

	r, g, b := FruitPlum.Effect()
	assert.Equal(t, []int8{-5, 5, 5}, []int8{r, g, b})
}

func TestCategoryEnum(t *testing.T) {
	assert.Len(t, Categories(), CategoryCount)
	assert.Equal(t, "purple", CategoryPurple.String())

	c, ok := ParseCategory("Blue")
	assert.True(t, ok)
	assert.Equal(t, CategoryBlue, c)
}
