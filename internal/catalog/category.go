package catalog

import "strings"

//go:generate go tool stringer -type=Category -linecomment -output=category_string.go

// Category groups colors with similar hues. Every color belongs to exactly one.
type Category uint8

const (
	CategoryWhite  Category = iota // white
	CategoryRed                    // red
	CategoryBrown                  // brown
	CategoryYellow                 // yellow
	CategoryGreen                  // green
	CategoryBlue                   // blue
	CategoryPurple                 // purple
)

// CategoryCount is the number of categories.
const CategoryCount = int(CategoryPurple) + 1

// Categories returns every category in sort order.
func Categories() []Category {
	return []Category{
		CategoryWhite,
		CategoryRed,
		CategoryBrown,
		CategoryYellow,
		CategoryGreen,
		CategoryBlue,
		CategoryPurple,
	}
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	return int(c) < CategoryCount
}

// ParseCategory converts a category name to a Category.
func ParseCategory(s string) (Category, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, c := range Categories() {
		if c.String() == s {
			return c, true
		}
	}
	return 0, false
}
