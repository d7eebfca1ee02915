package catalog

import (
	"fmt"
	"strings"
)

//go:generate go tool stringer -type=Fruit -linecomment -output=fruit_string.go

// Fruit is one of the fixed kinds of fruit a chocobo can be fed.
// The set is closed; every transform is keyed by one of these.
type Fruit uint8

const (
	FruitApple     Fruit = iota // apple
	FruitPear                   // pear
	FruitBerries                // berries
	FruitPlum                   // plum
	FruitFruit                  // fruit
	FruitPineapple              // pineapple
	FruitLemon                  // lemon
)

// FruitCount is the number of fruit kinds.
const FruitCount = int(FruitLemon) + 1

// Fruits returns every fruit kind in identifier order.
func Fruits() []Fruit {
	return []Fruit{
		FruitApple,
		FruitPear,
		FruitBerries,
		FruitPlum,
		FruitFruit,
		FruitPineapple,
		FruitLemon,
	}
}

// Valid reports whether f is a known fruit kind.
func (f Fruit) Valid() bool {
	return int(f) < FruitCount
}

// IsDiscount reports whether f is the discount fruit. Every feeding after
// the first discount feeding is cheaper.
func (f Fruit) IsDiscount() bool {
	return f == FruitLemon
}

// Effect returns the plumage shift of a single feeding.
// The discount fruit has no shift; it resets the plumage instead.
func (f Fruit) Effect() (r, g, b int8) {
	switch f {
	case FruitApple:
		return 5, -5, -5
	case FruitPear:
		return -5, 5, -5
	case FruitBerries:
		return -5, -5, 5
	case FruitPlum:
		return -5, 5, 5
	case FruitFruit:
		return 5, -5, 5
	case FruitPineapple:
		return 5, 5, -5
	default:
		return 0, 0, 0
	}
}

// DisplayName returns the in-game item name.
func (f Fruit) DisplayName() string {
	switch f {
	case FruitApple:
		return "Xelphatol Apple"
	case FruitPear:
		return "Mamook Pear"
	case FruitBerries:
		return "O'Ghomoro Berries"
	case FruitPlum:
		return "Doman Plum"
	case FruitFruit:
		return "Valfruit"
	case FruitPineapple:
		return "Cieldalaes Pineapple"
	case FruitLemon:
		return "Han Lemon"
	default:
		return f.String()
	}
}

// ParseFruit converts a fruit identifier to a Fruit.
func ParseFruit(s string) (Fruit, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, f := range Fruits() {
		if f.String() == s {
			return f, true
		}
	}
	return 0, false
}

// MarshalText encodes the fruit as its identifier.
func (f Fruit) MarshalText() ([]byte, error) {
	if !f.Valid() {
		return nil, fmt.Errorf("invalid fruit %d", uint8(f))
	}
	return []byte(f.String()), nil
}

// UnmarshalText decodes a fruit identifier.
func (f *Fruit) UnmarshalText(text []byte) error {
	parsed, ok := ParseFruit(string(text))
	if !ok {
		return fmt.Errorf("unknown fruit %q", text)
	}
	*f = parsed
	return nil
}
