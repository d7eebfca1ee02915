package meal

import (
	"encoding/json"

	"github.com/vovakirdan/chocodye/internal/catalog"
)

// Line is one displayable feeding instruction.
type Line struct {
	Fruit    catalog.Fruit `json:"fruit"`
	Name     string        `json:"name"`
	Quantity int           `json:"quantity"`
}

// Menu is the display-ready form of a meal.
type Menu struct {
	Start  string `json:"start"`
	Target string `json:"target"`
	Final  string `json:"final"`
	// Lines is the feeding order.
	Lines []Line `json:"steps"`
	// Required totals each fruit over the whole meal, in fruit order.
	Required []Line `json:"required"`
	Quantity int    `json:"quantity"`
	Cost     string `json:"cost"`
	FullCost string `json:"full_cost"`
	Savings  int    `json:"savings_percent"`
}

// Format turns a meal into a Menu using the catalog's color names.
func Format(cat *catalog.Catalog, m Meal) Menu {
	menu := Menu{
		Start:    cat.Name(m.Start),
		Target:   cat.Name(m.Target),
		Final:    cat.Name(m.Final),
		Lines:    make([]Line, 0, len(m.Steps)),
		Quantity: m.Quantity(),
		Cost:     m.Cost.String(),
		FullCost: m.FullCost().String(),
		Savings:  Savings(m),
	}

	var totals [catalog.FruitCount]int
	for _, s := range m.Steps {
		menu.Lines = append(menu.Lines, Line{
			Fruit:    s.Fruit,
			Name:     s.Fruit.DisplayName(),
			Quantity: s.Quantity,
		})
		if s.Fruit.Valid() {
			totals[s.Fruit] += s.Quantity
		}
	}

	for _, fruit := range catalog.Fruits() {
		if totals[fruit] == 0 {
			continue
		}
		menu.Required = append(menu.Required, Line{
			Fruit:    fruit,
			Name:     fruit.DisplayName(),
			Quantity: totals[fruit],
		})
	}

	return menu
}

// Savings returns the percentage of fruit saved by the discount along m,
// rounded down. It is zero when no feeding was discounted.
func Savings(m Meal) int {
	full := m.FullCost()
	if full == 0 || m.Cost >= full {
		return 0
	}
	return int((full - m.Cost) * 100 / full)
}

// JSON encodes the menu with indentation.
func (m Menu) JSON() ([]byte, error) {
	return json.MarshalIndent(m, "", "  ")
}
