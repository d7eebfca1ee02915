// Package meal describes the result of a path search: the ordered fruit
// feedings that turn one plumage color into another, and what they cost.
package meal

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/chocodye/internal/catalog"
	"github.com/vovakirdan/chocodye/internal/graph"
)

// ErrBrokenMeal is returned by Replay when a meal does not lead from its
// start color to its target color.
var ErrBrokenMeal = errors.New("meal does not reach its target")

// Cost is a fixed-point amount of fruit in hundredths of a unit.
type Cost int64

// FullUnit is the cost of a single feeding without discount.
const FullUnit Cost = 100

// String formats the cost with two decimals, e.g. "6.00".
func (c Cost) String() string {
	sign := ""
	if c < 0 {
		sign = "-"
		c = -c
	}
	return fmt.Sprintf("%s%d.%02d", sign, c/FullUnit, c%FullUnit)
}

// HopCost prices units feedings of fruit along one transform. Every unit
// fed after a discount fruit costs (100 - discountPercent) hundredths
// instead of FullUnit, including the later units of a discount-fruit hop.
func HopCost(fruit catalog.Fruit, units int, discounted bool, discountPercent int) Cost {
	if units < 1 {
		return 0
	}
	cut := FullUnit - Cost(discountPercent)
	switch {
	case discounted:
		return Cost(units) * cut
	case fruit.IsDiscount():
		return FullUnit + Cost(units-1)*cut
	default:
		return Cost(units) * FullUnit
	}
}

// Step is one line of a meal: feed Quantity of Fruit in a row.
type Step struct {
	Fruit    catalog.Fruit `json:"fruit"`
	Quantity int           `json:"quantity"`
}

// Hop is a single transform application along a meal.
type Hop struct {
	From  catalog.ColorID
	Fruit catalog.Fruit
	To    catalog.ColorID
	Units int
	Cost  Cost
}

// Meal is the ordered feeding sequence from Start to Target.
// Final is the color actually reached and always equals Target.
type Meal struct {
	Start  catalog.ColorID
	Target catalog.ColorID
	Final  catalog.ColorID
	Steps  []Step
	Hops   []Hop
	Cost   Cost
}

// Empty reports whether the meal has no steps.
func (m Meal) Empty() bool {
	return len(m.Hops) == 0
}

// Quantity returns the total number of fruits fed.
func (m Meal) Quantity() int {
	total := 0
	for _, s := range m.Steps {
		total += s.Quantity
	}
	return total
}

// FullCost prices the same hops without any discount.
func (m Meal) FullCost() Cost {
	var total Cost
	for _, h := range m.Hops {
		total += Cost(h.Units) * FullUnit
	}
	return total
}

// Coalesce merges consecutive hops with the same fruit into steps.
func Coalesce(hops []Hop) []Step {
	var steps []Step
	for _, h := range hops {
		if n := len(steps); n > 0 && steps[n-1].Fruit == h.Fruit {
			steps[n-1].Quantity += h.Units
			continue
		}
		steps = append(steps, Step{Fruit: h.Fruit, Quantity: h.Units})
	}
	return steps
}

// Price computes the cost of a hop sequence under the discount rule.
// It ignores the Cost already recorded on each hop.
func Price(hops []Hop, discountPercent int) Cost {
	var total Cost
	discounted := false
	for _, h := range hops {
		total += HopCost(h.Fruit, h.Units, discounted, discountPercent)
		if h.Fruit.IsDiscount() {
			discounted = true
		}
	}
	return total
}

// Replay applies the meal's hops to its start color on g and returns the
// color reached. It fails if a hop is missing from the graph, if the hops
// disagree with the steps or the cost, or if the final color is not the
// target.
func Replay(g *graph.Graph, m Meal) (catalog.ColorID, error) {
	cur := m.Start
	for i, h := range m.Hops {
		if h.From != cur {
			return cur, fmt.Errorf("hop %d starts at %d, chocobo is %d: %w", i, h.From, cur, ErrBrokenMeal)
		}
		e, ok := g.Apply(cur, h.Fruit)
		if !ok {
			return cur, fmt.Errorf("hop %d: no %s transform from %d: %w", i, h.Fruit, cur, ErrBrokenMeal)
		}
		if e.To != h.To || e.Units != h.Units {
			return cur, fmt.Errorf("hop %d: graph disagrees with recorded hop: %w", i, ErrBrokenMeal)
		}
		cur = e.To
	}

	if cur != m.Target || cur != m.Final {
		return cur, fmt.Errorf("reached %d, want %d: %w", cur, m.Target, ErrBrokenMeal)
	}

	steps := Coalesce(m.Hops)
	if len(steps) != len(m.Steps) {
		return cur, fmt.Errorf("%d steps recorded, hops give %d: %w", len(m.Steps), len(steps), ErrBrokenMeal)
	}
	for i := range steps {
		if steps[i] != m.Steps[i] {
			return cur, fmt.Errorf("step %d is %v, hops give %v: %w", i, m.Steps[i], steps[i], ErrBrokenMeal)
		}
	}

	if price := Price(m.Hops, g.DiscountPercent()); price != m.Cost {
		return cur, fmt.Errorf("cost %s recorded, hops cost %s: %w", m.Cost, price, ErrBrokenMeal)
	}

	return cur, nil
}
