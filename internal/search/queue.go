package search

import (
	"cmp"
	"slices"

	"github.com/vovakirdan/chocodye/internal/catalog"
	"github.com/vovakirdan/chocodye/internal/meal"
)

// noFruit marks a state that has not been fed yet.
const noFruit = catalog.Fruit(catalog.FruitCount)

// state is a node of the augmented search space.
type state struct {
	color      catalog.ColorID
	discounted bool
	last       catalog.Fruit
}

// label is a partial meal ending in state.
type label struct {
	state state
	cost  meal.Cost
	steps int
	hops  []meal.Hop
}

// less orders labels by cost, then coalesced step count, then the fruit
// sequence. Hops sharing a prefix start from the same color, so comparing
// fruits is comparing transform identifiers.
func (l *label) less(other *label) bool {
	if l.cost != other.cost {
		return l.cost < other.cost
	}
	if l.steps != other.steps {
		return l.steps < other.steps
	}
	return slices.CompareFunc(l.hops, other.hops, func(a, b meal.Hop) int {
		return cmp.Compare(a.Fruit, b.Fruit)
	}) < 0
}

// extend returns the label reached by taking one more hop.
func (l *label) extend(next state, hop meal.Hop) *label {
	hops := make([]meal.Hop, len(l.hops)+1)
	copy(hops, l.hops)
	hops[len(l.hops)] = hop

	steps := l.steps
	if hop.Fruit != l.state.last {
		steps++
	}

	return &label{
		state: next,
		cost:  l.cost + hop.Cost,
		steps: steps,
		hops:  hops,
	}
}

type labelQueue []*label

func (q labelQueue) Len() int { return len(q) }

func (q labelQueue) Less(i, j int) bool { return q[i].less(q[j]) }

func (q labelQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *labelQueue) Push(x any) {
	*q = append(*q, x.(*label))
}

func (q *labelQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return item
}
