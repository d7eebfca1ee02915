// Package search finds the cheapest fruit meal between two plumage colors.
//
// The search is Dijkstra over states (color, discounted, last fruit). The
// discount flag carries the cost rule: every feeding after the first
// discount-fruit feeding is cheaper. The last fruit lets the search count
// coalesced steps, which break ties between equally cheap meals.
package search

import (
	"container/heap"
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/chocodye/internal/catalog"
	"github.com/vovakirdan/chocodye/internal/graph"
	"github.com/vovakirdan/chocodye/internal/meal"
)

// Search errors.
var (
	// ErrUnknownColor is the catalog's unknown color error.
	ErrUnknownColor = catalog.ErrUnknownColor
	// ErrNoRoute means the target cannot be reached from the start.
	// A well-formed catalog never produces it.
	ErrNoRoute = errors.New("no route between colors")
	// ErrSearchLimit means the expansion cap was hit before the target.
	ErrSearchLimit = errors.New("search expansion limit exceeded")
)

// Engine answers meal queries over a read-only graph. It holds no mutable
// state and is safe for concurrent use.
type Engine struct {
	graph         *graph.Graph
	logger        *log.Logger
	maxExpansions int
	workers       int
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithMaxExpansions caps the number of states expanded by one search.
// Non-positive values keep the default, which is the size of the state
// space and therefore never reached on a valid graph.
func WithMaxExpansions(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.maxExpansions = n
		}
	}
}

// WithWorkers bounds the concurrency of SearchAll.
func WithWorkers(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.workers = n
		}
	}
}

// NewEngine creates a search engine over g.
func NewEngine(g *graph.Graph, opts ...Option) *Engine {
	e := &Engine{
		graph:         g,
		logger:        log.New(io.Discard),
		maxExpansions: g.Len() * 2 * (catalog.FruitCount + 1),
		workers:       runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Graph returns the graph the engine searches.
func (e *Engine) Graph() *graph.Graph {
	return e.graph
}

// Search finds the cheapest meal between two colors given by name.
func (e *Engine) Search(from, to string) (meal.Meal, error) {
	cat := e.graph.Catalog()

	start, err := cat.Lookup(from)
	if err != nil {
		return meal.Meal{}, err
	}
	target, err := cat.Lookup(to)
	if err != nil {
		return meal.Meal{}, err
	}

	return e.SearchIDs(start.ID, target.ID)
}

// SearchIDs finds the cheapest meal between two colors given by ID.
//
// Meals are ordered by total cost, then by the number of coalesced steps,
// then by their fruit sequence in fruit order. Start equal to target gives
// an empty meal.
func (e *Engine) SearchIDs(from, to catalog.ColorID) (meal.Meal, error) {
	cat := e.graph.Catalog()
	if !cat.Has(from) {
		return meal.Meal{}, fmt.Errorf("start %d: %w", from, ErrUnknownColor)
	}
	if !cat.Has(to) {
		return meal.Meal{}, fmt.Errorf("target %d: %w", to, ErrUnknownColor)
	}

	if from == to {
		return meal.Meal{Start: from, Target: to, Final: to}, nil
	}

	discountPercent := e.graph.DiscountPercent()

	root := &label{state: state{color: from, last: noFruit}}
	open := &labelQueue{}
	heap.Init(open)
	heap.Push(open, root)

	best := map[state]*label{root.state: root}
	settled := make(map[state]bool)
	expansions := 0

	for open.Len() > 0 {
		cur := heap.Pop(open).(*label)
		if settled[cur.state] {
			continue
		}
		settled[cur.state] = true

		if cur.state.color == to {
			m := meal.Meal{
				Start:  from,
				Target: to,
				Final:  cur.state.color,
				Steps:  meal.Coalesce(cur.hops),
				Hops:   cur.hops,
				Cost:   cur.cost,
			}
			e.logger.Debug("meal found",
				"from", cat.Name(from),
				"to", cat.Name(to),
				"cost", m.Cost,
				"steps", len(m.Steps),
				"expansions", expansions)
			return m, nil
		}

		expansions++
		if expansions > e.maxExpansions {
			e.logger.Warn("search limit reached",
				"from", cat.Name(from),
				"to", cat.Name(to),
				"limit", e.maxExpansions)
			return meal.Meal{}, fmt.Errorf("%s to %s after %d expansions: %w",
				cat.Name(from), cat.Name(to), e.maxExpansions, ErrSearchLimit)
		}

		for edge := range e.graph.Edges(cur.state.color) {
			next := state{
				color:      edge.To,
				discounted: cur.state.discounted || edge.Fruit.IsDiscount(),
				last:       edge.Fruit,
			}
			if settled[next] {
				continue
			}

			hop := meal.Hop{
				From:  edge.From,
				Fruit: edge.Fruit,
				To:    edge.To,
				Units: edge.Units,
				Cost:  meal.HopCost(edge.Fruit, edge.Units, cur.state.discounted, discountPercent),
			}
			candidate := cur.extend(next, hop)

			if known, ok := best[next]; ok && !candidate.less(known) {
				continue
			}
			best[next] = candidate
			heap.Push(open, candidate)
		}
	}

	e.logger.Error("no route between colors",
		"from", cat.Name(from),
		"to", cat.Name(to),
		"expansions", expansions)
	return meal.Meal{}, fmt.Errorf("%s to %s: %w", cat.Name(from), cat.Name(to), ErrNoRoute)
}

// Result is one entry of SearchAll.
type Result struct {
	Target catalog.Color
	Meal   meal.Meal
	// Err is ErrNoRoute when the target is unreachable.
	Err error
}

// SearchAll finds the meal from one color to every color of the catalog.
// Results follow catalog order. Unreachable targets are reported in their
// Result; any other failure aborts the whole call.
func (e *Engine) SearchAll(ctx context.Context, from string) ([]Result, error) {
	cat := e.graph.Catalog()

	start, err := cat.Lookup(from)
	if err != nil {
		return nil, err
	}

	colors := cat.Colors()
	results := make([]Result, len(colors))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)

	for i, target := range colors {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			m, err := e.SearchIDs(start.ID, target.ID)
			if err != nil && !errors.Is(err, ErrNoRoute) {
				return err
			}
			results[i] = Result{Target: target, Meal: m, Err: err}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
