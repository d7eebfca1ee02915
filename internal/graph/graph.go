// Package graph builds the transition graph over catalog colors.
//
// Nodes are colors and edges are transforms keyed by (source color, fruit).
// A Graph is built once and never mutated, so it can be read from any
// number of goroutines without locking.
package graph

import (
	"errors"
	"fmt"
	"iter"

	"github.com/vovakirdan/chocodye/internal/catalog"
)

// ErrNilCatalog is returned by Build when no catalog is given.
var ErrNilCatalog = errors.New("nil catalog")

// Edge is one outbound transform of a color.
type Edge struct {
	From  catalog.ColorID
	Fruit catalog.Fruit
	To    catalog.ColorID
	Units int
}

// node holds the outbound edges of one color, indexed by fruit.
type node struct {
	edges [catalog.FruitCount]Edge
	has   [catalog.FruitCount]bool
}

// Graph is the read-only adjacency structure over a catalog.
type Graph struct {
	cat   *catalog.Catalog
	nodes []node
	stats Stats
}

// Stats summarizes the shape of a graph.
type Stats struct {
	Nodes         int
	Edges         int
	DiscountEdges int
	SelfLoops     int
	// Sinks counts colors without any outbound edge.
	Sinks int
}

// Build assembles the transition graph from a validated catalog.
func Build(cat *catalog.Catalog) (*Graph, error) {
	if cat == nil {
		return nil, ErrNilCatalog
	}

	g := &Graph{
		cat:   cat,
		nodes: make([]node, cat.Len()),
	}

	for _, t := range cat.Transforms() {
		if !cat.Has(t.From) {
			return nil, fmt.Errorf("transform %d/%s: source: %w", t.From, t.Fruit, catalog.ErrUnknownColor)
		}
		if !cat.Has(t.To) {
			return nil, fmt.Errorf("transform %s/%s: destination %d: %w",
				cat.Name(t.From), t.Fruit, t.To, catalog.ErrUnknownColor)
		}
		if !t.Fruit.Valid() {
			return nil, fmt.Errorf("transform %s: fruit %d: %w", cat.Name(t.From), t.Fruit, catalog.ErrInvalidConfig)
		}
		if t.Units < 1 {
			return nil, fmt.Errorf("transform %s/%s: units %d: %w",
				cat.Name(t.From), t.Fruit, t.Units, catalog.ErrInvalidConfig)
		}

		n := &g.nodes[t.From]
		if n.has[t.Fruit] {
			return nil, fmt.Errorf("transform %s/%s: %w", cat.Name(t.From), t.Fruit, catalog.ErrDuplicate)
		}
		n.has[t.Fruit] = true
		n.edges[t.Fruit] = Edge{From: t.From, Fruit: t.Fruit, To: t.To, Units: t.Units}

		g.stats.Edges++
		if t.Fruit.IsDiscount() {
			g.stats.DiscountEdges++
		}
		if t.From == t.To {
			g.stats.SelfLoops++
		}
	}

	g.stats.Nodes = len(g.nodes)
	for i := range g.nodes {
		if g.OutDegree(catalog.ColorID(i)) == 0 {
			g.stats.Sinks++
		}
	}

	return g, nil
}

// Catalog returns the catalog the graph was built from.
func (g *Graph) Catalog() *catalog.Catalog {
	return g.cat
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Stats returns node and edge counts.
func (g *Graph) Stats() Stats {
	return g.stats
}

// DiscountPercent returns the catalog's discount percent.
func (g *Graph) DiscountPercent() int {
	return g.cat.DiscountPercent()
}

// Edge returns the transform for feeding fruit to color from.
func (g *Graph) Edge(from catalog.ColorID, fruit catalog.Fruit) (Edge, bool) {
	if !g.cat.Has(from) || !fruit.Valid() {
		return Edge{}, false
	}
	n := &g.nodes[from]
	if !n.has[fruit] {
		return Edge{}, false
	}
	return n.edges[fruit], true
}

// Apply feeds fruit to a chocobo of color from and returns the edge taken.
func (g *Graph) Apply(from catalog.ColorID, fruit catalog.Fruit) (Edge, bool) {
	return g.Edge(from, fruit)
}

// Edges yields the outbound edges of a color in fruit order.
func (g *Graph) Edges(from catalog.ColorID) iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		if !g.cat.Has(from) {
			return
		}
		n := &g.nodes[from]
		for _, fruit := range catalog.Fruits() {
			if !n.has[fruit] {
				continue
			}
			if !yield(n.edges[fruit]) {
				return
			}
		}
	}
}

// OutDegree returns the number of outbound edges of a color.
func (g *Graph) OutDegree(from catalog.ColorID) int {
	if !g.cat.Has(from) {
		return 0
	}
	count := 0
	for _, ok := range g.nodes[from].has {
		if ok {
			count++
		}
	}
	return count
}
