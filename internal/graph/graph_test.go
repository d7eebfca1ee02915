package graph

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/chocodye/internal/catalog"
)

func smallCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New(catalog.Spec{
		DiscountPercent: 25,
		DefaultColor:    "alpha",
		Categories: []catalog.CategorySpec{{
			Name: "white",
			RGB:  catalog.White,
			Colors: []catalog.ColorSpec{
				{Name: "alpha", RGB: catalog.Gray(200)},
				{Name: "beta", RGB: catalog.Gray(150)},
				{Name: "gamma", RGB: catalog.Gray(100)},
			},
		}},
		Transforms: []catalog.TransformSpec{
			{From: "alpha", Fruit: "plum", To: "gamma", Units: 4},
			{From: "alpha", Fruit: "apple", To: "beta", Units: 2},
			{From: "beta", Fruit: "lemon", To: "alpha", Units: 1},
		},
	})
	require.NoError(t, err)
	return cat
}

func TestBuild(t *testing.T) {
	g, err := Build(smallCatalog(t))
	require.NoError(t, err)

	assert.Equal(t, 3, g.Len())
	assert.Equal(t, 25, g.DiscountPercent())
	assert.Equal(t, Stats{Nodes: 3, Edges: 3, DiscountEdges: 1, Sinks: 1}, g.Stats())
}

func TestBuildNilCatalog(t *testing.T) {
	_, err := Build(nil)
	assert.ErrorIs(t, err, ErrNilCatalog)
}

func TestEdgeLookup(t *testing.T) {
	g, err := Build(smallCatalog(t))
	require.NoError(t, err)

	e, ok := g.Edge(0, catalog.FruitApple)
	require.True(t, ok)
	assert.Equal(t, Edge{From: 0, Fruit: catalog.FruitApple, To: 1, Units: 2}, e)

	_, ok = g.Edge(0, catalog.FruitPear)
	assert.False(t, ok)

	_, ok = g.Edge(2, catalog.FruitApple)
	assert.False(t, ok, "gamma has no outbound edges")

	_, ok = g.Edge(99, catalog.FruitApple)
	assert.False(t, ok)

	_, ok = g.Edge(0, catalog.Fruit(42))
	assert.False(t, ok)

	applied, ok := g.Apply(1, catalog.FruitLemon)
	require.True(t, ok)
	assert.Equal(t, catalog.ColorID(0), applied.To)
}

func TestEdgesInFruitOrder(t *testing.T) {
	g, err := Build(smallCatalog(t))
	require.NoError(t, err)

	var fruits []catalog.Fruit
	for e := range g.Edges(0) {
		fruits = append(fruits, e.Fruit)
	}
	assert.Equal(t, []catalog.Fruit{catalog.FruitApple, catalog.FruitPlum}, fruits)

	assert.Empty(t, slices.Collect(g.Edges(2)))
	assert.Empty(t, slices.Collect(g.Edges(-1)))

	// Early break stops the iteration.
	count := 0
	for range g.Edges(0) {
		count++
		break
	}
	assert.Equal(t, 1, count)

	assert.Equal(t, 2, g.OutDegree(0))
	assert.Equal(t, 0, g.OutDegree(2))
}

func TestBuildDefaultCatalog(t *testing.T) {
	cat, err := catalog.Default()
	require.NoError(t, err)

	g, err := Build(cat)
	require.NoError(t, err)

	stats := g.Stats()
	assert.Equal(t, cat.Len(), stats.Nodes)
	assert.Equal(t, len(cat.Transforms()), stats.Edges)
	assert.Equal(t, cat.Len()-1, stats.DiscountEdges)
	assert.Zero(t, stats.SelfLoops)

	for _, tr := range cat.Transforms() {
		e, ok := g.Edge(tr.From, tr.Fruit)
		require.True(t, ok)
		assert.Equal(t, tr.To, e.To)
		assert.Equal(t, tr.Units, e.Units)
	}
}
