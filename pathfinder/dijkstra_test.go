package pathfinder_test

import (
	"testing"

	"github.com/busgraph/transitgraph/graph"
	"github.com/busgraph/transitgraph/pathfinder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRoute_SimplePath(t *testing.T) {
	g := graph.New(3)
	e0, _ := g.AddEdge(0, 1, 1)
	e1, _ := g.AddEdge(1, 2, 2)
	_, _ = g.AddEdge(0, 2, 5)

	route, ok := pathfinder.BuildRoute(g, 0, 2)
	require.True(t, ok)
	assert.Equal(t, 3.0, route.TotalWeight)
	assert.Equal(t, []int{e0, e1}, route.EdgeIDs)
}

func TestBuildRoute_SelfRouteIsZero(t *testing.T) {
	g := graph.New(2)
	_, _ = g.AddEdge(0, 1, 7)

	route, ok := pathfinder.BuildRoute(g, 1, 1)
	require.True(t, ok)
	assert.Zero(t, route.TotalWeight)
	assert.Empty(t, route.EdgeIDs)
}

func TestBuildRoute_Unreachable(t *testing.T) {
	g := graph.New(3)
	_, _ = g.AddEdge(0, 1, 1)
	// vertex 2 has no incoming edge.

	_, ok := pathfinder.BuildRoute(g, 0, 2)
	assert.False(t, ok)
}

func TestBuildRoute_TieBrokenByInsertionOrder(t *testing.T) {
	g := graph.New(3)
	// Two equal-cost paths from 0 to 2: directly, and via 1.
	// The direct edge is inserted first, so it should win the tie.
	direct, _ := g.AddEdge(0, 2, 4)
	_, _ = g.AddEdge(0, 1, 2)
	_, _ = g.AddEdge(1, 2, 2)

	route, ok := pathfinder.BuildRoute(g, 0, 2)
	require.True(t, ok)
	assert.Equal(t, 4.0, route.TotalWeight)
	assert.Equal(t, []int{direct}, route.EdgeIDs)
}

func TestBuildRoute_OutOfRangePanics(t *testing.T) {
	g := graph.New(2)
	assert.Panics(t, func() { pathfinder.BuildRoute(g, 0, 5) })
	assert.Panics(t, func() { pathfinder.BuildRoute(g, -1, 0) })
}
