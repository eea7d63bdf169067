package graph

import "fmt"

// AddEdge appends a new directed edge from -> to with the given
// non-negative weight, and returns its edge id. Edge ids are dense and
// monotonically increasing starting at 0; nothing about a previously
// added edge is ever altered by a later AddEdge call.
//
// AddEdge panics if from or to is outside [0, VertexCount()) — an
// out-of-range vertex id here is a programming error in the caller
// (typically the router failing to size the graph correctly), not a
// runtime condition callers are expected to recover from.
func (g *Graph) AddEdge(from, to int, weight float64) (int, error) {
	if from < 0 || from >= g.vertexCount {
		panic(fmt.Sprintf("graph: AddEdge: from=%d: %v", from, ErrVertexOutOfRange))
	}
	if to < 0 || to >= g.vertexCount {
		panic(fmt.Sprintf("graph: AddEdge: to=%d: %v", to, ErrVertexOutOfRange))
	}
	if weight < 0 {
		return -1, fmt.Errorf("%w: %g", ErrNegativeWeight, weight)
	}

	id := len(g.edges)
	g.edges = append(g.edges, Edge{From: from, To: to, Weight: weight})
	g.incidence[from] = append(g.incidence[from], id)

	return id, nil
}

// IncidentEdges returns the ids of every edge whose From == vertex, in
// the order they were added. Out-of-range vertex ids panic, as with
// AddEdge.
func (g *Graph) IncidentEdges(vertex int) []int {
	if vertex < 0 || vertex >= g.vertexCount {
		panic(fmt.Sprintf("graph: IncidentEdges: vertex=%d: %v", vertex, ErrVertexOutOfRange))
	}

	return g.incidence[vertex]
}

// Edge returns the edge stored under id. Out-of-range edge ids panic:
// edge ids are only ever produced by a prior call to AddEdge on this
// same graph, so an invalid one signals a caller bug.
func (g *Graph) Edge(id int) Edge {
	if id < 0 || id >= len(g.edges) {
		panic(fmt.Sprintf("graph: Edge: id=%d: %v", id, ErrEdgeOutOfRange))
	}

	return g.edges[id]
}
