// Package graph is a generic directed weighted graph keyed by dense
// integer vertex and edge identifiers, specialized to the router's
// needs: vertex ids are assigned by the caller up front (the router
// already knows its vertex count before it adds a single edge), and
// edges are strictly append-only — once added they are never removed
// or reweighted, so edge ids double as a stable "discovery order" used
// to break ties in the shortest-path engine.
package graph

import "errors"

// Sentinel errors returned by Graph's operations.
var (
	// ErrVertexOutOfRange indicates a vertex id outside [0, VertexCount()).
	ErrVertexOutOfRange = errors.New("graph: vertex id out of range")

	// ErrEdgeOutOfRange indicates an edge id outside [0, EdgeCount()).
	ErrEdgeOutOfRange = errors.New("graph: edge id out of range")

	// ErrNegativeWeight indicates an attempt to add an edge with a
	// negative weight; the graph only supports non-negative weights.
	ErrNegativeWeight = errors.New("graph: edge weight must be non-negative")
)

// Edge is one directed, weighted connection between two vertices.
type Edge struct {
	From   int
	To     int
	Weight float64
}

// Graph is a directed graph over a fixed, dense set of vertex ids
// [0, n). Edges are identified by their dense, monotonically increasing
// insertion index. Self-loops are permitted but never required.
type Graph struct {
	vertexCount int
	edges       []Edge
	incidence   [][]int // incidence[v] = edge ids whose From == v, in insertion order
}

// New returns an empty Graph over vertexCount vertices (ids 0..vertexCount-1).
func New(vertexCount int) *Graph {
	return &Graph{
		vertexCount: vertexCount,
		incidence:   make([][]int, vertexCount),
	}
}

// VertexCount returns the number of vertices in the graph.
func (g *Graph) VertexCount() int { return g.vertexCount }

// EdgeCount returns the number of edges added so far.
func (g *Graph) EdgeCount() int { return len(g.edges) }
