package pathfinder

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/busgraph/transitgraph/graph"
)

// BuildRoute computes the shortest (minimum total weight) path from src
// to dst over g using Dijkstra's algorithm with a lazy-decrease-key
// min-heap. It returns (route, true) if dst is reachable from src, or
// (nil, false) otherwise. src == dst always returns a zero-weight, empty
// path regardless of reachability.
//
// Ties between equal-cost paths are broken by edge insertion order:
// because edges incident to a vertex are relaxed in graph.IncidentEdges
// order and a predecessor is only overwritten on a strict improvement,
// the first path discovered at the winning distance is the one kept.
//
// An out-of-range src or dst is a programming error in the caller (the
// router always derives vertex ids from its own bookkeeping) and
// panics rather than returning an error.
//
// Complexity: O((V+E) log V).
func BuildRoute(g *graph.Graph, src, dst int) (*Route, bool) {
	n := g.VertexCount()
	if src < 0 || src >= n {
		panic(fmt.Sprintf("pathfinder: BuildRoute: src=%d out of range", src))
	}
	if dst < 0 || dst >= n {
		panic(fmt.Sprintf("pathfinder: BuildRoute: dst=%d out of range", dst))
	}
	if src == dst {
		return &Route{TotalWeight: 0, EdgeIDs: nil}, true
	}

	const inf = math.MaxFloat64

	dist := make([]float64, n)
	predEdge := make([]int, n) // -1 if no predecessor recorded
	visited := make([]bool, n)
	for i := range dist {
		dist[i] = inf
		predEdge[i] = -1
	}
	dist[src] = 0

	pq := &vertexHeap{{vertex: src, dist: 0}}
	heap.Init(pq)

	for pq.Len() > 0 {
		top := heap.Pop(pq).(vertexDist)
		u := top.vertex
		if visited[u] {
			continue
		}
		visited[u] = true

		if u == dst {
			break
		}

		for _, eid := range g.IncidentEdges(u) {
			e := g.Edge(eid)
			v := e.To
			if visited[v] {
				continue
			}

			nd := dist[u] + e.Weight
			if nd < dist[v] {
				dist[v] = nd
				predEdge[v] = eid
				heap.Push(pq, vertexDist{vertex: v, dist: nd})
			}
		}
	}

	if !visited[dst] {
		return nil, false
	}

	return &Route{TotalWeight: dist[dst], EdgeIDs: reconstruct(g, predEdge, src, dst)}, true
}

// reconstruct walks predEdge backward from dst to src, collecting the
// edge ids traversed, then reverses them into travel order.
func reconstruct(g *graph.Graph, predEdge []int, src, dst int) []int {
	var edges []int
	for v := dst; v != src; {
		eid := predEdge[v]
		edges = append(edges, eid)
		v = g.Edge(eid).From
	}

	for i, j := 0, len(edges)-1; i < j; i, j = i+1, j-1 {
		edges[i], edges[j] = edges[j], edges[i]
	}

	return edges
}

// vertexDist pairs a vertex with its tentative distance for the heap.
type vertexDist struct {
	vertex int
	dist   float64
}

// vertexHeap is a min-heap of vertexDist ordered by ascending dist,
// implementing container/heap.Interface.
type vertexHeap []vertexDist

func (h vertexHeap) Len() int            { return len(h) }
func (h vertexHeap) Less(i, j int) bool  { return h[i].dist < h[j].dist }
func (h vertexHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *vertexHeap) Push(x interface{}) { *h = append(*h, x.(vertexDist)) }
func (h *vertexHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}
