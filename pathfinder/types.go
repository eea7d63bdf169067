// Package pathfinder runs Dijkstra's algorithm over an immutable
// graph.Graph snapshot: a min-priority queue keyed by tentative
// distance, lazy decrease-key (stale heap entries are skipped on pop
// rather than removed), and predecessor-edge tracking for path
// reconstruction.
//
// BuildRoute answers a single src->dst query rather than
// single-source-to-all, since the router only ever needs one itinerary
// per call and stopping Dijkstra as soon as dst is finalized saves work
// on large graphs.
package pathfinder

// Route is the result of a successful BuildRoute call: the total edge
// weight of the shortest path, and the edges composing it in travel
// order (src -> dst).
type Route struct {
	TotalWeight float64
	EdgeIDs     []int
}
