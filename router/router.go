package router

import (
	"errors"
	"fmt"

	"github.com/busgraph/transitgraph/catalogue"
	"github.com/busgraph/transitgraph/graph"
	"github.com/busgraph/transitgraph/pathfinder"
)

// kmhToMetersPerMinute converts bus_velocity (km/h) to meters/minute.
const kmhToMetersPerMinute = 1000.0 / 60.0

// Sentinel errors returned by Build.
var (
	// ErrNegativeWaitTime indicates a negative bus_wait_time parameter.
	ErrNegativeWaitTime = errors.New("router: bus_wait_time must be >= 0")

	// ErrNonPositiveVelocity indicates a non-positive bus_velocity parameter.
	ErrNonPositiveVelocity = errors.New("router: bus_velocity must be > 0")
)

// Router owns the transit graph built from a Catalogue and answers
// origin -> destination itinerary queries against it. A Router is
// immutable once Build returns and safe for concurrent FindRoute calls.
type Router struct {
	g          *graph.Graph
	inVertex   map[string]int // stop name -> In(stop) vertex id
	edgeLabels []edgeInfo     // indexed by edge id, parallel to g's edges
}

// Build constructs the transit graph for cat: two vertices per stop
// (In, Ride), one Wait edge per stop weighted waitTimeMinutes, and one
// Ride edge per (bus, i, j) pair of stop indices a single bus covers
// without a transfer, weighted by the summed road distance between
// stops[i] and stops[j] converted to minutes at velocityKmh. Out-and-back
// buses additionally get the same enumeration over their reversed stop
// sequence. cat is read-only for the remainder of Build and is assumed
// frozen by the caller thereafter.
func Build(cat *catalogue.Catalogue, waitTimeMinutes int64, velocityKmh float64) (*Router, error) {
	if waitTimeMinutes < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNegativeWaitTime, waitTimeMinutes)
	}
	if velocityKmh <= 0 {
		return nil, fmt.Errorf("%w: got %g", ErrNonPositiveVelocity, velocityKmh)
	}

	stops := cat.SortedStops()
	g := graph.New(len(stops) * 2)
	inVertex := make(map[string]int, len(stops))

	var labels []edgeInfo

	for k, s := range stops {
		in := 2 * k
		ride := 2*k + 1
		inVertex[s.Name] = in

		id, err := g.AddEdge(in, ride, float64(waitTimeMinutes))
		if err != nil {
			return nil, fmt.Errorf("router: wait edge for %q: %w", s.Name, err)
		}
		labels = appendLabel(labels, id, edgeInfo{kind: Wait, stop: s.Name})
	}

	velocityMPerMin := velocityKmh * kmhToMetersPerMinute

	for _, b := range cat.SortedBuses() {
		labels = addRideEdges(g, labels, cat, inVertex, b.Name, b.Stops, velocityMPerMin)
		if !b.IsCircular {
			labels = addRideEdges(g, labels, cat, inVertex, b.Name, reversed(b.Stops), velocityMPerMin)
		}
	}

	return &Router{g: g, inVertex: inVertex, edgeLabels: labels}, nil
}

// addRideEdges enumerates every (i, j) pair of indices into seq with
// i < j, maintaining a running sum of directional road distance in
// integer meters so only the final weight computation touches floating
// point, and adds one Ride edge per pair: Ride(seq[i]) -> In(seq[j]),
// weight = running_sum / velocityMPerMin, labeled with the span count
// j - i.
func addRideEdges(g *graph.Graph, labels []edgeInfo, cat *catalogue.Catalogue, inVertex map[string]int, busName string, seq []*catalogue.Stop, velocityMPerMin float64) []edgeInfo {
	n := len(seq)
	for i := 0; i < n-1; i++ {
		var distanceSum int64
		for j := i + 1; j < n; j++ {
			distanceSum += cat.GetDistance(seq[j-1], seq[j])
			travelTime := float64(distanceSum) / velocityMPerMin

			from := inVertex[seq[i].Name] + 1 // Ride(seq[i])
			to := inVertex[seq[j].Name]        // In(seq[j])

			id, err := g.AddEdge(from, to, travelTime)
			if err != nil {
				// Weights are always >= 0 here: distanceSum and
				// velocityMPerMin are both non-negative by construction
				// (Build rejects non-positive velocity), so this can
				// only fire on a future graph.AddEdge contract change.
				panic(fmt.Sprintf("router: unexpected negative ride edge weight: %v", err))
			}
			labels = appendLabel(labels, id, edgeInfo{kind: Ride, bus: busName, spanCount: j - i})
		}
	}

	return labels
}

// appendLabel appends info at index id, which by construction of Build
// is always len(labels) (edges are added and labeled in lockstep).
func appendLabel(labels []edgeInfo, id int, info edgeInfo) []edgeInfo {
	if id != len(labels) {
		panic("router: edge id / label index drift")
	}

	return append(labels, info)
}

// reversed returns a new slice holding stops in reverse order, used to
// enumerate an out-and-back bus's implied return leg.
func reversed(stops []*catalogue.Stop) []*catalogue.Stop {
	out := make([]*catalogue.Stop, len(stops))
	for i, s := range stops {
		out[len(stops)-1-i] = s
	}

	return out
}

// FindRoute answers a single origin -> destination trip query. It
// returns (nil, false) if either name is unknown to the Router or no
// path exists between them; otherwise it returns the itinerary with the
// minimum total time.
func (r *Router) FindRoute(fromName, toName string) (*Itinerary, bool) {
	from, ok := r.inVertex[fromName]
	if !ok {
		return nil, false
	}
	to, ok := r.inVertex[toName]
	if !ok {
		return nil, false
	}

	route, ok := pathfinder.BuildRoute(r.g, from, to)
	if !ok {
		return nil, false
	}

	activities := make([]Activity, len(route.EdgeIDs))
	for i, eid := range route.EdgeIDs {
		label := r.edgeLabels[eid]
		edge := r.g.Edge(eid)
		switch label.kind {
		case Wait:
			activities[i] = Activity{Kind: Wait, Stop: label.stop, Time: edge.Weight}
		case Ride:
			activities[i] = Activity{Kind: Ride, Bus: label.bus, SpanCount: label.spanCount, Time: edge.Weight}
		}
	}

	return &Itinerary{TotalTime: route.TotalWeight, Activities: activities}, true
}
