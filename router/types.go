// Package router maps a catalogue.Catalogue onto a graph.Graph using the
// two-vertex-per-stop encoding from spec §3: every stop gets an In
// vertex ("on the platform, not yet waited") and a Ride vertex ("boarded,
// moving"). A Wait edge connects In -> Ride at the cost of one boarding
// wait; Ride edges connect Ride(stops[i]) -> In(stops[j]) for every pair
// of indices a single bus covers without a transfer, so that "ride k
// consecutive stops on one bus" is one edge, not k, and every boarding
// is billed exactly one wait.
package router

// ActivityKind distinguishes the two activities an Itinerary is built
// from.
type ActivityKind int

const (
	// Wait is time spent boarding at a stop before a ride.
	Wait ActivityKind = iota
	// Ride is time spent moving on one bus across one or more
	// consecutive stops without a transfer.
	Ride
)

// Activity is one step of an Itinerary.
type Activity struct {
	Kind ActivityKind

	// Stop is set for Wait activities: the stop waited at.
	Stop string

	// Bus and SpanCount are set for Ride activities: the bus ridden and
	// the number of consecutive inter-stop segments it covers.
	Bus       string
	SpanCount int

	// Time is this activity's duration in minutes.
	Time float64
}

// Itinerary is the result of a successful trip query: the total time in
// minutes and the ordered sequence of Wait/Ride activities that make it
// up. A trip from a stop to itself has TotalTime 0 and an empty, non-nil
// Activities slice.
type Itinerary struct {
	TotalTime  float64
	Activities []Activity
}

// edgeInfo labels one edge of the underlying graph with the
// domain-level activity it represents; it is the per-edge side table
// the router consults when translating a pathfinder.Route into an
// Itinerary.
type edgeInfo struct {
	kind      ActivityKind
	stop      string // set for Wait edges
	bus       string // set for Ride edges
	spanCount int    // set for Ride edges
}
