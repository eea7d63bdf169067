// Package stats computes the externally serializable response objects
// for bus, stop and route queries from catalogue and router state. Every
// function here is a pure transformation: no mutation, no I/O.
package stats

import (
	"sort"

	"github.com/busgraph/transitgraph/catalogue"
	"github.com/busgraph/transitgraph/router"
)

// BusStats is the response payload for a bus query.
type BusStats struct {
	Curvature       float64
	RoadLength      int64
	StopsOnRoute    int
	UniqueStopCount int
}

// BusQuery returns the aggregate stats for name, or (zero, false) if no
// such bus exists.
func BusQuery(cat *catalogue.Catalogue, name string) (BusStats, bool) {
	b, ok := cat.FindBus(name)
	if !ok {
		return BusStats{}, false
	}

	return BusStats{
		Curvature:       cat.Curvature(b),
		RoadLength:      cat.RoadLength(b),
		StopsOnRoute:    catalogue.StopsOnRoute(b),
		UniqueStopCount: catalogue.UniqueStops(b),
	}, true
}

// StopQuery returns the sorted list of bus names passing through name,
// or (nil, false) if no such stop exists. An existing stop with no
// buses returns an empty, non-nil slice.
func StopQuery(cat *catalogue.Catalogue, name string) ([]string, bool) {
	s, ok := cat.FindStop(name)
	if !ok {
		return nil, false
	}

	buses := s.Buses()
	out := make([]string, len(buses))
	copy(out, buses)
	sort.Strings(out) // Buses() is already sorted; re-sorting costs little and removes the coupling.

	return out, true
}

// RouteQuery returns the itinerary from fromName to toName, or
// (nil, false) if either endpoint is unknown or unreachable.
func RouteQuery(rtr *router.Router, fromName, toName string) (*router.Itinerary, bool) {
	return rtr.FindRoute(fromName, toName)
}
