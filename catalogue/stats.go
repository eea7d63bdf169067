package catalogue

import "github.com/busgraph/transitgraph/geo"

// StopsOnRoute returns the number of stops a rider passes while
// traversing b once: n for a circular route (n = len(b.Stops)), or
// 2n-1 for an out-and-back route (the outward leg plus the return leg,
// minus the shared turnaround stop).
func StopsOnRoute(b *Bus) int {
	n := len(b.Stops)
	if b.IsCircular {
		return n
	}

	return 2*n - 1
}

// UniqueStops returns the number of distinct stops visited by b,
// regardless of circularity.
func UniqueStops(b *Bus) int {
	seen := make(map[string]struct{}, len(b.Stops))
	for _, s := range b.Stops {
		seen[s.Name] = struct{}{}
	}

	return len(seen)
}

// RoadLength returns the total road distance of b in meters: the sum of
// GetDistance over each consecutive stop pair, and for out-and-back
// buses, also the sum of GetDistance over the same pairs traversed in
// reverse (each inter-stop segment is counted once per direction).
func (c *Catalogue) RoadLength(b *Bus) int64 {
	var total int64
	for i := 0; i+1 < len(b.Stops); i++ {
		total += c.GetDistance(b.Stops[i], b.Stops[i+1])
		if !b.IsCircular {
			total += c.GetDistance(b.Stops[i+1], b.Stops[i])
		}
	}

	return total
}

// GeographicLength returns the total great-circle length of b in
// meters, doubled for out-and-back buses (to mirror RoadLength's
// double-counting of the return leg).
func GeographicLength(b *Bus) float64 {
	var total float64
	for i := 0; i+1 < len(b.Stops); i++ {
		total += geo.Distance(b.Stops[i].Coord, b.Stops[i+1].Coord)
	}
	if !b.IsCircular {
		total *= 2
	}

	return total
}

// Curvature returns RoadLength(b) / GeographicLength(b). With physically
// consistent road distances (each >= the corresponding great-circle
// distance) it is always >= 1.0 for any bus with at least two distinct
// stops. Curvature is 0 if the geographic length is 0 (a degenerate bus
// whose stops all share one coordinate).
func (c *Catalogue) Curvature(b *Bus) float64 {
	geoLen := GeographicLength(b)
	if geoLen == 0 {
		return 0
	}

	return float64(c.RoadLength(b)) / geoLen
}
