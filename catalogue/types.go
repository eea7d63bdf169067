// Package catalogue is the in-memory store of stops, buses and road
// distance overrides that the router and stats facade are built from.
//
// The Catalogue owns every Stop and Bus for its entire lifetime: once
// AddStop/AddBus return a reference, that reference stays valid for as
// long as the Catalogue itself is alive. Stops are never deleted, and
// neither add operation rewrites a name that already exists — both fail
// with a typed error instead, leaving the Catalogue unchanged.
package catalogue

import (
	"errors"
	"sort"

	"github.com/busgraph/transitgraph/geo"
)

// Sentinel errors returned by Catalogue's mutating operations. Callers
// should use errors.Is to test for a specific kind; errors returned from
// exported functions may wrap one of these with additional context via
// fmt.Errorf("...: %w", ...).
var (
	// ErrDuplicateStop indicates a stop name that already exists.
	ErrDuplicateStop = errors.New("catalogue: duplicate stop name")

	// ErrDuplicateBus indicates a bus name that already exists.
	ErrDuplicateBus = errors.New("catalogue: duplicate bus name")

	// ErrUnknownStop indicates a reference (distance override endpoint,
	// or bus stop) to a stop that was never added.
	ErrUnknownStop = errors.New("catalogue: unknown stop")

	// ErrNegativeDistance indicates a distance override below zero.
	ErrNegativeDistance = errors.New("catalogue: distance must be >= 0")

	// ErrEmptyRoute indicates a bus declared with no stops.
	ErrEmptyRoute = errors.New("catalogue: bus route has no stops")

	// ErrMalformedCircularRoute indicates a circular bus whose first and
	// last stop references are not identical.
	ErrMalformedCircularRoute = errors.New("catalogue: circular route must start and end at the same stop")
)

// Stop is a named geographic point. Buses is the lexicographically
// sorted set of bus names that visit this stop; it is populated
// incrementally as buses referencing this stop are added.
type Stop struct {
	Name     string
	Coord    geo.Coordinate
	busNames []string // kept sorted; exposed read-only via Buses()
}

// Buses returns the sorted slice of bus names passing through s. The
// returned slice must not be mutated by callers.
func (s *Stop) Buses() []string {
	return s.busNames
}

// addBus inserts name into s.busNames, preserving sorted order and
// rejecting duplicates (a bus visiting the same stop twice, as happens
// for circular routes whose first/last entry repeats, must not produce
// a duplicate entry).
func (s *Stop) addBus(name string) {
	i := sort.SearchStrings(s.busNames, name)
	if i < len(s.busNames) && s.busNames[i] == name {
		return
	}
	s.busNames = append(s.busNames, "")
	copy(s.busNames[i+1:], s.busNames[i:])
	s.busNames[i] = name
}

// Bus is a named, ordered sequence of stop references. Stops are
// borrowed from the owning Catalogue and never outlive it. For a
// circular bus the first and last entries are identical; for an
// out-and-back bus Stops holds only the one-way leg, and the return
// leg is implied by traversing it in reverse.
type Bus struct {
	Name       string
	Stops      []*Stop
	IsCircular bool
}
