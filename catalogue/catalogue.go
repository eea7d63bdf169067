package catalogue

import (
	"fmt"
	"sort"

	"github.com/busgraph/transitgraph/geo"
)

// distKey is an ordered pair of stop names used to key the directional
// distance overrides. Using a struct of two strings as the map key
// avoids the concatenated-string hashing hazard of naively joining
// "from"+"to" (which can collide when either name itself contains the
// chosen separator) — Go's map implementation hashes struct keys
// field-by-field, so no separator is ever needed.
type distKey struct {
	from, to string
}

// Catalogue stores stops, buses and directional road-distance overrides.
// All mutating operations validate preconditions and leave the Catalogue
// unchanged on failure. A Catalogue is not safe for concurrent mutation,
// but once built it is read-only and safe for concurrent readers.
type Catalogue struct {
	stops     map[string]*Stop
	buses     map[string]*Bus
	distances map[distKey]int64
}

// New returns an empty Catalogue.
func New() *Catalogue {
	return &Catalogue{
		stops:     make(map[string]*Stop),
		buses:     make(map[string]*Bus),
		distances: make(map[distKey]int64),
	}
}

// AddStop inserts a new stop. It fails with ErrDuplicateStop if name is
// already known; the Catalogue is unchanged in that case. The returned
// *Stop remains valid for the lifetime of the Catalogue.
func (c *Catalogue) AddStop(name string, coord geo.Coordinate) (*Stop, error) {
	if _, exists := c.stops[name]; exists {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateStop, name)
	}

	s := &Stop{Name: name, Coord: coord}
	c.stops[name] = s

	return s, nil
}

// SetDistance records the directional road distance from -> to in
// meters, overwriting any prior value for the same ordered pair. Both
// stops must already exist and meters must be >= 0.
func (c *Catalogue) SetDistance(from, to string, meters int64) error {
	if meters < 0 {
		return fmt.Errorf("%w: got %d", ErrNegativeDistance, meters)
	}
	if _, ok := c.stops[from]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownStop, from)
	}
	if _, ok := c.stops[to]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownStop, to)
	}

	c.distances[distKey{from, to}] = meters

	return nil
}

// AddBus inserts a new bus visiting stopNames in order, and records this
// bus on every visited stop's bus set. It fails, leaving the Catalogue
// unchanged, if:
//   - name is already known (ErrDuplicateBus),
//   - stopNames is empty (ErrEmptyRoute),
//   - any referenced stop is unknown (ErrUnknownStop),
//   - isCircular is true and the first and last entries of stopNames
//     differ (ErrMalformedCircularRoute).
func (c *Catalogue) AddBus(name string, stopNames []string, isCircular bool) (*Bus, error) {
	if _, exists := c.buses[name]; exists {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateBus, name)
	}
	if len(stopNames) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrEmptyRoute, name)
	}
	if isCircular && stopNames[0] != stopNames[len(stopNames)-1] {
		return nil, fmt.Errorf("%w: %q", ErrMalformedCircularRoute, name)
	}

	stops := make([]*Stop, len(stopNames))
	for i, sn := range stopNames {
		s, ok := c.stops[sn]
		if !ok {
			return nil, fmt.Errorf("%w: bus %q references %q", ErrUnknownStop, name, sn)
		}
		stops[i] = s
	}

	b := &Bus{Name: name, Stops: stops, IsCircular: isCircular}
	c.buses[name] = b
	for _, s := range stops {
		s.addBus(name)
	}

	return b, nil
}

// FindStop returns the stop named name, or (nil, false) if unknown.
func (c *Catalogue) FindStop(name string) (*Stop, bool) {
	s, ok := c.stops[name]
	return s, ok
}

// FindBus returns the bus named name, or (nil, false) if unknown.
func (c *Catalogue) FindBus(name string) (*Bus, bool) {
	b, ok := c.buses[name]
	return b, ok
}

// GetDistance returns the recorded road distance from -> to. If no
// direct override exists, it falls back to the override for the reverse
// pair to -> from. If neither direction has ever been set, it returns 0
// ("no road data"), matching the documented (if lossy) behavior of the
// source this catalogue descends from — see DESIGN.md for the
// open-question writeup.
func (c *Catalogue) GetDistance(from, to *Stop) int64 {
	if d, ok := c.distances[distKey{from.Name, to.Name}]; ok {
		return d
	}
	if d, ok := c.distances[distKey{to.Name, from.Name}]; ok {
		return d
	}

	return 0
}

// SortedStops returns every stop, ordered lexicographically by name.
// Used by the router for deterministic vertex numbering and by the map
// renderer for deterministic draw order.
func (c *Catalogue) SortedStops() []*Stop {
	out := make([]*Stop, 0, len(c.stops))
	for _, s := range c.stops {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out
}

// SortedBuses returns every bus, ordered lexicographically by name.
func (c *Catalogue) SortedBuses() []*Bus {
	out := make([]*Bus, 0, len(c.buses))
	for _, b := range c.buses {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out
}

// StopCount returns the number of stops currently in the Catalogue.
func (c *Catalogue) StopCount() int { return len(c.stops) }

// BusCount returns the number of buses currently in the Catalogue.
func (c *Catalogue) BusCount() int { return len(c.buses) }
