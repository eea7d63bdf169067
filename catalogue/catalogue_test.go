package catalogue_test

import (
	"testing"

	"github.com/busgraph/transitgraph/catalogue"
	"github.com/busgraph/transitgraph/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddStop_DuplicateFailsAndLeavesStateUnchanged(t *testing.T) {
	c := catalogue.New()
	_, err := c.AddStop("A", geo.New(1, 1))
	require.NoError(t, err)

	_, err = c.AddStop("A", geo.New(2, 2))
	require.ErrorIs(t, err, catalogue.ErrDuplicateStop)
	assert.Equal(t, 1, c.StopCount())

	// The original stop must be untouched by the failed duplicate insert.
	s, ok := c.FindStop("A")
	require.True(t, ok)
	assert.Equal(t, 1.0, s.Coord.Latitude)
}

func TestAddBus_DuplicateFailsAndLeavesStateUnchanged(t *testing.T) {
	c := catalogue.New()
	mustAddStop(t, c, "A", 1, 1)
	mustAddStop(t, c, "B", 2, 2)

	_, err := c.AddBus("256", []string{"A", "B"}, false)
	require.NoError(t, err)

	_, err = c.AddBus("256", []string{"B", "A"}, false)
	require.ErrorIs(t, err, catalogue.ErrDuplicateBus)
	assert.Equal(t, 1, c.BusCount())
}

func TestAddBus_UnknownStopFails(t *testing.T) {
	c := catalogue.New()
	mustAddStop(t, c, "A", 1, 1)

	_, err := c.AddBus("256", []string{"A", "Nowhere"}, false)
	require.ErrorIs(t, err, catalogue.ErrUnknownStop)
	assert.Equal(t, 0, c.BusCount())
}

func TestAddBus_CircularRequiresMatchingEndpoints(t *testing.T) {
	c := catalogue.New()
	mustAddStop(t, c, "P", 1, 1)
	mustAddStop(t, c, "Q", 2, 2)
	mustAddStop(t, c, "R", 3, 3)

	_, err := c.AddBus("Loop", []string{"P", "Q", "R"}, true)
	require.ErrorIs(t, err, catalogue.ErrMalformedCircularRoute)

	_, err = c.AddBus("Loop", []string{"P", "Q", "R", "P"}, true)
	require.NoError(t, err)
}

func TestDistance_AsymmetricFallback(t *testing.T) {
	c := catalogue.New()
	mustAddStop(t, c, "A", 1, 1)
	mustAddStop(t, c, "B", 2, 2)

	require.NoError(t, c.SetDistance("A", "B", 3900))

	a, _ := c.FindStop("A")
	b, _ := c.FindStop("B")

	assert.EqualValues(t, 3900, c.GetDistance(a, b))
	assert.EqualValues(t, 3900, c.GetDistance(b, a), "missing reverse override must fall back to the recorded direction")

	require.NoError(t, c.SetDistance("B", "A", 4100))
	assert.EqualValues(t, 3900, c.GetDistance(a, b))
	assert.EqualValues(t, 4100, c.GetDistance(b, a))
}

func TestGetDistance_UnknownPairIsZero(t *testing.T) {
	c := catalogue.New()
	mustAddStop(t, c, "A", 1, 1)
	mustAddStop(t, c, "B", 2, 2)
	a, _ := c.FindStop("A")
	b, _ := c.FindStop("B")

	assert.Zero(t, c.GetDistance(a, b))
}

func TestStopBuses_SortedAndDeduplicated(t *testing.T) {
	c := catalogue.New()
	mustAddStop(t, c, "A", 1, 1)
	mustAddStop(t, c, "B", 2, 2)

	_, err := c.AddBus("256", []string{"A", "B", "A"}, true)
	require.NoError(t, err)
	_, err = c.AddBus("2", []string{"A", "B"}, false)
	require.NoError(t, err)

	a, _ := c.FindStop("A")
	assert.Equal(t, []string{"2", "256"}, a.Buses())
}

func TestStopWithNoBuses(t *testing.T) {
	c := catalogue.New()
	mustAddStop(t, c, "Lonely", 1, 1)
	s, _ := c.FindStop("Lonely")
	assert.Empty(t, s.Buses())
}

func TestSortedStopsAndBuses(t *testing.T) {
	c := catalogue.New()
	mustAddStop(t, c, "Zeta", 1, 1)
	mustAddStop(t, c, "Alpha", 2, 2)
	_, err := c.AddBus("Z-line", []string{"Zeta", "Alpha"}, false)
	require.NoError(t, err)
	_, err = c.AddBus("A-line", []string{"Alpha", "Zeta"}, false)
	require.NoError(t, err)

	stops := c.SortedStops()
	require.Len(t, stops, 2)
	assert.Equal(t, "Alpha", stops[0].Name)
	assert.Equal(t, "Zeta", stops[1].Name)

	buses := c.SortedBuses()
	require.Len(t, buses, 2)
	assert.Equal(t, "A-line", buses[0].Name)
	assert.Equal(t, "Z-line", buses[1].Name)
}

func mustAddStop(t *testing.T, c *catalogue.Catalogue, name string, lat, lon float64) {
	t.Helper()
	_, err := c.AddStop(name, geo.New(lat, lon))
	require.NoError(t, err)
}
