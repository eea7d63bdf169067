package stats_test

import (
	"testing"

	"github.com/busgraph/transitgraph/catalogue"
	"github.com/busgraph/transitgraph/geo"
	"github.com/busgraph/transitgraph/router"
	"github.com/busgraph/transitgraph/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildSample(t *testing.T) (*catalogue.Catalogue, *router.Router) {
	t.Helper()
	cat := catalogue.New()
	_, err := cat.AddStop("A", geo.New(55.611087, 37.20829))
	require.NoError(t, err)
	_, err = cat.AddStop("B", geo.New(55.595884, 37.209755))
	require.NoError(t, err)
	_, err = cat.AddStop("Lonely", geo.New(0, 0))
	require.NoError(t, err)
	require.NoError(t, cat.SetDistance("A", "B", 3900))
	require.NoError(t, cat.SetDistance("B", "A", 4100))
	_, err = cat.AddBus("256", []string{"A", "B"}, false)
	require.NoError(t, err)

	rtr, err := router.Build(cat, 6, 40)
	require.NoError(t, err)

	return cat, rtr
}

func TestBusQuery(t *testing.T) {
	cat, _ := buildSample(t)

	got, ok := stats.BusQuery(cat, "256")
	require.True(t, ok)
	assert.Equal(t, 3, got.StopsOnRoute) // 2n-1 = 2*2-1
	assert.Equal(t, 2, got.UniqueStopCount)
	assert.EqualValues(t, 8000, got.RoadLength)
	assert.GreaterOrEqual(t, got.Curvature, 1.0)

	_, ok = stats.BusQuery(cat, "Nope")
	assert.False(t, ok)
}

func TestStopQuery(t *testing.T) {
	cat, _ := buildSample(t)

	got, ok := stats.StopQuery(cat, "A")
	require.True(t, ok)
	assert.Equal(t, []string{"256"}, got)

	got, ok = stats.StopQuery(cat, "Lonely")
	require.True(t, ok)
	assert.Empty(t, got)

	_, ok = stats.StopQuery(cat, "Nowhere")
	assert.False(t, ok)
}

func TestRouteQuery(t *testing.T) {
	_, rtr := buildSample(t)

	it, ok := stats.RouteQuery(rtr, "A", "B")
	require.True(t, ok)
	assert.InDelta(t, 11.85, it.TotalTime, 1e-9)

	_, ok = stats.RouteQuery(rtr, "A", "Nowhere")
	assert.False(t, ok)
}
