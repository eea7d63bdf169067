package geo_test

import (
	"math"
	"testing"

	"github.com/busgraph/transitgraph/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistance_SamePoint(t *testing.T) {
	a := geo.New(55.611087, 37.20829)
	require.Zero(t, geo.Distance(a, a))
}

func TestDistance_KnownPair(t *testing.T) {
	// Same pair of stops used by the route-query tests in router and iodoc.
	a := geo.New(55.611087, 37.20829)
	b := geo.New(55.595884, 37.209755)

	d := geo.Distance(a, b)
	// Great-circle distance for this pair (about 1693m) is well under its
	// 3900m road distance, so curvature stays at 1.0 or above in those tests.
	assert.InDelta(t, 1693.0, d, 50.0)
	assert.Less(t, d, 3900.0)
}

func TestDistance_Symmetric(t *testing.T) {
	a := geo.New(10, 20)
	b := geo.New(-5, 100)
	assert.True(t, math.Abs(geo.Distance(a, b)-geo.Distance(b, a)) < 1e-9)
}
