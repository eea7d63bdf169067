package iodoc_test

import (
	"testing"

	"github.com/busgraph/transitgraph/iodoc"
	"github.com/busgraph/transitgraph/svgmap"
	"github.com/stretchr/testify/assert"
)

func TestResolveRenderSettings_NilKeepsDefaults(t *testing.T) {
	out := iodoc.ResolveRenderSettings(nil)
	assert.Equal(t, svgmap.DefaultSettings(), out)
}

func TestResolveRenderSettings_OverridesOnlySetFields(t *testing.T) {
	width := 2000.0
	underlay := "black"
	rs := &iodoc.RenderSettings{Width: &width, UnderlayColor: &underlay}

	out := iodoc.ResolveRenderSettings(rs)
	want := svgmap.DefaultSettings()

	assert.Equal(t, 2000.0, out.Width)
	assert.Equal(t, "black", out.UnderlayColor)
	assert.Equal(t, want.Height, out.Height)
	assert.Equal(t, want.Palette, out.Palette)
}

func TestResolveRenderSettings_EmptyPaletteKeepsDefault(t *testing.T) {
	rs := &iodoc.RenderSettings{Palette: nil}
	out := iodoc.ResolveRenderSettings(rs)
	assert.Equal(t, svgmap.DefaultSettings().Palette, out.Palette)
}

func TestResolveRoutingSettings_DocumentWins(t *testing.T) {
	doc := &iodoc.RoutingSettings{BusWaitTime: 5, BusVelocity: 40}
	fallback := &iodoc.RoutingSettings{BusWaitTime: 1, BusVelocity: 1}

	out, ok := iodoc.ResolveRoutingSettings(doc, fallback)
	assert.True(t, ok)
	assert.Equal(t, *doc, out)
}

func TestResolveRoutingSettings_FallsBackWhenDocumentNil(t *testing.T) {
	fallback := &iodoc.RoutingSettings{BusWaitTime: 1, BusVelocity: 1}
	out, ok := iodoc.ResolveRoutingSettings(nil, fallback)
	assert.True(t, ok)
	assert.Equal(t, *fallback, out)
}

func TestResolveRoutingSettings_NeitherPresent(t *testing.T) {
	_, ok := iodoc.ResolveRoutingSettings(nil, nil)
	assert.False(t, ok)
}
