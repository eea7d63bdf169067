package svgmap

import (
	"math"

	"github.com/busgraph/transitgraph/geo"
)

// point is a projected 2D canvas coordinate.
type point struct{ X, Y float64 }

// projector maps geo.Coordinate values onto canvas coordinates within
// [padding, width-padding] x [padding, height-padding], preserving
// aspect ratio via a single zoom coefficient shared by both axes. This
// is the classic "compressed equirectangular" projection used by the
// course project's map renderer: longitude increases rightward, but
// latitude increases *upward* in geography while SVG y increases
// *downward*, so the y axis is flipped.
type projector struct {
	minLon, zoom, maxLat, padding float64
}

// newProjector derives a projector from the bounding box of coords and
// the target canvas size. If all coordinates share the same longitude
// (or the same latitude), that axis contributes no scale factor and the
// other axis alone determines zoom — matching the source renderer's
// handling of degenerate single-line layouts.
func newProjector(coords []geo.Coordinate, s Settings) projector {
	if len(coords) == 0 {
		return projector{padding: s.Padding}
	}

	minLat, maxLat := coords[0].Latitude, coords[0].Latitude
	minLon, maxLon := coords[0].Longitude, coords[0].Longitude
	for _, c := range coords[1:] {
		minLat = math.Min(minLat, c.Latitude)
		maxLat = math.Max(maxLat, c.Latitude)
		minLon = math.Min(minLon, c.Longitude)
		maxLon = math.Max(maxLon, c.Longitude)
	}

	usableW := s.Width - 2*s.Padding
	usableH := s.Height - 2*s.Padding

	var widthZoom, haveWidthZoom float64
	if maxLon-minLon != 0 {
		widthZoom = usableW / (maxLon - minLon)
		haveWidthZoom = 1
	}
	var heightZoom, haveHeightZoom float64
	if maxLat-minLat != 0 {
		heightZoom = usableH / (maxLat - minLat)
		haveHeightZoom = 1
	}

	var zoom float64
	switch {
	case haveWidthZoom == 1 && haveHeightZoom == 1:
		zoom = math.Min(widthZoom, heightZoom)
	case haveWidthZoom == 1:
		zoom = widthZoom
	case haveHeightZoom == 1:
		zoom = heightZoom
	default:
		zoom = 0
	}

	return projector{minLon: minLon, zoom: zoom, maxLat: maxLat, padding: s.Padding}
}

// project converts a geo.Coordinate to canvas coordinates.
func (p projector) project(c geo.Coordinate) point {
	return point{
		X: (c.Longitude-p.minLon)*p.zoom + p.padding,
		Y: (p.maxLat-c.Latitude)*p.zoom + p.padding,
	}
}
