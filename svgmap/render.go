package svgmap

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/busgraph/transitgraph/catalogue"
	"github.com/busgraph/transitgraph/geo"
)

// Render produces a complete SVG document for cat under settings.
// Rendering is deterministic: stops and buses are drawn in the
// Catalogue's lexicographic order (catalogue.SortedStops /
// catalogue.SortedBuses), and layering is fixed — every bus polyline,
// then every bus label, then every stop circle, then every stop label —
// so labels are never obscured by a line drawn after them.
func Render(cat *catalogue.Catalogue, settings Settings) string {
	stops := cat.SortedStops()
	buses := cat.SortedBuses()

	coords := make([]geo.Coordinate, len(stops))
	for i, s := range stops {
		coords[i] = s.Coord
	}

	proj := newProjector(coords, settings)
	at := make(map[string]point, len(stops))
	for _, s := range stops {
		at[s.Name] = proj.project(s.Coord)
	}

	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" ?>`)
	b.WriteString("\n")
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" version="1.1" viewBox="0 0 %s %s">`,
		trimFloat(settings.Width), trimFloat(settings.Height))
	b.WriteString("\n")

	renderBusLines(&b, buses, at, settings)
	renderBusLabels(&b, buses, at, settings)
	renderStopCircles(&b, stops, at, settings)
	renderStopLabels(&b, stops, at, settings)

	b.WriteString("</svg>")

	return b.String()
}

// trimFloat formats f without a trailing ".0" for whole numbers, to
// keep generated attribute values tidy.
func trimFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
