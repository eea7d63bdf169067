package svgmap

import (
	"fmt"
	"html"
	"strings"

	"github.com/busgraph/transitgraph/catalogue"
)

// paletteColor returns settings.Palette[i % len(settings.Palette)], or
// "black" if the palette is empty.
func paletteColor(settings Settings, i int) string {
	if len(settings.Palette) == 0 {
		return "black"
	}

	return settings.Palette[i%len(settings.Palette)]
}

// busRoute returns the full on-screen path of b: its stop sequence as
// stored for a circular bus, or that sequence followed by its reverse
// (minus the shared turnaround stop) for an out-and-back bus.
func busRoute(b *catalogue.Bus) []*catalogue.Stop {
	if b.IsCircular || len(b.Stops) < 2 {
		return b.Stops
	}

	route := make([]*catalogue.Stop, 0, 2*len(b.Stops)-1)
	route = append(route, b.Stops...)
	for i := len(b.Stops) - 2; i >= 0; i-- {
		route = append(route, b.Stops[i])
	}

	return route
}

func renderBusLines(b *strings.Builder, buses []*catalogue.Bus, at map[string]point, settings Settings) {
	for i, bus := range buses {
		route := busRoute(bus)
		if len(route) == 0 {
			continue
		}

		color := paletteColor(settings, i)
		fmt.Fprintf(b, `<polyline points="`)
		for j, s := range route {
			if j > 0 {
				b.WriteString(" ")
			}
			p := at[s.Name]
			fmt.Fprintf(b, "%s,%s", trimFloat(p.X), trimFloat(p.Y))
		}
		fmt.Fprintf(b, `" fill="none" stroke="%s" stroke-width="%s" stroke-linecap="round" stroke-linejoin="round"/>`, color, trimFloat(settings.LineWidth))
		b.WriteString("\n")
	}
}

// busLabelStops returns the stops at which bus's name label is drawn:
// always the first stop, and additionally the last stop of an
// out-and-back bus whose two endpoints differ.
func busLabelStops(b *catalogue.Bus) []*catalogue.Stop {
	if len(b.Stops) == 0 {
		return nil
	}
	if b.IsCircular {
		return []*catalogue.Stop{b.Stops[0]}
	}

	first, last := b.Stops[0], b.Stops[len(b.Stops)-1]
	if first == last {
		return []*catalogue.Stop{first}
	}

	return []*catalogue.Stop{first, last}
}

func renderBusLabels(b *strings.Builder, buses []*catalogue.Bus, at map[string]point, settings Settings) {
	for i, bus := range buses {
		color := paletteColor(settings, i)
		for _, s := range busLabelStops(bus) {
			p := at[s.Name]
			writeUnderlayText(b, p, settings.BusLabelDX, settings.BusLabelDY, settings.BusLabelFont, settings.UnderlayColor, settings.UnderlayWidth, bus.Name)
			fmt.Fprintf(b, `<text fill="%s" x="%s" y="%s" dx="%s" dy="%s" font-size="%s" font-weight="bold">%s</text>`,
				color, trimFloat(p.X), trimFloat(p.Y), trimFloat(settings.BusLabelDX), trimFloat(settings.BusLabelDY),
				trimFloat(settings.BusLabelFont), html.EscapeString(bus.Name))
			b.WriteString("\n")
		}
	}
}

func renderStopCircles(b *strings.Builder, stops []*catalogue.Stop, at map[string]point, settings Settings) {
	for _, s := range stops {
		p := at[s.Name]
		fmt.Fprintf(b, `<circle cx="%s" cy="%s" r="%s" fill="white"/>`, trimFloat(p.X), trimFloat(p.Y), trimFloat(settings.StopRadius))
		b.WriteString("\n")
	}
}

func renderStopLabels(b *strings.Builder, stops []*catalogue.Stop, at map[string]point, settings Settings) {
	for _, s := range stops {
		p := at[s.Name]
		writeUnderlayText(b, p, settings.StopLabelDX, settings.StopLabelDY, settings.StopLabelFont, settings.UnderlayColor, settings.UnderlayWidth, s.Name)
		fmt.Fprintf(b, `<text fill="black" x="%s" y="%s" dx="%s" dy="%s" font-size="%s">%s</text>`,
			trimFloat(p.X), trimFloat(p.Y), trimFloat(settings.StopLabelDX), trimFloat(settings.StopLabelDY),
			trimFloat(settings.StopLabelFont), html.EscapeString(s.Name))
		b.WriteString("\n")
	}
}

// writeUnderlayText draws the same text twice-stroked underlay the
// course project's renderer uses so labels stay legible over lines of
// any color.
func writeUnderlayText(b *strings.Builder, p point, dx, dy, fontSize float64, underlayColor string, underlayWidth float64, text string) {
	fmt.Fprintf(b, `<text fill="%s" stroke="%s" stroke-width="%s" stroke-linecap="round" stroke-linejoin="round" x="%s" y="%s" dx="%s" dy="%s" font-size="%s">%s</text>`,
		underlayColor, underlayColor, trimFloat(underlayWidth), trimFloat(p.X), trimFloat(p.Y),
		trimFloat(dx), trimFloat(dy), trimFloat(fontSize), html.EscapeString(text))
	b.WriteString("\n")
}
