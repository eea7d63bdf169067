package iodoc

import "github.com/busgraph/transitgraph/svgmap"

// ResolveRenderSettings merges a document's render_settings (if any)
// over svgmap.DefaultSettings; every field left unset in the document
// keeps its default value.
func ResolveRenderSettings(rs *RenderSettings) svgmap.Settings {
	out := svgmap.DefaultSettings()
	if rs == nil {
		return out
	}

	setF(&out.Width, rs.Width)
	setF(&out.Height, rs.Height)
	setF(&out.Padding, rs.Padding)
	setF(&out.StopRadius, rs.StopRadius)
	setF(&out.LineWidth, rs.LineWidth)
	setF(&out.StopLabelFont, rs.StopLabelFont)
	setF(&out.StopLabelDX, rs.StopLabelDX)
	setF(&out.StopLabelDY, rs.StopLabelDY)
	setF(&out.BusLabelFont, rs.BusLabelFont)
	setF(&out.BusLabelDX, rs.BusLabelDX)
	setF(&out.BusLabelDY, rs.BusLabelDY)
	setF(&out.UnderlayWidth, rs.UnderlayWidth)
	if rs.UnderlayColor != nil {
		out.UnderlayColor = *rs.UnderlayColor
	}
	if len(rs.Palette) > 0 {
		out.Palette = rs.Palette
	}

	return out
}

func setF(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}

// ResolveRoutingSettings picks the routing parameters for a document:
// the document's own routing_settings if present, otherwise a caller
// supplied default (typically loaded from a CLIConfig). If neither is
// present it returns a zero RoutingSettings and false — routing
// parameters are required for any Route query to be answerable at all.
func ResolveRoutingSettings(doc *RoutingSettings, fallback *RoutingSettings) (RoutingSettings, bool) {
	if doc != nil {
		return *doc, true
	}
	if fallback != nil {
		return *fallback, true
	}

	return RoutingSettings{}, false
}
