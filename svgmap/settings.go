// Package svgmap renders a Catalogue as a deterministic SVG document: a
// colored polyline per bus route, a label per bus and per stop, and a
// circle per stop. It is an external collaborator of the core transit
// engine — the core consumes only the Catalogue it renders, never the
// other way around — kept here because map queries are still part of
// the answered query families.
package svgmap

// Settings configures map rendering. Field names mirror the
// render_settings section of the input document (see SPEC_FULL.md §3.1).
type Settings struct {
	Width         float64
	Height        float64
	Padding       float64
	StopRadius    float64
	LineWidth     float64
	StopLabelFont float64
	StopLabelDX   float64
	StopLabelDY   float64
	BusLabelFont  float64
	BusLabelDX    float64
	BusLabelDY    float64
	UnderlayColor string
	UnderlayWidth float64
	Palette       []string
}

// DefaultSettings returns a reasonable default configuration, used when
// a document omits render_settings entirely.
func DefaultSettings() Settings {
	return Settings{
		Width:         1200,
		Height:        1200,
		Padding:       50,
		StopRadius:    5,
		LineWidth:     14,
		StopLabelFont: 20,
		StopLabelDX:   7,
		StopLabelDY:   15,
		BusLabelFont:  20,
		BusLabelDX:    7,
		BusLabelDY:    15,
		UnderlayColor: "rgba(255,255,255,0.85)",
		UnderlayWidth: 3,
		Palette:       []string{"green", "rgb(255,160,0)", "red"},
	}
}
