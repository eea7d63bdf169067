// Package iodoc is the external document model: the JSON request
// document described in spec §6, the three-pass catalogue loader built
// from it, and the response objects the stats facade / map renderer
// feed back into. It is the only package that knows about the wire
// format; everything below it works in terms of catalogue, router and
// svgmap types.
package iodoc

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ErrMalformed wraps every structural problem with a decoded Document:
// invalid JSON, a field of the wrong JSON type, or (after wrapping) a
// catalogue.Err* raised while filling the catalogue. A missing field is
// not reported by itself; it decodes to its zero value.
var ErrMalformed = errors.New("iodoc: malformed input document")

// baseRequestEnvelope is the shared shape of a base_requests entry,
// decoded far enough to dispatch on Type.
type baseRequestEnvelope struct {
	Type      string           `json:"type"`
	Name      string           `json:"name"`
	Latitude  float64          `json:"latitude"`
	Longitude float64          `json:"longitude"`
	Distances map[string]int64 `json:"road_distances"`
	Stops     []string         `json:"stops"`
	IsRound   bool             `json:"is_roundtrip"`
}

// StatRequestEnvelope is one entry of stat_requests, decoded far enough
// to dispatch on Type; From/To are present only for Route requests.
type StatRequestEnvelope struct {
	ID   int64  `json:"id"`
	Type string `json:"type"`
	Name string `json:"name"`
	From string `json:"from"`
	To   string `json:"to"`
}

// RenderSettings mirrors the render_settings section of the document.
// Nil (unset) fields are filled from svgmap.DefaultSettings by
// ResolveRenderSettings.
type RenderSettings struct {
	Width         *float64 `json:"width" yaml:"width"`
	Height        *float64 `json:"height" yaml:"height"`
	Padding       *float64 `json:"padding" yaml:"padding"`
	StopRadius    *float64 `json:"stop_radius" yaml:"stop_radius"`
	LineWidth     *float64 `json:"line_width" yaml:"line_width"`
	StopLabelFont *float64 `json:"stop_label_font_size" yaml:"stop_label_font_size"`
	StopLabelDX   *float64 `json:"stop_label_offset_x" yaml:"stop_label_offset_x"`
	StopLabelDY   *float64 `json:"stop_label_offset_y" yaml:"stop_label_offset_y"`
	BusLabelFont  *float64 `json:"bus_label_font_size" yaml:"bus_label_font_size"`
	BusLabelDX    *float64 `json:"bus_label_offset_x" yaml:"bus_label_offset_x"`
	BusLabelDY    *float64 `json:"bus_label_offset_y" yaml:"bus_label_offset_y"`
	UnderlayColor *string  `json:"underlayer_color" yaml:"underlayer_color"`
	UnderlayWidth *float64 `json:"underlayer_width" yaml:"underlayer_width"`
	Palette       []string `json:"color_palette" yaml:"color_palette"`
}

// RoutingSettings mirrors the routing_settings section of the document.
type RoutingSettings struct {
	BusWaitTime int64   `json:"bus_wait_time" yaml:"bus_wait_time"`
	BusVelocity float64 `json:"bus_velocity" yaml:"bus_velocity"`
}

// Document is the fully decoded request document.
type Document struct {
	BaseRequests    []baseRequestEnvelope `json:"base_requests"`
	RenderSettings  *RenderSettings       `json:"render_settings"`
	RoutingSettings *RoutingSettings      `json:"routing_settings"`
	StatRequests    []StatRequestEnvelope `json:"stat_requests"`
}

// Load decodes a Document from r. A structurally invalid document (bad
// JSON, or a field of the wrong type) yields an error wrapping
// ErrMalformed.
func Load(r io.Reader) (*Document, error) {
	var doc Document
	dec := json.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	return &doc, nil
}
