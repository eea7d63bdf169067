package iodoc

import (
	"encoding/json"
	"math"

	"github.com/busgraph/transitgraph/catalogue"
	"github.com/busgraph/transitgraph/router"
	"github.com/busgraph/transitgraph/stats"
	"github.com/busgraph/transitgraph/svgmap"
)

const notFoundMessage = "not found"

// ResponseItem is one entry of a Route response's Items array.
type ResponseItem struct {
	Type      string  `json:"type"`
	StopName  string  `json:"stop_name,omitempty"`
	Bus       string  `json:"bus,omitempty"`
	SpanCount int     `json:"span_count,omitempty"`
	Time      float64 `json:"time"`
}

// responseKind distinguishes the four query shapes a Response can carry
// so MarshalJSON knows which subset of fields is the external contract,
// independent of whether those fields happen to hold Go zero values.
type responseKind int

const (
	kindStop responseKind = iota
	kindBus
	kindRoute
	kindMap
)

// Response is the externally serializable answer to one stat request.
// Every field below is always populated for its query kind, including
// when the value is the Go zero value (an empty Buses slice, a zero
// Curvature, a zero TotalTime with no Items): MarshalJSON emits exactly
// the field set spec §6 documents for that kind, never dropping a
// required key just because its value happens to be empty or zero.
type Response struct {
	RequestID    int64
	ErrorMessage string

	kind responseKind

	Buses []string

	Curvature       float64
	RouteLength     int64
	StopCount       int
	UniqueStopCount int

	TotalTime float64
	Items     []ResponseItem

	Map string
}

// MarshalJSON emits the not-found shape if ErrorMessage is set,
// otherwise the shape matching r.kind. Buses and Items are expected to
// be non-nil (but possibly empty) whenever their kind applies, so they
// always marshal to "[]" rather than "null".
func (r Response) MarshalJSON() ([]byte, error) {
	if r.ErrorMessage != "" {
		return json.Marshal(struct {
			RequestID    int64  `json:"request_id"`
			ErrorMessage string `json:"error_message"`
		}{r.RequestID, r.ErrorMessage})
	}

	switch r.kind {
	case kindStop:
		return json.Marshal(struct {
			RequestID int64    `json:"request_id"`
			Buses     []string `json:"buses"`
		}{r.RequestID, r.Buses})
	case kindBus:
		return json.Marshal(struct {
			RequestID       int64   `json:"request_id"`
			Curvature       float64 `json:"curvature"`
			RouteLength     int64   `json:"route_length"`
			StopCount       int     `json:"stop_count"`
			UniqueStopCount int     `json:"unique_stop_count"`
		}{r.RequestID, r.Curvature, r.RouteLength, r.StopCount, r.UniqueStopCount})
	case kindRoute:
		return json.Marshal(struct {
			RequestID int64          `json:"request_id"`
			TotalTime float64        `json:"total_time"`
			Items     []ResponseItem `json:"items"`
		}{r.RequestID, r.TotalTime, r.Items})
	case kindMap:
		return json.Marshal(struct {
			RequestID int64  `json:"request_id"`
			Map       string `json:"map"`
		}{r.RequestID, r.Map})
	default:
		return json.Marshal(struct {
			RequestID    int64  `json:"request_id"`
			ErrorMessage string `json:"error_message"`
		}{r.RequestID, notFoundMessage})
	}
}

const roundTo = 1e6

// round6 rounds f to six decimal places, matching spec §4.4's numeric
// discipline for externally reported times.
func round6(f float64) float64 {
	return math.Round(f*roundTo) / roundTo
}

// Answer dispatches one stat request against cat/rtr/settings and
// returns its response object. req.Type values other than the four
// documented in spec §6 are treated the same as a query against a
// nonexistent name: a "not found" response, since the document loader
// already validates structure and an unrecognized query type can only
// come from a document the loader accepted but this dispatch does not
// understand.
func Answer(req StatRequestEnvelope, cat *catalogue.Catalogue, rtr *router.Router, settings svgmap.Settings) Response {
	switch req.Type {
	case "Stop":
		return answerStop(req, cat)
	case "Bus":
		return answerBus(req, cat)
	case "Route":
		return answerRoute(req, rtr)
	case "Map":
		return Response{RequestID: req.ID, kind: kindMap, Map: svgmap.Render(cat, settings)}
	default:
		return Response{RequestID: req.ID, ErrorMessage: notFoundMessage}
	}
}

func answerStop(req StatRequestEnvelope, cat *catalogue.Catalogue) Response {
	buses, ok := stats.StopQuery(cat, req.Name)
	if !ok {
		return Response{RequestID: req.ID, ErrorMessage: notFoundMessage}
	}

	return Response{RequestID: req.ID, kind: kindStop, Buses: buses}
}

func answerBus(req StatRequestEnvelope, cat *catalogue.Catalogue) Response {
	busStats, ok := stats.BusQuery(cat, req.Name)
	if !ok {
		return Response{RequestID: req.ID, ErrorMessage: notFoundMessage}
	}

	return Response{
		RequestID:       req.ID,
		kind:            kindBus,
		Curvature:       round6(busStats.Curvature),
		RouteLength:     busStats.RoadLength,
		StopCount:       busStats.StopsOnRoute,
		UniqueStopCount: busStats.UniqueStopCount,
	}
}

func answerRoute(req StatRequestEnvelope, rtr *router.Router) Response {
	it, ok := stats.RouteQuery(rtr, req.From, req.To)
	if !ok {
		return Response{RequestID: req.ID, ErrorMessage: notFoundMessage}
	}

	items := make([]ResponseItem, len(it.Activities))
	for i, a := range it.Activities {
		switch a.Kind {
		case router.Wait:
			items[i] = ResponseItem{Type: "Wait", StopName: a.Stop, Time: round6(a.Time)}
		case router.Ride:
			items[i] = ResponseItem{Type: "Bus", Bus: a.Bus, SpanCount: a.SpanCount, Time: round6(a.Time)}
		}
	}

	return Response{RequestID: req.ID, kind: kindRoute, TotalTime: round6(it.TotalTime), Items: items}
}
