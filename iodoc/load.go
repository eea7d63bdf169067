package iodoc

import (
	"fmt"

	"github.com/busgraph/transitgraph/catalogue"
	"github.com/busgraph/transitgraph/geo"
)

const (
	typeStop = "Stop"
	typeBus  = "Bus"
)

// FillCatalogue performs the three-pass load described in SPEC_FULL.md
// §4.7: every stop is added first, then every directional distance
// override, then every bus. This ordering means a bus or a distance
// override may reference a stop declared anywhere in doc.BaseRequests,
// regardless of array position, as long as it is a stop at all.
//
// Any failure (duplicate name, unknown reference, malformed circular
// route) is fatal and wraps the originating catalogue error with
// ErrMalformed; cat is left in a partially-filled state in that case,
// matching the "construction errors are fatal, abort the run" policy of
// spec §7 — callers that hit an error here are expected to discard cat
// and exit, not to continue loading.
func FillCatalogue(doc *Document, cat *catalogue.Catalogue) error {
	for _, req := range doc.BaseRequests {
		if req.Type != typeStop {
			continue
		}
		if _, err := cat.AddStop(req.Name, geo.New(req.Latitude, req.Longitude)); err != nil {
			return fmt.Errorf("%w: %w", ErrMalformed, err)
		}
	}

	for _, req := range doc.BaseRequests {
		if req.Type != typeStop {
			continue
		}
		for other, meters := range req.Distances {
			if err := cat.SetDistance(req.Name, other, meters); err != nil {
				return fmt.Errorf("%w: %w", ErrMalformed, err)
			}
		}
	}

	for _, req := range doc.BaseRequests {
		if req.Type != typeBus {
			continue
		}
		if _, err := cat.AddBus(req.Name, req.Stops, req.IsRound); err != nil {
			return fmt.Errorf("%w: %w", ErrMalformed, err)
		}
	}

	return nil
}
