package docbrand

import (
	"context"
	"fmt"
	"strconv"

	"github.com/freightdocs/go-docbrand/internal/assemble"
)

// Stop is one scheduled stop on a route.
type Stop struct {
	Name    string
	Address string
	Window  string // appointment window, e.g. "08:00-10:00"
	Action  string // "Pickup" or "Delivery"
}

// RouteSheet is the domain object for the route-document facade.
type RouteSheet struct {
	RouteID      string
	DocumentID   string // minted when empty
	Date         string
	Driver       string
	Truck        string
	Trailer      string
	Origin       string
	Destination  string
	TotalMiles   float64
	Stops        []Stop
	Instructions string // raw markup; a default line is used when empty
}

// RenderRouteSheet renders a driver-facing route document. On top of the
// shared pipeline it adds a route overview metrics grid and a stop-by-stop
// delivery list between header and body. Theme defaults to "modern";
// route sheets carry no table of contents or signature page.
func (r *Renderer) RenderRouteSheet(ctx context.Context, rs RouteSheet, opts RenderOptions) (*RenderedDocument, error) {
	if rs.DocumentID == "" {
		rs.DocumentID = mintDocumentID("RTE")
	}

	body := rs.Instructions
	if body == "" {
		body = "No special instructions for this route."
	}

	if opts.ThemeName == "" {
		opts.ThemeName = "modern"
	}
	opts.IncludeTableOfContents = false
	opts.IncludeSignaturePage = false
	opts.CustomVariables = layerVariables(opts.CustomVariables, map[string]string{
		"route_id":    rs.RouteID,
		"route_date":  rs.Date,
		"driver":      rs.Driver,
		"truck":       rs.Truck,
		"trailer":     rs.Trailer,
		"origin":      rs.Origin,
		"destination": rs.Destination,
	})

	return r.render(ctx, DocumentInput{
		RawContent:    body,
		Title:         "Route Sheet " + rs.RouteID,
		DocumentID:    rs.DocumentID,
		EffectiveDate: rs.Date,
	}, opts, routeCards(rs))
}

// routeCards builds the overview grid and the stop list.
func routeCards(rs RouteSheet) []assemble.Card {
	overview := assemble.Card{
		Title: "Route Overview",
		Metrics: []assemble.Metric{
			{Label: "Route", Value: rs.RouteID},
			{Label: "Date", Value: rs.Date},
			{Label: "Driver", Value: rs.Driver},
			{Label: "Truck", Value: rs.Truck},
			{Label: "Trailer", Value: rs.Trailer},
			{Label: "Origin", Value: rs.Origin},
			{Label: "Destination", Value: rs.Destination},
			{Label: "Total Miles", Value: strconv.FormatFloat(rs.TotalMiles, 'f', 1, 64)},
			{Label: "Stops", Value: strconv.Itoa(len(rs.Stops))},
		},
	}

	if len(rs.Stops) == 0 {
		return []assemble.Card{overview}
	}

	stops := assemble.Card{Title: "Stops"}
	for i, s := range rs.Stops {
		left := fmt.Sprintf("%d. %s", i+1, s.Name)
		if s.Action != "" {
			left += " (" + s.Action + ")"
		}
		right := s.Address
		if s.Window != "" {
			right += " — " + s.Window
		}
		stops.Pairs = append(stops.Pairs, assemble.PairRow{Left: left, Right: right})
	}

	return []assemble.Card{overview, stops}
}
