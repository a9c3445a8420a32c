package docbrand

import (
	"context"

	"github.com/freightdocs/go-docbrand/internal/assemble"
)

// Charge is one line item on a rate confirmation.
type Charge struct {
	Description string
	Amount      string // preformatted, e.g. "$1,850.00"
}

// RateConfirmation is the domain object for the rate-confirmation facade.
type RateConfirmation struct {
	LoadID       string
	DocumentID   string // minted when empty
	Carrier      Party  // signs as counterparty
	Shipper      string
	Consignee    string
	PickupDate   string
	DeliveryDate string
	Equipment    string
	Charges      []Charge
	TotalRate    string // preformatted
	Terms        string // raw markup; standard terms are used when empty
}

// standardRateConfTerms is the fallback body when no terms text is supplied.
const standardRateConfTerms = `**IMPORTANT:** This rate confirmation is binding once signed by the carrier.

Detention, layover, and accessorial charges require written approval from {{company_name}} before invoicing.

**NOTICE:** Double brokering voids this agreement and all associated payment obligations.`

// RenderRateConfirmation renders a signable rate confirmation. It adds a
// load summary grid and a charge breakdown between header and body, defaults
// the theme to "professional", and always includes the signature page for
// the carrier countersignature.
func (r *Renderer) RenderRateConfirmation(ctx context.Context, rc RateConfirmation, opts RenderOptions) (*RenderedDocument, error) {
	if rc.DocumentID == "" {
		rc.DocumentID = mintDocumentID("RC")
	}

	body := rc.Terms
	if body == "" {
		body = standardRateConfTerms
	}

	if opts.ThemeName == "" {
		opts.ThemeName = DefaultThemeName
	}
	opts.IncludeTableOfContents = false
	opts.IncludeSignaturePage = true
	opts.CustomVariables = layerVariables(opts.CustomVariables, map[string]string{
		"load_id":       rc.LoadID,
		"carrier_name":  rc.Carrier.Name,
		"shipper":       rc.Shipper,
		"consignee":     rc.Consignee,
		"pickup_date":   rc.PickupDate,
		"delivery_date": rc.DeliveryDate,
		"equipment":     rc.Equipment,
		"total_rate":    rc.TotalRate,
	})

	return r.render(ctx, DocumentInput{
		RawContent:    body,
		Title:         "Rate Confirmation " + rc.LoadID,
		DocumentID:    rc.DocumentID,
		EffectiveDate: rc.PickupDate,
		Counterparty:  rc.Carrier,
	}, opts, rateConfCards(rc))
}

// rateConfCards builds the load summary grid and the charge breakdown.
func rateConfCards(rc RateConfirmation) []assemble.Card {
	summary := assemble.Card{
		Title: "Load Summary",
		Metrics: []assemble.Metric{
			{Label: "Load", Value: rc.LoadID},
			{Label: "Equipment", Value: rc.Equipment},
			{Label: "Pickup", Value: rc.PickupDate},
			{Label: "Delivery", Value: rc.DeliveryDate},
			{Label: "Shipper", Value: rc.Shipper},
			{Label: "Consignee", Value: rc.Consignee},
		},
	}

	charges := assemble.Card{Title: "Charges"}
	for _, c := range rc.Charges {
		charges.Pairs = append(charges.Pairs, assemble.PairRow{Left: c.Description, Right: c.Amount})
	}
	if rc.TotalRate != "" {
		charges.Pairs = append(charges.Pairs, assemble.PairRow{Left: "Total", Right: rc.TotalRate})
	}

	if len(charges.Pairs) == 0 {
		return []assemble.Card{summary}
	}
	return []assemble.Card{summary, charges}
}
