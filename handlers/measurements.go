package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"sidingquote/services"
)

// MeasurementParseRequest carries the pasted text of a measurement report.
type MeasurementParseRequest struct {
	Text string `json:"text"`
}

// MeasurementParseResponse returns the extracted measurements alongside a
// set of quote inputs with those measurements applied to the defaults.
type MeasurementParseResponse struct {
	Measurements services.Measurements `json:"measurements"`
	Inputs       services.QuoteInputs  `json:"inputs"`
}

// HandleMeasurementParse handles POST /api/measurements. It extracts
// dimensions from pasted report text and maps them onto quote inputs.
func HandleMeasurementParse(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var req MeasurementParseRequest
		if err := e.BindBody(&req); err != nil {
			return e.String(http.StatusBadRequest, "Invalid request body")
		}
		if req.Text == "" {
			return e.String(http.StatusBadRequest, "Missing report text")
		}

		parsed := services.ParseMeasurementText(req.Text)

		in := services.NewQuoteInputs()
		services.ApplyMeasurements(&in, parsed)

		return e.JSON(http.StatusOK, MeasurementParseResponse{
			Measurements: parsed,
			Inputs:       in,
		})
	}
}

// QuickQuoteRequest pairs a measurement report with optional input
// overrides. Overrides are applied first so parsed measurements land on
// top of the chosen product and options.
type QuickQuoteRequest struct {
	Text   string               `json:"text"`
	Inputs services.QuoteInputs `json:"inputs"`
}

// HandleQuickQuote handles POST /api/quick-quote. It parses a measurement
// report and prices a full quote in one round trip.
func HandleQuickQuote(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		req := QuickQuoteRequest{Inputs: services.NewQuoteInputs()}
		if err := e.BindBody(&req); err != nil {
			return e.String(http.StatusBadRequest, "Invalid request body")
		}
		if req.Text == "" {
			return e.String(http.StatusBadRequest, "Missing report text")
		}

		parsed := services.ParseMeasurementText(req.Text)
		services.ApplyMeasurements(&req.Inputs, parsed)

		prices, products, err := loadCatalog(app)
		if err != nil {
			log.Printf("quick_quote: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to load pricing data")
		}

		totals := services.ComputeTotals(req.Inputs, prices, products)

		return e.JSON(http.StatusOK, QuoteResponse{
			Inputs:    req.Inputs,
			Totals:    totals,
			LineItems: services.GenerateLineItems(req.Inputs, prices, products),
			Discounts: services.ComputeDiscounts(totals.GrandTotal, req.Inputs.PayWithCheck, req.Inputs.IsMilitary),
		})
	}
}
