package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"sidingquote/services"
)

// QuoteResponse is the full calculation result returned by the quote API.
type QuoteResponse struct {
	Inputs    services.QuoteInputs    `json:"inputs"`
	Totals    services.Totals         `json:"totals"`
	LineItems []services.LineItem     `json:"lineItems"`
	Discounts services.DiscountResult `json:"discounts"`
}

// loadCatalog fetches the fee schedule and product catalog in one place so
// every quoting handler prices against the same source.
func loadCatalog(app *pocketbase.PocketBase) (services.PriceTable, services.ProductCatalog, error) {
	prices, err := services.LoadPriceTable(app)
	if err != nil {
		return nil, nil, err
	}
	products, err := services.LoadProducts(app)
	if err != nil {
		return nil, nil, err
	}
	return prices, products, nil
}

// bindQuoteInputs decodes the request body over a defaulted QuoteInputs so
// omitted fields keep their defaults.
func bindQuoteInputs(e *core.RequestEvent) (services.QuoteInputs, error) {
	in := services.NewQuoteInputs()
	if err := e.BindBody(&in); err != nil {
		return in, err
	}
	return in, nil
}

// HandleQuoteCompute handles POST /api/quote. It prices the submitted
// inputs and returns totals, line items, and payment options.
func HandleQuoteCompute(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		in, err := bindQuoteInputs(e)
		if err != nil {
			return e.String(http.StatusBadRequest, "Invalid request body")
		}

		prices, products, err := loadCatalog(app)
		if err != nil {
			log.Printf("quote: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to load pricing data")
		}

		totals := services.ComputeTotals(in, prices, products)

		return e.JSON(http.StatusOK, QuoteResponse{
			Inputs:    in,
			Totals:    totals,
			LineItems: services.GenerateLineItems(in, prices, products),
			Discounts: services.ComputeDiscounts(totals.GrandTotal, in.PayWithCheck, in.IsMilitary),
		})
	}
}
