package handlers

import (
	"log"
	"net/http"
	"sort"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"sidingquote/services"
)

// ProductEntry is one row of the product catalog API response.
type ProductEntry struct {
	Code  string  `json:"code"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// RateEntry is one row of the fee schedule API response.
type RateEntry struct {
	Code string  `json:"code"`
	Rate float64 `json:"rate"`
}

// HandleProductList handles GET /api/products and returns the siding
// product catalog sorted by code.
func HandleProductList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		catalog, err := services.LoadProducts(app)
		if err != nil {
			log.Printf("products: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to load products")
		}

		entries := make([]ProductEntry, 0, len(catalog))
		for code, p := range catalog {
			entries = append(entries, ProductEntry{Code: code, Name: p.Name, Price: p.Price})
		}
		sort.Slice(entries, func(i, j int) bool { return entries[i].Code < entries[j].Code })

		return e.JSON(http.StatusOK, entries)
	}
}

// OptionsResponse lists the selectable profiles and colors.
type OptionsResponse struct {
	Profiles    []string               `json:"profiles"`
	ColorGroups []services.ColorGroup  `json:"colorGroups"`
	G8Colors    []services.ColorOption `json:"g8Colors"`
}

// HandleOptionList handles GET /api/options.
func HandleOptionList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		return e.JSON(http.StatusOK, OptionsResponse{
			Profiles:    services.Profiles,
			ColorGroups: services.SidingColorGroups(),
			G8Colors:    services.G8Colors(),
		})
	}
}

// HandleRateList handles GET /api/rates and returns the fee schedule
// sorted by code.
func HandleRateList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		table, err := services.LoadPriceTable(app)
		if err != nil {
			log.Printf("rates: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to load rates")
		}

		entries := make([]RateEntry, 0, len(table))
		for code, rate := range table {
			entries = append(entries, RateEntry{Code: code, Rate: rate})
		}
		sort.Slice(entries, func(i, j int) bool { return entries[i].Code < entries[j].Code })

		return e.JSON(http.StatusOK, entries)
	}
}
