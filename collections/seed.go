package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// ── Definition structs ───────────────────────────────────────────────────

type productDef struct {
	code      string
	name      string
	price     float64
	sortOrder int
}

type rateDef struct {
	code     string
	rate     float64
	unit     string
	category string
}

// productDefs is the seeded siding catalog, in display order. Prices
// mirror services.DefaultProducts; the collection is what estimators
// edit after deploy.
var productDefs = []productDef{
	{code: "quest_046", name: "Quest (.046)", price: 590, sortOrder: 1},
	{code: "carvedwood_044", name: "Carvedwood 44 (.044)", price: 525, sortOrder: 2},
	{code: "structure_insulated", name: "Structure/Prodigy Insulated (.046)", price: 810, sortOrder: 3},
	{code: "board_batten", name: "Board & Batten", price: 700, sortOrder: 4},
	{code: "shake", name: "Cedar Discovery Shake", price: 870, sortOrder: 5},
	{code: "tando", name: "TandoStone Composite", price: 1500, sortOrder: 6},
}

// rateDefs is the seeded fee schedule. Rates mirror
// services.DefaultPriceTable.
var rateDefs = []rateDef{
	{code: "fan_fold", rate: 50, unit: "sq", category: "siding"},
	{code: "remove_dispose", rate: 50, unit: "sq", category: "siding"},
	{code: "fullback", rate: 120, unit: "sq", category: "siding"},
	{code: "inside_corner", rate: 30, unit: "ea", category: "siding"},
	{code: "outside_corner", rate: 30, unit: "ea", category: "siding"},

	{code: "soffit_over_16", rate: 20, unit: "lf", category: "soffit_fascia"},
	{code: "soffit_under_16", rate: 19, unit: "lf", category: "soffit_fascia"},
	{code: "fascia", rate: 8, unit: "lf", category: "soffit_fascia"},
	{code: "frieze", rate: 6, unit: "lf", category: "soffit_fascia"},
	{code: "porch_beam", rate: 16, unit: "lf", category: "soffit_fascia"},
	{code: "soldier_row", rate: 9, unit: "lf", category: "soffit_fascia"},
	{code: "porch_ceiling", rate: 520, unit: "ea", category: "soffit_fascia"},
	{code: "bird_box", rate: 30, unit: "ea", category: "soffit_fascia"},
	{code: "extra_bend", rate: 2, unit: "lf", category: "soffit_fascia"},
	{code: "remove_soffit", rate: 4, unit: "lf", category: "soffit_fascia"},

	{code: "window_wrap_wood", rate: 125, unit: "ea", category: "wraps"},
	{code: "window_wrap_metal", rate: 152, unit: "ea", category: "wraps"},
	{code: "door_wrap", rate: 150, unit: "ea", category: "wraps"},
	{code: "transom_wrap_wood", rate: 125, unit: "ea", category: "wraps"},
	{code: "transom_wrap_metal", rate: 152, unit: "ea", category: "wraps"},
	{code: "garage_single", rate: 175, unit: "ea", category: "wraps"},
	{code: "garage_double", rate: 250, unit: "ea", category: "wraps"},

	{code: "new_gutters", rate: 16, unit: "lf", category: "gutters"},
	{code: "gutter_cap", rate: 8, unit: "lf", category: "gutters"},
	{code: "metal_screen", rate: 3.5, unit: "lf", category: "gutters"},
	{code: "remove_gutters", rate: 2, unit: "lf", category: "gutters"},
	{code: "rehang_gutters", rate: 2, unit: "lf", category: "gutters"},

	{code: "vent", rate: 140, unit: "ea", category: "accessories"},
	{code: "cover_utilities", rate: 140, unit: "ea", category: "accessories"},
	{code: "light_panel", rate: 30, unit: "ea", category: "accessories"},
	{code: "receptacle", rate: 19, unit: "ea", category: "accessories"},
	{code: "faucet", rate: 19, unit: "ea", category: "accessories"},
	{code: "dryer_vent", rate: 37, unit: "ea", category: "accessories"},
	{code: "shutters", rate: 250, unit: "pair", category: "accessories"},
	{code: "columns_8ft", rate: 350, unit: "ea", category: "accessories"},
	{code: "columns_10ft", rate: 400, unit: "ea", category: "accessories"},

	{code: "rotten_wood", rate: 3, unit: "lf", category: "other"},
	{code: "osb_sheet", rate: 135, unit: "ea", category: "other"},
	{code: "fur_out", rate: 250, unit: "ea", category: "other"},
	{code: "house_wrap", rate: 0, unit: "roll", category: "other"},
	{code: "cleanup", rate: 250, unit: "flat", category: "other"},
	{code: "trailer", rate: 150, unit: "flat", category: "other"},
}

// Seed populates the product catalog and fee schedule. It is safe to
// call on every startup because it returns early when products already
// exist.
func Seed(app *pocketbase.PocketBase) error {
	productsCol, err := app.FindCollectionByNameOrId("siding_products")
	if err != nil {
		return fmt.Errorf("seed: could not find siding_products collection: %w", err)
	}
	existing, err := app.FindAllRecords(productsCol)
	if err != nil {
		return fmt.Errorf("seed: could not query siding_products: %w", err)
	}
	if len(existing) > 0 {
		return nil // already seeded
	}

	log.Println("seed: siding_products collection is empty – inserting seed data …")

	ratesCol, err := app.FindCollectionByNameOrId("price_rates")
	if err != nil {
		return fmt.Errorf("seed: could not find price_rates collection: %w", err)
	}

	for _, d := range productDefs {
		r := core.NewRecord(productsCol)
		r.Set("code", d.code)
		r.Set("name", d.name)
		r.Set("price", d.price)
		r.Set("sort_order", d.sortOrder)
		if err := app.Save(r); err != nil {
			return fmt.Errorf("seed: save product %q: %w", d.code, err)
		}
	}

	for _, d := range rateDefs {
		r := core.NewRecord(ratesCol)
		r.Set("code", d.code)
		r.Set("rate", d.rate)
		r.Set("unit", d.unit)
		r.Set("category", d.category)
		if err := app.Save(r); err != nil {
			return fmt.Errorf("seed: save rate %q: %w", d.code, err)
		}
	}

	log.Printf("seed: inserted %d products and %d rates\n", len(productDefs), len(rateDefs))
	return nil
}
