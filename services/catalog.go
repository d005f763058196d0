package services

import (
	"fmt"

	"github.com/pocketbase/pocketbase"
)

// LoadProducts reads the siding product catalog from the siding_products
// collection. An empty collection falls back to the built-in catalog so
// quoting keeps working on a fresh or damaged database.
func LoadProducts(app *pocketbase.PocketBase) (ProductCatalog, error) {
	col, err := app.FindCollectionByNameOrId("siding_products")
	if err != nil {
		return nil, fmt.Errorf("load products: find collection: %w", err)
	}
	records, err := app.FindAllRecords(col)
	if err != nil {
		return nil, fmt.Errorf("load products: query: %w", err)
	}
	if len(records) == 0 {
		return DefaultProducts(), nil
	}

	catalog := make(ProductCatalog, len(records))
	for _, r := range records {
		catalog[r.GetString("code")] = SidingProduct{
			Name:  r.GetString("name"),
			Price: r.GetFloat("price"),
		}
	}
	return catalog, nil
}

// LoadPriceTable reads the fee schedule from the price_rates collection,
// falling back to the built-in schedule when the collection is empty.
func LoadPriceTable(app *pocketbase.PocketBase) (PriceTable, error) {
	col, err := app.FindCollectionByNameOrId("price_rates")
	if err != nil {
		return nil, fmt.Errorf("load rates: find collection: %w", err)
	}
	records, err := app.FindAllRecords(col)
	if err != nil {
		return nil, fmt.Errorf("load rates: query: %w", err)
	}
	if len(records) == 0 {
		return DefaultPriceTable(), nil
	}

	table := make(PriceTable, len(records))
	for _, r := range records {
		table[r.GetString("code")] = r.GetFloat("rate")
	}
	return table, nil
}
