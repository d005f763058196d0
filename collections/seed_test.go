package collections_test

import (
	"testing"

	"sidingquote/collections"
	"sidingquote/services"
	"sidingquote/testhelpers"
)

func TestSeed_CreatesData(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	if err := collections.Seed(app); err != nil {
		t.Fatalf("Seed() error: %v", err)
	}

	productsCol, _ := app.FindCollectionByNameOrId("siding_products")
	products, err := app.FindAllRecords(productsCol)
	if err != nil {
		t.Fatalf("query siding_products error: %v", err)
	}
	if len(products) != 6 {
		t.Fatalf("expected 6 products, got %d", len(products))
	}

	ratesCol, _ := app.FindCollectionByNameOrId("price_rates")
	rates, _ := app.FindAllRecords(ratesCol)
	if len(rates) == 0 {
		t.Fatal("expected rates to be created")
	}

	// Every seeded rate must match the built-in schedule, and cover it
	// completely.
	builtIn := services.DefaultPriceTable()
	seen := make(map[string]bool)
	for _, r := range rates {
		code := r.GetString("code")
		seen[code] = true
		want, ok := builtIn[code]
		if !ok {
			t.Errorf("seeded rate %q has no built-in counterpart", code)
			continue
		}
		if got := r.GetFloat("rate"); got != want {
			t.Errorf("seeded rate %q = %v, built-in is %v", code, got, want)
		}
	}
	for code := range builtIn {
		if !seen[code] {
			t.Errorf("built-in fee code %q missing from seed", code)
		}
	}
}

func TestSeed_ProductPricesMatchBuiltIn(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	if err := collections.Seed(app); err != nil {
		t.Fatalf("Seed() error: %v", err)
	}

	builtIn := services.DefaultProducts()
	productsCol, _ := app.FindCollectionByNameOrId("siding_products")
	products, _ := app.FindAllRecords(productsCol)
	for _, r := range products {
		code := r.GetString("code")
		want, ok := builtIn[code]
		if !ok {
			t.Errorf("seeded product %q has no built-in counterpart", code)
			continue
		}
		if got := r.GetFloat("price"); got != want.Price {
			t.Errorf("seeded product %q price = %v, built-in is %v", code, got, want.Price)
		}
		if got := r.GetString("name"); got != want.Name {
			t.Errorf("seeded product %q name = %q, built-in is %q", code, got, want.Name)
		}
	}
}

func TestSeed_Idempotent(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	if err := collections.Seed(app); err != nil {
		t.Fatalf("first Seed() error: %v", err)
	}
	if err := collections.Seed(app); err != nil {
		t.Fatalf("second Seed() error: %v", err)
	}

	productsCol, _ := app.FindCollectionByNameOrId("siding_products")
	products, _ := app.FindAllRecords(productsCol)
	if len(products) != 6 {
		t.Errorf("expected 6 products after idempotent seed, got %d", len(products))
	}
}
