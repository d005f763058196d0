package collections_test

import (
	"testing"

	"sidingquote/collections"
	"sidingquote/testhelpers"

	"github.com/pocketbase/pocketbase/core"
)

// expectedCollections is the full list of collections that Setup() must create.
var expectedCollections = []string{
	"siding_products",
	"price_rates",
}

func TestSetup_AllCollectionsExist(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	for _, name := range expectedCollections {
		col, err := app.FindCollectionByNameOrId(name)
		if err != nil {
			t.Errorf("collection %q not found after Setup(): %v", name, err)
			continue
		}
		if col.Name != name {
			t.Errorf("expected collection name %q, got %q", name, col.Name)
		}
	}
}

func TestSetup_Idempotent(t *testing.T) {
	app := testhelpers.NewTestApp(t) // Setup() already called once via NewTestApp

	// Collect IDs from first run
	ids := make(map[string]string)
	for _, name := range expectedCollections {
		col, _ := app.FindCollectionByNameOrId(name)
		ids[name] = col.Id
	}

	// Run Setup() again
	collections.Setup(app)

	// IDs should not change
	for _, name := range expectedCollections {
		col, err := app.FindCollectionByNameOrId(name)
		if err != nil {
			t.Errorf("collection %q missing after second Setup(): %v", name, err)
			continue
		}
		if col.Id != ids[name] {
			t.Errorf("collection %q id changed after second Setup(): %s -> %s", name, ids[name], col.Id)
		}
	}
}

func TestSetup_SidingProductsFields(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	col, _ := app.FindCollectionByNameOrId("siding_products")

	fields := []string{"code", "name", "price", "sort_order", "created", "updated"}
	for _, f := range fields {
		if col.Fields.GetByName(f) == nil {
			t.Errorf("siding_products: missing field %q", f)
		}
	}
}

func TestSetup_PriceRatesFields(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	col, _ := app.FindCollectionByNameOrId("price_rates")

	fields := []string{"code", "rate", "unit", "category", "created", "updated"}
	for _, f := range fields {
		if col.Fields.GetByName(f) == nil {
			t.Errorf("price_rates: missing field %q", f)
		}
	}

	// category should be a select with the six billing categories
	catField := col.Fields.GetByName("category")
	if sf, ok := catField.(*core.SelectField); ok {
		if len(sf.Values) != 6 {
			t.Errorf("price_rates.category: expected 6 values, got %d", len(sf.Values))
		}
	} else {
		t.Errorf("category field is not a SelectField")
	}
}

func TestSetup_UniqueProductCode(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	testhelpers.CreateTestProduct(t, app, "dup_code", "First", 500)

	col, _ := app.FindCollectionByNameOrId("siding_products")
	record := core.NewRecord(col)
	record.Set("code", "dup_code")
	record.Set("name", "Second")
	record.Set("price", 600)
	if err := app.Save(record); err == nil {
		t.Error("expected unique index violation for duplicate product code")
	}
}
