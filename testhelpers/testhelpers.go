// Package testhelpers provides utilities for testing PocketBase-based applications.
package testhelpers

import (
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"sidingquote/collections"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup to create all tables.
// The temporary directory is cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	collections.Setup(app)

	return app
}

// NewSeededTestApp creates a test app with the product catalog and fee
// schedule seeded, for tests that exercise the collection-backed pricing
// path.
func NewSeededTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	app := NewTestApp(t)
	if err := collections.Seed(app); err != nil {
		t.Fatalf("failed to seed test app: %v", err)
	}
	return app
}

// CreateTestProduct creates a siding product record and returns it.
func CreateTestProduct(t *testing.T, app *pocketbase.PocketBase, code, name string, price float64) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("siding_products")
	if err != nil {
		t.Fatalf("failed to find siding_products collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("code", code)
	record.Set("name", name)
	record.Set("price", price)
	record.Set("sort_order", 1)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test product: %v", err)
	}

	return record
}

// CreateTestRate creates a price_rates record and returns it.
func CreateTestRate(t *testing.T, app *pocketbase.PocketBase, code string, rate float64, category string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("price_rates")
	if err != nil {
		t.Fatalf("failed to find price_rates collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("code", code)
	record.Set("rate", rate)
	record.Set("unit", "ea")
	record.Set("category", category)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test rate: %v", err)
	}

	return record
}
