package services

import "testing"

func TestBuildQuoteDocument(t *testing.T) {
	prices := DefaultPriceTable()
	products := DefaultProducts()

	in := NewQuoteInputs()
	in.CustomerName = "Jane Miller"
	in.AdjustedSquares = 20
	in.PayWithCheck = true

	doc := BuildQuoteDocument(in, prices, products)

	if doc.CustomerName != "Jane Miller" {
		t.Errorf("CustomerName = %q", doc.CustomerName)
	}
	if doc.ProductName != "Carvedwood 44 (.044)" {
		t.Errorf("ProductName = %q", doc.ProductName)
	}
	if doc.QuoteDate == "" {
		t.Error("QuoteDate not set")
	}
	if len(doc.Items) == 0 {
		t.Fatal("no line items generated")
	}

	// 20 * (525 + 50) + 250 cleanup.
	if doc.Totals.GrandTotal != 11750 {
		t.Errorf("GrandTotal = %v, want 11750", doc.Totals.GrandTotal)
	}

	// Discounts derive from the grand total.
	if doc.Discounts.GrandTotal != doc.Totals.GrandTotal {
		t.Errorf("discount base %v differs from grand total %v", doc.Discounts.GrandTotal, doc.Totals.GrandTotal)
	}
	if doc.Discounts.CashDiscountAmount != 235 {
		t.Errorf("CashDiscountAmount = %v, want 2%% of 11750 = 235", doc.Discounts.CashDiscountAmount)
	}

	var sum float64
	for _, it := range doc.Items {
		sum += it.Total
	}
	if sum != doc.Totals.GrandTotal {
		t.Errorf("line items sum to %v, totals say %v", sum, doc.Totals.GrandTotal)
	}
}

func TestBuildQuoteDocumentUnknownProduct(t *testing.T) {
	in := NewQuoteInputs()
	in.SidingProduct = "mystery_panel"
	in.AdjustedSquares = 1
	in.IncludeFanFold = false

	doc := BuildQuoteDocument(in, DefaultPriceTable(), DefaultProducts())

	// Unknown codes pass through as the display name and price at the
	// default rate.
	if doc.ProductName != "mystery_panel" {
		t.Errorf("ProductName = %q", doc.ProductName)
	}
	if doc.Totals.SidingTotal != 525 {
		t.Errorf("SidingTotal = %v, want default 525", doc.Totals.SidingTotal)
	}
}
