package services

import (
	"math"
	"testing"
)

func findItem(items []LineItem, name string) (LineItem, bool) {
	for _, it := range items {
		if it.Name == name {
			return it, true
		}
	}
	return LineItem{}, false
}

func TestGenerateLineItemsMatchesTotals(t *testing.T) {
	prices := DefaultPriceTable()
	products := DefaultProducts()

	in := NewQuoteInputs()
	in.AdjustedSquares = 18
	in.IncludeRemoveDispose = true
	in.InsideCorners = 6
	in.OutsideCorners = 9
	in.SoffitLf = 140
	in.SoffitWidthOver16 = true
	in.FasciaLf = 160
	in.FriezeLf = 40
	in.WrapsAreMetal = true
	in.WindowWrapCount = 12
	in.DoorWrapCount = 2
	in.GarageDoubleCount = 1
	in.NewGutterLf = 150
	in.RehangGutterLf = 20
	in.VentCount = 2
	in.ShutterPairs = 1
	in.HouseWrapRolls = 3
	in.TrailerNeeded = true
	in.ExtraLabor = 650

	items := GenerateLineItems(in, prices, products)
	totals := ComputeTotals(in, prices, products)

	var sum float64
	for _, it := range items {
		sum += it.Total
	}
	if math.Abs(sum-totals.GrandTotal) > 0.001 {
		t.Errorf("line item sum = %v, GrandTotal = %v", sum, totals.GrandTotal)
	}
}

func TestGenerateLineItemsZeroQuantitiesOmitted(t *testing.T) {
	prices := DefaultPriceTable()
	products := DefaultProducts()

	in := NewQuoteInputs()
	in.IncludeFanFold = false

	items := GenerateLineItems(in, prices, products)
	if len(items) != 0 {
		t.Errorf("empty quote produced %d line items: %v", len(items), items)
	}
}

func TestGenerateLineItems(t *testing.T) {
	prices := DefaultPriceTable()
	products := DefaultProducts()

	t.Run("siding row uses catalog display name", func(t *testing.T) {
		in := NewQuoteInputs()
		in.SidingProduct = "quest_046"
		in.AdjustedSquares = 10

		items := GenerateLineItems(in, prices, products)
		it, ok := findItem(items, "Quest (.046) Siding")
		if !ok {
			t.Fatalf("no siding row in %v", items)
		}
		if it.Qty != 10 || it.Rate != 590 || it.Total != 5900 {
			t.Errorf("siding row = %+v", it)
		}
	})

	t.Run("fan fold rides adjusted squares", func(t *testing.T) {
		in := NewQuoteInputs()
		in.AdjustedSquares = 10

		items := GenerateLineItems(in, prices, products)
		it, ok := findItem(items, "Fan Fold Insulation")
		if !ok {
			t.Fatal("no fan fold row")
		}
		if it.Total != 500 {
			t.Errorf("fan fold total = %v, want 500", it.Total)
		}
	})

	t.Run("rehang produces remove and rehang rows", func(t *testing.T) {
		in := NewQuoteInputs()
		in.IncludeFanFold = false
		in.RehangGutterLf = 25

		items := GenerateLineItems(in, prices, products)
		rm, ok := findItem(items, "Remove Existing Gutters")
		if !ok {
			t.Fatal("no remove row")
		}
		rh, ok := findItem(items, "Rehang Gutters")
		if !ok {
			t.Fatal("no rehang row")
		}
		if rm.Total != 50 || rh.Total != 50 {
			t.Errorf("remove = %v, rehang = %v, want 50 each", rm.Total, rh.Total)
		}
	})

	t.Run("wrap rows labeled by material", func(t *testing.T) {
		in := NewQuoteInputs()
		in.IncludeFanFold = false
		in.WrapsAreMetal = true
		in.WindowWrapCount = 1
		in.TransomWrapCount = 1
		in.DoorWrapCount = 1

		items := GenerateLineItems(in, prices, products)
		if _, ok := findItem(items, "Window Wraps (Metal)"); !ok {
			t.Error("missing metal window wrap row")
		}
		if _, ok := findItem(items, "Transom Wraps (Metal)"); !ok {
			t.Error("missing metal transom wrap row")
		}
		it, ok := findItem(items, "Door Wraps")
		if !ok {
			t.Fatal("missing door wrap row")
		}
		if it.Rate != 150 {
			t.Errorf("door wrap rate = %v, want flat 150", it.Rate)
		}
	})

	t.Run("house wrap row carries zero charge", func(t *testing.T) {
		in := NewQuoteInputs()
		in.IncludeFanFold = false
		in.HouseWrapRolls = 2

		items := GenerateLineItems(in, prices, products)
		it, ok := findItem(items, "House Wrap (incl)")
		if !ok {
			t.Fatal("no house wrap row")
		}
		if it.Qty != 2 || it.Total != 0 {
			t.Errorf("house wrap row = %+v", it)
		}
	})

	t.Run("cleanup gated on physical work", func(t *testing.T) {
		in := NewQuoteInputs()
		in.IncludeFanFold = false
		in.ShutterPairs = 2
		in.TrailerNeeded = true

		items := GenerateLineItems(in, prices, products)
		if _, ok := findItem(items, "Disposal & Cleanup"); ok {
			t.Error("cleanup row present without siding, soffit, or fascia work")
		}
		if _, ok := findItem(items, "Trailer"); ok {
			t.Error("trailer row present without cleanup gate")
		}

		in.SoffitLf = 10
		items = GenerateLineItems(in, prices, products)
		cl, ok := findItem(items, "Disposal & Cleanup")
		if !ok {
			t.Fatal("no cleanup row with soffit work present")
		}
		if cl.Total != 250 {
			t.Errorf("cleanup total = %v, want 250", cl.Total)
		}
		tr, ok := findItem(items, "Trailer")
		if !ok {
			t.Fatal("no trailer row")
		}
		if tr.Total != 150 {
			t.Errorf("trailer total = %v, want 150", tr.Total)
		}
	})

	t.Run("extra labor is a flat row", func(t *testing.T) {
		in := NewQuoteInputs()
		in.IncludeFanFold = false
		in.ExtraLabor = 425

		items := GenerateLineItems(in, prices, products)
		it, ok := findItem(items, "Additional Labor")
		if !ok {
			t.Fatal("no extra labor row")
		}
		if it.Qty != 1 || it.Rate != 425 || it.Total != 425 {
			t.Errorf("extra labor row = %+v", it)
		}
	})
}
