package services

import "time"

// QuoteDocument holds everything the PDF and Excel renderers need for
// one quote: identity, selections, the itemized rows, totals, and both
// payment paths. Built once, rendered many ways.
type QuoteDocument struct {
	CustomerName    string
	PropertyAddress string
	PropertyID      string
	QuoteDate       string

	ProductName   string
	SidingProfile string
	SidingColor   string
	G8Color       string

	Items     []LineItem
	Totals    Totals
	Discounts DiscountResult
}

// BuildQuoteDocument assembles the full document for a set of inputs.
// The quote date is today; callers needing a fixed date set it after.
func BuildQuoteDocument(in QuoteInputs, prices PriceTable, products ProductCatalog) QuoteDocument {
	totals := ComputeTotals(in, prices, products)

	productName := in.SidingProduct
	if p, ok := products[in.SidingProduct]; ok {
		productName = p.Name
	}

	return QuoteDocument{
		CustomerName:    in.CustomerName,
		PropertyAddress: in.PropertyAddress,
		PropertyID:      in.PropertyID,
		QuoteDate:       time.Now().Format("January 2, 2006"),
		ProductName:     productName,
		SidingProfile:   in.SidingProfile,
		SidingColor:     in.SidingColor,
		G8Color:         in.G8Color,
		Items:           GenerateLineItems(in, prices, products),
		Totals:          totals,
		Discounts:       ComputeDiscounts(totals.GrandTotal, in.PayWithCheck, in.IsMilitary),
	}
}
