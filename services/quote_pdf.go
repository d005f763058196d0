package services

import (
	"fmt"
	"math"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/core/entity"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// GenerateInternalPDF creates the crew-facing quote PDF with the full
// itemized table: every row with quantity, rate, and extended total.
// It returns the raw PDF bytes or an error.
func GenerateInternalPDF(doc QuoteDocument) ([]byte, error) {
	m := maroto.New(quotePDFConfig())

	addQuoteHeader(m, doc, "Work Order Detail")
	addItemTableHeader(m)
	for _, it := range doc.Items {
		addItemRow(m, it)
	}
	addCategoryTotals(m, doc.Totals)
	addQuoteFooter(m, doc)

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return out.GetBytes(), nil
}

// GenerateCustomerPDF creates the customer-facing quote PDF: package
// totals only, with the discount breakdown, cash payment schedule, and
// financing options. Per-item rates never appear on this document.
func GenerateCustomerPDF(doc QuoteDocument) ([]byte, error) {
	m := maroto.New(quotePDFConfig())

	addQuoteHeader(m, doc, "Project Quote")
	addPackageSummary(m, doc)
	addDiscountedTotal(m, doc.Discounts)
	addCashSchedule(m, doc.Discounts)
	addFinancingOptions(m, doc.Discounts)
	addQuoteFooter(m, doc)

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return out.GetBytes(), nil
}

func quotePDFConfig() *entity.Config {
	return config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.Letter).
		WithLeftMargin(12).
		WithTopMargin(12).
		WithRightMargin(12).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()
}

// addQuoteHeader adds the title, customer identity, and quote date.
func addQuoteHeader(m core.Maroto, doc QuoteDocument, title string) {
	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(
				text.New(title, props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
	)

	customer := doc.CustomerName
	if customer == "" {
		customer = "Valued Customer"
	}
	gray := &props.Color{Red: 80, Green: 80, Blue: 80}
	m.AddRows(
		row.New(7).Add(
			col.New(6).Add(
				text.New(fmt.Sprintf("Prepared for: %s", customer), props.Text{
					Size: 9, Align: align.Left, Color: gray,
				}),
			),
			col.New(6).Add(
				text.New(fmt.Sprintf("Date: %s", doc.QuoteDate), props.Text{
					Size: 9, Align: align.Right, Color: gray,
				}),
			),
		),
	)

	if doc.PropertyAddress != "" {
		m.AddRows(
			row.New(6).Add(
				col.New(12).Add(
					text.New(doc.PropertyAddress, props.Text{
						Size: 9, Align: align.Left, Color: gray,
					}),
				),
			),
		)
	}

	if doc.ProductName != "" {
		selection := fmt.Sprintf("%s  |  Profile %s  |  %s", doc.ProductName, doc.SidingProfile, doc.SidingColor)
		m.AddRows(
			row.New(6).Add(
				col.New(12).Add(
					text.New(selection, props.Text{
						Size: 8, Align: align.Left, Color: gray,
					}),
				),
			),
		)
	}

	m.AddRows(row.New(4))
}

// addItemTableHeader adds the column header row for the itemized table.
func addItemTableHeader(m core.Maroto) {
	headerBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	headerText := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerTextLeft := headerText
	headerTextLeft.Align = align.Left

	headerCell := props.Cell{BackgroundColor: headerBg}

	m.AddRows(
		row.New(8).Add(
			col.New(6).Add(
				text.New("Item", headerTextLeft),
			).WithStyle(&headerCell),
			col.New(2).Add(
				text.New("Qty", headerText),
			).WithStyle(&headerCell),
			col.New(2).Add(
				text.New("Rate", headerText),
			).WithStyle(&headerCell),
			col.New(2).Add(
				text.New("Total", headerText),
			).WithStyle(&headerCell),
		),
	)
}

// addItemRow adds one line item to the itemized table.
func addItemRow(m core.Maroto, it LineItem) {
	baseText := props.Text{Size: 8, Align: align.Center}
	leftText := baseText
	leftText.Align = align.Left
	rightText := baseText
	rightText.Align = align.Right

	m.AddRows(
		row.New(7).Add(
			col.New(6).Add(text.New(it.Name, leftText)),
			col.New(2).Add(text.New(formatQty(it.Qty), rightText)),
			col.New(2).Add(text.New(FormatUSD(it.Rate), rightText)),
			col.New(2).Add(text.New(FormatUSD(it.Total), rightText)),
		),
	)
}

// addCategoryTotals adds the per-category subtotal block and grand total
// at the bottom of the internal document.
func addCategoryTotals(m core.Maroto, t Totals) {
	m.AddRows(row.New(6))

	summaryBg := &props.Color{Red: 240, Green: 240, Blue: 240}
	summaryCell := &props.Cell{BackgroundColor: summaryBg}

	labelStyle := props.Text{Size: 9, Align: align.Right}
	valueStyle := props.Text{Size: 9, Align: align.Right}

	rowsData := []struct {
		label string
		value float64
	}{
		{"Siding", t.SidingTotal},
		{"Soffit & Fascia", t.SoffitTotal},
		{"Wraps", t.WrapsTotal},
		{"Gutters", t.GuttersTotal},
		{"Other", t.OtherTotal},
	}
	for _, r := range rowsData {
		m.AddRows(
			row.New(7).Add(
				col.New(8).Add(text.New(r.label, labelStyle)).WithStyle(summaryCell),
				col.New(4).Add(text.New(FormatUSD(r.value), valueStyle)).WithStyle(summaryCell),
			),
		)
	}

	boldLabel := labelStyle
	boldLabel.Style = fontstyle.Bold
	boldValue := valueStyle
	boldValue.Style = fontstyle.Bold
	m.AddRows(
		row.New(9).Add(
			col.New(8).Add(text.New("Grand Total", boldLabel)).WithStyle(summaryCell),
			col.New(4).Add(text.New(FormatUSD(t.GrandTotal), boldValue)).WithStyle(summaryCell),
		),
	)
}

// addPackageSummary adds the two customer-facing package totals.
func addPackageSummary(m core.Maroto, doc QuoteDocument) {
	cardBg := &props.Color{Red: 245, Green: 245, Blue: 245}
	cardCell := &props.Cell{BackgroundColor: cardBg}

	nameStyle := props.Text{Size: 10, Style: fontstyle.Bold, Align: align.Left}
	amtStyle := props.Text{Size: 10, Style: fontstyle.Bold, Align: align.Right}

	packages := []struct {
		name  string
		total float64
	}{
		{"Siding Package", doc.Totals.SidingPackageTotal},
		{"Soffit & Fascia Package", doc.Totals.SoffitFasciaPackageTotal},
	}
	for _, p := range packages {
		m.AddRows(
			row.New(10).Add(
				col.New(8).Add(text.New(p.name, nameStyle)).WithStyle(cardCell),
				col.New(4).Add(text.New(FormatUSD(p.total), amtStyle)).WithStyle(cardCell),
			),
		)
		m.AddRows(row.New(2))
	}
}

// discountLine is one printed deduction on the customer document.
type discountLine struct {
	label  string
	amount float64
}

// discountLines returns the deduction rows for the discounted total bar.
// The check line is derived from the engine's combined amount, not
// recomputed from the percentage, so the printed lines always subtract
// exactly to the printed price.
func discountLines(d DiscountResult) []discountLine {
	var lines []discountLine
	if d.FinanceDiscountPct > 0 {
		lines = append(lines, discountLine{"Military Discount (3%)", d.FinanceDiscountAmount})
	}
	if d.CashDiscountPct > d.FinanceDiscountPct {
		lines = append(lines, discountLine{"Cash/Check Discount (2%)", d.CashDiscountAmount - d.FinanceDiscountAmount})
	}
	return lines
}

// addDiscountedTotal adds the grand total bar, with the discount lines
// when either discount applies.
func addDiscountedTotal(m core.Maroto, d DiscountResult) {
	m.AddRows(row.New(4))

	barBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	barCell := &props.Cell{BackgroundColor: barBg}
	white := &props.Color{Red: 255, Green: 255, Blue: 255}

	if d.CashDiscountPct > 0 {
		lineStyle := props.Text{Size: 8, Align: align.Right}
		m.AddRows(
			row.New(6).Add(
				col.New(8).Add(text.New("Project Total", lineStyle)),
				col.New(4).Add(text.New(FormatUSD(d.GrandTotal), lineStyle)),
			),
		)
		for _, dl := range discountLines(d) {
			m.AddRows(
				row.New(6).Add(
					col.New(8).Add(text.New(dl.label, lineStyle)),
					col.New(4).Add(text.New("-"+FormatUSD(dl.amount), lineStyle)),
				),
			)
		}
		m.AddRows(
			row.New(10).Add(
				col.New(8).Add(text.New("Your Price", props.Text{
					Size: 11, Style: fontstyle.Bold, Align: align.Left, Color: white,
				})).WithStyle(barCell),
				col.New(4).Add(text.New(FormatUSD(d.CashTotal), props.Text{
					Size: 11, Style: fontstyle.Bold, Align: align.Right, Color: white,
				})).WithStyle(barCell),
			),
		)
		return
	}

	m.AddRows(
		row.New(10).Add(
			col.New(8).Add(text.New("Project Total", props.Text{
				Size: 11, Style: fontstyle.Bold, Align: align.Left, Color: white,
			})).WithStyle(barCell),
			col.New(4).Add(text.New(FormatUSD(d.GrandTotal), props.Text{
				Size: 11, Style: fontstyle.Bold, Align: align.Right, Color: white,
			})).WithStyle(barCell),
		),
	)
}

// addCashSchedule adds the two-payment cash schedule.
func addCashSchedule(m core.Maroto, d DiscountResult) {
	m.AddRows(row.New(5))
	m.AddRows(
		row.New(8).Add(
			col.New(12).Add(
				text.New("Cash / Check Payment", props.Text{
					Size: 10, Style: fontstyle.Bold, Align: align.Left,
				}),
			),
		),
	)

	lineStyle := props.Text{Size: 9, Align: align.Left}
	amtStyle := props.Text{Size: 9, Align: align.Right}
	m.AddRows(
		row.New(7).Add(
			col.New(8).Add(text.New("Deposit due at signing", lineStyle)),
			col.New(4).Add(text.New(FormatUSD(d.DepositDue), amtStyle)),
		),
		row.New(7).Add(
			col.New(8).Add(text.New("Balance due at completion", lineStyle)),
			col.New(4).Add(text.New(FormatUSD(d.CompletionDue), amtStyle)),
		),
	)
}

// addFinancingOptions adds the financed path: discounted total, down
// payment, and the monthly payment for each offered term.
func addFinancingOptions(m core.Maroto, d DiscountResult) {
	m.AddRows(row.New(5))
	m.AddRows(
		row.New(8).Add(
			col.New(12).Add(
				text.New("Financing Options", props.Text{
					Size: 10, Style: fontstyle.Bold, Align: align.Left,
				}),
			),
		),
	)

	lineStyle := props.Text{Size: 9, Align: align.Left}
	amtStyle := props.Text{Size: 9, Align: align.Right}
	m.AddRows(
		row.New(7).Add(
			col.New(8).Add(text.New("Financed total", lineStyle)),
			col.New(4).Add(text.New(FormatUSD(d.FinanceGrandTotal), amtStyle)),
		),
		row.New(7).Add(
			col.New(8).Add(text.New("Down payment (10%)", lineStyle)),
			col.New(4).Add(text.New(FormatUSD(d.DownPayment), amtStyle)),
		),
	)

	for _, tier := range d.Tiers {
		label := fmt.Sprintf("%d months @ %.2f%% APR", tier.Months, tier.APR)
		if tier.APR == 0 {
			label = fmt.Sprintf("%d months same as cash", tier.Months)
		}
		m.AddRows(
			row.New(7).Add(
				col.New(8).Add(text.New(label, lineStyle)),
				col.New(4).Add(text.New(FormatUSD(tier.MonthlyPayment)+"/mo", amtStyle)),
			),
		)
	}
}

// addQuoteFooter adds the generated-date line at the bottom.
func addQuoteFooter(m core.Maroto, doc QuoteDocument) {
	m.AddRows(row.New(6))
	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(
				text.New(
					fmt.Sprintf("Generated on %s", doc.QuoteDate),
					props.Text{
						Size:  7,
						Align: align.Left,
						Color: &props.Color{Red: 140, Green: 140, Blue: 140},
					},
				),
			),
		),
	)
}

// formatQty returns a string representation of a quantity value.
// Whole numbers drop the decimals; fractional values keep 2 places.
func formatQty(qty float64) string {
	if qty == math.Trunc(qty) {
		return fmt.Sprintf("%.0f", qty)
	}
	return fmt.Sprintf("%.2f", qty)
}
