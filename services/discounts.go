package services

import "math"

// Discount percentages. Check applies only to the cash path; military
// applies to both cash and financed paths.
const (
	checkDiscountPct    = 2
	militaryDiscountPct = 3
	downPaymentPct      = 10
)

// FinanceTier is one offered financing term.
type FinanceTier struct {
	Months         int     `json:"months"`
	APR            float64 `json:"apr"`
	MonthlyPayment float64 `json:"monthlyPayment"`
}

// FinancingTiers returns the offered terms. Rates reviewed with the
// lender quarterly.
func FinancingTiers() []FinanceTier {
	return []FinanceTier{
		{Months: 12, APR: 0},
		{Months: 48, APR: 8.99},
		{Months: 120, APR: 9.99},
	}
}

// DiscountResult carries the cash and financed payment paths for one
// quote. The two paths discount independently: the financed total never
// includes the check discount.
type DiscountResult struct {
	GrandTotal float64 `json:"grandTotal"`

	CashDiscountPct    float64 `json:"cashDiscountPct"`
	CashDiscountAmount float64 `json:"cashDiscountAmount"`
	CashTotal          float64 `json:"cashTotal"`
	DepositDue         float64 `json:"depositDue"`
	CompletionDue      float64 `json:"completionDue"`

	FinanceDiscountPct    float64       `json:"financeDiscountPct"`
	FinanceDiscountAmount float64       `json:"financeDiscountAmount"`
	FinanceGrandTotal     float64       `json:"financeGrandTotal"`
	DownPayment           float64       `json:"downPayment"`
	FinanceAmount         float64       `json:"financeAmount"`
	Tiers                 []FinanceTier `json:"tiers"`
}

// ComputeDiscounts derives both payment paths from a grand total.
// Discount amounts round half-up to whole dollars. The cash total splits
// into a deposit due at signing and the balance at completion; ceil on
// the deposit keeps the odd dollar up front. The financed path takes a
// down payment of a tenth of its discounted total, rounded up, and
// finances the exact remainder.
func ComputeDiscounts(grandTotal float64, payWithCheck, isMilitary bool) DiscountResult {
	res := DiscountResult{GrandTotal: grandTotal, Tiers: FinancingTiers()}

	if payWithCheck {
		res.CashDiscountPct += checkDiscountPct
	}
	if isMilitary {
		res.CashDiscountPct += militaryDiscountPct
		res.FinanceDiscountPct = militaryDiscountPct
	}

	res.CashDiscountAmount = math.Round(grandTotal * res.CashDiscountPct / 100)
	res.CashTotal = grandTotal - res.CashDiscountAmount
	res.DepositDue = math.Ceil(res.CashTotal / 2)
	res.CompletionDue = math.Floor(res.CashTotal / 2)

	res.FinanceDiscountAmount = math.Round(grandTotal * res.FinanceDiscountPct / 100)
	res.FinanceGrandTotal = grandTotal - res.FinanceDiscountAmount
	res.DownPayment = math.Ceil(res.FinanceGrandTotal * downPaymentPct / 100)
	res.FinanceAmount = res.FinanceGrandTotal - res.DownPayment

	for i := range res.Tiers {
		res.Tiers[i].MonthlyPayment = MonthlyPayment(res.FinanceAmount, res.Tiers[i].APR, res.Tiers[i].Months)
	}

	return res
}

// MonthlyPayment amortizes a principal over months at the given annual
// percentage rate. Zero-APR terms divide evenly; anything else uses the
// standard amortization formula with a monthly compounding rate.
func MonthlyPayment(principal, apr float64, months int) float64 {
	if months <= 0 {
		return 0
	}
	if apr == 0 {
		return principal / float64(months)
	}
	r := apr / 100 / 12
	pow := math.Pow(1+r, float64(months))
	return principal * r * pow / (pow - 1)
}
