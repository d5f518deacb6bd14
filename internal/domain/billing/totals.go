package billing

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// LineAmounts holds the derived amounts for a single line item
type LineAmounts struct {
	Base      decimal.Decimal `json:"base"`
	Discount  decimal.Decimal `json:"discount"`
	Taxable   decimal.Decimal `json:"taxable"`
	Tax       decimal.Decimal `json:"tax"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// Totals holds the aggregated amounts for a full document
type Totals struct {
	Subtotal   decimal.Decimal `json:"subtotal"`
	TaxTotal   decimal.Decimal `json:"tax_total"`
	GrandTotal decimal.Decimal `json:"grand_total"`
}

// CalculateLine computes the amounts for one line item. The discount is
// taken off the gross amount first and tax is applied to the discounted
// base, so a discounted line is never taxed on value the customer does not
// pay.
func CalculateLine(item LineItem) LineAmounts {
	base := item.Quantity.Mul(item.Rate)
	discount := base.Mul(item.DiscountPercent).Div(hundred)
	taxable := base.Sub(discount)
	tax := taxable.Mul(item.TaxPercent).Div(hundred)
	return LineAmounts{
		Base:      base,
		Discount:  discount,
		Taxable:   taxable,
		Tax:       tax,
		LineTotal: taxable.Add(tax),
	}
}

// CalculateTotals aggregates line amounts over an ordered item set. Pure
// function: no state, no I/O, safe to call from previews and consistency
// checks alike.
func CalculateTotals(items []LineItem) Totals {
	t := Totals{
		Subtotal:   decimal.Zero,
		TaxTotal:   decimal.Zero,
		GrandTotal: decimal.Zero,
	}
	for _, item := range items {
		line := CalculateLine(item)
		t.Subtotal = t.Subtotal.Add(line.Base)
		t.TaxTotal = t.TaxTotal.Add(line.Tax)
		t.GrandTotal = t.GrandTotal.Add(line.LineTotal)
	}
	return t
}
