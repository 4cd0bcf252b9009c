// Package billing computes invoice amounts: line-item totals, GST breakups,
// and the amount-in-words text required on Indian tax invoices. Everything
// here is a pure function of its inputs; totals are recomputed on every read
// and never cached.
package billing

import "strings"

// LineItem is the slice of an invoice line that participates in amount
// calculations.
type LineItem struct {
	Description string
	Quantity    float64
	UnitPrice   float64
}

// TaxRates holds the three GST percentages, each applied independently to the
// subtotal (they are not compounded).
type TaxRates struct {
	CGSTRate float64
	SGSTRate float64
	IGSTRate float64
}

// Totals is the derived amount breakdown of an invoice. Values carry full
// floating-point precision; rounding to two decimals happens only at display
// time.
type Totals struct {
	Subtotal   float64 `json:"subtotal"`
	CGSTAmount float64 `json:"cgstAmount"`
	SGSTAmount float64 `json:"sgstAmount"`
	IGSTAmount float64 `json:"igstAmount"`
	TotalTax   float64 `json:"totalTax"`
	GrandTotal float64 `json:"grandTotal"`
}

// ComputeTotals derives the amount breakdown from line items and tax rates.
// Items whose description is empty after trimming are excluded. The result is
// deterministic: the same inputs always produce bit-identical totals, and
// GrandTotal is exactly Subtotal + CGSTAmount + SGSTAmount + IGSTAmount.
func ComputeTotals(items []LineItem, rates TaxRates) Totals {
	var subtotal float64
	for _, item := range items {
		if strings.TrimSpace(item.Description) == "" {
			continue
		}
		subtotal += item.Quantity * item.UnitPrice
	}

	t := Totals{
		Subtotal:   subtotal,
		CGSTAmount: subtotal * rates.CGSTRate / 100,
		SGSTAmount: subtotal * rates.SGSTRate / 100,
		IGSTAmount: subtotal * rates.IGSTRate / 100,
	}
	t.TotalTax = t.CGSTAmount + t.SGSTAmount + t.IGSTAmount
	t.GrandTotal = t.Subtotal + t.TotalTax
	return t
}
