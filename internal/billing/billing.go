// Package billing holds the GST arithmetic shared by invoice generation and
// document rendering. All amounts are kept at full float64 precision here;
// rounding to two decimals happens only when a value is printed.
package billing

// Intra-state GST split: 5% total, half central and half state.
const (
	CGSTRate = 0.025
	SGSTRate = 0.025
)

// Amounts is the tax breakup for a line or a whole invoice.
type Amounts struct {
	Base  float64
	CGST  float64
	SGST  float64
	Total float64
}

// Compute derives the tax breakup for one quantity at one rate.
func Compute(quantity, rate float64) Amounts {
	base := quantity * rate
	cgst := base * CGSTRate
	sgst := base * SGSTRate
	return Amounts{
		Base:  base,
		CGST:  cgst,
		SGST:  sgst,
		Total: base + cgst + sgst,
	}
}

// SplitTotal recovers the tax breakup from a GST-inclusive grand total.
// Used for old invoices that stored only the total, where
// total = base * (1 + CGSTRate + SGSTRate).
func SplitTotal(total float64) Amounts {
	base := total / (1 + CGSTRate + SGSTRate)
	return Amounts{
		Base:  base,
		CGST:  base * CGSTRate,
		SGST:  base * SGSTRate,
		Total: total,
	}
}

// LineItem is one billable challan line.
type LineItem struct {
	Quantity float64
	Rate     float64
}

// Aggregate sums the breakups of all lines. Each line is computed at full
// precision and the sums carry that precision, so the result does not depend
// on line order.
func Aggregate(items []LineItem) Amounts {
	var out Amounts
	for _, it := range items {
		a := Compute(it.Quantity, it.Rate)
		out.Base += a.Base
		out.CGST += a.CGST
		out.SGST += a.SGST
		out.Total += a.Total
	}
	return out
}
