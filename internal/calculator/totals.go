package calculator

import "github.com/shopspring/decimal"

type Totals struct {
	TotalSugarcane float64 `json:"total_sugarcane"`
	TotalMolasses  float64 `json:"total_molasses"`
	GrandTotal     float64 `json:"grand_total"`
}

// ComputeTotals sums price x quantity for each list in decimal and rounds
// each subtotal to cents. The grand total is the sum of the rounded
// subtotals, so the printed receipt always adds up.
func ComputeTotals(sugarcane []SugarcaneEntry, molasses []MolassesEntry) Totals {
	s := decimal.Zero
	for _, e := range sugarcane {
		s = s.Add(lineTotal(e.Price, e.Bags))
	}
	m := decimal.Zero
	for _, e := range molasses {
		m = m.Add(lineTotal(e.Price, e.Kilos))
	}

	s = s.Round(2)
	m = m.Round(2)
	return Totals{
		TotalSugarcane: s.InexactFloat64(),
		TotalMolasses:  m.InexactFloat64(),
		GrandTotal:     s.Add(m).InexactFloat64(),
	}
}

func lineTotal(price, qty float64) decimal.Decimal {
	return decimal.NewFromFloat(price).Mul(decimal.NewFromFloat(qty))
}
