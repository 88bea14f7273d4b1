package finance

// GlobalStats is additive: stats over a list equal the field-wise sum of
// stats over any partition of it.
type GlobalStats struct {
	TotalRevenue  float64 `json:"total_revenue"`
	TotalTons     float64 `json:"total_tons"`
	UnpaidDebts   float64 `json:"unpaid_debts"`
	TotalExpenses float64 `json:"total_expenses"`
	NetProfit     float64 `json:"net_profit"`
	TravelCount   int     `json:"travel_count"`
}

func ComputeStats(l *Ledger, travels []Travel, debts []Debt) GlobalStats {
	var s GlobalStats
	for _, t := range travels {
		f := l.Resolve(t)
		s.TotalRevenue += f.TotalIncome
		s.TotalExpenses += f.TotalExpenses
		s.NetProfit += f.NetIncome
		s.TotalTons += t.Tons
		s.TravelCount++
	}
	s.UnpaidDebts = UnpaidDebtTotal(debts, "")
	return s
}

func (s GlobalStats) Add(o GlobalStats) GlobalStats {
	return GlobalStats{
		TotalRevenue:  s.TotalRevenue + o.TotalRevenue,
		TotalTons:     s.TotalTons + o.TotalTons,
		UnpaidDebts:   s.UnpaidDebts + o.UnpaidDebts,
		TotalExpenses: s.TotalExpenses + o.TotalExpenses,
		NetProfit:     s.NetProfit + o.NetProfit,
		TravelCount:   s.TravelCount + o.TravelCount,
	}
}

// UnpaidDebtTotal sums unpaid debts, restricted to one employee unless
// employeeID is empty.
func UnpaidDebtTotal(debts []Debt, employeeID string) float64 {
	var total float64
	for _, d := range debts {
		if d.Paid {
			continue
		}
		if employeeID != "" && d.EmployeeID != employeeID {
			continue
		}
		total += d.Amount
	}
	return total
}
