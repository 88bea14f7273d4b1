package finance

import (
	"sort"
	"strings"
)

type EmployeeEarningsRow struct {
	EmployeeID string       `json:"employee_id"`
	Name       string       `json:"name"`
	Type       EmployeeType `json:"type"`
	DaysWorked int          `json:"days_worked"`
	TotalWage  float64      `json:"total_wage"`
	UnpaidDebt float64      `json:"unpaid_debt"`
}

type EarningsOptions struct {
	// IncludeIdle keeps rows with no days worked and no unpaid debt.
	IncludeIdle bool
}

// EarningsReport walks every travel once per employee. Staff earn their
// share of the wage pot on travels they attended; drivers earn base wage
// minus tip on travels they drove. The driver figure is deliberately not
// clamped at zero, unlike TravelFinancials.DriverWageLeft.
func EarningsReport(l *Ledger, employees []Employee, travels []Travel, debts []Debt, opts EarningsOptions) []EmployeeEarningsRow {
	rows := make([]EmployeeEarningsRow, 0, len(employees))
	for _, emp := range employees {
		row := earningsFor(l, emp, travels, debts)
		if !opts.IncludeIdle && row.DaysWorked == 0 && row.UnpaidDebt == 0 {
			continue
		}
		rows = append(rows, row)
	}
	SortEarnings(rows)
	return rows
}

// GroupEarningsReport reports every member of g over the travels that g
// worked, idle members and unknown ids included.
func GroupEarningsReport(l *Ledger, g Group, travels []Travel, debts []Debt) []EmployeeEarningsRow {
	var groupTravels []Travel
	for _, t := range travels {
		if t.GroupID == g.ID {
			groupTravels = append(groupTravels, t)
		}
	}

	rows := make([]EmployeeEarningsRow, 0, len(g.EmployeeIDs))
	for _, id := range g.EmployeeIDs {
		emp, ok := l.Employee(id)
		if !ok {
			emp = Employee{ID: id, Name: UnknownLabel}
		}
		rows = append(rows, earningsFor(l, emp, groupTravels, debts))
	}
	SortEarnings(rows)
	return rows
}

func earningsFor(l *Ledger, emp Employee, travels []Travel, debts []Debt) EmployeeEarningsRow {
	row := EmployeeEarningsRow{
		EmployeeID: emp.ID,
		Name:       emp.Name,
		Type:       emp.Type,
	}
	if row.Name == "" {
		row.Name = UnknownLabel
	}

	for _, t := range travels {
		switch emp.Type {
		case EmployeeTypeStaff:
			f := l.Resolve(t)
			if f.StaffCount > 0 && isPresent(t.Attendance, emp.ID) {
				row.DaysWorked++
				row.TotalWage += f.WagePerStaff
			}
		case EmployeeTypeDriver:
			if t.DriverID == emp.ID {
				row.DaysWorked++
				row.TotalWage += l.DriverWage(emp.ID) - t.DriverTip
			}
		case EmployeeTypeHelper:
			// helpers are paid outside the travel ledger
		default:
			// unclassified employees earn nothing from travels
		}
	}

	row.UnpaidDebt = UnpaidDebtTotal(debts, emp.ID)
	return row
}

// SortEarnings orders rows by total wage, highest first, then by name.
func SortEarnings(rows []EmployeeEarningsRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].TotalWage != rows[j].TotalWage {
			return rows[i].TotalWage > rows[j].TotalWage
		}
		return strings.ToLower(rows[i].Name) < strings.ToLower(rows[j].Name)
	})
}
