package finance

type TravelFinancials struct {
	SugarIncome    float64 `json:"sugar_income"`
	MolassesIncome float64 `json:"molasses_income"`
	TotalIncome    float64 `json:"total_income"`
	WagePot        float64 `json:"wage_pot"`
	StaffCount     int     `json:"staff_count"`
	WagePerStaff   float64 `json:"wage_per_staff"`
	DriverTip      float64 `json:"driver_tip"`
	DriverBaseWage float64 `json:"driver_base_wage"`
	DriverWageLeft float64 `json:"driver_wage_left"`
	OtherExpenses  float64 `json:"other_expenses"`
	TotalExpenses  float64 `json:"total_expenses"`
	NetIncome      float64 `json:"net_income"`
}

// ResolveTravel computes the money picture of a single travel. group and
// driver may be nil; employees may be missing any id the attendance refers to.
//
// The driver's tip and the rest of the base wage are both cash outflows,
// so total expenses carry DriverTip + DriverWageLeft, never DriverBaseWage.
func ResolveTravel(t Travel, group *Group, driver *Driver, employees map[string]Employee) TravelFinancials {
	var f TravelFinancials

	f.SugarIncome = t.SugarcanePrice * t.Bags
	f.MolassesIncome = t.MolassesPrice * t.Molasses
	f.TotalIncome = f.SugarIncome + f.MolassesIncome

	if group != nil {
		f.WagePot = t.Tons * group.Wage
	}

	f.StaffCount = presentStaff(t.Attendance, employees)
	if f.StaffCount > 0 {
		f.WagePerStaff = f.WagePot / float64(f.StaffCount)
	}

	f.DriverTip = t.DriverTip
	if driver != nil {
		f.DriverBaseWage = driver.Wage
	}
	f.DriverWageLeft = max(0, f.DriverBaseWage-f.DriverTip)

	for _, e := range t.Expenses {
		f.OtherExpenses += e.Amount
	}

	f.TotalExpenses = f.WagePot + f.DriverTip + f.DriverWageLeft + f.OtherExpenses
	f.NetIncome = f.TotalIncome - f.TotalExpenses
	return f
}

// presentStaff counts attendance entries that are present and resolve to a
// Staff employee. Ids that no longer resolve are not staff.
func presentStaff(attendance []AttendanceEntry, employees map[string]Employee) int {
	n := 0
	for _, a := range attendance {
		if !a.Present {
			continue
		}
		if emp, ok := employees[a.EmployeeID]; ok && emp.Type == EmployeeTypeStaff {
			n++
		}
	}
	return n
}

func isPresent(attendance []AttendanceEntry, employeeID string) bool {
	for _, a := range attendance {
		if a.EmployeeID == employeeID && a.Present {
			return true
		}
	}
	return false
}
