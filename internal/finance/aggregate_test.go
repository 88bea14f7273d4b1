package finance_test

import (
	"testing"
	"time"

	"go-farmbook/internal/finance"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixture() finance.Dataset {
	return finance.Dataset{
		Employees: []finance.Employee{
			{ID: "s1", Name: "Ana", Type: finance.EmployeeTypeStaff},
			{ID: "s2", Name: "Ben", Type: finance.EmployeeTypeStaff},
			{ID: "s3", Name: "Cora", Type: finance.EmployeeTypeStaff},
			{ID: "d1", Name: "Dan", Type: finance.EmployeeTypeDriver},
			{ID: "d2", Name: "Eli", Type: finance.EmployeeTypeDriver},
			{ID: "h1", Name: "Fay", Type: finance.EmployeeTypeHelper},
		},
		Groups: []finance.Group{
			{ID: "g1", Name: "North crew", Wage: 300, EmployeeIDs: []string{"s1", "s2", "ghost"}},
			{ID: "g2", Name: "South crew", Wage: 200, EmployeeIDs: []string{"s3"}},
		},
		Drivers: []finance.Driver{
			{ID: "r1", EmployeeID: "d1", Wage: 500},
			{ID: "r2", EmployeeID: "d2", Wage: 100},
		},
		Travels: []finance.Travel{
			{
				ID: "t1", Date: "2026-03-02", Land: "Lot 4", Destination: "Mill A", DriverID: "d1", DriverTip: 50,
				Tons: 10, Bags: 100, SugarcanePrice: 50, GroupID: "g1",
				Attendance: []finance.AttendanceEntry{{EmployeeID: "s1", Present: true}, {EmployeeID: "s2", Present: true}},
			},
			{
				ID: "t2", Date: "2026-03-05", Land: "Lot 7", Destination: "Mill A", DriverID: "d2", DriverTip: 150,
				Tons: 5, Bags: 40, SugarcanePrice: 60, GroupID: "g2",
				Attendance: []finance.AttendanceEntry{{EmployeeID: "s3", Present: true}},
			},
			{
				ID: "t3", Date: "2026-03-09", Land: "Lot 4", Destination: "Mill B", DriverID: "d1",
				Tons: 8, Bags: 80, SugarcanePrice: 55, GroupID: "g1",
				Attendance: []finance.AttendanceEntry{{EmployeeID: "s1", Present: true}, {EmployeeID: "s2", Present: false}},
				Expenses:   []finance.TravelExpense{{Name: "fuel", Amount: 300}},
			},
			{
				ID: "t4", Date: "2025-12-30", Land: "", Destination: "Mill B", DriverID: "d1",
				Tons: 2, Bags: 10, SugarcanePrice: 50, GroupID: "gone",
			},
			{
				ID: "t5", Land: "Lot 7", Destination: "Mill A", Tons: 1, GroupID: "g2",
			},
		},
		Debts: []finance.Debt{
			{ID: "b1", EmployeeID: "s1", Amount: 200},
			{ID: "b2", EmployeeID: "s1", Amount: 50, Paid: true},
			{ID: "b3", EmployeeID: "h1", Amount: 75},
		},
	}
}

func TestComputeStats(t *testing.T) {
	ds := fixture()
	l := ds.Ledger()

	s := finance.ComputeStats(l, ds.Travels, ds.Debts)

	assert.Equal(t, 5000.0+2400.0+4400.0+500.0, s.TotalRevenue)
	assert.Equal(t, 26.0, s.TotalTons)
	assert.Equal(t, 275.0, s.UnpaidDebts)
	assert.Equal(t, 5, s.TravelCount)
	assert.InDelta(t, s.TotalRevenue-s.TotalExpenses, s.NetProfit, 1e-9)
}

func TestComputeStats_PartitionsAddUp(t *testing.T) {
	ds := fixture()
	l := ds.Ledger()
	whole := finance.ComputeStats(l, ds.Travels, ds.Debts)

	splits := [][]int{{0, 5}, {2, 3}, {1, 4}, {5, 5}}
	for _, sp := range splits {
		left := finance.ComputeStats(l, ds.Travels[:sp[0]], ds.Debts[:1])
		mid := finance.ComputeStats(l, ds.Travels[sp[0]:sp[1]], ds.Debts[1:2])
		right := finance.ComputeStats(l, ds.Travels[sp[1]:], ds.Debts[2:])
		sum := left.Add(mid).Add(right)

		assert.InDelta(t, whole.TotalRevenue, sum.TotalRevenue, 1e-9)
		assert.InDelta(t, whole.TotalTons, sum.TotalTons, 1e-9)
		assert.InDelta(t, whole.UnpaidDebts, sum.UnpaidDebts, 1e-9)
		assert.InDelta(t, whole.TotalExpenses, sum.TotalExpenses, 1e-9)
		assert.InDelta(t, whole.NetProfit, sum.NetProfit, 1e-9)
		assert.Equal(t, whole.TravelCount, sum.TravelCount)
	}
}

func TestWeekStart(t *testing.T) {
	cases := map[string]string{
		"2026-03-02": "2026-03-02", // Monday
		"2026-03-08": "2026-03-02", // Sunday
		"2026-03-04": "2026-03-02",
		"2026-01-01": "2025-12-29",
	}
	for in, want := range cases {
		d, ok := finance.ParseDate(in)
		require.True(t, ok)
		assert.Equal(t, want, finance.WeekStart(d).Format(finance.DateLayout), in)
	}
}

func TestWeeklySeries(t *testing.T) {
	ds := fixture()
	l := ds.Ledger()
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.Local)

	points := finance.WeeklySeries(l, ds.Travels, now)

	require.Len(t, points, 2)
	assert.Equal(t, "Mar 2", points[0].Label)
	assert.Equal(t, "Mar 9", points[1].Label)
	assert.True(t, points[0].Start.Before(points[1].Start))

	t1 := l.Resolve(ds.Travels[0])
	t2 := l.Resolve(ds.Travels[1])
	assert.InDelta(t, t1.TotalIncome+t2.TotalIncome, points[0].Income, 1e-9)
	assert.InDelta(t, t1.TotalExpenses+t2.TotalExpenses, points[0].Expense, 1e-9)
	assert.InDelta(t, points[0].Income-points[0].Expense, points[0].Profit, 1e-9)
}

func TestWeeklySeries_PreviousYearOnly(t *testing.T) {
	ds := fixture()
	now := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)

	points := finance.WeeklySeries(ds.Ledger(), ds.Travels, now)

	require.Len(t, points, 1)
	assert.Equal(t, "Dec 29", points[0].Label)
}

func TestWeeklySeries_WeekSpanningNewYear(t *testing.T) {
	travels := []finance.Travel{
		{ID: "dec", Date: "2025-12-30", Bags: 20, SugarcanePrice: 100},
		{ID: "jan", Date: "2026-01-02", Bags: 10, SugarcanePrice: 100},
	}
	l := finance.NewLedger(nil, nil, nil)

	t.Run("january travel counts toward the new year", func(t *testing.T) {
		points := finance.WeeklySeries(l, travels, time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC))

		require.Len(t, points, 1)
		assert.Equal(t, "Dec 29", points[0].Label)
		assert.Equal(t, 2025, points[0].Start.Year())
		assert.Equal(t, 1000.0, points[0].Income)
	})

	t.Run("december travel stays in its own year", func(t *testing.T) {
		points := finance.WeeklySeries(l, travels, time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC))

		require.Len(t, points, 1)
		assert.Equal(t, "Dec 29", points[0].Label)
		assert.Equal(t, 2000.0, points[0].Income)
	})
}

func TestDailySeries(t *testing.T) {
	ds := fixture()

	points := finance.DailySeries(ds.Ledger(), ds.Travels)

	require.Len(t, points, 4)
	labels := make([]string, len(points))
	for i, p := range points {
		labels[i] = p.Label
	}
	assert.Equal(t, []string{"2025-12-30", "2026-03-02", "2026-03-05", "2026-03-09"}, labels)
}

func TestDistribution(t *testing.T) {
	ds := fixture()

	t.Run("by land", func(t *testing.T) {
		got := finance.DistributionByLand(ds.Travels)
		assert.Equal(t, []finance.CategoryDistribution{
			{Label: "Lot 4", Count: 2, Color: finance.Palette[0]},
			{Label: "Lot 7", Count: 2, Color: finance.Palette[1]},
			{Label: finance.UnknownLabel, Count: 1, Color: finance.Palette[2]},
		}, got)
	})

	t.Run("by destination", func(t *testing.T) {
		got := finance.DistributionByDestination(ds.Travels)
		require.Len(t, got, 2)
		assert.Equal(t, "Mill A", got[0].Label)
		assert.Equal(t, 3, got[0].Count)
		assert.Equal(t, 2, got[1].Count)
	})

	t.Run("by group", func(t *testing.T) {
		got := finance.DistributionByGroup(ds.Ledger(), ds.Travels)
		require.Len(t, got, 3)
		assert.Equal(t, "North crew", got[0].Label)
		assert.Equal(t, "South crew", got[1].Label)
		assert.Equal(t, finance.UnknownLabel, got[2].Label)
	})

	t.Run("palette wraps", func(t *testing.T) {
		var travels []finance.Travel
		for i := 0; i < len(finance.Palette)+1; i++ {
			travels = append(travels, finance.Travel{Land: string(rune('A' + i))})
		}
		got := finance.DistributionByLand(travels)
		assert.Equal(t, finance.Palette[0], got[len(finance.Palette)].Color)
	})
}

func TestEarningsReport(t *testing.T) {
	ds := fixture()
	l := ds.Ledger()

	rows := finance.EarningsReport(l, ds.Employees, ds.Travels, ds.Debts, finance.EarningsOptions{})

	byID := map[string]finance.EmployeeEarningsRow{}
	for _, r := range rows {
		byID[r.EmployeeID] = r
	}

	// t1: pot 3000 split two ways; t3: pot 2400 to s1 alone
	assert.Equal(t, 2, byID["s1"].DaysWorked)
	assert.Equal(t, 1500.0+2400.0, byID["s1"].TotalWage)
	assert.Equal(t, 200.0, byID["s1"].UnpaidDebt)
	assert.Equal(t, 1, byID["s2"].DaysWorked)
	assert.Equal(t, 1500.0, byID["s2"].TotalWage)
	assert.Equal(t, 1000.0, byID["s3"].TotalWage)

	// d1 drove t1 (500-50), t3 (500-0), t4 (500-0)
	assert.Equal(t, 3, byID["d1"].DaysWorked)
	assert.Equal(t, 1450.0, byID["d1"].TotalWage)

	// helpers never earn from travels but still show up for their debt
	assert.Equal(t, 0, byID["h1"].DaysWorked)
	assert.Equal(t, 75.0, byID["h1"].UnpaidDebt)

	for i := 1; i < len(rows); i++ {
		assert.GreaterOrEqual(t, rows[i-1].TotalWage, rows[i].TotalWage)
	}
}

func TestEarningsReport_DriverNetIsUnclamped(t *testing.T) {
	ds := fixture()
	l := ds.Ledger()

	rows := finance.EarningsReport(l, ds.Employees, ds.Travels[1:2], nil, finance.EarningsOptions{})

	var d2 finance.EmployeeEarningsRow
	for _, r := range rows {
		if r.EmployeeID == "d2" {
			d2 = r
		}
	}
	assert.Equal(t, -50.0, d2.TotalWage)
	assert.Equal(t, 0.0, l.Resolve(ds.Travels[1]).DriverWageLeft)
}

func TestEarningsReport_IdleRows(t *testing.T) {
	ds := fixture()
	l := ds.Ledger()

	t.Run("excluded by default", func(t *testing.T) {
		rows := finance.EarningsReport(l, ds.Employees, nil, nil, finance.EarningsOptions{})
		assert.Empty(t, rows)
	})

	t.Run("kept on request", func(t *testing.T) {
		rows := finance.EarningsReport(l, ds.Employees, nil, nil, finance.EarningsOptions{IncludeIdle: true})
		require.Len(t, rows, len(ds.Employees))
		assert.Equal(t, "Ana", rows[0].Name)
	})
}

func TestGroupEarningsReport(t *testing.T) {
	ds := fixture()
	l := ds.Ledger()
	g, ok := l.Group("g1")
	require.True(t, ok)

	rows := finance.GroupEarningsReport(l, g, ds.Travels, ds.Debts)

	require.Len(t, rows, 3)
	assert.Equal(t, "s1", rows[0].EmployeeID)
	assert.Equal(t, 3900.0, rows[0].TotalWage)
	assert.Equal(t, "s2", rows[1].EmployeeID)
	assert.Equal(t, "ghost", rows[2].EmployeeID)
	assert.Equal(t, finance.UnknownLabel, rows[2].Name)
	assert.Equal(t, 0.0, rows[2].TotalWage)
}

func TestFilterTravels(t *testing.T) {
	ds := fixture()

	cases := []struct {
		name   string
		filter finance.TravelFilter
		want   []string
	}{
		{"zero filter", finance.TravelFilter{}, []string{"t1", "t2", "t3", "t4", "t5"}},
		{"group", finance.TravelFilter{GroupID: "g2"}, []string{"t2", "t5"}},
		{"land case insensitive", finance.TravelFilter{Land: "lot 4"}, []string{"t1", "t3"}},
		{"driver", finance.TravelFilter{DriverID: "d1"}, []string{"t1", "t3", "t4"}},
		{"date range drops undated", finance.TravelFilter{From: "2026-03-01", To: "2026-03-05"}, []string{"t1", "t2"}},
		{"open ended", finance.TravelFilter{To: "2025-12-31"}, []string{"t4"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := finance.FilterTravels(ds.Travels, tc.filter)
			ids := make([]string, len(got))
			for i, tr := range got {
				ids[i] = tr.ID
			}
			assert.Equal(t, tc.want, ids)
		})
	}
}
