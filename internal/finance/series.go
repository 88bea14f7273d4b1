package finance

import (
	"sort"
	"time"
)

const DateLayout = "2006-01-02"

type TimeSeriesPoint struct {
	Label   string    `json:"label"`
	Start   time.Time `json:"start"`
	Income  float64   `json:"income"`
	Expense float64   `json:"expense"`
	Profit  float64   `json:"profit"`
}

// ParseDate reads a YYYY-MM-DD string as a calendar date. The result is
// midnight UTC of that same day, so no zone offset can move it to a
// neighbouring day.
func ParseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// WeekStart returns the Monday on or before d.
func WeekStart(d time.Time) time.Time {
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}

// WeeklySeries buckets travels dated in now's calendar year by Monday-start
// week. The first bucket of a year may start in late December of the year
// before; it only carries the January travels.
func WeeklySeries(l *Ledger, travels []Travel, now time.Time) []TimeSeriesPoint {
	inYear := make([]Travel, 0, len(travels))
	for _, t := range travels {
		if d, ok := ParseDate(t.Date); ok && d.Year() == now.Year() {
			inYear = append(inYear, t)
		}
	}
	return bucket(l, inYear, WeekStart, func(start time.Time) string {
		return start.Format("Jan 2")
	})
}

// DailySeries buckets travels by exact date, across all years.
func DailySeries(l *Ledger, travels []Travel) []TimeSeriesPoint {
	return bucket(l, travels, func(d time.Time) time.Time { return d }, func(start time.Time) string {
		return start.Format(DateLayout)
	})
}

func bucket(
	l *Ledger,
	travels []Travel,
	keyOf func(time.Time) time.Time,
	label func(time.Time) string,
) []TimeSeriesPoint {
	byStart := make(map[time.Time]*TimeSeriesPoint)
	for _, t := range travels {
		d, ok := ParseDate(t.Date)
		if !ok {
			continue
		}
		start := keyOf(d)
		p, ok := byStart[start]
		if !ok {
			p = &TimeSeriesPoint{Label: label(start), Start: start}
			byStart[start] = p
		}
		f := l.Resolve(t)
		p.Income += f.TotalIncome
		p.Expense += f.TotalExpenses
	}

	points := make([]TimeSeriesPoint, 0, len(byStart))
	for _, p := range byStart {
		p.Profit = p.Income - p.Expense
		points = append(points, *p)
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].Start.Before(points[j].Start)
	})
	return points
}
