package finance

import "strings"

// TravelFilter narrows a travel list before aggregation. Empty fields match
// everything. From and To are inclusive YYYY-MM-DD bounds.
type TravelFilter struct {
	GroupID     string `form:"group_id"`
	Land        string `form:"land"`
	Destination string `form:"destination"`
	PlateNumber string `form:"plate_number"`
	DriverID    string `form:"driver_id"`
	From        string `form:"from"`
	To          string `form:"to"`
}

func (f TravelFilter) IsZero() bool {
	return f == TravelFilter{}
}

func (f TravelFilter) Match(t Travel) bool {
	if f.GroupID != "" && t.GroupID != f.GroupID {
		return false
	}
	if f.Land != "" && !strings.EqualFold(t.Land, f.Land) {
		return false
	}
	if f.Destination != "" && !strings.EqualFold(t.Destination, f.Destination) {
		return false
	}
	if f.PlateNumber != "" && !strings.EqualFold(t.PlateNumber, f.PlateNumber) {
		return false
	}
	if f.DriverID != "" && t.DriverID != f.DriverID {
		return false
	}
	if f.From == "" && f.To == "" {
		return true
	}

	d, ok := ParseDate(t.Date)
	if !ok {
		return false
	}
	if from, ok := ParseDate(f.From); ok && d.Before(from) {
		return false
	}
	if to, ok := ParseDate(f.To); ok && d.After(to) {
		return false
	}
	return true
}

func FilterTravels(travels []Travel, f TravelFilter) []Travel {
	if f.IsZero() {
		return travels
	}
	out := make([]Travel, 0, len(travels))
	for _, t := range travels {
		if f.Match(t) {
			out = append(out, t)
		}
	}
	return out
}
