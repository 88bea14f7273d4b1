package dashboard

import "go-farmbook/internal/finance"

const (
	DistributionLand        = "land"
	DistributionDestination = "destination"
	DistributionGroup       = "group"
)

// EarningsQuery is the travel filter plus report options, bound from the
// query string.
type EarningsQuery struct {
	finance.TravelFilter
	IncludeIdle bool `form:"include_idle"`
}

type GroupEarningsResponse struct {
	GroupID   string                        `json:"group_id"`
	GroupName string                        `json:"group_name"`
	Wage      float64                       `json:"wage"`
	Rows      []finance.EmployeeEarningsRow `json:"rows"`
}
