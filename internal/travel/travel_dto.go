package travel

import "go-farmbook/internal/finance"

// TravelRequest serves both create and update. On update a nil Attendance
// keeps the recorded snapshot.
type TravelRequest struct {
	Name           string                    `json:"name"`
	Date           string                    `json:"date"`
	Land           string                    `json:"land"`
	DriverID       string                    `json:"driver"`
	DriverTip      *float64                  `json:"driver_tip" binding:"omitempty,gte=0"`
	PlateNumber    string                    `json:"plate_number"`
	Destination    string                    `json:"destination"`
	Ticket         string                    `json:"ticket"`
	Tons           float64                   `json:"tons" binding:"gte=0"`
	Bags           *float64                  `json:"bags" binding:"omitempty,gte=0"`
	SugarcanePrice *float64                  `json:"sugarcane_price" binding:"omitempty,gte=0"`
	Molasses       *float64                  `json:"molasses" binding:"omitempty,gte=0"`
	MolassesPrice  *float64                  `json:"molasses_price" binding:"omitempty,gte=0"`
	GroupID        string                    `json:"group_id"`
	Attendance     []finance.AttendanceEntry `json:"attendance"`
	Expenses       []finance.TravelExpense   `json:"expenses"`
}

type TravelResponse struct {
	ID             string                    `json:"id"`
	Name           string                    `json:"name"`
	Date           string                    `json:"date"`
	Land           string                    `json:"land"`
	DriverID       string                    `json:"driver"`
	DriverTip      *float64                  `json:"driver_tip"`
	PlateNumber    string                    `json:"plate_number"`
	Destination    string                    `json:"destination"`
	Ticket         string                    `json:"ticket"`
	Tons           float64                   `json:"tons"`
	Bags           *float64                  `json:"bags"`
	SugarcanePrice *float64                  `json:"sugarcane_price"`
	Molasses       *float64                  `json:"molasses"`
	MolassesPrice  *float64                  `json:"molasses_price"`
	GroupID        string                    `json:"group_id"`
	Attendance     []finance.AttendanceEntry `json:"attendance"`
	Expenses       []finance.TravelExpense   `json:"expenses"`
	CreatedAt      string                    `json:"created_at"`
	Financials     *finance.TravelFinancials `json:"financials,omitempty"`
}
