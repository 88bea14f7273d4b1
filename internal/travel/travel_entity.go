package travel

import (
	"time"

	"go-farmbook/internal/finance"

	"github.com/google/uuid"
)

// Travel is one haulage trip. Optional numerics stay nil when the caller did
// not send them; Record turns nil into zero for the engine.
type Travel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	FarmID         string    `gorm:"index"`
	Name           string
	Date           string
	Land           string
	DriverID       string `gorm:"column:driver"`
	DriverTip      *float64
	PlateNumber    string
	Destination    string
	Ticket         string
	Tons           float64
	Bags           *float64
	SugarcanePrice *float64
	Molasses       *float64
	MolassesPrice  *float64
	GroupID        string
	Attendance     []finance.AttendanceEntry `gorm:"type:jsonb;serializer:json"`
	Expenses       []finance.TravelExpense   `gorm:"type:jsonb;serializer:json"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (t Travel) Record() finance.Travel {
	return finance.Travel{
		ID:             t.ID.String(),
		Name:           t.Name,
		Date:           t.Date,
		Land:           t.Land,
		DriverID:       t.DriverID,
		DriverTip:      value(t.DriverTip),
		PlateNumber:    t.PlateNumber,
		Destination:    t.Destination,
		Ticket:         t.Ticket,
		Tons:           t.Tons,
		Bags:           value(t.Bags),
		SugarcanePrice: value(t.SugarcanePrice),
		Molasses:       value(t.Molasses),
		MolassesPrice:  value(t.MolassesPrice),
		GroupID:        t.GroupID,
		Attendance:     t.Attendance,
		Expenses:       t.Expenses,
	}
}

func Records(travels []Travel) []finance.Travel {
	out := make([]finance.Travel, len(travels))
	for i, t := range travels {
		out[i] = t.Record()
	}
	return out
}

func value(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}
