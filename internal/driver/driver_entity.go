package driver

import (
	"time"

	"go-farmbook/internal/finance"

	"github.com/google/uuid"
)

// Driver gives one employee a flat per-trip base wage.
type Driver struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	FarmID       string    `gorm:"index"`
	EmployeeID   string
	Wage         float64
	EmployeeName string `gorm:"->;-:migration"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (d Driver) Record() finance.Driver {
	return finance.Driver{
		ID:         d.ID.String(),
		EmployeeID: d.EmployeeID,
		Wage:       d.Wage,
	}
}

func Records(drivers []Driver) []finance.Driver {
	out := make([]finance.Driver, len(drivers))
	for i, d := range drivers {
		out[i] = d.Record()
	}
	return out
}
