package debt

import (
	"time"

	"go-farmbook/internal/finance"

	"github.com/google/uuid"
)

// Debt is money an employee owes the farm. Amount never changes after
// create; settling it only flips Paid.
type Debt struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	FarmID      string    `gorm:"index"`
	EmployeeID  string
	Amount      float64
	Description string
	Date        string
	Paid        bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (d Debt) Record() finance.Debt {
	return finance.Debt{
		ID:          d.ID.String(),
		EmployeeID:  d.EmployeeID,
		Amount:      d.Amount,
		Description: d.Description,
		Date:        d.Date,
		Paid:        d.Paid,
	}
}

func Records(debts []Debt) []finance.Debt {
	out := make([]finance.Debt, len(debts))
	for i, d := range debts {
		out[i] = d.Record()
	}
	return out
}
