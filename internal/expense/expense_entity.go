package expense

import (
	"time"

	"github.com/google/uuid"
)

// OtherExpense is an operational cost outside the travel ledger. Expenses
// mirrored from loan payments carry the loan id so they can be cleaned up
// with the loan.
type OtherExpense struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	FarmID        string    `gorm:"index"`
	Name          string
	Description   string
	Amount        float64
	Date          string
	RelatedLoanID *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (OtherExpense) TableName() string {
	return "other_expenses"
}

// LoanExpense describes an expense written on behalf of a loan.
type LoanExpense struct {
	LoanID      string
	Name        string
	Description string
	Amount      float64
	Date        string
}
