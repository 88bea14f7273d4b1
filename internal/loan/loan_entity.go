package loan

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusActive Status = "Active"
	StatusPaid   Status = "Paid"
)

// Loan keeps its payments and usages embedded. All writes go through the
// service under a row lock, so the lists have a single writer. Ledger
// figures are exact to the centavo.
type Loan struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	FarmID            string    `gorm:"index"`
	Description       string
	LoanDate          string
	DueDate           string
	TotalAmount       decimal.Decimal `gorm:"type:numeric(14,2)"`
	RemainingBalance  decimal.Decimal `gorm:"type:numeric(14,2)"`
	TotalPaidCurrent  decimal.Decimal `gorm:"type:numeric(14,2)"`
	TotalPaidLifetime decimal.Decimal `gorm:"type:numeric(14,2)"`
	Paid              bool
	Payments          []Payment `gorm:"type:jsonb;serializer:json"`
	Usages            []Usage   `gorm:"type:jsonb;serializer:json"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type Payment struct {
	ID             string    `json:"id"`
	LoanID         string    `json:"loan_id"`
	Amount         float64   `json:"amount"`
	PaymentDate    string    `json:"payment_date"`
	OtherExpenseID string    `json:"other_expense_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type Usage struct {
	ID          string    `json:"id"`
	LoanID      string    `json:"loan_id"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	UsageDate   string    `json:"usage_date"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
