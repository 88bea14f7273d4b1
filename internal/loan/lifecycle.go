package loan

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Money rounds an amount to centavos, the precision the loans table keeps.
func Money(amount float64) decimal.Decimal {
	return decimal.NewFromFloat(amount).Round(2)
}

// NewLoan opens a loan with nothing paid against it.
func NewLoan(farmID, description, loanDate, dueDate string, total float64, now time.Time) *Loan {
	principal := Money(total)
	return &Loan{
		ID:                uuid.New(),
		FarmID:            farmID,
		Description:       description,
		LoanDate:          loanDate,
		DueDate:           dueDate,
		TotalAmount:       principal,
		RemainingBalance:  principal,
		TotalPaidCurrent:  decimal.Zero,
		TotalPaidLifetime: decimal.Zero,
		Payments:          []Payment{},
		Usages:            []Usage{},
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

func (l *Loan) Status() Status {
	if l.Paid {
		return StatusPaid
	}
	return StatusActive
}

// ApplyPayment appends a payment and recomputes the balance from the current
// cycle's total. otherExpenseID may be empty when no mirror expense exists.
func (l *Loan) ApplyPayment(amount float64, date, otherExpenseID string, now time.Time) Payment {
	paid := Money(amount)
	p := Payment{
		ID:             uuid.NewString(),
		LoanID:         l.ID.String(),
		Amount:         paid.InexactFloat64(),
		PaymentDate:    date,
		OtherExpenseID: otherExpenseID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	l.Payments = append(l.Payments, p)
	l.TotalPaidCurrent = l.TotalPaidCurrent.Add(paid)
	l.TotalPaidLifetime = l.TotalPaidLifetime.Add(paid)
	l.settle(l.TotalAmount.Sub(l.TotalPaidCurrent))
	l.UpdatedAt = now
	return p
}

// AddUsage records how part of the principal was spent. Balances are left
// alone.
func (l *Loan) AddUsage(description string, amount float64, date string, now time.Time) Usage {
	u := Usage{
		ID:          uuid.NewString(),
		LoanID:      l.ID.String(),
		Description: description,
		Amount:      Money(amount).InexactFloat64(),
		UsageDate:   date,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	l.Usages = append(l.Usages, u)
	l.UpdatedAt = now
	return u
}

// TotalUsed sums the recorded usages.
func (l *Loan) TotalUsed() decimal.Decimal {
	used := decimal.Zero
	for _, u := range l.Usages {
		used = used.Add(Money(u.Amount))
	}
	return used
}

// Renew starts a new cycle. The renewal payment reduces the new balance but
// is not counted in TotalPaidLifetime, and the current payment list is
// cleared. TotalAmount never changes.
func (l *Loan) Renew(newDueDate string, renewalPayment float64, now time.Time) {
	l.TotalPaidCurrent = decimal.Zero
	l.Payments = []Payment{}
	l.DueDate = newDueDate
	l.settle(l.TotalAmount.Sub(Money(renewalPayment)))
	l.UpdatedAt = now
}

func (l *Loan) settle(balance decimal.Decimal) {
	if balance.IsNegative() {
		balance = decimal.Zero
	}
	l.RemainingBalance = balance
	l.Paid = !balance.IsPositive()
}
