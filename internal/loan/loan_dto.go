package loan

type CreateLoanRequest struct {
	Description string  `json:"description"`
	LoanDate    string  `json:"loan_date"`
	DueDate     string  `json:"due_date"`
	TotalAmount float64 `json:"total_amount" binding:"required,gt=0"`
}

type AddPaymentRequest struct {
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	PaymentDate string  `json:"payment_date"`
}

type AddUsageRequest struct {
	Description string  `json:"description" binding:"required"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	UsageDate   string  `json:"usage_date"`
}

type RenewLoanRequest struct {
	NewDueDate     string  `json:"new_due_date" binding:"required"`
	RenewalPayment float64 `json:"renewal_payment" binding:"gte=0"`
}

type LoanResponse struct {
	ID                string    `json:"id"`
	Description       string    `json:"description"`
	LoanDate          string    `json:"loan_date"`
	DueDate           string    `json:"due_date"`
	TotalAmount       float64   `json:"total_amount"`
	RemainingBalance  float64   `json:"remaining_balance"`
	TotalPaidCurrent  float64   `json:"total_paid_current"`
	TotalPaidLifetime float64   `json:"total_paid_lifetime"`
	TotalUsed         float64   `json:"total_used"`
	Paid              bool      `json:"paid"`
	Status            Status    `json:"status"`
	Payments          []Payment `json:"payments"`
	Usages            []Usage   `json:"usages"`
	CreatedAt         string    `json:"created_at"`
	UpdatedAt         string    `json:"updated_at"`
}
