package expense

type CreateExpenseRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Date        string  `json:"date"`
}

type UpdateExpenseRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Date        string  `json:"date"`
}

type ExpenseResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Amount        float64 `json:"amount"`
	Date          string  `json:"date"`
	RelatedLoanID *string `json:"related_loan_id,omitempty"`
	CreatedAt     string  `json:"created_at"`
}
