package debt

type CreateDebtRequest struct {
	EmployeeID  string  `json:"employee_id" binding:"required"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
}

type SetPaidRequest struct {
	Paid *bool `json:"paid" binding:"required"`
}

type DebtResponse struct {
	ID          string  `json:"id"`
	EmployeeID  string  `json:"employee_id"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
	Paid        bool    `json:"paid"`
	CreatedAt   string  `json:"created_at"`
}

type UnpaidTotalResponse struct {
	EmployeeID string  `json:"employee_id"`
	Total      float64 `json:"total"`
}
