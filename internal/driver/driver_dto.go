package driver

type CreateDriverRequest struct {
	EmployeeID string  `json:"employee_id" binding:"required"`
	Wage       float64 `json:"wage" binding:"gte=0"`
}

type UpdateDriverRequest struct {
	Wage float64 `json:"wage" binding:"gte=0"`
}

type DriverResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name"`
	Wage         float64 `json:"wage"`
	CreatedAt    string  `json:"created_at"`
}
