package employee

type CreateEmployeeRequest struct {
	Name string `json:"name" binding:"required"`
	Type string `json:"type" binding:"required,oneof=Driver Staff Helper"`
}

type UpdateEmployeeRequest struct {
	Name string `json:"name" binding:"required"`
	Type string `json:"type" binding:"required,oneof=Driver Staff Helper"`
}

type EmployeeResponse struct {
	ID        string `json:"id"`
	FarmID    string `json:"farm_id"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	CreatedAt string `json:"created_at"`
}
