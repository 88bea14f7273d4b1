package group

type CreateGroupRequest struct {
	Name      string   `json:"name" binding:"required"`
	Wage      float64  `json:"wage" binding:"gte=0"`
	Employees []string `json:"employees"`
}

type UpdateGroupRequest struct {
	Name      string   `json:"name" binding:"required"`
	Wage      float64  `json:"wage" binding:"gte=0"`
	Employees []string `json:"employees"`
}

type GroupResponse struct {
	ID        string   `json:"id"`
	FarmID    string   `json:"farm_id"`
	Name      string   `json:"name"`
	Wage      float64  `json:"wage"`
	Employees []string `json:"employees"`
	CreatedAt string   `json:"created_at"`
}
