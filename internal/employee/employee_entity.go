package employee

import (
	"time"

	"go-farmbook/internal/finance"

	"github.com/google/uuid"
)

type Employee struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	FarmID    string    `gorm:"index"`
	Name      string
	Type      finance.EmployeeType
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (e Employee) Record() finance.Employee {
	return finance.Employee{
		ID:   e.ID.String(),
		Name: e.Name,
		Type: e.Type,
	}
}

func Records(emps []Employee) []finance.Employee {
	out := make([]finance.Employee, len(emps))
	for i, e := range emps {
		out[i] = e.Record()
	}
	return out
}
