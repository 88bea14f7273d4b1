package group

import (
	"time"

	"go-farmbook/internal/finance"

	"github.com/google/uuid"
)

// Group is a crew sharing one per-ton wage pot. Members are kept as a list
// of employee ids and may outlive the employees they point to.
type Group struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	FarmID    string    `gorm:"index"`
	Name      string
	Wage      float64
	Employees []string `gorm:"type:jsonb;serializer:json"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (g Group) Record() finance.Group {
	return finance.Group{
		ID:          g.ID.String(),
		Name:        g.Name,
		Wage:        g.Wage,
		EmployeeIDs: append([]string(nil), g.Employees...),
	}
}

func Records(groups []Group) []finance.Group {
	out := make([]finance.Group, len(groups))
	for i, g := range groups {
		out[i] = g.Record()
	}
	return out
}
