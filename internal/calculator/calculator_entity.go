package calculator

import (
	"time"

	"github.com/google/uuid"
)

type SugarcaneEntry struct {
	Bags  float64 `json:"bags" binding:"gte=0"`
	Price float64 `json:"price" binding:"gte=0"`
}

type MolassesEntry struct {
	Kilos float64 `json:"kilos" binding:"gte=0"`
	Price float64 `json:"price" binding:"gte=0"`
}

// Computation is a saved receipt. It has no update path.
type Computation struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	FarmID           string    `gorm:"index"`
	ReceiptNumber    string
	ReceiptTitle     string
	SignatureName    string
	SugarcaneEntries []SugarcaneEntry `gorm:"type:jsonb;serializer:json"`
	MolassesEntries  []MolassesEntry  `gorm:"type:jsonb;serializer:json"`
	TotalSugarcane   float64
	TotalMolasses    float64
	GrandTotal       float64
	CreatedAt        time.Time
}

func (Computation) TableName() string {
	return "calculator_computations"
}
