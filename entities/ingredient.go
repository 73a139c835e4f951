package entities

import (
	"github.com/google/uuid"
)

type Ingredient struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	TenantID     uuid.UUID `json:"tenant_id"`
	Name         string    `json:"name"`
	Unit         string    `json:"unit"`
	Cost         float64   `json:"cost"`
	CostPerUnit  float64   `json:"cost_per_unit"`
	CurrentStock float64   `json:"current_stock"`
	MinStock     float64   `json:"min_stock"`
	IsActive     bool      `json:"is_active"`
	Category     string    `json:"category"`

	Timestamp
}
