package entities

import (
	"github.com/google/uuid"
)

type Product struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	TenantID    uuid.UUID `json:"tenant_id"`
	Name        string    `json:"name"`
	Description string    `json:"description" gorm:"type:text"`
	Category    string    `json:"category"`
	Cost        float64   `json:"cost"`
	RecipeID    uuid.UUID `json:"recipe_id"`
	Status      string    `json:"status"` // "draft", "published", "archived"

	Channels []ProductChannel `gorm:"foreignKey:ProductID" json:"channels"`
	Timestamp
}

type ProductChannel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ProductID   uuid.UUID `json:"product_id"`
	Channel     string    `json:"channel"` // "pos", "digital_menu", "marketplace"
	Price       float64   `json:"price"`
	IsAvailable bool      `json:"is_available"`
}
