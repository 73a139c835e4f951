package domain

import (
	"errors"
	"time"
)

const (
	ProductStatusDraft     = "draft"
	ProductStatusPublished = "published"
	ProductStatusArchived  = "archived"

	ChannelPOS         = "pos"
	ChannelDigitalMenu = "digital_menu"
	ChannelMarketplace = "marketplace"
)

// SalesChannels lists every sales surface a product is seeded into at import time.
var SalesChannels = []string{ChannelPOS, ChannelDigitalMenu, ChannelMarketplace}

var (
	MessageSuccessGetProducts      = "products retrieved successfully"
	MessageSuccessGetProductDetail = "product detail retrieved successfully"

	MessageFailedGetProducts      = "failed to retrieve products"
	MessageFailedGetProductDetail = "failed to retrieve product detail"
	MessageFailedPersistProduct   = "failed to persist product"

	ErrProductNotFound    = errors.New("product not found")
	ErrIngredientNotFound = errors.New("ingredient not found")
	ErrEmptyIngredients   = errors.New("product has no ingredients")
)

type (
	ProductResponse struct {
		ID          string                   `json:"id"`
		Name        string                   `json:"name"`
		Description string                   `json:"description"`
		Category    string                   `json:"category"`
		Cost        float64                  `json:"cost"`
		Status      string                   `json:"status"`
		RecipeID    string                   `json:"recipe_id"`
		Channels    []ProductChannelResponse `json:"channels"`
		CreatedAt   time.Time                `json:"created_at"`
	}

	ProductChannelResponse struct {
		Channel     string  `json:"channel"`
		Price       float64 `json:"price"`
		IsAvailable bool    `json:"is_available"`
	}

	ProductDetailResponse struct {
		ProductResponse
		Recipe RecipeResponse `json:"recipe"`
	}

	RecipeResponse struct {
		ID          string                     `json:"id"`
		TotalCost   float64                    `json:"total_cost"`
		Yield       float64                    `json:"yield"`
		YieldUnit   string                     `json:"yield_unit"`
		Ingredients []RecipeIngredientResponse `json:"ingredients"`
	}

	RecipeIngredientResponse struct {
		IngredientID string  `json:"ingredient_id"`
		Name         string  `json:"name"`
		Quantity     float64 `json:"quantity"`
		Unit         string  `json:"unit"`
		Cost         float64 `json:"cost"`
	}
)
