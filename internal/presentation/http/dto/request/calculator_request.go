package request

import "github.com/google/uuid"

// CalculateNewRequest represents a new-jewelry calculation request
type CalculateNewRequest struct {
	CategoryID uuid.UUID `json:"category_id" binding:"required"`
	Weight     float64   `json:"weight" binding:"required,gt=0"`
	WeightUnit string    `json:"weight_unit" binding:"omitempty,oneof=g mg"`
}

// CalculateOldRequest represents an old-jewelry valuation request
type CalculateOldRequest struct {
	CategoryID     uuid.UUID `json:"category_id" binding:"required"`
	Weight         float64   `json:"weight" binding:"required,gt=0"`
	WeightUnit     string    `json:"weight_unit" binding:"omitempty,oneof=g mg"`
	Source         string    `json:"source" binding:"required"`
	ResaleCategory string    `json:"resale_category"`
}

// CalculatorOptionsRequest represents calculator option listing parameters
type CalculatorOptionsRequest struct {
	Metal        string `form:"metal" binding:"required"`
	Type         string `form:"type" binding:"required"`
	ItemCategory string `form:"item_category"`
}
