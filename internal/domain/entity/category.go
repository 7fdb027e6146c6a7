package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ratnex/ratnex-api/internal/domain/enum"
	"github.com/ratnex/ratnex-api/internal/pricing"
)

// Category is a stored pricing-configuration record for one stamp code
// of a metal within a shop. The pricing percentages live in jsonb blobs
// keyed by the NEW/OLD type; PricingConfig bridges the row into the
// value type the calculators consume.
type Category struct {
	ID           uuid.UUID            `gorm:"type:uuid;primary_key" json:"id"`
	ShopID       uuid.UUID            `gorm:"type:uuid;not null;index:idx_categories_shop_code,unique" json:"shop_id"`
	Code         string               `gorm:"size:50;not null;index:idx_categories_shop_code,unique" json:"code"`
	Metal        enum.Metal           `gorm:"not null" json:"metal"`
	Type         enum.CategoryType    `gorm:"not null" json:"type"`
	ItemCategory string               `gorm:"size:255" json:"item_category,omitempty"`
	Descriptions pricing.Descriptions `gorm:"type:jsonb;serializer:json" json:"descriptions"`
	NewConfig    *pricing.NewConfig   `gorm:"type:jsonb;serializer:json" json:"new_config,omitempty"`
	OldConfig    *pricing.OldConfig   `gorm:"type:jsonb;serializer:json" json:"old_config,omitempty"`
	Active       bool                 `gorm:"default:true" json:"active"`
	CreatedAt    time.Time            `json:"created_at"`
	UpdatedAt    time.Time            `json:"updated_at"`
	DeletedAt    gorm.DeletedAt       `gorm:"index" json:"-"`

	// Relationships
	Shop Shop `gorm:"foreignKey:ShopID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new category
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Category model
func (Category) TableName() string {
	return "categories"
}

// PricingConfig builds the calculator-facing view of this record
func (c *Category) PricingConfig() *pricing.CategoryConfig {
	return &pricing.CategoryConfig{
		Code:         c.Code,
		Metal:        c.Metal,
		Type:         c.Type,
		ItemCategory: c.ItemCategory,
		Descriptions: c.Descriptions,
		New:          c.NewConfig,
		Old:          c.OldConfig,
	}
}

// ApplyConfig copies a validated pricing config back onto the row
func (c *Category) ApplyConfig(cfg *pricing.CategoryConfig) {
	c.Code = cfg.Code
	c.Metal = cfg.Metal
	c.Type = cfg.Type
	c.ItemCategory = cfg.ItemCategory
	c.Descriptions = cfg.Descriptions
	c.NewConfig = cfg.New
	c.OldConfig = cfg.Old
}
