package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ratnex/ratnex-api/internal/pricing"
)

// Rate is the current metal rate board for a shop: one row per shop,
// updated in place. Gold rates are per 10 grams, silver per kilogram,
// stored as whole rupees.
type Rate struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ShopID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"shop_id"`
	GoldBuy    int64     `gorm:"not null" json:"gold_buy"`
	GoldSell   int64     `gorm:"not null" json:"gold_sell"`
	SilverBuy  int64     `gorm:"not null" json:"silver_buy"`
	SilverSell int64     `gorm:"not null" json:"silver_sell"`
	UpdatedBy  uuid.UUID `gorm:"type:uuid;not null" json:"updated_by"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// Relationships
	Shop    Shop `gorm:"foreignKey:ShopID" json:"-"`
	Updater User `gorm:"foreignKey:UpdatedBy" json:"-"`
}

// BeforeCreate generates a UUID before creating a new rate row
func (r *Rate) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Rate model
func (Rate) TableName() string {
	return "rates"
}

// ToPricing converts the stored row into the value type the calculators
// consume
func (r *Rate) ToPricing() pricing.Rates {
	return pricing.Rates{
		GoldBuy:    r.GoldBuy,
		GoldSell:   r.GoldSell,
		SilverBuy:  r.SilverBuy,
		SilverSell: r.SilverSell,
		UpdatedBy:  r.UpdatedBy.String(),
		UpdatedAt:  r.UpdatedAt,
	}
}

// RateHistory is an append-only audit trail of rate board updates, kept
// for the dashboard's recent-changes feed.
type RateHistory struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ShopID     uuid.UUID `gorm:"type:uuid;not null;index" json:"shop_id"`
	GoldBuy    int64     `gorm:"not null" json:"gold_buy"`
	GoldSell   int64     `gorm:"not null" json:"gold_sell"`
	SilverBuy  int64     `gorm:"not null" json:"silver_buy"`
	SilverSell int64     `gorm:"not null" json:"silver_sell"`
	UpdatedBy  uuid.UUID `gorm:"type:uuid;not null" json:"updated_by"`
	CreatedAt  time.Time `json:"created_at"`
}

// BeforeCreate generates a UUID before creating a new history row
func (h *RateHistory) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the RateHistory model
func (RateHistory) TableName() string {
	return "rate_history"
}
