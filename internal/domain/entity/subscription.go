package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ratnex/ratnex-api/internal/domain/enum"
)

// Subscription represents a shop's billing subscription. Each shop has
// exactly one row; plan changes update it in place.
type Subscription struct {
	ID               uuid.UUID               `gorm:"type:uuid;primary_key" json:"id"`
	ShopID           uuid.UUID               `gorm:"type:uuid;not null;uniqueIndex" json:"shop_id"`
	Plan             enum.SubscriptionPlan   `gorm:"size:50;not null;default:'trial'" json:"plan"`
	Status           enum.SubscriptionStatus `gorm:"size:50;not null;default:'active'" json:"status"`
	TrialEndsAt      *time.Time              `json:"trial_ends_at,omitempty"`
	CurrentPeriodEnd *time.Time              `json:"current_period_end,omitempty"`
	CancelledAt      *time.Time              `json:"cancelled_at,omitempty"`
	Notes            *string                 `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt        time.Time               `json:"created_at"`
	UpdatedAt        time.Time               `json:"updated_at"`

	// Relationships
	Shop Shop `gorm:"foreignKey:ShopID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new subscription
func (s *Subscription) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Subscription model
func (Subscription) TableName() string {
	return "subscriptions"
}

// IsTrialExpired reports whether a trial subscription has run past its
// trial window
func (s *Subscription) IsTrialExpired() bool {
	return s.Plan == enum.PlanTrial && s.TrialEndsAt != nil && time.Now().After(*s.TrialEndsAt)
}

// NewTrialSubscription builds the default subscription attached to a
// freshly onboarded shop
func NewTrialSubscription(shopID uuid.UUID, trialDays int) *Subscription {
	trialEnd := time.Now().AddDate(0, 0, trialDays)
	return &Subscription{
		ShopID:      shopID,
		Plan:        enum.PlanTrial,
		Status:      enum.SubscriptionActive,
		TrialEndsAt: &trialEnd,
	}
}
