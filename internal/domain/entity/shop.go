package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ratnex/ratnex-api/internal/domain/enum"
)

// Shop represents a jewelry shop in the multitenant system
type Shop struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Slug      string         `gorm:"size:255;unique;not null" json:"slug"`
	OwnerID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"owner_id"`
	Address   *string        `gorm:"type:text" json:"address,omitempty"`
	Phone     *string        `gorm:"size:50" json:"phone,omitempty"`
	Settings  ShopSettings   `gorm:"type:jsonb;serializer:json" json:"settings"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Owner        User             `gorm:"foreignKey:OwnerID" json:"-"`
	Members      []ShopMembership `gorm:"foreignKey:ShopID" json:"-"`
	Subscription *Subscription    `gorm:"foreignKey:ShopID" json:"subscription,omitempty"`
}

// BeforeCreate generates a UUID before creating a new shop
func (s *Shop) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Shop model
func (Shop) TableName() string {
	return "shops"
}

// CanCalculate reports whether the shop's subscription permits pricing
// calculations. A missing subscription blocks everything except reads.
func (s *Shop) CanCalculate() bool {
	return s.Subscription != nil && s.Subscription.Status.AllowsCalculations()
}

// MemberUser represents a subset of user fields for membership responses
type MemberUser struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
}

// ShopMembership represents a user's membership in a shop
type ShopMembership struct {
	ShopID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"shop_id"`
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	Role      string    `gorm:"size:50;default:'client'" json:"role"` // owner, admin, manager, pro_client, client
	CreatedAt time.Time `json:"created_at"`

	// Relationships
	Shop Shop `gorm:"foreignKey:ShopID" json:"-"`
	User User `gorm:"foreignKey:UserID" json:"-"`

	// Computed field for JSON response
	MemberUser *MemberUser `gorm:"-" json:"user,omitempty"`
}

// PopulateUserDetails populates the MemberUser field from the User relationship
func (sm *ShopMembership) PopulateUserDetails() {
	if sm.User.ID != uuid.Nil {
		sm.MemberUser = &MemberUser{
			ID:        sm.User.ID,
			FirstName: sm.User.FirstName,
			LastName:  sm.User.LastName,
			Email:     sm.User.Email,
		}
	}
}

// TableName returns the table name for the ShopMembership model
func (ShopMembership) TableName() string {
	return "shop_memberships"
}

// ShopSettings holds all customizable shop configurations
type ShopSettings struct {
	// Branding & Appearance
	LogoURL      string `json:"logo_url,omitempty"`
	PrimaryColor string `json:"primary_color,omitempty"`

	// Localization
	Currency   string `json:"currency,omitempty"`
	Timezone   string `json:"timezone,omitempty"`
	Locale     string `json:"locale,omitempty"`
	DateFormat string `json:"date_format,omitempty"`

	// Calculator defaults
	DefaultWeightUnit enum.WeightUnit `json:"default_weight_unit,omitempty"`

	// Notification Settings
	EmailNotifications bool `json:"email_notifications,omitempty"`
	RateChangeAlerts   bool `json:"rate_change_alerts,omitempty"`

	// Feature Flags
	Features ShopFeatures `json:"features,omitempty"`
}

// Scan implements the sql.Scanner interface for ShopSettings
func (ss *ShopSettings) Scan(value interface{}) error {
	if value == nil {
		*ss = ShopSettings{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("failed to scan ShopSettings: unsupported type")
	}

	return json.Unmarshal(bytes, ss)
}

// Value implements the driver.Valuer interface for ShopSettings
func (ss ShopSettings) Value() (driver.Value, error) {
	return json.Marshal(ss)
}

// ShopFeatures holds feature flags for a shop
type ShopFeatures struct {
	EnableOldJewelry   bool `json:"old_jewelry"`
	EnableResale       bool `json:"resale"`
	EnableDashboard    bool `json:"dashboard"`
	EnableMultiUser    bool `json:"multi_user"`
	EnableClientAccess bool `json:"client_access"`
}

// DefaultShopSettings returns default settings for new shops
func DefaultShopSettings() ShopSettings {
	return ShopSettings{
		Currency:           "INR",
		Timezone:           "Asia/Kolkata",
		Locale:             "en-IN",
		DateFormat:         "DD/MM/YYYY",
		DefaultWeightUnit:  enum.WeightUnitGram,
		EmailNotifications: true,
		RateChangeAlerts:   true,
		Features: ShopFeatures{
			EnableOldJewelry:   true,
			EnableResale:       true,
			EnableDashboard:    true,
			EnableMultiUser:    true,
			EnableClientAccess: true,
		},
	}
}
