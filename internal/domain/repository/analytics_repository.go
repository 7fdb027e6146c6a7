package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// MetalCategoryCount represents category counts for one metal
type MetalCategoryCount struct {
	Metal    string
	NewCount int64
	OldCount int64
}

// MemberRoleCount represents member counts per role within a shop
type MemberRoleCount struct {
	Role  string
	Count int64
}

// RateTrendPoint represents one rate board update in a trend series
type RateTrendPoint struct {
	Date       time.Time
	GoldSell   int64
	SilverSell int64
}

// AnalyticsRepository defines interface for dashboard aggregation queries
type AnalyticsRepository interface {
	// GetCategoryBreakdown returns NEW/OLD category counts per metal for a shop
	GetCategoryBreakdown(ctx context.Context, shopID uuid.UUID) ([]MetalCategoryCount, error)

	// GetMemberBreakdown returns member counts per role for a shop
	GetMemberBreakdown(ctx context.Context, shopID uuid.UUID) ([]MemberRoleCount, error)

	// GetRateTrend returns the sell-rate trend for the last N days
	GetRateTrend(ctx context.Context, shopID uuid.UUID, days int) ([]RateTrendPoint, error)

	// CountRateUpdates returns the number of rate board updates in the last N days
	CountRateUpdates(ctx context.Context, shopID uuid.UUID, days int) (int64, error)

	// CountShops returns the total number of shops (super-admin console)
	CountShops(ctx context.Context) (int64, error)

	// CountUsers returns the total number of users (super-admin console)
	CountUsers(ctx context.Context) (int64, error)
}
