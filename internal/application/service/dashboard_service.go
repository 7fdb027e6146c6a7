package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/ratnex/ratnex-api/internal/domain/entity"
	"github.com/ratnex/ratnex-api/internal/domain/repository"
)

// DashboardService provides dashboard statistics
type DashboardService struct {
	analyticsRepo repository.AnalyticsRepository
	rateRepo      repository.RateRepository
	subRepo       repository.SubscriptionRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	analyticsRepo repository.AnalyticsRepository,
	rateRepo repository.RateRepository,
	subRepo repository.SubscriptionRepository,
) *DashboardService {
	return &DashboardService{
		analyticsRepo: analyticsRepo,
		rateRepo:      rateRepo,
		subRepo:       subRepo,
	}
}

// ShopDashboard represents the shop admin dashboard payload
type ShopDashboard struct {
	CurrentRates      *entity.Rate                    `json:"current_rates,omitempty"`
	RateUpdatesWeek   int64                           `json:"rate_updates_last_7_days"`
	RateTrend         []RateTrendPoint                `json:"rate_trend"`
	CategoryBreakdown []repository.MetalCategoryCount `json:"category_breakdown"`
	MemberBreakdown   []repository.MemberRoleCount    `json:"member_breakdown"`
	RecentRateChanges []entity.RateHistory            `json:"recent_rate_changes"`
}

// RateTrendPoint is one day of the sell-rate trend
type RateTrendPoint struct {
	Date       string `json:"date"`
	GoldSell   int64  `json:"gold_sell"`
	SilverSell int64  `json:"silver_sell"`
}

// GetShopDashboard assembles the dashboard for one shop
func (s *DashboardService) GetShopDashboard(ctx context.Context, shopID uuid.UUID) (*ShopDashboard, error) {
	dashboard := &ShopDashboard{}

	rate, err := s.rateRepo.GetByShop(ctx, shopID)
	if err != nil {
		return nil, err
	}
	dashboard.CurrentRates = rate

	updates, err := s.analyticsRepo.CountRateUpdates(ctx, shopID, 7)
	if err != nil {
		return nil, err
	}
	dashboard.RateUpdatesWeek = updates

	trend, err := s.analyticsRepo.GetRateTrend(ctx, shopID, 30)
	if err != nil {
		return nil, err
	}
	dashboard.RateTrend = make([]RateTrendPoint, 0, len(trend))
	for _, p := range trend {
		dashboard.RateTrend = append(dashboard.RateTrend, RateTrendPoint{
			Date:       p.Date.Format("Jan 02"),
			GoldSell:   p.GoldSell,
			SilverSell: p.SilverSell,
		})
	}

	categories, err := s.analyticsRepo.GetCategoryBreakdown(ctx, shopID)
	if err != nil {
		return nil, err
	}
	dashboard.CategoryBreakdown = categories

	members, err := s.analyticsRepo.GetMemberBreakdown(ctx, shopID)
	if err != nil {
		return nil, err
	}
	dashboard.MemberBreakdown = members

	history, err := s.rateRepo.ListHistory(ctx, shopID, 10)
	if err != nil {
		return nil, err
	}
	dashboard.RecentRateChanges = history

	return dashboard, nil
}

// AdminDashboard represents the super-admin console dashboard payload
type AdminDashboard struct {
	TotalShops          int64            `json:"total_shops"`
	TotalUsers          int64            `json:"total_users"`
	SubscriptionsByPlan map[string]int64 `json:"subscriptions_by_status"`
}

// GetAdminDashboard assembles the platform-wide dashboard for super admins
func (s *DashboardService) GetAdminDashboard(ctx context.Context) (*AdminDashboard, error) {
	shops, err := s.analyticsRepo.CountShops(ctx)
	if err != nil {
		return nil, err
	}

	users, err := s.analyticsRepo.CountUsers(ctx)
	if err != nil {
		return nil, err
	}

	subs, err := s.subRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	return &AdminDashboard{
		TotalShops:          shops,
		TotalUsers:          users,
		SubscriptionsByPlan: subs,
	}, nil
}
