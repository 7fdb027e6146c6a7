package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/ratnex/ratnex-api/internal/domain/enum"
	infraRepo "github.com/ratnex/ratnex-api/internal/infrastructure/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newDashboardServiceForTest(db *gorm.DB) *DashboardService {
	return NewDashboardService(
		infraRepo.NewAnalyticsRepository(db),
		infraRepo.NewRateRepository(db),
		infraRepo.NewSubscriptionRepository(db),
	)
}

func TestDashboardService_GetShopDashboard(t *testing.T) {
	db := setupServiceTest(t)
	shopSvc := newShopServiceForTest(db)
	ctx := context.Background()

	shop, err := shopSvc.CreateShop(ctx, &CreateShopInput{Name: "Gold Palace", OwnerID: uuid.New()})
	require.NoError(t, err)

	rateSvc := newRateServiceForTest(db)
	for _, sell := range []int64{62000, 63000} {
		_, err := rateSvc.UpdateRates(ctx, &UpdateRatesInput{
			ShopID: shop.ID, GoldBuy: 60000, GoldSell: sell,
			SilverBuy: 72000, SilverSell: 75000, UpdatedBy: shop.OwnerID,
		})
		require.NoError(t, err)
	}

	shopCtx := infraRepo.WithShop(ctx, shop.ID)
	categorySvc := NewCategoryService(infraRepo.NewCategoryRepository(db))
	_, err = categorySvc.CreateCategory(shopCtx, newGoldConfig("916HM"))
	require.NoError(t, err)

	dashboard, err := newDashboardServiceForTest(db).GetShopDashboard(ctx, shop.ID)
	require.NoError(t, err)

	require.NotNil(t, dashboard.CurrentRates)
	assert.Equal(t, int64(63000), dashboard.CurrentRates.GoldSell)
	assert.Equal(t, int64(2), dashboard.RateUpdatesWeek)
	assert.Len(t, dashboard.RecentRateChanges, 2)

	// Both updates land on the same day, so the trend has one point
	require.Len(t, dashboard.RateTrend, 1)
	assert.Equal(t, int64(63000), dashboard.RateTrend[0].GoldSell)

	require.Len(t, dashboard.CategoryBreakdown, 1)
	assert.Equal(t, enum.MetalGold.String(), dashboard.CategoryBreakdown[0].Metal)
	assert.Equal(t, int64(1), dashboard.CategoryBreakdown[0].NewCount)

	require.Len(t, dashboard.MemberBreakdown, 1)
	assert.Equal(t, string(enum.RoleAdmin), dashboard.MemberBreakdown[0].Role)
}

func TestDashboardService_GetAdminDashboard(t *testing.T) {
	db := setupServiceTest(t)
	shopSvc := newShopServiceForTest(db)
	ctx := context.Background()

	for _, name := range []string{"Shop One", "Shop Two"} {
		_, err := shopSvc.CreateShop(ctx, &CreateShopInput{Name: name, OwnerID: uuid.New()})
		require.NoError(t, err)
	}

	dashboard, err := newDashboardServiceForTest(db).GetAdminDashboard(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(2), dashboard.TotalShops)
	assert.Equal(t, int64(2), dashboard.SubscriptionsByPlan["active"])
}
