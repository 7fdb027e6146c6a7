package service

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/ratnex/ratnex-api/internal/domain/entity"
	infraRepo "github.com/ratnex/ratnex-api/internal/infrastructure/repository"
	"github.com/ratnex/ratnex-api/pkg/apperror"
	"github.com/ratnex/ratnex-api/pkg/email"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupServiceTest(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Role{},
		&entity.Permission{},
		&entity.PasswordResetToken{},
		&entity.Shop{},
		&entity.ShopMembership{},
		&entity.Subscription{},
		&entity.Rate{},
		&entity.RateHistory{},
		&entity.Category{},
		&entity.IdempotencyKey{},
		&entity.UserSettings{},
	))
	return db
}

func seedShop(t *testing.T, db *gorm.DB) *entity.Shop {
	t.Helper()

	shop := &entity.Shop{
		Name:    "Test Jewellers",
		Slug:    "test-jewellers-" + uuid.New().String()[:8],
		OwnerID: uuid.New(),
	}
	require.NoError(t, db.Create(shop).Error)
	return shop
}

func newRateServiceForTest(db *gorm.DB) *RateService {
	return NewRateService(
		infraRepo.NewRateRepository(db),
		infraRepo.NewShopRepository(db),
		email.NewEmailService(email.EmailConfig{}),
	)
}

func TestRateService_UpdateAndGetRates(t *testing.T) {
	db := setupServiceTest(t)
	shop := seedShop(t, db)
	svc := newRateServiceForTest(db)
	ctx := context.Background()
	updatedBy := uuid.New()

	rate, err := svc.UpdateRates(ctx, &UpdateRatesInput{
		ShopID:     shop.ID,
		GoldBuy:    60000,
		GoldSell:   62000,
		SilverBuy:  72000,
		SilverSell: 75000,
		UpdatedBy:  updatedBy,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(62000), rate.GoldSell)
	assert.Equal(t, updatedBy, rate.UpdatedBy)

	fetched, err := svc.GetRates(ctx, shop.ID)
	require.NoError(t, err)
	assert.Equal(t, rate.ID, fetched.ID)
	assert.Equal(t, int64(60000), fetched.GoldBuy)
}

func TestRateService_UpdateReplacesSingleRow(t *testing.T) {
	db := setupServiceTest(t)
	shop := seedShop(t, db)
	svc := newRateServiceForTest(db)
	ctx := context.Background()

	first, err := svc.UpdateRates(ctx, &UpdateRatesInput{
		ShopID: shop.ID, GoldBuy: 60000, GoldSell: 62000,
		SilverBuy: 72000, SilverSell: 75000, UpdatedBy: uuid.New(),
	})
	require.NoError(t, err)

	second, err := svc.UpdateRates(ctx, &UpdateRatesInput{
		ShopID: shop.ID, GoldBuy: 61000, GoldSell: 63000,
		SilverBuy: 73000, SilverSell: 76000, UpdatedBy: uuid.New(),
	})
	require.NoError(t, err)

	// The board is one row per shop, updated in place
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, int64(63000), second.GoldSell)

	var count int64
	require.NoError(t, db.Model(&entity.Rate{}).Where("shop_id = ?", shop.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestRateService_UpdateAppendsHistory(t *testing.T) {
	db := setupServiceTest(t)
	shop := seedShop(t, db)
	svc := newRateServiceForTest(db)
	ctx := context.Background()

	for _, sell := range []int64{62000, 63000, 64000} {
		_, err := svc.UpdateRates(ctx, &UpdateRatesInput{
			ShopID: shop.ID, GoldBuy: 60000, GoldSell: sell,
			SilverBuy: 72000, SilverSell: 75000, UpdatedBy: uuid.New(),
		})
		require.NoError(t, err)
	}

	history, err := svc.ListHistory(ctx, shop.ID, 10)
	require.NoError(t, err)
	assert.Len(t, history, 3)
}

func TestRateService_UpdateRejectsInvalidRates(t *testing.T) {
	db := setupServiceTest(t)
	shop := seedShop(t, db)
	svc := newRateServiceForTest(db)

	_, err := svc.UpdateRates(context.Background(), &UpdateRatesInput{
		ShopID: shop.ID, GoldBuy: 62000, GoldSell: 60000, // sell below buy
		SilverBuy: 72000, SilverSell: 75000, UpdatedBy: uuid.New(),
	})
	require.Error(t, err)

	appErr := apperror.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 422, appErr.Code)

	// Nothing was written
	var count int64
	require.NoError(t, db.Model(&entity.RateHistory{}).Where("shop_id = ?", shop.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestRateService_GetRatesNotConfigured(t *testing.T) {
	db := setupServiceTest(t)
	shop := seedShop(t, db)
	svc := newRateServiceForTest(db)

	_, err := svc.GetRates(context.Background(), shop.ID)
	require.Error(t, err)

	appErr := apperror.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 404, appErr.Code)
}

func TestRateService_ListHistoryNormalizesLimit(t *testing.T) {
	db := setupServiceTest(t)
	shop := seedShop(t, db)
	svc := newRateServiceForTest(db)
	ctx := context.Background()

	_, err := svc.UpdateRates(ctx, &UpdateRatesInput{
		ShopID: shop.ID, GoldBuy: 60000, GoldSell: 62000,
		SilverBuy: 72000, SilverSell: 75000, UpdatedBy: uuid.New(),
	})
	require.NoError(t, err)

	for _, limit := range []int{0, -5, 1000} {
		history, err := svc.ListHistory(ctx, shop.ID, limit)
		require.NoError(t, err)
		assert.Len(t, history, 1)
	}
}
