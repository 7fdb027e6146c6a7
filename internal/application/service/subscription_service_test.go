package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/ratnex/ratnex-api/internal/domain/enum"
	infraRepo "github.com/ratnex/ratnex-api/internal/infrastructure/repository"
	"github.com/ratnex/ratnex-api/pkg/apperror"
	"github.com/ratnex/ratnex-api/pkg/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func subscriptionFixture(t *testing.T) (context.Context, *SubscriptionService, *ShopService, uuid.UUID, *gorm.DB) {
	t.Helper()
	db := setupServiceTest(t)
	shopSvc := newShopServiceForTest(db)
	ctx := context.Background()

	shop, err := shopSvc.CreateShop(ctx, &CreateShopInput{Name: "Gold Palace", OwnerID: uuid.New()})
	require.NoError(t, err)

	svc := NewSubscriptionService(
		infraRepo.NewSubscriptionRepository(db),
		infraRepo.NewShopRepository(db),
	)
	return ctx, svc, shopSvc, shop.ID, db
}

func TestSubscriptionService_ChangePlan(t *testing.T) {
	ctx, svc, shopSvc, shopID, _ := subscriptionFixture(t)

	sub, err := svc.ChangePlan(ctx, &ChangePlanInput{
		ShopID:     shopID,
		Plan:       "premium",
		PeriodDays: 365,
	})
	require.NoError(t, err)

	assert.Equal(t, enum.PlanPremium, sub.Plan)
	assert.Equal(t, enum.SubscriptionActive, sub.Status)
	// Leaving trial clears the trial deadline
	assert.Nil(t, sub.TrialEndsAt)
	require.NotNil(t, sub.CurrentPeriodEnd)
	assert.WithinDuration(t, time.Now().AddDate(0, 0, 365), *sub.CurrentPeriodEnd, time.Minute)

	shop, err := shopSvc.GetShop(ctx, shopID)
	require.NoError(t, err)
	assert.True(t, shop.CanCalculate())
}

func TestSubscriptionService_ChangePlanDefaultsPeriod(t *testing.T) {
	ctx, svc, _, shopID, _ := subscriptionFixture(t)

	sub, err := svc.ChangePlan(ctx, &ChangePlanInput{ShopID: shopID, Plan: "basic"})
	require.NoError(t, err)

	require.NotNil(t, sub.CurrentPeriodEnd)
	assert.WithinDuration(t, time.Now().AddDate(0, 0, 30), *sub.CurrentPeriodEnd, time.Minute)
}

func TestSubscriptionService_ChangePlanRejectsUnknownPlan(t *testing.T) {
	ctx, svc, _, shopID, _ := subscriptionFixture(t)

	_, err := svc.ChangePlan(ctx, &ChangePlanInput{ShopID: shopID, Plan: "enterprise"})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperror.GetAppError(err).Code)
}

func TestSubscriptionService_SuspendBlocksCalculations(t *testing.T) {
	ctx, svc, shopSvc, shopID, _ := subscriptionFixture(t)

	sub, err := svc.UpdateStatus(ctx, &UpdateStatusInput{ShopID: shopID, Status: "suspended"})
	require.NoError(t, err)
	assert.Equal(t, enum.SubscriptionSuspended, sub.Status)

	shop, err := shopSvc.GetShop(ctx, shopID)
	require.NoError(t, err)
	assert.False(t, shop.CanCalculate())

	// Past-due shops keep calculating while billing is sorted out
	_, err = svc.UpdateStatus(ctx, &UpdateStatusInput{ShopID: shopID, Status: "past_due"})
	require.NoError(t, err)

	shop, err = shopSvc.GetShop(ctx, shopID)
	require.NoError(t, err)
	assert.True(t, shop.CanCalculate())
}

func TestSubscriptionService_CancelRecordsTimestamp(t *testing.T) {
	ctx, svc, _, shopID, _ := subscriptionFixture(t)

	sub, err := svc.UpdateStatus(ctx, &UpdateStatusInput{ShopID: shopID, Status: "cancelled"})
	require.NoError(t, err)
	assert.Equal(t, enum.SubscriptionCancelled, sub.Status)
	require.NotNil(t, sub.CancelledAt)

	// Reactivating clears it again
	sub, err = svc.UpdateStatus(ctx, &UpdateStatusInput{ShopID: shopID, Status: "active"})
	require.NoError(t, err)
	assert.Nil(t, sub.CancelledAt)
}

func TestSubscriptionService_UpdateStatusRejectsUnknownStatus(t *testing.T) {
	ctx, svc, _, shopID, _ := subscriptionFixture(t)

	_, err := svc.UpdateStatus(ctx, &UpdateStatusInput{ShopID: shopID, Status: "paused"})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperror.GetAppError(err).Code)
}

func TestSubscriptionService_UnknownShop(t *testing.T) {
	ctx, svc, _, _, _ := subscriptionFixture(t)

	_, err := svc.GetShopSubscription(ctx, uuid.New())
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperror.GetAppError(err).Code)

	_, err = svc.ChangePlan(ctx, &ChangePlanInput{ShopID: uuid.New(), Plan: "basic"})
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperror.GetAppError(err).Code)
}

func TestSubscriptionService_ListByStatus(t *testing.T) {
	ctx, svc, shopSvc, _, _ := subscriptionFixture(t)

	// A second shop, suspended
	other, err := shopSvc.CreateShop(ctx, &CreateShopInput{Name: "Second Shop", OwnerID: uuid.New()})
	require.NoError(t, err)
	_, err = svc.UpdateStatus(ctx, &UpdateStatusInput{ShopID: other.ID, Status: "suspended"})
	require.NoError(t, err)

	params := &pagination.PaginationParams{Page: 1, PerPage: 15}

	all, total, err := svc.ListSubscriptions(ctx, "", params)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, all, 2)

	suspended, total, err := svc.ListSubscriptions(ctx, "suspended", params)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, suspended, 1)
	assert.Equal(t, other.ID, suspended[0].ShopID)

	_, _, err = svc.ListSubscriptions(ctx, "bogus", params)
	require.Error(t, err)
}

func TestSubscriptionService_CountByStatus(t *testing.T) {
	ctx, svc, shopSvc, _, _ := subscriptionFixture(t)

	other, err := shopSvc.CreateShop(ctx, &CreateShopInput{Name: "Second Shop", OwnerID: uuid.New()})
	require.NoError(t, err)
	_, err = svc.UpdateStatus(ctx, &UpdateStatusInput{ShopID: other.ID, Status: "cancelled"})
	require.NoError(t, err)

	counts, err := svc.CountByStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), counts["active"])
	assert.Equal(t, int64(1), counts["cancelled"])
}
