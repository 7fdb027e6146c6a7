package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/ratnex/ratnex-api/internal/domain/entity"
	"github.com/ratnex/ratnex-api/internal/domain/enum"
	infraRepo "github.com/ratnex/ratnex-api/internal/infrastructure/repository"
	"github.com/ratnex/ratnex-api/pkg/apperror"
	"github.com/ratnex/ratnex-api/pkg/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newShopServiceForTest(db *gorm.DB) *ShopService {
	return NewShopService(
		infraRepo.NewShopRepository(db),
		infraRepo.NewSubscriptionRepository(db),
	)
}

func TestShopService_CreateShop(t *testing.T) {
	db := setupServiceTest(t)
	svc := newShopServiceForTest(db)
	ownerID := uuid.New()
	ctx := context.Background()

	shop, err := svc.CreateShop(ctx, &CreateShopInput{
		Name:    "Sri Lakshmi Jewellers",
		OwnerID: ownerID,
	})
	require.NoError(t, err)

	// The slug is derived from the name
	assert.Equal(t, "sri-lakshmi-jewellers", shop.Slug)
	assert.Equal(t, "INR", shop.Settings.Currency)

	// A new shop starts on an active trial
	require.NotNil(t, shop.Subscription)
	assert.Equal(t, enum.PlanTrial, shop.Subscription.Plan)
	assert.Equal(t, enum.SubscriptionActive, shop.Subscription.Status)
	assert.NotNil(t, shop.Subscription.TrialEndsAt)
	assert.True(t, shop.CanCalculate())

	// The owner joins as an admin member
	membership, err := svc.GetMembership(ctx, shop.ID, ownerID)
	require.NoError(t, err)
	require.NotNil(t, membership)
	assert.Equal(t, string(enum.RoleAdmin), membership.Role)
}

func TestShopService_CreateShopRejectsTakenSlug(t *testing.T) {
	db := setupServiceTest(t)
	svc := newShopServiceForTest(db)
	ctx := context.Background()

	_, err := svc.CreateShop(ctx, &CreateShopInput{Name: "Gold Palace", OwnerID: uuid.New()})
	require.NoError(t, err)

	_, err = svc.CreateShop(ctx, &CreateShopInput{Name: "Gold Palace", OwnerID: uuid.New()})
	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, apperror.GetAppError(err).Code)
}

func TestShopService_GetShopBySlug(t *testing.T) {
	db := setupServiceTest(t)
	svc := newShopServiceForTest(db)
	ctx := context.Background()

	created, err := svc.CreateShop(ctx, &CreateShopInput{Name: "Gold Palace", OwnerID: uuid.New()})
	require.NoError(t, err)

	shop, err := svc.GetShopBySlug(ctx, "gold-palace")
	require.NoError(t, err)
	assert.Equal(t, created.ID, shop.ID)

	_, err = svc.GetShopBySlug(ctx, "no-such-shop")
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperror.GetAppError(err).Code)
}

func TestShopService_MemberLifecycle(t *testing.T) {
	db := setupServiceTest(t)
	svc := newShopServiceForTest(db)
	ctx := context.Background()
	ownerID := uuid.New()

	shop, err := svc.CreateShop(ctx, &CreateShopInput{Name: "Gold Palace", OwnerID: ownerID})
	require.NoError(t, err)

	memberID := uuid.New()
	require.NoError(t, svc.InviteMember(ctx, &InviteMemberInput{
		ShopID: shop.ID, UserID: memberID, Role: "manager",
	}))

	// Re-inviting conflicts
	err = svc.InviteMember(ctx, &InviteMemberInput{ShopID: shop.ID, UserID: memberID, Role: "client"})
	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, apperror.GetAppError(err).Code)

	require.NoError(t, svc.UpdateMemberRole(ctx, shop.ID, memberID, "pro_client"))

	membership, err := svc.GetMembership(ctx, shop.ID, memberID)
	require.NoError(t, err)
	require.NotNil(t, membership)
	assert.Equal(t, "pro_client", membership.Role)

	require.NoError(t, svc.RemoveMember(ctx, shop.ID, memberID))
	membership, err = svc.GetMembership(ctx, shop.ID, memberID)
	require.NoError(t, err)
	assert.Nil(t, membership)
}

func TestShopService_MemberRoleValidation(t *testing.T) {
	db := setupServiceTest(t)
	svc := newShopServiceForTest(db)
	ctx := context.Background()

	shop, err := svc.CreateShop(ctx, &CreateShopInput{Name: "Gold Palace", OwnerID: uuid.New()})
	require.NoError(t, err)

	// Neither an unknown role nor super_admin can be granted on a shop
	for _, role := range []string{"owner", "root", string(enum.RoleSuperAdmin)} {
		err := svc.InviteMember(ctx, &InviteMemberInput{ShopID: shop.ID, UserID: uuid.New(), Role: role})
		require.Error(t, err, "role %q", role)
		assert.Equal(t, http.StatusBadRequest, apperror.GetAppError(err).Code)
	}
}

func TestShopService_OwnerCannotBeRemoved(t *testing.T) {
	db := setupServiceTest(t)
	svc := newShopServiceForTest(db)
	ctx := context.Background()
	ownerID := uuid.New()

	shop, err := svc.CreateShop(ctx, &CreateShopInput{Name: "Gold Palace", OwnerID: ownerID})
	require.NoError(t, err)

	err = svc.RemoveMember(ctx, shop.ID, ownerID)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperror.GetAppError(err).Code)
}

func TestShopService_UpdateShop(t *testing.T) {
	db := setupServiceTest(t)
	svc := newShopServiceForTest(db)
	ctx := context.Background()

	shop, err := svc.CreateShop(ctx, &CreateShopInput{Name: "Gold Palace", OwnerID: uuid.New()})
	require.NoError(t, err)

	phone := "+91 98765 43210"
	settings := shop.Settings
	settings.RateChangeAlerts = false

	updated, err := svc.UpdateShop(ctx, &UpdateShopInput{
		ID:       shop.ID,
		Name:     "Gold Palace & Sons",
		Phone:    &phone,
		Settings: &settings,
	})
	require.NoError(t, err)
	assert.Equal(t, "Gold Palace & Sons", updated.Name)
	require.NotNil(t, updated.Phone)
	assert.Equal(t, phone, *updated.Phone)
	assert.False(t, updated.Settings.RateChangeAlerts)

	// The slug never changes on update
	assert.Equal(t, "gold-palace", updated.Slug)
}

func TestShopService_ListAllShops(t *testing.T) {
	db := setupServiceTest(t)
	svc := newShopServiceForTest(db)
	ctx := context.Background()

	for _, name := range []string{"Shop One", "Shop Two", "Shop Three"} {
		_, err := svc.CreateShop(ctx, &CreateShopInput{Name: name, OwnerID: uuid.New()})
		require.NoError(t, err)
	}

	shops, total, err := svc.ListAllShops(ctx, &pagination.PaginationParams{Page: 1, PerPage: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, shops, 2)
}

func TestShopService_GetUserShops(t *testing.T) {
	db := setupServiceTest(t)
	svc := newShopServiceForTest(db)
	ctx := context.Background()
	ownerID := uuid.New()

	_, err := svc.CreateShop(ctx, &CreateShopInput{Name: "Mine", OwnerID: ownerID})
	require.NoError(t, err)
	_, err = svc.CreateShop(ctx, &CreateShopInput{Name: "Someone Else's", OwnerID: uuid.New()})
	require.NoError(t, err)

	shops, total, err := svc.GetUserShops(ctx, ownerID, &pagination.PaginationParams{Page: 1, PerPage: 15})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, shops, 1)
	assert.Equal(t, "Mine", shops[0].Name)
}

func TestShopService_DeleteShop(t *testing.T) {
	db := setupServiceTest(t)
	svc := newShopServiceForTest(db)
	ctx := context.Background()

	shop, err := svc.CreateShop(ctx, &CreateShopInput{Name: "Gold Palace", OwnerID: uuid.New()})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteShop(ctx, shop.ID))

	_, err = svc.GetShop(ctx, shop.ID)
	require.Error(t, err)

	// Soft delete keeps the row
	var count int64
	require.NoError(t, db.Unscoped().Model(&entity.Shop{}).Where("id = ?", shop.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
