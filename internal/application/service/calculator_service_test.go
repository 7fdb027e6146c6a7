package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/ratnex/ratnex-api/internal/domain/entity"
	"github.com/ratnex/ratnex-api/internal/domain/enum"
	infraRepo "github.com/ratnex/ratnex-api/internal/infrastructure/repository"
	"github.com/ratnex/ratnex-api/internal/pricing"
	"github.com/ratnex/ratnex-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func userWithPermissions(roleName string, perms ...string) *entity.User {
	role := entity.Role{Name: roleName}
	for _, p := range perms {
		role.Permissions = append(role.Permissions, entity.Permission{Name: p})
	}
	return &entity.User{
		FirstName: "Test",
		LastName:  "User",
		Email:     roleName + "@shop.test",
		Roles:     []entity.Role{role},
	}
}

func calculatorTestFixture(t *testing.T) (context.Context, *CalculatorService, *entity.Category, *entity.Category, *gorm.DB) {
	t.Helper()
	db := setupServiceTest(t)
	shop := seedShop(t, db)
	ctx := infraRepo.WithShop(context.Background(), shop.ID)

	rateSvc := newRateServiceForTest(db)
	_, err := rateSvc.UpdateRates(ctx, &UpdateRatesInput{
		ShopID: shop.ID, GoldBuy: 60000, GoldSell: 62000,
		SilverBuy: 72000, SilverSell: 75000, UpdatedBy: shop.OwnerID,
	})
	require.NoError(t, err)

	categorySvc := NewCategoryService(infraRepo.NewCategoryRepository(db))

	newCat, err := categorySvc.CreateCategory(ctx, newGoldConfig("916HM"))
	require.NoError(t, err)

	oldCfg := newGoldConfig("OLD916")
	oldCfg.Type = enum.CategoryTypeOld
	oldCfg.New = nil
	oldCfg.Old = &pricing.OldConfig{
		TruePurityPercentage:    75,
		ScrapBuyOwnPercentage:   70,
		ScrapBuyOtherPercentage: 65,
	}
	oldCat, err := categorySvc.CreateCategory(ctx, oldCfg)
	require.NoError(t, err)

	svc := NewCalculatorService(infraRepo.NewCategoryRepository(db), infraRepo.NewRateRepository(db))
	return ctx, svc, newCat, oldCat, db
}

func TestCalculatorService_CalculateNew(t *testing.T) {
	ctx, svc, newCat, _, _ := calculatorTestFixture(t)
	user := userWithPermissions("admin", PermViewMargins, PermViewWholesaleRates, PermAccessAllCategories)

	calc, err := svc.CalculateNew(ctx, user, &CalculateNewInput{
		CategoryID: newCat.ID,
		Weight:     10,
		WeightUnit: enum.WeightUnitGram,
	})
	require.NoError(t, err)

	assert.InDelta(t, 62300.0, calc.Result.FinalSellingAmount, 1e-9)
	require.NotNil(t, calc.Result.Margin)
	assert.NotNil(t, calc.Result.Margin.Wholesale)
}

func TestCalculatorService_MilligramWeightsAreConverted(t *testing.T) {
	ctx, svc, newCat, _, _ := calculatorTestFixture(t)
	user := userWithPermissions("admin", PermViewMargins, PermViewWholesaleRates)

	grams, err := svc.CalculateNew(ctx, user, &CalculateNewInput{
		CategoryID: newCat.ID, Weight: 10, WeightUnit: enum.WeightUnitGram,
	})
	require.NoError(t, err)

	milligrams, err := svc.CalculateNew(ctx, user, &CalculateNewInput{
		CategoryID: newCat.ID, Weight: 10000, WeightUnit: enum.WeightUnitMilligram,
	})
	require.NoError(t, err)

	assert.Equal(t, grams.Result.FinalSellingAmount, milligrams.Result.FinalSellingAmount)
	assert.InDelta(t, 10.0, milligrams.Result.WeightGrams, 1e-9)
}

func TestCalculatorService_ResultRedactedByPermissions(t *testing.T) {
	ctx, svc, newCat, _, _ := calculatorTestFixture(t)
	client := userWithPermissions("client", "use-calculator")

	calc, err := svc.CalculateNew(ctx, client, &CalculateNewInput{
		CategoryID: newCat.ID, Weight: 10, WeightUnit: enum.WeightUnitGram,
	})
	require.NoError(t, err)

	assert.Nil(t, calc.Result.Margin)
	assert.Zero(t, calc.Result.Percentages.Buying)
	assert.InDelta(t, 62300.0, calc.Result.FinalSellingAmount, 1e-9)
}

func TestCalculatorService_CalculateOld(t *testing.T) {
	ctx, svc, _, oldCat, _ := calculatorTestFixture(t)
	user := userWithPermissions("manager", PermViewMargins)

	calc, err := svc.CalculateOld(ctx, user, &CalculateOldInput{
		CategoryID: oldCat.ID,
		Weight:     10,
		WeightUnit: enum.WeightUnitGram,
		Source:     enum.ScrapSourceOwn,
	})
	require.NoError(t, err)

	assert.InDelta(t, 42000.0, calc.Result.TotalScrapValue, 1e-9)
	assert.NotNil(t, calc.Result.Margin)
}

func TestCalculatorService_DescriptionResolvedForRole(t *testing.T) {
	ctx, svc, newCat, _, db := calculatorTestFixture(t)

	categorySvc := NewCategoryService(infraRepo.NewCategoryRepository(db))
	_, err := categorySvc.UpdateDescriptions(ctx, newCat.ID, pricing.Descriptions{
		Admin:  "Wholesale margin 5%",
		Client: "Premium gold jewelry",
	})
	require.NoError(t, err)

	admin := userWithPermissions("admin", PermViewMargins)
	calc, err := svc.CalculateNew(ctx, admin, &CalculateNewInput{
		CategoryID: newCat.ID, Weight: 10, WeightUnit: enum.WeightUnitGram,
	})
	require.NoError(t, err)
	assert.Equal(t, "Wholesale margin 5%", calc.Description.Content)

	client := userWithPermissions("client")
	calc, err = svc.CalculateNew(ctx, client, &CalculateNewInput{
		CategoryID: newCat.ID, Weight: 10, WeightUnit: enum.WeightUnitGram,
	})
	require.NoError(t, err)
	assert.Equal(t, "Premium gold jewelry", calc.Description.Content)
}

func TestCalculatorService_InactiveCategoryHiddenFromClients(t *testing.T) {
	ctx, svc, newCat, _, db := calculatorTestFixture(t)

	categorySvc := NewCategoryService(infraRepo.NewCategoryRepository(db))
	_, err := categorySvc.SetActive(ctx, newCat.ID, false)
	require.NoError(t, err)

	client := userWithPermissions("client")
	_, err = svc.CalculateNew(ctx, client, &CalculateNewInput{
		CategoryID: newCat.ID, Weight: 10, WeightUnit: enum.WeightUnitGram,
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperror.GetAppError(err).Code)

	// Staff with full category access can still calculate against it
	admin := userWithPermissions("admin", PermAccessAllCategories, PermViewMargins)
	_, err = svc.CalculateNew(ctx, admin, &CalculateNewInput{
		CategoryID: newCat.ID, Weight: 10, WeightUnit: enum.WeightUnitGram,
	})
	require.NoError(t, err)
}

func TestCalculatorService_TypeMismatchRejected(t *testing.T) {
	ctx, svc, newCat, oldCat, _ := calculatorTestFixture(t)
	user := userWithPermissions("admin", PermViewMargins)

	_, err := svc.CalculateOld(ctx, user, &CalculateOldInput{
		CategoryID: newCat.ID, Weight: 10, Source: enum.ScrapSourceOwn,
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperror.GetAppError(err).Code)

	_, err = svc.CalculateNew(ctx, user, &CalculateNewInput{
		CategoryID: oldCat.ID, Weight: 10,
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperror.GetAppError(err).Code)
}

func TestCalculatorService_RatesRequired(t *testing.T) {
	db := setupServiceTest(t)
	shop := seedShop(t, db)
	ctx := infraRepo.WithShop(context.Background(), shop.ID)

	categorySvc := NewCategoryService(infraRepo.NewCategoryRepository(db))
	cat, err := categorySvc.CreateCategory(ctx, newGoldConfig("916HM"))
	require.NoError(t, err)

	svc := NewCalculatorService(infraRepo.NewCategoryRepository(db), infraRepo.NewRateRepository(db))
	user := userWithPermissions("admin", PermViewMargins)

	_, err = svc.CalculateNew(ctx, user, &CalculateNewInput{CategoryID: cat.ID, Weight: 10})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperror.GetAppError(err).Code)
}

func TestCalculatorService_ListOptions(t *testing.T) {
	ctx, svc, _, _, db := calculatorTestFixture(t)

	options, err := svc.ListOptions(ctx, enum.MetalGold, enum.CategoryTypeNew, enum.RoleClient)
	require.NoError(t, err)
	require.Len(t, options, 1)
	assert.Equal(t, "916HM", options[0].Code)

	// Deactivated categories drop out of the calculator's option list
	categorySvc := NewCategoryService(infraRepo.NewCategoryRepository(db))
	_, err = categorySvc.SetActive(ctx, options[0].ID, false)
	require.NoError(t, err)

	options, err = svc.ListOptions(ctx, enum.MetalGold, enum.CategoryTypeNew, enum.RoleClient)
	require.NoError(t, err)
	assert.Empty(t, options)
}

func TestCalculatorService_ListItemCategories(t *testing.T) {
	ctx, svc, _, _, _ := calculatorTestFixture(t)

	names, err := svc.ListItemCategories(ctx, enum.MetalGold, enum.CategoryTypeNew)
	require.NoError(t, err)
	assert.Equal(t, []string{"chain"}, names)
}

func TestPermissionsFor(t *testing.T) {
	admin := userWithPermissions("admin", PermViewMargins, PermViewWholesaleRates, PermAccessAllCategories)
	perms := PermissionsFor(admin)
	assert.True(t, perms.CanViewMargins)
	assert.True(t, perms.CanViewWholesaleRates)
	assert.True(t, perms.CanAccessAllCategories)

	manager := userWithPermissions("manager", PermViewMargins)
	perms = PermissionsFor(manager)
	assert.True(t, perms.CanViewMargins)
	assert.False(t, perms.CanViewWholesaleRates)
	assert.False(t, perms.CanAccessAllCategories)

	client := userWithPermissions("client", "use-calculator")
	assert.Equal(t, pricing.Permissions{}, PermissionsFor(client))
}

func TestCalculatorService_DescribeCategory(t *testing.T) {
	ctx, svc, newCat, _, db := calculatorTestFixture(t)

	categorySvc := NewCategoryService(infraRepo.NewCategoryRepository(db))
	_, err := categorySvc.UpdateDescriptions(ctx, newCat.ID, pricing.Descriptions{
		Admin:  "Wholesale margin 5%",
		Client: "Premium gold jewelry",
	})
	require.NoError(t, err)

	admin := userWithPermissions("admin")
	description, err := svc.DescribeCategory(ctx, newCat.ID, admin)
	require.NoError(t, err)
	assert.Equal(t, "Wholesale margin 5%", description.Content)

	client := userWithPermissions("client")
	description, err = svc.DescribeCategory(ctx, newCat.ID, client)
	require.NoError(t, err)
	assert.Equal(t, "Premium gold jewelry", description.Content)

	_, err = svc.DescribeCategory(ctx, uuid.New(), admin)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperror.GetAppError(err).Code)

	_, err = svc.DescribeCategory(context.Background(), newCat.ID, admin)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperror.GetAppError(err).Code)
}

func TestCalculatorService_DescribeCategoryHidesInactive(t *testing.T) {
	ctx, svc, newCat, _, db := calculatorTestFixture(t)

	categorySvc := NewCategoryService(infraRepo.NewCategoryRepository(db))
	_, err := categorySvc.SetActive(ctx, newCat.ID, false)
	require.NoError(t, err)

	client := userWithPermissions("client")
	_, err = svc.DescribeCategory(ctx, newCat.ID, client)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperror.GetAppError(err).Code)

	staff := userWithPermissions("admin", PermAccessAllCategories)
	_, err = svc.DescribeCategory(ctx, newCat.ID, staff)
	require.NoError(t, err)
}

func TestCalculatorService_ShopContextRequired(t *testing.T) {
	db := setupServiceTest(t)
	svc := NewCalculatorService(infraRepo.NewCategoryRepository(db), infraRepo.NewRateRepository(db))
	user := userWithPermissions("admin")

	_, err := svc.ListOptions(context.Background(), enum.MetalGold, enum.CategoryTypeNew, enum.RoleAdmin)
	require.Error(t, err)

	_, err = svc.CalculateNew(context.Background(), user, &CalculateNewInput{Weight: 10})
	require.Error(t, err)
}
