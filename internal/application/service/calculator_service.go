package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/ratnex/ratnex-api/internal/domain/entity"
	"github.com/ratnex/ratnex-api/internal/domain/enum"
	"github.com/ratnex/ratnex-api/internal/domain/repository"
	infraRepo "github.com/ratnex/ratnex-api/internal/infrastructure/repository"
	"github.com/ratnex/ratnex-api/internal/pricing"
	"github.com/ratnex/ratnex-api/pkg/apperror"
)

// Permission names the calculator cares about
const (
	PermViewMargins         = "view-margins"
	PermViewWholesaleRates  = "view-wholesale-rates"
	PermAccessAllCategories = "access-all-categories"
)

// CalculatorService runs the NEW/OLD jewelry pricing calculators. Every
// calculation reads a snapshot of the shop's rates and the selected
// category taken together, so concurrent updates can never mix into one
// result.
type CalculatorService struct {
	categoryRepo repository.CategoryRepository
	rateRepo     repository.RateRepository
}

// NewCalculatorService creates a new calculator service
func NewCalculatorService(categoryRepo repository.CategoryRepository, rateRepo repository.RateRepository) *CalculatorService {
	return &CalculatorService{categoryRepo: categoryRepo, rateRepo: rateRepo}
}

// PermissionsFor resolves the calculator-relevant grants of a user
func PermissionsFor(user *entity.User) pricing.Permissions {
	return pricing.Permissions{
		CanAccessAllCategories: user.HasPermission(PermAccessAllCategories),
		CanViewMargins:         user.HasPermission(PermViewMargins),
		CanViewWholesaleRates:  user.HasPermission(PermViewWholesaleRates),
	}
}

// CategoryOption is one selectable category in the calculator flow,
// with the description already resolved for the caller's role
type CategoryOption struct {
	ID           uuid.UUID                   `json:"id"`
	Code         string                      `json:"code"`
	Metal        enum.Metal                  `json:"metal"`
	Type         enum.CategoryType           `json:"type"`
	ItemCategory string                      `json:"item_category,omitempty"`
	Description  pricing.ResolvedDescription `json:"description"`
}

// ListOptions returns the categories a user can pick for a metal/type
// selection, with descriptions resolved for their role
func (s *CalculatorService) ListOptions(ctx context.Context, metal enum.Metal, categoryType enum.CategoryType, role enum.Role) ([]CategoryOption, error) {
	shopID, ok := infraRepo.GetShopID(ctx)
	if !ok {
		return nil, apperror.NewBadRequestError("Shop context required")
	}

	categories, err := s.categoryRepo.ListByMetalAndType(ctx, shopID, metal, categoryType)
	if err != nil {
		return nil, err
	}

	options := make([]CategoryOption, 0, len(categories))
	for i := range categories {
		c := &categories[i]
		options = append(options, CategoryOption{
			ID:           c.ID,
			Code:         c.Code,
			Metal:        c.Metal,
			Type:         c.Type,
			ItemCategory: c.ItemCategory,
			Description:  pricing.ResolveDescription(c.Descriptions, role),
		})
	}
	return options, nil
}

// ListItemCategories returns the distinct item-category names offered for
// a metal/type selection
func (s *CalculatorService) ListItemCategories(ctx context.Context, metal enum.Metal, categoryType enum.CategoryType) ([]string, error) {
	shopID, ok := infraRepo.GetShopID(ctx)
	if !ok {
		return nil, apperror.NewBadRequestError("Shop context required")
	}
	return s.categoryRepo.ListItemCategories(ctx, shopID, metal, categoryType)
}

// DescribeCategory resolves the description one category shows to the
// caller's role, subject to the same visibility rules as a calculation
func (s *CalculatorService) DescribeCategory(ctx context.Context, categoryID uuid.UUID, user *entity.User) (*pricing.ResolvedDescription, error) {
	if _, ok := infraRepo.GetShopID(ctx); !ok {
		return nil, apperror.NewBadRequestError("Shop context required")
	}

	category, err := s.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperror.NewNotFoundError("Category")
	}
	if !category.Active && !user.HasPermission(PermAccessAllCategories) {
		return nil, apperror.NewNotFoundError("Category")
	}

	role, _ := enum.ParseRole(user.PrimaryRole())
	resolved := pricing.ResolveDescription(category.Descriptions, role)
	return &resolved, nil
}

// CalculateNewInput represents input for a new-jewelry calculation
type CalculateNewInput struct {
	CategoryID uuid.UUID
	Weight     float64
	WeightUnit enum.WeightUnit
}

// NewCalculation bundles a new-jewelry result with the description the
// caller's role sees
type NewCalculation struct {
	Result      *pricing.NewResult          `json:"result"`
	Description pricing.ResolvedDescription `json:"description"`
}

// CalculateNew prices a freshly made piece for the given user, redacting
// the result to their permissions
func (s *CalculatorService) CalculateNew(ctx context.Context, user *entity.User, input *CalculateNewInput) (*NewCalculation, error) {
	snap, category, err := s.snapshot(ctx, input.CategoryID, user)
	if err != nil {
		return nil, err
	}

	weight := normalizeWeight(input.Weight, input.WeightUnit)

	result, err := pricing.CalculateNewJewelry(*snap, weight)
	if err != nil {
		return nil, mapPricingError(err)
	}

	role, _ := enum.ParseRole(user.PrimaryRole())
	result.Redact(PermissionsFor(user))

	return &NewCalculation{
		Result:      result,
		Description: pricing.ResolveDescription(category.Descriptions, role),
	}, nil
}

// CalculateOldInput represents input for an old-jewelry valuation
type CalculateOldInput struct {
	CategoryID     uuid.UUID
	Weight         float64
	WeightUnit     enum.WeightUnit
	Source         enum.ScrapSource
	ResaleCategory string
}

// OldCalculation bundles an old-jewelry result with the description the
// caller's role sees
type OldCalculation struct {
	Result      *pricing.OldResult          `json:"result"`
	Description pricing.ResolvedDescription `json:"description"`
}

// CalculateOld values a used piece for the given user, redacting the
// result to their permissions
func (s *CalculatorService) CalculateOld(ctx context.Context, user *entity.User, input *CalculateOldInput) (*OldCalculation, error) {
	snap, category, err := s.snapshot(ctx, input.CategoryID, user)
	if err != nil {
		return nil, err
	}

	result, err := pricing.CalculateOldJewelry(*snap, pricing.OldInput{
		WeightGrams:    normalizeWeight(input.Weight, input.WeightUnit),
		Source:         input.Source,
		ResaleCategory: input.ResaleCategory,
	})
	if err != nil {
		return nil, mapPricingError(err)
	}

	role, _ := enum.ParseRole(user.PrimaryRole())
	result.Redact(PermissionsFor(user))

	return &OldCalculation{
		Result:      result,
		Description: pricing.ResolveDescription(category.Descriptions, role),
	}, nil
}

// snapshot loads the rate board and category together. Both reads happen
// before any arithmetic, so the result reflects one consistent state.
func (s *CalculatorService) snapshot(ctx context.Context, categoryID uuid.UUID, user *entity.User) (*pricing.Snapshot, *entity.Category, error) {
	shopID, ok := infraRepo.GetShopID(ctx)
	if !ok {
		return nil, nil, apperror.NewBadRequestError("Shop context required")
	}

	rate, err := s.rateRepo.GetByShop(ctx, shopID)
	if err != nil {
		return nil, nil, err
	}
	if rate == nil {
		return nil, nil, apperror.NewBadRequestError("Rates have not been configured for this shop")
	}

	category, err := s.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		return nil, nil, err
	}
	if category == nil {
		return nil, nil, apperror.NewNotFoundError("Category")
	}

	// Inactive categories stay usable for staff who manage them but are
	// hidden from everyone else
	if !category.Active && !user.HasPermission(PermAccessAllCategories) {
		return nil, nil, apperror.NewNotFoundError("Category")
	}

	return &pricing.Snapshot{
		Rates:    rate.ToPricing(),
		Category: category.PricingConfig(),
	}, category, nil
}

func normalizeWeight(weight float64, unit enum.WeightUnit) float64 {
	if unit == enum.WeightUnitMilligram {
		return pricing.MilligramsToGrams(weight)
	}
	return weight
}

func mapPricingError(err error) error {
	switch {
	case errors.Is(err, pricing.ErrNoCategory), errors.Is(err, pricing.ErrResaleCategoryNotFound):
		return apperror.NewNotFoundError("Category")
	case errors.Is(err, pricing.ErrCategoryTypeMismatch):
		return apperror.NewBadRequestError("Category does not match the requested calculator")
	case errors.Is(err, pricing.ErrMissingConfig):
		return apperror.NewBadRequestError("Category pricing configuration is incomplete")
	case errors.Is(err, pricing.ErrInvalidWeight):
		return apperror.NewBadRequestError("Weight must be a positive number")
	case errors.Is(err, pricing.ErrInvalidRates):
		return apperror.NewBadRequestError("Rates have not been configured for this shop")
	}
	return err
}
