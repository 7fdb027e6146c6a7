package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/ratnex/ratnex-api/internal/domain/entity"
	"github.com/ratnex/ratnex-api/internal/domain/repository"
	infraRepo "github.com/ratnex/ratnex-api/internal/infrastructure/repository"
	"github.com/ratnex/ratnex-api/internal/pricing"
	"github.com/ratnex/ratnex-api/pkg/apperror"
	"github.com/ratnex/ratnex-api/pkg/utils"
)

// CategoryService handles pricing-category configuration
type CategoryService struct {
	categoryRepo repository.CategoryRepository
}

// NewCategoryService creates a new category service
func NewCategoryService(categoryRepo repository.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// CreateCategory validates and stores a new pricing category. The config
// is rejected as a whole when any field violates its invariants, so a
// half-configured category can never become selectable in the calculator.
func (s *CategoryService) CreateCategory(ctx context.Context, cfg *pricing.CategoryConfig) (*entity.Category, error) {
	// Extract shop ID from context
	shopID, ok := infraRepo.GetShopID(ctx)
	if !ok {
		return nil, apperror.NewBadRequestError("Shop context required")
	}

	cfg.Code = utils.NormalizeCategoryCode(cfg.Code)
	cfg.ItemCategory = strings.TrimSpace(cfg.ItemCategory)

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, apperror.NewValidationError(errs)
	}

	// Check if the stamp code is already taken in this shop
	exists, err := s.categoryRepo.CodeExists(ctx, shopID, cfg.Code, nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperror.NewConflictError("Category with this code already exists")
	}

	category := &entity.Category{
		ShopID: shopID,
		Active: true,
	}
	category.ApplyConfig(cfg)

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

// GetCategory retrieves a category by ID
func (s *CategoryService) GetCategory(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperror.NewNotFoundError("Category")
	}
	return category, nil
}

// GetCategoryByCode retrieves a category by its stamp code
func (s *CategoryService) GetCategoryByCode(ctx context.Context, code string) (*entity.Category, error) {
	shopID, ok := infraRepo.GetShopID(ctx)
	if !ok {
		return nil, apperror.NewBadRequestError("Shop context required")
	}

	category, err := s.categoryRepo.GetByCode(ctx, shopID, code)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperror.NewNotFoundError("Category")
	}
	return category, nil
}

// UpdateCategory validates and applies a full replacement config to an
// existing category
func (s *CategoryService) UpdateCategory(ctx context.Context, id uuid.UUID, cfg *pricing.CategoryConfig) (*entity.Category, error) {
	shopID, ok := infraRepo.GetShopID(ctx)
	if !ok {
		return nil, apperror.NewBadRequestError("Shop context required")
	}

	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperror.NewNotFoundError("Category")
	}

	cfg.Code = utils.NormalizeCategoryCode(cfg.Code)
	cfg.ItemCategory = strings.TrimSpace(cfg.ItemCategory)

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, apperror.NewValidationError(errs)
	}

	// A category's NEW/OLD branch is fixed at creation; changing it would
	// orphan saved selections mid-flow
	if cfg.Type != category.Type {
		return nil, apperror.NewBadRequestError("Category type cannot be changed")
	}

	if cfg.Code != category.Code {
		exists, err := s.categoryRepo.CodeExists(ctx, shopID, cfg.Code, &category.ID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, apperror.NewConflictError("Category with this code already exists")
		}
	}

	category.ApplyConfig(cfg)

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

// SetActive toggles whether a category is offered in the calculator
func (s *CategoryService) SetActive(ctx context.Context, id uuid.UUID, active bool) (*entity.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperror.NewNotFoundError("Category")
	}

	category.Active = active
	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// DeleteCategory soft-deletes a category
func (s *CategoryService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if category == nil {
		return apperror.NewNotFoundError("Category")
	}
	return s.categoryRepo.Delete(ctx, id)
}

// ListCategories retrieves categories for the current shop with filtering
func (s *CategoryService) ListCategories(ctx context.Context, params *repository.CategoryFilterParams) ([]entity.Category, int64, error) {
	shopID, ok := infraRepo.GetShopID(ctx)
	if !ok {
		return nil, 0, apperror.NewBadRequestError("Shop context required")
	}

	params.Pagination.Validate()
	return s.categoryRepo.List(ctx, shopID, params)
}

// UpdateDescriptions replaces only the description set of a category,
// leaving the pricing configuration untouched
func (s *CategoryService) UpdateDescriptions(ctx context.Context, id uuid.UUID, descriptions pricing.Descriptions) (*entity.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperror.NewNotFoundError("Category")
	}

	if errs := descriptions.Validate(); len(errs) > 0 {
		return nil, apperror.NewValidationError(errs)
	}

	category.Descriptions = descriptions
	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}
