package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/ratnex/ratnex-api/internal/domain/entity"
	"github.com/ratnex/ratnex-api/internal/domain/enum"
	"github.com/ratnex/ratnex-api/pkg/pagination"
)

// CategoryFilterParams contains filtering parameters for category queries
type CategoryFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Metal      *enum.Metal
	Type       *enum.CategoryType
	ActiveOnly bool
}

// CategoryRepository defines the interface for pricing category data operations
type CategoryRepository interface {
	// Create creates a new category
	Create(ctx context.Context, category *entity.Category) error

	// GetByID retrieves a category by ID
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// GetByCode retrieves a category by its stamp code within a shop.
	// Codes are matched case-insensitively.
	GetByCode(ctx context.Context, shopID uuid.UUID, code string) (*entity.Category, error)

	// Update updates an existing category
	Update(ctx context.Context, category *entity.Category) error

	// Delete soft-deletes a category
	Delete(ctx context.Context, id uuid.UUID) error

	// List retrieves categories for a shop with filtering and pagination
	List(ctx context.Context, shopID uuid.UUID, params *CategoryFilterParams) ([]entity.Category, int64, error)

	// ListByMetalAndType retrieves the active categories the calculator
	// offers for a metal/type selection, ordered by code
	ListByMetalAndType(ctx context.Context, shopID uuid.UUID, metal enum.Metal, categoryType enum.CategoryType) ([]entity.Category, error)

	// ListItemCategories retrieves the distinct item-category names used
	// by a shop's active categories of a metal/type
	ListItemCategories(ctx context.Context, shopID uuid.UUID, metal enum.Metal, categoryType enum.CategoryType) ([]string, error)

	// CodeExists checks if a stamp code is already taken within a shop,
	// optionally excluding one category (for updates)
	CodeExists(ctx context.Context, shopID uuid.UUID, code string, excludeID *uuid.UUID) (bool, error)

	// CountByMetal returns category counts grouped by metal for a shop
	CountByMetal(ctx context.Context, shopID uuid.UUID) (map[string]int64, error)
}
