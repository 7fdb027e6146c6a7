package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/ratnex/ratnex-api/internal/domain/entity"
	"github.com/ratnex/ratnex-api/internal/domain/enum"
	domainRepo "github.com/ratnex/ratnex-api/internal/domain/repository"
	"gorm.io/gorm"
)

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *gorm.DB) domainRepo.CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *categoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	var category entity.Category
	err := r.db.WithContext(ctx).
		Scopes(ShopScope(ctx)).
		First(&category, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &category, err
}

func (r *categoryRepository) GetByCode(ctx context.Context, shopID uuid.UUID, code string) (*entity.Category, error) {
	var category entity.Category
	err := r.db.WithContext(ctx).
		Where("shop_id = ?", shopID).
		Where("UPPER(code) = ?", strings.ToUpper(strings.TrimSpace(code))).
		First(&category).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &category, err
}

func (r *categoryRepository) Update(ctx context.Context, category *entity.Category) error {
	return r.db.WithContext(ctx).Save(category).Error
}

func (r *categoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Scopes(ShopScope(ctx)).
		Delete(&entity.Category{}, "id = ?", id).Error
}

func (r *categoryRepository) List(ctx context.Context, shopID uuid.UUID, params *domainRepo.CategoryFilterParams) ([]entity.Category, int64, error) {
	var categories []entity.Category
	var total int64

	query := r.db.WithContext(ctx).
		Model(&entity.Category{}).
		Where("shop_id = ?", shopID)

	if params.Search != "" {
		search := "%" + strings.ToUpper(params.Search) + "%"
		query = query.Where("UPPER(code) LIKE ? OR UPPER(item_category) LIKE ?", search, search)
	}
	if params.Metal != nil {
		query = query.Where("metal = ?", *params.Metal)
	}
	if params.Type != nil {
		query = query.Where("type = ?", *params.Type)
	}
	if params.ActiveOnly {
		query = query.Where("active = ?", true)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Order("code ASC").
		Offset(params.Pagination.Offset()).
		Limit(params.Pagination.PerPage).
		Find(&categories).Error
	return categories, total, err
}

func (r *categoryRepository) ListByMetalAndType(ctx context.Context, shopID uuid.UUID, metal enum.Metal, categoryType enum.CategoryType) ([]entity.Category, error) {
	var categories []entity.Category
	err := r.db.WithContext(ctx).
		Where("shop_id = ? AND metal = ? AND type = ? AND active = ?", shopID, metal, categoryType, true).
		Order("code ASC").
		Find(&categories).Error
	return categories, err
}

func (r *categoryRepository) ListItemCategories(ctx context.Context, shopID uuid.UUID, metal enum.Metal, categoryType enum.CategoryType) ([]string, error) {
	var names []string
	err := r.db.WithContext(ctx).
		Model(&entity.Category{}).
		Distinct("item_category").
		Where("shop_id = ? AND metal = ? AND type = ? AND active = ? AND item_category <> ''", shopID, metal, categoryType, true).
		Order("item_category ASC").
		Pluck("item_category", &names).Error
	return names, err
}

func (r *categoryRepository) CodeExists(ctx context.Context, shopID uuid.UUID, code string, excludeID *uuid.UUID) (bool, error) {
	query := r.db.WithContext(ctx).
		Model(&entity.Category{}).
		Where("shop_id = ?", shopID).
		Where("UPPER(code) = ?", strings.ToUpper(strings.TrimSpace(code)))
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}

	var count int64
	err := query.Count(&count).Error
	return count > 0, err
}

func (r *categoryRepository) CountByMetal(ctx context.Context, shopID uuid.UUID) (map[string]int64, error) {
	type row struct {
		Metal enum.Metal
		Count int64
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Model(&entity.Category{}).
		Select("metal, COUNT(*) as count").
		Where("shop_id = ?", shopID).
		Group("metal").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.Metal.String()] = r.Count
	}
	return counts, nil
}
