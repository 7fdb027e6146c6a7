package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/ratnex/ratnex-api/internal/domain/entity"
	domainRepo "github.com/ratnex/ratnex-api/internal/domain/repository"
	"github.com/ratnex/ratnex-api/pkg/pagination"
	"gorm.io/gorm"
)

type shopRepository struct {
	db *gorm.DB
}

// NewShopRepository creates a new shop repository
func NewShopRepository(db *gorm.DB) domainRepo.ShopRepository {
	return &shopRepository{db: db}
}

func (r *shopRepository) Create(ctx context.Context, shop *entity.Shop) error {
	return r.db.WithContext(ctx).Create(shop).Error
}

func (r *shopRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Shop, error) {
	var shop entity.Shop
	err := r.db.WithContext(ctx).
		Preload("Subscription").
		First(&shop, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &shop, err
}

func (r *shopRepository) GetBySlug(ctx context.Context, slug string) (*entity.Shop, error) {
	var shop entity.Shop
	err := r.db.WithContext(ctx).
		Preload("Subscription").
		First(&shop, "slug = ?", slug).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &shop, err
}

func (r *shopRepository) Update(ctx context.Context, shop *entity.Shop) error {
	return r.db.WithContext(ctx).Save(shop).Error
}

func (r *shopRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Shop{}, "id = ?", id).Error
}

func (r *shopRepository) GetUserShops(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams) ([]entity.Shop, int64, error) {
	var shops []entity.Shop
	var total int64

	base := r.db.WithContext(ctx).
		Model(&entity.Shop{}).
		Joins("JOIN shop_memberships ON shop_memberships.shop_id = shops.id").
		Where("shop_memberships.user_id = ?", userID)

	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := base.
		Preload("Subscription").
		Offset(params.Offset()).
		Limit(params.PerPage).
		Find(&shops).Error
	return shops, total, err
}

func (r *shopRepository) AddMember(ctx context.Context, membership *entity.ShopMembership) error {
	return r.db.WithContext(ctx).Create(membership).Error
}

func (r *shopRepository) RemoveMember(ctx context.Context, shopID, userID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Delete(&entity.ShopMembership{}, "shop_id = ? AND user_id = ?", shopID, userID).Error
}

func (r *shopRepository) GetMembers(ctx context.Context, shopID uuid.UUID) ([]entity.ShopMembership, error) {
	var members []entity.ShopMembership
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("shop_id = ?", shopID).
		Find(&members).Error
	return members, err
}

func (r *shopRepository) IsMember(ctx context.Context, shopID, userID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.ShopMembership{}).
		Where("shop_id = ? AND user_id = ?", shopID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *shopRepository) GetMembership(ctx context.Context, shopID, userID uuid.UUID) (*entity.ShopMembership, error) {
	var membership entity.ShopMembership
	err := r.db.WithContext(ctx).
		First(&membership, "shop_id = ? AND user_id = ?", shopID, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &membership, err
}

func (r *shopRepository) UpdateMemberRole(ctx context.Context, shopID, userID uuid.UUID, role string) error {
	return r.db.WithContext(ctx).
		Model(&entity.ShopMembership{}).
		Where("shop_id = ? AND user_id = ?", shopID, userID).
		Update("role", role).Error
}

func (r *shopRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.Shop{}).
		Where("slug = ?", slug).
		Count(&count).Error
	return count > 0, err
}

func (r *shopRepository) ListAll(ctx context.Context, params *pagination.PaginationParams) ([]entity.Shop, int64, error) {
	var shops []entity.Shop
	var total int64

	if err := r.db.WithContext(ctx).Model(&entity.Shop{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Preload("Subscription").
		Order("created_at DESC").
		Offset(params.Offset()).
		Limit(params.PerPage).
		Find(&shops).Error
	return shops, total, err
}

func (r *shopRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Shop{}).Count(&count).Error
	return count, err
}
