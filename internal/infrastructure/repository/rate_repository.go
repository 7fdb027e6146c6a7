package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/ratnex/ratnex-api/internal/domain/entity"
	domainRepo "github.com/ratnex/ratnex-api/internal/domain/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type rateRepository struct {
	db *gorm.DB
}

// NewRateRepository creates a new rate repository
func NewRateRepository(db *gorm.DB) domainRepo.RateRepository {
	return &rateRepository{db: db}
}

func (r *rateRepository) GetByShop(ctx context.Context, shopID uuid.UUID) (*entity.Rate, error) {
	var rate entity.Rate
	err := r.db.WithContext(ctx).First(&rate, "shop_id = ?", shopID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &rate, err
}

func (r *rateRepository) Upsert(ctx context.Context, rate *entity.Rate) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "shop_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"gold_buy", "gold_sell", "silver_buy", "silver_sell", "updated_by", "updated_at",
			}),
		}).
		Create(rate).Error
}

func (r *rateRepository) AppendHistory(ctx context.Context, history *entity.RateHistory) error {
	return r.db.WithContext(ctx).Create(history).Error
}

func (r *rateRepository) ListHistory(ctx context.Context, shopID uuid.UUID, limit int) ([]entity.RateHistory, error) {
	var history []entity.RateHistory
	err := r.db.WithContext(ctx).
		Where("shop_id = ?", shopID).
		Order("created_at DESC").
		Limit(limit).
		Find(&history).Error
	return history, err
}
