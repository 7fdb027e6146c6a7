package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/ratnex/ratnex-api/internal/domain/entity"
	"github.com/ratnex/ratnex-api/internal/domain/enum"
	domainRepo "github.com/ratnex/ratnex-api/internal/domain/repository"
	"gorm.io/gorm"
)

type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(db *gorm.DB) domainRepo.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) GetCategoryBreakdown(ctx context.Context, shopID uuid.UUID) ([]domainRepo.MetalCategoryCount, error) {
	type row struct {
		Metal int
		Type  int
		Count int64
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Model(&entity.Category{}).
		Select("metal, type, COUNT(*) as count").
		Where("shop_id = ? AND active = ?", shopID, true).
		Group("metal, type").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	byMetal := make(map[int]*domainRepo.MetalCategoryCount)
	order := []int{}
	for _, rw := range rows {
		mc, ok := byMetal[rw.Metal]
		if !ok {
			mc = &domainRepo.MetalCategoryCount{Metal: enum.Metal(rw.Metal).String()}
			byMetal[rw.Metal] = mc
			order = append(order, rw.Metal)
		}
		if enum.CategoryType(rw.Type) == enum.CategoryTypeNew {
			mc.NewCount = rw.Count
		} else {
			mc.OldCount = rw.Count
		}
	}

	results := make([]domainRepo.MetalCategoryCount, 0, len(order))
	for _, m := range order {
		results = append(results, *byMetal[m])
	}
	return results, nil
}

func (r *analyticsRepository) GetMemberBreakdown(ctx context.Context, shopID uuid.UUID) ([]domainRepo.MemberRoleCount, error) {
	var results []domainRepo.MemberRoleCount
	err := r.db.WithContext(ctx).
		Model(&entity.ShopMembership{}).
		Select("role, COUNT(*) as count").
		Where("shop_id = ?", shopID).
		Group("role").
		Order("count DESC").
		Scan(&results).Error
	return results, err
}

func (r *analyticsRepository) GetRateTrend(ctx context.Context, shopID uuid.UUID, days int) ([]domainRepo.RateTrendPoint, error) {
	since := time.Now().AddDate(0, 0, -days)

	var history []entity.RateHistory
	err := r.db.WithContext(ctx).
		Where("shop_id = ? AND created_at >= ?", shopID, since).
		Order("created_at ASC").
		Find(&history).Error
	if err != nil {
		return nil, err
	}

	// Keep the last update of each day
	byDay := make(map[string]domainRepo.RateTrendPoint)
	order := []string{}
	for _, h := range history {
		day := h.CreatedAt.Format("2006-01-02")
		if _, ok := byDay[day]; !ok {
			order = append(order, day)
		}
		byDay[day] = domainRepo.RateTrendPoint{
			Date:       time.Date(h.CreatedAt.Year(), h.CreatedAt.Month(), h.CreatedAt.Day(), 0, 0, 0, 0, h.CreatedAt.Location()),
			GoldSell:   h.GoldSell,
			SilverSell: h.SilverSell,
		}
	}

	results := make([]domainRepo.RateTrendPoint, 0, len(order))
	for _, day := range order {
		results = append(results, byDay[day])
	}
	return results, nil
}

func (r *analyticsRepository) CountRateUpdates(ctx context.Context, shopID uuid.UUID, days int) (int64, error) {
	since := time.Now().AddDate(0, 0, -days)

	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.RateHistory{}).
		Where("shop_id = ? AND created_at >= ?", shopID, since).
		Count(&count).Error
	return count, err
}

func (r *analyticsRepository) CountShops(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Shop{}).Count(&count).Error
	return count, err
}

func (r *analyticsRepository) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.User{}).Count(&count).Error
	return count, err
}
