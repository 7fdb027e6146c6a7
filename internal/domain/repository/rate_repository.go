package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/ratnex/ratnex-api/internal/domain/entity"
)

// RateRepository defines the interface for rate board data operations
type RateRepository interface {
	// GetByShop retrieves the current rate board for a shop
	GetByShop(ctx context.Context, shopID uuid.UUID) (*entity.Rate, error)

	// Upsert creates the shop's rate row or updates it in place
	Upsert(ctx context.Context, rate *entity.Rate) error

	// AppendHistory records a rate update in the audit trail
	AppendHistory(ctx context.Context, history *entity.RateHistory) error

	// ListHistory retrieves the most recent rate updates for a shop
	ListHistory(ctx context.Context, shopID uuid.UUID, limit int) ([]entity.RateHistory, error)
}
