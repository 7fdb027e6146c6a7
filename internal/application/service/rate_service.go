package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/ratnex/ratnex-api/internal/domain/entity"
	"github.com/ratnex/ratnex-api/internal/domain/repository"
	"github.com/ratnex/ratnex-api/internal/pricing"
	"github.com/ratnex/ratnex-api/pkg/apperror"
	"github.com/ratnex/ratnex-api/pkg/email"
)

// RateService handles the shop rate board
type RateService struct {
	rateRepo     repository.RateRepository
	shopRepo     repository.ShopRepository
	emailService *email.EmailService
}

// NewRateService creates a new rate service
func NewRateService(rateRepo repository.RateRepository, shopRepo repository.ShopRepository, emailService *email.EmailService) *RateService {
	return &RateService{rateRepo: rateRepo, shopRepo: shopRepo, emailService: emailService}
}

// GetRates retrieves the current rate board for a shop
func (s *RateService) GetRates(ctx context.Context, shopID uuid.UUID) (*entity.Rate, error) {
	rate, err := s.rateRepo.GetByShop(ctx, shopID)
	if err != nil {
		return nil, err
	}
	if rate == nil {
		return nil, apperror.NewNotFoundError("Rates")
	}
	return rate, nil
}

// UpdateRatesInput represents input for updating the rate board
type UpdateRatesInput struct {
	ShopID     uuid.UUID
	GoldBuy    int64
	GoldSell   int64
	SilverBuy  int64
	SilverSell int64
	UpdatedBy  uuid.UUID
}

// UpdateRates replaces the shop's rate board. All four rates are updated
// together so a calculation can never observe a half-applied update.
func (s *RateService) UpdateRates(ctx context.Context, input *UpdateRatesInput) (*entity.Rate, error) {
	candidate := pricing.Rates{
		GoldBuy:    input.GoldBuy,
		GoldSell:   input.GoldSell,
		SilverBuy:  input.SilverBuy,
		SilverSell: input.SilverSell,
	}
	if errs := candidate.Validate(); len(errs) > 0 {
		return nil, apperror.NewValidationError(errs)
	}

	rate := &entity.Rate{
		ShopID:     input.ShopID,
		GoldBuy:    input.GoldBuy,
		GoldSell:   input.GoldSell,
		SilverBuy:  input.SilverBuy,
		SilverSell: input.SilverSell,
		UpdatedBy:  input.UpdatedBy,
	}

	if err := s.rateRepo.Upsert(ctx, rate); err != nil {
		return nil, err
	}

	history := &entity.RateHistory{
		ShopID:     input.ShopID,
		GoldBuy:    input.GoldBuy,
		GoldSell:   input.GoldSell,
		SilverBuy:  input.SilverBuy,
		SilverSell: input.SilverSell,
		UpdatedBy:  input.UpdatedBy,
	}
	if err := s.rateRepo.AppendHistory(ctx, history); err != nil {
		return nil, err
	}

	s.notifyRateChange(ctx, rate)

	updated, err := s.rateRepo.GetByShop(ctx, input.ShopID)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return rate, nil
	}
	return updated, nil
}

// notifyRateChange emails shop members who opted into rate alerts. Send
// failures are swallowed; the rate update already succeeded.
func (s *RateService) notifyRateChange(ctx context.Context, rate *entity.Rate) {
	shop, err := s.shopRepo.GetByID(ctx, rate.ShopID)
	if err != nil || shop == nil || !shop.Settings.RateChangeAlerts {
		return
	}

	members, err := s.shopRepo.GetMembers(ctx, rate.ShopID)
	if err != nil {
		return
	}
	for _, m := range members {
		if m.User.Email == "" {
			continue
		}
		_ = s.emailService.SendRateChangeAlert(m.User.Email, shop.Name, rate.GoldSell, rate.SilverSell)
	}
}

// ListHistory retrieves the most recent rate board updates for a shop
func (s *RateService) ListHistory(ctx context.Context, shopID uuid.UUID, limit int) ([]entity.RateHistory, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.rateRepo.ListHistory(ctx, shopID, limit)
}
