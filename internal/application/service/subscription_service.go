package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/ratnex/ratnex-api/internal/domain/entity"
	"github.com/ratnex/ratnex-api/internal/domain/enum"
	"github.com/ratnex/ratnex-api/internal/domain/repository"
	"github.com/ratnex/ratnex-api/pkg/apperror"
	"github.com/ratnex/ratnex-api/pkg/pagination"
)

// SubscriptionService handles subscription management for the super-admin
// console
type SubscriptionService struct {
	subRepo  repository.SubscriptionRepository
	shopRepo repository.ShopRepository
}

// NewSubscriptionService creates a new subscription service
func NewSubscriptionService(subRepo repository.SubscriptionRepository, shopRepo repository.ShopRepository) *SubscriptionService {
	return &SubscriptionService{subRepo: subRepo, shopRepo: shopRepo}
}

// GetShopSubscription retrieves the subscription for a shop
func (s *SubscriptionService) GetShopSubscription(ctx context.Context, shopID uuid.UUID) (*entity.Subscription, error) {
	sub, err := s.subRepo.GetByShop(ctx, shopID)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, apperror.ErrNotFound
	}
	return sub, nil
}

// ChangePlanInput represents input for changing a shop's plan
type ChangePlanInput struct {
	ShopID     uuid.UUID
	Plan       string
	PeriodDays int
	Notes      *string
}

// ChangePlan moves a shop onto a different plan and opens a new billing
// period
func (s *SubscriptionService) ChangePlan(ctx context.Context, input *ChangePlanInput) (*entity.Subscription, error) {
	plan, ok := enum.ParseSubscriptionPlan(input.Plan)
	if !ok {
		return nil, apperror.NewBadRequestError("Unknown subscription plan")
	}

	sub, err := s.subRepo.GetByShop(ctx, input.ShopID)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, apperror.ErrNotFound
	}

	periodDays := input.PeriodDays
	if periodDays <= 0 {
		periodDays = 30
	}
	periodEnd := time.Now().AddDate(0, 0, periodDays)

	sub.Plan = plan
	sub.Status = enum.SubscriptionActive
	sub.CurrentPeriodEnd = &periodEnd
	sub.CancelledAt = nil
	if plan != enum.PlanTrial {
		sub.TrialEndsAt = nil
	}
	if input.Notes != nil {
		sub.Notes = input.Notes
	}

	if err := s.subRepo.Update(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

// UpdateStatusInput represents input for updating a subscription status
type UpdateStatusInput struct {
	ShopID uuid.UUID
	Status string
	Notes  *string
}

// UpdateStatus transitions a subscription between lifecycle states
// (suspend, reactivate, mark past due, cancel)
func (s *SubscriptionService) UpdateStatus(ctx context.Context, input *UpdateStatusInput) (*entity.Subscription, error) {
	status, ok := enum.ParseSubscriptionStatus(input.Status)
	if !ok {
		return nil, apperror.NewBadRequestError("Unknown subscription status")
	}

	sub, err := s.subRepo.GetByShop(ctx, input.ShopID)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, apperror.ErrNotFound
	}

	sub.Status = status
	if status == enum.SubscriptionCancelled {
		now := time.Now()
		sub.CancelledAt = &now
	} else {
		sub.CancelledAt = nil
	}
	if input.Notes != nil {
		sub.Notes = input.Notes
	}

	if err := s.subRepo.Update(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

// ListSubscriptions retrieves subscriptions, optionally filtered by status
func (s *SubscriptionService) ListSubscriptions(ctx context.Context, status string, params *pagination.PaginationParams) ([]entity.Subscription, int64, error) {
	if status != "" {
		if _, ok := enum.ParseSubscriptionStatus(status); !ok {
			return nil, 0, apperror.NewBadRequestError("Unknown subscription status")
		}
	}
	params.Validate()
	return s.subRepo.ListByStatus(ctx, status, params)
}

// CountByStatus returns subscription counts grouped by status
func (s *SubscriptionService) CountByStatus(ctx context.Context) (map[string]int64, error) {
	return s.subRepo.CountByStatus(ctx)
}
