package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/ratnex/ratnex-api/internal/domain/entity"
	"github.com/ratnex/ratnex-api/internal/domain/enum"
	"github.com/ratnex/ratnex-api/internal/domain/repository"
	"github.com/ratnex/ratnex-api/pkg/apperror"
	"github.com/ratnex/ratnex-api/pkg/pagination"
	"github.com/ratnex/ratnex-api/pkg/utils"
)

// defaultTrialDays is the trial window granted to newly onboarded shops
const defaultTrialDays = 14

// ShopService handles shop-related operations
type ShopService struct {
	shopRepo repository.ShopRepository
	subRepo  repository.SubscriptionRepository
}

// NewShopService creates a new shop service
func NewShopService(shopRepo repository.ShopRepository, subRepo repository.SubscriptionRepository) *ShopService {
	return &ShopService{shopRepo: shopRepo, subRepo: subRepo}
}

// CreateShopInput represents input for creating a shop
type CreateShopInput struct {
	Name     string
	Slug     string
	OwnerID  uuid.UUID
	Address  *string
	Phone    *string
	Settings *entity.ShopSettings
}

// CreateShop creates a new shop with a trial subscription and the owner
// as its first admin member
func (s *ShopService) CreateShop(ctx context.Context, input *CreateShopInput) (*entity.Shop, error) {
	slug := input.Slug
	if slug == "" {
		slug = utils.GenerateShopSlug(input.Name)
	}

	// Check if slug already exists
	existing, err := s.shopRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Shop slug already exists")
	}

	settings := entity.DefaultShopSettings()
	if input.Settings != nil {
		settings = *input.Settings
	}

	shop := &entity.Shop{
		Name:     input.Name,
		Slug:     slug,
		OwnerID:  input.OwnerID,
		Address:  input.Address,
		Phone:    input.Phone,
		Settings: settings,
	}

	if err := s.shopRepo.Create(ctx, shop); err != nil {
		return nil, err
	}

	// Every shop starts on a trial subscription
	sub := entity.NewTrialSubscription(shop.ID, defaultTrialDays)
	if err := s.subRepo.Create(ctx, sub); err != nil {
		return nil, err
	}
	shop.Subscription = sub

	// Add owner as admin member
	membership := &entity.ShopMembership{
		ShopID: shop.ID,
		UserID: input.OwnerID,
		Role:   string(enum.RoleAdmin),
	}
	_ = s.shopRepo.AddMember(ctx, membership)

	return shop, nil
}

// GetShop retrieves a shop by ID
func (s *ShopService) GetShop(ctx context.Context, id uuid.UUID) (*entity.Shop, error) {
	shop, err := s.shopRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if shop == nil {
		return nil, apperror.ErrNotFound
	}
	return shop, nil
}

// GetShopBySlug retrieves a shop by its subdomain slug
func (s *ShopService) GetShopBySlug(ctx context.Context, slug string) (*entity.Shop, error) {
	shop, err := s.shopRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if shop == nil {
		return nil, apperror.ErrNotFound
	}
	return shop, nil
}

// GetUserShops retrieves all shops a user belongs to
func (s *ShopService) GetUserShops(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams) ([]entity.Shop, int64, error) {
	params.Validate()
	return s.shopRepo.GetUserShops(ctx, userID, params)
}

// UpdateShopInput represents input for updating a shop
type UpdateShopInput struct {
	ID       uuid.UUID
	Name     string
	Address  *string
	Phone    *string
	Settings *entity.ShopSettings
}

// UpdateShop updates a shop
func (s *ShopService) UpdateShop(ctx context.Context, input *UpdateShopInput) (*entity.Shop, error) {
	shop, err := s.shopRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if shop == nil {
		return nil, apperror.ErrNotFound
	}

	if input.Name != "" {
		shop.Name = input.Name
	}
	if input.Address != nil {
		shop.Address = input.Address
	}
	if input.Phone != nil {
		shop.Phone = input.Phone
	}
	if input.Settings != nil {
		shop.Settings = *input.Settings
	}

	if err := s.shopRepo.Update(ctx, shop); err != nil {
		return nil, err
	}

	return shop, nil
}

// DeleteShop soft-deletes a shop (super admin only)
func (s *ShopService) DeleteShop(ctx context.Context, id uuid.UUID) error {
	shop, err := s.shopRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if shop == nil {
		return apperror.ErrNotFound
	}
	return s.shopRepo.Delete(ctx, id)
}

// InviteMemberInput represents input for inviting a user to a shop
type InviteMemberInput struct {
	ShopID uuid.UUID
	UserID uuid.UUID
	Role   string
}

// InviteMember adds a user to a shop
func (s *ShopService) InviteMember(ctx context.Context, input *InviteMemberInput) error {
	role, ok := enum.ParseRole(input.Role)
	if !ok || role == enum.RoleSuperAdmin {
		return apperror.NewBadRequestError("Invalid member role")
	}

	// Check if user is already a member
	isMember, _ := s.shopRepo.IsMember(ctx, input.ShopID, input.UserID)
	if isMember {
		return apperror.NewConflictError("User is already a member of this shop")
	}

	membership := &entity.ShopMembership{
		ShopID: input.ShopID,
		UserID: input.UserID,
		Role:   string(role),
	}

	return s.shopRepo.AddMember(ctx, membership)
}

// RemoveMember removes a user from a shop. The owner cannot be removed.
func (s *ShopService) RemoveMember(ctx context.Context, shopID, userID uuid.UUID) error {
	shop, err := s.shopRepo.GetByID(ctx, shopID)
	if err != nil {
		return err
	}
	if shop == nil {
		return apperror.ErrNotFound
	}
	if shop.OwnerID == userID {
		return apperror.NewBadRequestError("Cannot remove the shop owner")
	}
	return s.shopRepo.RemoveMember(ctx, shopID, userID)
}

// GetShopMembers retrieves all members of a shop
func (s *ShopService) GetShopMembers(ctx context.Context, shopID uuid.UUID) ([]entity.ShopMembership, error) {
	members, err := s.shopRepo.GetMembers(ctx, shopID)
	if err != nil {
		return nil, err
	}

	// Populate user details for JSON response
	for i := range members {
		members[i].PopulateUserDetails()
	}

	return members, nil
}

// UpdateMemberRole updates a member's role in a shop
func (s *ShopService) UpdateMemberRole(ctx context.Context, shopID, userID uuid.UUID, roleName string) error {
	role, ok := enum.ParseRole(roleName)
	if !ok || role == enum.RoleSuperAdmin {
		return apperror.NewBadRequestError("Invalid member role")
	}
	return s.shopRepo.UpdateMemberRole(ctx, shopID, userID, string(role))
}

// ListAllShops retrieves all shops (for super admin use)
func (s *ShopService) ListAllShops(ctx context.Context, params *pagination.PaginationParams) ([]entity.Shop, int64, error) {
	params.Validate()
	return s.shopRepo.ListAll(ctx, params)
}

// GetMembership retrieves a user's membership in a shop, or nil
func (s *ShopService) GetMembership(ctx context.Context, shopID, userID uuid.UUID) (*entity.ShopMembership, error) {
	return s.shopRepo.GetMembership(ctx, shopID, userID)
}
