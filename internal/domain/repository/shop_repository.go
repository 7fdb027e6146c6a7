package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/ratnex/ratnex-api/internal/domain/entity"
	"github.com/ratnex/ratnex-api/pkg/pagination"
)

// ShopRepository defines the interface for shop data operations
type ShopRepository interface {
	// Create creates a new shop
	Create(ctx context.Context, shop *entity.Shop) error

	// GetByID retrieves a shop by ID
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Shop, error)

	// GetBySlug retrieves a shop by slug (subdomain identifier)
	GetBySlug(ctx context.Context, slug string) (*entity.Shop, error)

	// Update updates an existing shop
	Update(ctx context.Context, shop *entity.Shop) error

	// Delete soft-deletes a shop
	Delete(ctx context.Context, id uuid.UUID) error

	// GetUserShops retrieves all shops a user belongs to with pagination
	GetUserShops(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams) ([]entity.Shop, int64, error)

	// AddMember adds a user as a member of a shop
	AddMember(ctx context.Context, membership *entity.ShopMembership) error

	// RemoveMember removes a user from a shop
	RemoveMember(ctx context.Context, shopID, userID uuid.UUID) error

	// GetMembers retrieves all members of a shop
	GetMembers(ctx context.Context, shopID uuid.UUID) ([]entity.ShopMembership, error)

	// IsMember checks if a user is a member of a shop
	IsMember(ctx context.Context, shopID, userID uuid.UUID) (bool, error)

	// GetMembership retrieves a specific membership
	GetMembership(ctx context.Context, shopID, userID uuid.UUID) (*entity.ShopMembership, error)

	// UpdateMemberRole updates a member's role in a shop
	UpdateMemberRole(ctx context.Context, shopID, userID uuid.UUID, role string) error

	// SlugExists checks if a slug is already taken
	SlugExists(ctx context.Context, slug string) (bool, error)

	// ListAll retrieves all shops (for super admin use)
	ListAll(ctx context.Context, params *pagination.PaginationParams) ([]entity.Shop, int64, error)

	// Count returns the total number of shops
	Count(ctx context.Context) (int64, error)
}

// SubscriptionRepository defines the interface for subscription data operations
type SubscriptionRepository interface {
	// Create creates a new subscription
	Create(ctx context.Context, sub *entity.Subscription) error

	// GetByShop retrieves the subscription for a shop
	GetByShop(ctx context.Context, shopID uuid.UUID) (*entity.Subscription, error)

	// Update updates an existing subscription
	Update(ctx context.Context, sub *entity.Subscription) error

	// ListByStatus retrieves subscriptions in a given status (for the admin console)
	ListByStatus(ctx context.Context, status string, params *pagination.PaginationParams) ([]entity.Subscription, int64, error)

	// CountByStatus returns subscription counts grouped by status
	CountByStatus(ctx context.Context) (map[string]int64, error)
}
