package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ratnex/ratnex-api/internal/domain/entity"
	"github.com/ratnex/ratnex-api/internal/domain/repository"
	infraRepo "github.com/ratnex/ratnex-api/internal/infrastructure/repository"
	"github.com/ratnex/ratnex-api/internal/presentation/http/dto/response"
	"github.com/ratnex/ratnex-api/pkg/apperror"
)

// ExtractShopFromHost extracts the shop slug from a subdomain
// e.g., "mjsons.ratnex.in" -> "mjsons"
func ExtractShopFromHost(host string) (string, error) {
	// Remove port if present
	if idx := strings.LastIndex(host, ":"); idx != -1 {
		host = host[:idx]
	}

	parts := strings.Split(host, ".")
	if len(parts) < 3 {
		return "", errors.New("invalid subdomain")
	}
	return parts[0], nil
}

// ShopMiddleware resolves the shop from the subdomain or the X-Shop-Slug
// header and adds it to the context. Super admins may address any shop;
// everyone else must be a member.
func ShopMiddleware(shopRepo repository.ShopRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		slug, err := ExtractShopFromHost(c.Request.Host)
		if err != nil {
			// Local development and API clients identify the shop by header
			slug = c.GetHeader("X-Shop-Slug")
		}
		if slug == "" {
			c.Set("shop_id", uuid.Nil)
			c.Next()
			return
		}

		shop, err := shopRepo.GetBySlug(c.Request.Context(), slug)
		if err != nil || shop == nil {
			response.NotFound(c, "Shop not found")
			c.Abort()
			return
		}

		// Validate user has access to this shop (if authenticated)
		userIDVal, exists := c.Get("user_id")
		if exists && !isSuperAdminCtx(c) {
			userID, ok := userIDVal.(uuid.UUID)
			if ok && userID != uuid.Nil {
				isMember, _ := shopRepo.IsMember(c.Request.Context(), shop.ID, userID)
				if !isMember {
					response.Forbidden(c, "Access denied to this shop")
					c.Abort()
					return
				}
			}
		}

		// Set shop in Gin context (for middleware/handlers)
		c.Set("shop_id", shop.ID)
		c.Set("shop", shop)

		// Also set shop ID in request context (for services/repositories)
		ctx := infraRepo.WithShop(c.Request.Context(), shop.ID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireShop ensures a valid shop context exists
func RequireShop() gin.HandlerFunc {
	return func(c *gin.Context) {
		shopID, exists := c.Get("shop_id")
		if !exists {
			response.BadRequest(c, "Shop context required")
			c.Abort()
			return
		}

		id, ok := shopID.(uuid.UUID)
		if !ok || id == uuid.Nil {
			response.BadRequest(c, "Invalid shop context")
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequireActiveSubscription blocks calculator and rate operations for
// shops whose subscription has lapsed. Reads and configuration stay
// available so an admin can still fix billing.
func RequireActiveSubscription() gin.HandlerFunc {
	return func(c *gin.Context) {
		shopVal, exists := c.Get("shop")
		if !exists {
			response.BadRequest(c, "Shop context required")
			c.Abort()
			return
		}

		shop, ok := shopVal.(*entity.Shop)
		if !ok || !shop.CanCalculate() {
			response.Error(c, apperror.ErrShopInactive)
			c.Abort()
			return
		}

		c.Next()
	}
}

// GetShopID retrieves the shop ID from gin context
func GetShopID(c *gin.Context) uuid.UUID {
	shopID, exists := c.Get("shop_id")
	if !exists {
		return uuid.Nil
	}
	id, ok := shopID.(uuid.UUID)
	if !ok {
		return uuid.Nil
	}
	return id
}

// GetShop retrieves the shop entity from gin context
func GetShop(c *gin.Context) *entity.Shop {
	shopVal, exists := c.Get("shop")
	if !exists {
		return nil
	}
	shop, ok := shopVal.(*entity.Shop)
	if !ok {
		return nil
	}
	return shop
}

func isSuperAdminCtx(c *gin.Context) bool {
	rolesVal, exists := c.Get("user_roles")
	if !exists {
		return false
	}
	roles, ok := rolesVal.([]string)
	if !ok {
		return false
	}
	for _, r := range roles {
		if r == "super_admin" {
			return true
		}
	}
	return false
}
