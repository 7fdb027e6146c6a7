package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ratnex/ratnex-api/internal/application/service"
	"github.com/ratnex/ratnex-api/internal/domain/entity"
	"github.com/ratnex/ratnex-api/internal/presentation/http/dto/request"
	"github.com/ratnex/ratnex-api/internal/presentation/http/dto/response"
	"github.com/ratnex/ratnex-api/internal/presentation/http/middleware"
	"github.com/ratnex/ratnex-api/pkg/pagination"
)

// ShopHandler handles shop-related HTTP requests
type ShopHandler struct {
	shopService *service.ShopService
}

// NewShopHandler creates a new shop handler
func NewShopHandler(shopService *service.ShopService) *ShopHandler {
	return &ShopHandler{shopService: shopService}
}

// List returns the shops the caller belongs to. Super admins see every
// shop on the platform.
func (h *ShopHandler) List(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	params := pagination.DefaultPagination()
	if err := c.ShouldBindQuery(params); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	var shops []entity.Shop
	var total int64
	var err error

	if IsSuperAdmin(c) {
		shops, total, err = h.shopService.ListAllShops(c.Request.Context(), params)
	} else {
		shops, total, err = h.shopService.GetUserShops(c.Request.Context(), *userID, params)
	}
	if err != nil {
		response.Error(c, err)
		return
	}

	result := pagination.NewPaginatedResult(shops, pagination.NewPagination(params.Page, params.PerPage, total))
	response.SuccessWithPagination(c, 200, "Shops retrieved successfully", result)
}

// Create handles creating a shop owned by the caller
func (h *ShopHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreateShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	shop, err := h.shopService.CreateShop(c.Request.Context(), &service.CreateShopInput{
		Name:    req.Name,
		Slug:    req.Slug,
		OwnerID: *userID,
		Address: req.Address,
		Phone:   req.Phone,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Shop created successfully", gin.H{
		"shop": shop,
	})
}

// GetCurrent returns the active shop resolved by the shop middleware
func (h *ShopHandler) GetCurrent(c *gin.Context) {
	shopID := middleware.GetShopID(c)
	if shopID == uuid.Nil {
		response.BadRequest(c, "No active shop")
		return
	}

	shop, err := h.shopService.GetShop(c.Request.Context(), shopID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Shop retrieved successfully", gin.H{
		"shop": shop,
	})
}

// UpdateCurrent updates the active shop's profile and settings
func (h *ShopHandler) UpdateCurrent(c *gin.Context) {
	shopID := middleware.GetShopID(c)
	if shopID == uuid.Nil {
		response.BadRequest(c, "No active shop")
		return
	}

	var req struct {
		Name     string               `json:"name"`
		Address  *string              `json:"address"`
		Phone    *string              `json:"phone"`
		Settings *entity.ShopSettings `json:"settings"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	shop, err := h.shopService.UpdateShop(c.Request.Context(), &service.UpdateShopInput{
		ID:       shopID,
		Name:     req.Name,
		Address:  req.Address,
		Phone:    req.Phone,
		Settings: req.Settings,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Shop updated successfully", gin.H{
		"shop": shop,
	})
}

// ListMembers returns all members of the active shop
func (h *ShopHandler) ListMembers(c *gin.Context) {
	shopID := middleware.GetShopID(c)
	if shopID == uuid.Nil {
		response.BadRequest(c, "No active shop")
		return
	}

	members, err := h.shopService.GetShopMembers(c.Request.Context(), shopID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Members retrieved successfully", gin.H{
		"members": members,
	})
}

// InviteMember adds a user to the active shop
func (h *ShopHandler) InviteMember(c *gin.Context) {
	shopID := middleware.GetShopID(c)
	if shopID == uuid.Nil {
		response.BadRequest(c, "No active shop")
		return
	}

	var req struct {
		UserID uuid.UUID `json:"user_id" binding:"required"`
		Role   string    `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	err := h.shopService.InviteMember(c.Request.Context(), &service.InviteMemberInput{
		ShopID: shopID,
		UserID: req.UserID,
		Role:   req.Role,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Member invited successfully", nil)
}

// UpdateMemberRole updates a member's role in the active shop
func (h *ShopHandler) UpdateMemberRole(c *gin.Context) {
	shopID := middleware.GetShopID(c)
	if shopID == uuid.Nil {
		response.BadRequest(c, "No active shop")
		return
	}

	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		response.BadRequest(c, "Invalid user ID")
		return
	}

	var req struct {
		Role string `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.shopService.UpdateMemberRole(c.Request.Context(), shopID, userID, req.Role); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Member role updated successfully", nil)
}

// RemoveMember removes a user from the active shop
func (h *ShopHandler) RemoveMember(c *gin.Context) {
	shopID := middleware.GetShopID(c)
	if shopID == uuid.Nil {
		response.BadRequest(c, "No active shop")
		return
	}

	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		response.BadRequest(c, "Invalid user ID")
		return
	}

	if err := h.shopService.RemoveMember(c.Request.Context(), shopID, userID); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Member removed successfully", nil)
}
