package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ratnex/ratnex-api/internal/application/service"
	"github.com/ratnex/ratnex-api/internal/presentation/http/dto/response"
	"github.com/ratnex/ratnex-api/internal/presentation/http/middleware"
	"github.com/ratnex/ratnex-api/pkg/pagination"
)

// SubscriptionHandler handles subscription HTTP requests. Shop admins can
// read their own subscription; plan and status changes are super-admin
// console operations.
type SubscriptionHandler struct {
	subscriptionService *service.SubscriptionService
	shopService         *service.ShopService
}

// NewSubscriptionHandler creates a new subscription handler
func NewSubscriptionHandler(subscriptionService *service.SubscriptionService, shopService *service.ShopService) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscriptionService: subscriptionService,
		shopService:         shopService,
	}
}

// GetCurrent returns the active shop's subscription
func (h *SubscriptionHandler) GetCurrent(c *gin.Context) {
	shopID := middleware.GetShopID(c)
	if shopID == uuid.Nil {
		response.BadRequest(c, "No active shop")
		return
	}

	sub, err := h.subscriptionService.GetShopSubscription(c.Request.Context(), shopID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Subscription retrieved successfully", gin.H{
		"subscription": sub,
	})
}

// List returns subscriptions across all shops, optionally filtered by
// status (super admin only)
func (h *SubscriptionHandler) List(c *gin.Context) {
	params := pagination.DefaultPagination()
	if err := c.ShouldBindQuery(params); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	subs, total, err := h.subscriptionService.ListSubscriptions(c.Request.Context(), c.Query("status"), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	result := pagination.NewPaginatedResult(subs, pagination.NewPagination(params.Page, params.PerPage, total))
	response.SuccessWithPagination(c, 200, "Subscriptions retrieved successfully", result)
}

// ChangePlan moves a shop onto a different plan (super admin only)
func (h *SubscriptionHandler) ChangePlan(c *gin.Context) {
	shopID, err := uuid.Parse(c.Param("shop_id"))
	if err != nil {
		response.BadRequest(c, "Invalid shop ID")
		return
	}

	var req struct {
		Plan       string  `json:"plan" binding:"required"`
		PeriodDays int     `json:"period_days"`
		Notes      *string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	sub, err := h.subscriptionService.ChangePlan(c.Request.Context(), &service.ChangePlanInput{
		ShopID:     shopID,
		Plan:       req.Plan,
		PeriodDays: req.PeriodDays,
		Notes:      req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Subscription plan updated successfully", gin.H{
		"subscription": sub,
	})
}

// UpdateStatus transitions a shop's subscription between lifecycle states
// (super admin only)
func (h *SubscriptionHandler) UpdateStatus(c *gin.Context) {
	shopID, err := uuid.Parse(c.Param("shop_id"))
	if err != nil {
		response.BadRequest(c, "Invalid shop ID")
		return
	}

	var req struct {
		Status string  `json:"status" binding:"required"`
		Notes  *string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	sub, err := h.subscriptionService.UpdateStatus(c.Request.Context(), &service.UpdateStatusInput{
		ShopID: shopID,
		Status: req.Status,
		Notes:  req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Subscription status updated successfully", gin.H{
		"subscription": sub,
	})
}

// DeleteShop soft-deletes a shop from the platform (super admin only)
func (h *SubscriptionHandler) DeleteShop(c *gin.Context) {
	shopID, err := uuid.Parse(c.Param("shop_id"))
	if err != nil {
		response.BadRequest(c, "Invalid shop ID")
		return
	}

	if err := h.shopService.DeleteShop(c.Request.Context(), shopID); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
