package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ratnex/ratnex-api/internal/application/service"
	"github.com/ratnex/ratnex-api/internal/presentation/http/dto/request"
	"github.com/ratnex/ratnex-api/internal/presentation/http/dto/response"
	"github.com/ratnex/ratnex-api/internal/presentation/http/middleware"
)

// RateHandler handles rate board HTTP requests
type RateHandler struct {
	rateService *service.RateService
}

// NewRateHandler creates a new rate handler
func NewRateHandler(rateService *service.RateService) *RateHandler {
	return &RateHandler{rateService: rateService}
}

// Get returns the current rate board for the active shop
func (h *RateHandler) Get(c *gin.Context) {
	shopID := middleware.GetShopID(c)
	if shopID == uuid.Nil {
		response.BadRequest(c, "No active shop")
		return
	}

	rate, err := h.rateService.GetRates(c.Request.Context(), shopID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Rates retrieved successfully", gin.H{
		"rates": rate,
	})
}

// Update replaces all four rates on the shop rate board
func (h *RateHandler) Update(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	shopID := middleware.GetShopID(c)
	if shopID == uuid.Nil {
		response.BadRequest(c, "No active shop")
		return
	}

	var req request.UpdateRatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	rate, err := h.rateService.UpdateRates(c.Request.Context(), &service.UpdateRatesInput{
		ShopID:     shopID,
		GoldBuy:    req.GoldBuy,
		GoldSell:   req.GoldSell,
		SilverBuy:  req.SilverBuy,
		SilverSell: req.SilverSell,
		UpdatedBy:  *userID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Rates updated successfully", gin.H{
		"rates": rate,
	})
}

// History returns the most recent rate board updates
func (h *RateHandler) History(c *gin.Context) {
	shopID := middleware.GetShopID(c)
	if shopID == uuid.Nil {
		response.BadRequest(c, "No active shop")
		return
	}

	var filter request.RateHistoryFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	history, err := h.rateService.ListHistory(c.Request.Context(), shopID, filter.Limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Rate history retrieved successfully", gin.H{
		"history": history,
	})
}
