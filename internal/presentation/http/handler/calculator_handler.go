package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ratnex/ratnex-api/internal/application/service"
	"github.com/ratnex/ratnex-api/internal/domain/enum"
	"github.com/ratnex/ratnex-api/internal/presentation/http/dto/request"
	"github.com/ratnex/ratnex-api/internal/presentation/http/dto/response"
)

// CalculatorHandler handles jewelry pricing calculator HTTP requests
type CalculatorHandler struct {
	calculatorService *service.CalculatorService
	authService       *service.AuthService
}

// NewCalculatorHandler creates a new calculator handler
func NewCalculatorHandler(calculatorService *service.CalculatorService, authService *service.AuthService) *CalculatorHandler {
	return &CalculatorHandler{
		calculatorService: calculatorService,
		authService:       authService,
	}
}

// Options returns the selectable categories for a metal/type combination,
// with descriptions resolved for the caller's role
func (h *CalculatorHandler) Options(c *gin.Context) {
	var filter request.CalculatorOptionsRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	metal, ok := enum.ParseMetal(filter.Metal)
	if !ok {
		response.BadRequest(c, "Invalid metal")
		return
	}
	categoryType, ok := enum.ParseCategoryType(filter.Type)
	if !ok {
		response.BadRequest(c, "Invalid category type")
		return
	}

	options, err := h.calculatorService.ListOptions(c.Request.Context(), metal, categoryType, GetUserRole(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Options retrieved successfully", gin.H{
		"options": options,
	})
}

// ItemCategories returns the distinct item-category names for a metal/type
// combination
func (h *CalculatorHandler) ItemCategories(c *gin.Context) {
	var filter request.CalculatorOptionsRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	metal, ok := enum.ParseMetal(filter.Metal)
	if !ok {
		response.BadRequest(c, "Invalid metal")
		return
	}
	categoryType, ok := enum.ParseCategoryType(filter.Type)
	if !ok {
		response.BadRequest(c, "Invalid category type")
		return
	}

	names, err := h.calculatorService.ListItemCategories(c.Request.Context(), metal, categoryType)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item categories retrieved successfully", gin.H{
		"item_categories": names,
	})
}

// Permissions returns the calculator-relevant grants of the current user,
// so clients can decide which breakdown fields to render
func (h *CalculatorHandler) Permissions(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	user, err := h.authService.GetCurrentUser(c.Request.Context(), *userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Permissions retrieved successfully", service.PermissionsFor(user))
}

// Description returns the description one category shows to the current
// user's role
func (h *CalculatorHandler) Description(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid category ID")
		return
	}

	user, err := h.authService.GetCurrentUser(c.Request.Context(), *userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	description, err := h.calculatorService.DescribeCategory(c.Request.Context(), id, user)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Description retrieved successfully", description)
}

// CalculateNew prices a freshly made piece
func (h *CalculatorHandler) CalculateNew(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CalculateNewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	unit, ok := enum.ParseWeightUnit(req.WeightUnit)
	if !ok {
		response.BadRequest(c, "Invalid weight unit")
		return
	}

	user, err := h.authService.GetCurrentUser(c.Request.Context(), *userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.calculatorService.CalculateNew(c.Request.Context(), user, &service.CalculateNewInput{
		CategoryID: req.CategoryID,
		Weight:     req.Weight,
		WeightUnit: unit,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Calculation completed successfully", result)
}

// CalculateOld values a used piece brought in by a customer
func (h *CalculatorHandler) CalculateOld(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CalculateOldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	unit, ok := enum.ParseWeightUnit(req.WeightUnit)
	if !ok {
		response.BadRequest(c, "Invalid weight unit")
		return
	}

	source, ok := enum.ParseScrapSource(req.Source)
	if !ok {
		response.BadRequest(c, "Source must be own or other")
		return
	}

	user, err := h.authService.GetCurrentUser(c.Request.Context(), *userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.calculatorService.CalculateOld(c.Request.Context(), user, &service.CalculateOldInput{
		CategoryID:     req.CategoryID,
		Weight:         req.Weight,
		WeightUnit:     unit,
		Source:         source,
		ResaleCategory: req.ResaleCategory,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Valuation completed successfully", result)
}
