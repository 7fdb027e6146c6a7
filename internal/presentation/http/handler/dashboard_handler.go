package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ratnex/ratnex-api/internal/application/service"
	"github.com/ratnex/ratnex-api/internal/presentation/http/dto/response"
	"github.com/ratnex/ratnex-api/internal/presentation/http/middleware"
)

// DashboardHandler handles dashboard HTTP requests
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetStats returns the active shop's dashboard: current rates, rate
// trend, category and member breakdowns
func (h *DashboardHandler) GetStats(c *gin.Context) {
	shopID := middleware.GetShopID(c)
	if shopID == uuid.Nil {
		response.BadRequest(c, "No active shop")
		return
	}

	dashboard, err := h.dashboardService.GetShopDashboard(c.Request.Context(), shopID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Dashboard retrieved successfully", dashboard)
}

// GetAdminStats returns the platform-wide dashboard (super admin only)
func (h *DashboardHandler) GetAdminStats(c *gin.Context) {
	dashboard, err := h.dashboardService.GetAdminDashboard(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Admin dashboard retrieved successfully", dashboard)
}
