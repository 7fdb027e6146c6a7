package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ratnex/ratnex-api/internal/config"
	"github.com/ratnex/ratnex-api/internal/domain/enum"
	domainRepo "github.com/ratnex/ratnex-api/internal/domain/repository"
	"github.com/ratnex/ratnex-api/internal/presentation/http/handler"
	"github.com/ratnex/ratnex-api/internal/presentation/http/middleware"
	"github.com/ratnex/ratnex-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth         *handler.AuthHandler
	Shop         *handler.ShopHandler
	Rate         *handler.RateHandler
	Category     *handler.CategoryHandler
	Calculator   *handler.CalculatorHandler
	Subscription *handler.SubscriptionHandler
	Dashboard    *handler.DashboardHandler
	Settings     *handler.SettingsHandler
	User         *handler.UserHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	ShopRepo        domainRepo.ShopRepository
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		registerAuthRoutes(v1, h)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Resolve the shop before rate limiting so limits apply per shop
		protected.Use(middleware.ShopMiddleware(deps.ShopRepo))

		rateLimiter := middleware.NewShopRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/register", h.Auth.Register)
		auth.POST("/refresh", h.Auth.RefreshToken)
		auth.POST("/forgot-password", h.Auth.ForgotPassword)
		auth.POST("/reset-password", h.Auth.ResetPassword)
		// Google OAuth routes
		auth.GET("/google", h.Auth.GoogleAuth)
		auth.GET("/google/callback", h.Auth.GoogleCallback)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	// Auth/Profile routes
	protected.POST("/auth/logout", h.Auth.Logout)
	protected.GET("/profile", h.Auth.GetProfile)
	protected.PUT("/profile", h.Auth.UpdateProfile)
	protected.PUT("/profile/password", h.Auth.ChangePassword)

	// Settings
	protected.GET("/settings", h.Settings.GetSettings)
	protected.PUT("/settings", h.Settings.UpdateSettings)

	// Dashboard
	protected.GET("/dashboard", middleware.RequirePermission("view-dashboard"), h.Dashboard.GetStats)

	// Shops
	registerShopRoutes(protected, h)

	// Rate board
	registerRateRoutes(protected, h, deps)

	// Pricing categories
	registerCategoryRoutes(protected, h)

	// Calculator
	registerCalculatorRoutes(protected, h)

	// Users (Admin)
	registerUserRoutes(protected, h)

	// Roles (Admin)
	registerRoleRoutes(protected, h)

	// Permissions (Admin)
	registerPermissionRoutes(protected, h)

	// Super Admin console
	registerAdminRoutes(protected, h)
}

func registerShopRoutes(protected *gin.RouterGroup, h *Handlers) {
	shops := protected.Group("/shops")
	{
		shops.GET("", h.Shop.List)
		shops.POST("", h.Shop.Create)
		shops.GET("/current", middleware.RequireShop(), h.Shop.GetCurrent)
		shops.PUT("/current", middleware.RequireShop(), middleware.RequirePermission("manage-users"), h.Shop.UpdateCurrent)
		shops.GET("/current/subscription", middleware.RequireShop(), h.Subscription.GetCurrent)

		members := shops.Group("/current/members", middleware.RequireShop(), middleware.RequirePermission("manage-users"))
		{
			members.GET("", h.Shop.ListMembers)
			members.POST("", h.Shop.InviteMember)
			members.PUT("/:user_id", h.Shop.UpdateMemberRole)
			members.DELETE("/:user_id", h.Shop.RemoveMember)
		}
	}
}

func registerRateRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	rates := protected.Group("/rates", middleware.RequireShop())
	{
		rates.GET("", h.Rate.Get)
		rates.GET("/history", middleware.RequirePermission("manage-rates"), h.Rate.History)
		// Rate updates require an idempotency key so a retried PUT cannot
		// double-append history
		rates.PUT("",
			middleware.RequirePermission("manage-rates"),
			middleware.RequireActiveSubscription(),
			middleware.Idempotency(middleware.IdempotencyConfig{Repo: deps.IdempotencyRepo}),
			h.Rate.Update,
		)
	}
}

func registerCategoryRoutes(protected *gin.RouterGroup, h *Handlers) {
	categories := protected.Group("/categories", middleware.RequireShop())
	{
		categories.GET("", h.Category.List)
		categories.GET("/code/:code", h.Category.GetByCode)
		categories.GET("/:id", h.Category.Get)
		categories.GET("/:id/description", h.Calculator.Description)

		manage := categories.Group("", middleware.RequirePermission("manage-categories"))
		{
			manage.POST("", h.Category.Create)
			manage.PUT("/:id", h.Category.Update)
			manage.PUT("/:id/descriptions", h.Category.UpdateDescriptions)
			manage.PUT("/:id/active", h.Category.SetActive)
			manage.DELETE("/:id", h.Category.Delete)
		}
	}
}

func registerCalculatorRoutes(protected *gin.RouterGroup, h *Handlers) {
	calculator := protected.Group("/calculator", middleware.RequireShop())
	calculator.Use(middleware.RequirePermission("use-calculator"))
	calculator.Use(middleware.RequireActiveSubscription())
	{
		calculator.GET("/permissions", h.Calculator.Permissions)
		calculator.GET("/options", h.Calculator.Options)
		calculator.GET("/item-categories", h.Calculator.ItemCategories)
		calculator.POST("/new", h.Calculator.CalculateNew)
		calculator.POST("/old", h.Calculator.CalculateOld)
	}
}

func registerUserRoutes(protected *gin.RouterGroup, h *Handlers) {
	users := protected.Group("/users")
	users.Use(middleware.RequirePermission("manage-users"))
	{
		users.GET("", h.User.List)
		users.GET("/:id", h.User.Get)
		users.PUT("/:id/roles", h.User.UpdateRoles)
		users.DELETE("/:id", h.User.Delete)
	}
}

func registerRoleRoutes(protected *gin.RouterGroup, h *Handlers) {
	roles := protected.Group("/roles")
	roles.Use(middleware.RequirePermission("manage-users"))
	{
		roles.GET("", h.User.ListRoles)
	}
}

func registerPermissionRoutes(protected *gin.RouterGroup, h *Handlers) {
	permissions := protected.Group("/permissions")
	permissions.Use(middleware.RequirePermission("manage-users"))
	{
		permissions.GET("", h.User.ListPermissions)
	}
}

func registerAdminRoutes(protected *gin.RouterGroup, h *Handlers) {
	admin := protected.Group("/admin")
	admin.Use(middleware.RequireRole(string(enum.RoleSuperAdmin)))
	{
		admin.GET("/dashboard", h.Dashboard.GetAdminStats)
		admin.GET("/subscriptions", h.Subscription.List)
		admin.PUT("/shops/:shop_id/plan", h.Subscription.ChangePlan)
		admin.PUT("/shops/:shop_id/status", h.Subscription.UpdateStatus)
		admin.DELETE("/shops/:shop_id", h.Subscription.DeleteShop)
	}
}
