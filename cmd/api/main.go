package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/ratnex/ratnex-api/internal/application/service"
	"github.com/ratnex/ratnex-api/internal/config"
	"github.com/ratnex/ratnex-api/internal/infrastructure/database"
	"github.com/ratnex/ratnex-api/internal/infrastructure/repository"
	"github.com/ratnex/ratnex-api/internal/presentation/http/handler"
	"github.com/ratnex/ratnex-api/internal/presentation/http/routes"
	"github.com/ratnex/ratnex-api/pkg/email"
	"github.com/ratnex/ratnex-api/pkg/oauth"
	"github.com/ratnex/ratnex-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default data
	if err := database.SeedDefaultData(db, cfg.SuperAdmin); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	permissionRepo := repository.NewPermissionRepository(db)
	passwordResetRepo := repository.NewPasswordResetTokenRepository(db)
	shopRepo := repository.NewShopRepository(db)
	subscriptionRepo := repository.NewSubscriptionRepository(db)
	rateRepo := repository.NewRateRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)

	// Initialize email service
	emailService := email.NewEmailService(email.EmailConfig{
		SMTPHost:     cfg.Email.SMTPHost,
		SMTPPort:     cfg.Email.SMTPPort,
		SMTPUsername: cfg.Email.SMTPUsername,
		SMTPPassword: cfg.Email.SMTPPassword,
		FromName:     cfg.Email.FromName,
		FromEmail:    cfg.Email.FromEmail,
		FrontendURL:  cfg.App.FrontendURL,
	})

	// Initialize Google OAuth service
	googleOAuthService := oauth.NewGoogleOAuthService(oauth.GoogleOAuthConfig{
		ClientID:           cfg.OAuth.GoogleClientID,
		ClientSecret:       cfg.OAuth.GoogleClientSecret,
		RedirectURL:        cfg.OAuth.GoogleRedirectURL,
		FrontendSuccessURL: cfg.App.FrontendURL + "/auth/callback",
		FrontendErrorURL:   cfg.App.FrontendURL + "/auth/error",
	})

	// Initialize services
	authService := service.NewAuthService(userRepo, roleRepo, passwordResetRepo, jwtManager, emailService)
	shopService := service.NewShopService(shopRepo, subscriptionRepo)
	subscriptionService := service.NewSubscriptionService(subscriptionRepo, shopRepo)
	rateService := service.NewRateService(rateRepo, shopRepo, emailService)
	categoryService := service.NewCategoryService(categoryRepo)
	calculatorService := service.NewCalculatorService(categoryRepo, rateRepo)
	dashboardService := service.NewDashboardService(analyticsRepo, rateRepo, subscriptionRepo)
	settingsService := service.NewSettingsService(settingsRepo)
	userService := service.NewUserService(userRepo, roleRepo, permissionRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:         handler.NewAuthHandler(authService, shopService, googleOAuthService),
		Shop:         handler.NewShopHandler(shopService),
		Rate:         handler.NewRateHandler(rateService),
		Category:     handler.NewCategoryHandler(categoryService),
		Calculator:   handler.NewCalculatorHandler(calculatorService, authService),
		Subscription: handler.NewSubscriptionHandler(subscriptionService, shopService),
		Dashboard:    handler.NewDashboardHandler(dashboardService),
		Settings:     handler.NewSettingsHandler(settingsService),
		User:         handler.NewUserHandler(userService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		ShopRepo:        shopRepo,
		IdempotencyRepo: idempotencyRepo,
	})

	// Get port from environment or use default
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}
