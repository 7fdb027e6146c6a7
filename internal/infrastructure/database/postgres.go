package database

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/ratnex/ratnex-api/internal/config"
	"github.com/ratnex/ratnex-api/internal/domain/entity"
	"github.com/ratnex/ratnex-api/internal/domain/enum"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Info

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB to set connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// Set connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		// User-related entities
		&entity.User{},
		&entity.Role{},
		&entity.Permission{},
		&entity.PasswordResetToken{},

		// Shop entities
		&entity.Shop{},
		&entity.ShopMembership{},
		&entity.Subscription{},

		// Pricing entities
		&entity.Rate{},
		&entity.RateHistory{},
		&entity.Category{},

		// System entities
		&entity.IdempotencyKey{},
		&entity.UserSettings{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// rolePermissions maps each seeded role to the permissions it grants.
// Admins see everything in their shop; managers run the counter but
// cannot touch configuration; pro clients see margin context; clients
// only get the calculator.
var rolePermissions = map[enum.Role][]string{
	enum.RoleSuperAdmin: {
		"view-dashboard", "manage-rates", "manage-categories", "use-calculator",
		"view-margins", "view-wholesale-rates", "access-all-categories",
		"manage-shops", "manage-users",
	},
	enum.RoleAdmin: {
		"view-dashboard", "manage-rates", "manage-categories", "use-calculator",
		"view-margins", "view-wholesale-rates", "access-all-categories",
		"manage-users",
	},
	enum.RoleManager: {
		"view-dashboard", "manage-rates", "use-calculator",
		"view-margins", "access-all-categories",
	},
	enum.RoleProClient: {
		"use-calculator", "view-margins",
	},
	enum.RoleClient: {
		"use-calculator",
	},
}

// SeedDefaultData seeds the database with default data (roles, permissions, super admin user)
func SeedDefaultData(db *gorm.DB, superAdmin config.SuperAdminConfig) error {
	log.Println("Seeding default data...")

	// Create default permissions
	permissionNames := []string{
		"view-dashboard",
		"manage-rates",
		"manage-categories",
		"use-calculator",
		"view-margins",
		"view-wholesale-rates",
		"access-all-categories",
		"manage-shops",
		"manage-users",
	}

	for _, name := range permissionNames {
		var existing entity.Permission
		if err := db.Where("name = ?", name).First(&existing).Error; err != nil {
			p := entity.Permission{Name: name, GuardName: "web"}
			if err := db.Create(&p).Error; err != nil {
				log.Printf("Warning: failed to create permission %s: %v", name, err)
			}
		}
	}

	// Reload permissions with IDs
	var allPermissions []entity.Permission
	db.Find(&allPermissions)

	permByName := make(map[string]entity.Permission, len(allPermissions))
	for _, p := range allPermissions {
		permByName[p.Name] = p
	}

	// Create each role with its permission set
	for _, roleName := range enum.AllRoles() {
		var perms []entity.Permission
		for _, name := range rolePermissions[roleName] {
			if p, ok := permByName[name]; ok {
				perms = append(perms, p)
			}
		}

		var existing entity.Role
		if err := db.Where("name = ?", string(roleName)).First(&existing).Error; err != nil {
			role := entity.Role{
				Name:        string(roleName),
				GuardName:   "web",
				Permissions: perms,
			}
			if err := db.Create(&role).Error; err != nil {
				log.Printf("Warning: failed to create role %s: %v", roleName, err)
			}
		}
	}

	// Create super admin user if configured via environment variables
	if superAdmin.Email != "" && superAdmin.Password != "" {
		var existingAdmin entity.User
		if err := db.Where("email = ?", superAdmin.Email).First(&existingAdmin).Error; err != nil {
			hashedPassword, err := bcrypt.GenerateFromPassword([]byte(superAdmin.Password), bcrypt.DefaultCost)
			if err != nil {
				log.Printf("Warning: failed to hash super admin password: %v", err)
			} else {
				var saRole entity.Role
				if err := db.Where("name = ?", string(enum.RoleSuperAdmin)).First(&saRole).Error; err == nil {
					adminUser := entity.User{
						ID:        uuid.New(),
						FirstName: "Super",
						LastName:  "Admin",
						Email:     superAdmin.Email,
						Password:  string(hashedPassword),
						Roles:     []entity.Role{saRole},
					}
					if err := db.Create(&adminUser).Error; err != nil {
						log.Printf("Warning: failed to create super admin user: %v", err)
					} else {
						log.Printf("Super admin user created: %s", superAdmin.Email)
					}
				}
			}
		} else {
			log.Printf("Super admin user already exists: %s", superAdmin.Email)
		}
	}

	log.Println("Default data seeding completed")
	return nil
}
