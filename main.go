package main

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/simplethings/baubuero-api/config"
	"github.com/simplethings/baubuero-api/logger"
	"github.com/simplethings/baubuero-api/models"
	"github.com/simplethings/baubuero-api/repositories"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Init(cfg.GoEnv, cfg.LogLevel)
	zap.L().Info("Starting Baubüro API server")

	if err := config.ConnectDatabase(cfg.DatabaseURL); err != nil {
		zap.L().Fatal("Failed to connect to database", zap.Error(err))
	}

	db := config.GetDB()
	if err := migrateDatabase(db); err != nil {
		zap.L().Fatal("Failed to migrate database", zap.Error(err))
	}
	zap.L().Info("Database migration completed successfully")

	repos := repositories.New(db)

	if err := seedAdminUser(context.Background(), repos.Users, cfg); err != nil {
		zap.L().Fatal("Failed to seed admin user", zap.Error(err))
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := setupRouter(cfg, repos)

	addr := ":" + cfg.Port
	zap.L().Info("Server is listening", zap.String("addr", addr))
	if err := router.Run(addr); err != nil {
		zap.L().Fatal("Failed to start server", zap.Error(err))
	}
}

// migrateDatabase creates the schema if it is absent. There is no
// migration mechanism beyond GORM's auto-migration.
func migrateDatabase(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Company{},
		&models.Material{},
		&models.Order{},
		&models.Site{},
		&models.Document{},
		&models.Appointment{},
	)
}

// seedAdminUser creates the default admin account if no user with the
// configured admin email exists yet. The default credentials are a known
// operational weakness; deployments are expected to override them.
func seedAdminUser(ctx context.Context, users *repositories.UserRepository, cfg *config.Config) error {
	_, err := users.GetByEmail(ctx, cfg.AdminEmail)
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &models.User{
		Username:     "admin",
		Email:        cfg.AdminEmail,
		PasswordHash: string(hash),
	}
	if err := users.Create(ctx, admin); err != nil {
		return err
	}

	zap.L().Info("Seeded default admin user", zap.String("email", cfg.AdminEmail))
	return nil
}

// landingPage handles the public landing page
func landingPage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Baubüro API is running",
	})
}

// healthCheck verifies database connectivity
func healthCheck(c *gin.Context) {
	db := config.GetDB()

	sqlDB, err := db.DB()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to get database instance",
			},
		})
		return
	}

	if err := sqlDB.Ping(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_CONNECTION_ERROR",
				"message": "Database connection failed",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Database connected",
	})
}
