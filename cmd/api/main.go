package main

import (
	"fmt"
	"net/http"
	"os"

	"teatally/internal/config"
	"teatally/internal/database"
	"teatally/internal/handlers"
	"teatally/internal/logger"
	"teatally/internal/middleware"
	"teatally/internal/services"
	"teatally/internal/validator"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "teatally/internal/docs" // Import swagger docs
)

// @title           TeaTally API
// @version         1.0
// @description     TeaTally is a collective tea tasting platform: participants register through a Telegram bot, rate tea samples along configurable dimensions, and compare their palate against the group.

// @host      localhost:8080
// @BasePath  /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the admin session JWT.

// @securityDefinitions.apikey BotKey
// @in header
// @name X-API-Key
// @description Shared key the bot gateway authenticates with.

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Register custom request validators
	validator.Register()

	// Initialize services
	db := dbManager.DB()
	userService := services.NewUserService(db)
	authLinkService := services.NewAuthLinkService(db, appConfig.AppBaseURL, appConfig.AuthLinkTTL, nil)
	tastingService := services.NewTastingService(db)
	ratingService := services.NewRatingService(db)
	summaryService := services.NewSummaryService(db)
	auditService := services.NewAuditService(db)

	// Initialize handlers
	telegramHandler := handlers.NewTelegramHandler(userService, auditService)
	authLinkHandler := handlers.NewAuthLinkHandler(authLinkService, auditService)
	tastingHandler := handlers.NewTastingHandler(tastingService, auditService)
	ratingHandler := handlers.NewRatingHandler(ratingService, auditService)
	summaryHandler := handlers.NewSummaryHandler(summaryService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-API-Key")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")

	// Bot gateway routes, guarded by the shared API key
	bot := api.Group("/")
	bot.Use(middleware.BotAuthMiddleware(appConfig.BotAPIKey))
	bot.POST("/telegram/register", telegramHandler.Register)
	bot.POST("/auth/link", authLinkHandler.IssueLink)

	// Public routes, reached through resolved auth links
	api.GET("/auth/resolve", authLinkHandler.ResolveLink)
	api.GET("/tastings/:id", tastingHandler.GetTasting)
	api.GET("/tastings/:id/samples", tastingHandler.ListSamples)
	api.GET("/tastings/:id/dimensions", tastingHandler.ListDimensions)
	api.GET("/tastings/:id/summary", summaryHandler.GetSummary)
	api.GET("/users/:id/tastings/:tastingId/profile", summaryHandler.GetUserProfile)
	api.GET("/users/:id/tastings/:tastingId/ratings", ratingHandler.GetUserRatings)
	api.POST("/ratings", ratingHandler.SubmitRating)

	// Admin routes, guarded by the admin session JWT
	admin := api.Group("/")
	admin.Use(middleware.AdminAuthMiddleware())
	admin.POST("/tastings", tastingHandler.CreateTasting)
	admin.GET("/tastings", tastingHandler.ListTastings)
	admin.PUT("/tastings/:id", tastingHandler.UpdateTasting)
	admin.POST("/tastings/:id/samples", tastingHandler.AddSample)
	admin.PUT("/samples/:id", tastingHandler.UpdateSample)
	admin.POST("/tastings/:id/dimensions", tastingHandler.AddDimension)
	admin.GET("/tastings/:id/export", summaryHandler.ExportCSV)

	log.Infof("Starting TeaTally backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
