package routes

import (
	"promptwatch-backend/internal/api/handlers"
	"promptwatch-backend/internal/api/middleware"
	"promptwatch-backend/internal/auth"
	"promptwatch-backend/internal/config"
	"promptwatch-backend/internal/detector"
	"promptwatch-backend/internal/repository"
	"promptwatch-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application. The detector
// registry is built once here and injected into the capture service; a
// malformed rule set makes this return an error and the process must not
// start.
func SetupRoutes(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	router := gin.New()

	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	validator := validator.New()

	// Detection core: one immutable registry for the process lifetime
	registry, err := detector.NewRegistryWithOverlay(cfg.DetectorOverlayPath)
	if err != nil {
		return nil, err
	}
	scanner := detector.NewScanner(registry)

	// Repositories
	organizationRepo := repository.NewOrganizationRepository(db)
	subjectRepo := repository.NewSubjectRepository(db)
	promptRepo := repository.NewPromptRepository(db)
	findingRepo := repository.NewFindingRepository(db)

	// Services
	organizationService := service.NewOrganizationService(organizationRepo, validator)
	captureService := service.NewCaptureService(subjectRepo, promptRepo, findingRepo, scanner, validator)
	analyticsService := service.NewAnalyticsService(promptRepo)

	// Auth
	authService := auth.NewService(cfg.JWTSecret)
	authMiddleware := auth.NewMiddleware(authService)

	// Handlers
	healthHandler := handlers.NewHealthHandler(db)
	organizationHandler := handlers.NewOrganizationHandler(organizationService)
	captureHandler := handlers.NewCaptureHandler(captureService, cfg.MaxPromptBytes)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// API v1 routes - all endpoints require an organization-scoped token
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		captures := v1.Group("/captures")
		{
			captures.POST("", captureHandler.CreateCapture)
		}

		analytics := v1.Group("/analytics")
		{
			analytics.GET("/summary", analyticsHandler.GetSummary)
			analytics.GET("/trend", analyticsHandler.GetTrend)
			analytics.GET("/flagged", analyticsHandler.GetFlagged)
			analytics.GET("/subjects", analyticsHandler.GetSubjectActivity)
		}

		organizations := v1.Group("/organizations")
		{
			organizations.POST("", organizationHandler.CreateOrganization)
			organizations.GET("/:id", organizationHandler.GetOrganization)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router, nil
}
