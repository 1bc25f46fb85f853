package routes

import (
	"ClaimTrack/cache"
	"ClaimTrack/config"
	"ClaimTrack/controllers"
	"ClaimTrack/handlers"
	"ClaimTrack/middlewares"
	"ClaimTrack/repositories"
	"ClaimTrack/services"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes initializes the routes and middleware for the server
func SetupRoutes(cache *cache.Cache, config *config.AppConfig, db *gorm.DB) http.Handler {
	// Set Gin to release mode
	gin.SetMode(gin.ReleaseMode)

	// Create a Gin router
	router := gin.Default()

	// Apply Bearer token validation to all routes
	router.Use(middlewares.ValidateBearerToken(config.GetBearerToken()))

	// Create and apply CORS middleware configuration
	corsConfig := &middlewares.CorsConfig{
		AllowedOrigins:   []string{"http://localhost:3000", "https://claims.example.com"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}
	router.Use(middlewares.CorsMiddleware(corsConfig))

	// Apply rate limiter middleware
	router.Use(middlewares.NewRateLimiterMiddleware(middlewares.RateLimiterConfig{
		RequestsPerSecond: 15, // 15 requests per second
		Burst:             30, // Burst of 30
	}))

	// Apply logging middleware
	router.Use(middlewares.LoggingMiddleware())

	// Initialize repositories, services, and handlers
	claimRepo := repositories.NewClaimRepository(cache)
	noteRepo := repositories.NewClaimNoteRepository(cache)
	dashboardRepo := repositories.NewDashboardRepository(cache, noteRepo)
	userRepo := repositories.NewUserRepository(db)

	claimHandler := handlers.NewClaimHandler(services.NewClaimService(claimRepo))
	noteHandler := handlers.NewClaimNoteHandler(services.NewClaimNoteService(noteRepo))
	dashboardHandler := handlers.NewDashboardHandler(services.NewDashboardService(dashboardRepo), config.SMTP)
	authHandler := handlers.NewAuthHandler(services.NewAuthService(userRepo))

	// Register routes
	controllers.SetupClaimRoutes(router, claimHandler, noteHandler, dashboardHandler)

	authController := controllers.NewAuthController(authHandler)
	authController.RegisterRoutes(router)

	controllers.SetupRootRoute(router)

	return router
}
