package controllers

import (
	"ClaimTrack/handlers"
	"ClaimTrack/middlewares"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Handler *handlers.AuthHandler
}

// NewAuthController creates a new AuthController with the given AuthHandler
func NewAuthController(authHandler *handlers.AuthHandler) *AuthController {
	return &AuthController{
		Handler: authHandler,
	}
}

// RegisterRoutes initializes all authentication routes directly on the router
func (ac *AuthController) RegisterRoutes(router *gin.Engine) {
	// Public routes: No authentication required
	router.POST("/auth/login", ac.Handler.Login)
	router.POST("/auth/logout", ac.Handler.Logout)

	// Admin routes: user accounts are created by an Admin
	admin := router.Group("/auth").Use(middlewares.TokenAuthMiddleware("Admin"))
	{
		admin.POST("/register", ac.Handler.Register)
	}
}
