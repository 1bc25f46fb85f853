package controllers

import (
	"ClaimTrack/handlers"
	"ClaimTrack/middlewares"

	"github.com/gin-gonic/gin"
)

// SetupClaimRoutes registers the claim, note, dashboard and report
// routes. Reads are public; mutating routes require an authenticated
// actor, destructive and admin operations require the Admin role.
func SetupClaimRoutes(router *gin.Engine, claimHandler *handlers.ClaimHandler, noteHandler *handlers.ClaimNoteHandler, dashboardHandler *handlers.DashboardHandler) {
	// Public read routes
	router.GET("/claims", claimHandler.ListClaims)
	router.GET("/claims/statuses", claimHandler.ListStatuses)
	router.GET("/claims/:id", claimHandler.GetClaimByID)
	router.GET("/claims/:id/notes", noteHandler.ListNotes)
	router.GET("/dashboard", dashboardHandler.GetDashboard)

	// Mutating routes: any authenticated actor
	authed := router.Group("/").Use(middlewares.TokenAuthMiddleware())
	{
		authed.POST("/claims", claimHandler.CreateClaim)
		authed.PUT("/claims/:id", claimHandler.UpdateClaim)
		authed.POST("/claims/:id/flag", claimHandler.ToggleFlag)
		authed.POST("/claims/:id/notes", noteHandler.AddNote)
	}

	// Admin routes
	admin := router.Group("/").Use(middlewares.TokenAuthMiddleware("Admin"))
	{
		admin.DELETE("/claims/:id", claimHandler.DeleteClaim)
		admin.POST("/reports/flagged-digest", dashboardHandler.SendFlaggedDigest)
	}
}
