package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/raffleworks/raffle-coordinator/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Draw submission and queue inspection (requires authentication)
		v1.POST("/draws", middleware.Auth(authCfg), handler.SubmitDraw)
		v1.GET("/queue", middleware.Auth(authCfg), handler.GetQueue)

		// Verification records (public read access; anyone may verify)
		v1.GET("/verifications/:id", handler.GetVerification)

		// Randomness credential usage (requires authentication)
		v1.GET("/usage", middleware.Auth(authCfg), handler.GetUsage)

		// Identity links (writes require operator privileges)
		v1.POST("/links", middleware.Auth(authCfg), middleware.RequireOperator(), handler.CreateLink)
		v1.GET("/links", middleware.Auth(authCfg), handler.ListLinks)
		v1.DELETE("/links/:external_id", middleware.Auth(authCfg), middleware.RequireOperator(), handler.DeleteLink)

		// Announcement re-render (requires operator privileges)
		v1.POST("/announcements/:id/rerender", middleware.Auth(authCfg), middleware.RequireOperator(), handler.RerenderAnnouncement)

		// Destructive admin operations (requires operator privileges)
		v1.DELETE("/admin/verifications", middleware.Auth(authCfg), middleware.RequireOperator(), handler.WipeVerifications)
		v1.DELETE("/admin/ledger", middleware.Auth(authCfg), middleware.RequireOperator(), handler.WipeLedger)
	}
}
