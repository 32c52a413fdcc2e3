package api

import (
	"github.com/gin-gonic/gin"
	"github.com/puttmatch/backend/internal/api/handlers"
	"github.com/puttmatch/backend/internal/config"
	"github.com/puttmatch/backend/internal/course"
	"github.com/puttmatch/backend/internal/middleware"
	"github.com/puttmatch/backend/internal/replay"
	"github.com/puttmatch/backend/internal/ws"
)

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, lib *course.Library, store *replay.Store, cfg *config.Config) {
	router.Use(middleware.CORSMiddleware(cfg))

	// API v1 group
	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", handlers.HealthCheck)

		// Course catalog (read-only; the pack is immutable after startup)
		courses := v1.Group("/courses")
		{
			courses.GET("", handlers.ListHoles(lib))
			courses.GET("/:holeId", handlers.GetHole(lib))
		}

		// Deterministic selection previews
		matches := v1.Group("/matches")
		{
			matches.GET("/:matchId/sequence", handlers.GetMatchSequence(lib, cfg))
			matches.GET("/:matchId/holes/:holeNumber", handlers.GetMatchHole(lib))
		}

		// Stateless stroke resolution and anti-cheat re-verification
		v1.POST("/simulate", handlers.Simulate(lib, store, cfg))
		v1.POST("/verify", handlers.VerifyStroke(lib, store))
		v1.GET("/simulate/ws", middleware.WebSocketCORSCheck(cfg), ws.HandleSimulateWS(lib, cfg))
	}
}
