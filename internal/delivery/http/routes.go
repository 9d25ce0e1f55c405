package http

import (
	"github.com/gin-gonic/gin"

	"github.com/platewise/backend/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))
	router.Use(RateLimitMiddleware(cfg.RateLimit.PerIP, cfg.RateLimit.Burst))

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		parse := v1.Group("/parse")
		{
			parse.POST("/ingredient", handler.ParseIngredient)
			parse.POST("/instruction", handler.ParseInstruction)
		}

		match := v1.Group("/match")
		{
			match.POST("/ingredients", handler.MatchIngredients)
			match.POST("/timings", handler.MatchTimings)
		}

		v1.POST("/analyze/step", handler.AnalyzeStep)
	}

	return router
}
