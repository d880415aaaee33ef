package http

import (
	"github.com/gin-gonic/gin"
	"github.com/labelscan/backend/config"
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

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	// Label analysis pipeline
	router.POST("/extract-ingredients", handler.ExtractIngredients)
	router.POST("/comprehensive-analysis", handler.ComprehensiveAnalysis)
	router.POST("/analyze-co2", handler.AnalyzeCO2)

	// Direct collaborator access
	router.POST("/ocr", handler.OCR)
	router.POST("/translate", handler.Translate)

	return router
}
