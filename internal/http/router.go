package http

import (
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"go.skvk.app/ephemeris-api/internal/usecase"
)

// SetupRouter creates and configures the Gin router.
func SetupRouter(chartUC *usecase.ChartUseCase) *gin.Engine {

	router := gin.Default()

	// Setup CORS middleware.
	corsConfig := cors.DefaultConfig()

	// Get allowed origins from environment variable.
	// Default to allow all origins if not specified.
	allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
	if allowedOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(allowedOrigins, ",")
	} else {
		corsConfig.AllowAllOrigins = true
	}

	router.Use(cors.New(corsConfig))

	// Create handler.
	handler := NewHandler(chartUC)

	// API v1 routes.
	v1 := router.Group("/v1")

	// Body positions.
	bodies := v1.Group("/bodies")
	bodies.GET("", handler.GetBodies)
	bodies.GET("/position", handler.GetPlanetPosition)

	// Sidereal offsets.
	v1.GET("/ayanamsha", handler.GetAyanamsha)

	// Houses and chart angles.
	houses := v1.Group("/houses")
	houses.GET("/cusps", handler.GetHouseCusps)
	houses.GET("/angles", handler.GetAscendantData)

	// Health check.
	router.GET("/health", handler.HealthCheck)

	return router
}
