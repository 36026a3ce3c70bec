// Package main provides the ephemeris API HTTP server.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"go.skvk.app/ephemeris-api/internal/ephe"
	httpHandler "go.skvk.app/ephemeris-api/internal/http"
	"go.skvk.app/ephemeris-api/internal/usecase"
)

const version = "0.1.0"

func main() {
	// Load .env if present; real environment variables take precedence.
	if err := godotenv.Load(); err == nil {
		log.Printf("Loaded configuration from .env")
	}

	// Parse command-line flags.
	showHelp := flag.Bool("help", false, "Show usage information")
	showVersion := flag.Bool("version", false, "Show version information")
	flag.Parse()

	if *showHelp {
		printUsage()
		return
	}

	if *showVersion {
		fmt.Printf("ephemeris-api version %s\n", version)
		return
	}

	// Load configuration from environment.
	port := getEnv("PORT", "8080")
	ephePath := getEnv("EPHE_PATH", ephe.DefaultEphemerisPath)

	log.Printf("Starting ephemeris API server...")
	log.Printf("Port: %s", port)
	log.Printf("Ephemeris data directory: %s", ephePath)

	// Initialize the calculation handle. A missing data directory is fine;
	// every position then comes from the built-in theory.
	eph := ephe.New(ephePath)

	// Initialize use case.
	chartUC := usecase.NewChartUseCase(eph)

	// Setup router.
	router := httpHandler.SetupRouter(chartUC)

	// Start server.
	addr := fmt.Sprintf(":%s", port)
	log.Printf("Server listening on %s", addr)
	log.Printf("Health check: http://localhost:%s/health", port)
	log.Printf("API endpoints:")
	log.Printf("  - GET /v1/bodies")
	log.Printf("  - GET /v1/bodies/position")
	log.Printf("  - GET /v1/ayanamsha")
	log.Printf("  - GET /v1/houses/cusps")
	log.Printf("  - GET /v1/houses/angles")

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// printUsage prints usage information.
func printUsage() {
	fmt.Printf("Ephemeris API Server v%s\n\n", version)
	fmt.Println("USAGE:")
	fmt.Println("  ephemeris-api [flags]")
	fmt.Println()
	fmt.Println("FLAGS:")
	fmt.Println("  -help          Show this help message")
	fmt.Println("  -version       Show version information")
	fmt.Println()
	fmt.Println("ENVIRONMENT VARIABLES:")
	fmt.Println("  PORT                    Server port (default: 8080)")
	fmt.Println("  EPHE_PATH               Ephemeris table directory (default: ./data/ephemeris)")
	fmt.Println("  CORS_ALLOWED_ORIGINS    Comma-separated list of allowed origins (default: all origins)")
	fmt.Println()
	fmt.Println("EXAMPLES:")
	fmt.Println("  # Start server with default settings")
	fmt.Println("  ephemeris-api")
	fmt.Println()
	fmt.Println("  # Start server on custom port")
	fmt.Println("  PORT=3000 ephemeris-api")
	fmt.Println()
	fmt.Println("API ENDPOINTS:")
	fmt.Println("  GET /health                    Health check")
	fmt.Println("  GET /v1/bodies                 List supported bodies")
	fmt.Println("  GET /v1/bodies/position        Sidereal position of one body")
	fmt.Println("  GET /v1/ayanamsha              Sidereal offset for a model")
	fmt.Println("  GET /v1/houses/cusps           House cusp longitudes")
	fmt.Println("  GET /v1/houses/angles          Ascendant, midheaven and related angles")
	fmt.Println()
}
