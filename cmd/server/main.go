package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/labelscan/backend/config"
	httpDelivery "github.com/labelscan/backend/internal/delivery/http"
	"github.com/labelscan/backend/internal/infrastructure/gemini"
	googleauth "github.com/labelscan/backend/internal/infrastructure/google"
	"github.com/labelscan/backend/internal/infrastructure/translate"
	"github.com/labelscan/backend/internal/infrastructure/vision"
	"github.com/labelscan/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting LabelScan Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Gemini model: %s", cfg.Google.GeminiModel)
	if cfg.Google.ProjectID != "" {
		log.Printf("Project: %s", cfg.Google.ProjectID)
	}

	// Resolve Google credentials once; all clients share the handle
	var googleClient *http.Client
	if cfg.Google.APIKey == "" {
		googleClient, err = googleauth.NewHTTPClient(context.Background(), cfg.Google.CredentialsFile, cfg.Google.Timeout)
		if err != nil {
			log.Fatalf("Failed to initialize Google credentials: %v", err)
		}
		if cfg.Google.CredentialsFile != "" {
			log.Printf("Credentials: service account file %s", cfg.Google.CredentialsFile)
		} else {
			log.Printf("Credentials: ambient application default")
		}
	} else {
		googleClient = &http.Client{Timeout: cfg.Google.Timeout}
		log.Printf("Credentials: API key (%s...)", cfg.Google.APIKey[:min(8, len(cfg.Google.APIKey))])
	}

	// Initialize collaborator clients
	visionClient := vision.NewClient(googleClient, cfg.Google.VisionBaseURL, cfg.Google.APIKey)
	geminiClient := gemini.NewClient(googleClient, cfg.Google.GeminiBaseURL, cfg.Google.APIKey, cfg.Google.GeminiModel)
	translateClient := translate.NewClient(cfg.Translate.BaseURL, cfg.Translate.Timeout)

	// Enable debug mode in development environment
	if cfg.Server.Environment == "development" {
		visionClient.SetDebug(true)
		geminiClient.SetDebug(true)
		log.Printf("Collaborator client debug mode enabled")
	}

	// Initialize usecase layer
	extractionService := usecase.NewExtractionService(visionClient, geminiClient)
	analysisService := usecase.NewAnalysisService(geminiClient)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(extractionService, analysisService, translateClient)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
