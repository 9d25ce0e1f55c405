package main

import (
	"fmt"
	"log"
	"os"

	"github.com/platewise/backend/config"
	httpDelivery "github.com/platewise/backend/internal/delivery/http"
	"github.com/platewise/backend/internal/infrastructure/cache"
	"github.com/platewise/backend/internal/infrastructure/lemma"
	"github.com/platewise/backend/internal/units"
	"github.com/platewise/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting PlateWise Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Languages: %v", units.SupportedLanguages())

	// Initialize infrastructure dependencies
	memoryCache := cache.NewMemoryCache(cfg.Cache.SweepInterval)
	log.Printf("Cache TTL: %s", cfg.Cache.TTL)

	lemmatizer := lemma.NewEnglish()

	catalog, ok := units.ForLanguage(cfg.Engine.DefaultLanguage)
	if !ok {
		log.Fatalf("No unit catalog for default language %q", cfg.Engine.DefaultLanguage)
	}

	// Enable debug logging in development environment
	debugLogging := cfg.Matching.EnableDebugLogging
	if cfg.Server.Environment == "development" {
		debugLogging = true
		log.Printf("Debug logging enabled")
	}

	// Initialize usecase layer
	parserService := usecase.NewParserService(memoryCache, usecase.ParserServiceConfig{
		DefaultLanguage:    cfg.Engine.DefaultLanguage,
		FallbackLanguage:   cfg.Engine.FallbackLanguage,
		CacheTTL:           cfg.Cache.TTL,
		EnableDebugLogging: debugLogging,
	})

	matchingConfig := usecase.DefaultMatchingConfig()
	matchingConfig.EnableDebugLogging = debugLogging
	matchingConfig.IncludeExtraInformation = cfg.Matching.IncludeExtraInformation
	matchingService := usecase.NewMatchingService(matchingConfig, catalog, lemmatizer)

	timingService := usecase.NewTimingService(debugLogging)

	log.Printf("Engine: language=%s fallback=%s debug=%v",
		cfg.Engine.DefaultLanguage, cfg.Engine.FallbackLanguage, debugLogging)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(parserService, matchingService, timingService)

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
