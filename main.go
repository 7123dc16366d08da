package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	appLogger "github.com/FACorreiaa/mood-dining-suggestions/app/logger"
	"github.com/FACorreiaa/mood-dining-suggestions/app/observability/metrics"
	"github.com/FACorreiaa/mood-dining-suggestions/app/tracer"
	"github.com/FACorreiaa/mood-dining-suggestions/internal/api/feedback"
	generativeAI "github.com/FACorreiaa/mood-dining-suggestions/internal/api/generative_ai"
	llmInteraction "github.com/FACorreiaa/mood-dining-suggestions/internal/api/llm_interaction"
	"github.com/FACorreiaa/mood-dining-suggestions/internal/api/places"
	"github.com/FACorreiaa/mood-dining-suggestions/internal/api/recommendations"
	api "github.com/FACorreiaa/mood-dining-suggestions/internal/router"

	"github.com/FACorreiaa/mood-dining-suggestions/config"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
)

func main() {
	// --- Initial Loading ---
	// Use standard log until slog is configured, in case godotenv fails
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found or error loading:", err)
	}

	cfg, err := config.InitConfig()
	if err != nil {
		log.Fatalf("FATAL: Error initializing config: %v", err)
	}

	// --- Logger Setup ---
	logger := setupLogger()
	slog.SetDefault(logger) // Set globally after initialization

	// --- Application Context & Shutdown ---
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// --- Observability ---
	tracer.InitTracingAndMetrics(cfg.Server.MetricsPort)
	metrics.InitAppMetrics()

	// --- Provider Clients ---
	// Credentials are read here once and handed to the collaborators; a
	// missing credential disables that collaborator rather than breaking it.
	var placesService places.Service
	if foursquareKey := os.Getenv("FOURSQUARE_API_KEY"); foursquareKey != "" {
		placesService = places.NewServiceImpl(cfg.Providers.Foursquare, foursquareKey, logger)
	} else {
		logger.Warn("FOURSQUARE_API_KEY not set, place search disabled")
	}

	var aiClient *generativeAI.AIClient
	if geminiKey := os.Getenv("GOOGLE_GEMINI_API_KEY"); geminiKey != "" {
		aiClient, err = generativeAI.NewAIClient(ctx, geminiKey, cfg.Providers.Gemini)
		if err != nil {
			logger.Error("Failed to create AI client", slog.Any("error", err))
			os.Exit(1)
		}
	} else {
		logger.Warn("GOOGLE_GEMINI_API_KEY not set, generation disabled, mock data will be served")
	}

	// --- Dependency Injection ---
	llmService := llmInteraction.NewServiceImpl(aiClient, logger)
	recommendationService := recommendations.NewServiceImpl(placesService, llmService, logger)
	recommendationHandler := recommendations.NewHandler(recommendationService, cfg.Defaults, logger)
	feedbackHandler := feedback.NewHandler(logger)

	// --- Router Setup ---
	routerConfig := &api.Config{
		RecommendationHandler: recommendationHandler,
		FeedbackHandler:       feedbackHandler,
	}
	mainRouter := api.SetupRouter(routerConfig)

	router := chi.NewMux() // Use NewMux for Chi v5
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(appLogger.StructuredLogger(logger)) // Use your slog middleware
	router.Use(middleware.Recoverer)
	router.Use(middleware.StripSlashes)
	router.Use(middleware.Timeout(cfg.Server.Timeout))
	router.Use(middleware.Compress(5, "application/json")) // Compress JSON responses
	router.Mount("/", mainRouter)

	// --- HTTP Server Setup ---
	serverAddress := fmt.Sprintf(":%s", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         serverAddress,
		Handler:      router, // Use your Chi router
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError), // Pipe server errors to slog
	}

	// --- Start Server Goroutine ---
	go func() {
		logger.Info("Starting HTTP server", slog.String("address", serverAddress))
		err := srv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server ListenAndServe error", slog.Any("error", err))
			cancel() // Trigger shutdown if server fails unexpectedly
		}
	}()

	// --- Wait for Shutdown Signal ---
	<-ctx.Done() // Block until context is cancelled (Ctrl+C, SIGTERM)

	// --- Graceful Shutdown ---
	logger.Info("Shutdown signal received, starting graceful shutdown...")

	// Create a context with timeout for shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second) // 10 seconds to shutdown
	defer shutdownCancel()

	// Attempt to gracefully shut down the HTTP server
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server graceful shutdown failed", slog.Any("error", err))
	} else {
		logger.Info("HTTP server gracefully stopped")
	}

	logger.Info("Application shut down complete.")
}

// setupLogger configures and returns the application logger.
func setupLogger() *slog.Logger {
	var logger *slog.Logger
	env := os.Getenv("APP_ENV")

	if env == "development" || env == "" { // Default to development if not set
		// Colored logs for development
		tintOpts := &tint.Options{
			Level:      slog.LevelDebug, // More verbose in dev
			TimeFormat: time.Kitchen,
			AddSource:  true, // Show file:line
		}
		logger = slog.New(tint.NewHandler(os.Stdout, tintOpts))
		log.Println("Initialized development logger (tint)") // Use standard log before slog default is set
	} else {
		// JSON logs for production or other environments
		jsonOpts := &slog.HandlerOptions{
			Level:     slog.LevelInfo,
			AddSource: false, // Don't add source in prod unless needed for specific errors
		}
		logger = slog.New(slog.NewJSONHandler(os.Stdout, jsonOpts))
		log.Println("Initialized production logger (JSON)")
	}
	return logger
}
