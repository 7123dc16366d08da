package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/FACorreiaa/mood-dining-suggestions/internal/api/feedback"
	"github.com/FACorreiaa/mood-dining-suggestions/internal/api/recommendations"
)

// Config contains dependencies needed for the router setup
type Config struct {
	RecommendationHandler *recommendations.Handler
	FeedbackHandler       *feedback.Handler
}

// SetupRouter initializes and configures the main application router.
// Server-wide middleware (like logger, requestID, recoverer) are expected
// to be applied *before* mounting this router in main.go.
func SetupRouter(cfg *Config) chi.Router {
	r := chi.NewRouter()

	// The frontend is served from wherever; the API answers any origin and
	// the CORS middleware takes care of the OPTIONS preflight.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300, // Maximum value not ignored by any major browsers
	}))

	// Heartbeat/Health check endpoint
	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("pong"))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/recommendations", cfg.RecommendationHandler.GetRecommendations)
		r.Post("/feedback", cfg.FeedbackHandler.SubmitFeedback)
	})

	return r
}
