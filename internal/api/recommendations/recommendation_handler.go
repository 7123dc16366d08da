package recommendations

import (
	"log/slog"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/mood-dining-suggestions/app/observability/metrics"
	"github.com/FACorreiaa/mood-dining-suggestions/config"
	"github.com/FACorreiaa/mood-dining-suggestions/internal/api"
	"github.com/FACorreiaa/mood-dining-suggestions/internal/types"
)

type Handler struct {
	recommendationService Service
	defaults              config.DefaultsConfig
	logger                *slog.Logger
}

func NewHandler(recommendationService Service, defaults config.DefaultsConfig, logger *slog.Logger) *Handler {
	return &Handler{
		recommendationService: recommendationService,
		defaults:              defaults,
		logger:                logger,
	}
}

// GetRecommendations handles POST /api/v1/recommendations.
func (h *Handler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("RecommendationHandler").Start(r.Context(), "GetRecommendations", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/api/v1/recommendations"),
	))
	defer span.End()

	start := time.Now()
	l := h.logger.With(slog.String("handler", "GetRecommendations"))
	l.DebugContext(ctx, "Recommendation handler invoked")

	var req types.RecommendationRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		l.ErrorContext(ctx, "Failed to decode request body", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if req.Location == "" || req.Mood == "" {
		l.ErrorContext(ctx, "Missing required fields", slog.String("location", req.Location), slog.String("mood", string(req.Mood)))
		api.ErrorResponse(w, r, http.StatusBadRequest, "Location and mood are required")
		return
	}

	if req.TimeAvailable <= 0 {
		req.TimeAvailable = h.defaults.TimeAvailable
	}
	if req.MaxDistance <= 0 {
		req.MaxDistance = h.defaults.MaxDistance
	}
	span.SetAttributes(attribute.String("mood", string(req.Mood)))

	response := h.recommendationService.GetRecommendations(ctx, req)

	m := metrics.Get()
	m.RecommendationRequestsTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("source", string(response.Source))))
	m.RecommendationDurationSeconds.Record(ctx, time.Since(start).Seconds())

	api.WriteJSONResponse(w, r, http.StatusOK, response)
}
