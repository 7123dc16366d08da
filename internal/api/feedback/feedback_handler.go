package feedback

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/mood-dining-suggestions/internal/api"
	"github.com/FACorreiaa/mood-dining-suggestions/internal/types"
)

// Handler accepts feedback on a recommendation and logs it. There is no
// storage behind this endpoint.
type Handler struct {
	logger *slog.Logger
}

func NewHandler(logger *slog.Logger) *Handler {
	return &Handler{logger: logger}
}

// SubmitFeedback handles POST /api/v1/feedback.
func (h *Handler) SubmitFeedback(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("FeedbackHandler").Start(r.Context(), "SubmitFeedback", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/api/v1/feedback"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "SubmitFeedback"))

	var req types.FeedbackRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		l.ErrorContext(ctx, "Failed to decode request body", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if req.RecommendationID == "" {
		l.ErrorContext(ctx, "Recommendation ID is required")
		api.ErrorResponse(w, r, http.StatusBadRequest, "recommendationId is required")
		return
	}

	// The uuid lets operators correlate log lines about one submission.
	feedbackID := uuid.New()
	l.InfoContext(ctx, "Feedback received",
		slog.String("feedback_id", feedbackID.String()),
		slog.String("recommendation_id", req.RecommendationID),
		slog.Int("rating", req.Rating),
		slog.String("comment", req.Comment),
	)

	api.WriteJSONResponse(w, r, http.StatusOK, map[string]string{
		"status":     "received",
		"feedbackId": feedbackID.String(),
	})
}
