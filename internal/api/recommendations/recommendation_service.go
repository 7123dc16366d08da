package recommendations

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/mood-dining-suggestions/app/observability/metrics"
	llmInteraction "github.com/FACorreiaa/mood-dining-suggestions/internal/api/llm_interaction"
	"github.com/FACorreiaa/mood-dining-suggestions/internal/api/places"
	"github.com/FACorreiaa/mood-dining-suggestions/internal/types"
)

// rateLimitMessage is attached to the envelope when the places provider
// reports quota exhaustion and the request is rerouted to the generated tier.
const rateLimitMessage = "Live place search is temporarily unavailable; showing AI-generated suggestions instead."

// Ensure implementation satisfies the interface
var _ Service = (*ServiceImpl)(nil)

// Service assembles the final recommendation list for one request. It cannot
// fail: the last tier is static data.
type Service interface {
	GetRecommendations(ctx context.Context, req types.RecommendationRequest) *types.RecommendationResponse
}

// ServiceImpl walks an ordered list of fallback tiers - enhanced real places,
// generated-only, static mock - until one yields a non-empty list. A single
// provider failure settles the outcome for the request; there are no retries,
// no backoff and no cross-request state.
type ServiceImpl struct {
	logger        *slog.Logger
	placesService places.Service // nil when no places credential is configured
	llmService    llmInteraction.Service
}

// NewServiceImpl creates the assembler. Pass a nil placesService when no
// places credential is configured; the places tier is then skipped entirely.
func NewServiceImpl(placesService places.Service, llmService llmInteraction.Service, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger:        logger,
		placesService: placesService,
		llmService:    llmService,
	}
}

// fallbackTier is one strategy in the ordered chain. A tier may annotate the
// envelope (rate-limit flag, message, source) even when it yields no list.
type fallbackTier struct {
	name string
	run  func(ctx context.Context, req types.RecommendationRequest, resp *types.RecommendationResponse) []types.Recommendation
}

func (s *ServiceImpl) tiers() []fallbackTier {
	tiers := make([]fallbackTier, 0, 3)
	if s.placesService != nil {
		tiers = append(tiers, fallbackTier{name: "enhanced-places", run: s.runEnhancedPlaces})
	}
	tiers = append(tiers,
		fallbackTier{name: "generated", run: s.runGenerated},
		fallbackTier{name: "mock", run: s.runMock},
	)
	return tiers
}

func (s *ServiceImpl) GetRecommendations(ctx context.Context, req types.RecommendationRequest) *types.RecommendationResponse {
	ctx, span := otel.Tracer("RecommendationService").Start(ctx, "GetRecommendations", trace.WithAttributes(
		attribute.String("mood", string(req.Mood)),
		attribute.String("location", req.Location),
	))
	defer span.End()

	l := s.logger.With(slog.String("service", "GetRecommendations"), slog.String("mood", string(req.Mood)))

	response := &types.RecommendationResponse{}
	for i, tier := range s.tiers() {
		recommendations := tier.run(ctx, req, response)
		if len(recommendations) == 0 {
			l.DebugContext(ctx, "Fallback tier yielded nothing, moving on", slog.String("tier", tier.name))
			continue
		}
		response.Recommendations = recommendations
		span.SetAttributes(
			attribute.String("strategy", tier.name),
			attribute.String("source", string(response.Source)),
			attribute.Int("recommendations.count", len(recommendations)),
		)
		if i > 0 {
			metrics.Get().FallbacksTotal.Add(ctx, 1)
		}
		l.InfoContext(ctx, "Recommendations assembled",
			slog.String("tier", tier.name),
			slog.String("source", string(response.Source)),
			slog.Int("count", len(recommendations)))
		break
	}

	span.SetStatus(codes.Ok, "Recommendations assembled")
	return response
}

// runEnhancedPlaces queries the places provider and, when it returns venues,
// enhances them with generated descriptions. Quota exhaustion is not a plain
// miss: it marks the envelope so the caller can explain the degraded result.
func (s *ServiceImpl) runEnhancedPlaces(ctx context.Context, req types.RecommendationRequest, resp *types.RecommendationResponse) []types.Recommendation {
	result := s.placesService.SearchPlaces(ctx, req.Location, req.Mood, req.MaxDistance)
	if result.RateLimited {
		resp.RateLimitReached = true
		resp.Message = rateLimitMessage
		metrics.Get().ProviderRateLimitsTotal.Add(ctx, 1)
		return nil
	}
	if len(result.Places) == 0 {
		return nil
	}
	resp.Source = types.SourceFoursquare
	return s.llmService.EnhanceRecommendations(ctx, result.Places, req.Mood, req.Location)
}

func (s *ServiceImpl) runGenerated(ctx context.Context, req types.RecommendationRequest, resp *types.RecommendationResponse) []types.Recommendation {
	resp.Source = types.SourceAI
	return s.llmService.GenerateRecommendations(ctx, req)
}

func (s *ServiceImpl) runMock(_ context.Context, req types.RecommendationRequest, resp *types.RecommendationResponse) []types.Recommendation {
	resp.Source = types.SourceAI
	return llmInteraction.MockRecommendationsForMood(req.Mood)
}
