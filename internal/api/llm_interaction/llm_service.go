package llmInteraction

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	generativeAI "github.com/FACorreiaa/mood-dining-suggestions/internal/api/generative_ai"
	"github.com/FACorreiaa/mood-dining-suggestions/internal/types"
)

// Ensure implementation satisfies the interface
var _ Service = (*ServiceImpl)(nil)

// generator abstracts the raw AI client so the service can be tested with
// canned provider output.
type generator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// Service is the text-generation side of the recommendation flow. Neither
// entry point ever returns an error: any provider failure degrades to the
// deterministic fallback (mock table or generic descriptions).
type Service interface {
	GenerateRecommendations(ctx context.Context, req types.RecommendationRequest) []types.Recommendation
	EnhanceRecommendations(ctx context.Context, candidates []types.CandidatePlace, mood types.Mood, location string) []types.Recommendation
}

// ServiceImpl provides the implementation for Service.
type ServiceImpl struct {
	logger   *slog.Logger
	aiClient generator // nil when no credential is configured
	now      func() time.Time
}

// NewServiceImpl creates the text-generation service. A nil aiClient means no
// credential was configured; both entry points then skip the network entirely.
func NewServiceImpl(aiClient *generativeAI.AIClient, logger *slog.Logger) *ServiceImpl {
	s := &ServiceImpl{
		logger: logger,
		now:    time.Now,
	}
	if aiClient != nil {
		s.aiClient = aiClient
	}
	return s
}

// GenerateRecommendations builds restaurant suggestions from scratch for the
// request, falling back to the static mock table for the request's mood on
// any failure.
func (s *ServiceImpl) GenerateRecommendations(ctx context.Context, req types.RecommendationRequest) []types.Recommendation {
	ctx, span := otel.Tracer("LlmInteractionService").Start(ctx, "GenerateRecommendations", trace.WithAttributes(
		attribute.String("mood", string(req.Mood)),
		attribute.String("location", req.Location),
	))
	defer span.End()

	l := s.logger.With(slog.String("service", "GenerateRecommendations"), slog.String("mood", string(req.Mood)))

	if s.aiClient == nil {
		l.InfoContext(ctx, "No AI credential configured, serving mock recommendations")
		span.SetStatus(codes.Ok, "Served mock recommendations")
		return MockRecommendationsForMood(req.Mood)
	}

	prompt := generateRecommendationsPrompt(req, s.now())
	response, err := s.aiClient.GenerateContent(ctx, prompt)
	if err != nil {
		l.WarnContext(ctx, "AI generation failed, serving mock recommendations", slog.Any("error", err))
		span.RecordError(err)
		return MockRecommendationsForMood(req.Mood)
	}

	recommendations, err := parseRecommendations(response)
	if err != nil || len(recommendations) == 0 {
		l.WarnContext(ctx, "Could not parse AI output, serving mock recommendations", slog.Any("error", err))
		span.RecordError(err)
		return MockRecommendationsForMood(req.Mood)
	}

	span.SetAttributes(attribute.Int("recommendations.count", len(recommendations)))
	span.SetStatus(codes.Ok, "Recommendations generated successfully")
	return recommendations
}

// EnhanceRecommendations asks the model for a short description per named
// place and merges the output back onto the candidates. Any failure leaves
// every candidate with a generic templated description instead.
func (s *ServiceImpl) EnhanceRecommendations(ctx context.Context, candidates []types.CandidatePlace, mood types.Mood, location string) []types.Recommendation {
	ctx, span := otel.Tracer("LlmInteractionService").Start(ctx, "EnhanceRecommendations", trace.WithAttributes(
		attribute.String("mood", string(mood)),
		attribute.Int("candidates.count", len(candidates)),
	))
	defer span.End()

	l := s.logger.With(slog.String("service", "EnhanceRecommendations"), slog.String("mood", string(mood)))

	if s.aiClient == nil {
		l.InfoContext(ctx, "No AI credential configured, using generic descriptions")
		span.SetStatus(codes.Ok, "Served generic descriptions")
		return s.withGenericDescriptions(candidates, mood)
	}

	names := make([]string, len(candidates))
	for i, candidate := range candidates {
		names[i] = candidate.Name
	}

	response, err := s.aiClient.GenerateContent(ctx, enhancePlacesPrompt(names, mood, location))
	if err != nil {
		l.WarnContext(ctx, "AI enhancement failed, using generic descriptions", slog.Any("error", err))
		span.RecordError(err)
		return s.withGenericDescriptions(candidates, mood)
	}

	descriptions, err := parseDescriptions(response)
	if err != nil {
		l.WarnContext(ctx, "Could not parse AI descriptions, using generic descriptions", slog.Any("error", err))
		span.RecordError(err)
		return s.withGenericDescriptions(candidates, mood)
	}

	span.SetStatus(codes.Ok, "Candidates enhanced successfully")
	return mergeDescriptions(candidates, descriptions, mood)
}

// mergeDescriptions attaches generated descriptions to candidates by
// case-insensitive exact-or-substring name match, first match wins. Unmatched
// candidates keep a generic templated description.
func mergeDescriptions(candidates []types.CandidatePlace, descriptions []generatedDescription, mood types.Mood) []types.Recommendation {
	recommendations := make([]types.Recommendation, len(candidates))
	for i, candidate := range candidates {
		description := genericDescription(candidate, mood)
		for _, generated := range descriptions {
			if generated.Description != "" && namesMatch(candidate.Name, generated.Name) {
				description = generated.Description
				break
			}
		}
		recommendations[i] = recommendationFromCandidate(candidate, description)
	}
	return recommendations
}

func namesMatch(placeName, generatedName string) bool {
	a := strings.ToLower(strings.TrimSpace(placeName))
	b := strings.ToLower(strings.TrimSpace(generatedName))
	if a == "" || b == "" {
		return false
	}
	return a == b || strings.Contains(a, b) || strings.Contains(b, a)
}

func (s *ServiceImpl) withGenericDescriptions(candidates []types.CandidatePlace, mood types.Mood) []types.Recommendation {
	recommendations := make([]types.Recommendation, len(candidates))
	for i, candidate := range candidates {
		recommendations[i] = recommendationFromCandidate(candidate, genericDescription(candidate, mood))
	}
	return recommendations
}

func genericDescription(candidate types.CandidatePlace, mood types.Mood) string {
	if candidate.Category != "" {
		return fmt.Sprintf("%s is a %s spot nearby that fits when you want %s.", candidate.Name, strings.ToLower(candidate.Category), moodIntent(mood))
	}
	return fmt.Sprintf("%s is a spot nearby that fits when you want %s.", candidate.Name, moodIntent(mood))
}

func recommendationFromCandidate(candidate types.CandidatePlace, description string) types.Recommendation {
	return types.Recommendation{
		Name:        candidate.Name,
		Description: description,
		Address:     candidate.Address,
		Distance:    candidate.Distance,
		Rating:      candidate.Rating,
		Hours:       candidate.Hours,
	}
}
