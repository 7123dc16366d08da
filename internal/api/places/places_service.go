package places

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/FACorreiaa/mood-dining-suggestions/config"
	"github.com/FACorreiaa/mood-dining-suggestions/internal/types"
)

// detailFields is what the per-place detail fetch asks the provider for.
const detailFields = "name,location,hours,rating,price,categories,distance"

// Ensure implementation satisfies the interface
var _ Service = (*ServiceImpl)(nil)

// Service defines the places-lookup contract. SearchPlaces never returns an
// error: every transport or parse failure inside the lookup is absorbed and
// surfaces as an empty, non-rate-limited result.
type Service interface {
	SearchPlaces(ctx context.Context, location string, mood types.Mood, maxDistance int) types.PlacesResult
}

// ServiceImpl provides the implementation for Service on top of the
// Foursquare v3 Places API.
type ServiceImpl struct {
	logger      *slog.Logger
	client      *http.Client
	apiKey      string
	baseURL     string
	searchLimit int
	detailLimit int
}

// NewServiceImpl creates a places lookup. The API key is injected here rather
// than read from process-wide state; an empty key is the caller's signal to
// skip this component entirely.
func NewServiceImpl(cfg config.FoursquareConfig, apiKey string, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger:      logger,
		client:      &http.Client{Timeout: cfg.Timeout},
		apiKey:      apiKey,
		baseURL:     cfg.BaseURL,
		searchLimit: cfg.SearchLimit,
		detailLimit: cfg.DetailLimit,
	}
}

func (s *ServiceImpl) SearchPlaces(ctx context.Context, location string, mood types.Mood, maxDistance int) types.PlacesResult {
	ctx, span := otel.Tracer("PlacesService").Start(ctx, "SearchPlaces", trace.WithAttributes(
		attribute.String("location", location),
		attribute.String("mood", string(mood)),
		attribute.Int("max_distance_m", maxDistance),
	))
	defer span.End()

	l := s.logger.With(slog.String("service", "SearchPlaces"), slog.String("mood", string(mood)))

	mapping := mappingForMood(mood)
	searchURL, err := s.buildSearchURL(location, mapping, maxDistance)
	if err != nil {
		l.ErrorContext(ctx, "Failed to build search URL", slog.Any("error", err))
		span.RecordError(err)
		return types.PlacesResult{}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		l.ErrorContext(ctx, "Failed to build search request", slog.Any("error", err))
		span.RecordError(err)
		return types.PlacesResult{}
	}
	req.Header.Set("Authorization", s.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		l.WarnContext(ctx, "Places search request failed", slog.Any("error", err))
		span.RecordError(err)
		return types.PlacesResult{}
	}
	defer resp.Body.Close()

	// Quota exhaustion must not be confused with "no results": the assembler
	// routes it to a different tier with a user-facing message.
	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode == http.StatusPaymentRequired {
		l.WarnContext(ctx, "Places provider quota exhausted", slog.Int("status", resp.StatusCode))
		span.SetStatus(codes.Error, "Places provider rate limited")
		return types.PlacesResult{RateLimited: true}
	}
	if resp.StatusCode != http.StatusOK {
		l.WarnContext(ctx, "Places search returned non-success status", slog.Int("status", resp.StatusCode))
		span.SetStatus(codes.Error, "Places search failed")
		return types.PlacesResult{}
	}

	var search searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&search); err != nil {
		l.WarnContext(ctx, "Failed to decode places search response", slog.Any("error", err))
		span.RecordError(err)
		return types.PlacesResult{}
	}

	now := time.Now()
	candidates := make([]types.CandidatePlace, len(search.Results))
	for i, result := range search.Results {
		candidates[i] = candidateFromPlace(result, now)
	}

	s.enrichCandidates(ctx, l, search.Results, candidates, now)

	span.SetAttributes(attribute.Int("places.count", len(candidates)))
	span.SetStatus(codes.Ok, "Places search completed")
	return types.PlacesResult{Places: candidates}
}

// enrichCandidates fetches details for up to detailLimit search results
// concurrently and overwrites the coarse entries in place, preserving search
// order. A failed fetch leaves that single entry at the coarse fields.
func (s *ServiceImpl) enrichCandidates(ctx context.Context, l *slog.Logger, results []fsqPlace, candidates []types.CandidatePlace, now time.Time) {
	n := s.detailLimit
	if len(results) < n {
		n = len(results)
	}

	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < n; i++ {
		g.Go(func() error {
			detail, err := s.fetchPlaceDetails(gctx, results[i].FsqID)
			if err != nil {
				l.DebugContext(gctx, "Place detail fetch failed, keeping search fields",
					slog.String("fsq_id", results[i].FsqID), slog.Any("error", err))
				return nil
			}
			candidates[i] = candidateFromPlace(*detail, now)
			return nil
		})
	}
	_ = g.Wait()
}

func (s *ServiceImpl) fetchPlaceDetails(ctx context.Context, fsqID string) (*fsqPlace, error) {
	detailURL := fmt.Sprintf("%s/places/%s?fields=%s", s.baseURL, url.PathEscape(fsqID), url.QueryEscape(detailFields))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, detailURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build detail request: %w", err)
	}
	req.Header.Set("Authorization", s.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("detail request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("detail request returned status %d", resp.StatusCode)
	}

	var detail fsqPlace
	if err := json.NewDecoder(resp.Body).Decode(&detail); err != nil {
		return nil, fmt.Errorf("failed to decode detail response: %w", err)
	}
	return &detail, nil
}

func (s *ServiceImpl) buildSearchURL(location string, mapping moodMapping, maxDistance int) (string, error) {
	u, err := url.Parse(s.baseURL + "/places/search")
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set("query", mapping.Query)
	q.Set("categories", mapping.CategoryID)
	q.Set("near", location)
	q.Set("radius", strconv.Itoa(maxDistance))
	q.Set("open_now", "true")
	q.Set("sort", "RELEVANCE")
	q.Set("limit", strconv.Itoa(s.searchLimit))
	u.RawQuery = q.Encode()
	return u.String(), nil
}
