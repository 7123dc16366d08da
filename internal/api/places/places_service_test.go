package places

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/mood-dining-suggestions/config"
	"github.com/FACorreiaa/mood-dining-suggestions/internal/types"
)

func newTestService(baseURL string) *ServiceImpl {
	cfg := config.FoursquareConfig{
		BaseURL:     baseURL,
		SearchLimit: 5,
		DetailLimit: 3,
		Timeout:     2 * time.Second,
	}
	return NewServiceImpl(cfg, "test-key", slog.Default())
}

func TestSearchPlaces_RateLimited(t *testing.T) {
	for _, status := range []int{http.StatusTooManyRequests, http.StatusPaymentRequired} {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))

		result := newTestService(server.URL).SearchPlaces(context.Background(), "Seattle, WA", types.MoodCoffee, 1000)

		assert.True(t, result.RateLimited, "status %d must be classified as rate limited", status)
		assert.Empty(t, result.Places)
		server.Close()
	}
}

func TestSearchPlaces_TransientFailureIsSilent(t *testing.T) {
	t.Run("ServerError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		result := newTestService(server.URL).SearchPlaces(context.Background(), "Seattle, WA", types.MoodCoffee, 1000)

		assert.False(t, result.RateLimited)
		assert.Empty(t, result.Places)
	})

	t.Run("NetworkError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close() // connection refused from here on

		result := newTestService(server.URL).SearchPlaces(context.Background(), "Seattle, WA", types.MoodCoffee, 1000)

		assert.False(t, result.RateLimited)
		assert.Empty(t, result.Places)
	})

	t.Run("MalformedBody", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("not json"))
		}))
		defer server.Close()

		result := newTestService(server.URL).SearchPlaces(context.Background(), "Seattle, WA", types.MoodCoffee, 1000)

		assert.False(t, result.RateLimited)
		assert.Empty(t, result.Places)
	})
}

func TestSearchPlaces_QueryParameters(t *testing.T) {
	var gotQuery map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{}
		for k := range r.URL.Query() {
			gotQuery[k] = r.URL.Query().Get(k)
		}
		assert.Equal(t, "test-key", r.Header.Get("Authorization"))
		w.Write([]byte(`{"results":[]}`))
	}))
	defer server.Close()

	newTestService(server.URL).SearchPlaces(context.Background(), "Seattle, WA", types.MoodCoffee, 750)

	require.NotNil(t, gotQuery)
	assert.Equal(t, "coffee shop", gotQuery["query"])
	assert.Equal(t, "13035", gotQuery["categories"])
	assert.Equal(t, "Seattle, WA", gotQuery["near"])
	assert.Equal(t, "750", gotQuery["radius"])
	assert.Equal(t, "true", gotQuery["open_now"])
	assert.Equal(t, "RELEVANCE", gotQuery["sort"])
	assert.Equal(t, "5", gotQuery["limit"])
}

func TestSearchPlaces_DetailEnrichment(t *testing.T) {
	// Weekly schedule with every day present keeps the rendered hours stable
	// regardless of the day the test runs.
	const detailBody = `{
		"name": "Elm Coffee Roasters",
		"distance": 420,
		"rating": 9.1,
		"price": 2,
		"location": {"address": "240 2nd Ave S", "locality": "Seattle", "region": "WA"},
		"categories": [{"id": 13035, "name": "Coffee Shop"}],
		"hours": {"open_now": true, "regular": [
			{"day": 1, "open": "0700", "close": "1700"},
			{"day": 2, "open": "0700", "close": "1700"},
			{"day": 3, "open": "0700", "close": "1700"},
			{"day": 4, "open": "0700", "close": "1700"},
			{"day": 5, "open": "0700", "close": "1700"},
			{"day": 6, "open": "0700", "close": "1700"},
			{"day": 7, "open": "0700", "close": "1700"}
		]}
	}`

	mux := http.NewServeMux()
	mux.HandleFunc("/places/search", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results":[
			{"fsq_id": "a1", "name": "Elm Coffee", "distance": 420},
			{"fsq_id": "b2", "name": "Storyville Coffee", "distance": 650}
		]}`))
	})
	mux.HandleFunc("/places/a1", func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.RawQuery, "fields=")
		w.Write([]byte(detailBody))
	})
	mux.HandleFunc("/places/b2", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	result := newTestService(server.URL).SearchPlaces(context.Background(), "Seattle, WA", types.MoodCoffee, 1000)

	require.Len(t, result.Places, 2)
	assert.False(t, result.RateLimited)

	// First entry was enriched by the detail fetch, search order preserved.
	enriched := result.Places[0]
	assert.Equal(t, "Elm Coffee Roasters", enriched.Name)
	assert.Equal(t, "240 2nd Ave S, Seattle, WA", enriched.Address)
	assert.Equal(t, "$$", enriched.Price)
	assert.Equal(t, "Open 07:00-17:00", enriched.Hours)
	assert.Equal(t, "Coffee Shop", enriched.Category)

	// Second entry's detail fetch failed: it keeps the coarse search fields.
	degraded := result.Places[1]
	assert.Equal(t, "Storyville Coffee", degraded.Name)
	assert.Equal(t, 650, degraded.Distance)
	assert.Empty(t, degraded.Address)
}

func TestSearchPlaces_DetailLimitRespected(t *testing.T) {
	var detailCalls atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("/places/search", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results":[
			{"fsq_id": "p1", "name": "One"},
			{"fsq_id": "p2", "name": "Two"},
			{"fsq_id": "p3", "name": "Three"},
			{"fsq_id": "p4", "name": "Four"},
			{"fsq_id": "p5", "name": "Five"}
		]}`))
	})
	mux.HandleFunc("/places/", func(w http.ResponseWriter, r *http.Request) {
		detailCalls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	result := newTestService(server.URL).SearchPlaces(context.Background(), "Seattle, WA", types.MoodQuickBite, 1000)

	require.Len(t, result.Places, 5)
	assert.Equal(t, int32(3), detailCalls.Load())
	assert.Equal(t, "One", result.Places[0].Name)
	assert.Equal(t, "Five", result.Places[4].Name)
}
