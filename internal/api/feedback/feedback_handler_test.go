package feedback

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postFeedback(t *testing.T, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	handler := NewHandler(slog.Default())
	req := httptest.NewRequest(http.MethodPost, "/api/v1/feedback", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler.SubmitFeedback(w, req)
	return w
}

func TestSubmitFeedback(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		w := postFeedback(t, []byte(`{"recommendationId":"rec-42","rating":5,"comment":"great pick"}`))

		assert.Equal(t, http.StatusOK, w.Code)
		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "received", body["status"])
		assert.NotEmpty(t, body["feedbackId"])
	})

	t.Run("MissingRecommendationID", func(t *testing.T) {
		w := postFeedback(t, []byte(`{"rating":2}`))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("MalformedBody", func(t *testing.T) {
		w := postFeedback(t, []byte(`not json`))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
