package genai_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ekocak/todo-service/internal/adapters/clients/genai"
	"github.com/ekocak/todo-service/internal/domain"
	"github.com/ekocak/todo-service/internal/platform/config"
	"github.com/ekocak/todo-service/internal/platform/httpclient"
)

func newClient(t *testing.T, baseURL string) *genai.Client {
	t.Helper()

	logger := slog.New(slog.DiscardHandler)
	cfg := &config.ClientConfig{
		BaseURL: baseURL,
		Timeout: 5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     1,
			InitialInterval: time.Millisecond,
			MaxInterval:     time.Millisecond,
			Multiplier:      1,
		},
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   100,
			Timeout:       time.Second,
			HalfOpenLimit: 1,
		},
	}

	hc := httpclient.New(cfg, "genai", nil, logger)
	return genai.New(hc, &config.GenAIConfig{APIKey: "test-key", Model: "test-model"}, logger)
}

func generateResponse(text string) map[string]any {
	return map[string]any{
		"candidates": []map[string]any{
			{"content": map[string]any{"parts": []map[string]any{{"text": text}}}},
		},
	}
}

func TestClient_Expand(t *testing.T) {
	var gotPath, gotKey string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(generateResponse("A richer description.")))
	}))
	defer srv.Close()

	client := newClient(t, srv.URL)

	got, err := client.Expand(context.Background(), "buy milk")
	require.NoError(t, err)

	assert.Equal(t, "A richer description.", got)
	assert.Equal(t, "/v1beta/models/test-model:generateContent", gotPath)
	assert.Equal(t, "test-key", gotKey)
	assert.Contains(t, gotBody, "contents")
	assert.Contains(t, gotBody, "systemInstruction")
}

func TestClient_Expand_TrimsWhitespace(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		require.NoError(t, json.NewEncoder(w).Encode(generateResponse("\n  padded answer  \n")))
	}))
	defer srv.Close()

	got, err := newClient(t, srv.URL).Expand(context.Background(), "buy milk")
	require.NoError(t, err)
	assert.Equal(t, "padded answer", got)
}

func TestClient_Expand_Non200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":{"message":"invalid key"}}`, http.StatusForbidden)
	}))
	defer srv.Close()

	_, err := newClient(t, srv.URL).Expand(context.Background(), "buy milk")
	assert.ErrorIs(t, err, domain.ErrUnavailable)
}

func TestClient_Expand_NoCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		require.NoError(t, json.NewEncoder(w).Encode(map[string]any{"candidates": []any{}}))
	}))
	defer srv.Close()

	_, err := newClient(t, srv.URL).Expand(context.Background(), "buy milk")
	assert.ErrorIs(t, err, domain.ErrUnavailable)
}

func TestClient_Expand_ServerDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // immediately closed so the dial fails

	_, err := newClient(t, srv.URL).Expand(context.Background(), "buy milk")
	assert.ErrorIs(t, err, domain.ErrUnavailable)
}
