// Package genai is the outbound adapter for the generative-language API. It
// implements [ports.Enricher] by asking the configured model to expand a
// short to-do description into a richer one.
//
// The underlying [httpclient.Client] provides circuit breaking, retry with
// exponential backoff, OpenTelemetry tracing, and health checking for every
// outbound call.
package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/ekocak/todo-service/internal/domain"
	"github.com/ekocak/todo-service/internal/platform/config"
	"github.com/ekocak/todo-service/internal/platform/httpclient"
	"github.com/ekocak/todo-service/internal/ports"
)

// Compile-time interface check.
var _ ports.Enricher = (*Client)(nil)

// systemInstruction steers the model toward a short, self-contained answer.
// The model tends to answer in markdown regardless; callers flatten it.
const systemInstruction = "You expand terse to-do descriptions into a single " +
	"richer paragraph with concrete, actionable detail. Answer with the " +
	"expanded description only, no preamble."

// Client calls the generative-language generateContent endpoint.
type Client struct {
	client *httpclient.Client
	model  string
	apiKey string
	logger *slog.Logger
}

// New creates a Client. The httpclient's BaseURL should point to the API root
// (e.g. "https://generativelanguage.googleapis.com"); model and apiKey come
// from the genai configuration section.
func New(client *httpclient.Client, cfg *config.GenAIConfig, logger *slog.Logger) *Client {
	return &Client{
		client: client,
		model:  cfg.Model,
		apiKey: cfg.APIKey,
		logger: logger,
	}
}

// Request/response DTOs for the v1beta generateContent wire format. Only the
// fields this adapter reads or writes are modeled.
type (
	generateRequest struct {
		SystemInstruction *content  `json:"systemInstruction,omitempty"`
		Contents          []content `json:"contents"`
	}

	content struct {
		Parts []part `json:"parts"`
	}

	part struct {
		Text string `json:"text"`
	}

	generateResponse struct {
		Candidates []candidate `json:"candidates"`
	}

	candidate struct {
		Content content `json:"content"`
	}
)

// Expand sends the description to the model and returns the first candidate's
// text. Transport failures, non-200 statuses, and empty answers map to
// domain.ErrUnavailable; the caller decides whether that is fatal.
func (c *Client) Expand(ctx context.Context, description string) (string, error) {
	reqDTO := generateRequest{
		SystemInstruction: &content{Parts: []part{{Text: systemInstruction}}},
		Contents:          []content{{Parts: []part{{Text: description}}}},
	}

	body, err := json.Marshal(reqDTO)
	if err != nil {
		return "", fmt.Errorf("marshaling generate request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.client.BaseURL(), c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("creating generate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.client.Do(ctx, req)
	if err != nil {
		if resp != nil {
			c.closeBody(ctx, resp)
		}
		return "", fmt.Errorf("calling model %s: %w", c.model, domain.ErrUnavailable)
	}
	defer c.closeBody(ctx, resp)

	if resp.StatusCode != http.StatusOK {
		c.logger.ErrorContext(ctx, "unexpected status from generative-language API",
			slog.String("operation", "Expand"),
			slog.String("model", c.model),
			slog.Int("status", resp.StatusCode),
		)
		return "", fmt.Errorf("model %s returned HTTP %d: %w", c.model, resp.StatusCode, domain.ErrUnavailable)
	}

	var respDTO generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&respDTO); err != nil {
		return "", fmt.Errorf("decoding generate response: %w", domain.ErrUnavailable)
	}

	text := firstCandidateText(&respDTO)
	if text == "" {
		return "", fmt.Errorf("model %s returned no text: %w", c.model, domain.ErrUnavailable)
	}

	return text, nil
}

// firstCandidateText concatenates the text parts of the first candidate.
func firstCandidateText(resp *generateResponse) string {
	if len(resp.Candidates) == 0 {
		return ""
	}

	var b strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		b.WriteString(p.Text)
	}
	return strings.TrimSpace(b.String())
}

// closeBody drains and closes the response body so the connection can be
// reused, logging on failure.
func (c *Client) closeBody(ctx context.Context, resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	if err := resp.Body.Close(); err != nil {
		c.logger.WarnContext(ctx, "failed to close response body",
			slog.String("error", err.Error()),
		)
	}
}
