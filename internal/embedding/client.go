// Package embedding converts text into fixed-length numeric vectors via a
// hosted embedding provider.
package embedding

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"brainvault/internal/config"
	"brainvault/internal/models"
	"brainvault/internal/observability"
)

// RequestTimeout bounds every provider call. There are no retries; callers
// treat embedding as best-effort.
const RequestTimeout = 10 * time.Second

// Embedder converts text into a fixed-length numeric vector.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// Client calls an OpenAI-compatible embeddings endpoint.
type Client struct {
	apiURL     string
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewClient returns a Client configured for the hosted embedding provider.
func NewClient(cfg *config.Config) *Client {
	return &Client{
		apiURL: cfg.EmbeddingAPIURL,
		apiKey: cfg.EmbeddingAPIKey,
		model:  cfg.EmbeddingModel,
		httpClient: &http.Client{
			Timeout: RequestTimeout,
		},
	}
}

type embedRequest struct {
	Model string `json:"model"`
	Input string `json:"input"`
}

type embedResponse struct {
	Data []struct {
		Embedding []float32 `json:"embedding"`
	} `json:"data"`
}

// Embed requests an embedding for text. Timeouts and non-success responses
// surface as a provider error.
func (c *Client) Embed(ctx context.Context, text string) ([]float32, error) {
	start := time.Now()
	defer func() {
		observability.EmbeddingLatency.Observe(time.Since(start).Seconds())
	}()

	payload, err := json.Marshal(embedRequest{Model: c.model, Input: text})
	if err != nil {
		return nil, models.NewProviderError(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(payload))
	if err != nil {
		return nil, models.NewProviderError(err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, models.NewProviderError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, models.NewProviderError(
			fmt.Errorf("embedding provider returned status %d: %s", resp.StatusCode, body))
	}

	var decoded embedResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, models.NewProviderError(err)
	}
	if len(decoded.Data) == 0 || len(decoded.Data[0].Embedding) == 0 {
		return nil, models.NewProviderError(fmt.Errorf("embedding provider returned no vectors"))
	}

	return decoded.Data[0].Embedding, nil
}
