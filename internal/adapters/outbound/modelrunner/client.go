// Package modelrunner provides a small, backend-agnostic client for an
// OpenAI-compatible chat-completions endpoint (Docker Model Runner, llama.cpp
// server, vLLM) and adapts it to the domain chat transport.
//
// Non-standard response fields such as "reasoning_content" are ignored.
package modelrunner

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

const (
	// DefaultCompletionsPath is the route served by OpenAI-compatible backends.
	DefaultCompletionsPath = "/v1/chat/completions"

	maxResponseBytes = 8 << 20
)

// CompletionsClient posts chat-completion requests to a single endpoint.
type CompletionsClient struct {
	endpoint string
	apiKey   string
	http     *http.Client
}

// NewCompletionsClient builds a client for baseURL joined with path.
// An empty path falls back to DefaultCompletionsPath.
func NewCompletionsClient(baseURL, path, apiKey string, httpClient *http.Client) (CompletionsClient, error) {
	if path == "" {
		path = DefaultCompletionsPath
	}
	endpoint, err := url.JoinPath(baseURL, path)
	if err != nil {
		return CompletionsClient{}, fmt.Errorf("invalid model host: %w", err)
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return CompletionsClient{
		endpoint: endpoint,
		apiKey:   apiKey,
		http:     httpClient,
	}, nil
}

// Complete sends one non-streaming completion request.
func (c CompletionsClient) Complete(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	if req.Model == "" {
		return nil, errors.New("model is required")
	}
	if len(req.Messages) == 0 {
		return nil, errors.New("messages are required")
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("http do: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, APIError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			RequestID:  resp.Header.Get("X-Request-Id"),
			Body:       string(respBody),
		}
	}

	var out ChatResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}
	return &out, nil
}
