// Package piston talks to the sandboxed code-execution engine (a Piston
// container in the reference deployment).
package piston

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/playgroundlabs/playground-api/internal/core/domain"
)

const (
	executePath    = "/api/v2/execute"
	defaultTimeout = 20 * time.Second
)

// Client implements ports.CodeRunner over the engine's HTTP API.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a Client for the engine at baseURL. A default timeout is
// applied when none is provided; the sandbox enforces its own run limits, so
// this only bounds the full round trip.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// runnerError is the engine's error envelope on non-2xx responses.
type runnerError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (c *Client) Execute(ctx context.Context, req domain.ExecutionRequest) (*domain.ExecutionResult, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode execution request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+executePath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build execution request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRunnerUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var re runnerError
		if err := json.NewDecoder(resp.Body).Decode(&re); err == nil {
			if msg := firstNonEmpty(re.Error, re.Message); msg != "" {
				return nil, fmt.Errorf("%w: %s", domain.ErrRunnerRejected, msg)
			}
		}
		return nil, fmt.Errorf("%w: status %d", domain.ErrRunnerRejected, resp.StatusCode)
	}

	var result domain.ExecutionResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", domain.ErrRunnerUnavailable, err)
	}
	return &result, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
