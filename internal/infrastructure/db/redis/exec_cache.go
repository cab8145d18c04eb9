package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/playgroundlabs/playground-api/internal/core/domain"
)

const cacheTTL = time.Hour

// ExecCache memoizes runner verdicts in Redis so identical payloads skip the
// round trip to the sandbox. Key format: exec:<sha256 of language|version|files>.
type ExecCache struct {
	client *redis.Client
}

// NewExecCache creates an ExecCache wrapping the given Redis client.
func NewExecCache(client *redis.Client) *ExecCache {
	return &ExecCache{client: client}
}

// Get returns the cached verdict for this payload, or (nil, nil) on a miss.
func (c *ExecCache) Get(ctx context.Context, req domain.ExecutionRequest) (*domain.ExecutionResult, error) {
	raw, err := c.client.Get(ctx, c.key(req)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("cache get: %w", err)
	}

	var result domain.ExecutionResult
	if err := json.Unmarshal(raw, &result); err != nil {
		// Treat a corrupt entry as a miss; it will be overwritten.
		return nil, nil
	}
	return &result, nil
}

// Set stores the verdict for this payload (expires after cacheTTL).
func (c *ExecCache) Set(ctx context.Context, req domain.ExecutionRequest, result *domain.ExecutionResult) error {
	raw, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(req), raw, cacheTTL).Err()
}

func (c *ExecCache) key(req domain.ExecutionRequest) string {
	h := sha256.New()
	h.Write([]byte(req.Language))
	h.Write([]byte{0})
	h.Write([]byte(req.Version))
	for _, f := range req.Files {
		h.Write([]byte{0})
		h.Write([]byte(f.Name))
		h.Write([]byte{0})
		h.Write([]byte(f.Content))
	}
	return "exec:" + hex.EncodeToString(h.Sum(nil))
}
