package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/playgroundlabs/playground-api/internal/api/metrics"
	"github.com/playgroundlabs/playground-api/internal/core/domain"
	"github.com/playgroundlabs/playground-api/internal/core/ports"
)

// CodeService forwards execution payloads to the sandboxed runner, with a
// best-effort result cache in front. Cache failures are logged and ignored;
// the runner remains the source of truth.
type CodeService struct {
	runner ports.CodeRunner
	cache  ports.ExecutionCache
	log    zerolog.Logger
}

func NewCodeService(runner ports.CodeRunner, cache ports.ExecutionCache, log zerolog.Logger) *CodeService {
	return &CodeService{runner: runner, cache: cache, log: log}
}

func (s *CodeService) Execute(ctx context.Context, req domain.ExecutionRequest) (*domain.ExecutionResult, error) {
	start := time.Now()

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, req)
		switch {
		case err != nil:
			s.log.Warn().Err(err).Str("language", req.Language).Msg("execution cache read failed")
		case cached != nil:
			metrics.ExecutionCacheTotal.WithLabelValues("hit").Inc()
			return cached, nil
		default:
			metrics.ExecutionCacheTotal.WithLabelValues("miss").Inc()
		}
	}

	result, err := s.runner.Execute(ctx, req)
	if err != nil {
		outcome := "error"
		if errors.Is(err, domain.ErrRunnerRejected) {
			outcome = "rejected"
		}
		metrics.ExecutionsTotal.WithLabelValues(req.Language, outcome).Inc()
		return nil, err
	}

	metrics.ExecutionsTotal.WithLabelValues(req.Language, "ok").Inc()
	metrics.ExecutionDuration.WithLabelValues(req.Language).Observe(time.Since(start).Seconds())

	if s.cache != nil {
		if err := s.cache.Set(ctx, req, result); err != nil {
			s.log.Warn().Err(err).Str("language", req.Language).Msg("execution cache write failed")
		}
	}
	return result, nil
}
