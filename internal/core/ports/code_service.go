package ports

import (
	"context"

	"github.com/playgroundlabs/playground-api/internal/core/domain"
)

// CodeService executes a code payload and returns the runner's verdict.
type CodeService interface {
	Execute(ctx context.Context, req domain.ExecutionRequest) (*domain.ExecutionResult, error)
}

// CodeRunner is the sandboxed execution backend the service forwards to.
type CodeRunner interface {
	Execute(ctx context.Context, req domain.ExecutionRequest) (*domain.ExecutionResult, error)
}

// ExecutionCache memoizes runner verdicts for identical payloads. A miss is
// (nil, nil); cache failures must be non-fatal to the execution path.
type ExecutionCache interface {
	Get(ctx context.Context, req domain.ExecutionRequest) (*domain.ExecutionResult, error)
	Set(ctx context.Context, req domain.ExecutionRequest, result *domain.ExecutionResult) error
}
