package ports

import (
	"context"

	"github.com/playgroundlabs/playground-api/internal/core/domain"
)

// AccountRepository defines the interface for account persistence.
//
// Insert must be atomic and enforce email uniqueness itself: the service's
// pre-check lookup is only an optimization, and a second concurrent insert
// for the same email must fail with domain.ErrConflict.
type AccountRepository interface {
	FindByEmail(ctx context.Context, emailID string) (*domain.Account, error)
	Insert(ctx context.Context, account *domain.Account) (*domain.Account, error)
}
