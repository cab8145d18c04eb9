package ports

import (
	"context"

	"github.com/playgroundlabs/playground-api/internal/core/domain"
)

// PasswordSignupInput carries the manual signup form fields.
type PasswordSignupInput struct {
	EmailID     string
	FirstName   string
	LastName    string
	PhoneNumber string
	Password    string
}

// GoogleSignupInput carries the identity fields extracted from a verified
// Google assertion.
type GoogleSignupInput struct {
	EmailID   string
	FirstName string
	LastName  string
}

// AuthService orchestrates signup and login for both auth methods.
// Signups never issue a session; only logins do.
type AuthService interface {
	SignupPassword(ctx context.Context, in PasswordSignupInput) (*domain.Account, error)
	LoginPassword(ctx context.Context, emailID, password string) (string, *domain.Account, error)
	SignupGoogle(ctx context.Context, in GoogleSignupInput) (*domain.Account, error)
	LoginGoogle(ctx context.Context, emailID string) (string, *domain.Account, error)
	Profile(ctx context.Context, emailID string) (*domain.Account, error)
}

// TokenIssuer mints and verifies the signed, stateless session tokens.
type TokenIssuer interface {
	Issue(accountID, emailID string) (string, error)
	Verify(token string) (*domain.SessionClaims, error)
}

// PasswordHasher produces salted one-way hashes of plaintext passwords.
// Verify reports false for mismatches and malformed hashes alike.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) bool
}

// GoogleIdentity is the subset of assertion claims this core consumes.
type GoogleIdentity struct {
	EmailID   string
	FirstName string
	LastName  string
}

// IdentityVerifier validates a third-party identity assertion and extracts
// the claims before they reach the AuthService. Implementations live outside
// the core; assertion failures never reach the Authenticator.
type IdentityVerifier interface {
	Verify(ctx context.Context, assertion string) (*GoogleIdentity, error)
}
