package domain

import (
	"errors"
	"time"
)

// AuthMethod is the identity-proof mechanism bound to an account at signup.
// The binding is permanent: no operation moves an account between methods.
type AuthMethod string

const (
	// MethodPassword marks accounts created through the manual
	// email/password signup form.
	MethodPassword AuthMethod = "password"
	// MethodGoogle marks accounts created through the Google identity
	// assertion flow. These accounts carry no password hash.
	MethodGoogle AuthMethod = "google"
)

// Account models a registered user of the playground.
//
// PasswordHash and PhoneNumber are meaningful only when AuthMethod is
// MethodPassword; Google accounts store neither.
type Account struct {
	ID           string     `json:"id"`
	EmailID      string     `json:"emailid"`
	FirstName    string     `json:"firstname"`
	LastName     string     `json:"lastname"`
	PhoneNumber  string     `json:"phoneno,omitempty"`
	PasswordHash string     `json:"-"`
	AuthMethod   AuthMethod `json:"auth_method"`
	CreatedAt    time.Time  `json:"created_at"`
}

// SessionClaims is the decoded payload of a session token.
type SessionClaims struct {
	AccountID string
	EmailID   string
	ExpiresAt time.Time
}

var (
	// ErrAccountExists is returned when a signup targets an email that is
	// already registered with the same auth method.
	ErrAccountExists = errors.New("account already exists")
	// ErrWrongAuthMethod is returned when an email is registered, but with
	// the other auth method than the one the caller is using.
	ErrWrongAuthMethod = errors.New("account registered with a different sign-in method")
	// ErrInvalidCredentials deliberately covers both "no such account" and
	// "wrong password" so callers cannot enumerate registered emails.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrAccountNotFound is returned by lookups that are allowed to reveal
	// absence (Google login, profile reads).
	ErrAccountNotFound = errors.New("account not found")
	// ErrInvalidToken covers malformed, forged, and expired session tokens.
	ErrInvalidToken = errors.New("invalid session token")
	// ErrConflict is the store-level unique-key violation raised when two
	// inserts race on the same email.
	ErrConflict = errors.New("account email already taken")
	// ErrHashing wraps unexpected failures inside the password hasher.
	ErrHashing = errors.New("password hashing failed")
	// ErrStoreUnavailable is returned when the credential store cannot be
	// reached at all.
	ErrStoreUnavailable = errors.New("credential store unavailable")
)
