package service

import (
	"context"
	"errors"
	"time"

	"github.com/playgroundlabs/playground-api/internal/api/metrics"
	"github.com/playgroundlabs/playground-api/internal/core/domain"
	"github.com/playgroundlabs/playground-api/internal/core/ports"
)

// AuthService implements signup and login for both auth methods against the
// account repository. An email is bound to exactly one auth method at signup
// and stays bound: neither path's login can ever satisfy an account created
// through the other.
//
// Signups deliberately do not issue a session; only logins do. The audit
// sink is optional and never fails an operation.
type AuthService struct {
	repo   ports.AccountRepository
	hasher ports.PasswordHasher
	tokens ports.TokenIssuer
	audit  ports.AuthEventSink
}

func NewAuthService(repo ports.AccountRepository, hasher ports.PasswordHasher, tokens ports.TokenIssuer, audit ports.AuthEventSink) *AuthService {
	return &AuthService{repo: repo, hasher: hasher, tokens: tokens, audit: audit}
}

func (s *AuthService) SignupPassword(ctx context.Context, in ports.PasswordSignupInput) (*domain.Account, error) {
	if in.EmailID == "" || in.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	existing, err := s.repo.FindByEmail(ctx, in.EmailID)
	switch {
	case err == nil:
		if existing.AuthMethod == domain.MethodGoogle {
			s.record(in.EmailID, ports.AuditActionSignup, domain.MethodPassword, false, "wrong_method")
			metrics.SignupsTotal.WithLabelValues(string(domain.MethodPassword), "wrong_method").Inc()
			return nil, domain.ErrWrongAuthMethod
		}
		s.record(in.EmailID, ports.AuditActionSignup, domain.MethodPassword, false, "exists")
		metrics.SignupsTotal.WithLabelValues(string(domain.MethodPassword), "exists").Inc()
		return nil, domain.ErrAccountExists
	case !errors.Is(err, domain.ErrAccountNotFound):
		return nil, err
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	account := &domain.Account{
		EmailID:      in.EmailID,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		PhoneNumber:  in.PhoneNumber,
		PasswordHash: hash,
		AuthMethod:   domain.MethodPassword,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Insert(ctx, account)
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			// Lost an insert race after the pre-check; the store's unique
			// index is the authoritative enforcement.
			return nil, domain.ErrAccountExists
		}
		return nil, err
	}

	s.record(in.EmailID, ports.AuditActionSignup, domain.MethodPassword, true, "")
	metrics.SignupsTotal.WithLabelValues(string(domain.MethodPassword), "ok").Inc()
	return created, nil
}

func (s *AuthService) LoginPassword(ctx context.Context, emailID, password string) (string, *domain.Account, error) {
	if emailID == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	account, err := s.repo.FindByEmail(ctx, emailID)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			// Collapsed into the same error as a bad password so callers
			// cannot probe which emails are registered.
			s.record(emailID, ports.AuditActionLogin, domain.MethodPassword, false, "not_found")
			metrics.LoginsTotal.WithLabelValues(string(domain.MethodPassword), "invalid_credentials").Inc()
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if account.AuthMethod != domain.MethodPassword {
		s.record(emailID, ports.AuditActionLogin, domain.MethodPassword, false, "wrong_method")
		metrics.LoginsTotal.WithLabelValues(string(domain.MethodPassword), "wrong_method").Inc()
		return "", nil, domain.ErrWrongAuthMethod
	}

	if !s.hasher.Verify(password, account.PasswordHash) {
		s.record(emailID, ports.AuditActionLogin, domain.MethodPassword, false, "bad_password")
		metrics.LoginsTotal.WithLabelValues(string(domain.MethodPassword), "invalid_credentials").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(account.ID, account.EmailID)
	if err != nil {
		return "", nil, err
	}

	s.record(emailID, ports.AuditActionLogin, domain.MethodPassword, true, "")
	metrics.LoginsTotal.WithLabelValues(string(domain.MethodPassword), "ok").Inc()
	return token, account, nil
}

func (s *AuthService) SignupGoogle(ctx context.Context, in ports.GoogleSignupInput) (*domain.Account, error) {
	if in.EmailID == "" {
		return nil, domain.ErrInvalidCredentials
	}

	existing, err := s.repo.FindByEmail(ctx, in.EmailID)
	switch {
	case err == nil:
		if existing.AuthMethod == domain.MethodPassword {
			s.record(in.EmailID, ports.AuditActionSignup, domain.MethodGoogle, false, "wrong_method")
			metrics.SignupsTotal.WithLabelValues(string(domain.MethodGoogle), "wrong_method").Inc()
			return nil, domain.ErrWrongAuthMethod
		}
		s.record(in.EmailID, ports.AuditActionSignup, domain.MethodGoogle, false, "exists")
		metrics.SignupsTotal.WithLabelValues(string(domain.MethodGoogle), "exists").Inc()
		return nil, domain.ErrAccountExists
	case !errors.Is(err, domain.ErrAccountNotFound):
		return nil, err
	}

	account := &domain.Account{
		EmailID:    in.EmailID,
		FirstName:  in.FirstName,
		LastName:   in.LastName,
		AuthMethod: domain.MethodGoogle,
		CreatedAt:  time.Now().UTC(),
	}

	created, err := s.repo.Insert(ctx, account)
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, domain.ErrAccountExists
		}
		return nil, err
	}

	s.record(in.EmailID, ports.AuditActionSignup, domain.MethodGoogle, true, "")
	metrics.SignupsTotal.WithLabelValues(string(domain.MethodGoogle), "ok").Inc()
	return created, nil
}

// LoginGoogle assumes the identity assertion was already verified upstream
// (ports.IdentityVerifier at the transport edge); here only the account is
// resolved and the method invariant enforced.
func (s *AuthService) LoginGoogle(ctx context.Context, emailID string) (string, *domain.Account, error) {
	if emailID == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	account, err := s.repo.FindByEmail(ctx, emailID)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			s.record(emailID, ports.AuditActionLogin, domain.MethodGoogle, false, "not_found")
			metrics.LoginsTotal.WithLabelValues(string(domain.MethodGoogle), "not_found").Inc()
			return "", nil, domain.ErrAccountNotFound
		}
		return "", nil, err
	}

	if account.AuthMethod != domain.MethodGoogle {
		s.record(emailID, ports.AuditActionLogin, domain.MethodGoogle, false, "wrong_method")
		metrics.LoginsTotal.WithLabelValues(string(domain.MethodGoogle), "wrong_method").Inc()
		return "", nil, domain.ErrWrongAuthMethod
	}

	token, err := s.tokens.Issue(account.ID, account.EmailID)
	if err != nil {
		return "", nil, err
	}

	s.record(emailID, ports.AuditActionLogin, domain.MethodGoogle, true, "")
	metrics.LoginsTotal.WithLabelValues(string(domain.MethodGoogle), "ok").Inc()
	return token, account, nil
}

// Profile resolves the account behind a verified session identity. The
// password hash is excluded from serialization at the domain level.
func (s *AuthService) Profile(ctx context.Context, emailID string) (*domain.Account, error) {
	return s.repo.FindByEmail(ctx, emailID)
}

func (s *AuthService) record(emailID, action string, method domain.AuthMethod, success bool, reason string) {
	if s.audit == nil {
		return
	}
	s.audit.Publish(ports.AuthEvent{
		EmailID: emailID,
		Action:  action,
		Method:  string(method),
		Success: success,
		Reason:  reason,
		At:      time.Now().UTC(),
	})
}
