package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/playgroundlabs/playground-api/internal/core/domain"
)

const defaultTokenTTL = 8 * time.Hour

// JWTIssuer implements ports.TokenIssuer with HS256-signed JWTs. The signing
// secret is process-wide configuration injected at construction; rotating it
// invalidates every outstanding session.
type JWTIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewJWTIssuer(secret string, ttl time.Duration) *JWTIssuer {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &JWTIssuer{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue signs a session token bound to the account, expiring at now + ttl.
func (i *JWTIssuer) Issue(accountID, emailID string) (string, error) {
	now := i.now()
	claims := jwt.MapClaims{
		"user_id": accountID,
		"emailid": emailID,
		"iat":     now.Unix(),
		"exp":     now.Add(i.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a session token. Malformed structure, a bad
// signature, or a past expiry all surface domain.ErrInvalidToken; claims the
// issuer does not know about are ignored.
func (i *JWTIssuer) Verify(token string) (*domain.SessionClaims, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return i.secret, nil
	}, jwt.WithTimeFunc(i.now))
	if err != nil || !parsed.Valid {
		return nil, domain.ErrInvalidToken
	}

	emailID, _ := claims["emailid"].(string)
	if emailID == "" {
		return nil, domain.ErrInvalidToken
	}
	accountID, _ := claims["user_id"].(string)

	out := &domain.SessionClaims{AccountID: accountID, EmailID: emailID}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		out.ExpiresAt = exp.Time
	}
	return out, nil
}
