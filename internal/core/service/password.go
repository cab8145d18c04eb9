package service

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/playgroundlabs/playground-api/internal/core/domain"
)

// bcryptCost matches bcrypt.DefaultCost; fixed here so a library default
// bump cannot silently change hashing behaviour.
const bcryptCost = 10

// BcryptHasher implements ports.PasswordHasher with bcrypt. Every Hash call
// salts independently, so two hashes of the same password never compare
// equal; only Verify is meaningful.
type BcryptHasher struct {
	cost int
}

func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{cost: bcryptCost}
}

func (h *BcryptHasher) Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrHashing, err)
	}
	return string(hash), nil
}

// Verify reports whether plaintext matches hash. Malformed hashes verify as
// false rather than erroring; bcrypt's comparison is constant-time on the
// derived key.
func (h *BcryptHasher) Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
