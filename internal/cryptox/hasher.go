package cryptox

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/passkeeper/internal/common"
	"golang.org/x/crypto/bcrypt"
)

// DefaultHashCost is the bcrypt work factor used when none is configured.
const DefaultHashCost = 12

// SecretHasher produces salted one-way hashes of account and master
// passwords. It has no notion of which of the two it is hashing; callers
// route each verification to the right stored hash.
type SecretHasher struct {
	cost int
}

// NewSecretHasher validates the work factor against bcrypt's bounds.
func NewSecretHasher(cost int) (*SecretHasher, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("%w: hash cost %d out of range [%d, %d]",
			common.ErrConfiguration, cost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	return &SecretHasher{cost: cost}, nil
}

// Hash returns a bcrypt hash with a fresh random salt. Secrets longer than
// 72 bytes are rejected by bcrypt and reported as ErrValidation.
func (h *SecretHasher) Hash(secret string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), h.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", fmt.Errorf("%w: secret too long", common.ErrValidation)
		}
		return "", err
	}
	return string(hash), nil
}

// Verify reports whether secret matches hash. The comparison is constant
// time; malformed hashes simply do not match.
func (h *SecretHasher) Verify(secret, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret)) == nil
}
