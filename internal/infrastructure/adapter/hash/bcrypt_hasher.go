package hash

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/parkspot-io/parkspot-api/internal/domain/port/core"
)

// BcryptHasher implements the PasswordHasher interface using bcrypt
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a bcrypt hasher with the given cost. A cost of 0
// falls back to the bcrypt default.
func NewBcryptHasher(cost int) core.PasswordHasher {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash derives a one-way hash from the given credential
func (h *BcryptHasher) Hash(credential string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(credential), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Compare reports whether the credential matches the stored hash
func (h *BcryptHasher) Compare(hash, credential string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(credential)) == nil
}
