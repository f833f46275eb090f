package auth

import (
	"golang.org/x/crypto/bcrypt"

	"hdnotes/config"
	"hdnotes/internal/domain/service"
)

// bcryptHasher is a concrete implementation of the CodeHasher interface using bcrypt.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher is the constructor for bcryptHasher.
// It returns the implementation as a service.CodeHasher interface.
func NewBcryptHasher(cfg *config.Config) service.CodeHasher {
	return NewBcryptHasherWithCost(cfg.Auth.BcryptCost)
}

// NewBcryptHasherWithCost clamps cost into bcrypt's accepted range; zero means bcrypt.DefaultCost.
func NewBcryptHasherWithCost(cost int) service.CodeHasher {
	switch {
	case cost == 0:
		cost = bcrypt.DefaultCost
	case cost < bcrypt.MinCost:
		cost = bcrypt.MinCost
	case cost > bcrypt.MaxCost:
		cost = bcrypt.MaxCost
	}

	return &bcryptHasher{cost: cost}
}

// Hash generates a salted hash from a plaintext code using bcrypt.
// bcrypt automatically handles salt generation.
func (h *bcryptHasher) Hash(code string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(code), h.cost)

	return string(bytes), err
}

// Check compares a plaintext code with a bcrypt hash.
func (h *bcryptHasher) Check(code, hash string) bool {
	// err is nil if the code and hash match.
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(code)) == nil
}
