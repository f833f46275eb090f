package entity

import (
	"time"

	"github.com/google/uuid"
)

// RefreshToken represents a long-lived, revocable session of an account.
// Only a SHA-256 hash of the raw token is stored.
type RefreshToken struct {
	ID        uuid.UUID // The unique ID for this specific refresh token record.
	AccountID uuid.UUID // The account this session belongs to.
	TokenHash string    // SHA-256 hash of the raw refresh token.
	ExpiresAt time.Time // After this instant the session is no longer usable.
	CreatedAt time.Time // When the session was issued.
}

// IsExpired reports whether the session has run out.
func (t *RefreshToken) IsExpired(now time.Time) bool {
	return !t.ExpiresAt.After(now)
}

// SessionLifetime is the pair of token lifetimes issued together.
type SessionLifetime struct {
	Access  time.Duration
	Refresh time.Duration
}

// TokenPair is what a successful verification hands back to the client.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}
