package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenKind distinguishes access tokens from refresh tokens.
type TokenKind string

const (
	TokenKindAccess  TokenKind = "access"
	TokenKindRefresh TokenKind = "refresh"
)

// Token verification errors. Callers map these onto their own domain errors.
var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
)

// Claims defines the custom claims for the JWT tokens.
// Subject carries the account ID and ID a unique token identifier.
type Claims struct {
	Type TokenKind `json:"type"`
	jwt.RegisteredClaims
}

// AccountID parses the subject claim.
func (c *Claims) AccountID() (uuid.UUID, error) {
	return uuid.Parse(c.Subject)
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// IssueAccessToken signs a short-lived access token for the account.
	IssueAccessToken(accountID uuid.UUID, ttl time.Duration) (string, error)

	// IssueRefreshToken signs a refresh token with the refresh secret.
	IssueRefreshToken(accountID uuid.UUID, ttl time.Duration) (string, error)

	// VerifyToken checks signature, expiry and kind.
	// It returns ErrTokenExpired or ErrTokenInvalid on failure.
	VerifyToken(token string, kind TokenKind) (*Claims, error)

	// HashToken returns the digest under which a refresh token is stored.
	HashToken(token string) string
}
