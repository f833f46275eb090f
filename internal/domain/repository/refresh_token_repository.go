package repository

import (
	"context"

	"hdnotes/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for refresh token persistence.
var (
	// ErrRefreshTokenNotFound is returned when a refresh token is not found.
	ErrRefreshTokenNotFound = errors.New("refresh token not found")
	// ErrRefreshTokenExpired is returned when a refresh token has expired.
	ErrRefreshTokenExpired = errors.New("refresh token has expired")
)

// RefreshTokenRepository stores the set of live sessions of each account.
type RefreshTokenRepository interface {
	// CreateRefreshToken persists a new refresh token, representing a session.
	CreateRefreshToken(ctx context.Context, token *entity.RefreshToken) error

	// FindRefreshTokenByHash retrieves a refresh token record by its securely stored hash.
	FindRefreshTokenByHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error)

	// FindRefreshTokensByAccountID retrieves all unexpired refresh tokens of an account, newest first.
	FindRefreshTokensByAccountID(ctx context.Context, accountID uuid.UUID) ([]*entity.RefreshToken, error)

	// DeleteRefreshTokenByHash deletes a refresh token by its hash, ending that session.
	DeleteRefreshTokenByHash(ctx context.Context, tokenHash string) error

	// DeleteRefreshTokensByAccountID removes every session of an account.
	DeleteRefreshTokensByAccountID(ctx context.Context, accountID uuid.UUID) error

	// DeleteExpiredRefreshTokens removes all expired refresh tokens and reports how many were removed.
	DeleteExpiredRefreshTokens(ctx context.Context) (int64, error)
}
