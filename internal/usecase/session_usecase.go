package usecase

import (
	"context"

	"github.com/google/uuid"
)

// SessionUsecase defines the interface for session maintenance operations.
type SessionUsecase interface {
	// RevokeAllSessions ends every session of the account.
	RevokeAllSessions(ctx context.Context, accountID uuid.UUID) error

	// CleanupExpiredSessions purges expired refresh tokens and reports how many were removed.
	CleanupExpiredSessions(ctx context.Context) (int64, error)
}
