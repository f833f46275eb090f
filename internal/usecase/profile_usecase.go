package usecase

import (
	"context"
	"time"

	"hdnotes/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileUsecase defines the interface for profile-related business operations.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, accountID uuid.UUID) (*entity.Account, error)
	UpdateProfile(ctx context.Context, accountID uuid.UUID, input *UpdateProfileInput) (*entity.Account, error)

	// DeleteAccount removes the account together with its notes and sessions.
	DeleteAccount(ctx context.Context, accountID uuid.UUID) error
}

// --- Input DTOs ---

// UpdateProfileInput defines the data required to update a profile. Nil fields are left untouched.
type UpdateProfileInput struct {
	Name        *string
	DateOfBirth *time.Time
}
