// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"hdnotes/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAccountNotFound is returned when no account matches the lookup.
var ErrAccountNotFound = errors.New("account not found")

// ErrAccountEmailTaken is returned when creating an account whose email is already registered.
var ErrAccountEmailTaken = errors.New("account email already registered")

// AccountRepository persists the credential record, including the embedded OTP challenge and lockout state.
type AccountRepository interface {
	// FindByID retrieves a single account by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByEmail retrieves a single account by its normalized email.
	// Reads go to the primary so challenge and lockout state are never stale.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// Create persists a new account.
	Create(ctx context.Context, account *entity.Account) error

	// Update writes every mutable column of the account in a single statement.
	Update(ctx context.Context, account *entity.Account) error

	// Delete removes the account permanently.
	Delete(ctx context.Context, id uuid.UUID) error
}
