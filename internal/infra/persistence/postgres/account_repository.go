// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"hdnotes/internal/domain/entity"
	domainerrors "hdnotes/internal/domain/errors"
	"hdnotes/internal/domain/repository"
	"hdnotes/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// accountRepository implements the domain.AccountRepository interface using GORM.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
// It returns the repository as a domain.AccountRepository interface, adhering to dependency inversion.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

// FindByID retrieves a single account by its unique ID from the primary.
func (repo *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	var accountM model.AccountModel
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("id = ?", id).
		First(&accountM).Error

	if err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by id")
	}

	return toAccountDomain(&accountM), nil
}

// FindByEmail retrieves a single account by its normalized email from the primary.
func (repo *accountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	var accountM model.AccountModel
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("email = ?", email).
		First(&accountM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by email")
	}

	return toAccountDomain(&accountM), nil
}

// Create persists a new account entity.
func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	accountM := fromAccountDomain(account)

	if err := repo.db.WithContext(ctx).Create(accountM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return repository.ErrAccountEmailTaken
		}
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing or invalid account information")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create account")
	}

	// Update the account entity with the generated ID and timestamps
	account.ID = accountM.ID
	account.CreatedAt = accountM.CreatedAt
	account.UpdatedAt = accountM.UpdatedAt

	return nil
}

// Update writes every mutable column, including NULLs for a cleared challenge or lock.
func (repo *accountRepository) Update(ctx context.Context, account *entity.Account) error {
	accountM := fromAccountDomain(account)

	result := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("id = ?", account.ID).
		Updates(map[string]any{
			"name":                 accountM.Name,
			"email":                accountM.Email,
			"date_of_birth":        accountM.DateOfBirth,
			"is_verified":          accountM.IsVerified,
			"otp_hash":             accountM.OTPHash,
			"otp_expires_at":       accountM.OTPExpiresAt,
			"otp_attempt_count":    accountM.OTPAttemptCount,
			"failed_attempt_count": accountM.FailedAttemptCount,
			"locked_until":         accountM.LockedUntil,
			"last_login_at":        accountM.LastLoginAt,
		})

	if err := result.Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrAccountEmailTaken
		}
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing or invalid account information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update account")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

// Delete removes the account. Sessions and notes go with it through ON DELETE CASCADE.
func (repo *accountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.AccountModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete account")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toAccountDomain converts a GORM AccountModel to a domain Account entity.
func toAccountDomain(data *model.AccountModel) *entity.Account {
	if data == nil {
		return nil
	}

	account := &entity.Account{
		ID:                 data.ID,
		Name:               data.Name,
		Email:              data.Email,
		DateOfBirth:        data.DateOfBirth,
		IsVerified:         data.IsVerified,
		FailedAttemptCount: data.FailedAttemptCount,
		LockedUntil:        data.LockedUntil,
		LastLoginAt:        data.LastLoginAt,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}

	if data.OTPHash != nil && data.OTPExpiresAt != nil {
		challenge := &entity.OTPChallenge{
			HashedCode: *data.OTPHash,
			ExpiresAt:  *data.OTPExpiresAt,
		}
		if data.OTPAttemptCount != nil {
			challenge.AttemptCount = *data.OTPAttemptCount
		}
		account.OTP = challenge
	}

	return account
}

// fromAccountDomain converts a domain Account entity to a GORM AccountModel for persistence.
func fromAccountDomain(data *entity.Account) *model.AccountModel {
	if data == nil {
		return nil
	}

	accountM := &model.AccountModel{
		ID:                 data.ID,
		Name:               data.Name,
		Email:              data.Email,
		DateOfBirth:        data.DateOfBirth,
		IsVerified:         data.IsVerified,
		FailedAttemptCount: data.FailedAttemptCount,
		LockedUntil:        data.LockedUntil,
		LastLoginAt:        data.LastLoginAt,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}

	if data.OTP != nil {
		hash := data.OTP.HashedCode
		expiresAt := data.OTP.ExpiresAt
		attempts := data.OTP.AttemptCount
		accountM.OTPHash = &hash
		accountM.OTPExpiresAt = &expiresAt
		accountM.OTPAttemptCount = &attempts
	}

	return accountM
}
