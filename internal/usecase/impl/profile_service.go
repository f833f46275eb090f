package impl

import (
	"context"
	"log/slog"

	deliverycontext "hdnotes/internal/delivery/context"
	"hdnotes/internal/domain/entity"
	domainerrors "hdnotes/internal/domain/errors"
	"hdnotes/internal/domain/repository"
	"hdnotes/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager   repository.TransactionManager
	accountRepo repository.AccountRepository
	logger      *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	txManager repository.TransactionManager,
	accountRepo repository.AccountRepository,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		txManager:   txManager,
		accountRepo: accountRepo,
		logger:      logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile retrieves the account of the authenticated caller.
func (srv *profileService) GetProfile(ctx context.Context, accountID uuid.UUID) (*entity.Account, error) {
	srv.log(ctx).Debug("Getting profile", slog.Any("account_id", accountID))

	account, err := srv.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "account not found")
		}

		return nil, errors.Wrap(err, "failed to get profile")
	}

	return account, nil
}

// UpdateProfile changes name and date of birth. Email is immutable.
func (srv *profileService) UpdateProfile(ctx context.Context, accountID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.Account, error) {
	srv.log(ctx).Info("Updating profile", slog.Any("account_id", accountID))

	var account *entity.Account

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		// 1. Find the account
		found, err := accountRepo.FindByID(ctx, accountID)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return errors.Wrap(domainerrors.ErrNotFound, "account not found")
			}

			return errors.Wrap(err, "failed to find account")
		}

		// 2. Apply the changes
		if input.Name != nil {
			found.Name = entity.NormalizeName(*input.Name)
		}
		if input.DateOfBirth != nil {
			found.DateOfBirth = *input.DateOfBirth
		}

		// 3. Save
		if err := accountRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update account")
		}
		account = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to update profile")
	}

	return account, nil
}

// DeleteAccount removes the account. Notes and sessions go with it.
func (srv *profileService) DeleteAccount(ctx context.Context, accountID uuid.UUID) error {
	srv.log(ctx).Info("Deleting account", slog.Any("account_id", accountID))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NoteRepo().DeleteByOwner(ctx, accountID); err != nil {
			return errors.Wrap(err, "failed to delete notes")
		}

		if err := repoFactory.RefreshTokenRepo().DeleteRefreshTokensByAccountID(ctx, accountID); err != nil {
			return errors.Wrap(err, "failed to delete sessions")
		}

		if err := repoFactory.AccountRepo().Delete(ctx, accountID); err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return errors.Wrap(domainerrors.ErrNotFound, "account not found")
			}

			return errors.Wrap(err, "failed to delete account")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to delete account", slog.Any("error", err), slog.Any("account_id", accountID))

		return errors.Wrap(err, "failed to delete account")
	}
	srv.log(ctx).Info("Account deleted", slog.Any("account_id", accountID))

	return nil
}
