package impl

import (
	"context"
	"log/slog"

	deliverycontext "hdnotes/internal/delivery/context"
	domainerrors "hdnotes/internal/domain/errors"
	"hdnotes/internal/domain/repository"
	"hdnotes/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// sessionService revokes and purges refresh tokens. It backs "logout
// everywhere", the janitor and the hdnotesctl session commands.
type sessionService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(txManager repository.TransactionManager, logger *slog.Logger) usecase.SessionUsecase {
	return &sessionService{txManager: txManager, logger: logger}
}

func (srv *sessionService) RevokeAllSessions(ctx context.Context, accountID uuid.UUID) error {
	log := deliverycontext.GetLoggerOrDefault(ctx, srv.logger).With(slog.String("account_id", accountID.String()))

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		_, err := repos.AccountRepo().FindByID(ctx, accountID)
		if errors.Is(err, repository.ErrAccountNotFound) {
			return errors.Wrap(domainerrors.ErrNotFound, "account not found")
		}
		if err != nil {
			return errors.Wrap(err, "load account")
		}

		return errors.Wrap(repos.RefreshTokenRepo().DeleteRefreshTokensByAccountID(ctx, accountID), "delete sessions")
	})
	if err != nil {
		log.Error("Revoking sessions failed", slog.Any("error", err))

		return errors.Wrap(err, "failed to revoke all sessions")
	}

	log.Info("All sessions revoked")

	return nil
}

func (srv *sessionService) CleanupExpiredSessions(ctx context.Context) (int64, error) {
	log := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	var purged int64
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		n, err := repos.RefreshTokenRepo().DeleteExpiredRefreshTokens(ctx)
		purged = n

		return errors.Wrap(err, "delete expired sessions")
	})
	if err != nil {
		log.Error("Purging expired sessions failed", slog.Any("error", err))

		return 0, errors.Wrap(err, "failed to cleanup expired sessions")
	}

	if purged > 0 {
		log.Info("Expired sessions purged", slog.Int64("deleted_count", purged))
	} else {
		log.Debug("No expired sessions to purge")
	}

	return purged, nil
}
