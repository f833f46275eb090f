package postgres

import (
	"context"

	"hdnotes/internal/domain/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type transactionManager struct {
	db *gorm.DB
}

// NewTransactionManager is the constructor for transactionManager.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &transactionManager{db: db}
}

// Execute runs fn inside one transaction. A returned error or a panic rolls
// everything back; the error from fn is returned unchanged.
func (tm *transactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	var fnErr error

	err := tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fnErr = fn(txRepositories{tx: tx})

		return fnErr
	})

	switch {
	case fnErr != nil:
		return fnErr
	case err != nil:
		return errors.Wrap(err, "commit transaction")
	}

	return nil
}

// txRepositories hands out repositories bound to a single transaction.
type txRepositories struct {
	tx *gorm.DB
}

func (r txRepositories) AccountRepo() repository.AccountRepository {
	return NewAccountRepository(r.tx)
}

func (r txRepositories) RefreshTokenRepo() repository.RefreshTokenRepository {
	return NewRefreshTokenRepository(r.tx)
}

func (r txRepositories) NoteRepo() repository.NoteRepository {
	return NewNoteRepository(r.tx)
}
