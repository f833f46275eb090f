package postgres

import (
	"context"

	"hdnotes/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Models lists every table in dependency order.
func Models() []any {
	return []any{
		&model.AccountModel{},
		&model.RefreshTokenModel{},
		&model.NoteModel{},
	}
}

// Migrate creates or alters the schema to match the models.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(Models()...); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	return nil
}
