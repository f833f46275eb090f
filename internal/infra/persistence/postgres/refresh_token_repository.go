package postgres

import (
	"context"
	"time"

	"hdnotes/internal/domain/entity"
	domainerrors "hdnotes/internal/domain/errors"
	"hdnotes/internal/domain/repository"
	"hdnotes/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// refreshTokenRepository keeps one row per live session. Only the SHA-256 of
// the opaque token is stored.
type refreshTokenRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewRefreshTokenRepository is the constructor for refreshTokenRepository.
func NewRefreshTokenRepository(db *gorm.DB) repository.RefreshTokenRepository {
	return &refreshTokenRepository{db: db, now: time.Now}
}

func (repo *refreshTokenRepository) sessions(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).Model(&model.RefreshTokenModel{})
}

func (repo *refreshTokenRepository) CreateRefreshToken(ctx context.Context, token *entity.RefreshToken) error {
	row := model.RefreshTokenModel{
		ID:        token.ID,
		AccountID: token.AccountID,
		TokenHash: token.TokenHash,
		ExpiresAt: token.ExpiresAt,
		CreatedAt: token.CreatedAt,
	}

	err := repo.db.WithContext(ctx).Create(&row).Error
	switch {
	case err == nil:
		token.ID, token.CreatedAt = row.ID, row.CreatedAt

		return nil
	case isUniqueConstraintViolation(err):
		return domainerrors.ErrRefreshTokenInvalid.WrapMessage("refresh token already exists")
	case isForeignKeyConstraintViolation(err):
		return domainerrors.ErrRefreshTokenInvalid.WrapMessage("invalid account reference")
	default:
		return domainerrors.NewDatabaseExecuteError(err, "failed to create refresh token")
	}
}

// FindRefreshTokenByHash reads from the primary; a replica may still hold a
// session that was just revoked.
func (repo *refreshTokenRepository) FindRefreshTokenByHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error) {
	var row model.RefreshTokenModel
	err := repo.sessions(ctx).Clauses(dbresolver.Write).Where("token_hash = ?", tokenHash).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repository.ErrRefreshTokenNotFound
	}
	if err != nil {
		return nil, errors.WithStack(err)
	}

	session := sessionFromRow(row)
	if session.IsExpired(repo.now()) {
		return nil, repository.ErrRefreshTokenExpired
	}

	return session, nil
}

func (repo *refreshTokenRepository) FindRefreshTokensByAccountID(ctx context.Context, accountID uuid.UUID) ([]*entity.RefreshToken, error) {
	var rows []model.RefreshTokenModel
	if err := repo.sessions(ctx).
		Where("account_id = ?", accountID).
		Where("expires_at > ?", repo.now()).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	sessions := make([]*entity.RefreshToken, len(rows))
	for i := range rows {
		sessions[i] = sessionFromRow(rows[i])
	}

	return sessions, nil
}

func (repo *refreshTokenRepository) DeleteRefreshTokenByHash(ctx context.Context, tokenHash string) error {
	removed, err := repo.deleteWhere(ctx, "token_hash = ?", tokenHash)
	if err != nil {
		return err
	}
	if removed == 0 {
		return repository.ErrRefreshTokenNotFound
	}

	return nil
}

func (repo *refreshTokenRepository) DeleteRefreshTokensByAccountID(ctx context.Context, accountID uuid.UUID) error {
	_, err := repo.deleteWhere(ctx, "account_id = ?", accountID)

	return err
}

func (repo *refreshTokenRepository) DeleteExpiredRefreshTokens(ctx context.Context) (int64, error) {
	return repo.deleteWhere(ctx, "expires_at <= ?", repo.now())
}

func (repo *refreshTokenRepository) deleteWhere(ctx context.Context, cond string, arg any) (int64, error) {
	result := repo.db.WithContext(ctx).Where(cond, arg).Delete(&model.RefreshTokenModel{})
	if result.Error != nil {
		return 0, errors.WithStack(result.Error)
	}

	return result.RowsAffected, nil
}

func sessionFromRow(row model.RefreshTokenModel) *entity.RefreshToken {
	return &entity.RefreshToken{
		ID:        row.ID,
		AccountID: row.AccountID,
		TokenHash: row.TokenHash,
		ExpiresAt: row.ExpiresAt,
		CreatedAt: row.CreatedAt,
	}
}
