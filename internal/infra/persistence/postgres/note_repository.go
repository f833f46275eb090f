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
	"gorm.io/gorm/clause"
)

type noteRepository struct {
	db *gorm.DB
}

// NewNoteRepository is the constructor for noteRepository.
func NewNoteRepository(db *gorm.DB) repository.NoteRepository {
	return &noteRepository{db: db}
}

func (repo *noteRepository) Create(ctx context.Context, note *entity.Note) error {
	noteM := fromNoteDomain(note)

	if err := repo.db.WithContext(ctx).Create(noteM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid note owner")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create note")
	}

	note.ID = noteM.ID
	note.CreatedAt = noteM.CreatedAt
	note.UpdatedAt = noteM.UpdatedAt

	return nil
}

// active scopes a query to the owner's non-deleted notes.
func active(ownerID uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("owner_id = ? AND is_deleted = ?", ownerID, false)
	}
}

func (repo *noteRepository) FindActiveByID(ctx context.Context, ownerID, id uuid.UUID) (*entity.Note, error) {
	var noteM model.NoteModel
	err := repo.db.WithContext(ctx).
		Scopes(active(ownerID)).
		Where("id = ?", id).
		First(&noteM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNoteNotFound
		}

		return nil, errors.Wrap(err, "failed to find note")
	}

	return toNoteDomain(&noteM), nil
}

// ListActive returns one page ordered newest first, with the total count of active notes.
func (repo *noteRepository) ListActive(ctx context.Context, ownerID uuid.UUID, offset, limit int) ([]*entity.Note, int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).
		Model(&model.NoteModel{}).
		Scopes(active(ownerID)).
		Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count notes")
	}

	var noteModels []*model.NoteModel
	if err := repo.db.WithContext(ctx).
		Scopes(active(ownerID)).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&noteModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list notes")
	}

	notes := make([]*entity.Note, 0, len(noteModels))
	for _, noteM := range noteModels {
		notes = append(notes, toNoteDomain(noteM))
	}

	return notes, total, nil
}

func (repo *noteRepository) UpdateText(ctx context.Context, ownerID, id uuid.UUID, text string) (*entity.Note, error) {
	var noteM model.NoteModel
	result := repo.db.WithContext(ctx).
		Model(&noteM).
		Clauses(clause.Returning{}).
		Scopes(active(ownerID)).
		Where("id = ?", id).
		Update("text", text)

	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update note")
	}

	if result.RowsAffected == 0 {
		return nil, repository.ErrNoteNotFound
	}

	return toNoteDomain(&noteM), nil
}

func (repo *noteRepository) SoftDelete(ctx context.Context, ownerID, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.NoteModel{}).
		Scopes(active(ownerID)).
		Where("id = ?", id).
		Update("is_deleted", true)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete note")
	}

	if result.RowsAffected == 0 {
		return repository.ErrNoteNotFound
	}

	return nil
}

func (repo *noteRepository) DeleteByOwner(ctx context.Context, ownerID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Delete(&model.NoteModel{}).Error; err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// --- Mapper Functions ---

func toNoteDomain(data *model.NoteModel) *entity.Note {
	if data == nil {
		return nil
	}

	return &entity.Note{
		ID:        data.ID,
		OwnerID:   data.OwnerID,
		Text:      data.Text,
		IsDeleted: data.IsDeleted,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromNoteDomain(data *entity.Note) *model.NoteModel {
	if data == nil {
		return nil
	}

	return &model.NoteModel{
		ID:        data.ID,
		OwnerID:   data.OwnerID,
		Text:      data.Text,
		IsDeleted: data.IsDeleted,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
