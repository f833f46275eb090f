package model

import (
	"time"

	"github.com/google/uuid"
)

// NoteModel mirrors the 'notes' table.
type NoteModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OwnerID   uuid.UUID `gorm:"type:uuid;not null;index:idx_notes_owner_created,priority:1"`
	Text      string    `gorm:"type:varchar(1000);not null"`
	IsDeleted bool      `gorm:"not null;default:false"`
	CreatedAt time.Time `gorm:"index:idx_notes_owner_created,priority:2,sort:desc"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (NoteModel) TableName() string {
	return "notes"
}
