package entity

import (
	"time"

	"github.com/google/uuid"
)

// Note text bounds, counted in characters after trimming.
const (
	NoteTextMinLength = 1
	NoteTextMaxLength = 1000
)

// Note is a personal text note owned by a single account.
type Note struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Text      string
	IsDeleted bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Pagination describes one page of a listing.
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

// NewPagination computes the page count for the given total.
func NewPagination(page, limit int, total int64) Pagination {
	pages := 0
	if limit > 0 {
		pages = int((total + int64(limit) - 1) / int64(limit))
	}

	return Pagination{
		Page:  page,
		Limit: limit,
		Total: total,
		Pages: pages,
	}
}
