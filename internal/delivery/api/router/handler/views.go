// Package handler contains the HTTP handlers for the application.
package handler

import (
	"time"

	"hdnotes/internal/domain/entity"
	"hdnotes/internal/usecase"

	"github.com/google/uuid"
)

// AccountView is the public representation of an account.
type AccountView struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	DateOfBirth string     `json:"dateOfBirth"`
	IsVerified  bool       `json:"isVerified"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

func newAccountView(account *entity.Account) *AccountView {
	return &AccountView{
		ID:          account.ID,
		Name:        account.Name,
		Email:       account.Email,
		DateOfBirth: account.DateOfBirth.Format(time.DateOnly),
		IsVerified:  account.IsVerified,
		LastLoginAt: account.LastLoginAt,
		CreatedAt:   account.CreatedAt,
	}
}

// AuthView is returned by signup verification and signin.
type AuthView struct {
	Message      string       `json:"message"`
	User         *AccountView `json:"user"`
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
}

func newAuthView(message string, output *usecase.AuthOutput) *AuthView {
	return &AuthView{
		Message:      message,
		User:         newAccountView(output.Account),
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
	}
}

// NoteView is the public representation of a note.
type NoteView struct {
	ID        uuid.UUID `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func newNoteView(note *entity.Note) *NoteView {
	return &NoteView{
		ID:        note.ID,
		Text:      note.Text,
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
	}
}

// NoteListView is one page of notes.
type NoteListView struct {
	Notes      []*NoteView       `json:"notes"`
	Pagination entity.Pagination `json:"pagination"`
}
