// Package model holds the GORM persistence models. They never leave the infra layer.
package model

import (
	"time"

	"github.com/google/uuid"
)

// AccountModel mirrors the 'accounts' table. PostgreSQL generates UUIDs via gen_random_uuid().
// The outstanding OTP challenge is flattened into three nullable columns.
type AccountModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name        string    `gorm:"type:varchar(100);not null"`
	Email       string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	DateOfBirth time.Time `gorm:"type:date;not null"`
	IsVerified  bool      `gorm:"not null;default:false"`

	OTPHash         *string    `gorm:"column:otp_hash;type:varchar(100)"`
	OTPExpiresAt    *time.Time `gorm:"column:otp_expires_at"`
	OTPAttemptCount *int       `gorm:"column:otp_attempt_count"`

	FailedAttemptCount int `gorm:"not null;default:0;check:failed_attempt_count >= 0"`
	LockedUntil        *time.Time
	LastLoginAt        *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time

	RefreshTokens []RefreshTokenModel `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE"`
	Notes         []NoteModel         `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}
