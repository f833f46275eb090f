// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"
)

// Account is the credential record of a person using the service.
// It carries identity, verification state, the outstanding OTP challenge and lockout counters.
// Sessions live in the refresh_tokens store keyed by the account ID.
type Account struct {
	ID                 uuid.UUID     // The unique identifier of the account.
	Name               string        // Display name, trimmed.
	Email              string        // Normalized, lower-cased email. Unique.
	DateOfBirth        time.Time     // Calendar date, stored at midnight UTC.
	IsVerified         bool          // False until the first signup OTP verification succeeds.
	OTP                *OTPChallenge // Outstanding challenge, nil when none.
	FailedAttemptCount int           // Consecutive failed signin verifications.
	LockedUntil        *time.Time    // Signin is refused until this instant.
	LastLoginAt        *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// NormalizeEmail returns the canonical form used for storage and lookups.
func NormalizeEmail(email string) string {
	return strings.ToLower(norm.NFKC.String(strings.TrimSpace(email)))
}

// NormalizeName trims a display name and folds compatibility characters.
func NormalizeName(name string) string {
	return norm.NFKC.String(strings.TrimSpace(name))
}

// MarkVerified promotes the account after a successful signup verification.
func (a *Account) MarkVerified(now time.Time) {
	a.IsVerified = true
	a.OTP = nil
	a.LastLoginAt = &now
}

// MarkSignedIn records a successful signin.
func (a *Account) MarkSignedIn(now time.Time) {
	a.RecordSuccess()
	a.OTP = nil
	a.LastLoginAt = &now
}
