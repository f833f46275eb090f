// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import (
	"context"
	"time"

	"hdnotes/internal/domain/entity"
)

// OTPGenerator produces uniformly random numeric codes.
type OTPGenerator interface {
	// Generate returns a string of exactly length decimal digits. Leading zeros are kept.
	Generate(length int) (string, error)
}

// CodeHasher defines the interface for one-way hashing of short secrets.
// This abstracts the underlying hashing algorithm (e.g., bcrypt), keeping the domain pure.
type CodeHasher interface {
	// Hash generates a salted hash from a plaintext code.
	Hash(code string) (string, error)

	// Check compares a plaintext code with a hash in constant time.
	Check(code, hash string) bool
}

// OTPChallengeManager issues and verifies the challenge embedded in an account.
// Both methods only mutate the account; persisting it is the caller's job.
type OTPChallengeManager interface {
	// IssueChallenge replaces any outstanding challenge and returns the plaintext code exactly once.
	IssueChallenge(account *entity.Account, now time.Time) (string, error)

	// VerifyChallenge checks a submitted code and updates the attempt state.
	VerifyChallenge(account *entity.Account, code string, now time.Time) entity.ChallengeOutcome
}

// OTPMailer delivers a one-time code to the account's email address.
type OTPMailer interface {
	SendOTP(ctx context.Context, email, code, name string) error
}
