package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccount_RecordFailure_LocksAtThreshold(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	account := &Account{}

	for i := 1; i < DefaultLockoutPolicy.Threshold; i++ {
		account.RecordFailure(now, DefaultLockoutPolicy)
		assert.Equal(t, i, account.FailedAttemptCount)
		assert.False(t, account.IsLocked(now))
	}

	account.RecordFailure(now, DefaultLockoutPolicy)

	assert.Equal(t, 5, account.FailedAttemptCount)
	require.NotNil(t, account.LockedUntil)
	assert.Equal(t, now.Add(2*time.Hour), *account.LockedUntil)
	assert.True(t, account.IsLocked(now))
	assert.True(t, account.IsLocked(now.Add(2*time.Hour-time.Second)))
	assert.False(t, account.IsLocked(now.Add(2*time.Hour)))
}

func TestAccount_RecordFailure_ExpiredLockRestartsCount(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	expired := now.Add(-time.Minute)
	account := &Account{FailedAttemptCount: 5, LockedUntil: &expired}

	account.RecordFailure(now, DefaultLockoutPolicy)

	assert.Equal(t, 1, account.FailedAttemptCount)
	assert.Nil(t, account.LockedUntil)
	assert.False(t, account.IsLocked(now))
}

func TestAccount_RecordSuccess_ResetsCounter(t *testing.T) {
	now := time.Now()
	account := &Account{}

	for range 4 {
		account.RecordFailure(now, DefaultLockoutPolicy)
	}
	account.RecordSuccess()

	assert.Zero(t, account.FailedAttemptCount)
	assert.Nil(t, account.LockedUntil)

	// After the reset it takes a full threshold of failures to lock again.
	for range 4 {
		account.RecordFailure(now, DefaultLockoutPolicy)
	}
	assert.False(t, account.IsLocked(now))
}

func TestAccount_MarkSignedIn(t *testing.T) {
	now := time.Now()
	account := &Account{
		FailedAttemptCount: 3,
		OTP:                &OTPChallenge{HashedCode: "hash", ExpiresAt: now.Add(time.Minute)},
	}

	account.MarkSignedIn(now)

	assert.Zero(t, account.FailedAttemptCount)
	assert.Nil(t, account.OTP)
	require.NotNil(t, account.LastLoginAt)
	assert.Equal(t, now, *account.LastLoginAt)
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "alice@x.com", NormalizeEmail("  Alice@X.com "))
	assert.Equal(t, "alice@x.com", NormalizeEmail("ａｌｉｃｅ@x.com"))
}

func TestNewPagination(t *testing.T) {
	assert.Equal(t, Pagination{Page: 1, Limit: 10, Total: 0, Pages: 0}, NewPagination(1, 10, 0))
	assert.Equal(t, Pagination{Page: 2, Limit: 10, Total: 21, Pages: 3}, NewPagination(2, 10, 21))
	assert.Equal(t, 1, NewPagination(1, 10, 10).Pages)
}

func TestOTPChallenge_State(t *testing.T) {
	now := time.Now()
	challenge := &OTPChallenge{ExpiresAt: now.Add(time.Minute), AttemptCount: 2}

	assert.False(t, challenge.IsExpired(now))
	assert.True(t, challenge.IsExpired(now.Add(2*time.Minute)))
	assert.False(t, challenge.IsExhausted(3))

	challenge.AttemptCount = 3
	assert.True(t, challenge.IsExhausted(3))
	assert.Equal(t, "exhausted", ChallengeExhausted.String())
	assert.True(t, ChallengeVerified.OK())
	assert.False(t, ChallengeMismatch.OK())
}
