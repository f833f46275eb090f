package entity

import "time"

// LockoutPolicy configures how many consecutive signin failures lock an account and for how long.
type LockoutPolicy struct {
	Threshold int
	Duration  time.Duration
}

// DefaultLockoutPolicy locks for two hours after five failures.
var DefaultLockoutPolicy = LockoutPolicy{
	Threshold: 5,
	Duration:  2 * time.Hour,
}

// IsLocked reports whether signin is currently refused.
func (a *Account) IsLocked(now time.Time) bool {
	return a.LockedUntil != nil && a.LockedUntil.After(now)
}

// RecordFailure counts a failed signin verification and engages the lock once the threshold is reached.
// An expired lock restarts the count at one.
func (a *Account) RecordFailure(now time.Time, policy LockoutPolicy) {
	if a.LockedUntil != nil && !a.LockedUntil.After(now) {
		a.FailedAttemptCount = 1
		a.LockedUntil = nil

		return
	}

	a.FailedAttemptCount++
	if a.FailedAttemptCount >= policy.Threshold && !a.IsLocked(now) {
		lockedUntil := now.Add(policy.Duration)
		a.LockedUntil = &lockedUntil
	}
}

// RecordSuccess clears the failure counter and any lock.
func (a *Account) RecordSuccess() {
	a.FailedAttemptCount = 0
	a.LockedUntil = nil
}
