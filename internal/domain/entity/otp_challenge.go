package entity

import "time"

// OTPChallenge is the outstanding, unverified one-time code attached to an account.
// Only the bcrypt hash of the code is ever kept.
type OTPChallenge struct {
	HashedCode   string
	ExpiresAt    time.Time
	AttemptCount int
}

// IsExpired reports whether the validity window has passed.
func (c *OTPChallenge) IsExpired(now time.Time) bool {
	return now.After(c.ExpiresAt)
}

// IsExhausted reports whether the challenge has used up its verification attempts.
func (c *OTPChallenge) IsExhausted(maxAttempts int) bool {
	return c.AttemptCount >= maxAttempts
}

// ChallengeOutcome is the result of verifying a submitted code.
type ChallengeOutcome int

const (
	ChallengeVerified ChallengeOutcome = iota
	ChallengeMissing
	ChallengeExpired
	ChallengeMismatch
	ChallengeExhausted
)

// OK reports whether the code was accepted.
func (o ChallengeOutcome) OK() bool {
	return o == ChallengeVerified
}

func (o ChallengeOutcome) String() string {
	switch o {
	case ChallengeVerified:
		return "verified"
	case ChallengeMissing:
		return "missing"
	case ChallengeExpired:
		return "expired"
	case ChallengeMismatch:
		return "mismatch"
	case ChallengeExhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}
