package otp

import (
	"time"

	"hdnotes/config"
	"hdnotes/internal/domain/entity"
	"hdnotes/internal/domain/service"

	"github.com/pkg/errors"
)

// Policy bounds a single challenge.
type Policy struct {
	Length      int
	TTL         time.Duration
	MaxAttempts int
}

// DefaultPolicy issues six digit codes valid for ten minutes and three attempts.
var DefaultPolicy = Policy{
	Length:      6,
	TTL:         10 * time.Minute,
	MaxAttempts: 3,
}

type challengeManager struct {
	generator service.OTPGenerator
	hasher    service.CodeHasher
	policy    Policy
}

// NewChallengeManager builds the manager from the auth settings.
func NewChallengeManager(cfg *config.Config, generator service.OTPGenerator, hasher service.CodeHasher) service.OTPChallengeManager {
	return NewChallengeManagerWithPolicy(generator, hasher, Policy{
		Length:      cfg.Auth.OTPLength,
		TTL:         cfg.Auth.OTPTTL,
		MaxAttempts: cfg.Auth.OTPMaxAttempts,
	})
}

// NewChallengeManagerWithPolicy is the constructor for challengeManager with an explicit policy.
func NewChallengeManagerWithPolicy(generator service.OTPGenerator, hasher service.CodeHasher, policy Policy) service.OTPChallengeManager {
	if policy.Length <= 0 {
		policy.Length = DefaultPolicy.Length
	}
	if policy.TTL <= 0 {
		policy.TTL = DefaultPolicy.TTL
	}
	if policy.MaxAttempts <= 0 {
		policy.MaxAttempts = DefaultPolicy.MaxAttempts
	}

	return &challengeManager{
		generator: generator,
		hasher:    hasher,
		policy:    policy,
	}
}

func (m *challengeManager) IssueChallenge(account *entity.Account, now time.Time) (string, error) {
	code, err := m.generator.Generate(m.policy.Length)
	if err != nil {
		return "", errors.Wrap(err, "failed to generate otp")
	}

	hashed, err := m.hasher.Hash(code)
	if err != nil {
		return "", errors.Wrap(err, "failed to hash otp")
	}

	account.OTP = &entity.OTPChallenge{
		HashedCode:   hashed,
		ExpiresAt:    now.Add(m.policy.TTL),
		AttemptCount: 0,
	}

	return code, nil
}

// VerifyChallenge evaluates in order: missing, exhausted, expired, then the hash comparison.
// Only a mismatch consumes an attempt; the call after the last allowed mismatch reports exhaustion
// even for the right code. A match clears the challenge.
func (m *challengeManager) VerifyChallenge(account *entity.Account, code string, now time.Time) entity.ChallengeOutcome {
	challenge := account.OTP
	if challenge == nil || challenge.HashedCode == "" {
		return entity.ChallengeMissing
	}

	if challenge.IsExhausted(m.policy.MaxAttempts) {
		return entity.ChallengeExhausted
	}

	if challenge.IsExpired(now) {
		return entity.ChallengeExpired
	}

	if !m.hasher.Check(code, challenge.HashedCode) {
		challenge.AttemptCount++

		return entity.ChallengeMismatch
	}

	account.OTP = nil

	return entity.ChallengeVerified
}
