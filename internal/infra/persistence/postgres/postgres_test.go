package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"hdnotes/config"
	deliverycontext "hdnotes/internal/delivery/context"
	"hdnotes/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestConstraintErrors(t *testing.T) {
	wrap := func(code string) error {
		return errors.Wrap(&pgconn.PgError{Code: code}, "insert")
	}

	assert.True(t, isUniqueConstraintViolation(wrap("23505")))
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isForeignKeyConstraintViolation(wrap("23503")))
	assert.True(t, isNotNullConstraintViolation(wrap("23502")))
	assert.True(t, isCheckConstraintViolation(wrap("23514")))

	assert.False(t, isUniqueConstraintViolation(wrap("23503")))
	assert.False(t, isNotNullConstraintViolation(errors.New("value required")))
}

func TestAccountMapper_RoundTrip(t *testing.T) {
	now := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	lockedUntil := now.Add(2 * time.Hour)
	account := &entity.Account{
		ID:                 uuid.New(),
		Name:               "Alice",
		Email:              "alice@x.com",
		DateOfBirth:        time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
		OTP:                &entity.OTPChallenge{HashedCode: "$2a$hash", ExpiresAt: now.Add(10 * time.Minute), AttemptCount: 2},
		FailedAttemptCount: 5,
		LockedUntil:        &lockedUntil,
	}

	accountM := fromAccountDomain(account)
	require.NotNil(t, accountM.OTPHash)
	assert.Equal(t, "$2a$hash", *accountM.OTPHash)
	assert.Equal(t, 2, *accountM.OTPAttemptCount)

	assert.Equal(t, account, toAccountDomain(accountM))
}

func TestAccountMapper_NoChallenge(t *testing.T) {
	accountM := fromAccountDomain(&entity.Account{ID: uuid.New(), Email: "bob@x.com"})

	assert.Nil(t, accountM.OTPHash)
	assert.Nil(t, accountM.OTPExpiresAt)
	assert.Nil(t, accountM.OTPAttemptCount)
	assert.Nil(t, toAccountDomain(accountM).OTP)
}

func TestQueryLogger_UsesRequestLogger(t *testing.T) {
	var base, scoped bytes.Buffer
	cfg := &config.Config{}
	gormLogger := newQueryLogger(slog.New(slog.NewTextHandler(&base, nil)), cfg)

	ctx := deliverycontext.WithLogger(context.Background(), slog.New(slog.NewTextHandler(&scoped, nil)).With("request_id", "req-1"))
	gormLogger.Trace(ctx, time.Now(), func() (string, int64) { return "SELECT 1", 1 }, errors.New("boom"))

	assert.Empty(t, base.String())
	assert.Contains(t, scoped.String(), "request_id=req-1")
	assert.Contains(t, scoped.String(), "sql statement failed")
}

func TestQueryLogger_IgnoresRecordNotFound(t *testing.T) {
	var buf bytes.Buffer
	gormLogger := newQueryLogger(slog.New(slog.NewTextHandler(&buf, nil)), &config.Config{})

	gormLogger.Trace(context.Background(), time.Now(), func() (string, int64) { return "SELECT 1", 0 }, gorm.ErrRecordNotFound)

	assert.Empty(t, buf.String())
}

func TestPoolWaitReport(t *testing.T) {
	last := sql.DBStats{WaitCount: 10, WaitDuration: time.Second}

	_, _, waited := poolWaitReport(last, last)
	assert.False(t, waited)

	level, attrs, waited := poolWaitReport(last, sql.DBStats{WaitCount: 12, WaitDuration: time.Second + 10*time.Millisecond})
	require.True(t, waited)
	assert.Equal(t, slog.LevelDebug, level)
	assert.Equal(t, int64(2), attrs[0].Value.Int64())
	assert.Equal(t, 5*time.Millisecond, attrs[2].Value.Duration())

	level, _, _ = poolWaitReport(last, sql.DBStats{WaitCount: 11, WaitDuration: 2 * time.Second})
	assert.Equal(t, slog.LevelWarn, level)
}
