package auth

import (
	"strings"
	"testing"
	"time"

	"hdnotes/config"
	"hdnotes/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(access, refresh string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = access
	cfg.SecretKey.Refresh = refresh

	return cfg
}

func newTestJWTService(t *testing.T) *jwtService {
	t.Helper()

	svc, err := NewJWTService(newTestConfig(
		"test_access_secret_key_very_long_for_testing",
		"test_refresh_secret_key_very_long_for_testing",
	))
	require.NoError(t, err)

	impl, ok := svc.(*jwtService)
	require.True(t, ok)

	return impl
}

func TestJWTService_IssueAndVerifyTokens(t *testing.T) {
	jwtService := newTestJWTService(t)
	accountID := uuid.New()

	accessToken, err := jwtService.IssueAccessToken(accountID, 15*time.Minute)
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)

	refreshToken, err := jwtService.IssueRefreshToken(accountID, 7*24*time.Hour)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshToken)

	accessClaims, err := jwtService.VerifyToken(accessToken, service.TokenKindAccess)
	require.NoError(t, err)
	assert.Equal(t, service.TokenKindAccess, accessClaims.Type)
	subject, err := accessClaims.AccountID()
	require.NoError(t, err)
	assert.Equal(t, accountID, subject)
	assert.NotEmpty(t, accessClaims.ID)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), accessClaims.ExpiresAt.Time, 5*time.Second)

	refreshClaims, err := jwtService.VerifyToken(refreshToken, service.TokenKindRefresh)
	require.NoError(t, err)
	assert.Equal(t, service.TokenKindRefresh, refreshClaims.Type)
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), refreshClaims.ExpiresAt.Time, 5*time.Second)
}

func TestJWTService_TokensAreUnique(t *testing.T) {
	jwtService := newTestJWTService(t)
	accountID := uuid.New()

	first, err := jwtService.IssueRefreshToken(accountID, time.Hour)
	require.NoError(t, err)
	second, err := jwtService.IssueRefreshToken(accountID, time.Hour)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.NotEqual(t, jwtService.HashToken(first), jwtService.HashToken(second))
}

func TestJWTService_ExpiredToken(t *testing.T) {
	jwtService := newTestJWTService(t)

	jwtService.now = func() time.Time { return time.Now().Add(-time.Hour) }
	token, err := jwtService.IssueAccessToken(uuid.New(), 15*time.Minute)
	require.NoError(t, err)
	jwtService.now = time.Now

	_, err = jwtService.VerifyToken(token, service.TokenKindAccess)
	assert.ErrorIs(t, err, service.ErrTokenExpired)
}

func TestJWTService_TamperedToken(t *testing.T) {
	jwtService := newTestJWTService(t)

	forger, err := NewJWTService(newTestConfig("attacker_access_secret", "attacker_refresh_secret"))
	require.NoError(t, err)

	forged, err := forger.IssueAccessToken(uuid.New(), time.Hour)
	require.NoError(t, err)

	_, err = jwtService.VerifyToken(forged, service.TokenKindAccess)
	assert.ErrorIs(t, err, service.ErrTokenInvalid)
}

func TestJWTService_MalformedToken(t *testing.T) {
	jwtService := newTestJWTService(t)

	for _, token := range []string{"", "invalid.token.string", strings.Repeat("a", 40)} {
		_, err := jwtService.VerifyToken(token, service.TokenKindAccess)
		assert.ErrorIs(t, err, service.ErrTokenInvalid, "token %q", token)
	}
}

func TestJWTService_WrongKind(t *testing.T) {
	jwtService := newTestJWTService(t)
	accountID := uuid.New()

	refreshToken, err := jwtService.IssueRefreshToken(accountID, time.Hour)
	require.NoError(t, err)
	_, err = jwtService.VerifyToken(refreshToken, service.TokenKindAccess)
	assert.ErrorIs(t, err, service.ErrTokenInvalid)

	accessToken, err := jwtService.IssueAccessToken(accountID, time.Hour)
	require.NoError(t, err)
	_, err = jwtService.VerifyToken(accessToken, service.TokenKindRefresh)
	assert.ErrorIs(t, err, service.ErrTokenInvalid)
}

func TestJWTService_HashToken(t *testing.T) {
	jwtService := newTestJWTService(t)

	hash := jwtService.HashToken("token")
	assert.Len(t, hash, 64)
	assert.Equal(t, hash, jwtService.HashToken("token"))
	assert.NotEqual(t, hash, jwtService.HashToken("token2"))
}

func TestNewJWTService_RequiresDistinctSecrets(t *testing.T) {
	_, err := NewJWTService(newTestConfig("", "refresh"))
	assert.Error(t, err)

	_, err = NewJWTService(newTestConfig("same", "same"))
	assert.Error(t, err)
}
