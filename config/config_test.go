package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"auth": map[string]any{
			"otpTTL": "10m",
			"tokens": map[string]any{
				"extendedRefresh": "2160h",
			},
		},
		"rateLimit": map[string]any{
			"backend": "memory",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "AUTH_OTPTTL", want: "auth.otpTTL"},
		{envKey: "AUTH_TOKENS_EXTENDEDREFRESH", want: "auth.tokens.extendedRefresh"},
		{envKey: "RATELIMIT_BACKEND", want: "rateLimit.backend"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults_FillsAuthPolicy(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()

	require.NotNil(t, cfg.Auth)
	assert.Equal(t, 6, cfg.Auth.OTPLength)
	assert.Equal(t, 10*time.Minute, cfg.Auth.OTPTTL)
	assert.Equal(t, 3, cfg.Auth.OTPMaxAttempts)
	assert.Equal(t, 5, cfg.Auth.LockoutThreshold)
	assert.Equal(t, 2*time.Hour, cfg.Auth.LockoutDuration)
	assert.Equal(t, 15*time.Minute, cfg.Auth.Tokens.Access)
	assert.Equal(t, 7*24*time.Hour, cfg.Auth.Tokens.Refresh)
	assert.Equal(t, 30*24*time.Hour, cfg.Auth.Tokens.ExtendedAccess)
	assert.Equal(t, 90*24*time.Hour, cfg.Auth.Tokens.ExtendedRefresh)

	assert.Equal(t, RateLimitBackendMemory, cfg.RateLimit.Backend)
	assert.Equal(t, 20, cfg.RateLimit.OTP.Max)
	assert.Equal(t, 15*time.Minute, cfg.RateLimit.Signin.Window)
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, "auto", cfg.Mail.TLSMode)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Auth: &AuthConfig{OTPLength: 4, LockoutThreshold: 10},
		RateLimit: &RateLimitConfig{
			Backend: RateLimitBackendRedis,
			OTP:     RateLimitRule{Max: 5, Window: time.Minute},
		},
	}
	cfg.ApplyDefaults()

	assert.Equal(t, 4, cfg.Auth.OTPLength)
	assert.Equal(t, 10, cfg.Auth.LockoutThreshold)
	assert.Equal(t, RateLimitBackendRedis, cfg.RateLimit.Backend)
	assert.Equal(t, 5, cfg.RateLimit.OTP.Max)
	assert.Equal(t, time.Minute, cfg.RateLimit.OTP.Window)
}

func TestLoadWithEnv_OverlaysEnvironment(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "conf"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "conf", "app.yaml"), []byte(`
http:
  port: 8080
auth:
  otpTTL: 10m
  tokens:
    extendedRefresh: 2160h
`), 0o600))

	t.Chdir(dir)
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("AUTH_OTPTTL", "5m")

	cfg, err := LoadWithEnv[Config]("app", "conf")
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, 5*time.Minute, cfg.Auth.OTPTTL)
	assert.Equal(t, 2160*time.Hour, cfg.Auth.Tokens.ExtendedRefresh)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("absent", "conf")
	assert.ErrorContains(t, err, "absent.yaml not found")
}

func TestReplicasFromEnv(t *testing.T) {
	t.Setenv("POSTGRES_REPLICAS_0_HOST", "replica-a")
	t.Setenv("POSTGRES_REPLICAS_0_PORT", "5432")
	t.Setenv("POSTGRES_REPLICAS_0_USERNAME", "reader")
	t.Setenv("POSTGRES_REPLICAS_1_HOST", "replica-b")

	replicas := replicasFromEnv()

	require.Len(t, replicas, 1)
	assert.Equal(t, "replica-a", replicas[0].Host)
	assert.Equal(t, "reader", replicas[0].UserName)
}
