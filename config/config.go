package config

import (
	"strings"
	"time"

	"github.com/slighter12/go-lib/database/postgres"
)

const defaultMaxRequestBodySize = "100KB"

// Rate limiter backends.
const (
	RateLimitBackendMemory = "memory"
	RateLimitBackendRedis  = "redis"
)

// Config is the whole service configuration, loaded by New.
type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		Access  string `json:"access" yaml:"access"`
		Refresh string `json:"refresh" yaml:"refresh"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Mail configuration for OTP delivery
	Mail *MailConfig `json:"mail" yaml:"mail"`

	RateLimit *RateLimitConfig `json:"rateLimit" yaml:"rateLimit"`

	Redis *RedisConfig `json:"redis" yaml:"redis"`

	Metrics *MetricsConfig `json:"metrics" yaml:"metrics"`

	// Janitor periodically purges expired sessions
	Janitor *JanitorConfig `json:"janitor" yaml:"janitor"`

	Migration struct {
		AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`
	} `json:"migration" yaml:"migration"`
}

// AuthConfig defines OTP, lockout and token lifetime settings
type AuthConfig struct {
	OTPLength        int           `json:"otpLength" yaml:"otpLength"`
	OTPTTL           time.Duration `json:"otpTTL" yaml:"otpTTL"`
	OTPMaxAttempts   int           `json:"otpMaxAttempts" yaml:"otpMaxAttempts"`
	BcryptCost       int           `json:"bcryptCost" yaml:"bcryptCost"`
	LockoutThreshold int           `json:"lockoutThreshold" yaml:"lockoutThreshold"`
	LockoutDuration  time.Duration `json:"lockoutDuration" yaml:"lockoutDuration"`
	Tokens           TokenConfig   `json:"tokens" yaml:"tokens"`
}

// TokenConfig holds the normal and "keep me logged in" lifetimes
type TokenConfig struct {
	Access          time.Duration `json:"access" yaml:"access"`
	Refresh         time.Duration `json:"refresh" yaml:"refresh"`
	ExtendedAccess  time.Duration `json:"extendedAccess" yaml:"extendedAccess"`
	ExtendedRefresh time.Duration `json:"extendedRefresh" yaml:"extendedRefresh"`
}

// MailConfig holds the SMTP relay used for OTP delivery.
type MailConfig struct {
	Host               string `json:"host" yaml:"host"`
	Port               int    `json:"port" yaml:"port"`
	Username           string `json:"username" yaml:"username"`
	Password           string `json:"password" yaml:"password"`
	From               string `json:"from" yaml:"from"`
	TLSMode            string `json:"tlsMode" yaml:"tlsMode"` // auto | starttls | ssl | none
	InsecureSkipVerify bool   `json:"insecureSkipVerify" yaml:"insecureSkipVerify"`
	AppName            string `json:"appName" yaml:"appName"`
}

// RateLimitConfig selects the limiter backend and per-scope windows
type RateLimitConfig struct {
	Backend string        `json:"backend" yaml:"backend"`
	OTP     RateLimitRule `json:"otp" yaml:"otp"`
	Signin  RateLimitRule `json:"signin" yaml:"signin"`
}

// RateLimitRule allows Max hits per client IP within Window.
type RateLimitRule struct {
	Max    int           `json:"max" yaml:"max"`
	Window time.Duration `json:"window" yaml:"window"`
}

// RedisConfig is used when rateLimit.backend is "redis".
type RedisConfig struct {
	Addr     string `json:"addr" yaml:"addr"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`
}

// MetricsConfig toggles the Prometheus endpoint and sets its path.
type MetricsConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Path    string `json:"path" yaml:"path"`
}

// JanitorConfig controls the expired session sweeper.
type JanitorConfig struct {
	Enabled  bool          `json:"enabled" yaml:"enabled"`
	Interval time.Duration `json:"interval" yaml:"interval"`
}

// Log selects the log level and text or JSON output.
type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// New reads config.yaml (from ./, config/, ../config or ../../config), then
// .env and the process environment on top, then fills defaults.
func New() (*Config, error) {
	loadDotEnv(".env")

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()

	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = replicasFromEnv()
	}

	return cfg, nil
}

// ApplyDefaults fills every unset setting with its production default.
func (cfg *Config) ApplyDefaults() {
	orDefault(&cfg.HTTP.MaxRequestBodySize, defaultMaxRequestBodySize)

	ensure(&cfg.Auth).applyDefaults()

	mail := ensure(&cfg.Mail)
	orDefault(&mail.TLSMode, "auto")
	orDefault(&mail.AppName, "HD Notes")

	limits := ensure(&cfg.RateLimit)
	orDefault(&limits.Backend, RateLimitBackendMemory)
	limits.OTP.applyDefaults()
	limits.Signin.applyDefaults()

	orDefault(&ensure(&cfg.Metrics).Path, "/metrics")
	positiveOr(&ensure(&cfg.Janitor).Interval, time.Hour)
}

func (a *AuthConfig) applyDefaults() {
	positiveOr(&a.OTPLength, 6)
	positiveOr(&a.OTPTTL, 10*time.Minute)
	positiveOr(&a.OTPMaxAttempts, 3)
	positiveOr(&a.LockoutThreshold, 5)
	positiveOr(&a.LockoutDuration, 2*time.Hour)

	positiveOr(&a.Tokens.Access, 15*time.Minute)
	positiveOr(&a.Tokens.Refresh, 7*24*time.Hour)
	positiveOr(&a.Tokens.ExtendedAccess, 30*24*time.Hour)
	positiveOr(&a.Tokens.ExtendedRefresh, 90*24*time.Hour)
}

func (r *RateLimitRule) applyDefaults() {
	positiveOr(&r.Max, 20)
	positiveOr(&r.Window, 15*time.Minute)
}

func ensure[T any](section **T) *T {
	if *section == nil {
		*section = new(T)
	}

	return *section
}

func orDefault(v *string, def string) {
	if strings.TrimSpace(*v) == "" {
		*v = def
	}
}

func positiveOr[T int | time.Duration](v *T, def T) {
	if *v <= 0 {
		*v = def
	}
}
