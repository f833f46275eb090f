// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"hdnotes/config"
	"hdnotes/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret  []byte // Secret key for signing access tokens.
	refreshSecret []byte // Secret key for signing refresh tokens.
	now           func() time.Time
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return nil, errors.New("jwt secrets must be provided")
	}
	if cfg.SecretKey.Access == cfg.SecretKey.Refresh {
		return nil, errors.New("access and refresh secrets must differ")
	}

	return &jwtService{
		accessSecret:  []byte(cfg.SecretKey.Access),
		refreshSecret: []byte(cfg.SecretKey.Refresh),
		now:           time.Now,
	}, nil
}

func (s *jwtService) IssueAccessToken(accountID uuid.UUID, ttl time.Duration) (string, error) {
	return s.generateToken(accountID, ttl, service.TokenKindAccess)
}

func (s *jwtService) IssueRefreshToken(accountID uuid.UUID, ttl time.Duration) (string, error) {
	return s.generateToken(accountID, ttl, service.TokenKindRefresh)
}

// VerifyToken checks the validity of a token string against the secret of its kind.
func (s *jwtService) VerifyToken(tokenString string, kind service.TokenKind) (*service.Claims, error) {
	secret, err := s.secretFor(kind)
	if err != nil {
		return nil, err
	}

	claims := &service.Claims{}
	_, err = jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, service.ErrTokenExpired
		}

		return nil, errors.Wrap(service.ErrTokenInvalid, err.Error())
	}

	if claims.Type != kind {
		return nil, errors.Wrapf(service.ErrTokenInvalid, "unexpected token type %q", claims.Type)
	}
	if _, err := claims.AccountID(); err != nil {
		return nil, errors.Wrap(service.ErrTokenInvalid, "malformed subject")
	}

	return claims, nil
}

// HashToken returns the hex encoded SHA-256 digest of a token.
func (s *jwtService) HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))

	return hex.EncodeToString(sum[:])
}

func (s *jwtService) secretFor(kind service.TokenKind) ([]byte, error) {
	switch kind {
	case service.TokenKindAccess:
		return s.accessSecret, nil
	case service.TokenKindRefresh:
		return s.refreshSecret, nil
	default:
		return nil, errors.Wrapf(service.ErrTokenInvalid, "unknown token kind %q", kind)
	}
}

// generateToken is a private helper to create a JWT with specific claims.
func (s *jwtService) generateToken(accountID uuid.UUID, ttl time.Duration, kind service.TokenKind) (string, error) {
	secret, err := s.secretFor(kind)
	if err != nil {
		return "", err
	}

	now := s.now()
	claims := service.Claims{
		Type: kind,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   accountID.String(),
			ID:        uuid.NewString(), // keeps concurrently issued tokens distinct
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}
