// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"hdnotes/internal/domain/entity"
)

// --- Input DTOs ---

// SignupInput defines the data required to start or restart a registration.
type SignupInput struct {
	Name        string
	Email       string
	DateOfBirth time.Time
}

// VerifySignupInput confirms a registration with the emailed code.
type VerifySignupInput struct {
	Name        string
	Email       string
	DateOfBirth time.Time
	OTP         string
}

// RequestSigninOTPInput asks for a signin code.
type RequestSigninOTPInput struct {
	Email string
}

// SigninInput defines the data required for an account to sign in.
type SigninInput struct {
	Email        string
	OTP          string
	KeepLoggedIn bool
}

// RefreshTokenInput carries the refresh token presented by the client.
type RefreshTokenInput struct {
	RefreshToken string
}

// LogoutInput carries the refresh token of the session to end. It may be empty.
type LogoutInput struct {
	RefreshToken string
}

// --- Output DTOs ---

// AuthOutput returns the generated tokens after a successful verification.
type AuthOutput struct {
	AccessToken  string
	RefreshToken string
	Account      *entity.Account
}

// RefreshTokenOutput returns a freshly issued access token.
type RefreshTokenOutput struct {
	AccessToken string
}

// AuthUsecase defines the OTP signup and signin flows and the session lifecycle.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	Signup(ctx context.Context, input *SignupInput) error
	VerifySignup(ctx context.Context, input *VerifySignupInput) (*AuthOutput, error)
	RequestSigninOTP(ctx context.Context, input *RequestSigninOTPInput) error
	Signin(ctx context.Context, input *SigninInput) (*AuthOutput, error)
	RefreshToken(ctx context.Context, input *RefreshTokenInput) (*RefreshTokenOutput, error)
	Logout(ctx context.Context, input *LogoutInput) error

	// Authenticate validates an access token and returns the verified account it belongs to.
	Authenticate(ctx context.Context, accessToken string) (*entity.Account, error)
}
