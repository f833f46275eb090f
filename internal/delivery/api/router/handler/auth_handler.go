package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"hdnotes/internal/delivery/api/response"
	"hdnotes/internal/delivery/api/validator"
	"hdnotes/internal/infra/metrics"
	"hdnotes/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// Response messages of the auth routes.
const (
	MessageOTPSent         = "OTP sent successfully to your email"
	MessageAccountCreated  = "Account created successfully"
	MessageLoginSuccessful = "Login successful"
	MessageLoggedOut       = "Logged out successfully"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC  usecase.AuthUsecase
	Metrics *metrics.Metrics `optional:"true"`
	Logger  *slog.Logger
}

// AuthHandler serves the OTP signup, signin and session routes.
type AuthHandler struct {
	authUC  usecase.AuthUsecase
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC:  params.AuthUC,
		metrics: params.Metrics,
		logger:  params.Logger,
	}
}

// SignupRequest represents the request body for starting a registration.
type SignupRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Email       string `json:"email" validate:"required,email"`
	DateOfBirth string `json:"dateOfBirth" validate:"required,isodate"`
}

func (r *SignupRequest) normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
}

// VerifySignupRequest represents the request body for confirming a registration.
type VerifySignupRequest struct {
	SignupRequest
	OTP string `json:"otp" validate:"required,otpcode"`
}

// RequestSigninOTPRequest represents the request body for asking a signin code.
type RequestSigninOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// SigninRequest represents the request body for signing in.
type SigninRequest struct {
	Email        string `json:"email" validate:"required,email"`
	OTP          string `json:"otp" validate:"required,otpcode"`
	KeepLoggedIn bool   `json:"keepLoggedIn"`
}

// RefreshTokenRequest represents the request body for refreshing an access token.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// RefreshTokenResponse carries the new access token.
type RefreshTokenResponse struct {
	AccessToken string `json:"accessToken"`
}

// Signup handles POST /auth/signup.
func (h *AuthHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid signup input")
	}
	req.normalize()

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	dateOfBirth, _ := validator.ParseDate(req.DateOfBirth)

	err := h.authUC.Signup(c.Request().Context(), &usecase.SignupInput{
		Name:        req.Name,
		Email:       req.Email,
		DateOfBirth: dateOfBirth,
	})
	h.metrics.ObserveAuthEvent("signup", err)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusOK, MessageOTPSent)
}

// VerifySignup handles POST /auth/verify-signup.
func (h *AuthHandler) VerifySignup(c echo.Context) error {
	var req VerifySignupRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid verification input")
	}
	req.normalize()
	req.OTP = strings.TrimSpace(req.OTP)

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	dateOfBirth, _ := validator.ParseDate(req.DateOfBirth)

	output, err := h.authUC.VerifySignup(c.Request().Context(), &usecase.VerifySignupInput{
		Name:        req.Name,
		Email:       req.Email,
		DateOfBirth: dateOfBirth,
		OTP:         req.OTP,
	})
	h.metrics.ObserveAuthEvent("verify_signup", err)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newAuthView(MessageAccountCreated, output))
}

// RequestSigninOTP handles POST /auth/request-signin-otp.
func (h *AuthHandler) RequestSigninOTP(c echo.Context) error {
	var req RequestSigninOTPRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid signin input")
	}
	req.Email = strings.TrimSpace(req.Email)

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	err := h.authUC.RequestSigninOTP(c.Request().Context(), &usecase.RequestSigninOTPInput{Email: req.Email})
	h.metrics.ObserveAuthEvent("request_signin_otp", err)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusOK, MessageOTPSent)
}

// Signin handles POST /auth/signin.
func (h *AuthHandler) Signin(c echo.Context) error {
	var req SigninRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid signin input")
	}
	req.Email = strings.TrimSpace(req.Email)
	req.OTP = strings.TrimSpace(req.OTP)

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	output, err := h.authUC.Signin(c.Request().Context(), &usecase.SigninInput{
		Email:        req.Email,
		OTP:          req.OTP,
		KeepLoggedIn: req.KeepLoggedIn,
	})
	h.metrics.ObserveAuthEvent("signin", err)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newAuthView(MessageLoginSuccessful, output))
}

// RefreshToken handles POST /auth/refresh-token.
func (h *AuthHandler) RefreshToken(c echo.Context) error {
	var req RefreshTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid refresh token input")
	}

	output, err := h.authUC.RefreshToken(c.Request().Context(), &usecase.RefreshTokenInput{
		RefreshToken: strings.TrimSpace(req.RefreshToken),
	})
	h.metrics.ObserveAuthEvent("refresh", err)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &RefreshTokenResponse{AccessToken: output.AccessToken})
}

// Logout handles POST /auth/logout. It reports success whatever the body holds.
func (h *AuthHandler) Logout(c echo.Context) error {
	var req RefreshTokenRequest
	_ = c.Bind(&req)

	err := h.authUC.Logout(c.Request().Context(), &usecase.LogoutInput{
		RefreshToken: strings.TrimSpace(req.RefreshToken),
	})
	h.metrics.ObserveAuthEvent("logout", err)

	return response.Message(c, http.StatusOK, MessageLoggedOut)
}
