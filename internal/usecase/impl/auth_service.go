// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"hdnotes/config"
	deliverycontext "hdnotes/internal/delivery/context"
	"hdnotes/internal/domain/entity"
	domainerrors "hdnotes/internal/domain/errors"
	"hdnotes/internal/domain/repository"
	"hdnotes/internal/domain/service"
	"hdnotes/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager        repository.TransactionManager
	accountRepo      repository.AccountRepository
	refreshTokenRepo repository.RefreshTokenRepository
	challenges       service.OTPChallengeManager
	mailer           service.OTPMailer
	tokenService     service.TokenService
	lockout          entity.LockoutPolicy
	standard         entity.SessionLifetime
	extended         entity.SessionLifetime
	now              func() time.Time
	logger           *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	AccountRepo      repository.AccountRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	Challenges       service.OTPChallengeManager
	Mailer           service.OTPMailer
	TokenService     service.TokenService
	Config           *config.Config
	Logger           *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	auth := params.Config.Auth

	return &authService{
		txManager:        params.TxManager,
		accountRepo:      params.AccountRepo,
		refreshTokenRepo: params.RefreshTokenRepo,
		challenges:       params.Challenges,
		mailer:           params.Mailer,
		tokenService:     params.TokenService,
		lockout: entity.LockoutPolicy{
			Threshold: auth.LockoutThreshold,
			Duration:  auth.LockoutDuration,
		},
		standard: entity.SessionLifetime{
			Access:  auth.Tokens.Access,
			Refresh: auth.Tokens.Refresh,
		},
		extended: entity.SessionLifetime{
			Access:  auth.Tokens.ExtendedAccess,
			Refresh: auth.Tokens.ExtendedRefresh,
		},
		now:    time.Now,
		logger: params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Signup creates or refreshes an unverified account and emails it a new challenge.
func (srv *authService) Signup(ctx context.Context, input *usecase.SignupInput) error {
	email := entity.NormalizeEmail(input.Email)
	srv.log(ctx).Info("Starting signup", slog.String("email", email))

	var code string

	account, err := srv.accountRepo.FindByEmail(ctx, email)
	switch {
	case errors.Is(err, repository.ErrAccountNotFound):
		account, code, err = srv.createPendingAccount(ctx, email, input)
	case err != nil:
		return errors.Wrap(err, "failed to find account")
	default:
		code, err = srv.refreshPendingAccount(ctx, account, input)
	}
	if err != nil {
		return err
	}

	return srv.deliver(ctx, account, code)
}

// createPendingAccount inserts a new unverified account. When a concurrent
// signup inserted the same email first, it continues on that row instead.
func (srv *authService) createPendingAccount(ctx context.Context, email string, input *usecase.SignupInput) (*entity.Account, string, error) {
	account := &entity.Account{Email: email}
	applySignupInput(account, input)

	code, err := srv.challenges.IssueChallenge(account, srv.now())
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to issue challenge")
	}

	err = srv.accountRepo.Create(ctx, account)
	if errors.Is(err, repository.ErrAccountEmailTaken) {
		existing, findErr := srv.accountRepo.FindByEmail(ctx, email)
		if findErr != nil {
			return nil, "", errors.Wrap(findErr, "failed to find account after concurrent signup")
		}

		code, err = srv.refreshPendingAccount(ctx, existing, input)

		return existing, code, err
	}
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to create account")
	}

	srv.log(ctx).Info("Account created", slog.Any("account_id", account.ID))

	return account, code, nil
}

// refreshPendingAccount overwrites the details of an unverified account and
// replaces its challenge.
func (srv *authService) refreshPendingAccount(ctx context.Context, account *entity.Account, input *usecase.SignupInput) (string, error) {
	if account.IsVerified {
		return "", errors.Wrap(domainerrors.ErrAccountAlreadyVerified, "signup for verified account")
	}

	applySignupInput(account, input)

	code, err := srv.challenges.IssueChallenge(account, srv.now())
	if err != nil {
		return "", errors.Wrap(err, "failed to issue challenge")
	}

	if err := srv.accountRepo.Update(ctx, account); err != nil {
		return "", errors.Wrap(err, "failed to update account")
	}

	return code, nil
}

func applySignupInput(account *entity.Account, input *usecase.SignupInput) {
	account.Name = entity.NormalizeName(input.Name)
	account.DateOfBirth = input.DateOfBirth
}

// VerifySignup completes registration and opens the first session.
func (srv *authService) VerifySignup(ctx context.Context, input *usecase.VerifySignupInput) (*usecase.AuthOutput, error) {
	email := entity.NormalizeEmail(input.Email)

	account, err := srv.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, errors.Wrap(domainerrors.ErrAccountNotFound, "verify signup")
		}

		return nil, errors.Wrap(err, "failed to find account")
	}

	if account.IsVerified {
		return nil, errors.Wrap(domainerrors.ErrAccountVerifiedAlready, "verify signup")
	}

	now := srv.now()
	outcome := srv.challenges.VerifyChallenge(account, input.OTP, now)
	if !outcome.OK() {
		if err := srv.accountRepo.Update(ctx, account); err != nil {
			return nil, errors.Wrap(err, "failed to persist challenge state")
		}
		srv.log(ctx).Warn("Signup verification failed",
			slog.Any("account_id", account.ID),
			slog.String("outcome", outcome.String()),
		)

		return nil, challengeError(outcome)
	}

	account.MarkVerified(now)

	output, err := srv.openSession(ctx, account, srv.standard)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Account verified", slog.Any("account_id", account.ID))

	return output, nil
}

// RequestSigninOTP emails a fresh challenge to a verified, unlocked account.
func (srv *authService) RequestSigninOTP(ctx context.Context, input *usecase.RequestSigninOTPInput) error {
	account, err := srv.loadSigninAccount(ctx, input.Email)
	if err != nil {
		return err
	}

	code, err := srv.challenges.IssueChallenge(account, srv.now())
	if err != nil {
		return errors.Wrap(err, "failed to issue challenge")
	}

	if err := srv.accountRepo.Update(ctx, account); err != nil {
		return errors.Wrap(err, "failed to update account")
	}

	return srv.deliver(ctx, account, code)
}

// Signin verifies the code behind the lockout gate and opens a session.
func (srv *authService) Signin(ctx context.Context, input *usecase.SigninInput) (*usecase.AuthOutput, error) {
	account, err := srv.loadSigninAccount(ctx, input.Email)
	if err != nil {
		return nil, err
	}

	now := srv.now()
	outcome := srv.challenges.VerifyChallenge(account, input.OTP, now)
	if !outcome.OK() {
		account.RecordFailure(now, srv.lockout)
		if err := srv.accountRepo.Update(ctx, account); err != nil {
			return nil, errors.Wrap(err, "failed to record signin failure")
		}

		srv.log(ctx).Warn("Signin failed",
			slog.Any("account_id", account.ID),
			slog.String("outcome", outcome.String()),
			slog.Int("failed_attempts", account.FailedAttemptCount),
			slog.Bool("locked", account.IsLocked(now)),
		)

		return nil, challengeError(outcome)
	}

	account.MarkSignedIn(now)

	lifetime := srv.standard
	if input.KeepLoggedIn {
		lifetime = srv.extended
	}

	output, err := srv.openSession(ctx, account, lifetime)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Signin successful",
		slog.Any("account_id", account.ID),
		slog.Bool("keep_logged_in", input.KeepLoggedIn),
	)

	return output, nil
}

// RefreshToken issues a new short-lived access token for a stored session.
// The refresh token itself is not rotated.
func (srv *authService) RefreshToken(ctx context.Context, input *usecase.RefreshTokenInput) (*usecase.RefreshTokenOutput, error) {
	if input.RefreshToken == "" {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenRequired, "refresh")
	}

	claims, err := srv.tokenService.VerifyToken(input.RefreshToken, service.TokenKindRefresh)
	if err != nil {
		if errors.Is(err, service.ErrTokenExpired) {
			return nil, errors.Wrap(domainerrors.ErrRefreshTokenExpired, "refresh")
		}

		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, err.Error())
	}

	accountID, err := claims.AccountID()
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "malformed subject")
	}

	stored, err := srv.refreshTokenRepo.FindRefreshTokenByHash(ctx, srv.tokenService.HashToken(input.RefreshToken))
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRefreshTokenNotFound):
			return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "session revoked")
		case errors.Is(err, repository.ErrRefreshTokenExpired):
			return nil, errors.Wrap(domainerrors.ErrRefreshTokenExpired, "session expired")
		default:
			return nil, errors.Wrap(err, "failed to find refresh token")
		}
	}

	if stored.AccountID != accountID {
		srv.log(ctx).Warn("Refresh token bound to another account", slog.Any("account_id", accountID))

		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "session account mismatch")
	}

	account, err := srv.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "account gone")
		}

		return nil, errors.Wrap(err, "failed to find account")
	}
	if !account.IsVerified {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "account unverified")
	}

	accessToken, err := srv.tokenService.IssueAccessToken(accountID, srv.standard.Access)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue access token")
	}

	return &usecase.RefreshTokenOutput{AccessToken: accessToken}, nil
}

// Logout ends the session of the given refresh token. It never fails towards the caller.
func (srv *authService) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	if input.RefreshToken == "" {
		return nil
	}

	err := srv.refreshTokenRepo.DeleteRefreshTokenByHash(ctx, srv.tokenService.HashToken(input.RefreshToken))
	if err != nil && !errors.Is(err, repository.ErrRefreshTokenNotFound) {
		srv.log(ctx).Warn("Failed to revoke refresh token on logout", slog.Any("error", err))
	}

	return nil
}

// Authenticate validates an access token for a protected request.
func (srv *authService) Authenticate(ctx context.Context, accessToken string) (*entity.Account, error) {
	if accessToken == "" {
		return nil, errors.Wrap(domainerrors.ErrMissingToken, "authenticate")
	}

	claims, err := srv.tokenService.VerifyToken(accessToken, service.TokenKindAccess)
	if err != nil {
		if errors.Is(err, service.ErrTokenExpired) {
			return nil, errors.Wrap(domainerrors.ErrTokenExpired, "authenticate")
		}

		return nil, errors.Wrap(domainerrors.ErrInvalidToken, err.Error())
	}

	accountID, err := claims.AccountID()
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInvalidToken, "malformed subject")
	}

	account, err := srv.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidToken, "account gone")
		}

		return nil, errors.Wrap(err, "failed to find account")
	}

	if !account.IsVerified {
		return nil, errors.Wrap(domainerrors.ErrInvalidToken, "account unverified")
	}

	return account, nil
}

// loadSigninAccount applies the checks shared by both signin steps.
func (srv *authService) loadSigninAccount(ctx context.Context, rawEmail string) (*entity.Account, error) {
	account, err := srv.accountRepo.FindByEmail(ctx, entity.NormalizeEmail(rawEmail))
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, errors.Wrap(domainerrors.ErrAccountNotFoundOrUnverified, "signin")
		}

		return nil, errors.Wrap(err, "failed to find account")
	}

	if !account.IsVerified {
		return nil, errors.Wrap(domainerrors.ErrAccountNotFoundOrUnverified, "signin")
	}

	if account.IsLocked(srv.now()) {
		srv.log(ctx).Warn("Signin refused for locked account", slog.Any("account_id", account.ID))

		return nil, errors.Wrap(domainerrors.ErrAccountLocked, "signin")
	}

	return account, nil
}

// deliver sends the code. A failure leaves the persisted challenge in place.
func (srv *authService) deliver(ctx context.Context, account *entity.Account, code string) error {
	if err := srv.mailer.SendOTP(ctx, account.Email, code, account.Name); err != nil {
		srv.log(ctx).Error("Failed to deliver OTP",
			slog.Any("account_id", account.ID),
			slog.Any("error", err),
		)

		return errors.Wrap(domainerrors.ErrOTPDeliveryFailed, err.Error())
	}

	srv.log(ctx).Info("OTP sent", slog.Any("account_id", account.ID))

	return nil
}

// openSession persists the verified account and a new refresh token in one transaction.
func (srv *authService) openSession(ctx context.Context, account *entity.Account, lifetime entity.SessionLifetime) (*usecase.AuthOutput, error) {
	pair, err := srv.issueTokenPair(account.ID, lifetime)
	if err != nil {
		return nil, err
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.AccountRepo().Update(ctx, account); err != nil {
			return errors.Wrap(err, "failed to update account")
		}

		return srv.storeRefreshToken(ctx, repoFactory.RefreshTokenRepo(), account.ID, pair.RefreshToken, lifetime.Refresh)
	})
	if err != nil {
		return nil, err
	}

	return &usecase.AuthOutput{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		Account:      account,
	}, nil
}

func (srv *authService) issueTokenPair(accountID uuid.UUID, lifetime entity.SessionLifetime) (*entity.TokenPair, error) {
	accessToken, err := srv.tokenService.IssueAccessToken(accountID, lifetime.Access)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue access token")
	}

	refreshToken, err := srv.tokenService.IssueRefreshToken(accountID, lifetime.Refresh)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue refresh token")
	}

	return &entity.TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

func (srv *authService) storeRefreshToken(
	ctx context.Context,
	refreshRepo repository.RefreshTokenRepository,
	accountID uuid.UUID,
	refreshToken string,
	ttl time.Duration,
) error {
	token := &entity.RefreshToken{
		AccountID: accountID,
		TokenHash: srv.tokenService.HashToken(refreshToken),
		ExpiresAt: srv.now().Add(ttl),
	}

	if err := refreshRepo.CreateRefreshToken(ctx, token); err != nil {
		return errors.Wrap(err, "failed to store refresh token")
	}

	return nil
}

// challengeError maps a failed verification outcome to the error shown to the client.
func challengeError(outcome entity.ChallengeOutcome) error {
	if outcome == entity.ChallengeExhausted {
		return errors.Wrap(domainerrors.ErrTooManyOTPAttempts, outcome.String())
	}

	return errors.Wrap(domainerrors.ErrOTPInvalidOrExpired, outcome.String())
}
