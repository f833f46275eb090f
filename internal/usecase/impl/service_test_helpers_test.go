package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"hdnotes/config"
	"hdnotes/internal/domain/repository"
	"hdnotes/internal/domain/service"
	"hdnotes/internal/infra/auth"
	"hdnotes/internal/infra/otp"
	mockRepo "hdnotes/internal/mocks/repository"
	mockSvc "hdnotes/internal/mocks/service"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testOTP = "482913"

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost: bcrypt.MinCost,
		},
	}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"
	cfg.ApplyDefaults()

	return cfg
}

// expectTransaction makes the transaction manager run the callback against the given factory.
func expectTransaction(txManager *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		}).
		Maybe()
}

// authTestSuite wires authService to mocked stores, a real JWT issuer and a real
// challenge manager whose generator always yields testOTP.
type authTestSuite struct {
	txManager   *mockRepo.MockTransactionManager
	factory     *mockRepo.MockRepositoryFactory
	accountRepo *mockRepo.MockAccountRepository
	refreshRepo *mockRepo.MockRefreshTokenRepository
	mailer      *mockSvc.MockOTPMailer
	tokens      service.TokenService
	service     *authService
	now         time.Time
}

func newAuthTestSuite(t *testing.T) *authTestSuite {
	t.Helper()

	cfg := newTestConfig()

	generator := mockSvc.NewMockOTPGenerator(t)
	generator.EXPECT().Generate(6).Return(testOTP, nil).Maybe()

	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	s := &authTestSuite{
		txManager:   mockRepo.NewMockTransactionManager(t),
		factory:     mockRepo.NewMockRepositoryFactory(t),
		accountRepo: mockRepo.NewMockAccountRepository(t),
		refreshRepo: mockRepo.NewMockRefreshTokenRepository(t),
		mailer:      mockSvc.NewMockOTPMailer(t),
		tokens:      tokens,
		now:         time.Now().UTC().Truncate(time.Second),
	}

	s.factory.EXPECT().AccountRepo().Return(s.accountRepo).Maybe()
	s.factory.EXPECT().RefreshTokenRepo().Return(s.refreshRepo).Maybe()
	expectTransaction(s.txManager, s.factory)

	svc, ok := NewAuthService(AuthServiceParams{
		TxManager:        s.txManager,
		AccountRepo:      s.accountRepo,
		RefreshTokenRepo: s.refreshRepo,
		Challenges:       otp.NewChallengeManager(cfg, generator, auth.NewBcryptHasher(cfg)),
		Mailer:           s.mailer,
		TokenService:     tokens,
		Config:           cfg,
		Logger:           newDiscardLogger(),
	}).(*authService)
	require.True(t, ok)

	svc.now = func() time.Time { return s.now }
	s.service = svc

	return s
}

// advance moves the service clock forward.
func (s *authTestSuite) advance(d time.Duration) {
	s.now = s.now.Add(d)
}
