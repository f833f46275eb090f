package main

import (
	"context"
	"log/slog"
	"os"

	"hdnotes/config"
	"hdnotes/internal/delivery"
	"hdnotes/internal/delivery/api"
	"hdnotes/internal/delivery/api/middleware"
	"hdnotes/internal/delivery/api/router/handler"
	"hdnotes/internal/delivery/janitor"
	"hdnotes/internal/domain/service"
	"hdnotes/internal/infra/auth"
	logs "hdnotes/internal/infra/log"
	"hdnotes/internal/infra/mail"
	"hdnotes/internal/infra/metrics"
	"hdnotes/internal/infra/otp"
	"hdnotes/internal/infra/persistence/postgres"
	"hdnotes/internal/infra/ratelimit"
	"hdnotes/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		metrics.NewFromConfig,
		postgres.New,
		ratelimit.NewRedisClient,
		ratelimit.NewLimiters,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewAccountRepository,
			postgres.NewRefreshTokenRepository,
			postgres.NewNoteRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			otp.NewGenerator,
			otp.NewChallengeManager,
			newOTPMailer,
		),
	)
}

type mailerParams struct {
	fx.In

	Cfg     *config.Config
	Logger  *slog.Logger
	Metrics *metrics.Metrics `optional:"true"`
}

// newOTPMailer creates the SMTP mailer and counts its deliveries when metrics are enabled.
func newOTPMailer(params mailerParams) (service.OTPMailer, error) {
	mailer, err := mail.NewOTPMailer(params.Cfg, params.Logger)
	if err != nil {
		return nil, err
	}

	return params.Metrics.InstrumentMailer(mailer), nil
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewProfileService,
			impl.NewSessionService,
			impl.NewNoteService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewRateLimitMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewProfileHandler,
			handler.NewNoteHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				janitor.NewJanitor,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
