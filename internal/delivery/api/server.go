package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"hdnotes/config"
	"hdnotes/internal/delivery"
	apimiddleware "hdnotes/internal/delivery/api/middleware"
	"hdnotes/internal/delivery/api/router"
	"hdnotes/internal/delivery/api/validator"
	"hdnotes/internal/delivery/middleware"
	"hdnotes/internal/domain/lifecycle"
	"hdnotes/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

// ServerParams holds dependencies for HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	RouterParams router.RouterParams
}

// httpServer is the notes API delivery. It serves HTTP/1.1 and cleartext HTTP/2.
type httpServer struct {
	addr   string
	h2     *http2.Server
	logger *slog.Logger
	e      *echo.Echo
}

// NewServer builds the API delivery and registers its shutdown hook.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv := &httpServer{
		addr:   net.JoinHostPort("0.0.0.0", strconv.Itoa(params.Cfg.HTTP.Port)),
		h2:     &http2.Server{IdleTimeout: params.Cfg.HTTP.Timeouts.IdleTimeout},
		logger: params.Logger,
		e:      newEcho(params.Cfg, params.Logger, params.RouterParams),
	}

	params.Lc.Append(fx.StopHook(srv.shutdown))

	return srv, nil
}

func newEcho(cfg *config.Config, logger *slog.Logger, rp router.RouterParams) *echo.Echo {
	e := echo.New()
	e.HideBanner, e.HidePort = true, true

	timeouts := cfg.HTTP.Timeouts
	e.Server.ReadTimeout = timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = timeouts.WriteTimeout
	e.Server.IdleTimeout = timeouts.IdleTimeout

	// Order matters: the request ID must exist before the access log and
	// metrics see the request; body limits apply last.
	e.Use(
		echomiddleware.Recover(),
		middleware.NewRequestIDMiddleware(logger).Process,
		middleware.NewLoggerMiddleware(logger, cfg).Handle,
		apimiddleware.NewMetricsMiddleware(rp.Metrics).Handle,
		echomiddleware.CORS(),
		echomiddleware.BodyLimit(cfg.HTTP.MaxRequestBodySize),
	)

	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(logger).HandleHTTPError
	e.Validator = validator.New()

	routes := router.NewRouter(rp)
	routes.RegisterRoutes(e)
	routes.RegisterMetricsRoute(e)

	return e
}

func (s *httpServer) Serve(context.Context) error {
	s.logger.Info("HTTP server listening", slog.String("addr", s.addr))

	err := s.e.StartH2CServer(s.addr, s.h2)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}

	return errors.WithStack(err)
}

func (s *httpServer) shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("HTTP server draining")

	return errors.WithStack(s.e.Shutdown(ctx))
}
