// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"hdnotes/config"
	"hdnotes/internal/delivery/api/middleware"
	"hdnotes/internal/delivery/api/router/handler"
	"hdnotes/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds the handlers and middleware the route table needs, injected by Fx.
type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	ProfileHandler      *handler.ProfileHandler
	NoteHandler         *handler.NoteHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RateLimitMiddleware *middleware.RateLimitMiddleware
	Metrics             *metrics.Metrics `optional:"true"`
	Config              *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler         *handler.AuthHandler
	profileHandler      *handler.ProfileHandler
	noteHandler         *handler.NoteHandler
	authMiddleware      *middleware.AuthMiddleware
	rateLimitMiddleware *middleware.RateLimitMiddleware
	metrics             *metrics.Metrics
	config              *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:         params.AuthHandler,
		profileHandler:      params.ProfileHandler,
		noteHandler:         params.NoteHandler,
		authMiddleware:      params.AuthMiddleware,
		rateLimitMiddleware: params.RateLimitMiddleware,
		metrics:             params.Metrics,
		config:              params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	otpLimit := r.rateLimitMiddleware.OTP()
	signinLimit := r.rateLimitMiddleware.Signin()

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/signup", r.authHandler.Signup, otpLimit)
		authGroup.POST("/verify-signup", r.authHandler.VerifySignup, otpLimit)
		authGroup.POST("/request-signin-otp", r.authHandler.RequestSigninOTP, otpLimit)
		authGroup.POST("/signin", r.authHandler.Signin, signinLimit)
		authGroup.POST("/refresh-token", r.authHandler.RefreshToken)
		authGroup.POST("/logout", r.authHandler.Logout)
	}

	userGroup := e.Group("/user")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/profile", r.profileHandler.GetProfile)
		userGroup.PUT("/profile", r.profileHandler.UpdateProfile)
		userGroup.DELETE("/account", r.profileHandler.DeleteAccount)
		userGroup.POST("/logout-all", r.profileHandler.LogoutAll)
	}

	notesGroup := e.Group("/notes")
	notesGroup.Use(r.authMiddleware.Authenticate)
	{
		notesGroup.GET("", r.noteHandler.ListNotes)
		notesGroup.POST("", r.noteHandler.CreateNote)
		notesGroup.GET("/:id", r.noteHandler.GetNote)
		notesGroup.PUT("/:id", r.noteHandler.UpdateNote)
		notesGroup.DELETE("/:id", r.noteHandler.DeleteNote)
	}
}

// RegisterMetricsRoute exposes the Prometheus registry when metrics are enabled.
func (r *router) RegisterMetricsRoute(e *echo.Echo) {
	if r.metrics == nil {
		return
	}

	e.GET(r.config.Metrics.Path, echo.WrapHandler(r.metrics.Handler()))
}
