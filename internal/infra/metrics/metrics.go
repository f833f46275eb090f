// Package metrics exposes Prometheus instrumentation for the API and the auth flows.
package metrics

import (
	"context"
	"database/sql"
	"net/http"
	"strconv"
	"time"

	"hdnotes/config"
	"hdnotes/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "hdnotes"

// Auth event outcomes.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// Metrics owns a private registry so tests and multiple apps never collide.
type Metrics struct {
	registry *prometheus.Registry

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	authEventsTotal     *prometheus.CounterVec
	otpDeliveriesTotal  *prometheus.CounterVec
}

// New creates the collectors and registers them with a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests processed.",
		}, []string{"method", "route", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		authEventsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "auth_events_total",
			Help:      "Authentication events by kind and outcome.",
		}, []string{"event", "outcome"}),
		otpDeliveriesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "otp_deliveries_total",
			Help:      "OTP email delivery attempts by outcome.",
		}, []string{"outcome"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.authEventsTotal,
		m.otpDeliveriesTotal,
	)

	return m
}

// NewFromConfig returns nil when metrics are disabled.
func NewFromConfig(cfg *config.Config) *Metrics {
	if !cfg.Metrics.Enabled {
		return nil
	}

	return New()
}

// Registry exposes the underlying registry, mostly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the exposition format for this registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// RegisterDBStats adds connection pool gauges for the given database handle.
func (m *Metrics) RegisterDBStats(db *sql.DB) error {
	if m == nil {
		return nil
	}

	return m.registry.Register(collectors.NewDBStatsCollector(db, namespace))
}

// ObserveHTTPRequest records one finished request. route must be the route template, not the raw path.
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}

	m.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ObserveAuthEvent counts a signup, verification, signin, refresh or logout result.
func (m *Metrics) ObserveAuthEvent(event string, err error) {
	if m == nil {
		return
	}

	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeFailure
	}
	m.authEventsTotal.WithLabelValues(event, outcome).Inc()
}

// InstrumentMailer counts delivery outcomes of the wrapped mailer.
func (m *Metrics) InstrumentMailer(next service.OTPMailer) service.OTPMailer {
	if m == nil {
		return next
	}

	return &instrumentedMailer{next: next, deliveries: m.otpDeliveriesTotal}
}

type instrumentedMailer struct {
	next       service.OTPMailer
	deliveries *prometheus.CounterVec
}

func (im *instrumentedMailer) SendOTP(ctx context.Context, email, code, name string) error {
	err := im.next.SendOTP(ctx, email, code, name)
	if err != nil {
		im.deliveries.WithLabelValues(OutcomeFailure).Inc()

		return err
	}
	im.deliveries.WithLabelValues(OutcomeSuccess).Inc()

	return nil
}
