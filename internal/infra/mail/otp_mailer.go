// Package mail delivers one-time codes over SMTP.
package mail

import (
	"bytes"
	"context"
	"crypto/tls"
	"html/template"
	"log/slog"
	"strconv"
	"strings"

	"hdnotes/config"
	deliverycontext "hdnotes/internal/delivery/context"
	"hdnotes/internal/domain/service"

	gomail "github.com/go-mail/mail"
	"github.com/pkg/errors"
)

// TLS modes accepted in mail.tlsMode.
const (
	TLSModeAuto     = "auto"
	TLSModeStartTLS = "starttls"
	TLSModeSSL      = "ssl"
	TLSModeNone     = "none"
)

var otpBodyTemplate = template.Must(template.New("otp").Parse(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <div style="background-color: #367AFF; padding: 20px; text-align: center;">
    <h1 style="color: white; margin: 0;">{{.AppName}}</h1>
  </div>
  <div style="padding: 30px; background-color: #f9f9f9;">
    <h2 style="color: #232323;">Hello {{.Name}}!</h2>
    <p style="color: #666; font-size: 16px;">Your OTP code for {{.AppName}} is:</p>
    <div style="background-color: white; padding: 20px; text-align: center; border: 2px solid #367AFF;">
      <h1 style="color: #367AFF; font-size: 32px; margin: 0; letter-spacing: 5px;">{{.Code}}</h1>
    </div>
    <p style="color: #666; font-size: 14px;">This OTP will expire in {{.ValidMinutes}} minutes. Please do not share this code with anyone.</p>
    <p style="color: #666; font-size: 14px;">If you didn't request this OTP, please ignore this email.</p>
  </div>
</div>`))

// dialer is the part of *gomail.Dialer the mailer needs.
type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

type otpMailer struct {
	from         string
	appName      string
	validMinutes int
	dialer       dialer
	logger       *slog.Logger
}

// NewOTPMailer builds an SMTP mailer from the mail settings.
func NewOTPMailer(cfg *config.Config, logger *slog.Logger) (service.OTPMailer, error) {
	if cfg.Mail.Host == "" {
		return nil, errors.New("mail host must be provided")
	}
	if cfg.Mail.From == "" {
		return nil, errors.New("mail sender address must be provided")
	}

	d, err := newDialer(cfg.Mail)
	if err != nil {
		return nil, err
	}

	return newOTPMailer(cfg, d, logger), nil
}

func newOTPMailer(cfg *config.Config, d dialer, logger *slog.Logger) *otpMailer {
	return &otpMailer{
		from:         cfg.Mail.From,
		appName:      cfg.Mail.AppName,
		validMinutes: int(cfg.Auth.OTPTTL.Minutes()),
		dialer:       d,
		logger:       logger.With(slog.String("component", "otp_mailer")),
	}
}

func newDialer(cfg *config.MailConfig) (*gomail.Dialer, error) {
	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	d.TLSConfig = &tls.Config{
		ServerName:         cfg.Host,
		InsecureSkipVerify: cfg.InsecureSkipVerify, //nolint:gosec // opt-in for local relays
	}

	switch cfg.TLSMode {
	case TLSModeSSL:
		d.SSL = true
	case TLSModeNone:
		d.StartTLSPolicy = gomail.NoStartTLS
	case TLSModeStartTLS:
		d.StartTLSPolicy = gomail.MandatoryStartTLS
	case TLSModeAuto, "":
		// go-mail negotiates STARTTLS when offered
	default:
		return nil, errors.Errorf("unknown mail tls mode %q", cfg.TLSMode)
	}

	return d, nil
}

func (m *otpMailer) SendOTP(ctx context.Context, email, code, name string) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, m.logger)

	msg, err := m.buildMessage(email, code, name)
	if err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	if err := m.dialer.DialAndSend(msg); err != nil {
		logger.Error("smtp send failed", slog.String("to", maskEmail(email)), slog.Any("error", err))

		return errors.Wrap(err, "smtp send")
	}

	logger.Info("otp email sent", slog.String("to", maskEmail(email)))

	return nil
}

func (m *otpMailer) buildMessage(email, code, name string) (*gomail.Message, error) {
	var body bytes.Buffer
	if err := otpBodyTemplate.Execute(&body, map[string]any{
		"AppName":      m.appName,
		"Name":         name,
		"Code":         code,
		"ValidMinutes": m.validMinutes,
	}); err != nil {
		return nil, errors.Wrap(err, "render otp email")
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", email)
	msg.SetHeader("Subject", "Your "+m.appName+" OTP Code")
	msg.SetBody("text/plain", "Your "+m.appName+" OTP code is "+code+". It expires in "+
		strconv.Itoa(m.validMinutes)+" minutes. Do not share it with anyone.")
	msg.AddAlternative("text/html", body.String())

	return msg, nil
}

// maskEmail keeps the first character of the local part and the domain.
func maskEmail(email string) string {
	local, domain, found := strings.Cut(email, "@")
	if !found || local == "" {
		return "***"
	}

	return local[:1] + "***@" + domain
}
