package mail

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"mime"
	"mime/multipart"
	netmail "net/mail"
	"testing"
	"time"

	"hdnotes/config"

	gomail "github.com/go-mail/mail"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingDialer struct {
	messages []*gomail.Message
	err      error
}

func (d *recordingDialer) DialAndSend(m ...*gomail.Message) error {
	d.messages = append(d.messages, m...)

	return d.err
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Mail: &config.MailConfig{
			Host:    "smtp.example.com",
			Port:    587,
			From:    "noreply@hdnotes.test",
			TLSMode: TLSModeAuto,
			AppName: "HD Notes",
		},
		Auth: &config.AuthConfig{OTPTTL: 10 * time.Minute},
	}

	return cfg
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// decodedParts renders msg and returns each alternative body keyed by media
// type, with the transfer encoding removed.
func decodedParts(t *testing.T, msg *gomail.Message) map[string]string {
	t.Helper()

	var raw bytes.Buffer
	_, err := msg.WriteTo(&raw)
	require.NoError(t, err)

	parsed, err := netmail.ReadMessage(&raw)
	require.NoError(t, err)

	mediaType, params, err := mime.ParseMediaType(parsed.Header.Get("Content-Type"))
	require.NoError(t, err)
	require.Equal(t, "multipart/alternative", mediaType)

	parts := make(map[string]string)
	reader := multipart.NewReader(parsed.Body, params["boundary"])
	for {
		part, err := reader.NextPart()
		if errors.Is(err, io.EOF) {
			return parts
		}
		require.NoError(t, err)

		body, err := io.ReadAll(part)
		require.NoError(t, err)

		partType, _, err := mime.ParseMediaType(part.Header.Get("Content-Type"))
		require.NoError(t, err)
		parts[partType] = string(body)
	}
}

func TestOTPMailer_SendOTP(t *testing.T) {
	d := &recordingDialer{}
	mailer := newOTPMailer(newTestConfig(), d, discardLogger())

	err := mailer.SendOTP(context.Background(), "alice@x.com", "482913", "Alice")
	require.NoError(t, err)
	require.Len(t, d.messages, 1)

	msg := d.messages[0]
	assert.Equal(t, []string{"alice@x.com"}, msg.GetHeader("To"))
	assert.Equal(t, []string{"noreply@hdnotes.test"}, msg.GetHeader("From"))
	assert.Equal(t, []string{"Your HD Notes OTP Code"}, msg.GetHeader("Subject"))

	parts := decodedParts(t, msg)

	html := parts["text/html"]
	assert.Contains(t, html, "482913")
	assert.Contains(t, html, "Hello Alice!")
	assert.Contains(t, html, "expire in 10 minutes")

	plain := parts["text/plain"]
	assert.Contains(t, plain, "482913")
	assert.Contains(t, plain, "expires in 10 minutes")
}

func TestOTPMailer_LogsMaskedRecipient(t *testing.T) {
	var logs bytes.Buffer
	d := &recordingDialer{err: errors.New("connection refused")}
	mailer := newOTPMailer(newTestConfig(), d, slog.New(slog.NewTextHandler(&logs, nil)))

	require.Error(t, mailer.SendOTP(context.Background(), "alice@x.com", "482913", "Alice"))

	assert.Contains(t, logs.String(), "to=a***@x.com")
	assert.NotContains(t, logs.String(), "alice@x.com")
	assert.NotContains(t, logs.String(), "482913")
}

func TestMaskEmail(t *testing.T) {
	assert.Equal(t, "b***@example.org", maskEmail("bob@example.org"))
	assert.Equal(t, "***", maskEmail("not-an-address"))
	assert.Equal(t, "***", maskEmail("@example.org"))
}

func TestOTPMailer_EscapesName(t *testing.T) {
	d := &recordingDialer{}
	mailer := newOTPMailer(newTestConfig(), d, discardLogger())

	require.NoError(t, mailer.SendOTP(context.Background(), "mallory@x.com", "000000", "<script>"))

	html := decodedParts(t, d.messages[0])["text/html"]
	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;")
}

func TestOTPMailer_DeliveryFailure(t *testing.T) {
	d := &recordingDialer{err: errors.New("connection refused")}
	mailer := newOTPMailer(newTestConfig(), d, discardLogger())

	err := mailer.SendOTP(context.Background(), "alice@x.com", "482913", "Alice")
	assert.Error(t, err)
}

func TestOTPMailer_CanceledContext(t *testing.T) {
	d := &recordingDialer{}
	mailer := newOTPMailer(newTestConfig(), d, discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := mailer.SendOTP(ctx, "alice@x.com", "482913", "Alice")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, d.messages)
}

func TestNewDialer_TLSModes(t *testing.T) {
	cfg := newTestConfig().Mail

	cfg.TLSMode = TLSModeSSL
	d, err := newDialer(cfg)
	require.NoError(t, err)
	assert.True(t, d.SSL)

	cfg.TLSMode = TLSModeStartTLS
	d, err = newDialer(cfg)
	require.NoError(t, err)
	assert.Equal(t, gomail.MandatoryStartTLS, d.StartTLSPolicy)

	cfg.TLSMode = "bogus"
	_, err = newDialer(cfg)
	assert.Error(t, err)
}

func TestNewOTPMailer_RequiresHostAndSender(t *testing.T) {
	cfg := newTestConfig()
	cfg.Mail.Host = ""
	_, err := NewOTPMailer(cfg, discardLogger())
	assert.Error(t, err)

	cfg = newTestConfig()
	cfg.Mail.From = ""
	_, err = NewOTPMailer(cfg, discardLogger())
	assert.Error(t, err)
}
