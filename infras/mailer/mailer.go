package mailer

//go:generate go run go.uber.org/mock/mockgen -source=./mailer.go -destination=./mocks/mailer_mock.go -package=mocks

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strings"

	"horizon/config"
	"horizon/infras/otel"

	"github.com/rs/zerolog/log"
)

const otelScopeName = "mailer"

// Mailer delivers transactional mail. Delivery is best effort: callers treat
// a returned error as a warning, never as a reason to roll anything back.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

type smtpMailer struct {
	config  *config.Config
	otel    otel.Otel
	enabled bool
}

func New(cfg *config.Config, ot otel.Otel) Mailer {
	enabled := cfg.SMTP.Enable && cfg.SMTP.Host != "" && cfg.SMTP.Port != ""

	if !enabled {
		log.Warn().Msg("SMTP is not configured, outgoing mail will be dropped")
	}

	return &smtpMailer{
		config:  cfg,
		otel:    ot,
		enabled: enabled,
	}
}

func (m *smtpMailer) Send(ctx context.Context, to, subject, body string) (err error) {
	_, scope := m.otel.NewScope(ctx, otelScopeName, otelScopeName+".Send")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !m.enabled {
		log.Debug().Str("to", to).Str("subject", subject).Msg("Mail dropped, SMTP disabled")

		return nil
	}

	addr := net.JoinHostPort(m.config.SMTP.Host, m.config.SMTP.Port)

	var auth smtp.Auth
	if m.config.SMTP.Username != "" {
		auth = smtp.PlainAuth("", m.config.SMTP.Username, m.config.SMTP.Password, m.config.SMTP.Host)
	}

	msg := buildMessage(m.config.SMTP.From, to, subject, body)

	err = smtp.SendMail(addr, auth, m.config.SMTP.From, []string{to}, msg)
	if err != nil {
		log.Error().Err(err).Str("to", to).Str("subject", subject).Msg("Failed to send mail")

		return fmt.Errorf("failed to send mail: %w", err)
	}

	log.Info().Str("to", to).Str("subject", subject).Msg("Mail sent")

	return nil
}

func buildMessage(from, to, subject, body string) []byte {
	// Header values must not carry CRLF, a crafted subject would otherwise
	// inject extra headers.
	sanitize := func(s string) string {
		s = strings.ReplaceAll(s, "\r", " ")

		return strings.ReplaceAll(s, "\n", " ")
	}

	var sb strings.Builder
	sb.WriteString("From: " + sanitize(from) + "\r\n")
	sb.WriteString("To: " + sanitize(to) + "\r\n")
	sb.WriteString("Subject: " + sanitize(subject) + "\r\n")
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	sb.WriteString("\r\n")
	sb.WriteString(body)

	return []byte(sb.String())
}
