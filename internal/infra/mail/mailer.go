// Package mail sends the transactional mails of the auth flows.
package mail

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"

	"kalado/config"
	"kalado/internal/domain/service"

	"github.com/pkg/errors"
)

// smtpMailer implements the Mailer interface over plain SMTP with AUTH.
type smtpMailer struct {
	addr   string
	auth   smtp.Auth
	from   string
	logger *slog.Logger
}

// noopMailer logs instead of sending. Used when no mail server is
// configured, which keeps local development from needing one.
type noopMailer struct {
	logger *slog.Logger
}

// NewMailer creates a Mailer based on configuration.
func NewMailer(cfg *config.Config, logger *slog.Logger) service.Mailer {
	mailCfg := cfg.Mail
	if mailCfg == nil || mailCfg.Host == "" {
		logger.Info("Mail not configured, using no-op mailer")

		return &noopMailer{logger: logger}
	}

	var auth smtp.Auth
	if mailCfg.Username != "" {
		auth = smtp.PlainAuth("", mailCfg.Username, mailCfg.Password, mailCfg.Host)
	}

	return &smtpMailer{
		addr:   fmt.Sprintf("%s:%d", mailCfg.Host, mailCfg.Port),
		auth:   auth,
		from:   mailCfg.From,
		logger: logger,
	}
}

func (m *smtpMailer) send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nContent-Type: text/plain; charset=UTF-8\r\n\r\n%s\r\n",
		m.from, to, subject, body)

	if err := smtp.SendMail(m.addr, m.auth, m.from, []string{to}, []byte(msg)); err != nil {
		return errors.Wrap(err, "failed to send mail")
	}

	m.logger.Debug("Mail sent", slog.String("subject", subject))

	return nil
}

// SendVerificationMail delivers the email verification link.
func (m *smtpMailer) SendVerificationMail(ctx context.Context, to string, token string) error {
	body := fmt.Sprintf("請點擊以下連結完成信箱驗證：\n\nhttps://kalado.app/verify?token=%s\n\n連結將於 24 小時後失效。", token)

	return m.send(ctx, to, "信箱驗證", body)
}

// SendPasswordResetMail delivers the password reset link.
func (m *smtpMailer) SendPasswordResetMail(ctx context.Context, to string, token string) error {
	body := fmt.Sprintf("請點擊以下連結重設密碼：\n\nhttps://kalado.app/reset-password?token=%s\n\n連結將於 24 小時後失效。", token)

	return m.send(ctx, to, "重設密碼", body)
}

func (m *noopMailer) SendVerificationMail(_ context.Context, to string, _ string) error {
	m.logger.Info("[NoopMail] Skipping verification mail", slog.String("to", to))

	return nil
}

func (m *noopMailer) SendPasswordResetMail(_ context.Context, to string, _ string) error {
	m.logger.Info("[NoopMail] Skipping password reset mail", slog.String("to", to))

	return nil
}
