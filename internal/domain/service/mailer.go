package service

import "context"

// Mailer sends transactional mail. Implementations must not block the
// caller on slow SMTP servers beyond the context deadline.
type Mailer interface {
	// SendVerificationMail delivers the email verification link.
	SendVerificationMail(ctx context.Context, to string, token string) error

	// SendPasswordResetMail delivers the password reset link.
	SendPasswordResetMail(ctx context.Context, to string, token string) error
}
