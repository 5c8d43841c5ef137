package usecase

import "context"

// VerificationUsecase drives the email verification flow. Registration
// triggers the first mail; the link in the mail carries the opaque token.
type VerificationUsecase interface {
	// SendVerification issues a fresh token for the account and mails it.
	// Any previous token for the account stops working.
	SendVerification(ctx context.Context, username string) error

	// VerifyEmail consumes a token and marks the account verified. Expired
	// or unknown tokens are rejected.
	VerifyEmail(ctx context.Context, token string) error
}
