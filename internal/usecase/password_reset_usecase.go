package usecase

import "context"

// PasswordResetUsecase drives the forgot-password flow.
type PasswordResetUsecase interface {
	// RequestReset issues a reset token and mails it. Unknown usernames
	// succeed silently so the endpoint does not leak which accounts exist.
	RequestReset(ctx context.Context, username string) error

	// ResetPassword consumes a token, sets the new password and revokes
	// every live token of the account.
	ResetPassword(ctx context.Context, token string, newPassword string) error
}
