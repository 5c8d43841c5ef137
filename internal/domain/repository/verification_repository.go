package repository

import (
	"context"
	"errors"

	"kalado/internal/domain/entity"
)

// Domain-specific errors for one-shot token persistence.
var (
	// ErrVerificationTokenNotFound is returned when a verification token is not found.
	ErrVerificationTokenNotFound = errors.New("verification token not found")
	// ErrResetTokenNotFound is returned when a password reset token is not found.
	ErrResetTokenNotFound = errors.New("password reset token not found")
)

// VerificationTokenRepository manages the single-use email verification
// tokens. A credential has at most one live token; Replace removes any
// existing token before storing the new one.
type VerificationTokenRepository interface {
	// Replace deletes any token for the credential and persists the new one.
	Replace(ctx context.Context, token *entity.VerificationToken) error

	// FindByToken retrieves a verification token by its opaque value.
	FindByToken(ctx context.Context, token string) (*entity.VerificationToken, error)

	// FindByCredentialID retrieves the live token for a credential.
	FindByCredentialID(ctx context.Context, credentialID int64) (*entity.VerificationToken, error)

	// Delete removes a token by id, consuming it.
	Delete(ctx context.Context, id int64) error
}

// PasswordResetTokenRepository manages the single-use password reset tokens
// with the same replace-on-create semantics.
type PasswordResetTokenRepository interface {
	// Replace deletes any token for the credential and persists the new one.
	Replace(ctx context.Context, token *entity.PasswordResetToken) error

	// FindByToken retrieves a reset token by its opaque value.
	FindByToken(ctx context.Context, token string) (*entity.PasswordResetToken, error)

	// Delete removes a token by id, consuming it.
	Delete(ctx context.Context, id int64) error
}
