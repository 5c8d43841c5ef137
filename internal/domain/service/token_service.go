// Package service defines domain service interfaces whose implementations
// live in the infrastructure layer.
package service

import (
	"context"

	"kalado/internal/domain/entity"
)

// TokenDetails describes a successfully validated access token.
type TokenDetails struct {
	// Token is the raw signed token string.
	Token string
	// SubjectID is the credential id the token was issued to.
	SubjectID int64
	// Role is the role carried in the token claims at issuance time.
	Role entity.Role
	// ExpiresAt is the unix timestamp the token expires at.
	ExpiresAt int64
}

// TokenService issues and validates access tokens. A token is valid only
// when its signature verifies, it has not expired, and it is still present
// in the revocation store. Removal from the store is the authoritative way
// to revoke a token before its natural expiry.
type TokenService interface {
	// Issue creates a signed token for the subject and records it as live.
	Issue(ctx context.Context, subjectID int64, role entity.Role) (*TokenDetails, error)

	// Validate checks signature, expiry and store presence. It returns the
	// token details on success and a typed error otherwise.
	Validate(ctx context.Context, token string) (*TokenDetails, error)

	// Revoke invalidates a single token. Revoking an unknown token is a no-op.
	Revoke(ctx context.Context, token string) error

	// RevokeAllForSubject invalidates every live token of a subject and
	// returns how many were revoked.
	RevokeAllForSubject(ctx context.Context, subjectID int64) (int, error)
}
