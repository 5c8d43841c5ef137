// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"kalado/internal/domain/entity"
	"kalado/internal/domain/service"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Username  string
	Password  string
	FirstName string
	LastName  string
	Phone     string
	// Role is the role the caller asks for. ADMIN and GOD require the
	// username to be on the corresponding allow-list.
	Role entity.Role
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Username string
	Password string
}

// UpdateRoleInput defines a role change request issued by a privileged caller.
type UpdateRoleInput struct {
	// ActorID is the credential performing the change.
	ActorID int64
	// TargetID is the credential being changed.
	TargetID int64
	// NewRole is the role to assign.
	NewRole entity.Role
}

// UpdatePasswordInput defines an authenticated password change.
type UpdatePasswordInput struct {
	UserID      int64
	OldPassword string
	NewPassword string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created credential's basic information.
type RegisterOutput struct {
	UserID   int64
	Username string
	Role     entity.Role
}

// LoginOutput returns the issued token after a successful login.
type LoginOutput struct {
	Token     string
	UserID    int64
	Role      entity.Role
	ExpiresAt int64
}

// AuthUsecase defines the interface for account and token operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Register creates a credential with the requested role. Privileged
	// roles are granted only to allow-listed usernames.
	Register(ctx context.Context, input RegisterInput) (*RegisterOutput, error)

	// Login verifies the password and issues an access token. Unverified or
	// blocked accounts are rejected before any token is issued.
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)

	// ValidateToken checks a raw token and returns its details when valid.
	ValidateToken(ctx context.Context, token string) (*service.TokenDetails, error)

	// Logout revokes the presented token. Logging out an already revoked
	// token succeeds silently.
	Logout(ctx context.Context, token string) error

	// UpdateUserRole applies a role transition under the GOD-only rules and
	// revokes all of the target's tokens so the change takes effect at once.
	UpdateUserRole(ctx context.Context, input UpdateRoleInput) error

	// UpdatePassword changes the password after verifying the old one and
	// revokes every live token of the user.
	UpdatePassword(ctx context.Context, input UpdatePasswordInput) error

	// GetUsername resolves a credential id to its username.
	GetUsername(ctx context.Context, userID int64) (string, error)
}
