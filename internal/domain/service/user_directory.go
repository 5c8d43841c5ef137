package service

import (
	"context"

	"kalado/internal/domain/entity"
)

// UserDirectory is the client-side view of the user profile service. The
// auth flow calls it after registration to create the matching profile, and
// the moderation flow calls it to block users.
type UserDirectory interface {
	// GetProfile fetches the profile of a user.
	GetProfile(ctx context.Context, userID int64) (*entity.Profile, error)

	// CreateUserProfile creates the directory entry for a new user.
	CreateUserProfile(ctx context.Context, profile *entity.Profile) error

	// CreateAdminProfile creates the directory entry for a new admin.
	CreateAdminProfile(ctx context.Context, profile *entity.AdminProfile) error

	// BlockUser marks a user as blocked in the directory.
	BlockUser(ctx context.Context, userID int64) error
}
