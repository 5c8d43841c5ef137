package repository

import (
	"context"
	"errors"

	"kalado/internal/domain/entity"
)

// ErrProfileNotFound is a domain-specific error returned when a profile is not found.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository defines the operations for the user directory data.
type ProfileRepository interface {
	// FindByUserID retrieves a user profile by the owning credential id.
	FindByUserID(ctx context.Context, userID int64) (*entity.Profile, error)

	// Create persists a new user profile.
	Create(ctx context.Context, profile *entity.Profile) error

	// Update modifies an existing user profile, including the blocked flag.
	Update(ctx context.Context, profile *entity.Profile) error

	// CreateAdmin persists a new admin profile.
	CreateAdmin(ctx context.Context, profile *entity.AdminProfile) error

	// FindAdminByUserID retrieves an admin profile by the owning credential id.
	FindAdminByUserID(ctx context.Context, userID int64) (*entity.AdminProfile, error)
}
