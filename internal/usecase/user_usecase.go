package usecase

import (
	"context"

	"kalado/internal/domain/entity"
)

// UpdateProfileInput defines an edit to the caller's own profile.
type UpdateProfileInput struct {
	UserID      int64
	FirstName   string
	LastName    string
	PhoneNumber string
	Address     string
}

// UserUsecase defines the interface for user directory operations.
type UserUsecase interface {
	// GetProfile returns a user's profile.
	GetProfile(ctx context.Context, userID int64) (*entity.Profile, error)

	// UpdateProfile edits the caller's own profile.
	UpdateProfile(ctx context.Context, input UpdateProfileInput) (*entity.Profile, error)

	// BlockUser marks a user as blocked. Blocked users cannot log in.
	BlockUser(ctx context.Context, userID int64) error
}
