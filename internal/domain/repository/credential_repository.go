// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"kalado/internal/domain/entity"
)

// ErrCredentialNotFound is a domain-specific error returned when a credential is not found.
var ErrCredentialNotFound = errors.New("credential not found")

// CredentialRepository defines the standard operations for credential persistence.
// The application layer will depend on this interface, not the concrete implementation.
type CredentialRepository interface {
	// FindByID retrieves a single credential by its internal numeric id.
	FindByID(ctx context.Context, id int64) (*entity.Credential, error)

	// FindByUsername retrieves a single credential by its unique username (email).
	FindByUsername(ctx context.Context, username string) (*entity.Credential, error)

	// Create persists a new credential. The generated id is written back to
	// the entity.
	Create(ctx context.Context, credential *entity.Credential) error

	// Update modifies an existing credential (password hash, role, verified flag).
	Update(ctx context.Context, credential *entity.Credential) error
}
