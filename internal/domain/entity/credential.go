// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// Credential represents a single login identity. The username is the user's
// email address and is unique across the system. A credential always carries
// exactly one role.
type Credential struct {
	ID            int64     // The internal numeric identifier, also used as the subject id in tokens.
	Username      string    // The user's email address, unique login identifier.
	PasswordHash  string    // Stores the bcrypt-hashed password.
	Role          Role      // The single authorization role held by this credential.
	EmailVerified bool      // Whether the email verification flow has been completed.
	CreatedAt     time.Time // Timestamp of when this credential was created.
	UpdatedAt     time.Time // Timestamp of the last modification.
}

// VerificationToken is a single-use, time-bounded token mailed to a user to
// confirm ownership of their email address. Creating a new one replaces any
// prior token for the same credential.
type VerificationToken struct {
	ID           int64
	CredentialID int64
	Token        string
	ExpiresAt    time.Time
	CreatedAt    time.Time
}

// PasswordResetToken is a single-use, time-bounded token mailed to a user to
// authorize a password reset. Creating a new one replaces any prior token
// for the same credential.
type PasswordResetToken struct {
	ID           int64
	CredentialID int64
	Token        string
	ExpiresAt    time.Time
	CreatedAt    time.Time
}

// Expired reports whether the verification token is past its expiry.
func (t *VerificationToken) Expired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}

// Expired reports whether the reset token is past its expiry.
func (t *PasswordResetToken) Expired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}
