// Package model contains the GORM persistence models that mirror the
// database tables. Mapping to and from domain entities happens in the
// repository layer so the entities stay free of persistence tags.
package model

import "time"

// CredentialModel mirrors the 'credentials' table.
type CredentialModel struct {
	ID            int64  `gorm:"primaryKey;autoIncrement"`
	Username      string `gorm:"type:varchar(255);unique;not null"`
	PasswordHash  string `gorm:"type:varchar(255);not null"`
	Role          string `gorm:"type:varchar(16);not null"`
	EmailVerified bool   `gorm:"not null;default:false"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (CredentialModel) TableName() string {
	return "credentials"
}

// VerificationTokenModel mirrors the 'verification_tokens' table. A
// credential holds at most one row at a time.
type VerificationTokenModel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	CredentialID int64  `gorm:"not null;uniqueIndex"`
	Token        string `gorm:"type:varchar(64);unique;not null"`
	ExpiresAt    time.Time
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (VerificationTokenModel) TableName() string {
	return "verification_tokens"
}

// PasswordResetTokenModel mirrors the 'password_reset_tokens' table.
type PasswordResetTokenModel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	CredentialID int64  `gorm:"not null;uniqueIndex"`
	Token        string `gorm:"type:varchar(64);unique;not null"`
	ExpiresAt    time.Time
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (PasswordResetTokenModel) TableName() string {
	return "password_reset_tokens"
}
