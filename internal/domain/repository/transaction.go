package repository

import "context"

// RepositoryFactory provides repositories bound to a single transaction.
// All repositories obtained from one factory share the same transaction scope.
type RepositoryFactory interface {
	CredentialRepo() CredentialRepository
	VerificationTokenRepo() VerificationTokenRepository
	PasswordResetTokenRepo() PasswordResetTokenRepository
	ProductRepo() ProductRepository
	ProfileRepo() ProfileRepository
	ReportRepo() ReportRepository
}

// TransactionManager defines the interface for managing database transactions.
type TransactionManager interface {
	// Execute runs the given function within a transaction. The transaction
	// commits when fn returns nil and rolls back when it returns an error.
	Execute(ctx context.Context, fn func(factory RepositoryFactory) error) error
}
