package postgres

import (
	"context"

	"kalado/internal/domain/entity"
	domainerrors "kalado/internal/domain/errors"
	"kalado/internal/domain/repository"
	"kalado/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// verificationTokenRepository implements the domain's VerificationTokenRepository using GORM.
type verificationTokenRepository struct {
	db *gorm.DB
}

// NewVerificationTokenRepository is the constructor for verificationTokenRepository.
func NewVerificationTokenRepository(db *gorm.DB) repository.VerificationTokenRepository {
	return &verificationTokenRepository{db: db}
}

// Replace deletes any token for the credential and persists the new one.
func (repo *verificationTokenRepository) Replace(ctx context.Context, token *entity.VerificationToken) error {
	tx := repo.db.WithContext(ctx)

	if err := tx.Where("credential_id = ?", token.CredentialID).
		Delete(&model.VerificationTokenModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete previous verification token")
	}

	data := &model.VerificationTokenModel{
		CredentialID: token.CredentialID,
		Token:        token.Token,
		ExpiresAt:    token.ExpiresAt,
		CreatedAt:    token.CreatedAt,
	}
	if err := tx.Create(data).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create verification token")
	}

	token.ID = data.ID

	return nil
}

// FindByToken retrieves a verification token by its opaque value.
func (repo *verificationTokenRepository) FindByToken(ctx context.Context, token string) (*entity.VerificationToken, error) {
	var data model.VerificationTokenModel
	if err := repo.db.WithContext(ctx).Where("token = ?", token).First(&data).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVerificationTokenNotFound
		}

		return nil, errors.Wrap(err, "failed to find verification token")
	}

	return toVerificationTokenDomain(&data), nil
}

// FindByCredentialID retrieves the live token for a credential.
func (repo *verificationTokenRepository) FindByCredentialID(ctx context.Context, credentialID int64) (*entity.VerificationToken, error) {
	var data model.VerificationTokenModel
	if err := repo.db.WithContext(ctx).Where("credential_id = ?", credentialID).First(&data).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVerificationTokenNotFound
		}

		return nil, errors.Wrap(err, "failed to find verification token by credential")
	}

	return toVerificationTokenDomain(&data), nil
}

// Delete removes a token by id, consuming it.
func (repo *verificationTokenRepository) Delete(ctx context.Context, id int64) error {
	if err := repo.db.WithContext(ctx).Delete(&model.VerificationTokenModel{}, id).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete verification token")
	}

	return nil
}

func toVerificationTokenDomain(data *model.VerificationTokenModel) *entity.VerificationToken {
	return &entity.VerificationToken{
		ID:           data.ID,
		CredentialID: data.CredentialID,
		Token:        data.Token,
		ExpiresAt:    data.ExpiresAt,
		CreatedAt:    data.CreatedAt,
	}
}

// passwordResetTokenRepository implements the domain's PasswordResetTokenRepository using GORM.
type passwordResetTokenRepository struct {
	db *gorm.DB
}

// NewPasswordResetTokenRepository is the constructor for passwordResetTokenRepository.
func NewPasswordResetTokenRepository(db *gorm.DB) repository.PasswordResetTokenRepository {
	return &passwordResetTokenRepository{db: db}
}

// Replace deletes any token for the credential and persists the new one.
func (repo *passwordResetTokenRepository) Replace(ctx context.Context, token *entity.PasswordResetToken) error {
	tx := repo.db.WithContext(ctx)

	if err := tx.Where("credential_id = ?", token.CredentialID).
		Delete(&model.PasswordResetTokenModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete previous reset token")
	}

	data := &model.PasswordResetTokenModel{
		CredentialID: token.CredentialID,
		Token:        token.Token,
		ExpiresAt:    token.ExpiresAt,
		CreatedAt:    token.CreatedAt,
	}
	if err := tx.Create(data).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create reset token")
	}

	token.ID = data.ID

	return nil
}

// FindByToken retrieves a reset token by its opaque value.
func (repo *passwordResetTokenRepository) FindByToken(ctx context.Context, token string) (*entity.PasswordResetToken, error) {
	var data model.PasswordResetTokenModel
	if err := repo.db.WithContext(ctx).Where("token = ?", token).First(&data).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrResetTokenNotFound
		}

		return nil, errors.Wrap(err, "failed to find reset token")
	}

	return &entity.PasswordResetToken{
		ID:           data.ID,
		CredentialID: data.CredentialID,
		Token:        data.Token,
		ExpiresAt:    data.ExpiresAt,
		CreatedAt:    data.CreatedAt,
	}, nil
}

// Delete removes a token by id, consuming it.
func (repo *passwordResetTokenRepository) Delete(ctx context.Context, id int64) error {
	if err := repo.db.WithContext(ctx).Delete(&model.PasswordResetTokenModel{}, id).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete reset token")
	}

	return nil
}
