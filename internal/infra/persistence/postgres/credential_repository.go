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

// credentialRepository implements the domain's CredentialRepository interface using GORM.
type credentialRepository struct {
	db *gorm.DB
}

// NewCredentialRepository is the constructor for credentialRepository.
func NewCredentialRepository(db *gorm.DB) repository.CredentialRepository {
	return &credentialRepository{db: db}
}

// FindByID retrieves a single credential by its internal numeric id.
func (repo *credentialRepository) FindByID(ctx context.Context, id int64) (*entity.Credential, error) {
	var data model.CredentialModel
	if err := repo.db.WithContext(ctx).First(&data, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCredentialNotFound
		}

		return nil, errors.Wrap(err, "failed to find credential by id")
	}

	return toCredentialDomain(&data), nil
}

// FindByUsername retrieves a single credential by its unique username.
func (repo *credentialRepository) FindByUsername(ctx context.Context, username string) (*entity.Credential, error) {
	var data model.CredentialModel
	if err := repo.db.WithContext(ctx).Where("username = ?", username).First(&data).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCredentialNotFound
		}

		return nil, errors.Wrap(err, "failed to find credential by username")
	}

	return toCredentialDomain(&data), nil
}

// Create persists a new credential and writes back the generated id.
func (repo *credentialRepository) Create(ctx context.Context, credential *entity.Credential) error {
	data := fromCredentialDomain(credential)

	if err := repo.db.WithContext(ctx).Create(data).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("缺少必要的帳號欄位")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create credential")
	}

	credential.ID = data.ID
	credential.CreatedAt = data.CreatedAt
	credential.UpdatedAt = data.UpdatedAt

	return nil
}

// Update modifies an existing credential.
func (repo *credentialRepository) Update(ctx context.Context, credential *entity.Credential) error {
	data := fromCredentialDomain(credential)

	if err := repo.db.WithContext(ctx).Save(data).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update credential")
	}

	credential.UpdatedAt = data.UpdatedAt

	return nil
}

// --- Mapper Functions ---

func toCredentialDomain(data *model.CredentialModel) *entity.Credential {
	if data == nil {
		return nil
	}

	return &entity.Credential{
		ID:            data.ID,
		Username:      data.Username,
		PasswordHash:  data.PasswordHash,
		Role:          entity.Role(data.Role),
		EmailVerified: data.EmailVerified,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func fromCredentialDomain(data *entity.Credential) *model.CredentialModel {
	if data == nil {
		return nil
	}

	return &model.CredentialModel{
		ID:            data.ID,
		Username:      data.Username,
		PasswordHash:  data.PasswordHash,
		Role:          data.Role.String(),
		EmailVerified: data.EmailVerified,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
