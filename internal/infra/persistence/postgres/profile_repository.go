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

// profileRepository implements the domain's ProfileRepository interface using GORM.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

// FindByUserID retrieves a user profile by the owning credential id.
func (repo *profileRepository) FindByUserID(ctx context.Context, userID int64) (*entity.Profile, error) {
	var data model.ProfileModel
	if err := repo.db.WithContext(ctx).Where("user_id = ?", userID).First(&data).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile")
	}

	return toProfileDomain(&data), nil
}

// Create persists a new user profile.
func (repo *profileRepository) Create(ctx context.Context, profile *entity.Profile) error {
	data := fromProfileDomain(profile)

	if err := repo.db.WithContext(ctx).Create(data).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("個人資料已存在")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create profile")
	}

	profile.UpdatedAt = data.UpdatedAt

	return nil
}

// Update modifies an existing user profile.
func (repo *profileRepository) Update(ctx context.Context, profile *entity.Profile) error {
	data := fromProfileDomain(profile)

	if err := repo.db.WithContext(ctx).Save(data).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update profile")
	}

	profile.UpdatedAt = data.UpdatedAt

	return nil
}

// CreateAdmin persists a new admin profile.
func (repo *profileRepository) CreateAdmin(ctx context.Context, profile *entity.AdminProfile) error {
	data := &model.AdminProfileModel{
		UserID:      profile.UserID,
		FirstName:   profile.FirstName,
		LastName:    profile.LastName,
		PhoneNumber: profile.PhoneNumber,
	}

	if err := repo.db.WithContext(ctx).Create(data).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("管理員資料已存在")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create admin profile")
	}

	profile.UpdatedAt = data.UpdatedAt

	return nil
}

// FindAdminByUserID retrieves an admin profile by the owning credential id.
func (repo *profileRepository) FindAdminByUserID(ctx context.Context, userID int64) (*entity.AdminProfile, error) {
	var data model.AdminProfileModel
	if err := repo.db.WithContext(ctx).Where("user_id = ?", userID).First(&data).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find admin profile")
	}

	return &entity.AdminProfile{
		UserID:      data.UserID,
		FirstName:   data.FirstName,
		LastName:    data.LastName,
		PhoneNumber: data.PhoneNumber,
		UpdatedAt:   data.UpdatedAt,
	}, nil
}

// --- Mapper Functions ---

func toProfileDomain(data *model.ProfileModel) *entity.Profile {
	if data == nil {
		return nil
	}

	return &entity.Profile{
		UserID:      data.UserID,
		Username:    data.Username,
		FirstName:   data.FirstName,
		LastName:    data.LastName,
		PhoneNumber: data.PhoneNumber,
		Address:     data.Address,
		Blocked:     data.Blocked,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromProfileDomain(data *entity.Profile) *model.ProfileModel {
	if data == nil {
		return nil
	}

	return &model.ProfileModel{
		UserID:      data.UserID,
		Username:    data.Username,
		FirstName:   data.FirstName,
		LastName:    data.LastName,
		PhoneNumber: data.PhoneNumber,
		Address:     data.Address,
		Blocked:     data.Blocked,
		UpdatedAt:   data.UpdatedAt,
	}
}
