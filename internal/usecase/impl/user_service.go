package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "kalado/internal/delivery/context"
	"kalado/internal/domain/entity"
	domainerrors "kalado/internal/domain/errors"
	"kalado/internal/domain/repository"
	"kalado/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager   repository.TransactionManager
	profileRepo repository.ProfileRepository
	logger      *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ProfileRepo repository.ProfileRepository
	Logger      *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:   params.TxManager,
		profileRepo: params.ProfileRepo,
		logger:      params.Logger,
	}
}

func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile returns a user's profile.
func (srv *userService) GetProfile(ctx context.Context, userID int64) (*entity.Profile, error) {
	profile, err := srv.profileRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile")
	}

	return profile, nil
}

// UpdateProfile edits the caller's own profile.
func (srv *userService) UpdateProfile(ctx context.Context, input usecase.UpdateProfileInput) (*entity.Profile, error) {
	var updated *entity.Profile
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.ProfileRepo()

		profile, err := profileRepo.FindByUserID(ctx, input.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrProfileNotFound) {
				return domainerrors.ErrNotFound
			}

			return errors.Wrap(err, "failed to find profile")
		}

		profile.FirstName = input.FirstName
		profile.LastName = input.LastName
		profile.PhoneNumber = input.PhoneNumber
		profile.Address = input.Address
		profile.UpdatedAt = time.Now()

		if err := profileRepo.Update(ctx, profile); err != nil {
			return errors.Wrap(err, "failed to update profile")
		}

		updated = profile

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to update profile", slog.Int64("userID", input.UserID), slog.Any("error", err))

		return nil, err
	}

	return updated, nil
}

// BlockUser marks a user as blocked. Blocked users fail the login check.
func (srv *userService) BlockUser(ctx context.Context, userID int64) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.ProfileRepo()

		profile, err := profileRepo.FindByUserID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrProfileNotFound) {
				return domainerrors.ErrNotFound
			}

			return errors.Wrap(err, "failed to find profile")
		}

		if profile.Blocked {
			return nil
		}

		profile.Blocked = true
		profile.UpdatedAt = time.Now()

		return profileRepo.Update(ctx, profile)
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("User blocked", slog.Int64("userID", userID))

	return nil
}
