package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "kalado/internal/delivery/context"
	"kalado/internal/domain/entity"
	domainerrors "kalado/internal/domain/errors"
	"kalado/internal/domain/repository"
	"kalado/internal/domain/service"
	"kalado/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// resetTokenTTL is how long a password reset link stays usable.
const resetTokenTTL = 24 * time.Hour

// passwordResetService implements the PasswordResetUsecase interface.
type passwordResetService struct {
	txManager      repository.TransactionManager
	credentialRepo repository.CredentialRepository
	hasher         service.PasswordHasher
	tokenService   service.TokenService
	mailer         service.Mailer
	logger         *slog.Logger
}

// PasswordResetServiceParams holds dependencies for PasswordResetService, injected by Fx.
type PasswordResetServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	CredentialRepo repository.CredentialRepository
	Hasher         service.PasswordHasher
	TokenService   service.TokenService
	Mailer         service.Mailer
	Logger         *slog.Logger
}

// NewPasswordResetService is the constructor for passwordResetService.
func NewPasswordResetService(params PasswordResetServiceParams) usecase.PasswordResetUsecase {
	return &passwordResetService{
		txManager:      params.TxManager,
		credentialRepo: params.CredentialRepo,
		hasher:         params.Hasher,
		tokenService:   params.TokenService,
		mailer:         params.Mailer,
		logger:         params.Logger,
	}
}

func (srv *passwordResetService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RequestReset issues a reset token and mails it. Unknown usernames succeed
// silently so the endpoint does not reveal which accounts exist.
func (srv *passwordResetService) RequestReset(ctx context.Context, username string) error {
	credential, err := srv.credentialRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrCredentialNotFound) {
			srv.log(ctx).Debug("Password reset requested for unknown username")

			return nil
		}

		return errors.Wrap(err, "failed to find credential")
	}

	token := &entity.PasswordResetToken{
		CredentialID: credential.ID,
		Token:        uuid.New().String(),
		ExpiresAt:    time.Now().Add(resetTokenTTL),
		CreatedAt:    time.Now(),
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.PasswordResetTokenRepo().Replace(ctx, token)
	})
	if err != nil {
		return errors.Wrap(err, "failed to store reset token")
	}

	if err := srv.mailer.SendPasswordResetMail(ctx, credential.Username, token.Token); err != nil {
		srv.log(ctx).Error("Failed to send password reset mail", slog.Int64("userID", credential.ID), slog.Any("error", err))

		return errors.Wrap(domainerrors.ErrInternalError, "failed to send password reset mail")
	}

	srv.log(ctx).Info("Password reset mail sent", slog.Int64("userID", credential.ID))

	return nil
}

// ResetPassword consumes a token, sets the new password and revokes every
// live token of the account.
func (srv *passwordResetService) ResetPassword(ctx context.Context, token string, newPassword string) error {
	hashedPassword, err := srv.hasher.Hash(newPassword)
	if err != nil {
		return errors.Wrap(domainerrors.ErrInternalError, "failed to hash password")
	}

	var userID int64
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		tokenRepo := repoFactory.PasswordResetTokenRepo()
		credentialRepo := repoFactory.CredentialRepo()

		stored, err := tokenRepo.FindByToken(ctx, token)
		if err != nil {
			if errors.Is(err, repository.ErrResetTokenNotFound) {
				return domainerrors.ErrInvalidToken
			}

			return errors.Wrap(err, "failed to find reset token")
		}

		if stored.Expired(time.Now()) {
			if err := tokenRepo.Delete(ctx, stored.ID); err != nil {
				return errors.Wrap(err, "failed to delete expired reset token")
			}

			return domainerrors.ErrInvalidToken.WrapMessage("重設連結已過期")
		}

		credential, err := credentialRepo.FindByID(ctx, stored.CredentialID)
		if err != nil {
			return errors.Wrap(err, "failed to find credential for reset token")
		}

		credential.PasswordHash = hashedPassword
		credential.UpdatedAt = time.Now()
		if err := credentialRepo.Update(ctx, credential); err != nil {
			return errors.Wrap(err, "failed to update password")
		}

		userID = credential.ID

		return tokenRepo.Delete(ctx, stored.ID)
	})
	if err != nil {
		return err
	}

	revoked, err := srv.tokenService.RevokeAllForSubject(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to revoke tokens after password reset", slog.Int64("userID", userID), slog.Any("error", err))

		return errors.Wrap(err, "failed to revoke tokens after password reset")
	}

	srv.log(ctx).Info("Password reset completed", slog.Int64("userID", userID), slog.Int("revokedTokens", revoked))

	return nil
}
