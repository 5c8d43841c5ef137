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

// verificationTokenTTL is how long an email verification link stays usable.
const verificationTokenTTL = 24 * time.Hour

// verificationService implements the VerificationUsecase interface.
type verificationService struct {
	txManager      repository.TransactionManager
	credentialRepo repository.CredentialRepository
	mailer         service.Mailer
	logger         *slog.Logger
}

// VerificationServiceParams holds dependencies for VerificationService, injected by Fx.
type VerificationServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	CredentialRepo repository.CredentialRepository
	Mailer         service.Mailer
	Logger         *slog.Logger
}

// NewVerificationService is the constructor for verificationService.
func NewVerificationService(params VerificationServiceParams) usecase.VerificationUsecase {
	return &verificationService{
		txManager:      params.TxManager,
		credentialRepo: params.CredentialRepo,
		mailer:         params.Mailer,
		logger:         params.Logger,
	}
}

func (srv *verificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SendVerification issues a fresh token and mails it. Replacing the stored
// token invalidates any link mailed earlier.
func (srv *verificationService) SendVerification(ctx context.Context, username string) error {
	credential, err := srv.credentialRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrCredentialNotFound) {
			return domainerrors.ErrNotFound
		}

		return errors.Wrap(err, "failed to find credential")
	}

	if credential.EmailVerified {
		srv.log(ctx).Debug("Verification requested for already verified account", slog.Int64("userID", credential.ID))

		return nil
	}

	token := &entity.VerificationToken{
		CredentialID: credential.ID,
		Token:        uuid.New().String(),
		ExpiresAt:    time.Now().Add(verificationTokenTTL),
		CreatedAt:    time.Now(),
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.VerificationTokenRepo().Replace(ctx, token)
	})
	if err != nil {
		return errors.Wrap(err, "failed to store verification token")
	}

	if err := srv.mailer.SendVerificationMail(ctx, credential.Username, token.Token); err != nil {
		srv.log(ctx).Error("Failed to send verification mail", slog.Int64("userID", credential.ID), slog.Any("error", err))

		return errors.Wrap(domainerrors.ErrInternalError, "failed to send verification mail")
	}

	srv.log(ctx).Info("Verification mail sent", slog.Int64("userID", credential.ID))

	return nil
}

// VerifyEmail consumes a token and marks the account verified.
func (srv *verificationService) VerifyEmail(ctx context.Context, token string) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		tokenRepo := repoFactory.VerificationTokenRepo()
		credentialRepo := repoFactory.CredentialRepo()

		stored, err := tokenRepo.FindByToken(ctx, token)
		if err != nil {
			if errors.Is(err, repository.ErrVerificationTokenNotFound) {
				return domainerrors.ErrInvalidToken
			}

			return errors.Wrap(err, "failed to find verification token")
		}

		if stored.Expired(time.Now()) {
			// Consume the stale token so it cannot be retried.
			if err := tokenRepo.Delete(ctx, stored.ID); err != nil {
				return errors.Wrap(err, "failed to delete expired verification token")
			}

			return domainerrors.ErrInvalidToken.WrapMessage("驗證連結已過期")
		}

		credential, err := credentialRepo.FindByID(ctx, stored.CredentialID)
		if err != nil {
			return errors.Wrap(err, "failed to find credential for verification token")
		}

		credential.EmailVerified = true
		credential.UpdatedAt = time.Now()
		if err := credentialRepo.Update(ctx, credential); err != nil {
			return errors.Wrap(err, "failed to mark credential verified")
		}

		return tokenRepo.Delete(ctx, stored.ID)
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Email verified")

	return nil
}
