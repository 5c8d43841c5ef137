// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"kalado/config"
	deliverycontext "kalado/internal/delivery/context"
	"kalado/internal/domain/entity"
	domainerrors "kalado/internal/domain/errors"
	"kalado/internal/domain/repository"
	"kalado/internal/domain/service"
	"kalado/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager        repository.TransactionManager
	credentialRepo   repository.CredentialRepository
	hasher           service.PasswordHasher
	tokenService     service.TokenService
	userDirectory    service.UserDirectory
	verification     usecase.VerificationUsecase
	privilegedEmails *config.PrivilegedEmailsConfig
	logger           *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	CredentialRepo repository.CredentialRepository
	Hasher         service.PasswordHasher
	TokenService   service.TokenService
	UserDirectory  service.UserDirectory
	Verification   usecase.VerificationUsecase
	Config         *config.Config
	Logger         *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	privileged := &config.PrivilegedEmailsConfig{}
	if params.Config != nil && params.Config.PrivilegedEmails != nil {
		privileged = params.Config.PrivilegedEmails
	}

	return &authService{
		txManager:        params.TxManager,
		credentialRepo:   params.CredentialRepo,
		hasher:           params.Hasher,
		tokenService:     params.TokenService,
		userDirectory:    params.UserDirectory,
		verification:     params.Verification,
		privilegedEmails: privileged,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// checkRequestedRole enforces the allow-lists on privileged registrations.
// Matching is case-insensitive on the allow-list side.
func (srv *authService) checkRequestedRole(username string, role entity.Role) error {
	if !role.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails("unknown role: " + role.String())
	}

	switch role {
	case entity.RoleGod:
		if !srv.privilegedEmails.GodAllowed(username) {
			return domainerrors.ErrForbidden
		}
	case entity.RoleAdmin:
		if !srv.privilegedEmails.AdminAllowed(username) {
			return domainerrors.ErrForbidden
		}
	}

	return nil
}

// Register creates a credential and its directory profile, then triggers
// the verification mail.
func (srv *authService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	if err := srv.checkRequestedRole(input.Username, input.Role); err != nil {
		srv.log(ctx).Warn("Registration rejected",
			slog.String("username", input.Username),
			slog.Any("role", input.Role),
			slog.Any("error", err))

		return nil, err
	}

	role := input.Role
	srv.log(ctx).Info("Starting registration", slog.String("username", input.Username), slog.Any("role", role))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrInternalError, "failed to hash password")
	}

	var created *entity.Credential
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		credentialRepo := repoFactory.CredentialRepo()

		_, err := credentialRepo.FindByUsername(ctx, input.Username)
		if err == nil {
			return domainerrors.ErrUserAlreadyExists
		}
		if !errors.Is(err, repository.ErrCredentialNotFound) {
			return errors.Wrap(err, "failed to check existing credential")
		}

		now := time.Now()
		credential := &entity.Credential{
			Username:     input.Username,
			PasswordHash: hashedPassword,
			Role:         role,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := credentialRepo.Create(ctx, credential); err != nil {
			return errors.Wrap(err, "failed to create credential")
		}

		created = credential

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute registration transaction", slog.String("username", input.Username), slog.Any("error", err))

		return nil, err
	}

	srv.createDirectoryProfile(ctx, created, input)

	if err := srv.verification.SendVerification(ctx, created.Username); err != nil {
		// Registration stands; the user can request another mail later.
		srv.log(ctx).Warn("Failed to send verification mail", slog.Int64("userID", created.ID), slog.Any("error", err))
	}

	srv.log(ctx).Debug("Registration completed", slog.Int64("userID", created.ID), slog.Any("role", created.Role))

	return &usecase.RegisterOutput{
		UserID:   created.ID,
		Username: created.Username,
		Role:     created.Role,
	}, nil
}

// createDirectoryProfile mirrors the new credential into the user directory.
// Directory failures do not undo the registration.
func (srv *authService) createDirectoryProfile(ctx context.Context, credential *entity.Credential, input usecase.RegisterInput) {
	var err error
	if credential.Role.Privileged() {
		err = srv.userDirectory.CreateAdminProfile(ctx, &entity.AdminProfile{
			UserID:      credential.ID,
			FirstName:   input.FirstName,
			LastName:    input.LastName,
			PhoneNumber: input.Phone,
		})
	} else {
		err = srv.userDirectory.CreateUserProfile(ctx, &entity.Profile{
			UserID:      credential.ID,
			Username:    credential.Username,
			FirstName:   input.FirstName,
			LastName:    input.LastName,
			PhoneNumber: input.Phone,
		})
	}
	if err != nil {
		srv.log(ctx).Warn("Failed to create directory profile", slog.Int64("userID", credential.ID), slog.Any("error", err))
	}
}

// Login verifies the password and account state, then issues a token.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	credential, err := srv.credentialRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrCredentialNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find credential")
	}

	if err := srv.hasher.Compare(credential.PasswordHash, input.Password); err != nil {
		srv.log(ctx).Warn("Password mismatch on login", slog.Int64("userID", credential.ID))

		return nil, domainerrors.ErrInvalidCredentials
	}

	if !credential.EmailVerified {
		return nil, domainerrors.ErrEmailNotVerified
	}

	// Only regular users carry a directory profile with a blocked flag;
	// privileged accounts skip the remote check entirely.
	if credential.Role == entity.RoleUser {
		if err := srv.checkNotBlocked(ctx, credential); err != nil {
			return nil, err
		}
	}

	details, err := srv.tokenService.Issue(ctx, credential.ID, credential.Role)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token", slog.Int64("userID", credential.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue token")
	}

	srv.log(ctx).Info("Login succeeded", slog.Int64("userID", credential.ID), slog.Any("role", credential.Role))

	return &usecase.LoginOutput{
		Token:     details.Token,
		UserID:    credential.ID,
		Role:      credential.Role,
		ExpiresAt: details.ExpiresAt,
	}, nil
}

// checkNotBlocked consults the user directory. A missing profile is treated
// as not blocked; the account may predate the directory fan-out.
func (srv *authService) checkNotBlocked(ctx context.Context, credential *entity.Credential) error {
	profile, err := srv.userDirectory.GetProfile(ctx, credential.ID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil
		}
		srv.log(ctx).Error("Failed to check blocked state", slog.Int64("userID", credential.ID), slog.Any("error", err))

		return errors.Wrap(domainerrors.ErrInternalError, "failed to check account state")
	}

	if profile.Blocked {
		return domainerrors.ErrAccountBlocked
	}

	return nil
}

// ValidateToken checks a raw token and returns its details when valid.
func (srv *authService) ValidateToken(ctx context.Context, token string) (*service.TokenDetails, error) {
	return srv.tokenService.Validate(ctx, token)
}

// Logout revokes the presented token. Already revoked tokens succeed silently.
func (srv *authService) Logout(ctx context.Context, token string) error {
	if err := srv.tokenService.Revoke(ctx, token); err != nil {
		srv.log(ctx).Error("Failed to revoke token on logout", slog.Any("error", err))

		return errors.Wrap(err, "failed to revoke token")
	}

	return nil
}

// UpdateUserRole applies a role transition. Only GOD callers may change
// roles, the GOD role itself is immutable, and the only legal moves are
// between USER and ADMIN. The target's tokens are revoked so stale claims
// stop working immediately.
func (srv *authService) UpdateUserRole(ctx context.Context, input usecase.UpdateRoleInput) error {
	actor, err := srv.credentialRepo.FindByID(ctx, input.ActorID)
	if err != nil {
		return errors.Wrap(err, "failed to find acting credential")
	}
	if actor.Role != entity.RoleGod {
		return domainerrors.ErrInsufficientPrivileges
	}

	// GOD is a sink: it can be neither granted nor left through this
	// surface. Granting it is an illegal transition like any other pair
	// outside USER<->ADMIN; a GOD target is rejected separately below.
	if input.NewRole == entity.RoleGod || !input.NewRole.IsValid() {
		return domainerrors.ErrInvalidRoleTransition.WithDetails("role cannot be granted: " + input.NewRole.String())
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		credentialRepo := repoFactory.CredentialRepo()

		target, err := credentialRepo.FindByID(ctx, input.TargetID)
		if err != nil {
			if errors.Is(err, repository.ErrCredentialNotFound) {
				return domainerrors.ErrNotFound
			}

			return errors.Wrap(err, "failed to find target credential")
		}

		if target.Role == entity.RoleGod {
			return domainerrors.ErrGodRoleModification
		}
		if target.Role == input.NewRole {
			return domainerrors.ErrInvalidRoleTransition.WithDetails(
				"target already has role " + target.Role.String())
		}

		target.Role = input.NewRole
		target.UpdatedAt = time.Now()

		return credentialRepo.Update(ctx, target)
	})
	if err != nil {
		return err
	}

	if input.NewRole == entity.RoleAdmin {
		srv.provisionAdminProfile(ctx, input.TargetID)
	}

	revoked, err := srv.tokenService.RevokeAllForSubject(ctx, input.TargetID)
	if err != nil {
		srv.log(ctx).Error("Failed to revoke tokens after role change", slog.Int64("userID", input.TargetID), slog.Any("error", err))

		return errors.Wrap(err, "failed to revoke tokens after role change")
	}

	srv.log(ctx).Info("Role updated",
		slog.Int64("actorID", input.ActorID),
		slog.Int64("targetID", input.TargetID),
		slog.Any("newRole", input.NewRole),
		slog.Int("revokedTokens", revoked))

	return nil
}

// GetUsername resolves a credential id to its username.
func (srv *authService) GetUsername(ctx context.Context, userID int64) (string, error) {
	credential, err := srv.credentialRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrCredentialNotFound) {
			return "", domainerrors.ErrNotFound
		}

		return "", errors.Wrap(err, "failed to find credential")
	}

	return credential.Username, nil
}

// provisionAdminProfile creates the admin-shaped directory entry for a
// freshly promoted user, carrying over the names from their user profile.
// The role change stands even when the directory is unreachable.
func (srv *authService) provisionAdminProfile(ctx context.Context, userID int64) {
	adminProfile := &entity.AdminProfile{UserID: userID}

	profile, err := srv.userDirectory.GetProfile(ctx, userID)
	if err != nil {
		srv.log(ctx).Warn("Failed to fetch profile before promotion", slog.Int64("userID", userID), slog.Any("error", err))
	} else {
		adminProfile.FirstName = profile.FirstName
		adminProfile.LastName = profile.LastName
		adminProfile.PhoneNumber = profile.PhoneNumber
	}

	if err := srv.userDirectory.CreateAdminProfile(ctx, adminProfile); err != nil {
		srv.log(ctx).Warn("Failed to create admin profile after promotion", slog.Int64("userID", userID), slog.Any("error", err))
	}
}

// UpdatePassword changes the password after verifying the old one, then
// revokes every live token of the user.
func (srv *authService) UpdatePassword(ctx context.Context, input usecase.UpdatePasswordInput) error {
	hashedPassword, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return errors.Wrap(domainerrors.ErrInternalError, "failed to hash password")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		credentialRepo := repoFactory.CredentialRepo()

		credential, err := credentialRepo.FindByID(ctx, input.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrCredentialNotFound) {
				return domainerrors.ErrNotFound
			}

			return errors.Wrap(err, "failed to find credential")
		}

		if err := srv.hasher.Compare(credential.PasswordHash, input.OldPassword); err != nil {
			return domainerrors.ErrInvalidCredentials
		}

		credential.PasswordHash = hashedPassword
		credential.UpdatedAt = time.Now()

		return credentialRepo.Update(ctx, credential)
	})
	if err != nil {
		return err
	}

	revoked, err := srv.tokenService.RevokeAllForSubject(ctx, input.UserID)
	if err != nil {
		srv.log(ctx).Error("Failed to revoke tokens after password change", slog.Int64("userID", input.UserID), slog.Any("error", err))

		return errors.Wrap(err, "failed to revoke tokens after password change")
	}

	srv.log(ctx).Info("Password updated", slog.Int64("userID", input.UserID), slog.Int("revokedTokens", revoked))

	return nil
}
