package impl

import (
	"context"
	"testing"
	"time"

	"kalado/config"
	"kalado/internal/domain/entity"
	domainerrors "kalado/internal/domain/errors"
	"kalado/internal/domain/repository"
	"kalado/internal/domain/service"
	mockRepo "kalado/internal/mocks/repository"
	mockSvc "kalado/internal/mocks/service"
	mockUC "kalado/internal/mocks/usecase"
	"kalado/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authServiceFixture struct {
	txManager      *mockRepo.MockTransactionManager
	factory        *mockRepo.MockRepositoryFactory
	credentialRepo *mockRepo.MockCredentialRepository
	hasher         *mockSvc.MockPasswordHasher
	tokenService   *mockSvc.MockTokenService
	userDirectory  *mockSvc.MockUserDirectory
	verification   *mockUC.MockVerificationUsecase
}

func createTestAuthService(t *testing.T, cfg *config.Config) (usecase.AuthUsecase, *authServiceFixture) {
	f := &authServiceFixture{
		txManager:      mockRepo.NewMockTransactionManager(t),
		factory:        mockRepo.NewMockRepositoryFactory(t),
		credentialRepo: mockRepo.NewMockCredentialRepository(t),
		hasher:         mockSvc.NewMockPasswordHasher(t),
		tokenService:   mockSvc.NewMockTokenService(t),
		userDirectory:  mockSvc.NewMockUserDirectory(t),
		verification:   mockUC.NewMockVerificationUsecase(t),
	}

	svc := NewAuthService(AuthServiceParams{
		TxManager:      f.txManager,
		CredentialRepo: f.credentialRepo,
		Hasher:         f.hasher,
		TokenService:   f.tokenService,
		UserDirectory:  f.userDirectory,
		Verification:   f.verification,
		Config:         cfg,
		Logger:         newDiscardLogger(),
	})

	return svc, f
}

func TestAuthService_Register_CreatesUserCredential(t *testing.T) {
	svc, f := createTestAuthService(t, &config.Config{})
	ctx := context.Background()

	f.hasher.EXPECT().Hash("secret123").Return("hashed", nil)

	f.factory.EXPECT().CredentialRepo().Return(f.credentialRepo)
	expectTransaction(f.txManager, f.factory)

	f.credentialRepo.EXPECT().
		FindByUsername(ctx, "alice@example.com").
		Return(nil, repository.ErrCredentialNotFound)
	f.credentialRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Credential")).
		Run(func(_ context.Context, credential *entity.Credential) {
			credential.ID = 42
		}).
		Return(nil)

	f.userDirectory.EXPECT().
		CreateUserProfile(ctx, mock.AnythingOfType("*entity.Profile")).
		Return(nil)
	f.verification.EXPECT().SendVerification(ctx, "alice@example.com").Return(nil)

	out, err := svc.Register(ctx, usecase.RegisterInput{
		Username:  "alice@example.com",
		Password:  "secret123",
		FirstName: "Alice",
		LastName:  "Chen",
		Phone:     "0912345678",
		Role:      entity.RoleUser,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(42), out.UserID)
	assert.Equal(t, entity.RoleUser, out.Role)
}

func TestAuthService_Register_RejectsUnknownRole(t *testing.T) {
	svc, _ := createTestAuthService(t, &config.Config{})

	out, err := svc.Register(context.Background(), usecase.RegisterInput{
		Username: "alice@example.com",
		Password: "secret123",
		Role:     entity.Role("SUPERVISOR"),
	})
	assert.Nil(t, out)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestAuthService_Register_PrivilegedRoleRequiresAllowList(t *testing.T) {
	cfg := &config.Config{
		PrivilegedEmails: &config.PrivilegedEmailsConfig{
			Admin: []string{"admin@example.com"},
			God:   []string{"root@example.com"},
		},
	}

	cases := []struct {
		name     string
		username string
		role     entity.Role
	}{
		{"admin off list", "alice@example.com", entity.RoleAdmin},
		{"god off list", "alice@example.com", entity.RoleGod},
		{"admin list does not grant god", "admin@example.com", entity.RoleGod},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, _ := createTestAuthService(t, cfg)

			// No transaction expectations: nothing may be persisted.
			out, err := svc.Register(context.Background(), usecase.RegisterInput{
				Username: tc.username,
				Password: "secret123",
				Role:     tc.role,
			})
			assert.Nil(t, out)
			assert.ErrorIs(t, err, domainerrors.ErrForbidden)
		})
	}
}

func TestAuthService_Register_AllowListedEmailsGetElevatedRoles(t *testing.T) {
	cfg := &config.Config{
		PrivilegedEmails: &config.PrivilegedEmailsConfig{
			Admin: []string{"admin@example.com"},
			God:   []string{"root@example.com"},
		},
	}

	cases := []struct {
		name     string
		username string
		wantRole entity.Role
	}{
		{"admin list", "admin@example.com", entity.RoleAdmin},
		{"god list", "root@example.com", entity.RoleGod},
		{"case insensitive", "ADMIN@EXAMPLE.COM", entity.RoleAdmin},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, f := createTestAuthService(t, cfg)
			ctx := context.Background()

			f.hasher.EXPECT().Hash("secret123").Return("hashed", nil)

			f.factory.EXPECT().CredentialRepo().Return(f.credentialRepo)
			expectTransaction(f.txManager, f.factory)

			f.credentialRepo.EXPECT().
				FindByUsername(ctx, tc.username).
				Return(nil, repository.ErrCredentialNotFound)
			f.credentialRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Credential")).
				Run(func(_ context.Context, credential *entity.Credential) {
					credential.ID = 7
				}).
				Return(nil)

			f.userDirectory.EXPECT().
				CreateAdminProfile(ctx, mock.AnythingOfType("*entity.AdminProfile")).
				Return(nil)
			f.verification.EXPECT().SendVerification(ctx, tc.username).Return(nil)

			out, err := svc.Register(ctx, usecase.RegisterInput{
				Username: tc.username,
				Password: "secret123",
				Role:     tc.wantRole,
			})
			require.NoError(t, err)
			assert.Equal(t, tc.wantRole, out.Role)
		})
	}
}

func TestAuthService_Register_DuplicateUsername(t *testing.T) {
	svc, f := createTestAuthService(t, &config.Config{})
	ctx := context.Background()

	f.hasher.EXPECT().Hash("secret123").Return("hashed", nil)

	f.factory.EXPECT().CredentialRepo().Return(f.credentialRepo)
	expectTransaction(f.txManager, f.factory)

	f.credentialRepo.EXPECT().
		FindByUsername(ctx, "alice@example.com").
		Return(&entity.Credential{ID: 1, Username: "alice@example.com"}, nil)

	out, err := svc.Register(ctx, usecase.RegisterInput{
		Username: "alice@example.com",
		Password: "secret123",
		Role:     entity.RoleUser,
	})
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
	assert.Nil(t, out)
}

func TestAuthService_Register_SurvivesDirectoryAndMailFailures(t *testing.T) {
	svc, f := createTestAuthService(t, &config.Config{})
	ctx := context.Background()

	f.hasher.EXPECT().Hash("secret123").Return("hashed", nil)

	f.factory.EXPECT().CredentialRepo().Return(f.credentialRepo)
	expectTransaction(f.txManager, f.factory)

	f.credentialRepo.EXPECT().
		FindByUsername(ctx, "alice@example.com").
		Return(nil, repository.ErrCredentialNotFound)
	f.credentialRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Credential")).
		Run(func(_ context.Context, credential *entity.Credential) {
			credential.ID = 42
		}).
		Return(nil)

	f.userDirectory.EXPECT().
		CreateUserProfile(ctx, mock.AnythingOfType("*entity.Profile")).
		Return(errors.New("directory unreachable"))
	f.verification.EXPECT().
		SendVerification(ctx, "alice@example.com").
		Return(errors.New("smtp down"))

	out, err := svc.Register(ctx, usecase.RegisterInput{
		Username: "alice@example.com",
		Password: "secret123",
		Role:     entity.RoleUser,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(42), out.UserID)
}

func verifiedCredential() *entity.Credential {
	return &entity.Credential{
		ID:            42,
		Username:      "alice@example.com",
		PasswordHash:  "hashed",
		Role:          entity.RoleUser,
		EmailVerified: true,
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, f := createTestAuthService(t, &config.Config{})
	ctx := context.Background()
	credential := verifiedCredential()

	f.credentialRepo.EXPECT().FindByUsername(ctx, "alice@example.com").Return(credential, nil)
	f.hasher.EXPECT().Compare("hashed", "secret123").Return(nil)
	f.userDirectory.EXPECT().GetProfile(ctx, int64(42)).
		Return(&entity.Profile{UserID: 42, Blocked: false}, nil)

	expiresAt := time.Now().Add(time.Hour).Unix()
	f.tokenService.EXPECT().Issue(ctx, int64(42), entity.RoleUser).
		Return(&service.TokenDetails{Token: "token-abc", SubjectID: 42, Role: entity.RoleUser, ExpiresAt: expiresAt}, nil)

	out, err := svc.Login(ctx, usecase.LoginInput{Username: "alice@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "token-abc", out.Token)
	assert.Equal(t, int64(42), out.UserID)
	assert.Equal(t, entity.RoleUser, out.Role)
	assert.Equal(t, expiresAt, out.ExpiresAt)
}

func TestAuthService_Login_PrivilegedAccountSkipsBlockedCheck(t *testing.T) {
	svc, f := createTestAuthService(t, &config.Config{})
	ctx := context.Background()

	credential := verifiedCredential()
	credential.Role = entity.RoleAdmin

	// No GetProfile expectation: the directory must not be consulted.
	f.credentialRepo.EXPECT().FindByUsername(ctx, "alice@example.com").Return(credential, nil)
	f.hasher.EXPECT().Compare("hashed", "secret123").Return(nil)
	f.tokenService.EXPECT().Issue(ctx, int64(42), entity.RoleAdmin).
		Return(&service.TokenDetails{Token: "token-abc", SubjectID: 42, Role: entity.RoleAdmin}, nil)

	out, err := svc.Login(ctx, usecase.LoginInput{Username: "alice@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, out.Role)
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	svc, f := createTestAuthService(t, &config.Config{})
	ctx := context.Background()

	f.credentialRepo.EXPECT().
		FindByUsername(ctx, "ghost@example.com").
		Return(nil, repository.ErrCredentialNotFound)

	out, err := svc.Login(ctx, usecase.LoginInput{Username: "ghost@example.com", Password: "whatever"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.Nil(t, out)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, f := createTestAuthService(t, &config.Config{})
	ctx := context.Background()

	f.credentialRepo.EXPECT().FindByUsername(ctx, "alice@example.com").Return(verifiedCredential(), nil)
	f.hasher.EXPECT().Compare("hashed", "wrong").Return(errors.New("mismatch"))

	out, err := svc.Login(ctx, usecase.LoginInput{Username: "alice@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.Nil(t, out)
}

func TestAuthService_Login_EmailNotVerified(t *testing.T) {
	svc, f := createTestAuthService(t, &config.Config{})
	ctx := context.Background()

	credential := verifiedCredential()
	credential.EmailVerified = false

	f.credentialRepo.EXPECT().FindByUsername(ctx, "alice@example.com").Return(credential, nil)
	f.hasher.EXPECT().Compare("hashed", "secret123").Return(nil)

	out, err := svc.Login(ctx, usecase.LoginInput{Username: "alice@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, domainerrors.ErrEmailNotVerified)
	assert.Nil(t, out)
}

func TestAuthService_Login_BlockedAccount(t *testing.T) {
	svc, f := createTestAuthService(t, &config.Config{})
	ctx := context.Background()

	f.credentialRepo.EXPECT().FindByUsername(ctx, "alice@example.com").Return(verifiedCredential(), nil)
	f.hasher.EXPECT().Compare("hashed", "secret123").Return(nil)
	f.userDirectory.EXPECT().GetProfile(ctx, int64(42)).
		Return(&entity.Profile{UserID: 42, Blocked: true}, nil)

	out, err := svc.Login(ctx, usecase.LoginInput{Username: "alice@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, domainerrors.ErrAccountBlocked)
	assert.Nil(t, out)
}

func TestAuthService_Login_MissingProfileIsNotBlocked(t *testing.T) {
	// Privileged accounts have no user profile; login must not fail on that.
	svc, f := createTestAuthService(t, &config.Config{})
	ctx := context.Background()

	credential := verifiedCredential()
	credential.Role = entity.RoleAdmin

	f.credentialRepo.EXPECT().FindByUsername(ctx, "alice@example.com").Return(credential, nil)
	f.hasher.EXPECT().Compare("hashed", "secret123").Return(nil)
	f.userDirectory.EXPECT().GetProfile(ctx, int64(42)).
		Return(nil, repository.ErrProfileNotFound)
	f.tokenService.EXPECT().Issue(ctx, int64(42), entity.RoleAdmin).
		Return(&service.TokenDetails{Token: "token-abc", SubjectID: 42, Role: entity.RoleAdmin}, nil)

	out, err := svc.Login(ctx, usecase.LoginInput{Username: "alice@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "token-abc", out.Token)
}

func TestAuthService_Logout(t *testing.T) {
	svc, f := createTestAuthService(t, &config.Config{})
	ctx := context.Background()

	f.tokenService.EXPECT().Revoke(ctx, "token-abc").Return(nil)

	require.NoError(t, svc.Logout(ctx, "token-abc"))
}

func TestAuthService_UpdateUserRole_RequiresGodActor(t *testing.T) {
	svc, f := createTestAuthService(t, &config.Config{})
	ctx := context.Background()

	f.credentialRepo.EXPECT().FindByID(ctx, int64(1)).
		Return(&entity.Credential{ID: 1, Role: entity.RoleAdmin}, nil)

	err := svc.UpdateUserRole(ctx, usecase.UpdateRoleInput{
		ActorID:  1,
		TargetID: 2,
		NewRole:  entity.RoleAdmin,
	})
	assert.ErrorIs(t, err, domainerrors.ErrInsufficientPrivileges)
}

func TestAuthService_UpdateUserRole_GodRoleIsImmutable(t *testing.T) {
	t.Run("cannot grant god", func(t *testing.T) {
		svc, f := createTestAuthService(t, &config.Config{})
		ctx := context.Background()

		f.credentialRepo.EXPECT().FindByID(ctx, int64(1)).
			Return(&entity.Credential{ID: 1, Role: entity.RoleGod}, nil)

		err := svc.UpdateUserRole(ctx, usecase.UpdateRoleInput{
			ActorID:  1,
			TargetID: 2,
			NewRole:  entity.RoleGod,
		})

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "INVALID_ROLE_TRANSITION", appErr.ErrorCode())
	})

	t.Run("cannot demote god", func(t *testing.T) {
		svc, f := createTestAuthService(t, &config.Config{})
		ctx := context.Background()

		f.credentialRepo.EXPECT().FindByID(ctx, int64(1)).
			Return(&entity.Credential{ID: 1, Role: entity.RoleGod}, nil)

		f.factory.EXPECT().CredentialRepo().Return(f.credentialRepo)
		expectTransaction(f.txManager, f.factory)

		f.credentialRepo.EXPECT().FindByID(ctx, int64(2)).
			Return(&entity.Credential{ID: 2, Role: entity.RoleGod}, nil)

		err := svc.UpdateUserRole(ctx, usecase.UpdateRoleInput{
			ActorID:  1,
			TargetID: 2,
			NewRole:  entity.RoleAdmin,
		})
		assert.ErrorIs(t, err, domainerrors.ErrGodRoleModification)
	})
}

func TestAuthService_UpdateUserRole_RejectsNoopTransition(t *testing.T) {
	svc, f := createTestAuthService(t, &config.Config{})
	ctx := context.Background()

	f.credentialRepo.EXPECT().FindByID(ctx, int64(1)).
		Return(&entity.Credential{ID: 1, Role: entity.RoleGod}, nil)

	f.factory.EXPECT().CredentialRepo().Return(f.credentialRepo)
	expectTransaction(f.txManager, f.factory)

	f.credentialRepo.EXPECT().FindByID(ctx, int64(2)).
		Return(&entity.Credential{ID: 2, Role: entity.RoleAdmin}, nil)

	err := svc.UpdateUserRole(ctx, usecase.UpdateRoleInput{
		ActorID:  1,
		TargetID: 2,
		NewRole:  entity.RoleAdmin,
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_ROLE_TRANSITION", appErr.ErrorCode())
}

func TestAuthService_UpdateUserRole_SuccessRevokesTargetTokens(t *testing.T) {
	svc, f := createTestAuthService(t, &config.Config{})
	ctx := context.Background()

	f.credentialRepo.EXPECT().FindByID(ctx, int64(1)).
		Return(&entity.Credential{ID: 1, Role: entity.RoleGod}, nil)

	f.factory.EXPECT().CredentialRepo().Return(f.credentialRepo)
	expectTransaction(f.txManager, f.factory)

	f.credentialRepo.EXPECT().FindByID(ctx, int64(2)).
		Return(&entity.Credential{ID: 2, Role: entity.RoleUser}, nil)
	f.credentialRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Credential")).
		Run(func(_ context.Context, credential *entity.Credential) {
			assert.Equal(t, entity.RoleAdmin, credential.Role)
		}).
		Return(nil)

	f.userDirectory.EXPECT().
		GetProfile(ctx, int64(2)).
		Return(&entity.Profile{UserID: 2, FirstName: "Bob", LastName: "Lin", PhoneNumber: "0987654321"}, nil)
	f.userDirectory.EXPECT().
		CreateAdminProfile(ctx, mock.AnythingOfType("*entity.AdminProfile")).
		Run(func(_ context.Context, adminProfile *entity.AdminProfile) {
			// Promotion carries the names from the user profile over.
			assert.Equal(t, "Bob", adminProfile.FirstName)
			assert.Equal(t, "Lin", adminProfile.LastName)
			assert.Equal(t, "0987654321", adminProfile.PhoneNumber)
		}).
		Return(nil)
	f.tokenService.EXPECT().RevokeAllForSubject(ctx, int64(2)).Return(3, nil)

	err := svc.UpdateUserRole(ctx, usecase.UpdateRoleInput{
		ActorID:  1,
		TargetID: 2,
		NewRole:  entity.RoleAdmin,
	})
	require.NoError(t, err)
}

func TestAuthService_UpdateUserRole_DemotionSkipsAdminProfile(t *testing.T) {
	svc, f := createTestAuthService(t, &config.Config{})
	ctx := context.Background()

	f.credentialRepo.EXPECT().FindByID(ctx, int64(1)).
		Return(&entity.Credential{ID: 1, Role: entity.RoleGod}, nil)

	f.factory.EXPECT().CredentialRepo().Return(f.credentialRepo)
	expectTransaction(f.txManager, f.factory)

	f.credentialRepo.EXPECT().FindByID(ctx, int64(2)).
		Return(&entity.Credential{ID: 2, Role: entity.RoleAdmin}, nil)
	f.credentialRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Credential")).
		Return(nil)

	f.tokenService.EXPECT().RevokeAllForSubject(ctx, int64(2)).Return(1, nil)

	err := svc.UpdateUserRole(ctx, usecase.UpdateRoleInput{
		ActorID:  1,
		TargetID: 2,
		NewRole:  entity.RoleUser,
	})
	require.NoError(t, err)
}

func TestAuthService_UpdatePassword_SuccessRevokesAllTokens(t *testing.T) {
	svc, f := createTestAuthService(t, &config.Config{})
	ctx := context.Background()

	f.hasher.EXPECT().Hash("newSecret").Return("newHash", nil)

	f.factory.EXPECT().CredentialRepo().Return(f.credentialRepo)
	expectTransaction(f.txManager, f.factory)

	f.credentialRepo.EXPECT().FindByID(ctx, int64(42)).Return(verifiedCredential(), nil)
	f.hasher.EXPECT().Compare("hashed", "oldSecret").Return(nil)
	f.credentialRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Credential")).
		Run(func(_ context.Context, credential *entity.Credential) {
			assert.Equal(t, "newHash", credential.PasswordHash)
		}).
		Return(nil)

	f.tokenService.EXPECT().RevokeAllForSubject(ctx, int64(42)).Return(2, nil)

	err := svc.UpdatePassword(ctx, usecase.UpdatePasswordInput{
		UserID:      42,
		OldPassword: "oldSecret",
		NewPassword: "newSecret",
	})
	require.NoError(t, err)
}

func TestAuthService_UpdatePassword_WrongOldPassword(t *testing.T) {
	svc, f := createTestAuthService(t, &config.Config{})
	ctx := context.Background()

	f.hasher.EXPECT().Hash("newSecret").Return("newHash", nil)

	f.factory.EXPECT().CredentialRepo().Return(f.credentialRepo)
	expectTransaction(f.txManager, f.factory)

	f.credentialRepo.EXPECT().FindByID(ctx, int64(42)).Return(verifiedCredential(), nil)
	f.hasher.EXPECT().Compare("hashed", "wrong").Return(errors.New("mismatch"))

	err := svc.UpdatePassword(ctx, usecase.UpdatePasswordInput{
		UserID:      42,
		OldPassword: "wrong",
		NewPassword: "newSecret",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_GetUsername(t *testing.T) {
	svc, f := createTestAuthService(t, &config.Config{})
	ctx := context.Background()

	f.credentialRepo.EXPECT().FindByID(ctx, int64(42)).Return(verifiedCredential(), nil)

	username, err := svc.GetUsername(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", username)
}

func TestAuthService_GetUsername_NotFound(t *testing.T) {
	svc, f := createTestAuthService(t, &config.Config{})
	ctx := context.Background()

	f.credentialRepo.EXPECT().
		FindByID(ctx, int64(99)).
		Return(nil, repository.ErrCredentialNotFound)

	_, err := svc.GetUsername(ctx, 99)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}
