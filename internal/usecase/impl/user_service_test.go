package impl

import (
	"context"
	"testing"

	"kalado/internal/domain/entity"
	domainerrors "kalado/internal/domain/errors"
	"kalado/internal/domain/repository"
	mockRepo "kalado/internal/mocks/repository"
	"kalado/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userServiceFixture struct {
	txManager   *mockRepo.MockTransactionManager
	factory     *mockRepo.MockRepositoryFactory
	profileRepo *mockRepo.MockProfileRepository
}

func createTestUserService(t *testing.T) (usecase.UserUsecase, *userServiceFixture) {
	f := &userServiceFixture{
		txManager:   mockRepo.NewMockTransactionManager(t),
		factory:     mockRepo.NewMockRepositoryFactory(t),
		profileRepo: mockRepo.NewMockProfileRepository(t),
	}

	svc := NewUserService(UserServiceParams{
		TxManager:   f.txManager,
		ProfileRepo: f.profileRepo,
		Logger:      newDiscardLogger(),
	})

	return svc, f
}

func TestUserService_GetProfile(t *testing.T) {
	svc, f := createTestUserService(t)
	ctx := context.Background()

	f.profileRepo.EXPECT().FindByUserID(ctx, int64(42)).
		Return(&entity.Profile{UserID: 42, Username: "alice@example.com"}, nil)

	profile, err := svc.GetProfile(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", profile.Username)
}

func TestUserService_GetProfile_NotFound(t *testing.T) {
	svc, f := createTestUserService(t)
	ctx := context.Background()

	f.profileRepo.EXPECT().FindByUserID(ctx, int64(99)).
		Return(nil, repository.ErrProfileNotFound)

	profile, err := svc.GetProfile(ctx, 99)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	assert.Nil(t, profile)
}

func TestUserService_UpdateProfile(t *testing.T) {
	svc, f := createTestUserService(t)
	ctx := context.Background()

	f.factory.EXPECT().ProfileRepo().Return(f.profileRepo)
	expectTransaction(f.txManager, f.factory)

	f.profileRepo.EXPECT().FindByUserID(ctx, int64(42)).
		Return(&entity.Profile{UserID: 42, Username: "alice@example.com"}, nil)
	f.profileRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Profile")).
		Run(func(_ context.Context, profile *entity.Profile) {
			assert.Equal(t, "Alice", profile.FirstName)
			assert.Equal(t, "0912345678", profile.PhoneNumber)
		}).
		Return(nil)

	profile, err := svc.UpdateProfile(ctx, usecase.UpdateProfileInput{
		UserID:      42,
		FirstName:   "Alice",
		LastName:    "Chen",
		PhoneNumber: "0912345678",
		Address:     "Taipei",
	})
	require.NoError(t, err)
	assert.Equal(t, "Alice", profile.FirstName)
}

func TestUserService_BlockUser(t *testing.T) {
	svc, f := createTestUserService(t)
	ctx := context.Background()

	f.factory.EXPECT().ProfileRepo().Return(f.profileRepo)
	expectTransaction(f.txManager, f.factory)

	f.profileRepo.EXPECT().FindByUserID(ctx, int64(42)).
		Return(&entity.Profile{UserID: 42, Blocked: false}, nil)
	f.profileRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Profile")).
		Run(func(_ context.Context, profile *entity.Profile) {
			assert.True(t, profile.Blocked)
		}).
		Return(nil)

	require.NoError(t, svc.BlockUser(ctx, 42))
}

func TestUserService_BlockUser_AlreadyBlockedIsNoop(t *testing.T) {
	svc, f := createTestUserService(t)
	ctx := context.Background()

	f.factory.EXPECT().ProfileRepo().Return(f.profileRepo)
	expectTransaction(f.txManager, f.factory)

	f.profileRepo.EXPECT().FindByUserID(ctx, int64(42)).
		Return(&entity.Profile{UserID: 42, Blocked: true}, nil)

	require.NoError(t, svc.BlockUser(ctx, 42))
}

func TestUserService_BlockUser_NotFound(t *testing.T) {
	svc, f := createTestUserService(t)
	ctx := context.Background()

	f.factory.EXPECT().ProfileRepo().Return(f.profileRepo)
	expectTransaction(f.txManager, f.factory)

	f.profileRepo.EXPECT().FindByUserID(ctx, int64(99)).
		Return(nil, repository.ErrProfileNotFound)

	assert.ErrorIs(t, svc.BlockUser(ctx, 99), domainerrors.ErrNotFound)
}
