package impl

import (
	"context"
	"testing"
	"time"

	"kalado/internal/domain/entity"
	domainerrors "kalado/internal/domain/errors"
	"kalado/internal/domain/repository"
	mockRepo "kalado/internal/mocks/repository"
	mockSvc "kalado/internal/mocks/service"
	"kalado/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type verificationServiceFixture struct {
	txManager      *mockRepo.MockTransactionManager
	factory        *mockRepo.MockRepositoryFactory
	credentialRepo *mockRepo.MockCredentialRepository
	tokenRepo      *mockRepo.MockVerificationTokenRepository
	mailer         *mockSvc.MockMailer
}

func createTestVerificationService(t *testing.T) (usecase.VerificationUsecase, *verificationServiceFixture) {
	f := &verificationServiceFixture{
		txManager:      mockRepo.NewMockTransactionManager(t),
		factory:        mockRepo.NewMockRepositoryFactory(t),
		credentialRepo: mockRepo.NewMockCredentialRepository(t),
		tokenRepo:      mockRepo.NewMockVerificationTokenRepository(t),
		mailer:         mockSvc.NewMockMailer(t),
	}

	svc := NewVerificationService(VerificationServiceParams{
		TxManager:      f.txManager,
		CredentialRepo: f.credentialRepo,
		Mailer:         f.mailer,
		Logger:         newDiscardLogger(),
	})

	return svc, f
}

func TestVerificationService_SendVerification_StoresTokenAndMails(t *testing.T) {
	svc, f := createTestVerificationService(t)
	ctx := context.Background()

	f.credentialRepo.EXPECT().FindByUsername(ctx, "alice@example.com").
		Return(&entity.Credential{ID: 42, Username: "alice@example.com"}, nil)

	f.factory.EXPECT().VerificationTokenRepo().Return(f.tokenRepo)
	expectTransaction(f.txManager, f.factory)

	var mailedToken string
	f.tokenRepo.EXPECT().
		Replace(ctx, mock.AnythingOfType("*entity.VerificationToken")).
		Run(func(_ context.Context, token *entity.VerificationToken) {
			assert.Equal(t, int64(42), token.CredentialID)
			assert.NotEmpty(t, token.Token)
			assert.True(t, token.ExpiresAt.After(time.Now()))
			mailedToken = token.Token
		}).
		Return(nil)

	f.mailer.EXPECT().
		SendVerificationMail(ctx, "alice@example.com", mock.AnythingOfType("string")).
		Run(func(_ context.Context, _ string, token string) {
			assert.Equal(t, mailedToken, token)
		}).
		Return(nil)

	require.NoError(t, svc.SendVerification(ctx, "alice@example.com"))
}

func TestVerificationService_SendVerification_UnknownUsername(t *testing.T) {
	svc, f := createTestVerificationService(t)
	ctx := context.Background()

	f.credentialRepo.EXPECT().FindByUsername(ctx, "ghost@example.com").
		Return(nil, repository.ErrCredentialNotFound)

	err := svc.SendVerification(ctx, "ghost@example.com")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestVerificationService_SendVerification_AlreadyVerifiedIsNoop(t *testing.T) {
	svc, f := createTestVerificationService(t)
	ctx := context.Background()

	f.credentialRepo.EXPECT().FindByUsername(ctx, "alice@example.com").
		Return(&entity.Credential{ID: 42, Username: "alice@example.com", EmailVerified: true}, nil)

	require.NoError(t, svc.SendVerification(ctx, "alice@example.com"))
}

func TestVerificationService_VerifyEmail_MarksVerifiedAndConsumesToken(t *testing.T) {
	svc, f := createTestVerificationService(t)
	ctx := context.Background()

	f.factory.EXPECT().VerificationTokenRepo().Return(f.tokenRepo)
	f.factory.EXPECT().CredentialRepo().Return(f.credentialRepo)
	expectTransaction(f.txManager, f.factory)

	stored := &entity.VerificationToken{
		ID:           5,
		CredentialID: 42,
		Token:        "tok-123",
		ExpiresAt:    time.Now().Add(time.Hour),
	}
	f.tokenRepo.EXPECT().FindByToken(ctx, "tok-123").Return(stored, nil)
	f.credentialRepo.EXPECT().FindByID(ctx, int64(42)).
		Return(&entity.Credential{ID: 42, Username: "alice@example.com"}, nil)
	f.credentialRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Credential")).
		Run(func(_ context.Context, credential *entity.Credential) {
			assert.True(t, credential.EmailVerified)
		}).
		Return(nil)
	f.tokenRepo.EXPECT().Delete(ctx, int64(5)).Return(nil)

	require.NoError(t, svc.VerifyEmail(ctx, "tok-123"))
}

func TestVerificationService_VerifyEmail_UnknownToken(t *testing.T) {
	svc, f := createTestVerificationService(t)
	ctx := context.Background()

	f.factory.EXPECT().VerificationTokenRepo().Return(f.tokenRepo)
	f.factory.EXPECT().CredentialRepo().Return(f.credentialRepo)
	expectTransaction(f.txManager, f.factory)

	f.tokenRepo.EXPECT().FindByToken(ctx, "bogus").
		Return(nil, repository.ErrVerificationTokenNotFound)

	err := svc.VerifyEmail(ctx, "bogus")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestVerificationService_VerifyEmail_ExpiredTokenIsConsumed(t *testing.T) {
	svc, f := createTestVerificationService(t)
	ctx := context.Background()

	f.factory.EXPECT().VerificationTokenRepo().Return(f.tokenRepo)
	f.factory.EXPECT().CredentialRepo().Return(f.credentialRepo)
	expectTransaction(f.txManager, f.factory)

	stored := &entity.VerificationToken{
		ID:           5,
		CredentialID: 42,
		Token:        "tok-123",
		ExpiresAt:    time.Now().Add(-time.Minute),
	}
	f.tokenRepo.EXPECT().FindByToken(ctx, "tok-123").Return(stored, nil)
	f.tokenRepo.EXPECT().Delete(ctx, int64(5)).Return(nil)

	err := svc.VerifyEmail(ctx, "tok-123")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}
