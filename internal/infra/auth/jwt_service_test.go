package auth

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"kalado/config"
	"kalado/internal/domain/entity"
	domainerrors "kalado/internal/domain/errors"
	"kalado/internal/domain/service"
	"kalado/internal/infra/tokenstore"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(t *testing.T, ttl time.Duration) service.TokenService {
	t.Helper()

	store := tokenstore.NewMemoryStore(slog.New(slog.NewTextHandler(io.Discard, nil)))
	t.Cleanup(func() {
		if closer, ok := store.(interface{ Close() }); ok {
			closer.Close()
		}
	})

	svc, err := NewJWTService(&config.Config{
		Auth: &config.AuthConfig{
			SecretKey: "test-secret",
			TokenTTL:  ttl,
		},
	}, store)
	require.NoError(t, err)

	return svc
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{Auth: &config.AuthConfig{}}, nil)
	assert.Error(t, err)

	_, err = NewJWTService(&config.Config{}, nil)
	assert.Error(t, err)
}

func TestJWTService_IssueAndValidate(t *testing.T) {
	svc := newTestJWTService(t, time.Hour)
	ctx := context.Background()

	issued, err := svc.Issue(ctx, 42, entity.RoleAdmin)
	require.NoError(t, err)
	assert.NotEmpty(t, issued.Token)
	assert.Equal(t, int64(42), issued.SubjectID)

	details, err := svc.Validate(ctx, issued.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), details.SubjectID)
	assert.Equal(t, entity.RoleAdmin, details.Role)
	assert.Equal(t, issued.ExpiresAt, details.ExpiresAt)
}

func TestJWTService_ValidateRejectsGarbage(t *testing.T) {
	svc := newTestJWTService(t, time.Hour)

	_, err := svc.Validate(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestJWTService_ValidateRejectsTokenMissingFromStore(t *testing.T) {
	issuer := newTestJWTService(t, time.Hour)
	verifier := newTestJWTService(t, time.Hour)
	ctx := context.Background()

	issued, err := issuer.Issue(ctx, 42, entity.RoleUser)
	require.NoError(t, err)

	// Same secret but a different store: the token is unknown there.
	_, err = verifier.Validate(ctx, issued.Token)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestJWTService_ValidateRejectsExpiredToken(t *testing.T) {
	svc := newTestJWTService(t, time.Hour)
	ctx := context.Background()

	claims := jwt.MapClaims{
		"sub": "42",
		"iat": time.Now().Add(-2 * time.Hour).Unix(),
		"exp": time.Now().Add(-time.Hour).Unix(),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = svc.Validate(ctx, expired)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestJWTService_RevokeMakesTokenInvalidImmediately(t *testing.T) {
	svc := newTestJWTService(t, time.Hour)
	ctx := context.Background()

	issued, err := svc.Issue(ctx, 42, entity.RoleUser)
	require.NoError(t, err)

	require.NoError(t, svc.Revoke(ctx, issued.Token))

	_, err = svc.Validate(ctx, issued.Token)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)

	// Revoking again is a silent no-op.
	require.NoError(t, svc.Revoke(ctx, issued.Token))
}

func TestJWTService_RevokeAllForSubject(t *testing.T) {
	svc := newTestJWTService(t, time.Hour)
	ctx := context.Background()

	first, err := svc.Issue(ctx, 42, entity.RoleUser)
	require.NoError(t, err)
	second, err := svc.Issue(ctx, 42, entity.RoleUser)
	require.NoError(t, err)
	other, err := svc.Issue(ctx, 7, entity.RoleUser)
	require.NoError(t, err)

	revoked, err := svc.RevokeAllForSubject(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, 2, revoked)

	_, err = svc.Validate(ctx, first.Token)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
	_, err = svc.Validate(ctx, second.Token)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)

	_, err = svc.Validate(ctx, other.Token)
	assert.NoError(t, err)
}
