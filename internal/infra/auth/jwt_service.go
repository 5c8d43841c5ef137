// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"context"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"kalado/config"
	"kalado/internal/domain/entity"
	domainerrors "kalado/internal/domain/errors"
	"kalado/internal/domain/repository"
	"kalado/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface
// using the JWT standard. A signed token is only half the story: the token
// store decides whether it is still live, which is what makes revocation
// immediate instead of waiting for expiry.
type jwtService struct {
	secret string
	ttl    time.Duration
	store  repository.TokenStore
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config, store repository.TokenStore) (service.TokenService, error) {
	if cfg.Auth == nil || cfg.Auth.SecretKey == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	ttl := cfg.Auth.TokenTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	return &jwtService{
		secret: cfg.Auth.SecretKey,
		ttl:    ttl,
		store:  store,
	}, nil
}

// Issue creates a signed token for the subject and records it as live.
func (s *jwtService) Issue(ctx context.Context, subjectID int64, role entity.Role) (*service.TokenDetails, error) {
	now := time.Now()
	expiresAt := now.Add(s.ttl)

	claims := jwt.MapClaims{
		"sub":  strconv.FormatInt(subjectID, 10),
		"iat":  now.Unix(),
		"exp":  expiresAt.Unix(),
		"jti":  uuid.New().String(),
		"role": role.String(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.secret))
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign token")
	}

	if err := s.store.Put(ctx, signed, subjectID, s.ttl); err != nil {
		return nil, errors.Wrap(err, "failed to record token")
	}

	return &service.TokenDetails{
		Token:     signed,
		SubjectID: subjectID,
		Role:      role,
		ExpiresAt: expiresAt.Unix(),
	}, nil
}

// Validate checks signature, expiry and store presence. All three must hold.
func (s *jwtService) Validate(ctx context.Context, tokenString string) (*service.TokenDetails, error) {
	parsed, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil || !parsed.Valid {
		return nil, domainerrors.ErrInvalidToken
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domainerrors.ErrInvalidToken
	}

	subject, err := claims.GetSubject()
	if err != nil {
		return nil, domainerrors.ErrInvalidToken
	}
	subjectID, err := strconv.ParseInt(subject, 10, 64)
	if err != nil {
		return nil, domainerrors.ErrInvalidToken
	}

	storedSubject, err := s.store.Get(ctx, tokenString)
	if err != nil {
		if errors.Is(err, repository.ErrTokenNotFound) {
			return nil, domainerrors.ErrInvalidToken
		}

		return nil, errors.Wrap(err, "failed to consult token store")
	}
	if storedSubject != subjectID {
		return nil, domainerrors.ErrInvalidToken
	}

	role, _ := claims["role"].(string)

	expiresAt := int64(0)
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		expiresAt = exp.Unix()
	}

	return &service.TokenDetails{
		Token:     tokenString,
		SubjectID: subjectID,
		Role:      entity.Role(role),
		ExpiresAt: expiresAt,
	}, nil
}

// Revoke invalidates a single token. Revoking an unknown token is a no-op.
func (s *jwtService) Revoke(ctx context.Context, tokenString string) error {
	return s.store.Delete(ctx, tokenString)
}

// RevokeAllForSubject invalidates every live token of a subject.
func (s *jwtService) RevokeAllForSubject(ctx context.Context, subjectID int64) (int, error) {
	return s.store.DeleteAllForSubject(ctx, subjectID)
}
