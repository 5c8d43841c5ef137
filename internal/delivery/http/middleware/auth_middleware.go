// Package middleware contains the HTTP API's echo middleware.
package middleware

import (
	"strings"

	"kalado/internal/delivery/http/response"
	"kalado/internal/domain/entity"
	"kalado/internal/usecase"

	"github.com/labstack/echo/v4"
)

// Context keys set by Authenticate for downstream handlers.
const (
	ContextKeyUserID = "userID"
	ContextKeyRole   = "role"
	ContextKeyToken  = "token"
)

// AuthMiddleware provides middleware for token authentication and role checks.
// Validation goes through the usecase so a revoked token is rejected even
// when its signature still verifies.
type AuthMiddleware struct {
	authUsecase usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authUsecase usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{authUsecase: authUsecase}
}

// Authenticate validates the bearer token and stores the caller's identity
// on the echo context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "缺少授權標頭")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "INVALID_TOKEN_FORMAT", "授權標頭格式錯誤")
		}

		details, err := m.authUsecase.ValidateToken(c.Request().Context(), tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "無效或過期的憑證")
		}

		c.Set(ContextKeyUserID, details.SubjectID)
		c.Set(ContextKeyRole, details.Role)
		c.Set(ContextKeyToken, tokenString)

		return next(c)
	}
}

// RequireRole is a middleware factory that checks the caller has one of the
// given roles. It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get(ContextKeyRole).(entity.Role)
			if !ok {
				return response.Forbidden(c, "ROLE_MISSING", "缺少角色資訊")
			}

			for _, allowed := range roles {
				if role == allowed {
					return next(c)
				}
			}

			return response.Forbidden(c, "INSUFFICIENT_PRIVILEGES", "權限不足")
		}
	}
}

// CallerID extracts the authenticated user id from the echo context.
func CallerID(c echo.Context) int64 {
	id, _ := c.Get(ContextKeyUserID).(int64)

	return id
}

// CallerRole extracts the authenticated role from the echo context.
func CallerRole(c echo.Context) entity.Role {
	role, _ := c.Get(ContextKeyRole).(entity.Role)

	return role
}

// CallerToken extracts the raw bearer token from the echo context.
func CallerToken(c echo.Context) string {
	token, _ := c.Get(ContextKeyToken).(string)

	return token
}
