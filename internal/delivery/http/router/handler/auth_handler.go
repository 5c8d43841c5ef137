// Package handler contains the echo handlers of the HTTP API.
package handler

import (
	"net/http"
	"strings"

	"kalado/internal/delivery/http/middleware"
	"kalado/internal/delivery/http/response"
	"kalado/internal/domain/entity"
	"kalado/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AuthHandler exposes the account and token endpoints.
type AuthHandler struct {
	authUsecase          usecase.AuthUsecase
	verificationUsecase  usecase.VerificationUsecase
	passwordResetUsecase usecase.PasswordResetUsecase
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(
	authUsecase usecase.AuthUsecase,
	verificationUsecase usecase.VerificationUsecase,
	passwordResetUsecase usecase.PasswordResetUsecase,
) *AuthHandler {
	return &AuthHandler{
		authUsecase:          authUsecase,
		verificationUsecase:  verificationUsecase,
		passwordResetUsecase: passwordResetUsecase,
	}
}

type registerRequest struct {
	Username  string `json:"username" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"firstName" validate:"required,max=64"`
	LastName  string `json:"lastName" validate:"required,max=64"`
	Phone     string `json:"phone" validate:"required,max=32"`
	Role      string `json:"role" validate:"required"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type updateRoleRequest struct {
	TargetID int64  `json:"targetId" validate:"required"`
	Role     string `json:"role" validate:"required"`
}

type updatePasswordRequest struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=8"`
}

type sendVerificationRequest struct {
	Username string `json:"username" validate:"required,email"`
}

type forgotPasswordRequest struct {
	Username string `json:"username" validate:"required,email"`
}

type resetPasswordRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=8"`
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_REQUEST", "請求格式錯誤")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	out, err := h.authUsecase.Register(c.Request().Context(), usecase.RegisterInput{
		Username:  req.Username,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Role:      entity.Role(req.Role),
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, map[string]any{
		"userId":   out.UserID,
		"username": out.Username,
		"role":     out.Role.String(),
	}, "註冊成功，請查收驗證信")
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_REQUEST", "請求格式錯誤")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	out, err := h.authUsecase.Login(c.Request().Context(), usecase.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"token":     out.Token,
		"userId":    out.UserID,
		"role":      out.Role.String(),
		"expiresAt": out.ExpiresAt,
	}, "登入成功")
}

// Logout handles POST /auth/logout.
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.authUsecase.Logout(c.Request().Context(), middleware.CallerToken(c)); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "登出成功")
}

// Validate handles GET /auth/validate. A malformed, expired, or revoked
// token yields {valid:false}, never an error response, so service callers
// can branch on the body alone.
func (h *AuthHandler) Validate(c echo.Context) error {
	tokenString := strings.TrimPrefix(c.Request().Header.Get("Authorization"), "Bearer ")
	if tokenString == "" {
		return response.Success(c, http.StatusOK, map[string]any{"valid": false}, "")
	}

	details, err := h.authUsecase.ValidateToken(c.Request().Context(), tokenString)
	if err != nil {
		return response.Success(c, http.StatusOK, map[string]any{"valid": false}, "")
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"valid":  true,
		"userId": details.SubjectID,
		"role":   details.Role.String(),
	}, "")
}

// UpdateRole handles PUT /auth/role. GOD only.
func (h *AuthHandler) UpdateRole(c echo.Context) error {
	var req updateRoleRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_REQUEST", "請求格式錯誤")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	err := h.authUsecase.UpdateUserRole(c.Request().Context(), usecase.UpdateRoleInput{
		ActorID:  middleware.CallerID(c),
		TargetID: req.TargetID,
		NewRole:  entity.Role(req.Role),
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "角色已更新")
}

// UpdatePassword handles PUT /auth/password.
func (h *AuthHandler) UpdatePassword(c echo.Context) error {
	var req updatePasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_REQUEST", "請求格式錯誤")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	err := h.authUsecase.UpdatePassword(c.Request().Context(), usecase.UpdatePasswordInput{
		UserID:      middleware.CallerID(c),
		OldPassword: req.OldPassword,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "密碼已更新，請重新登入")
}

// SendVerification handles POST /auth/verify/send.
func (h *AuthHandler) SendVerification(c echo.Context) error {
	var req sendVerificationRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_REQUEST", "請求格式錯誤")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.verificationUsecase.SendVerification(c.Request().Context(), req.Username); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "驗證信已寄出")
}

// VerifyEmail handles GET /auth/verify.
func (h *AuthHandler) VerifyEmail(c echo.Context) error {
	token := c.QueryParam("token")
	if token == "" {
		return response.BadRequest(c, "MISSING_TOKEN", "缺少驗證權杖")
	}

	if err := h.verificationUsecase.VerifyEmail(c.Request().Context(), token); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "信箱驗證完成")
}

// ForgotPassword handles POST /auth/forgot-password.
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req forgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_REQUEST", "請求格式錯誤")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.passwordResetUsecase.RequestReset(c.Request().Context(), req.Username); err != nil {
		return err
	}

	// Deliberately identical response for known and unknown accounts.
	return response.Success(c, http.StatusOK, nil, "若帳號存在，重設信已寄出")
}

// ResetPassword handles POST /auth/reset-password.
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req resetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_REQUEST", "請求格式錯誤")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.passwordResetUsecase.ResetPassword(c.Request().Context(), req.Token, req.NewPassword); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "密碼已重設，請重新登入")
}
