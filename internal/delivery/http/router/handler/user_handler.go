package handler

import (
	"net/http"
	"time"

	"kalado/internal/delivery/http/middleware"
	"kalado/internal/delivery/http/response"
	"kalado/internal/domain/entity"
	"kalado/internal/usecase"

	"github.com/labstack/echo/v4"
)

// UserHandler exposes the user directory endpoints.
type UserHandler struct {
	userUsecase usecase.UserUsecase
}

// NewUserHandler is the constructor for UserHandler.
func NewUserHandler(userUsecase usecase.UserUsecase) *UserHandler {
	return &UserHandler{userUsecase: userUsecase}
}

type updateProfileRequest struct {
	FirstName   string `json:"firstName" validate:"max=100"`
	LastName    string `json:"lastName" validate:"max=100"`
	PhoneNumber string `json:"phoneNumber" validate:"max=32"`
	Address     string `json:"address"`
}

type profileBody struct {
	UserID      int64     `json:"userId"`
	Username    string    `json:"username"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	PhoneNumber string    `json:"phoneNumber"`
	Address     string    `json:"address"`
	Blocked     bool      `json:"blocked"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toProfileBody(profile *entity.Profile) profileBody {
	return profileBody{
		UserID:      profile.UserID,
		Username:    profile.Username,
		FirstName:   profile.FirstName,
		LastName:    profile.LastName,
		PhoneNumber: profile.PhoneNumber,
		Address:     profile.Address,
		Blocked:     profile.Blocked,
		UpdatedAt:   profile.UpdatedAt,
	}
}

// GetMyProfile handles GET /api/v1/users/me.
func (h *UserHandler) GetMyProfile(c echo.Context) error {
	profile, err := h.userUsecase.GetProfile(c.Request().Context(), middleware.CallerID(c))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toProfileBody(profile), "")
}

// GetProfile handles GET /api/v1/users/:id/profile.
func (h *UserHandler) GetProfile(c echo.Context) error {
	userID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	profile, err := h.userUsecase.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toProfileBody(profile), "")
}

// UpdateMyProfile handles PUT /api/v1/users/me.
func (h *UserHandler) UpdateMyProfile(c echo.Context) error {
	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_REQUEST", "請求格式錯誤")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	profile, err := h.userUsecase.UpdateProfile(c.Request().Context(), usecase.UpdateProfileInput{
		UserID:      middleware.CallerID(c),
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toProfileBody(profile), "個人資料已更新")
}

// BlockUser handles POST /api/v1/users/:id/block. Admin only.
func (h *UserHandler) BlockUser(c echo.Context) error {
	userID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.userUsecase.BlockUser(c.Request().Context(), userID); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "使用者已封鎖")
}
