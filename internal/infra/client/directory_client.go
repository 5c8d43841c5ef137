// Package client provides typed HTTP clients for the sibling services.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"kalado/config"
	deliverycontext "kalado/internal/delivery/context"
	"kalado/internal/domain/entity"
	"kalado/internal/domain/repository"
	"kalado/internal/domain/service"

	"github.com/pkg/errors"
)

const clientTimeout = 10 * time.Second

// directoryClient implements the UserDirectory interface over the user
// service's HTTP API.
type directoryClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewDirectoryClient creates the user directory client.
func NewDirectoryClient(cfg *config.Config, logger *slog.Logger) service.UserDirectory {
	baseURL := ""
	if cfg.Services != nil {
		baseURL = cfg.Services.UserBaseURL
	}

	return &directoryClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: clientTimeout},
		logger:     logger,
	}
}

// envelope mirrors the standard API response wrapper.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
}

// profilePayload is the wire shape of a user profile.
type profilePayload struct {
	UserID      int64  `json:"userId"`
	Username    string `json:"username"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
	Blocked     bool   `json:"blocked"`
}

// adminProfilePayload is the wire shape of an admin profile.
type adminProfilePayload struct {
	UserID      int64  `json:"userId"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber"`
}

func (c *directoryClient) do(ctx context.Context, method, path string, payload any) (*envelope, int, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, 0, errors.WithStack(err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, 0, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, errors.Wrap(err, "user directory request failed")
	}
	defer resp.Body.Close()

	var wrapped envelope
	if err := json.NewDecoder(resp.Body).Decode(&wrapped); err != nil && !errors.Is(err, io.EOF) {
		return nil, resp.StatusCode, errors.Wrap(err, "failed to decode user directory response")
	}

	return &wrapped, resp.StatusCode, nil
}

// GetProfile fetches the profile of a user.
func (c *directoryClient) GetProfile(ctx context.Context, userID int64) (*entity.Profile, error) {
	wrapped, status, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/v1/users/%d/profile", userID), nil)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return nil, repository.ErrProfileNotFound
	}
	if status != http.StatusOK {
		return nil, errors.Errorf("user directory returned status %d", status)
	}

	var payload profilePayload
	if err := json.Unmarshal(wrapped.Data, &payload); err != nil {
		return nil, errors.Wrap(err, "failed to decode profile")
	}

	return &entity.Profile{
		UserID:      payload.UserID,
		Username:    payload.Username,
		FirstName:   payload.FirstName,
		LastName:    payload.LastName,
		PhoneNumber: payload.PhoneNumber,
		Address:     payload.Address,
		Blocked:     payload.Blocked,
	}, nil
}

// CreateUserProfile creates the directory entry for a new user.
func (c *directoryClient) CreateUserProfile(ctx context.Context, profile *entity.Profile) error {
	payload := profilePayload{
		UserID:      profile.UserID,
		Username:    profile.Username,
		FirstName:   profile.FirstName,
		LastName:    profile.LastName,
		PhoneNumber: profile.PhoneNumber,
		Address:     profile.Address,
	}

	_, status, err := c.do(ctx, http.MethodPost, "/api/v1/users/profile", payload)
	if err != nil {
		return err
	}
	if status != http.StatusOK && status != http.StatusCreated {
		return errors.Errorf("user directory returned status %d", status)
	}

	return nil
}

// CreateAdminProfile creates the directory entry for a new admin.
func (c *directoryClient) CreateAdminProfile(ctx context.Context, profile *entity.AdminProfile) error {
	payload := adminProfilePayload{
		UserID:      profile.UserID,
		FirstName:   profile.FirstName,
		LastName:    profile.LastName,
		PhoneNumber: profile.PhoneNumber,
	}

	_, status, err := c.do(ctx, http.MethodPost, "/api/v1/admins/profile", payload)
	if err != nil {
		return err
	}
	if status != http.StatusOK && status != http.StatusCreated {
		return errors.Errorf("user directory returned status %d", status)
	}

	return nil
}

// BlockUser marks a user as blocked in the directory.
func (c *directoryClient) BlockUser(ctx context.Context, userID int64) error {
	_, status, err := c.do(ctx, http.MethodPost, fmt.Sprintf("/api/v1/users/%d/block", userID), nil)
	if err != nil {
		return err
	}
	if status == http.StatusNotFound {
		return repository.ErrProfileNotFound
	}
	if status != http.StatusOK {
		return errors.Errorf("user directory returned status %d", status)
	}

	c.logger.Info("User blocked via directory", slog.Int64("userID", userID))

	return nil
}
