// Package handler contains the search worker's echo handlers.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"kalado/config"
	deliverycontext "kalado/internal/delivery/context"
	"kalado/internal/domain/constants"
	domainerrors "kalado/internal/domain/errors"
	"kalado/internal/domain/service"
	"kalado/internal/infra/metrics"
	"kalado/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// PushHandler handles Pub/Sub push deliveries of product change events.
type PushHandler struct {
	verifyPushAuth bool
	logger         *slog.Logger
	indexerUsecase usecase.IndexerUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config         *config.Config
	Logger         *slog.Logger
	IndexerUsecase usecase.IndexerUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Only Google-originated pushes carry a verifiable OIDC token.
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		logger:         params.Logger,
		indexerUsecase: params.IndexerUsecase,
	}
}

// HandlePush handles incoming Pub/Sub push messages. A malformed envelope is
// acknowledged with 400 so the broker does not redeliver garbage; an index
// failure returns 503 so the broker retries the delivery.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))
		metrics.EventsConsumed.WithLabelValues("ignored").Inc()

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))
		metrics.EventsConsumed.WithLabelValues("ignored").Inc()

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.ProductEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse product event", slog.Any("error", err))
		metrics.EventsConsumed.WithLabelValues("ignored").Inc()

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := h.extractRequestID(ctx, &pushMsg)
	reqLogger := h.logger.With(slog.String("request_id", requestID))

	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	if event.EventType == "" || event.Product == nil {
		reqLogger.Warn("[Worker] Ignoring event without type or product",
			slog.String("message_id", pushMsg.Message.MessageID),
		)
		metrics.EventsConsumed.WithLabelValues("ignored").Inc()

		// Acknowledge so the broker does not redeliver an unusable event.
		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Processing product event",
		slog.String("event_type", string(event.EventType)),
		slog.Int64("product_id", event.Product.ID),
	)

	if err := h.indexerUsecase.ApplyEvent(ctx, &event); err != nil {
		// A validation failure will never succeed on retry; acknowledge it
		// so the broker does not redeliver forever.
		if errors.Is(err, domainerrors.ErrValidationFailed) {
			reqLogger.Warn("[Worker] Dropping invalid product event",
				slog.Int64("product_id", event.Product.ID),
				slog.Any("error", err),
			)
			metrics.EventsConsumed.WithLabelValues("ignored").Inc()

			return c.NoContent(http.StatusOK)
		}

		reqLogger.Error("[Worker] Failed to apply product event",
			slog.Int64("product_id", event.Product.ID),
			slog.Any("error", err),
		)
		metrics.EventsConsumed.WithLabelValues("failed").Inc()

		// 503 triggers a Pub/Sub retry; the upsert is idempotent so a
		// redelivery is safe.
		return c.NoContent(http.StatusServiceUnavailable)
	}

	metrics.EventsConsumed.WithLabelValues("applied").Inc()
	reqLogger.Info("[Worker] Product event applied",
		slog.Int64("product_id", event.Product.ID),
	)

	return c.NoContent(http.StatusOK)
}

// extractRequestID extracts request_id from message attributes, context, or generates a new one
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience must be the URL of this push endpoint.
	scheme := "https"
	if req.TLS == nil {
		scheme = "http" // For local development
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	ctx := req.Context()
	payload, err := idtoken.Validate(ctx, token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
