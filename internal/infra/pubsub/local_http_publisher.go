package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	deliverycontext "kalado/internal/delivery/context"
	"kalado/internal/domain/service"
	"kalado/internal/infra/metrics"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// localHTTPPublisher implements ProductEventPublisher by sending HTTP POST
// requests straight to the search worker's push endpoint, simulating Pub/Sub
// push behavior for development
type localHTTPPublisher struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// PubSubPushMessage represents the structure of a Pub/Sub push message
// This mimics the format Google Pub/Sub uses when pushing to HTTP endpoints
type PubSubPushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		OrderingKey string            `json:"orderingKey,omitempty"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewLocalHTTPPublisher creates a new local HTTP publisher for development
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.ProductEventPublisher {
	return &localHTTPPublisher{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// PublishProductEvent publishes an event by sending HTTP POST to the local endpoint
func (p *localHTTPPublisher) PublishProductEvent(ctx context.Context, event *service.ProductEvent) error {
	eventData, err := json.Marshal(event)
	if err != nil {
		metrics.EventsPublished.WithLabelValues(string(event.EventType), "error").Inc()

		return errors.WithStack(err)
	}

	productID := strconv.FormatInt(event.Product.ID, 10)

	pushMsg := PubSubPushMessage{
		Subscription: "projects/local/subscriptions/product-events-sub",
	}
	pushMsg.Message.Data = base64.StdEncoding.EncodeToString(eventData)
	pushMsg.Message.MessageID = uuid.New().String()
	pushMsg.Message.OrderingKey = productID
	pushMsg.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)
	pushMsg.Message.Attributes = map[string]string{
		"event_type": string(event.EventType),
		"product_id": productID,
	}

	body, err := json.Marshal(pushMsg)
	if err != nil {
		metrics.EventsPublished.WithLabelValues(string(event.EventType), "error").Inc()

		return errors.WithStack(err)
	}

	p.logger.Debug("[LocalPubSub] Publishing event",
		slog.String("endpoint", p.endpoint),
		slog.String("event_type", string(event.EventType)),
		slog.String("product_id", productID),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		metrics.EventsPublished.WithLabelValues(string(event.EventType), "error").Inc()

		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		metrics.EventsPublished.WithLabelValues(string(event.EventType), "error").Inc()

		return errors.Errorf("worker returned non-success status: %d", resp.StatusCode)
	}

	metrics.EventsPublished.WithLabelValues(string(event.EventType), "ok").Inc()

	return nil
}

// Close releases resources (no-op for HTTP client)
func (p *localHTTPPublisher) Close() error {
	return nil
}
