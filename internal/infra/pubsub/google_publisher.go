package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"

	"kalado/internal/domain/service"
	"kalado/internal/infra/metrics"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// googlePubSubPublisher implements ProductEventPublisher using Google Cloud Pub/Sub
type googlePubSubPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

// NewGooglePubSubPublisher creates a new Google Pub/Sub publisher
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.ProductEventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	// Fail fast if the topic does not exist
	topicPath := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	_, err = client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{
		Topic: topicPath,
	})
	if err != nil {
		client.Close()

		return nil, errors.Wrapf(err, "failed to get topic %s", topicID)
	}

	publisher := client.Publisher(topicID)
	// Per-product ordering needs ordering enabled on the publisher.
	publisher.EnableMessageOrdering = true

	logger.Info("Google Pub/Sub publisher initialized",
		slog.String("project_id", projectID),
		slog.String("topic_id", topicID),
	)

	return &googlePubSubPublisher{
		client:    client,
		publisher: publisher,
		logger:    logger,
	}, nil
}

// PublishProductEvent publishes an event to Google Pub/Sub. The ordering key
// is the product id, so events for one product arrive in publish order while
// different products still fan out in parallel.
func (p *googlePubSubPublisher) PublishProductEvent(ctx context.Context, event *service.ProductEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		metrics.EventsPublished.WithLabelValues(string(event.EventType), "error").Inc()

		return errors.WithStack(err)
	}

	productID := strconv.FormatInt(event.Product.ID, 10)
	msg := &pubsub.Message{
		Data:        data,
		OrderingKey: productID,
		Attributes: map[string]string{
			"event_type": string(event.EventType),
			"product_id": productID,
		},
	}

	p.logger.Debug("[GooglePubSub] Publishing event",
		slog.String("event_type", string(event.EventType)),
		slog.String("product_id", productID),
	)

	result := p.publisher.Publish(ctx, msg)

	serverID, err := result.Get(ctx)
	if err != nil {
		metrics.EventsPublished.WithLabelValues(string(event.EventType), "error").Inc()

		return errors.WithStack(err)
	}

	metrics.EventsPublished.WithLabelValues(string(event.EventType), "ok").Inc()
	p.logger.Debug("[GooglePubSub] Event published successfully",
		slog.String("product_id", productID),
		slog.String("server_id", serverID),
	)

	return nil
}

// Close releases Pub/Sub client resources
func (p *googlePubSubPublisher) Close() error {
	if p.publisher != nil {
		p.publisher.Stop()
	}
	if p.client != nil {
		return errors.WithStack(p.client.Close())
	}

	return nil
}
