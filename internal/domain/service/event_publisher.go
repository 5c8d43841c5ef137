package service

import (
	"context"

	"kalado/internal/domain/entity"
)

// ProductEventType names the kind of catalog change an event describes.
type ProductEventType string

// The three catalog change kinds. Consumers treat every kind as a
// full-document upsert, so a replayed or reordered event converges to the
// latest state instead of corrupting the index.
const (
	ProductCreated ProductEventType = "CREATE"
	ProductUpdated ProductEventType = "UPDATE"
	ProductDeleted ProductEventType = "DELETE"
)

// ProductEvent is the message published after every product write. It
// carries the complete product snapshot, never a diff.
type ProductEvent struct {
	EventType ProductEventType `json:"eventType"`
	Product   *entity.Product  `json:"product"`
}

// ProductEventPublisher pushes product change events toward the search
// worker. Delivery is at-most-once from the caller's point of view: a
// publish failure is logged and the write proceeds, with the startup
// reconciliation covering the gap.
type ProductEventPublisher interface {
	// PublishProductEvent sends one event. Events for the same product id
	// are delivered in publish order.
	PublishProductEvent(ctx context.Context, event *ProductEvent) error

	// Close releases the underlying transport.
	Close() error
}
