package usecase

import (
	"context"

	"kalado/internal/domain/service"
)

// IndexerUsecase keeps the search index in sync with the catalog. The push
// handler feeds it events; Reconcile runs once at worker startup.
type IndexerUsecase interface {
	// ApplyEvent applies one product change event to the index. Every event
	// kind is treated as a full-document upsert, so duplicates and replays
	// converge instead of corrupting the index.
	ApplyEvent(ctx context.Context, event *service.ProductEvent) error

	// Reconcile rebuilds the index from the catalog's source of truth. It
	// upserts every product it can fetch and returns how many it indexed.
	Reconcile(ctx context.Context) (int, error)
}
