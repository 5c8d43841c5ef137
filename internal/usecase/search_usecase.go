package usecase

import (
	"context"

	"kalado/internal/domain/repository"
)

// SearchUsecase defines the interface for querying the product index.
type SearchUsecase interface {
	// Search runs a keyword and filter query against the index. Invalid
	// time filters are ignored with a warning rather than rejected.
	Search(ctx context.Context, query repository.SearchQuery) (*repository.SearchResult, error)
}
