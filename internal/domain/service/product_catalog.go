package service

import (
	"context"

	"kalado/internal/domain/entity"
)

// ProductCatalog is the client-side view of the product service's read API.
// The search worker uses it at startup to rebuild the index from the source
// of truth.
type ProductCatalog interface {
	// GetAllProducts fetches every product, DELETED ones included.
	GetAllProducts(ctx context.Context) ([]*entity.Product, error)

	// GetProduct fetches a single product by id.
	GetProduct(ctx context.Context, id int64) (*entity.Product, error)
}
