package repository

import (
	"context"
	"errors"

	"kalado/internal/domain/entity"
)

// ErrProductNotFound is a domain-specific error returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the standard operations for product persistence.
// The relational store behind this interface is the source of truth; the
// search index is only ever a derived copy.
type ProductRepository interface {
	// FindByID retrieves a single product by its id.
	FindByID(ctx context.Context, id int64) (*entity.Product, error)

	// FindAll retrieves every product, including DELETED ones. Used by the
	// read API that feeds the search worker's startup reconciliation.
	FindAll(ctx context.Context) ([]*entity.Product, error)

	// FindBySellerID retrieves all products listed by a seller.
	FindBySellerID(ctx context.Context, sellerID int64) ([]*entity.Product, error)

	// FindByCategory retrieves all products in a category.
	FindByCategory(ctx context.Context, category string) ([]*entity.Product, error)

	// Create persists a new product. The generated id is written back.
	Create(ctx context.Context, product *entity.Product) error

	// Update modifies an existing product.
	Update(ctx context.Context, product *entity.Product) error
}
