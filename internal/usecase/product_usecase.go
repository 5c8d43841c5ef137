package usecase

import (
	"context"

	"kalado/internal/domain/entity"
)

// CreateProductInput defines the data required to list a new product.
type CreateProductInput struct {
	Title          string
	Description    string
	Price          entity.Price
	Category       string
	ProductionYear int
	Brand          string
	SellerID       int64
	ImageURLs      []string
}

// UpdateProductInput defines a product edit. The seller or a privileged
// moderator may edit, and every field replaces the stored one.
type UpdateProductInput struct {
	ProductID      int64
	ActorID        int64
	ActorRole      entity.Role
	Title          string
	Description    string
	Price          entity.Price
	Category       string
	ProductionYear int
	Brand          string
	ImageURLs      []string
}

// ProductUsecase defines the interface for catalog write and read operations.
// Every successful write publishes a change event toward the search worker;
// a publish failure never fails the write.
type ProductUsecase interface {
	// CreateProduct persists a new ACTIVE product and publishes CREATE.
	CreateProduct(ctx context.Context, input CreateProductInput) (*entity.Product, error)

	// UpdateProduct replaces a product's fields and publishes UPDATE.
	UpdateProduct(ctx context.Context, input UpdateProductInput) (*entity.Product, error)

	// UpdateProductStatus moves a product between ACTIVE and RESERVED, or to
	// DELETED. DELETED is terminal. Publishes UPDATE or DELETE accordingly.
	UpdateProductStatus(ctx context.Context, productID, actorID int64, actorRole entity.Role, status entity.ProductStatus) (*entity.Product, error)

	// DeleteProduct soft-deletes a product and publishes DELETE.
	DeleteProduct(ctx context.Context, productID, actorID int64, actorRole entity.Role) error

	// GetProduct returns a single product by id.
	GetProduct(ctx context.Context, productID int64) (*entity.Product, error)

	// GetAllProducts returns every product, DELETED included. This feeds the
	// search worker's startup reconciliation.
	GetAllProducts(ctx context.Context) ([]*entity.Product, error)

	// GetProductsBySeller returns a seller's listings.
	GetProductsBySeller(ctx context.Context, sellerID int64) ([]*entity.Product, error)

	// GetProductsByCategory returns the products in a category.
	GetProductsByCategory(ctx context.Context, category string) ([]*entity.Product, error)
}
