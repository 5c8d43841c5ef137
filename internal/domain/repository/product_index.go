package repository

import (
	"context"
	"time"

	"kalado/internal/domain/entity"
)

// ProductDocument is the denormalized projection of a product stored in the
// search index. It carries everything the search API returns so queries
// never touch the relational store.
type ProductDocument struct {
	ID             int64                `json:"id"`
	Title          string               `json:"title"`
	Description    string               `json:"description"`
	Price          entity.Price         `json:"price"`
	Category       string               `json:"category"`
	ProductionYear int                  `json:"productionYear"`
	Brand          string               `json:"brand"`
	SellerID       int64                `json:"sellerId"`
	ImageURLs      []string             `json:"imageUrls"`
	Status         entity.ProductStatus `json:"status"`
	CreatedAt      time.Time            `json:"createdAt"`
	UpdatedAt      time.Time            `json:"updatedAt"`
}

// TimeFilter restricts search results to recently created products.
type TimeFilter string

// Supported time filter windows. Any other value is ignored by the index.
const (
	TimeFilterDay   TimeFilter = "1D"
	TimeFilterWeek  TimeFilter = "1W"
	TimeFilterMonth TimeFilter = "1M"
)

// SortOrder selects how search hits are ordered.
type SortOrder string

// Supported sort orders. The default is newest first.
const (
	SortPriceAsc  SortOrder = "PRICE_ASC"
	SortPriceDesc SortOrder = "PRICE_DESC"
	SortDateDesc  SortOrder = "DATE_DESC"
)

// SearchQuery captures one search request against the index. Zero values
// mean "no constraint" for every field except Page and Size.
type SearchQuery struct {
	// Keyword is matched fuzzily against title, description and brand.
	Keyword string
	// MinPrice and MaxPrice bound Price.Amount when non-nil.
	MinPrice *float64
	MaxPrice *float64
	// TimeFilter narrows results to a recent creation window.
	TimeFilter TimeFilter
	// Sort orders the hits. Empty means DATE_DESC.
	Sort SortOrder
	// Page is zero-based; Size is the page length.
	Page int
	Size int
}

// SearchResult is one page of hits plus the total match count.
type SearchResult struct {
	Hits  []*ProductDocument
	Total int64
	Page  int
	Size  int
}

// ProductIndex is the derived, queryable copy of the product catalog.
// Upsert is a full-document replace keyed by id, so replaying an event is
// harmless. DELETED products may be stored; Search never returns them.
type ProductIndex interface {
	// Upsert stores or fully replaces the document for doc.ID.
	Upsert(ctx context.Context, doc *ProductDocument) error

	// Delete removes the document for id. Deleting an absent id is not an error.
	Delete(ctx context.Context, id int64) error

	// Get returns the stored document, or ErrProductNotFound.
	Get(ctx context.Context, id int64) (*ProductDocument, error)

	// Search runs a query and returns one page of non-DELETED hits.
	Search(ctx context.Context, query SearchQuery) (*SearchResult, error)

	// Count returns how many documents the index holds, DELETED included.
	Count(ctx context.Context) (int64, error)
}
