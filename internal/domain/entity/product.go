package entity

import "time"

// ProductStatus represents the lifecycle state of a product listing.
type ProductStatus string

const (
	// ProductActive is the default state of a visible listing.
	ProductActive ProductStatus = "ACTIVE"
	// ProductReserved marks a listing held for a pending transaction.
	ProductReserved ProductStatus = "RESERVED"
	// ProductDeleted is terminal; a deleted listing never changes state again.
	ProductDeleted ProductStatus = "DELETED"
)

// String returns the string representation of the ProductStatus.
func (s ProductStatus) String() string {
	return string(s)
}

// IsValid checks if the ProductStatus is a valid value.
func (s ProductStatus) IsValid() bool {
	switch s {
	case ProductActive, ProductReserved, ProductDeleted:
		return true
	default:
		return false
	}
}

// Price is the monetary value of a listing, kept as an amount plus a
// currency unit rather than a bare float field.
type Price struct {
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

// Product is a marketplace listing. The relational store owns this entity;
// the search index only ever holds a derived projection of it.
type Product struct {
	ID             int64
	Title          string
	Description    string
	Price          Price
	Category       string
	ProductionYear int
	Brand          string
	SellerID       int64
	ImageURLs      []string
	Status         ProductStatus
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
