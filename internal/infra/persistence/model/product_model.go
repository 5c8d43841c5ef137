package model

import "time"

// ProductModel mirrors the 'products' table. Deletion is a status change,
// never a row removal, so the search worker can learn about removals the
// same way it learns about edits.
type ProductModel struct {
	ID             int64   `gorm:"primaryKey;autoIncrement"`
	Title          string  `gorm:"type:varchar(255);not null"`
	Description    string  `gorm:"type:text"`
	PriceAmount    float64 `gorm:"not null"`
	PriceUnit      string  `gorm:"type:varchar(16);not null"`
	Category       string  `gorm:"type:varchar(100);index"`
	ProductionYear int
	Brand          string   `gorm:"type:varchar(100)"`
	SellerID       int64    `gorm:"not null;index"`
	ImageURLs      []string `gorm:"type:jsonb;serializer:json"`
	Status         string   `gorm:"type:varchar(16);not null;index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
