package model

import "time"

// ReportModel mirrors the 'reports' table.
type ReportModel struct {
	ID                int64  `gorm:"primaryKey;autoIncrement"`
	ViolationType     string `gorm:"type:varchar(64);not null"`
	Description       string `gorm:"type:text;not null"`
	ReporterID        int64  `gorm:"not null;index"`
	ReportedUserID    int64  `gorm:"not null;index"`
	ReportedContentID int64
	EvidenceURLs      []string `gorm:"type:jsonb;serializer:json"`
	Status            string   `gorm:"type:varchar(16);not null;index"`
	AdminID           int64
	AdminNotes        string `gorm:"type:text"`
	UserBlocked       bool   `gorm:"not null;default:false"`
	CreatedAt         time.Time
	LastUpdatedAt     time.Time `gorm:"autoUpdateTime"`
}

// TableName explicitly sets the table name for GORM.
func (ReportModel) TableName() string {
	return "reports"
}
