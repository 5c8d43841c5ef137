package model

import "time"

// ProfileModel mirrors the 'profiles' table. UserID references credentials.id.
type ProfileModel struct {
	UserID      int64  `gorm:"primaryKey"`
	Username    string `gorm:"type:varchar(255);not null"`
	FirstName   string `gorm:"type:varchar(100)"`
	LastName    string `gorm:"type:varchar(100)"`
	PhoneNumber string `gorm:"type:varchar(32)"`
	Address     string `gorm:"type:text"`
	Blocked     bool   `gorm:"not null;default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}

// AdminProfileModel mirrors the 'admin_profiles' table.
type AdminProfileModel struct {
	UserID      int64  `gorm:"primaryKey"`
	FirstName   string `gorm:"type:varchar(100)"`
	LastName    string `gorm:"type:varchar(100)"`
	PhoneNumber string `gorm:"type:varchar(32)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (AdminProfileModel) TableName() string {
	return "admin_profiles"
}
