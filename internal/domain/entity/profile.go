package entity

import "time"

// Profile holds the directory data for a regular user. It lives in the user
// domain and is provisioned by the authentication flow after registration.
type Profile struct {
	UserID      int64
	Username    string
	FirstName   string
	LastName    string
	PhoneNumber string
	Address     string
	Blocked     bool
	UpdatedAt   time.Time
}

// AdminProfile holds the directory data for an admin or god account.
type AdminProfile struct {
	UserID      int64
	FirstName   string
	LastName    string
	PhoneNumber string
	UpdatedAt   time.Time
}
