package entity

import "time"

// ReportStatus represents the moderation state of an abuse report.
type ReportStatus string

const (
	// ReportSubmitted is the initial state of a new report.
	ReportSubmitted ReportStatus = "SUBMITTED"
	// ReportResolved means an admin acted on the report.
	ReportResolved ReportStatus = "RESOLVED"
	// ReportRejected means an admin dismissed the report.
	ReportRejected ReportStatus = "REJECTED"
)

// IsValid checks if the ReportStatus is a valid value.
func (s ReportStatus) IsValid() bool {
	switch s {
	case ReportSubmitted, ReportResolved, ReportRejected:
		return true
	default:
		return false
	}
}

// Report is an abuse report filed by a user against a seller's listing.
// Only admins mutate a report after submission.
type Report struct {
	ID                int64
	ViolationType     string
	Description       string
	ReporterID        int64
	ReportedUserID    int64
	ReportedContentID int64
	EvidenceURLs      []string
	Status            ReportStatus
	AdminID           int64
	AdminNotes        string
	UserBlocked       bool
	CreatedAt         time.Time
	LastUpdatedAt     time.Time
}
