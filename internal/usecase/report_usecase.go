package usecase

import (
	"context"

	"kalado/internal/domain/entity"
)

// SubmitReportInput defines the data required to file an abuse report.
type SubmitReportInput struct {
	ViolationType     string
	Description       string
	ReporterID        int64
	ReportedUserID    int64
	ReportedContentID int64
	EvidenceURLs      []string
}

// ResolveReportInput defines an admin decision on a report.
type ResolveReportInput struct {
	ReportID  int64
	AdminID   int64
	Status    entity.ReportStatus
	Notes     string
	BlockUser bool
}

// ReportUsecase defines the interface for the moderation flow.
type ReportUsecase interface {
	// SubmitReport files a new report in SUBMITTED state.
	SubmitReport(ctx context.Context, input SubmitReportInput) (*entity.Report, error)

	// GetReport returns a single report.
	GetReport(ctx context.Context, reportID int64) (*entity.Report, error)

	// GetMyReports returns the reports filed by a user.
	GetMyReports(ctx context.Context, reporterID int64) ([]*entity.Report, error)

	// GetReportsByStatus returns the reports in a moderation state.
	GetReportsByStatus(ctx context.Context, status entity.ReportStatus) ([]*entity.Report, error)

	// ResolveReport records an admin decision. When BlockUser is set the
	// reported user is blocked in the directory and all of their products
	// are soft-deleted.
	ResolveReport(ctx context.Context, input ResolveReportInput) (*entity.Report, error)
}
