package repository

import (
	"context"
	"errors"

	"kalado/internal/domain/entity"
)

// ErrReportNotFound is a domain-specific error returned when a report is not found.
var ErrReportNotFound = errors.New("report not found")

// ReportRepository defines the standard operations for abuse report persistence.
type ReportRepository interface {
	// FindByID retrieves a single report by its id.
	FindByID(ctx context.Context, id int64) (*entity.Report, error)

	// FindByReporterID retrieves all reports filed by a user.
	FindByReporterID(ctx context.Context, reporterID int64) ([]*entity.Report, error)

	// FindByStatus retrieves all reports in a given moderation state.
	FindByStatus(ctx context.Context, status entity.ReportStatus) ([]*entity.Report, error)

	// Create persists a new report. The generated id is written back.
	Create(ctx context.Context, report *entity.Report) error

	// Update modifies an existing report (status, admin notes, blocked flag).
	Update(ctx context.Context, report *entity.Report) error
}
