package postgres

import (
	"context"

	"kalado/internal/domain/entity"
	domainerrors "kalado/internal/domain/errors"
	"kalado/internal/domain/repository"
	"kalado/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// reportRepository implements the domain's ReportRepository interface using GORM.
type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository is the constructor for reportRepository.
func NewReportRepository(db *gorm.DB) repository.ReportRepository {
	return &reportRepository{db: db}
}

// FindByID retrieves a single report by its id.
func (repo *reportRepository) FindByID(ctx context.Context, id int64) (*entity.Report, error) {
	var data model.ReportModel
	if err := repo.db.WithContext(ctx).First(&data, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReportNotFound
		}

		return nil, errors.Wrap(err, "failed to find report by id")
	}

	return toReportDomain(&data), nil
}

// FindByReporterID retrieves all reports filed by a user.
func (repo *reportRepository) FindByReporterID(ctx context.Context, reporterID int64) ([]*entity.Report, error) {
	var rows []model.ReportModel
	if err := repo.db.WithContext(ctx).Where("reporter_id = ?", reporterID).Order("id desc").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list reports by reporter")
	}

	return toReportDomainList(rows), nil
}

// FindByStatus retrieves all reports in a given moderation state.
func (repo *reportRepository) FindByStatus(ctx context.Context, status entity.ReportStatus) ([]*entity.Report, error) {
	var rows []model.ReportModel
	if err := repo.db.WithContext(ctx).Where("status = ?", string(status)).Order("id desc").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list reports by status")
	}

	return toReportDomainList(rows), nil
}

// Create persists a new report and writes back the generated id.
func (repo *reportRepository) Create(ctx context.Context, report *entity.Report) error {
	data := fromReportDomain(report)

	if err := repo.db.WithContext(ctx).Create(data).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("缺少必要的檢舉欄位")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create report")
	}

	report.ID = data.ID
	report.CreatedAt = data.CreatedAt
	report.LastUpdatedAt = data.LastUpdatedAt

	return nil
}

// Update modifies an existing report.
func (repo *reportRepository) Update(ctx context.Context, report *entity.Report) error {
	data := fromReportDomain(report)

	if err := repo.db.WithContext(ctx).Save(data).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update report")
	}

	report.LastUpdatedAt = data.LastUpdatedAt

	return nil
}

// --- Mapper Functions ---

func toReportDomain(data *model.ReportModel) *entity.Report {
	if data == nil {
		return nil
	}

	return &entity.Report{
		ID:                data.ID,
		ViolationType:     data.ViolationType,
		Description:       data.Description,
		ReporterID:        data.ReporterID,
		ReportedUserID:    data.ReportedUserID,
		ReportedContentID: data.ReportedContentID,
		EvidenceURLs:      data.EvidenceURLs,
		Status:            entity.ReportStatus(data.Status),
		AdminID:           data.AdminID,
		AdminNotes:        data.AdminNotes,
		UserBlocked:       data.UserBlocked,
		CreatedAt:         data.CreatedAt,
		LastUpdatedAt:     data.LastUpdatedAt,
	}
}

func toReportDomainList(rows []model.ReportModel) []*entity.Report {
	reports := make([]*entity.Report, 0, len(rows))
	for i := range rows {
		reports = append(reports, toReportDomain(&rows[i]))
	}

	return reports
}

func fromReportDomain(data *entity.Report) *model.ReportModel {
	if data == nil {
		return nil
	}

	return &model.ReportModel{
		ID:                data.ID,
		ViolationType:     data.ViolationType,
		Description:       data.Description,
		ReporterID:        data.ReporterID,
		ReportedUserID:    data.ReportedUserID,
		ReportedContentID: data.ReportedContentID,
		EvidenceURLs:      data.EvidenceURLs,
		Status:            string(data.Status),
		AdminID:           data.AdminID,
		AdminNotes:        data.AdminNotes,
		UserBlocked:       data.UserBlocked,
		CreatedAt:         data.CreatedAt,
		LastUpdatedAt:     data.LastUpdatedAt,
	}
}
