package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "kalado/internal/delivery/context"
	"kalado/internal/domain/entity"
	domainerrors "kalado/internal/domain/errors"
	"kalado/internal/domain/repository"
	"kalado/internal/domain/service"
	"kalado/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// reportService implements the ReportUsecase interface.
type reportService struct {
	txManager  repository.TransactionManager
	reportRepo repository.ReportRepository
	publisher  service.ProductEventPublisher
	logger     *slog.Logger
}

// ReportServiceParams holds dependencies for ReportService, injected by Fx.
type ReportServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	ReportRepo repository.ReportRepository
	Publisher  service.ProductEventPublisher
	Logger     *slog.Logger
}

// NewReportService is the constructor for reportService.
func NewReportService(params ReportServiceParams) usecase.ReportUsecase {
	return &reportService{
		txManager:  params.TxManager,
		reportRepo: params.ReportRepo,
		publisher:  params.Publisher,
		logger:     params.Logger,
	}
}

func (srv *reportService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SubmitReport files a new report in SUBMITTED state.
func (srv *reportService) SubmitReport(ctx context.Context, input usecase.SubmitReportInput) (*entity.Report, error) {
	if input.ViolationType == "" || input.Description == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("檢舉類型與描述不可為空")
	}

	now := time.Now()
	report := &entity.Report{
		ViolationType:     input.ViolationType,
		Description:       input.Description,
		ReporterID:        input.ReporterID,
		ReportedUserID:    input.ReportedUserID,
		ReportedContentID: input.ReportedContentID,
		EvidenceURLs:      input.EvidenceURLs,
		Status:            entity.ReportSubmitted,
		CreatedAt:         now,
		LastUpdatedAt:     now,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.ReportRepo().Create(ctx, report)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to submit report", slog.Int64("reporterID", input.ReporterID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to submit report")
	}

	srv.log(ctx).Info("Report submitted", slog.Int64("reportID", report.ID), slog.Int64("reportedUserID", report.ReportedUserID))

	return report, nil
}

// GetReport returns a single report.
func (srv *reportService) GetReport(ctx context.Context, reportID int64) (*entity.Report, error) {
	report, err := srv.reportRepo.FindByID(ctx, reportID)
	if err != nil {
		if errors.Is(err, repository.ErrReportNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to find report")
	}

	return report, nil
}

// GetMyReports returns the reports filed by a user.
func (srv *reportService) GetMyReports(ctx context.Context, reporterID int64) ([]*entity.Report, error) {
	reports, err := srv.reportRepo.FindByReporterID(ctx, reporterID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reports")
	}

	return reports, nil
}

// GetReportsByStatus returns the reports in a moderation state.
func (srv *reportService) GetReportsByStatus(ctx context.Context, status entity.ReportStatus) ([]*entity.Report, error) {
	if !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown status: " + string(status))
	}

	reports, err := srv.reportRepo.FindByStatus(ctx, status)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reports by status")
	}

	return reports, nil
}

// ResolveReport records an admin decision. When BlockUser is set, the
// reported user is blocked and all their listings are soft-deleted in the
// same transaction; the matching DELETE events go out after commit.
func (srv *reportService) ResolveReport(ctx context.Context, input usecase.ResolveReportInput) (*entity.Report, error) {
	if input.Status != entity.ReportResolved && input.Status != entity.ReportRejected {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("裁決狀態必須為 RESOLVED 或 REJECTED")
	}

	var resolved *entity.Report
	var removedProducts []*entity.Product
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		reportRepo := repoFactory.ReportRepo()

		report, err := reportRepo.FindByID(ctx, input.ReportID)
		if err != nil {
			if errors.Is(err, repository.ErrReportNotFound) {
				return domainerrors.ErrNotFound
			}

			return errors.Wrap(err, "failed to find report")
		}

		if report.Status != entity.ReportSubmitted {
			return domainerrors.ErrConflict.WrapMessage("檢舉已被裁決")
		}

		report.Status = input.Status
		report.AdminID = input.AdminID
		report.AdminNotes = input.Notes
		report.UserBlocked = input.BlockUser
		report.LastUpdatedAt = time.Now()

		if err := reportRepo.Update(ctx, report); err != nil {
			return errors.Wrap(err, "failed to update report")
		}

		if input.BlockUser {
			removedProducts, err = srv.applyBlockCascade(ctx, repoFactory, report.ReportedUserID)
			if err != nil {
				return err
			}
		}

		resolved = report

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to resolve report", slog.Int64("reportID", input.ReportID), slog.Any("error", err))

		return nil, err
	}

	for _, product := range removedProducts {
		event := &service.ProductEvent{EventType: service.ProductDeleted, Product: product}
		if err := srv.publisher.PublishProductEvent(ctx, event); err != nil {
			srv.log(ctx).Warn("Failed to publish delete event after block", slog.Int64("productID", product.ID), slog.Any("error", err))
		}
	}

	srv.log(ctx).Info("Report resolved",
		slog.Int64("reportID", input.ReportID),
		slog.Any("status", input.Status),
		slog.Bool("userBlocked", input.BlockUser))

	return resolved, nil
}

// applyBlockCascade blocks the user's profile and soft-deletes every one of
// their listings. Returns the listings that were removed.
func (srv *reportService) applyBlockCascade(ctx context.Context, repoFactory repository.RepositoryFactory, userID int64) ([]*entity.Product, error) {
	profileRepo := repoFactory.ProfileRepo()

	profile, err := profileRepo.FindByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, repository.ErrProfileNotFound) {
			return nil, errors.Wrap(err, "failed to find reported user profile")
		}
	} else if !profile.Blocked {
		profile.Blocked = true
		profile.UpdatedAt = time.Now()
		if err := profileRepo.Update(ctx, profile); err != nil {
			return nil, errors.Wrap(err, "failed to block reported user")
		}
	}

	productRepo := repoFactory.ProductRepo()
	products, err := productRepo.FindBySellerID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reported user products")
	}

	removed := make([]*entity.Product, 0, len(products))
	for _, product := range products {
		if product.Status == entity.ProductDeleted {
			continue
		}

		product.Status = entity.ProductDeleted
		product.UpdatedAt = time.Now()
		if err := productRepo.Update(ctx, product); err != nil {
			return nil, errors.Wrap(err, "failed to soft-delete product")
		}

		removed = append(removed, product)
	}

	return removed, nil
}
