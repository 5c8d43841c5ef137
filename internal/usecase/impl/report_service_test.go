package impl

import (
	"context"
	"testing"

	"kalado/internal/domain/entity"
	domainerrors "kalado/internal/domain/errors"
	"kalado/internal/domain/repository"
	"kalado/internal/domain/service"
	mockRepo "kalado/internal/mocks/repository"
	mockSvc "kalado/internal/mocks/service"
	"kalado/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type reportServiceFixture struct {
	txManager   *mockRepo.MockTransactionManager
	factory     *mockRepo.MockRepositoryFactory
	reportRepo  *mockRepo.MockReportRepository
	profileRepo *mockRepo.MockProfileRepository
	productRepo *mockRepo.MockProductRepository
	publisher   *mockSvc.MockProductEventPublisher
}

func createTestReportService(t *testing.T) (usecase.ReportUsecase, *reportServiceFixture) {
	f := &reportServiceFixture{
		txManager:   mockRepo.NewMockTransactionManager(t),
		factory:     mockRepo.NewMockRepositoryFactory(t),
		reportRepo:  mockRepo.NewMockReportRepository(t),
		profileRepo: mockRepo.NewMockProfileRepository(t),
		productRepo: mockRepo.NewMockProductRepository(t),
		publisher:   mockSvc.NewMockProductEventPublisher(t),
	}

	svc := NewReportService(ReportServiceParams{
		TxManager:  f.txManager,
		ReportRepo: f.reportRepo,
		Publisher:  f.publisher,
		Logger:     newDiscardLogger(),
	})

	return svc, f
}

func submittedReport() *entity.Report {
	return &entity.Report{
		ID:             5,
		ViolationType:  "SCAM",
		Description:    "fake listing",
		ReporterID:     1,
		ReportedUserID: 42,
		Status:         entity.ReportSubmitted,
	}
}

func TestReportService_SubmitReport_CreatesSubmitted(t *testing.T) {
	svc, f := createTestReportService(t)
	ctx := context.Background()

	f.factory.EXPECT().ReportRepo().Return(f.reportRepo)
	expectTransaction(f.txManager, f.factory)

	f.reportRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Report")).
		Run(func(_ context.Context, report *entity.Report) {
			report.ID = 5
			assert.Equal(t, entity.ReportSubmitted, report.Status)
		}).
		Return(nil)

	report, err := svc.SubmitReport(ctx, usecase.SubmitReportInput{
		ViolationType:  "SCAM",
		Description:    "fake listing",
		ReporterID:     1,
		ReportedUserID: 42,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), report.ID)
	assert.Equal(t, entity.ReportSubmitted, report.Status)
}

func TestReportService_SubmitReport_RequiresTypeAndDescription(t *testing.T) {
	svc, _ := createTestReportService(t)

	report, err := svc.SubmitReport(context.Background(), usecase.SubmitReportInput{
		ViolationType: "",
		Description:   "something",
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Nil(t, report)
}

func TestReportService_ResolveReport_RejectWithoutBlock(t *testing.T) {
	svc, f := createTestReportService(t)
	ctx := context.Background()

	f.factory.EXPECT().ReportRepo().Return(f.reportRepo)
	expectTransaction(f.txManager, f.factory)

	f.reportRepo.EXPECT().FindByID(ctx, int64(5)).Return(submittedReport(), nil)
	f.reportRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Report")).
		Run(func(_ context.Context, report *entity.Report) {
			assert.Equal(t, entity.ReportRejected, report.Status)
			assert.Equal(t, int64(9), report.AdminID)
			assert.False(t, report.UserBlocked)
		}).
		Return(nil)

	report, err := svc.ResolveReport(ctx, usecase.ResolveReportInput{
		ReportID: 5,
		AdminID:  9,
		Status:   entity.ReportRejected,
		Notes:    "not a violation",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ReportRejected, report.Status)
}

func TestReportService_ResolveReport_BlockCascadeRemovesListings(t *testing.T) {
	svc, f := createTestReportService(t)
	ctx := context.Background()

	f.factory.EXPECT().ReportRepo().Return(f.reportRepo)
	f.factory.EXPECT().ProfileRepo().Return(f.profileRepo)
	f.factory.EXPECT().ProductRepo().Return(f.productRepo)
	expectTransaction(f.txManager, f.factory)

	f.reportRepo.EXPECT().FindByID(ctx, int64(5)).Return(submittedReport(), nil)
	f.reportRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Report")).
		Return(nil)

	f.profileRepo.EXPECT().FindByUserID(ctx, int64(42)).
		Return(&entity.Profile{UserID: 42, Blocked: false}, nil)
	f.profileRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Profile")).
		Run(func(_ context.Context, profile *entity.Profile) {
			assert.True(t, profile.Blocked)
		}).
		Return(nil)

	alreadyDeleted := activeProduct()
	alreadyDeleted.ID = 11
	alreadyDeleted.Status = entity.ProductDeleted

	f.productRepo.EXPECT().FindBySellerID(ctx, int64(42)).
		Return([]*entity.Product{activeProduct(), alreadyDeleted}, nil)
	f.productRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(_ context.Context, product *entity.Product) {
			assert.Equal(t, int64(10), product.ID)
			assert.Equal(t, entity.ProductDeleted, product.Status)
		}).
		Return(nil).
		Once()

	// Only the listing that was still live produces a DELETE event.
	f.publisher.EXPECT().
		PublishProductEvent(ctx, mock.AnythingOfType("*service.ProductEvent")).
		Run(func(_ context.Context, event *service.ProductEvent) {
			assert.Equal(t, service.ProductDeleted, event.EventType)
			assert.Equal(t, int64(10), event.Product.ID)
		}).
		Return(nil).
		Once()

	report, err := svc.ResolveReport(ctx, usecase.ResolveReportInput{
		ReportID:  5,
		AdminID:   9,
		Status:    entity.ReportResolved,
		BlockUser: true,
	})
	require.NoError(t, err)
	assert.True(t, report.UserBlocked)
}

func TestReportService_ResolveReport_BlockCascadeSurvivesPublishFailure(t *testing.T) {
	svc, f := createTestReportService(t)
	ctx := context.Background()

	f.factory.EXPECT().ReportRepo().Return(f.reportRepo)
	f.factory.EXPECT().ProfileRepo().Return(f.profileRepo)
	f.factory.EXPECT().ProductRepo().Return(f.productRepo)
	expectTransaction(f.txManager, f.factory)

	f.reportRepo.EXPECT().FindByID(ctx, int64(5)).Return(submittedReport(), nil)
	f.reportRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Report")).
		Return(nil)

	f.profileRepo.EXPECT().FindByUserID(ctx, int64(42)).
		Return(nil, repository.ErrProfileNotFound)

	f.productRepo.EXPECT().FindBySellerID(ctx, int64(42)).
		Return([]*entity.Product{activeProduct()}, nil)
	f.productRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Product")).
		Return(nil)

	f.publisher.EXPECT().
		PublishProductEvent(ctx, mock.AnythingOfType("*service.ProductEvent")).
		Return(errors.New("broker unreachable"))

	report, err := svc.ResolveReport(ctx, usecase.ResolveReportInput{
		ReportID:  5,
		AdminID:   9,
		Status:    entity.ReportResolved,
		BlockUser: true,
	})
	require.NoError(t, err)
	assert.NotNil(t, report)
}

func TestReportService_ResolveReport_OnlyFromSubmitted(t *testing.T) {
	svc, f := createTestReportService(t)
	ctx := context.Background()

	f.factory.EXPECT().ReportRepo().Return(f.reportRepo)
	expectTransaction(f.txManager, f.factory)

	resolved := submittedReport()
	resolved.Status = entity.ReportResolved
	f.reportRepo.EXPECT().FindByID(ctx, int64(5)).Return(resolved, nil)

	report, err := svc.ResolveReport(ctx, usecase.ResolveReportInput{
		ReportID: 5,
		AdminID:  9,
		Status:   entity.ReportRejected,
	})
	assert.ErrorIs(t, err, domainerrors.ErrConflict)
	assert.Nil(t, report)
}

func TestReportService_ResolveReport_RejectsSubmittedAsDecision(t *testing.T) {
	svc, _ := createTestReportService(t)

	report, err := svc.ResolveReport(context.Background(), usecase.ResolveReportInput{
		ReportID: 5,
		AdminID:  9,
		Status:   entity.ReportSubmitted,
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Nil(t, report)
}

func TestReportService_GetReport_NotFound(t *testing.T) {
	svc, f := createTestReportService(t)
	ctx := context.Background()

	f.reportRepo.EXPECT().FindByID(ctx, int64(99)).
		Return(nil, repository.ErrReportNotFound)

	report, err := svc.GetReport(ctx, 99)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	assert.Nil(t, report)
}

func TestReportService_GetReportsByStatus_RejectsUnknownStatus(t *testing.T) {
	svc, _ := createTestReportService(t)

	reports, err := svc.GetReportsByStatus(context.Background(), entity.ReportStatus("BROKEN"))
	require.Error(t, err)
	assert.Nil(t, reports)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}
