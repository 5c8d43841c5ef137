package impl

import (
	"context"
	"testing"

	"kalado/internal/domain/entity"
	domainerrors "kalado/internal/domain/errors"
	"kalado/internal/domain/repository"
	"kalado/internal/domain/service"
	"kalado/internal/infra/search"
	mockSvc "kalado/internal/mocks/service"
	"kalado/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestIndexerService(t *testing.T) (usecase.IndexerUsecase, repository.ProductIndex, *mockSvc.MockProductCatalog) {
	index := search.NewMemoryIndex()
	catalog := mockSvc.NewMockProductCatalog(t)

	svc := NewIndexerService(IndexerServiceParams{
		Index:   index,
		Catalog: catalog,
		Logger:  newDiscardLogger(),
	})

	return svc, index, catalog
}

func TestIndexerService_ApplyEvent_UpsertsFullDocument(t *testing.T) {
	svc, index, _ := createTestIndexerService(t)
	ctx := context.Background()

	err := svc.ApplyEvent(ctx, &service.ProductEvent{
		EventType: service.ProductCreated,
		Product:   activeProduct(),
	})
	require.NoError(t, err)

	doc, err := index.Get(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, "Mountain bike", doc.Title)
}

func TestIndexerService_ApplyEvent_ReplayConvergesToLatestSnapshot(t *testing.T) {
	svc, index, _ := createTestIndexerService(t)
	ctx := context.Background()

	first := activeProduct()
	updated := activeProduct()
	updated.Title = "Road bike"

	require.NoError(t, svc.ApplyEvent(ctx, &service.ProductEvent{EventType: service.ProductCreated, Product: first}))
	require.NoError(t, svc.ApplyEvent(ctx, &service.ProductEvent{EventType: service.ProductUpdated, Product: updated}))
	// Redelivery of the same event must not move the document backwards.
	require.NoError(t, svc.ApplyEvent(ctx, &service.ProductEvent{EventType: service.ProductUpdated, Product: updated}))

	doc, err := index.Get(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, "Road bike", doc.Title)

	total, err := index.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestIndexerService_ApplyEvent_DeleteRemovesDocument(t *testing.T) {
	svc, index, _ := createTestIndexerService(t)
	ctx := context.Background()

	require.NoError(t, svc.ApplyEvent(ctx, &service.ProductEvent{EventType: service.ProductCreated, Product: activeProduct()}))

	deleted := activeProduct()
	deleted.Status = entity.ProductDeleted
	require.NoError(t, svc.ApplyEvent(ctx, &service.ProductEvent{EventType: service.ProductDeleted, Product: deleted}))
	// Redelivery of the delete is a no-op.
	require.NoError(t, svc.ApplyEvent(ctx, &service.ProductEvent{EventType: service.ProductDeleted, Product: deleted}))

	result, err := index.Search(ctx, repository.SearchQuery{Keyword: "bike", Size: 10})
	require.NoError(t, err)
	assert.Empty(t, result.Hits)

	_, err = index.Get(ctx, 10)
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
}

func TestIndexerService_ApplyEvent_UnknownKindIsIgnored(t *testing.T) {
	svc, index, _ := createTestIndexerService(t)
	ctx := context.Background()

	err := svc.ApplyEvent(ctx, &service.ProductEvent{
		EventType: "ARCHIVED",
		Product:   activeProduct(),
	})
	require.NoError(t, err)

	total, err := index.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestIndexerService_ApplyEvent_RejectsMissingProduct(t *testing.T) {
	svc, _, _ := createTestIndexerService(t)
	ctx := context.Background()

	assert.ErrorIs(t, svc.ApplyEvent(ctx, nil), domainerrors.ErrValidationFailed)
	assert.ErrorIs(t, svc.ApplyEvent(ctx, &service.ProductEvent{EventType: service.ProductCreated}), domainerrors.ErrValidationFailed)
	assert.ErrorIs(t, svc.ApplyEvent(ctx, &service.ProductEvent{
		EventType: service.ProductCreated,
		Product:   &entity.Product{},
	}), domainerrors.ErrValidationFailed)
}

func TestIndexerService_Reconcile_IndexesEverything(t *testing.T) {
	svc, index, catalog := createTestIndexerService(t)
	ctx := context.Background()

	deleted := activeProduct()
	deleted.ID = 11
	deleted.Status = entity.ProductDeleted

	catalog.EXPECT().GetAllProducts(ctx).
		Return([]*entity.Product{activeProduct(), deleted, nil}, nil)

	indexed, err := svc.Reconcile(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, indexed)

	total, err := index.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)

	// The DELETED listing is indexed but stays invisible to queries.
	result, err := index.Search(ctx, repository.SearchQuery{Keyword: "bike", Size: 10})
	require.NoError(t, err)
	require.Len(t, result.Hits, 1)
	assert.Equal(t, int64(10), result.Hits[0].ID)
}

func TestIndexerService_Reconcile_CatalogFailure(t *testing.T) {
	svc, _, catalog := createTestIndexerService(t)
	ctx := context.Background()

	catalog.EXPECT().GetAllProducts(ctx).
		Return(nil, errors.New("catalog unreachable"))

	indexed, err := svc.Reconcile(ctx)
	assert.Error(t, err)
	assert.Zero(t, indexed)
}
