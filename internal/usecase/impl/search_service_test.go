package impl

import (
	"context"
	"testing"
	"time"

	"kalado/internal/domain/entity"
	"kalado/internal/domain/repository"
	"kalado/internal/infra/search"
	"kalado/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestSearchService(t *testing.T) (usecase.SearchUsecase, repository.ProductIndex) {
	t.Helper()

	index := search.NewMemoryIndex()
	svc := NewSearchService(SearchServiceParams{
		Index:  index,
		Logger: newDiscardLogger(),
	})

	return svc, index
}

func seedDocument(t *testing.T, index repository.ProductIndex, id int64, title string, amount float64, createdAt time.Time) {
	t.Helper()

	err := index.Upsert(context.Background(), &repository.ProductDocument{
		ID:        id,
		Title:     title,
		Price:     entity.Price{Amount: amount, Unit: "USD"},
		Status:    entity.ProductActive,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	})
	require.NoError(t, err)
}

func TestSearchService_Search_AppliesDefaults(t *testing.T) {
	svc, index := createTestSearchService(t)
	ctx := context.Background()

	seedDocument(t, index, 1, "Mountain bike", 100, time.Now())

	result, err := svc.Search(ctx, repository.SearchQuery{Keyword: "bike", Page: -3})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Page)
	assert.Equal(t, defaultPageSize, result.Size)
	require.Len(t, result.Hits, 1)
}

func TestSearchService_Search_CapsPageSize(t *testing.T) {
	svc, index := createTestSearchService(t)
	ctx := context.Background()

	seedDocument(t, index, 1, "Mountain bike", 100, time.Now())

	result, err := svc.Search(ctx, repository.SearchQuery{Keyword: "bike", Size: 10000})
	require.NoError(t, err)
	assert.Equal(t, maxPageSize, result.Size)
}

func TestSearchService_Search_UnknownTimeFilterDegradesToUnfiltered(t *testing.T) {
	svc, index := createTestSearchService(t)
	ctx := context.Background()

	seedDocument(t, index, 1, "Mountain bike", 100, time.Now().Add(-60*24*time.Hour))

	result, err := svc.Search(ctx, repository.SearchQuery{
		Keyword:    "bike",
		TimeFilter: repository.TimeFilter("2Y"),
	})
	require.NoError(t, err)
	require.Len(t, result.Hits, 1)
}

func TestSearchService_Search_UnknownSortFallsBackToDateDesc(t *testing.T) {
	svc, index := createTestSearchService(t)
	ctx := context.Background()

	older := time.Now().Add(-time.Hour)
	seedDocument(t, index, 1, "Mountain bike", 100, older)
	seedDocument(t, index, 2, "Road bike", 200, time.Now())

	result, err := svc.Search(ctx, repository.SearchQuery{
		Keyword: "bike",
		Sort:    repository.SortOrder("RANDOM"),
	})
	require.NoError(t, err)
	require.Len(t, result.Hits, 2)
	assert.Equal(t, int64(2), result.Hits[0].ID)
}
