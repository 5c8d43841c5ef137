package search

import (
	"context"
	"testing"
	"time"

	"kalado/internal/domain/entity"
	"kalado/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDoc(id int64, title string, amount float64) *repository.ProductDocument {
	now := time.Now()

	return &repository.ProductDocument{
		ID:        id,
		Title:     title,
		Price:     entity.Price{Amount: amount, Unit: "USD"},
		Category:  "sports",
		Status:    entity.ProductActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func floatPtr(v float64) *float64 {
	return &v
}

func TestMemoryIndex_UpsertReplacesDocument(t *testing.T) {
	index := NewMemoryIndex()
	ctx := context.Background()

	require.NoError(t, index.Upsert(ctx, newDoc(1, "Mountain bike", 100)))

	replaced := newDoc(1, "Vintage camera", 80)
	require.NoError(t, index.Upsert(ctx, replaced))

	doc, err := index.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Vintage camera", doc.Title)

	total, err := index.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)

	// Terms of the replaced document no longer match.
	result, err := index.Search(ctx, repository.SearchQuery{Keyword: "bike"})
	require.NoError(t, err)
	assert.Empty(t, result.Hits)

	result, err = index.Search(ctx, repository.SearchQuery{Keyword: "camera"})
	require.NoError(t, err)
	require.Len(t, result.Hits, 1)
}

func TestMemoryIndex_DeleteIsIdempotent(t *testing.T) {
	index := NewMemoryIndex()
	ctx := context.Background()

	require.NoError(t, index.Upsert(ctx, newDoc(1, "Mountain bike", 100)))
	require.NoError(t, index.Delete(ctx, 1))
	require.NoError(t, index.Delete(ctx, 1))
	require.NoError(t, index.Delete(ctx, 999))

	_, err := index.Get(ctx, 1)
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
}

func TestMemoryIndex_GetReturnsCopy(t *testing.T) {
	index := NewMemoryIndex()
	ctx := context.Background()

	doc := newDoc(1, "Mountain bike", 100)
	doc.ImageURLs = []string{"https://img.example.com/1.jpg"}
	require.NoError(t, index.Upsert(ctx, doc))

	fetched, err := index.Get(ctx, 1)
	require.NoError(t, err)
	fetched.Title = "tampered"
	fetched.ImageURLs[0] = "tampered"

	again, err := index.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Mountain bike", again.Title)
	assert.Equal(t, "https://img.example.com/1.jpg", again.ImageURLs[0])
}

func TestMemoryIndex_SearchHidesDeletedDocuments(t *testing.T) {
	index := NewMemoryIndex()
	ctx := context.Background()

	require.NoError(t, index.Upsert(ctx, newDoc(1, "Mountain bike", 100)))

	gone := newDoc(2, "Road bike", 200)
	gone.Status = entity.ProductDeleted
	require.NoError(t, index.Upsert(ctx, gone))

	result, err := index.Search(ctx, repository.SearchQuery{Keyword: "bike"})
	require.NoError(t, err)
	require.Len(t, result.Hits, 1)
	assert.Equal(t, int64(1), result.Hits[0].ID)

	// The DELETED document is still stored.
	total, err := index.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
}

func TestMemoryIndex_SearchEmptyKeywordMatchesAll(t *testing.T) {
	index := NewMemoryIndex()
	ctx := context.Background()

	require.NoError(t, index.Upsert(ctx, newDoc(1, "Mountain bike", 100)))
	require.NoError(t, index.Upsert(ctx, newDoc(2, "Vintage camera", 80)))

	result, err := index.Search(ctx, repository.SearchQuery{})
	require.NoError(t, err)
	assert.Len(t, result.Hits, 2)
	assert.Equal(t, int64(2), result.Total)
}

func TestMemoryIndex_SearchFuzzyMatching(t *testing.T) {
	index := NewMemoryIndex()
	ctx := context.Background()

	require.NoError(t, index.Upsert(ctx, newDoc(1, "Mountain bike", 100)))

	cases := []struct {
		name    string
		keyword string
		hits    int
	}{
		{"exact token", "bike", 1},
		{"prefix substring", "mount", 1},
		{"one letter typo", "mountaim", 1},
		{"short tokens do not fuzz", "bke", 0},
		{"unrelated keyword", "camera", 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := index.Search(ctx, repository.SearchQuery{Keyword: tc.keyword})
			require.NoError(t, err)
			assert.Len(t, result.Hits, tc.hits)
		})
	}
}

func TestMemoryIndex_SearchPriceRange(t *testing.T) {
	index := NewMemoryIndex()
	ctx := context.Background()

	require.NoError(t, index.Upsert(ctx, newDoc(1, "Mountain bike", 100)))
	require.NoError(t, index.Upsert(ctx, newDoc(2, "Road bike", 200)))
	require.NoError(t, index.Upsert(ctx, newDoc(3, "Electric bike", 900)))

	result, err := index.Search(ctx, repository.SearchQuery{
		Keyword:  "bike",
		MinPrice: floatPtr(150),
		MaxPrice: floatPtr(500),
	})
	require.NoError(t, err)
	require.Len(t, result.Hits, 1)
	assert.Equal(t, int64(2), result.Hits[0].ID)
}

func TestMemoryIndex_SearchTimeFilter(t *testing.T) {
	index := NewMemoryIndex()
	ctx := context.Background()

	fresh := newDoc(1, "Mountain bike", 100)
	require.NoError(t, index.Upsert(ctx, fresh))

	stale := newDoc(2, "Road bike", 200)
	stale.CreatedAt = time.Now().AddDate(0, 0, -10)
	require.NoError(t, index.Upsert(ctx, stale))

	result, err := index.Search(ctx, repository.SearchQuery{
		Keyword:    "bike",
		TimeFilter: repository.TimeFilterWeek,
	})
	require.NoError(t, err)
	require.Len(t, result.Hits, 1)
	assert.Equal(t, int64(1), result.Hits[0].ID)
}

func TestMemoryIndex_SearchSortOrders(t *testing.T) {
	index := NewMemoryIndex()
	ctx := context.Background()

	oldest := newDoc(1, "Mountain bike", 300)
	oldest.CreatedAt = time.Now().Add(-2 * time.Hour)
	middle := newDoc(2, "Road bike", 100)
	middle.CreatedAt = time.Now().Add(-time.Hour)
	newest := newDoc(3, "Electric bike", 200)

	require.NoError(t, index.Upsert(ctx, oldest))
	require.NoError(t, index.Upsert(ctx, middle))
	require.NoError(t, index.Upsert(ctx, newest))

	ids := func(result *repository.SearchResult) []int64 {
		out := make([]int64, 0, len(result.Hits))
		for _, hit := range result.Hits {
			out = append(out, hit.ID)
		}

		return out
	}

	result, err := index.Search(ctx, repository.SearchQuery{Keyword: "bike", Sort: repository.SortPriceAsc})
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 3, 1}, ids(result))

	result, err = index.Search(ctx, repository.SearchQuery{Keyword: "bike", Sort: repository.SortPriceDesc})
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 3, 2}, ids(result))

	result, err = index.Search(ctx, repository.SearchQuery{Keyword: "bike", Sort: repository.SortDateDesc})
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 2, 1}, ids(result))
}

func TestMemoryIndex_SearchPagination(t *testing.T) {
	index := NewMemoryIndex()
	ctx := context.Background()

	base := time.Now()
	for i := int64(1); i <= 5; i++ {
		doc := newDoc(i, "Mountain bike", float64(100*i))
		doc.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, index.Upsert(ctx, doc))
	}

	result, err := index.Search(ctx, repository.SearchQuery{Keyword: "bike", Page: 0, Size: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(5), result.Total)
	require.Len(t, result.Hits, 2)
	assert.Equal(t, int64(5), result.Hits[0].ID)

	result, err = index.Search(ctx, repository.SearchQuery{Keyword: "bike", Page: 2, Size: 2})
	require.NoError(t, err)
	require.Len(t, result.Hits, 1)
	assert.Equal(t, int64(1), result.Hits[0].ID)

	result, err = index.Search(ctx, repository.SearchQuery{Keyword: "bike", Page: 9, Size: 2})
	require.NoError(t, err)
	assert.Empty(t, result.Hits)
	assert.Equal(t, int64(5), result.Total)
}
