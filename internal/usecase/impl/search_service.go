package impl

import (
	"context"
	"log/slog"

	deliverycontext "kalado/internal/delivery/context"
	"kalado/internal/domain/repository"
	"kalado/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// searchService implements the SearchUsecase interface.
type searchService struct {
	index  repository.ProductIndex
	logger *slog.Logger
}

// SearchServiceParams holds dependencies for SearchService, injected by Fx.
type SearchServiceParams struct {
	fx.In

	Index  repository.ProductIndex
	Logger *slog.Logger
}

// NewSearchService is the constructor for searchService.
func NewSearchService(params SearchServiceParams) usecase.SearchUsecase {
	return &searchService{
		index:  params.Index,
		logger: params.Logger,
	}
}

func (srv *searchService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Search normalizes the query and runs it against the index. An invalid
// time filter is dropped with a warning rather than rejected, so a bad
// filter value degrades to an unfiltered search.
func (srv *searchService) Search(ctx context.Context, query repository.SearchQuery) (*repository.SearchResult, error) {
	if query.Page < 0 {
		query.Page = 0
	}
	if query.Size <= 0 {
		query.Size = defaultPageSize
	}
	if query.Size > maxPageSize {
		query.Size = maxPageSize
	}

	switch query.TimeFilter {
	case "", repository.TimeFilterDay, repository.TimeFilterWeek, repository.TimeFilterMonth:
	default:
		srv.log(ctx).Warn("Ignoring unknown time filter", slog.String("timeFilter", string(query.TimeFilter)))
		query.TimeFilter = ""
	}

	switch query.Sort {
	case repository.SortPriceAsc, repository.SortPriceDesc, repository.SortDateDesc:
	default:
		query.Sort = repository.SortDateDesc
	}

	result, err := srv.index.Search(ctx, query)
	if err != nil {
		srv.log(ctx).Error("Search failed", slog.String("keyword", query.Keyword), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to search product index")
	}

	return result, nil
}
