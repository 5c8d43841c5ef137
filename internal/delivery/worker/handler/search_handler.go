package handler

import (
	"net/http"
	"strconv"

	"kalado/internal/delivery/http/response"
	"kalado/internal/domain/repository"
	"kalado/internal/usecase"

	"github.com/labstack/echo/v4"
)

// SearchHandler exposes the search query endpoint of the worker.
type SearchHandler struct {
	searchUsecase usecase.SearchUsecase
}

// NewSearchHandler is the constructor for SearchHandler.
func NewSearchHandler(searchUsecase usecase.SearchUsecase) *SearchHandler {
	return &SearchHandler{searchUsecase: searchUsecase}
}

// HandleSearch handles GET /search.
func (h *SearchHandler) HandleSearch(c echo.Context) error {
	query := repository.SearchQuery{
		Keyword:    c.QueryParam("query"),
		TimeFilter: repository.TimeFilter(c.QueryParam("timeFilter")),
		Sort:       repository.SortOrder(c.QueryParam("sort")),
	}

	if raw := c.QueryParam("minPrice"); raw != "" {
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return response.BadRequest(c, "INVALID_PRICE", "無效的價格範圍")
		}
		query.MinPrice = &value
	}
	if raw := c.QueryParam("maxPrice"); raw != "" {
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return response.BadRequest(c, "INVALID_PRICE", "無效的價格範圍")
		}
		query.MaxPrice = &value
	}
	if raw := c.QueryParam("page"); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil || value < 0 {
			return response.BadRequest(c, "INVALID_PAGE", "無效的分頁參數")
		}
		query.Page = value
	}
	if raw := c.QueryParam("size"); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil || value < 0 {
			return response.BadRequest(c, "INVALID_PAGE", "無效的分頁參數")
		}
		query.Size = value
	}

	result, err := h.searchUsecase.Search(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"hits":  result.Hits,
		"total": result.Total,
		"page":  result.Page,
		"size":  result.Size,
	}, "")
}
