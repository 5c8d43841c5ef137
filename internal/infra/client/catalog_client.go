package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"kalado/config"
	"kalado/internal/domain/entity"
	"kalado/internal/domain/repository"
	"kalado/internal/domain/service"

	"github.com/pkg/errors"
)

// catalogClient implements the ProductCatalog interface over the product
// service's read API. The search worker uses it to rebuild the index.
type catalogClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewCatalogClient creates the product catalog client.
func NewCatalogClient(cfg *config.Config, logger *slog.Logger) service.ProductCatalog {
	baseURL := ""
	if cfg.Services != nil {
		baseURL = cfg.Services.ProductBaseURL
	}

	return &catalogClient{
		baseURL: baseURL,
		// Fetching the whole catalog can take a while on large datasets.
		httpClient: &http.Client{Timeout: 2 * time.Minute},
		logger:     logger,
	}
}

// productPayload is the wire shape of a product on the read API.
type productPayload struct {
	ID             int64        `json:"id"`
	Title          string       `json:"title"`
	Description    string       `json:"description"`
	Price          entity.Price `json:"price"`
	Category       string       `json:"category"`
	ProductionYear int          `json:"productionYear"`
	Brand          string       `json:"brand"`
	SellerID       int64        `json:"sellerId"`
	ImageURLs      []string     `json:"imageUrls"`
	Status         string       `json:"status"`
	CreatedAt      time.Time    `json:"createdAt"`
	UpdatedAt      time.Time    `json:"updatedAt"`
}

func (p *productPayload) toEntity() *entity.Product {
	return &entity.Product{
		ID:             p.ID,
		Title:          p.Title,
		Description:    p.Description,
		Price:          p.Price,
		Category:       p.Category,
		ProductionYear: p.ProductionYear,
		Brand:          p.Brand,
		SellerID:       p.SellerID,
		ImageURLs:      p.ImageURLs,
		Status:         entity.ProductStatus(p.Status),
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func (c *catalogClient) get(ctx context.Context, path string) (json.RawMessage, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, 0, errors.WithStack(err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, errors.Wrap(err, "product catalog request failed")
	}
	defer resp.Body.Close()

	var wrapped envelope
	if err := json.NewDecoder(resp.Body).Decode(&wrapped); err != nil && !errors.Is(err, io.EOF) {
		return nil, resp.StatusCode, errors.Wrap(err, "failed to decode product catalog response")
	}

	return wrapped.Data, resp.StatusCode, nil
}

// GetAllProducts fetches every product, DELETED ones included.
func (c *catalogClient) GetAllProducts(ctx context.Context) ([]*entity.Product, error) {
	data, status, err := c.get(ctx, "/api/v1/products")
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, errors.Errorf("product catalog returned status %d", status)
	}

	var payloads []productPayload
	if err := json.Unmarshal(data, &payloads); err != nil {
		return nil, errors.Wrap(err, "failed to decode product list")
	}

	products := make([]*entity.Product, 0, len(payloads))
	for i := range payloads {
		products = append(products, payloads[i].toEntity())
	}

	c.logger.Debug("Fetched product catalog", slog.Int("count", len(products)))

	return products, nil
}

// GetProduct fetches a single product by id.
func (c *catalogClient) GetProduct(ctx context.Context, id int64) (*entity.Product, error) {
	data, status, err := c.get(ctx, fmt.Sprintf("/api/v1/products/%d", id))
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return nil, repository.ErrProductNotFound
	}
	if status != http.StatusOK {
		return nil, errors.Errorf("product catalog returned status %d", status)
	}

	var payload productPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, errors.Wrap(err, "failed to decode product")
	}

	return payload.toEntity(), nil
}
