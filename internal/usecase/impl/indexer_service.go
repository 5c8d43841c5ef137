package impl

import (
	"context"
	"log/slog"

	deliverycontext "kalado/internal/delivery/context"
	"kalado/internal/domain/entity"
	domainerrors "kalado/internal/domain/errors"
	"kalado/internal/domain/repository"
	"kalado/internal/domain/service"
	"kalado/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// indexerService implements the IndexerUsecase interface.
type indexerService struct {
	index   repository.ProductIndex
	catalog service.ProductCatalog
	logger  *slog.Logger
}

// IndexerServiceParams holds dependencies for IndexerService, injected by Fx.
type IndexerServiceParams struct {
	fx.In

	Index   repository.ProductIndex
	Catalog service.ProductCatalog
	Logger  *slog.Logger
}

// NewIndexerService is the constructor for indexerService.
func NewIndexerService(params IndexerServiceParams) usecase.IndexerUsecase {
	return &indexerService{
		index:   params.Index,
		catalog: params.Catalog,
		logger:  params.Logger,
	}
}

func (srv *indexerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// toDocument projects a product entity onto its index document.
func toDocument(product *entity.Product) *repository.ProductDocument {
	return &repository.ProductDocument{
		ID:             product.ID,
		Title:          product.Title,
		Description:    product.Description,
		Price:          product.Price,
		Category:       product.Category,
		ProductionYear: product.ProductionYear,
		Brand:          product.Brand,
		SellerID:       product.SellerID,
		ImageURLs:      product.ImageURLs,
		Status:         product.Status,
		CreatedAt:      product.CreatedAt,
		UpdatedAt:      product.UpdatedAt,
	}
}

// ApplyEvent applies one change event to the index. Create and update
// events are full-document upserts keyed by product id, so duplicate
// deliveries and replays converge to the published snapshot. Delete
// events remove the document; removal is idempotent.
func (srv *indexerService) ApplyEvent(ctx context.Context, event *service.ProductEvent) error {
	if event == nil || event.Product == nil || event.Product.ID == 0 {
		return domainerrors.ErrValidationFailed.WrapMessage("事件缺少商品內容")
	}

	var err error
	switch event.EventType {
	case service.ProductCreated, service.ProductUpdated:
		err = srv.index.Upsert(ctx, toDocument(event.Product))
	case service.ProductDeleted:
		err = srv.index.Delete(ctx, event.Product.ID)
	default:
		srv.log(ctx).Warn("Ignoring unknown product event kind",
			slog.String("eventType", string(event.EventType)),
			slog.Int64("productID", event.Product.ID))

		return nil
	}
	if err != nil {
		srv.log(ctx).Error("Failed to apply product event",
			slog.String("eventType", string(event.EventType)),
			slog.Int64("productID", event.Product.ID),
			slog.Any("error", err))

		return errors.Wrap(err, "failed to apply product event")
	}

	srv.log(ctx).Debug("Product event applied",
		slog.String("eventType", string(event.EventType)),
		slog.Int64("productID", event.Product.ID))

	return nil
}

// Reconcile rebuilds the index from the catalog's source of truth. Every
// fetched product is upserted, DELETED ones included, so a document the
// events missed ends up correct. Documents for products the catalog no
// longer returns are left in place.
func (srv *indexerService) Reconcile(ctx context.Context) (int, error) {
	products, err := srv.catalog.GetAllProducts(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to fetch products for reconciliation")
	}

	indexed := 0
	for _, product := range products {
		if product == nil || product.ID == 0 {
			continue
		}
		if err := srv.index.Upsert(ctx, toDocument(product)); err != nil {
			srv.log(ctx).Error("Failed to index product during reconciliation",
				slog.Int64("productID", product.ID),
				slog.Any("error", err))

			continue
		}
		indexed++
	}

	srv.log(ctx).Info("Reconciliation completed",
		slog.Int("fetched", len(products)),
		slog.Int("indexed", indexed))

	return indexed, nil
}
