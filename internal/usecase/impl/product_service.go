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

// productService implements the ProductUsecase interface.
type productService struct {
	txManager   repository.TransactionManager
	productRepo repository.ProductRepository
	publisher   service.ProductEventPublisher
	logger      *slog.Logger
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ProductRepo repository.ProductRepository
	Publisher   service.ProductEventPublisher
	Logger      *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		txManager:   params.TxManager,
		productRepo: params.ProductRepo,
		publisher:   params.Publisher,
		logger:      params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// publishEvent pushes a change event toward the search worker. The write has
// already committed, so a publish failure is logged and swallowed; the
// worker's startup reconciliation covers the gap.
func (srv *productService) publishEvent(ctx context.Context, eventType service.ProductEventType, product *entity.Product) {
	event := &service.ProductEvent{EventType: eventType, Product: product}
	if err := srv.publisher.PublishProductEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish product event",
			slog.String("eventType", string(eventType)),
			slog.Int64("productID", product.ID),
			slog.Any("error", err))

		return
	}

	srv.log(ctx).Debug("Product event published",
		slog.String("eventType", string(eventType)),
		slog.Int64("productID", product.ID))
}

func validateProductFields(title string, price entity.Price) error {
	if title == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("商品標題不可為空")
	}
	if price.Amount < 0 {
		return domainerrors.ErrValidationFailed.WrapMessage("商品價格不可為負數")
	}

	return nil
}

// CreateProduct persists a new ACTIVE product and publishes CREATE.
func (srv *productService) CreateProduct(ctx context.Context, input usecase.CreateProductInput) (*entity.Product, error) {
	if err := validateProductFields(input.Title, input.Price); err != nil {
		return nil, err
	}

	now := time.Now()
	product := &entity.Product{
		Title:          input.Title,
		Description:    input.Description,
		Price:          input.Price,
		Category:       input.Category,
		ProductionYear: input.ProductionYear,
		Brand:          input.Brand,
		SellerID:       input.SellerID,
		ImageURLs:      input.ImageURLs,
		Status:         entity.ProductActive,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.ProductRepo().Create(ctx, product)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create product", slog.Int64("sellerID", input.SellerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.publishEvent(ctx, service.ProductCreated, product)

	return product, nil
}

// loadProductForWrite fetches a product and checks write access: the owning
// seller, or a privileged moderator acting on any listing.
func loadProductForWrite(ctx context.Context, repo repository.ProductRepository, productID, actorID int64, actorRole entity.Role) (*entity.Product, error) {
	product, err := repo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	if product.SellerID != actorID && !actorRole.Privileged() {
		return nil, domainerrors.ErrForbidden
	}

	return product, nil
}

// UpdateProduct replaces a product's fields and publishes UPDATE.
func (srv *productService) UpdateProduct(ctx context.Context, input usecase.UpdateProductInput) (*entity.Product, error) {
	if err := validateProductFields(input.Title, input.Price); err != nil {
		return nil, err
	}

	var updated *entity.Product
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()

		product, err := loadProductForWrite(ctx, productRepo, input.ProductID, input.ActorID, input.ActorRole)
		if err != nil {
			return err
		}
		if product.Status == entity.ProductDeleted {
			return domainerrors.ErrConflict.WrapMessage("商品已刪除，無法編輯")
		}

		product.Title = input.Title
		product.Description = input.Description
		product.Price = input.Price
		product.Category = input.Category
		product.ProductionYear = input.ProductionYear
		product.Brand = input.Brand
		product.ImageURLs = input.ImageURLs
		product.UpdatedAt = time.Now()

		if err := productRepo.Update(ctx, product); err != nil {
			return errors.Wrap(err, "failed to update product")
		}

		updated = product

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.publishEvent(ctx, service.ProductUpdated, updated)

	return updated, nil
}

// UpdateProductStatus moves a product between lifecycle states. DELETED is
// terminal; the matching DELETE event hides the product from search.
func (srv *productService) UpdateProductStatus(ctx context.Context, productID, actorID int64, actorRole entity.Role, status entity.ProductStatus) (*entity.Product, error) {
	if !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown status: " + string(status))
	}

	var updated *entity.Product
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()

		product, err := loadProductForWrite(ctx, productRepo, productID, actorID, actorRole)
		if err != nil {
			return err
		}
		if product.Status == entity.ProductDeleted {
			return domainerrors.ErrConflict.WrapMessage("商品已刪除，狀態無法變更")
		}

		product.Status = status
		product.UpdatedAt = time.Now()

		if err := productRepo.Update(ctx, product); err != nil {
			return errors.Wrap(err, "failed to update product status")
		}

		updated = product

		return nil
	})
	if err != nil {
		return nil, err
	}

	eventType := service.ProductUpdated
	if status == entity.ProductDeleted {
		eventType = service.ProductDeleted
	}
	srv.publishEvent(ctx, eventType, updated)

	return updated, nil
}

// DeleteProduct soft-deletes a product and publishes DELETE.
func (srv *productService) DeleteProduct(ctx context.Context, productID, actorID int64, actorRole entity.Role) error {
	_, err := srv.UpdateProductStatus(ctx, productID, actorID, actorRole, entity.ProductDeleted)

	return err
}

// GetProduct returns a single product by id.
func (srv *productService) GetProduct(ctx context.Context, productID int64) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}

// GetAllProducts returns every product, DELETED included.
func (srv *productService) GetAllProducts(ctx context.Context) ([]*entity.Product, error) {
	products, err := srv.productRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// GetProductsBySeller returns a seller's listings.
func (srv *productService) GetProductsBySeller(ctx context.Context, sellerID int64) ([]*entity.Product, error) {
	products, err := srv.productRepo.FindBySellerID(ctx, sellerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list seller products")
	}

	return products, nil
}

// GetProductsByCategory returns the products in a category.
func (srv *productService) GetProductsByCategory(ctx context.Context, category string) ([]*entity.Product, error) {
	products, err := srv.productRepo.FindByCategory(ctx, category)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list category products")
	}

	return products, nil
}
