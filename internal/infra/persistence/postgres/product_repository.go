package postgres

import (
	"context"

	"kalado/internal/domain/entity"
	domainerrors "kalado/internal/domain/errors"
	"kalado/internal/domain/repository"
	"kalado/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// productRepository implements the domain's ProductRepository interface using GORM.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// FindByID retrieves a single product by its id.
func (repo *productRepository) FindByID(ctx context.Context, id int64) (*entity.Product, error) {
	var data model.ProductModel
	if err := repo.db.WithContext(ctx).First(&data, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return toProductDomain(&data), nil
}

// FindAll retrieves every product, DELETED ones included.
func (repo *productRepository) FindAll(ctx context.Context) ([]*entity.Product, error) {
	var rows []model.ProductModel
	if err := repo.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return toProductDomainList(rows), nil
}

// FindBySellerID retrieves all products listed by a seller.
func (repo *productRepository) FindBySellerID(ctx context.Context, sellerID int64) ([]*entity.Product, error) {
	var rows []model.ProductModel
	if err := repo.db.WithContext(ctx).Where("seller_id = ?", sellerID).Order("id").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products by seller")
	}

	return toProductDomainList(rows), nil
}

// FindByCategory retrieves all products in a category.
func (repo *productRepository) FindByCategory(ctx context.Context, category string) ([]*entity.Product, error) {
	var rows []model.ProductModel
	if err := repo.db.WithContext(ctx).Where("category = ?", category).Order("id").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products by category")
	}

	return toProductDomainList(rows), nil
}

// Create persists a new product and writes back the generated id.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	data := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(data).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("缺少必要的商品欄位")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = data.ID
	product.CreatedAt = data.CreatedAt
	product.UpdatedAt = data.UpdatedAt

	return nil
}

// Update modifies an existing product.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	data := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Save(data).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update product")
	}

	product.UpdatedAt = data.UpdatedAt

	return nil
}

// --- Mapper Functions ---

func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		Price: entity.Price{
			Amount: data.PriceAmount,
			Unit:   data.PriceUnit,
		},
		Category:       data.Category,
		ProductionYear: data.ProductionYear,
		Brand:          data.Brand,
		SellerID:       data.SellerID,
		ImageURLs:      data.ImageURLs,
		Status:         entity.ProductStatus(data.Status),
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func toProductDomainList(rows []model.ProductModel) []*entity.Product {
	products := make([]*entity.Product, 0, len(rows))
	for i := range rows {
		products = append(products, toProductDomain(&rows[i]))
	}

	return products
}

func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:             data.ID,
		Title:          data.Title,
		Description:    data.Description,
		PriceAmount:    data.Price.Amount,
		PriceUnit:      data.Price.Unit,
		Category:       data.Category,
		ProductionYear: data.ProductionYear,
		Brand:          data.Brand,
		SellerID:       data.SellerID,
		ImageURLs:      data.ImageURLs,
		Status:         data.Status.String(),
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}
