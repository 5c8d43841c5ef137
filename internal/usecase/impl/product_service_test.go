package impl

import (
	"context"
	"testing"
	"time"

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

type productServiceFixture struct {
	txManager   *mockRepo.MockTransactionManager
	factory     *mockRepo.MockRepositoryFactory
	productRepo *mockRepo.MockProductRepository
	publisher   *mockSvc.MockProductEventPublisher
}

func createTestProductService(t *testing.T) (usecase.ProductUsecase, *productServiceFixture) {
	f := &productServiceFixture{
		txManager:   mockRepo.NewMockTransactionManager(t),
		factory:     mockRepo.NewMockRepositoryFactory(t),
		productRepo: mockRepo.NewMockProductRepository(t),
		publisher:   mockSvc.NewMockProductEventPublisher(t),
	}

	svc := NewProductService(ProductServiceParams{
		TxManager:   f.txManager,
		ProductRepo: f.productRepo,
		Publisher:   f.publisher,
		Logger:      newDiscardLogger(),
	})

	return svc, f
}

func activeProduct() *entity.Product {
	return &entity.Product{
		ID:       10,
		Title:    "Mountain bike",
		Price:    entity.Price{Amount: 250, Unit: "USD"},
		Category: "sports",
		SellerID: 42,
		Status:   entity.ProductActive,
	}
}

func TestProductService_CreateProduct_PublishesCreateAfterCommit(t *testing.T) {
	svc, f := createTestProductService(t)
	ctx := context.Background()

	f.factory.EXPECT().ProductRepo().Return(f.productRepo)
	expectTransaction(f.txManager, f.factory)

	f.productRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(_ context.Context, product *entity.Product) {
			product.ID = 10
			assert.Equal(t, entity.ProductActive, product.Status)
		}).
		Return(nil)

	f.publisher.EXPECT().
		PublishProductEvent(ctx, mock.AnythingOfType("*service.ProductEvent")).
		Run(func(_ context.Context, event *service.ProductEvent) {
			assert.Equal(t, service.ProductCreated, event.EventType)
			assert.Equal(t, int64(10), event.Product.ID)
		}).
		Return(nil)

	product, err := svc.CreateProduct(ctx, usecase.CreateProductInput{
		Title:    "Mountain bike",
		Price:    entity.Price{Amount: 250, Unit: "USD"},
		Category: "sports",
		SellerID: 42,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10), product.ID)
}

func TestProductService_CreateProduct_ValidationFailures(t *testing.T) {
	cases := []struct {
		name  string
		input usecase.CreateProductInput
	}{
		{"empty title", usecase.CreateProductInput{Title: "", Price: entity.Price{Amount: 10}}},
		{"negative price", usecase.CreateProductInput{Title: "Bike", Price: entity.Price{Amount: -1}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, _ := createTestProductService(t)

			product, err := svc.CreateProduct(context.Background(), tc.input)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
			assert.Nil(t, product)
		})
	}
}

func TestProductService_CreateProduct_PublishFailureDoesNotFailWrite(t *testing.T) {
	svc, f := createTestProductService(t)
	ctx := context.Background()

	f.factory.EXPECT().ProductRepo().Return(f.productRepo)
	expectTransaction(f.txManager, f.factory)

	f.productRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Product")).
		Return(nil)

	f.publisher.EXPECT().
		PublishProductEvent(ctx, mock.AnythingOfType("*service.ProductEvent")).
		Return(errors.New("broker unreachable"))

	product, err := svc.CreateProduct(ctx, usecase.CreateProductInput{
		Title:    "Mountain bike",
		Price:    entity.Price{Amount: 250, Unit: "USD"},
		SellerID: 42,
	})
	require.NoError(t, err)
	assert.NotNil(t, product)
}

func TestProductService_UpdateProduct_PublishesUpdate(t *testing.T) {
	svc, f := createTestProductService(t)
	ctx := context.Background()

	f.factory.EXPECT().ProductRepo().Return(f.productRepo)
	expectTransaction(f.txManager, f.factory)

	f.productRepo.EXPECT().FindByID(ctx, int64(10)).Return(activeProduct(), nil)
	f.productRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(_ context.Context, product *entity.Product) {
			assert.Equal(t, "Road bike", product.Title)
		}).
		Return(nil)

	f.publisher.EXPECT().
		PublishProductEvent(ctx, mock.AnythingOfType("*service.ProductEvent")).
		Run(func(_ context.Context, event *service.ProductEvent) {
			assert.Equal(t, service.ProductUpdated, event.EventType)
		}).
		Return(nil)

	product, err := svc.UpdateProduct(ctx, usecase.UpdateProductInput{
		ProductID: 10,
		ActorID:   42,
		ActorRole: entity.RoleUser,
		Title:     "Road bike",
		Price:     entity.Price{Amount: 300, Unit: "USD"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Road bike", product.Title)
}

func TestProductService_UpdateProduct_NonSellerUserForbidden(t *testing.T) {
	svc, f := createTestProductService(t)
	ctx := context.Background()

	f.factory.EXPECT().ProductRepo().Return(f.productRepo)
	expectTransaction(f.txManager, f.factory)

	f.productRepo.EXPECT().FindByID(ctx, int64(10)).Return(activeProduct(), nil)

	product, err := svc.UpdateProduct(ctx, usecase.UpdateProductInput{
		ProductID: 10,
		ActorID:   99,
		ActorRole: entity.RoleUser,
		Title:     "Road bike",
		Price:     entity.Price{Amount: 300, Unit: "USD"},
	})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	assert.Nil(t, product)
}

func TestProductService_UpdateProduct_AdminMayEditAnyListing(t *testing.T) {
	svc, f := createTestProductService(t)
	ctx := context.Background()

	f.factory.EXPECT().ProductRepo().Return(f.productRepo)
	expectTransaction(f.txManager, f.factory)

	f.productRepo.EXPECT().FindByID(ctx, int64(10)).Return(activeProduct(), nil)
	f.productRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Product")).
		Return(nil)

	f.publisher.EXPECT().
		PublishProductEvent(ctx, mock.AnythingOfType("*service.ProductEvent")).
		Return(nil)

	// Actor 99 is not the seller; the ADMIN role grants the override.
	product, err := svc.UpdateProduct(ctx, usecase.UpdateProductInput{
		ProductID: 10,
		ActorID:   99,
		ActorRole: entity.RoleAdmin,
		Title:     "Road bike",
		Price:     entity.Price{Amount: 300, Unit: "USD"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Road bike", product.Title)
}

func TestProductService_UpdateProduct_DeletedIsImmutable(t *testing.T) {
	svc, f := createTestProductService(t)
	ctx := context.Background()

	f.factory.EXPECT().ProductRepo().Return(f.productRepo)
	expectTransaction(f.txManager, f.factory)

	deleted := activeProduct()
	deleted.Status = entity.ProductDeleted
	f.productRepo.EXPECT().FindByID(ctx, int64(10)).Return(deleted, nil)

	product, err := svc.UpdateProduct(ctx, usecase.UpdateProductInput{
		ProductID: 10,
		ActorID:   42,
		ActorRole: entity.RoleUser,
		Title:     "Road bike",
		Price:     entity.Price{Amount: 300, Unit: "USD"},
	})
	assert.ErrorIs(t, err, domainerrors.ErrConflict)
	assert.Nil(t, product)
}

func TestProductService_UpdateProductStatus_DeletePublishesDeleteEvent(t *testing.T) {
	svc, f := createTestProductService(t)
	ctx := context.Background()

	f.factory.EXPECT().ProductRepo().Return(f.productRepo)
	expectTransaction(f.txManager, f.factory)

	f.productRepo.EXPECT().FindByID(ctx, int64(10)).Return(activeProduct(), nil)
	f.productRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Product")).
		Return(nil)

	f.publisher.EXPECT().
		PublishProductEvent(ctx, mock.AnythingOfType("*service.ProductEvent")).
		Run(func(_ context.Context, event *service.ProductEvent) {
			assert.Equal(t, service.ProductDeleted, event.EventType)
			assert.Equal(t, entity.ProductDeleted, event.Product.Status)
		}).
		Return(nil)

	product, err := svc.UpdateProductStatus(ctx, 10, 42, entity.RoleUser, entity.ProductDeleted)
	require.NoError(t, err)
	assert.Equal(t, entity.ProductDeleted, product.Status)
}

func TestProductService_UpdateProductStatus_RejectsUnknownStatus(t *testing.T) {
	svc, _ := createTestProductService(t)

	product, err := svc.UpdateProductStatus(context.Background(), 10, 42, entity.RoleUser, entity.ProductStatus("BROKEN"))
	require.Error(t, err)
	assert.Nil(t, product)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestProductService_DeleteProduct_SoftDeletes(t *testing.T) {
	svc, f := createTestProductService(t)
	ctx := context.Background()

	f.factory.EXPECT().ProductRepo().Return(f.productRepo)
	expectTransaction(f.txManager, f.factory)

	f.productRepo.EXPECT().FindByID(ctx, int64(10)).Return(activeProduct(), nil)
	f.productRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(_ context.Context, product *entity.Product) {
			assert.Equal(t, entity.ProductDeleted, product.Status)
		}).
		Return(nil)

	f.publisher.EXPECT().
		PublishProductEvent(ctx, mock.AnythingOfType("*service.ProductEvent")).
		Return(nil)

	require.NoError(t, svc.DeleteProduct(ctx, 10, 42, entity.RoleUser))
}

func TestProductService_DeleteProduct_AdminModeratesForeignListing(t *testing.T) {
	svc, f := createTestProductService(t)
	ctx := context.Background()

	f.factory.EXPECT().ProductRepo().Return(f.productRepo)
	expectTransaction(f.txManager, f.factory)

	f.productRepo.EXPECT().FindByID(ctx, int64(10)).Return(activeProduct(), nil)
	f.productRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(_ context.Context, product *entity.Product) {
			assert.Equal(t, entity.ProductDeleted, product.Status)
		}).
		Return(nil)

	f.publisher.EXPECT().
		PublishProductEvent(ctx, mock.AnythingOfType("*service.ProductEvent")).
		Run(func(_ context.Context, event *service.ProductEvent) {
			assert.Equal(t, service.ProductDeleted, event.EventType)
		}).
		Return(nil)

	require.NoError(t, svc.DeleteProduct(ctx, 10, 99, entity.RoleAdmin))
}

func TestProductService_GetProduct_NotFound(t *testing.T) {
	svc, f := createTestProductService(t)
	ctx := context.Background()

	f.productRepo.EXPECT().FindByID(ctx, int64(99)).
		Return(nil, repository.ErrProductNotFound)

	product, err := svc.GetProduct(ctx, 99)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	assert.Nil(t, product)
}

func TestProductService_GetAllProducts_IncludesDeleted(t *testing.T) {
	svc, f := createTestProductService(t)
	ctx := context.Background()

	deleted := activeProduct()
	deleted.ID = 11
	deleted.Status = entity.ProductDeleted
	deleted.UpdatedAt = time.Now()

	f.productRepo.EXPECT().FindAll(ctx).
		Return([]*entity.Product{activeProduct(), deleted}, nil)

	products, err := svc.GetAllProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, entity.ProductDeleted, products[1].Status)
}
