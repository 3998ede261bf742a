package impl

import (
	"context"
	"testing"

	"larder/internal/domain/entity"
	domainerrors "larder/internal/domain/errors"
	"larder/internal/domain/repository"
	mockRepo "larder/internal/mocks/repository"
	"larder/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// productServiceFixtures holds all test dependencies for product service tests.
type productServiceFixtures struct {
	t         *testing.T
	service   usecase.ProductUsecase
	txManager *mockRepo.MockTransactionManager
}

func createTestProductService(t *testing.T) productServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	service := NewProductService(txManager, newTestConfig(20, 100), newDiscardLogger())

	return productServiceFixtures{
		t:         t,
		service:   service,
		txManager: txManager,
	}
}

func (f productServiceFixtures) onExecute(ctx context.Context, result error, setup func(factory *mockRepo.MockRepositoryFactory)) {
	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			factory := mockRepo.NewMockRepositoryFactory(f.t)
			setup(factory)
			_ = fn(factory)
		}).
		Return(result)
}

func TestProductService_ListProducts_ClampsLimit(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		productRepo := mockRepo.NewMockProductRepository(t)
		factory.EXPECT().ProductRepo().Return(productRepo)

		productRepo.EXPECT().
			List(ctx, mock.MatchedBy(func(f repository.ProductFilter) bool {
				return f.Limit == 100 && f.Offset == 0
			})).
			Return([]*entity.Product{}, int64(0), nil)
	})

	out, err := fx.service.ListProducts(ctx, &usecase.ListProductsInput{Limit: 5000})

	require.NoError(t, err)
	assert.Equal(t, 100, out.Limit, "limit is clamped to the configured maximum")
}

func TestProductService_ListProducts_DefaultLimit(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		productRepo := mockRepo.NewMockProductRepository(t)
		factory.EXPECT().ProductRepo().Return(productRepo)

		productRepo.EXPECT().
			List(ctx, mock.MatchedBy(func(f repository.ProductFilter) bool {
				return f.Limit == 20
			})).
			Return([]*entity.Product{{ID: uuid.New(), Name: "Chickpeas"}}, int64(1), nil)
	})

	out, err := fx.service.ListProducts(ctx, &usecase.ListProductsInput{})

	require.NoError(t, err)
	assert.Equal(t, int64(1), out.Total)
	require.Len(t, out.Products, 1)
	assert.Equal(t, "Chickpeas", out.Products[0].Name)
}

func TestProductService_GetProduct_NotFound(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.onExecute(ctx, domainerrors.ErrProductNotFound, func(factory *mockRepo.MockRepositoryFactory) {
		productRepo := mockRepo.NewMockProductRepository(t)
		factory.EXPECT().ProductRepo().Return(productRepo)

		productRepo.EXPECT().FindByID(ctx, productID).Return(nil, repository.ErrProductNotFound)
	})

	_, err := fx.service.GetProduct(ctx, productID)

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.HTTPCode())
}

func TestProductService_CreateProduct_Success(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	input := &usecase.ProductInput{
		Name:     "Oat Milk",
		Brand:    "Brewer & Sons",
		Category: "Dairy Alternatives",
		Calories: floatPtr(45),
		IsVegan:  true,
	}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		productRepo := mockRepo.NewMockProductRepository(t)
		factory.EXPECT().ProductRepo().Return(productRepo)

		productRepo.EXPECT().
			Create(ctx, mock.MatchedBy(func(p *entity.Product) bool {
				return p.Name == "Oat Milk" && p.Flags.IsVegan && p.IsActive
			})).
			Run(func(ctx context.Context, p *entity.Product) {
				p.ID = uuid.New()
			}).
			Return(nil)
	})

	product, err := fx.service.CreateProduct(ctx, input)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, product.ID)
	assert.True(t, product.Flags.IsVegan)
	assert.Equal(t, 45.0, *product.Nutrition.Calories)
}

func TestProductService_CreateProduct_ExplicitlyInactive(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	input := &usecase.ProductInput{
		Name:     "Legacy Item",
		IsActive: boolPtr(false),
	}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		productRepo := mockRepo.NewMockProductRepository(t)
		factory.EXPECT().ProductRepo().Return(productRepo)

		productRepo.EXPECT().
			Create(ctx, mock.MatchedBy(func(p *entity.Product) bool {
				return !p.IsActive
			})).
			Return(nil)
	})

	product, err := fx.service.CreateProduct(ctx, input)

	require.NoError(t, err)
	assert.False(t, product.IsActive)
}

func TestProductService_DeleteProduct_NotFound(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.onExecute(ctx, domainerrors.ErrProductNotFound, func(factory *mockRepo.MockRepositoryFactory) {
		productRepo := mockRepo.NewMockProductRepository(t)
		factory.EXPECT().ProductRepo().Return(productRepo)

		productRepo.EXPECT().Delete(ctx, productID).Return(repository.ErrProductNotFound)
	})

	err := fx.service.DeleteProduct(ctx, productID)

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "PRODUCT_NOT_FOUND", appErr.ErrorCode())
}
