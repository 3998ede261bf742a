package impl

import (
	"context"
	"log/slog"

	"larder/config"
	"larder/internal/domain/entity"
	domainerrors "larder/internal/domain/errors"
	"larder/internal/domain/repository"
	"larder/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// productService implements the ProductUsecase interface.
type productService struct {
	txManager repository.TransactionManager
	catalog   *config.CatalogConfig
	logger    *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(
	txManager repository.TransactionManager,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.ProductUsecase {
	return &productService{
		txManager: txManager,
		catalog:   cfg.Catalog,
		logger:    logger,
	}
}

// ListProducts retrieves one page of catalog entries. Unset or out-of-range
// paging values are clamped to the configured defaults.
func (srv *productService) ListProducts(ctx context.Context, input *usecase.ListProductsInput) (*usecase.ProductListOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = srv.catalog.DefaultLimit
	}
	if limit > srv.catalog.MaxLimit {
		limit = srv.catalog.MaxLimit
	}
	offset := input.Offset
	if offset < 0 {
		offset = 0
	}

	filter := repository.ProductFilter{
		Search:   input.Search,
		Category: input.Category,
		IsActive: input.IsActive,
		Limit:    limit,
		Offset:   offset,
	}

	var (
		products []*entity.Product
		total    int64
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, count, err := repoFactory.ProductRepo().List(ctx, filter)
		if err != nil {
			return errors.Wrap(err, "failed to list products")
		}
		products = found
		total = count

		return nil
	})
	if err != nil {
		return nil, asStoreError(err, "failed to list products")
	}

	return &usecase.ProductListOutput{
		Products: products,
		Total:    total,
		Limit:    limit,
		Offset:   offset,
	}, nil
}

// GetProduct retrieves a single catalog entry.
func (srv *productService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var product *entity.Product

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.ProductRepo().FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return domainerrors.ErrProductNotFound
			}

			return errors.Wrap(err, "failed to find product")
		}
		product = found

		return nil
	})
	if err != nil {
		return nil, asStoreError(err, "failed to get product")
	}

	return product, nil
}

// CreateProduct adds a new catalog entry and returns it with generated values.
func (srv *productService) CreateProduct(ctx context.Context, input *usecase.ProductInput) (*entity.Product, error) {
	product := productFromInput(input)

	srv.logger.Info("Creating product", "name", product.Name)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.ProductRepo().Create(ctx, product); err != nil {
			return errors.Wrap(err, "failed to create product")
		}

		return nil
	})
	if err != nil {
		return nil, asStoreError(err, "failed to create product")
	}

	return product, nil
}

// UpdateProduct replaces a catalog entry with the given payload.
func (srv *productService) UpdateProduct(ctx context.Context, id uuid.UUID, input *usecase.ProductInput) (*entity.Product, error) {
	product := productFromInput(input)
	product.ID = id

	srv.logger.Info("Updating product", "productID", id)

	var updated *entity.Product

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()

		if err := productRepo.Update(ctx, product); err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return domainerrors.ErrProductNotFound
			}

			return errors.Wrap(err, "failed to update product")
		}

		found, err := productRepo.FindByID(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to reload product")
		}
		updated = found

		return nil
	})
	if err != nil {
		return nil, asStoreError(err, "failed to update product")
	}

	return updated, nil
}

// DeleteProduct removes a catalog entry.
func (srv *productService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	srv.logger.Info("Deleting product", "productID", id)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.ProductRepo().Delete(ctx, id); err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return domainerrors.ErrProductNotFound
			}

			return errors.Wrap(err, "failed to delete product")
		}

		return nil
	})
	if err != nil {
		return asStoreError(err, "failed to delete product")
	}

	return nil
}

// productFromInput builds a catalog entity from a create/update payload.
func productFromInput(input *usecase.ProductInput) *entity.Product {
	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	return &entity.Product{
		Name:        input.Name,
		Brand:       input.Brand,
		Category:    input.Category,
		Description: input.Description,
		Nutrition: entity.Nutrition{
			Calories: input.Calories,
			Protein:  input.Protein,
			Carbs:    input.Carbs,
			Fats:     input.Fats,
			Fiber:    input.Fiber,
			Sugar:    input.Sugar,
			Sodium:   input.Sodium,
		},
		Flags: entity.DietaryFlags{
			IsHalal:         input.IsHalal,
			IsVegan:         input.IsVegan,
			IsVegetarian:    input.IsVegetarian,
			IsKosher:        input.IsKosher,
			IsGlutenFree:    input.IsGlutenFree,
			IsDairyFree:     input.IsDairyFree,
			IsNutFree:       input.IsNutFree,
			IsSoyFree:       input.IsSoyFree,
			IsShellfishFree: input.IsShellfishFree,
			IsEggFree:       input.IsEggFree,
			IsFishFree:      input.IsFishFree,
			IsPalmOilFree:   input.IsPalmOilFree,
		},
		IsActive: isActive,
	}
}
