package postgres

import (
	"context"

	"larder/internal/domain/entity"
	domainerrors "larder/internal/domain/errors"
	"larder/internal/domain/repository"
	"larder/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// productRepository implements the repository.ProductRepository interface using GORM.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// List retrieves products matching the filter, newest first, along with the
// total count before pagination.
func (repo *productRepository) List(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.ProductModel{})

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(
			"name ILIKE ? OR brand ILIKE ? OR category ILIKE ? OR description ILIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count products")
	}

	var productModels []*model.ProductModel
	if err := query.
		Order("updated_at DESC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&productModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products, total, nil
}

// FindByID retrieves a single product by its unique ID.
func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return toProductDomain(&productM), nil
}

// FindByIDs retrieves products for a set of IDs in a single query. IDs with
// no matching row are simply absent from the result; an empty input skips
// the query entirely.
func (repo *productRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error) {
	if len(ids) == 0 {
		return []*entity.Product{}, nil
	}

	var productModels []*model.ProductModel
	if err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find products by IDs")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products, nil
}

// Exists reports whether a product row exists for the given ID.
func (repo *productRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check product existence")
	}

	return count > 0, nil
}

// Create persists a new product entity to the database.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required product information")
		}

		return domainerrors.NewStoreUnavailableError(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// Update modifies an existing product row; all columns are written so that
// callers can clear nullable nutrition values.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	res := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", product.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(productM)
	if res.Error != nil {
		if isNotNullConstraintViolation(res.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required product information")
		}

		return domainerrors.NewStoreUnavailableError(res.Error, "failed to update product")
	}
	if res.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// Delete removes a product by ID.
func (repo *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ProductModel{})
	if res.Error != nil {
		if isForeignKeyConstraintViolation(res.Error) {
			return domainerrors.ErrConflict.WrapMessage("product is referenced by other records")
		}

		return domainerrors.NewStoreUnavailableError(res.Error, "failed to delete product")
	}
	if res.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// EnsureShadow inserts a minimal catalog row with the caller-supplied ID,
// doing nothing when the row already exists. Like the shadow user insert,
// the conditional clause removes the read-then-write race between concurrent
// first adds of the same product.
func (repo *productRepository) EnsureShadow(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoNothing: true,
		}).
		Create(productM).Error; err != nil {
		return domainerrors.NewStoreUnavailableError(err, "failed to ensure product exists")
	}

	return nil
}

// toProductDomain converts a GORM ProductModel to a domain Product entity.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:          data.ID,
		Name:        data.Name,
		Brand:       data.Brand,
		Description: data.Description,
		Category:    data.Category,
		Nutrition: entity.Nutrition{
			Calories: data.CaloriesPer100g,
			Protein:  data.ProteinPer100g,
			Carbs:    data.CarbsPer100g,
			Fats:     data.FatsPer100g,
			Fiber:    data.FiberPer100g,
			Sugar:    data.SugarPer100g,
			Sodium:   data.SodiumPer100g,
		},
		Flags: entity.DietaryFlags{
			IsHalal:         data.IsHalal,
			IsVegan:         data.IsVegan,
			IsVegetarian:    data.IsVegetarian,
			IsKosher:        data.IsKosher,
			IsGlutenFree:    data.IsGlutenFree,
			IsDairyFree:     data.IsDairyFree,
			IsNutFree:       data.IsNutFree,
			IsSoyFree:       data.IsSoyFree,
			IsShellfishFree: data.IsShellfishFree,
			IsEggFree:       data.IsEggFree,
			IsFishFree:      data.IsFishFree,
			IsPalmOilFree:   data.IsPalmOilFree,
		},
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromProductDomain converts a domain Product entity to a GORM ProductModel.
func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:              data.ID,
		Name:            data.Name,
		Brand:           data.Brand,
		Description:     data.Description,
		Category:        data.Category,
		CaloriesPer100g: data.Nutrition.Calories,
		ProteinPer100g:  data.Nutrition.Protein,
		CarbsPer100g:    data.Nutrition.Carbs,
		FatsPer100g:     data.Nutrition.Fats,
		FiberPer100g:    data.Nutrition.Fiber,
		SugarPer100g:    data.Nutrition.Sugar,
		SodiumPer100g:   data.Nutrition.Sodium,
		IsHalal:         data.Flags.IsHalal,
		IsVegan:         data.Flags.IsVegan,
		IsVegetarian:    data.Flags.IsVegetarian,
		IsKosher:        data.Flags.IsKosher,
		IsGlutenFree:    data.Flags.IsGlutenFree,
		IsDairyFree:     data.Flags.IsDairyFree,
		IsNutFree:       data.Flags.IsNutFree,
		IsSoyFree:       data.Flags.IsSoyFree,
		IsShellfishFree: data.Flags.IsShellfishFree,
		IsEggFree:       data.Flags.IsEggFree,
		IsFishFree:      data.Flags.IsFishFree,
		IsPalmOilFree:   data.Flags.IsPalmOilFree,
		IsActive:        data.IsActive,
	}
}
