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

// pantryOverrideColumns are the columns rewritten wholesale on upsert conflict.
// Quantity is handled separately because it accumulates instead of replacing.
var pantryOverrideColumns = []string{
	"unit",
	"quantity_in_grams",
	"calories_per_100g",
	"protein_per_100g",
	"carbs_per_100g",
	"fats_per_100g",
	"fiber_per_100g",
	"sugar_per_100g",
	"sodium_per_100g",
	"is_halal",
	"is_vegan",
	"is_vegetarian",
	"is_kosher",
	"is_gluten_free",
	"is_dairy_free",
	"is_nut_free",
	"is_soy_free",
	"is_shellfish_free",
	"is_egg_free",
	"is_fish_free",
	"is_palm_oil_free",
	"updated_at",
}

// pantryRepository implements the repository.PantryRepository interface using GORM.
type pantryRepository struct {
	db *gorm.DB
}

// NewPantryRepository is the constructor for pantryRepository.
func NewPantryRepository(db *gorm.DB) repository.PantryRepository {
	return &pantryRepository{
		db: db,
	}
}

// ListByUser retrieves all pantry rows for a user ordered by creation time.
func (repo *pantryRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.PantryItem, error) {
	var itemModels []*model.PantryItemModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list pantry items")
	}

	items := make([]*entity.PantryItem, 0, len(itemModels))
	for _, itemM := range itemModels {
		items = append(items, toPantryItemDomain(itemM))
	}

	return items, nil
}

// Upsert inserts the pantry row or, when (user_id, product_id) already
// exists, accumulates the quantity and replaces every override column with
// the incoming values. The whole operation is a single atomic statement.
func (repo *pantryRepository) Upsert(ctx context.Context, item *entity.PantryItem) error {
	itemM := fromPantryItemDomain(item)

	assignments := clause.Assignments(map[string]interface{}{
		"quantity": gorm.Expr("user_pantry_items.quantity + excluded.quantity"),
	})
	assignments = append(assignments, clause.AssignmentColumns(pantryOverrideColumns)...)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
			DoUpdates: assignments,
		}).
		Create(itemM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProductNotFound.WrapMessage("pantry item references a missing user or product")
		}

		return domainerrors.NewStoreUnavailableError(err, "failed to upsert pantry item")
	}

	return nil
}

// UpdateQuantity sets the quantity of an existing pantry row. A missing row
// is a no-op, matching the tolerant update semantics of the HTTP API.
func (repo *pantryRepository) UpdateQuantity(ctx context.Context, userID, productID uuid.UUID, quantity float64) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.PantryItemModel{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Update("quantity", quantity).Error; err != nil {
		return domainerrors.NewStoreUnavailableError(err, "failed to update pantry quantity")
	}

	return nil
}

// Delete removes a single pantry row. Deleting an absent row is not an error.
func (repo *pantryRepository) Delete(ctx context.Context, userID, productID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&model.PantryItemModel{}).Error; err != nil {
		return domainerrors.NewStoreUnavailableError(err, "failed to delete pantry item")
	}

	return nil
}

// DeleteByUser removes every pantry row belonging to the user.
func (repo *pantryRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.PantryItemModel{}).Error; err != nil {
		return domainerrors.NewStoreUnavailableError(err, "failed to clear pantry")
	}

	return nil
}

// toPantryItemDomain converts a GORM PantryItemModel to a domain PantryItem entity.
func toPantryItemDomain(data *model.PantryItemModel) *entity.PantryItem {
	if data == nil {
		return nil
	}

	return &entity.PantryItem{
		UserID:          data.UserID,
		ProductID:       data.ProductID,
		Quantity:        data.Quantity,
		Unit:            data.Unit,
		QuantityInGrams: data.QuantityInGrams,
		Nutrition: entity.Nutrition{
			Calories: data.CaloriesPer100g,
			Protein:  data.ProteinPer100g,
			Carbs:    data.CarbsPer100g,
			Fats:     data.FatsPer100g,
			Fiber:    data.FiberPer100g,
			Sugar:    data.SugarPer100g,
			Sodium:   data.SodiumPer100g,
		},
		Flags: entity.DietaryFlagOverrides{
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
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromPantryItemDomain converts a domain PantryItem entity to a GORM PantryItemModel.
func fromPantryItemDomain(data *entity.PantryItem) *model.PantryItemModel {
	if data == nil {
		return nil
	}

	return &model.PantryItemModel{
		UserID:          data.UserID,
		ProductID:       data.ProductID,
		Quantity:        data.Quantity,
		Unit:            data.Unit,
		QuantityInGrams: data.QuantityInGrams,
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
	}
}
