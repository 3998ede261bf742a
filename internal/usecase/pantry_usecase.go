// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"larder/internal/domain/entity"

	"github.com/google/uuid"
)

// PantryUsecase defines the interface for pantry reconciliation operations.
// Every mutation returns the refreshed, merged pantry view so clients never
// need a follow-up read.
type PantryUsecase interface {
	ListPantry(ctx context.Context, userID uuid.UUID) ([]*entity.PantryEntry, error)
	AddPantryItem(ctx context.Context, userID uuid.UUID, input *AddPantryItemInput) ([]*entity.PantryEntry, error)
	UpdatePantryItem(ctx context.Context, userID, productID uuid.UUID, quantity float64) ([]*entity.PantryEntry, error)
	RemovePantryItem(ctx context.Context, userID, productID uuid.UUID) ([]*entity.PantryEntry, error)
	ClearPantry(ctx context.Context, userID uuid.UUID) ([]*entity.PantryEntry, error)
}

// --- Input DTOs ---

// AddPantryItemInput carries the product-like payload of an add call.
// Only the product ID is mandatory; everything else is optional and, when
// present, is stored as a per-user override of the catalog values. Omitted
// nutrition and dietary fields stay NULL so display-time resolution falls
// through to the catalog.
type AddPantryItemInput struct {
	ProductID       uuid.UUID `json:"id" validate:"required"`
	Quantity        *float64  `json:"quantity,omitempty"`
	Unit            string    `json:"unit,omitempty"`
	QuantityInGrams *float64  `json:"quantity_in_grams,omitempty"`

	// Catalog fields, used only when the product has to be synthesized.
	Name        string `json:"name,omitempty"`
	Brand       string `json:"brand,omitempty"`
	Category    string `json:"category,omitempty"`
	Description string `json:"description,omitempty"`

	Calories *float64 `json:"calories_per_100g,omitempty"`
	Protein  *float64 `json:"protein_per_100g,omitempty"`
	Carbs    *float64 `json:"carbs_per_100g,omitempty"`
	Fats     *float64 `json:"fats_per_100g,omitempty"`
	Fiber    *float64 `json:"fiber_per_100g,omitempty"`
	Sugar    *float64 `json:"sugar_per_100g,omitempty"`
	Sodium   *float64 `json:"sodium_per_100g,omitempty"`

	IsHalal         *bool `json:"is_halal,omitempty"`
	IsVegan         *bool `json:"is_vegan,omitempty"`
	IsVegetarian    *bool `json:"is_vegetarian,omitempty"`
	IsKosher        *bool `json:"is_kosher,omitempty"`
	IsGlutenFree    *bool `json:"is_gluten_free,omitempty"`
	IsDairyFree     *bool `json:"is_dairy_free,omitempty"`
	IsNutFree       *bool `json:"is_nut_free,omitempty"`
	IsSoyFree       *bool `json:"is_soy_free,omitempty"`
	IsShellfishFree *bool `json:"is_shellfish_free,omitempty"`
	IsEggFree       *bool `json:"is_egg_free,omitempty"`
	IsFishFree      *bool `json:"is_fish_free,omitempty"`
	IsPalmOilFree   *bool `json:"is_palm_oil_free,omitempty"`
}

// Nutrition collects the per-100g override fields of the payload.
func (in *AddPantryItemInput) Nutrition() entity.Nutrition {
	return entity.Nutrition{
		Calories: in.Calories,
		Protein:  in.Protein,
		Carbs:    in.Carbs,
		Fats:     in.Fats,
		Fiber:    in.Fiber,
		Sugar:    in.Sugar,
		Sodium:   in.Sodium,
	}
}

// FlagOverrides collects the dietary flag override fields of the payload.
func (in *AddPantryItemInput) FlagOverrides() entity.DietaryFlagOverrides {
	return entity.DietaryFlagOverrides{
		IsHalal:         in.IsHalal,
		IsVegan:         in.IsVegan,
		IsVegetarian:    in.IsVegetarian,
		IsKosher:        in.IsKosher,
		IsGlutenFree:    in.IsGlutenFree,
		IsDairyFree:     in.IsDairyFree,
		IsNutFree:       in.IsNutFree,
		IsSoyFree:       in.IsSoyFree,
		IsShellfishFree: in.IsShellfishFree,
		IsEggFree:       in.IsEggFree,
		IsFishFree:      in.IsFishFree,
		IsPalmOilFree:   in.IsPalmOilFree,
	}
}
