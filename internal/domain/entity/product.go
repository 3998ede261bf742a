package entity

import (
	"time"

	"github.com/google/uuid"
)

// Nutrition carries per-100g macro values. A nil field means the value is
// unknown, which is distinct from an explicit zero.
type Nutrition struct {
	Calories *float64
	Protein  *float64
	Carbs    *float64
	Fats     *float64
	Fiber    *float64
	Sugar    *float64
	Sodium   *float64
}

// DietaryFlags is the full set of dietary attributes tracked per product.
type DietaryFlags struct {
	IsHalal         bool
	IsVegan         bool
	IsVegetarian    bool
	IsKosher        bool
	IsGlutenFree    bool
	IsDairyFree     bool
	IsNutFree       bool
	IsSoyFree       bool
	IsShellfishFree bool
	IsEggFree       bool
	IsFishFree      bool
	IsPalmOilFree   bool
}

// DietaryFlagOverrides mirrors DietaryFlags with nullable fields. A nil flag
// falls through to the catalog value at display time.
type DietaryFlagOverrides struct {
	IsHalal         *bool
	IsVegan         *bool
	IsVegetarian    *bool
	IsKosher        *bool
	IsGlutenFree    *bool
	IsDairyFree     *bool
	IsNutFree       *bool
	IsSoyFree       *bool
	IsShellfishFree *bool
	IsEggFree       *bool
	IsFishFree      *bool
	IsPalmOilFree   *bool
}

// Product is the canonical, shared catalog record for an ingredient. Pantry
// rows reference it by ID and fall back to its values for any field they do
// not override.
type Product struct {
	ID          uuid.UUID
	Name        string
	Brand       string
	Description string
	Category    string
	Nutrition   Nutrition
	Flags       DietaryFlags
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
