package entity

import (
	"time"

	"github.com/google/uuid"
)

// UnknownLabel is the hard default for name and category when neither the
// pantry row nor the catalog supplies a value.
const UnknownLabel = "Unknown"

// PantryEntry is the denormalized display record returned to clients. Every
// nutrition and dietary field has already been resolved through the
// override-then-fallback rule, so consumers never see nulls.
//
// AddedAt is stamped at read time, not persisted; see the design notes.
type PantryEntry struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Category        string    `json:"category"`
	Description     string    `json:"description,omitempty"`
	Calories        float64   `json:"calories"`
	Protein         float64   `json:"protein"`
	Carbs           float64   `json:"carbs"`
	Fat             float64   `json:"fat"`
	Fiber           float64   `json:"fiber"`
	Sugar           float64   `json:"sugar"`
	Sodium          float64   `json:"sodium"`
	Quantity        float64   `json:"quantity"`
	Unit            string    `json:"unit,omitempty"`
	QuantityInGrams *float64  `json:"quantity_in_grams,omitempty"`
	IsHalal         bool      `json:"is_halal"`
	IsVegan         bool      `json:"is_vegan"`
	IsVegetarian    bool      `json:"is_vegetarian"`
	IsKosher        bool      `json:"is_kosher"`
	IsGlutenFree    bool      `json:"is_gluten_free"`
	IsDairyFree     bool      `json:"is_dairy_free"`
	IsNutFree       bool      `json:"is_nut_free"`
	IsSoyFree       bool      `json:"is_soy_free"`
	IsShellfishFree bool      `json:"is_shellfish_free"`
	IsEggFree       bool      `json:"is_egg_free"`
	IsFishFree      bool      `json:"is_fish_free"`
	IsPalmOilFree   bool      `json:"is_palm_oil_free"`
	AddedAt         time.Time `json:"addedAt"`
}

// MergePantryEntry resolves a pantry row against its catalog product into a
// display record. Each field follows override-then-fallback precedence: the
// row's own value when non-nil, else the product's value, else a hard default
// (0 for numerics, false for flags, "Unknown" for name and category).
//
// A nil product stands for a row whose catalog entry disappeared; a synthetic
// placeholder is used so the row still renders.
func MergePantryEntry(item *PantryItem, product *Product, asOf time.Time) *PantryEntry {
	if product == nil {
		product = &Product{
			ID:       item.ProductID,
			Name:     UnknownLabel,
			Category: UnknownLabel,
		}
	}

	return &PantryEntry{
		ID:              product.ID,
		Name:            fallbackLabel(product.Name),
		Category:        fallbackLabel(product.Category),
		Description:     product.Description,
		Calories:        resolveValue(item.Nutrition.Calories, product.Nutrition.Calories),
		Protein:         resolveValue(item.Nutrition.Protein, product.Nutrition.Protein),
		Carbs:           resolveValue(item.Nutrition.Carbs, product.Nutrition.Carbs),
		Fat:             resolveValue(item.Nutrition.Fats, product.Nutrition.Fats),
		Fiber:           resolveValue(item.Nutrition.Fiber, product.Nutrition.Fiber),
		Sugar:           resolveValue(item.Nutrition.Sugar, product.Nutrition.Sugar),
		Sodium:          resolveValue(item.Nutrition.Sodium, product.Nutrition.Sodium),
		Quantity:        item.Quantity,
		Unit:            item.Unit,
		QuantityInGrams: item.QuantityInGrams,
		IsHalal:         resolveFlag(item.Flags.IsHalal, product.Flags.IsHalal),
		IsVegan:         resolveFlag(item.Flags.IsVegan, product.Flags.IsVegan),
		IsVegetarian:    resolveFlag(item.Flags.IsVegetarian, product.Flags.IsVegetarian),
		IsKosher:        resolveFlag(item.Flags.IsKosher, product.Flags.IsKosher),
		IsGlutenFree:    resolveFlag(item.Flags.IsGlutenFree, product.Flags.IsGlutenFree),
		IsDairyFree:     resolveFlag(item.Flags.IsDairyFree, product.Flags.IsDairyFree),
		IsNutFree:       resolveFlag(item.Flags.IsNutFree, product.Flags.IsNutFree),
		IsSoyFree:       resolveFlag(item.Flags.IsSoyFree, product.Flags.IsSoyFree),
		IsShellfishFree: resolveFlag(item.Flags.IsShellfishFree, product.Flags.IsShellfishFree),
		IsEggFree:       resolveFlag(item.Flags.IsEggFree, product.Flags.IsEggFree),
		IsFishFree:      resolveFlag(item.Flags.IsFishFree, product.Flags.IsFishFree),
		IsPalmOilFree:   resolveFlag(item.Flags.IsPalmOilFree, product.Flags.IsPalmOilFree),
		AddedAt:         asOf,
	}
}

// resolveValue applies override-then-fallback for a numeric field. Only nil
// falls through; an explicit zero override is honored as zero.
func resolveValue(override, fallback *float64) float64 {
	if override != nil {
		return *override
	}
	if fallback != nil {
		return *fallback
	}

	return 0
}

// resolveFlag applies override-then-fallback for a dietary flag.
func resolveFlag(override *bool, fallback bool) bool {
	if override != nil {
		return *override
	}

	return fallback
}

func fallbackLabel(s string) string {
	if s == "" {
		return UnknownLabel
	}

	return s
}
