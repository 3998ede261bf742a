package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func floatPtr(v float64) *float64 {
	return &v
}

func boolPtr(v bool) *bool {
	return &v
}

func TestMergePantryEntry_OverrideWins(t *testing.T) {
	productID := uuid.New()
	asOf := time.Now()

	item := &PantryItem{
		UserID:    uuid.New(),
		ProductID: productID,
		Quantity:  2,
		Unit:      "g",
		Nutrition: Nutrition{
			Calories: floatPtr(120),
			Protein:  floatPtr(8),
		},
		Flags: DietaryFlagOverrides{
			IsVegan: boolPtr(true),
		},
	}
	product := &Product{
		ID:       productID,
		Name:     "Oat Milk",
		Category: "Dairy Alternatives",
		Nutrition: Nutrition{
			Calories: floatPtr(999),
			Protein:  floatPtr(1),
			Carbs:    floatPtr(7),
		},
		Flags: DietaryFlags{IsVegan: false, IsGlutenFree: true},
	}

	entry := MergePantryEntry(item, product, asOf)

	assert.Equal(t, productID, entry.ID)
	assert.Equal(t, "Oat Milk", entry.Name)
	assert.Equal(t, 120.0, entry.Calories, "override must beat the catalog value")
	assert.Equal(t, 8.0, entry.Protein)
	assert.Equal(t, 7.0, entry.Carbs, "unset override falls back to catalog")
	assert.True(t, entry.IsVegan, "flag override must beat the catalog value")
	assert.True(t, entry.IsGlutenFree, "unset flag override falls back to catalog")
	assert.Equal(t, 2.0, entry.Quantity)
	assert.Equal(t, "g", entry.Unit)
	assert.Equal(t, asOf, entry.AddedAt)
}

func TestMergePantryEntry_ExplicitZeroOverrideIsHonored(t *testing.T) {
	item := &PantryItem{
		ProductID: uuid.New(),
		Quantity:  1,
		Nutrition: Nutrition{Calories: floatPtr(0)},
		Flags:     DietaryFlagOverrides{IsVegan: boolPtr(false)},
	}
	product := &Product{
		ID:        item.ProductID,
		Name:      "Water",
		Nutrition: Nutrition{Calories: floatPtr(50)},
		Flags:     DietaryFlags{IsVegan: true},
	}

	entry := MergePantryEntry(item, product, time.Now())

	assert.Equal(t, 0.0, entry.Calories, "explicit zero is an override, not a fallthrough")
	assert.False(t, entry.IsVegan, "explicit false is an override, not a fallthrough")
}

func TestMergePantryEntry_HardDefaults(t *testing.T) {
	item := &PantryItem{
		ProductID: uuid.New(),
		Quantity:  1,
	}
	product := &Product{ID: item.ProductID}

	entry := MergePantryEntry(item, product, time.Now())

	assert.Equal(t, UnknownLabel, entry.Name)
	assert.Equal(t, UnknownLabel, entry.Category)
	assert.Zero(t, entry.Calories)
	assert.Zero(t, entry.Protein)
	assert.Zero(t, entry.Sodium)
	assert.False(t, entry.IsHalal)
	assert.False(t, entry.IsPalmOilFree)
}

func TestMergePantryEntry_NilProductRendersPlaceholder(t *testing.T) {
	item := &PantryItem{
		ProductID: uuid.New(),
		Quantity:  3,
		Unit:      "servings",
		Nutrition: Nutrition{Calories: floatPtr(42)},
	}

	entry := MergePantryEntry(item, nil, time.Now())

	assert.Equal(t, item.ProductID, entry.ID)
	assert.Equal(t, UnknownLabel, entry.Name)
	assert.Equal(t, UnknownLabel, entry.Category)
	assert.Equal(t, 42.0, entry.Calories, "overrides still apply without a catalog row")
	assert.Equal(t, 3.0, entry.Quantity)
}
