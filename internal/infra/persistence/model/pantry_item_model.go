package model

import (
	"time"

	"github.com/google/uuid"
)

// PantryItemModel mirrors the 'user_pantry_items' table. The composite
// primary key (user_id, product_id) is the conflict target for the
// accumulate upsert. All nutrition and flag columns are nullable overrides;
// NULL falls through to the product catalog at display time.
type PantryItemModel struct {
	UserID          uuid.UUID `gorm:"primaryKey;type:uuid"`
	ProductID       uuid.UUID `gorm:"primaryKey;type:uuid"`
	Quantity        float64   `gorm:"not null;default:1"`
	Unit            string    `gorm:"type:varchar(50)"`
	QuantityInGrams *float64  `gorm:"column:quantity_in_grams"`

	CaloriesPer100g *float64 `gorm:"column:calories_per_100g"`
	ProteinPer100g  *float64 `gorm:"column:protein_per_100g"`
	CarbsPer100g    *float64 `gorm:"column:carbs_per_100g"`
	FatsPer100g     *float64 `gorm:"column:fats_per_100g"`
	FiberPer100g    *float64 `gorm:"column:fiber_per_100g"`
	SugarPer100g    *float64 `gorm:"column:sugar_per_100g"`
	SodiumPer100g   *float64 `gorm:"column:sodium_per_100g"`

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

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PantryItemModel) TableName() string {
	return "user_pantry_items"
}
