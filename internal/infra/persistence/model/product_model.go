package model

import (
	"time"

	"github.com/google/uuid"
)

// ProductModel mirrors the 'products' table. Nutrition columns are nullable;
// NULL means the value is unknown rather than zero.
type ProductModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Brand       string    `gorm:"type:varchar(255)"`
	Description string    `gorm:"type:text"`
	Category    string    `gorm:"type:varchar(100);index"`

	CaloriesPer100g *float64 `gorm:"column:calories_per_100g"`
	ProteinPer100g  *float64 `gorm:"column:protein_per_100g"`
	CarbsPer100g    *float64 `gorm:"column:carbs_per_100g"`
	FatsPer100g     *float64 `gorm:"column:fats_per_100g"`
	FiberPer100g    *float64 `gorm:"column:fiber_per_100g"`
	SugarPer100g    *float64 `gorm:"column:sugar_per_100g"`
	SodiumPer100g   *float64 `gorm:"column:sodium_per_100g"`

	IsHalal         bool `gorm:"not null;default:false"`
	IsVegan         bool `gorm:"not null;default:false"`
	IsVegetarian    bool `gorm:"not null;default:false"`
	IsKosher        bool `gorm:"not null;default:false"`
	IsGlutenFree    bool `gorm:"not null;default:false"`
	IsDairyFree     bool `gorm:"not null;default:false"`
	IsNutFree       bool `gorm:"not null;default:false"`
	IsSoyFree       bool `gorm:"not null;default:false"`
	IsShellfishFree bool `gorm:"not null;default:false"`
	IsEggFree       bool `gorm:"not null;default:false"`
	IsFishFree      bool `gorm:"not null;default:false"`
	IsPalmOilFree   bool `gorm:"not null;default:false"`

	IsActive  bool `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
