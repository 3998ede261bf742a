package usecase

import (
	"context"

	"larder/internal/domain/entity"

	"github.com/google/uuid"
)

// ProductUsecase defines the interface for catalog-management operations.
type ProductUsecase interface {
	ListProducts(ctx context.Context, input *ListProductsInput) (*ProductListOutput, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	CreateProduct(ctx context.Context, input *ProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, input *ProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
}

// ListProductsInput defines the filtering and paging options of a catalog listing.
type ListProductsInput struct {
	Search   string `query:"search"`
	Category string `query:"category"`
	IsActive *bool  `query:"is_active"`
	Limit    int    `query:"limit" validate:"omitempty,min=0"`
	Offset   int    `query:"offset" validate:"omitempty,min=0"`
}

// ProductListOutput carries one page of catalog results plus paging metadata.
type ProductListOutput struct {
	Products []*entity.Product `json:"products"`
	Total    int64             `json:"total"`
	Limit    int               `json:"limit"`
	Offset   int               `json:"offset"`
}

// ProductInput defines the data required to create or replace a catalog entry.
type ProductInput struct {
	Name        string `json:"name" validate:"required,max=255"`
	Brand       string `json:"brand,omitempty" validate:"omitempty,max=255"`
	Category    string `json:"category,omitempty" validate:"omitempty,max=100"`
	Description string `json:"description,omitempty"`

	Calories *float64 `json:"calories_per_100g,omitempty" validate:"omitempty,min=0"`
	Protein  *float64 `json:"protein_per_100g,omitempty" validate:"omitempty,min=0"`
	Carbs    *float64 `json:"carbs_per_100g,omitempty" validate:"omitempty,min=0"`
	Fats     *float64 `json:"fats_per_100g,omitempty" validate:"omitempty,min=0"`
	Fiber    *float64 `json:"fiber_per_100g,omitempty" validate:"omitempty,min=0"`
	Sugar    *float64 `json:"sugar_per_100g,omitempty" validate:"omitempty,min=0"`
	Sodium   *float64 `json:"sodium_per_100g,omitempty" validate:"omitempty,min=0"`

	IsHalal         bool `json:"is_halal"`
	IsVegan         bool `json:"is_vegan"`
	IsVegetarian    bool `json:"is_vegetarian"`
	IsKosher        bool `json:"is_kosher"`
	IsGlutenFree    bool `json:"is_gluten_free"`
	IsDairyFree     bool `json:"is_dairy_free"`
	IsNutFree       bool `json:"is_nut_free"`
	IsSoyFree       bool `json:"is_soy_free"`
	IsShellfishFree bool `json:"is_shellfish_free"`
	IsEggFree       bool `json:"is_egg_free"`
	IsFishFree      bool `json:"is_fish_free"`
	IsPalmOilFree   bool `json:"is_palm_oil_free"`

	IsActive *bool `json:"is_active,omitempty"`
}
