package entity

import (
	"time"

	"github.com/google/uuid"
)

// PantryItem is a user's quantity-bearing record of a product. The composite
// key is (UserID, ProductID); a row only exists while Quantity > 0.
//
// Nutrition and Flags are per-item overrides: any non-nil field takes
// precedence over the catalog product at display time, while nil fields fall
// through. The override sub-record is replaced wholesale on every add.
type PantryItem struct {
	UserID          uuid.UUID
	ProductID       uuid.UUID
	Quantity        float64
	Unit            string
	QuantityInGrams *float64
	Nutrition       Nutrition
	Flags           DietaryFlagOverrides
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
