package entity

import (
	"time"

	"github.com/google/uuid"
)

// MealType classifies a logged meal.
type MealType string

const (
	MealTypeBreakfast MealType = "breakfast"
	MealTypeLunch     MealType = "lunch"
	MealTypeDinner    MealType = "dinner"
	MealTypeSnack     MealType = "snack"
)

// Valid reports whether the meal type is one of the accepted values.
func (m MealType) Valid() bool {
	switch m {
	case MealTypeBreakfast, MealTypeLunch, MealTypeDinner, MealTypeSnack:
		return true
	default:
		return false
	}
}

// MealLog is a single tracked-meal entry for a user.
type MealLog struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	MealID    *uuid.UUID // Optional reference to a stored meal; nil for ad-hoc entries.
	MealName  string
	MealType  MealType
	Calories  *float64
	LoggedAt  time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// MealLogStats summarizes recent tracking activity for a user.
type MealLogStats struct {
	EntriesToday     int64   `json:"entries_today"`
	EntriesLast7Days int64   `json:"entries_last_7_days"`
	CaloriesToday    float64 `json:"calories_today"`
}
