package usecase

import (
	"context"
	"time"

	"larder/internal/domain/entity"

	"github.com/google/uuid"
)

// MealLogUsecase defines the interface for meal tracking operations.
type MealLogUsecase interface {
	LogMeal(ctx context.Context, userID uuid.UUID, input *LogMealInput) (*entity.MealLog, error)
	GetMealLog(ctx context.Context, userID, id uuid.UUID) (*entity.MealLog, error)
	ListMealLogs(ctx context.Context, userID uuid.UUID, input *ListMealLogsInput) (*MealLogListOutput, error)
	UpdateMealLog(ctx context.Context, userID, id uuid.UUID, input *UpdateMealLogInput) (*entity.MealLog, error)
	DeleteMealLog(ctx context.Context, userID, id uuid.UUID) error
	GetStats(ctx context.Context, userID uuid.UUID) (*entity.MealLogStats, error)
}

// LogMealInput defines the data required to record a meal.
type LogMealInput struct {
	MealID   *uuid.UUID `json:"meal_id,omitempty"`
	MealName string     `json:"meal_name" validate:"required,max=255"`
	MealType string     `json:"meal_type" validate:"required"`
	Calories *float64   `json:"calories,omitempty" validate:"omitempty,min=0"`
	LoggedAt *time.Time `json:"logged_at,omitempty"`
}

// ListMealLogsInput defines the filtering and paging options of a meal log listing.
type ListMealLogsInput struct {
	MealType  string     `query:"meal_type"`
	StartDate *time.Time `query:"start_date"`
	EndDate   *time.Time `query:"end_date"`
	Search    string     `query:"search"`
	Limit     int        `query:"limit" validate:"omitempty,min=0"`
	Offset    int        `query:"offset" validate:"omitempty,min=0"`
}

// MealLogListOutput carries one page of meal log entries plus paging metadata.
type MealLogListOutput struct {
	Entries []*entity.MealLog `json:"entries"`
	Total   int64             `json:"total"`
	Limit   int               `json:"limit"`
	Offset  int               `json:"offset"`
}

// UpdateMealLogInput defines the partial-update payload for a meal log entry.
// Nil fields are left unchanged.
type UpdateMealLogInput struct {
	MealID   *uuid.UUID `json:"meal_id,omitempty"`
	MealName *string    `json:"meal_name,omitempty" validate:"omitempty,max=255"`
	MealType *string    `json:"meal_type,omitempty"`
	Calories *float64   `json:"calories,omitempty" validate:"omitempty,min=0"`
	LoggedAt *time.Time `json:"logged_at,omitempty"`
}
