package repository

import (
	"context"
	"errors"
	"time"

	"larder/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrMealLogNotFound is a domain-specific error returned when a meal log entry is not found.
var ErrMealLogNotFound = errors.New("meal log not found")

// MealLogFilter narrows meal log listings. Zero values mean "no constraint".
type MealLogFilter struct {
	MealType  entity.MealType
	StartDate *time.Time // Inclusive lower bound on LoggedAt.
	EndDate   *time.Time // Inclusive upper bound on LoggedAt.
	Search    string     // Matched case-insensitively against the meal name.
	Limit     int
	Offset    int
}

// MealLogRepository defines the operations for meal tracking persistence.
type MealLogRepository interface {
	// Create persists a new meal log entry and writes generated values back.
	Create(ctx context.Context, log *entity.MealLog) error

	// FindByID retrieves one entry scoped to its owner.
	FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.MealLog, error)

	// ListByUser retrieves entries for a user, newest first, with the total
	// match count before paging.
	ListByUser(ctx context.Context, userID uuid.UUID, filter MealLogFilter) ([]*entity.MealLog, int64, error)

	// Update modifies an existing entry. Returns ErrMealLogNotFound when no row matched.
	Update(ctx context.Context, log *entity.MealLog) error

	// Delete removes an entry scoped to its owner. Returns ErrMealLogNotFound when no row matched.
	Delete(ctx context.Context, userID, id uuid.UUID) error

	// CountSince counts entries logged at or after the given instant.
	CountSince(ctx context.Context, userID uuid.UUID, since time.Time) (int64, error)

	// SumCaloriesSince sums the calories of entries logged at or after the
	// given instant, treating NULL calories as zero.
	SumCaloriesSince(ctx context.Context, userID uuid.UUID, since time.Time) (float64, error)
}
