package repository

import (
	"context"

	"larder/internal/domain/entity"

	"github.com/google/uuid"
)

// PantryRepository defines the operations over a user's pantry rows.
//
// Absent rows are never an error for the mutation methods: update and delete
// on a missing (user, product) pair are silent no-ops so that callers can stay
// idempotent.
type PantryRepository interface {
	// ListByUser retrieves all pantry rows for a user in the store's natural order.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.PantryItem, error)

	// Upsert inserts the row for (UserID, ProductID) or, when it already
	// exists, atomically accumulates the quantity and replaces unit,
	// quantity-in-grams and the whole override sub-record. Omitted override
	// fields become NULL.
	Upsert(ctx context.Context, item *entity.PantryItem) error

	// UpdateQuantity replaces the quantity for an existing row, leaving
	// overrides untouched. A missing row is a no-op.
	UpdateQuantity(ctx context.Context, userID, productID uuid.UUID, quantity float64) error

	// Delete removes the row for (userID, productID). Idempotent.
	Delete(ctx context.Context, userID, productID uuid.UUID) error

	// DeleteByUser removes every pantry row belonging to the user.
	DeleteByUser(ctx context.Context, userID uuid.UUID) error
}
