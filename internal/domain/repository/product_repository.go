package repository

import (
	"context"
	"errors"

	"larder/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProductNotFound is a domain-specific error returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductFilter narrows catalog listings. Zero values mean "no constraint".
type ProductFilter struct {
	Search   string // Matched case-insensitively against name, brand, category and description.
	Category string
	IsActive *bool
	Limit    int
	Offset   int
}

// ProductRepository defines the standard operations for catalog persistence.
type ProductRepository interface {
	// List retrieves products matching the filter, newest-updated first,
	// together with the total match count before paging.
	List(ctx context.Context, filter ProductFilter) ([]*entity.Product, int64, error)

	// FindByID retrieves a single product by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindByIDs retrieves the products for a set of IDs in a single query.
	// An empty set returns an empty slice without touching the store.
	// Order of the result is not specified.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error)

	// Exists reports whether a product row exists for the given ID.
	Exists(ctx context.Context, id uuid.UUID) (bool, error)

	// Create persists a new product and writes the generated ID back into the entity.
	Create(ctx context.Context, product *entity.Product) error

	// Update modifies an existing product. Returns ErrProductNotFound when no row matched.
	Update(ctx context.Context, product *entity.Product) error

	// Delete removes a product by ID. Returns ErrProductNotFound when no row matched.
	Delete(ctx context.Context, id uuid.UUID) error

	// EnsureShadow inserts a minimal catalog record with the given ID when no
	// row exists for it, and does nothing otherwise. Implementations must use
	// a conditional insert so concurrent calls for the same ID cannot race.
	EnsureShadow(ctx context.Context, product *entity.Product) error
}
