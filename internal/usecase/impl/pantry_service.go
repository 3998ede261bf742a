// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	"larder/internal/domain/entity"
	domainerrors "larder/internal/domain/errors"
	"larder/internal/domain/repository"
	"larder/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// DefaultPantryUnit is used when an add payload carries no unit.
const DefaultPantryUnit = "servings"

// pantryService implements the PantryUsecase interface.
type pantryService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewPantryService is the constructor for pantryService.
func NewPantryService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.PantryUsecase {
	return &pantryService{
		txManager: txManager,
		logger:    logger,
	}
}

// ListPantry returns the merged pantry view for a user.
func (srv *pantryService) ListPantry(ctx context.Context, userID uuid.UUID) ([]*entity.PantryEntry, error) {
	if userID == uuid.Nil {
		return nil, domainerrors.ErrMissingParameter.WrapMessage("user ID is required")
	}

	var entries []*entity.PantryEntry

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		merged, err := srv.mergedPantry(ctx, repoFactory, userID)
		if err != nil {
			return err
		}
		entries = merged

		return nil
	})
	if err != nil {
		return nil, asStoreError(err, "failed to list pantry")
	}

	return entries, nil
}

// AddPantryItem records an addition to the pantry. The whole sequence runs in
// one transaction: ensure the user row exists, ensure the catalog row exists
// (synthesizing a minimal one from the payload when absent), then upsert the
// pantry row with an atomic quantity accumulation. The override sub-record is
// replaced wholesale with whatever subset the payload supplied.
func (srv *pantryService) AddPantryItem(ctx context.Context, userID uuid.UUID, input *usecase.AddPantryItemInput) ([]*entity.PantryEntry, error) {
	if userID == uuid.Nil {
		return nil, domainerrors.ErrMissingParameter.WrapMessage("user ID is required")
	}
	if input == nil || input.ProductID == uuid.Nil {
		return nil, domainerrors.ErrMissingParameter.WrapMessage("product ID is required")
	}

	quantity := 1.0
	if input.Quantity != nil {
		quantity = *input.Quantity
	}
	unit := input.Unit
	if unit == "" {
		unit = DefaultPantryUnit
	}

	srv.logger.Info("Adding pantry item",
		"userID", userID, "productID", input.ProductID, "quantity", quantity)

	var entries []*entity.PantryEntry

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		// A failed shadow ensure is a rejected write, not an outage: it maps
		// to 400 with the store's message in the details.
		if err := repoFactory.UserRepo().EnsureShadow(ctx, entity.NewShadowUser(userID)); err != nil {
			return domainerrors.ErrValidationFailed.
				WithDetails(err.Error()).
				WrapMessage("failed to create user for pantry item")
		}

		if err := repoFactory.ProductRepo().EnsureShadow(ctx, shadowProduct(input)); err != nil {
			return domainerrors.ErrValidationFailed.
				WithDetails(err.Error()).
				WrapMessage("failed to create product for pantry item")
		}

		item := &entity.PantryItem{
			UserID:          userID,
			ProductID:       input.ProductID,
			Quantity:        quantity,
			Unit:            unit,
			QuantityInGrams: input.QuantityInGrams,
			Nutrition:       input.Nutrition(),
			Flags:           input.FlagOverrides(),
		}
		if err := repoFactory.PantryRepo().Upsert(ctx, item); err != nil {
			return errors.Wrap(err, "failed to upsert pantry item")
		}

		merged, err := srv.mergedPantry(ctx, repoFactory, userID)
		if err != nil {
			return err
		}
		entries = merged

		return nil
	})
	if err != nil {
		return nil, asStoreError(err, "failed to add pantry item")
	}

	return entries, nil
}

// UpdatePantryItem replaces the quantity of a pantry row. A quantity at or
// below zero deletes the row instead. Missing rows are tolerated silently.
func (srv *pantryService) UpdatePantryItem(ctx context.Context, userID, productID uuid.UUID, quantity float64) ([]*entity.PantryEntry, error) {
	if userID == uuid.Nil {
		return nil, domainerrors.ErrMissingParameter.WrapMessage("user ID is required")
	}
	if productID == uuid.Nil {
		return nil, domainerrors.ErrMissingParameter.WrapMessage("product ID is required")
	}

	srv.logger.Info("Updating pantry item",
		"userID", userID, "productID", productID, "quantity", quantity)

	var entries []*entity.PantryEntry

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		pantryRepo := repoFactory.PantryRepo()

		if quantity <= 0 {
			if err := pantryRepo.Delete(ctx, userID, productID); err != nil {
				return errors.Wrap(err, "failed to delete pantry item")
			}
		} else {
			if err := pantryRepo.UpdateQuantity(ctx, userID, productID, quantity); err != nil {
				return errors.Wrap(err, "failed to update pantry quantity")
			}
		}

		merged, err := srv.mergedPantry(ctx, repoFactory, userID)
		if err != nil {
			return err
		}
		entries = merged

		return nil
	})
	if err != nil {
		return nil, asStoreError(err, "failed to update pantry item")
	}

	return entries, nil
}

// RemovePantryItem deletes a pantry row. Removing an absent row succeeds.
func (srv *pantryService) RemovePantryItem(ctx context.Context, userID, productID uuid.UUID) ([]*entity.PantryEntry, error) {
	if userID == uuid.Nil {
		return nil, domainerrors.ErrMissingParameter.WrapMessage("user ID is required")
	}
	if productID == uuid.Nil {
		return nil, domainerrors.ErrMissingParameter.WrapMessage("product ID is required")
	}

	srv.logger.Info("Removing pantry item", "userID", userID, "productID", productID)

	var entries []*entity.PantryEntry

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.PantryRepo().Delete(ctx, userID, productID); err != nil {
			return errors.Wrap(err, "failed to delete pantry item")
		}

		merged, err := srv.mergedPantry(ctx, repoFactory, userID)
		if err != nil {
			return err
		}
		entries = merged

		return nil
	})
	if err != nil {
		return nil, asStoreError(err, "failed to remove pantry item")
	}

	return entries, nil
}

// ClearPantry deletes every pantry row of the user and returns the (empty) view.
func (srv *pantryService) ClearPantry(ctx context.Context, userID uuid.UUID) ([]*entity.PantryEntry, error) {
	if userID == uuid.Nil {
		return nil, domainerrors.ErrMissingParameter.WrapMessage("user ID is required")
	}

	srv.logger.Info("Clearing pantry", "userID", userID)

	var entries []*entity.PantryEntry

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.PantryRepo().DeleteByUser(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to clear pantry")
		}

		merged, err := srv.mergedPantry(ctx, repoFactory, userID)
		if err != nil {
			return err
		}
		entries = merged

		return nil
	})
	if err != nil {
		return nil, asStoreError(err, "failed to clear pantry")
	}

	return entries, nil
}

// mergedPantry reads the user's pantry rows, resolves their products in one
// batch, and merges each pair into a display entry.
func (srv *pantryService) mergedPantry(ctx context.Context, repoFactory repository.RepositoryFactory, userID uuid.UUID) ([]*entity.PantryEntry, error) {
	items, err := repoFactory.PantryRepo().ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pantry items")
	}

	productIDs := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		productIDs = append(productIDs, item.ProductID)
	}

	products, err := repoFactory.ProductRepo().FindByIDs(ctx, productIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve pantry products")
	}

	byID := make(map[uuid.UUID]*entity.Product, len(products))
	for _, product := range products {
		byID[product.ID] = product
	}

	asOf := time.Now().UTC()
	entries := make([]*entity.PantryEntry, 0, len(items))
	for _, item := range items {
		entries = append(entries, entity.MergePantryEntry(item, byID[item.ProductID], asOf))
	}

	return entries, nil
}

// shadowProduct synthesizes a minimal catalog record from an add payload. The
// caller-supplied ID is kept so the pantry row can reference it; unspecified
// fields stay null/false and a nameless payload falls back to the unknown label.
func shadowProduct(input *usecase.AddPantryItemInput) *entity.Product {
	name := input.Name
	if name == "" {
		name = entity.UnknownLabel
	}

	flags := entity.DietaryFlags{}
	overrides := input.FlagOverrides()
	for _, f := range []struct {
		src *bool
		dst *bool
	}{
		{overrides.IsHalal, &flags.IsHalal},
		{overrides.IsVegan, &flags.IsVegan},
		{overrides.IsVegetarian, &flags.IsVegetarian},
		{overrides.IsKosher, &flags.IsKosher},
		{overrides.IsGlutenFree, &flags.IsGlutenFree},
		{overrides.IsDairyFree, &flags.IsDairyFree},
		{overrides.IsNutFree, &flags.IsNutFree},
		{overrides.IsSoyFree, &flags.IsSoyFree},
		{overrides.IsShellfishFree, &flags.IsShellfishFree},
		{overrides.IsEggFree, &flags.IsEggFree},
		{overrides.IsFishFree, &flags.IsFishFree},
		{overrides.IsPalmOilFree, &flags.IsPalmOilFree},
	} {
		if f.src != nil {
			*f.dst = *f.src
		}
	}

	return &entity.Product{
		ID:          input.ProductID,
		Name:        name,
		Brand:       input.Brand,
		Category:    input.Category,
		Description: input.Description,
		Nutrition:   input.Nutrition(),
		Flags:       flags,
		IsActive:    true,
	}
}

// asStoreError keeps domain errors intact and converts anything else, which
// at this layer can only come from a failed store call, into a store
// unavailability error carrying the given context.
func asStoreError(err error, details string) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return err
	}

	return domainerrors.NewStoreUnavailableError(err, details)
}
