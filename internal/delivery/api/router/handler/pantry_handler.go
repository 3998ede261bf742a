package handler

import (
	"log/slog"
	"net/http"

	"larder/internal/delivery/api/response"
	"larder/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PantryHandlerParams holds dependencies for PantryHandler, injected by Fx.
type PantryHandlerParams struct {
	fx.In

	PantryUC usecase.PantryUsecase
	Logger   *slog.Logger
}

// PantryHandler holds dependencies for pantry-related handlers
type PantryHandler struct {
	pantryUC usecase.PantryUsecase
	logger   *slog.Logger
}

// NewPantryHandler is the constructor for PantryHandler
func NewPantryHandler(params PantryHandlerParams) *PantryHandler {
	return &PantryHandler{
		pantryUC: params.PantryUC,
		logger:   params.Logger,
	}
}

// UpdatePantryItemRequest represents the request body for updating a pantry quantity
type UpdatePantryItemRequest struct {
	Quantity *float64 `json:"quantity" validate:"required"`
}

// GetPantry handles retrieving the merged pantry view for a user
func (h *PantryHandler) GetPantry(c echo.Context) error {
	userID, err := userIDFromQuery(c)
	if err != nil {
		return response.BadRequest(c, "MISSING_PARAMETER", "userId is required")
	}

	entries, err := h.pantryUC.ListPantry(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, entries)
}

// AddPantryItem handles adding a product-like payload to the pantry.
// Repeated adds of the same product accumulate quantity.
func (h *PantryHandler) AddPantryItem(c echo.Context) error {
	userID, err := userIDFromQuery(c)
	if err != nil {
		return response.BadRequest(c, "MISSING_PARAMETER", "userId is required")
	}

	var req usecase.AddPantryItemInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid pantry item input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	entries, err := h.pantryUC.AddPantryItem(c.Request().Context(), userID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, entries)
}

// UpdatePantryItem handles setting the absolute quantity of a pantry row.
// A quantity of zero or less removes the row.
func (h *PantryHandler) UpdatePantryItem(c echo.Context) error {
	userID, err := userIDFromQuery(c)
	if err != nil {
		return response.BadRequest(c, "MISSING_PARAMETER", "userId is required")
	}

	productID, err := uuid.Parse(c.QueryParam("productId"))
	if err != nil {
		return response.BadRequest(c, "MISSING_PARAMETER", "productId is required")
	}

	var req UpdatePantryItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid pantry update input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	entries, err := h.pantryUC.UpdatePantryItem(c.Request().Context(), userID, productID, *req.Quantity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, entries)
}

// RemovePantryItem handles removing one product from the pantry.
// Removing an absent row is not an error.
func (h *PantryHandler) RemovePantryItem(c echo.Context) error {
	userID, err := userIDFromQuery(c)
	if err != nil {
		return response.BadRequest(c, "MISSING_PARAMETER", "userId is required")
	}

	productID, err := uuid.Parse(c.QueryParam("productId"))
	if err != nil {
		return response.BadRequest(c, "MISSING_PARAMETER", "productId is required")
	}

	entries, err := h.pantryUC.RemovePantryItem(c.Request().Context(), userID, productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, entries)
}

// ClearPantry handles deleting every pantry row of a user
func (h *PantryHandler) ClearPantry(c echo.Context) error {
	userID, err := userIDFromQuery(c)
	if err != nil {
		return response.BadRequest(c, "MISSING_PARAMETER", "userId is required")
	}

	entries, err := h.pantryUC.ClearPantry(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, entries)
}

// userIDFromQuery parses the userId query parameter shared by the
// per-user route groups.
func userIDFromQuery(c echo.Context) (uuid.UUID, error) {
	return uuid.Parse(c.QueryParam("userId"))
}
