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

// MealLogHandlerParams holds dependencies for MealLogHandler, injected by Fx.
type MealLogHandlerParams struct {
	fx.In

	MealLogUC usecase.MealLogUsecase
	Logger    *slog.Logger
}

// MealLogHandler holds dependencies for meal tracking handlers
type MealLogHandler struct {
	mealLogUC usecase.MealLogUsecase
	logger    *slog.Logger
}

// NewMealLogHandler is the constructor for MealLogHandler
func NewMealLogHandler(params MealLogHandlerParams) *MealLogHandler {
	return &MealLogHandler{
		mealLogUC: params.MealLogUC,
		logger:    params.Logger,
	}
}

// LogMeal handles recording a consumed meal
func (h *MealLogHandler) LogMeal(c echo.Context) error {
	userID, err := userIDFromQuery(c)
	if err != nil {
		return response.BadRequest(c, "MISSING_PARAMETER", "userId is required")
	}

	var req usecase.LogMealInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid meal log input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	log, err := h.mealLogUC.LogMeal(c.Request().Context(), userID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, log)
}

// ListMealLogs handles listing a user's meal history with filters and paging
func (h *MealLogHandler) ListMealLogs(c echo.Context) error {
	userID, err := userIDFromQuery(c)
	if err != nil {
		return response.BadRequest(c, "MISSING_PARAMETER", "userId is required")
	}

	var req usecase.ListMealLogsInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid meal log query")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	result, err := h.mealLogUC.ListMealLogs(c.Request().Context(), userID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// GetMealLog handles retrieving one meal log entry scoped to its owner
func (h *MealLogHandler) GetMealLog(c echo.Context) error {
	userID, err := userIDFromQuery(c)
	if err != nil {
		return response.BadRequest(c, "MISSING_PARAMETER", "userId is required")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid meal log ID")
	}

	log, err := h.mealLogUC.GetMealLog(c.Request().Context(), userID, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, log)
}

// UpdateMealLog handles a partial update of a meal log entry
func (h *MealLogHandler) UpdateMealLog(c echo.Context) error {
	userID, err := userIDFromQuery(c)
	if err != nil {
		return response.BadRequest(c, "MISSING_PARAMETER", "userId is required")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid meal log ID")
	}

	var req usecase.UpdateMealLogInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid meal log input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	log, err := h.mealLogUC.UpdateMealLog(c.Request().Context(), userID, id, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, log)
}

// DeleteMealLog handles removing a meal log entry
func (h *MealLogHandler) DeleteMealLog(c echo.Context) error {
	userID, err := userIDFromQuery(c)
	if err != nil {
		return response.BadRequest(c, "MISSING_PARAMETER", "userId is required")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid meal log ID")
	}

	if err := h.mealLogUC.DeleteMealLog(c.Request().Context(), userID, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Meal log deleted successfully"})
}

// GetStats handles the meal tracking overview (today and last-7-days counters)
func (h *MealLogHandler) GetStats(c echo.Context) error {
	userID, err := userIDFromQuery(c)
	if err != nil {
		return response.BadRequest(c, "MISSING_PARAMETER", "userId is required")
	}

	stats, err := h.mealLogUC.GetStats(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stats)
}
