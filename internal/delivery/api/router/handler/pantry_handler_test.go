package handler

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"larder/internal/delivery/api/validator"
	"larder/internal/domain/entity"
	domainerrors "larder/internal/domain/errors"
	mockUsecase "larder/internal/mocks/usecase"
	"larder/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPantryTestContext(t *testing.T, method, target string, body string) (echo.Context, *httptest.ResponseRecorder, *MockedPantryHandler) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	pantryUC := mockUsecase.NewMockPantryUsecase(t)
	h := &PantryHandler{
		pantryUC: pantryUC,
		logger:   slog.Default(),
	}

	return c, rec, &MockedPantryHandler{Handler: h, PantryUC: pantryUC}
}

// MockedPantryHandler bundles a handler with its usecase mock.
type MockedPantryHandler struct {
	Handler  *PantryHandler
	PantryUC *mockUsecase.MockPantryUsecase
}

func TestPantryHandler_GetPantry(t *testing.T) {
	userID := uuid.New()
	c, rec, fx := newPantryTestContext(t, http.MethodGet, "/api/pantry?userId="+userID.String(), "")

	entries := []*entity.PantryEntry{
		{ID: uuid.New(), Name: "Oats", Category: "Grains", Quantity: 2, Unit: "servings"},
	}
	fx.PantryUC.EXPECT().ListPantry(mock.Anything, userID).Return(entries, nil)

	err := fx.Handler.GetPantry(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"name":"Oats"`)
	assert.Contains(t, rec.Body.String(), `"quantity":2`)
}

func TestPantryHandler_GetPantry_MissingUserID(t *testing.T) {
	c, rec, fx := newPantryTestContext(t, http.MethodGet, "/api/pantry", "")

	err := fx.Handler.GetPantry(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "MISSING_PARAMETER")
}

func TestPantryHandler_AddPantryItem(t *testing.T) {
	userID := uuid.New()
	productID := uuid.New()
	body := `{"id":"` + productID.String() + `","quantity":3,"unit":"packs","name":"Lentils"}`

	c, rec, fx := newPantryTestContext(t, http.MethodPost, "/api/pantry?userId="+userID.String(), body)

	fx.PantryUC.EXPECT().
		AddPantryItem(mock.Anything, userID, mock.MatchedBy(func(input *usecase.AddPantryItemInput) bool {
			return input.ProductID == productID &&
				input.Quantity != nil && *input.Quantity == 3 &&
				input.Unit == "packs" &&
				input.Name == "Lentils"
		})).
		Return([]*entity.PantryEntry{{ID: productID, Name: "Lentils", Quantity: 3}}, nil)

	err := fx.Handler.AddPantryItem(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"name":"Lentils"`)
}

func TestPantryHandler_AddPantryItem_MissingProductID(t *testing.T) {
	userID := uuid.New()

	c, rec, fx := newPantryTestContext(t, http.MethodPost, "/api/pantry?userId="+userID.String(), `{"quantity":1}`)

	err := fx.Handler.AddPantryItem(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestPantryHandler_UpdatePantryItem_MissingProductID(t *testing.T) {
	userID := uuid.New()

	c, rec, fx := newPantryTestContext(t, http.MethodPut, "/api/pantry?userId="+userID.String(), `{"quantity":2}`)

	err := fx.Handler.UpdatePantryItem(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "MISSING_PARAMETER")
}

func TestPantryHandler_UpdatePantryItem(t *testing.T) {
	userID := uuid.New()
	productID := uuid.New()
	target := "/api/pantry?userId=" + userID.String() + "&productId=" + productID.String()

	c, rec, fx := newPantryTestContext(t, http.MethodPut, target, `{"quantity":5}`)

	fx.PantryUC.EXPECT().
		UpdatePantryItem(mock.Anything, userID, productID, 5.0).
		Return([]*entity.PantryEntry{{ID: productID, Quantity: 5}}, nil)

	err := fx.Handler.UpdatePantryItem(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"quantity":5`)
}

func TestPantryHandler_RemovePantryItem(t *testing.T) {
	userID := uuid.New()
	productID := uuid.New()
	target := "/api/pantry?userId=" + userID.String() + "&productId=" + productID.String()

	c, rec, fx := newPantryTestContext(t, http.MethodDelete, target, "")

	fx.PantryUC.EXPECT().
		RemovePantryItem(mock.Anything, userID, productID).
		Return([]*entity.PantryEntry{}, nil)

	err := fx.Handler.RemovePantryItem(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPantryHandler_ClearPantry_StoreFailure(t *testing.T) {
	userID := uuid.New()

	c, rec, fx := newPantryTestContext(t, http.MethodDelete, "/api/pantry/clear?userId="+userID.String(), "")

	fx.PantryUC.EXPECT().
		ClearPantry(mock.Anything, userID).
		Return(nil, domainerrors.NewStoreUnavailableError(assert.AnError, "failed to clear pantry"))

	err := fx.Handler.ClearPantry(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "STORE_UNAVAILABLE")
}
