package impl

import (
	"context"
	"testing"

	domainerrors "larder/internal/domain/errors"
	mockRepo "larder/internal/mocks/repository"
	"larder/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPantryService_AddPantryItem_MissingUserID(t *testing.T) {
	fx := createTestPantryService(t)

	_, err := fx.service.AddPantryItem(context.Background(), uuid.Nil, &usecase.AddPantryItemInput{
		ProductID: uuid.New(),
	})

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "MISSING_PARAMETER", appErr.ErrorCode())
}

func TestPantryService_AddPantryItem_MissingProductID(t *testing.T) {
	fx := createTestPantryService(t)

	_, err := fx.service.AddPantryItem(context.Background(), uuid.New(), &usecase.AddPantryItemInput{})

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "MISSING_PARAMETER", appErr.ErrorCode())
	assert.Contains(t, err.Error(), "product ID")
}

func TestPantryService_AddPantryItem_EnsureUserFails(t *testing.T) {
	fx := createTestPantryService(t)

	ctx := context.Background()
	userID := uuid.New()
	storeErr := errors.New("connection refused")
	closureErr := domainerrors.ErrValidationFailed.
		WithDetails(storeErr.Error()).
		WrapMessage("failed to create user for pantry item")

	fx.onExecute(ctx, closureErr, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(userRepo)
		userRepo.EXPECT().EnsureShadow(ctx, mock.Anything).Return(storeErr)
	})

	_, err := fx.service.AddPantryItem(ctx, userID, &usecase.AddPantryItemInput{ProductID: uuid.New()})

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
	assert.Equal(t, 400, appErr.HTTPCode())
	assert.Contains(t, appErr.Details(), "connection refused")
}

func TestPantryService_AddPantryItem_EnsureProductFails(t *testing.T) {
	fx := createTestPantryService(t)

	ctx := context.Background()
	userID := uuid.New()
	storeErr := errors.New("not-null constraint violated")
	closureErr := domainerrors.ErrValidationFailed.
		WithDetails(storeErr.Error()).
		WrapMessage("failed to create product for pantry item")

	fx.onExecute(ctx, closureErr, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		productRepo := mockRepo.NewMockProductRepository(t)
		factory.EXPECT().UserRepo().Return(userRepo)
		factory.EXPECT().ProductRepo().Return(productRepo)
		userRepo.EXPECT().EnsureShadow(ctx, mock.Anything).Return(nil)
		productRepo.EXPECT().EnsureShadow(ctx, mock.Anything).Return(storeErr)
	})

	_, err := fx.service.AddPantryItem(ctx, userID, &usecase.AddPantryItemInput{ProductID: uuid.New()})

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
	assert.Equal(t, 400, appErr.HTTPCode())
	assert.Contains(t, err.Error(), "failed to create product for pantry item")
}

func TestPantryService_UpdatePantryItem_StoreFailure(t *testing.T) {
	fx := createTestPantryService(t)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()
	storeErr := errors.New("write timeout")

	fx.onExecute(ctx, errors.Wrap(storeErr, "failed to update pantry quantity"), func(factory *mockRepo.MockRepositoryFactory) {
		pantryRepo := mockRepo.NewMockPantryRepository(t)
		factory.EXPECT().PantryRepo().Return(pantryRepo)
		pantryRepo.EXPECT().UpdateQuantity(ctx, userID, productID, 4.0).Return(storeErr)
	})

	_, err := fx.service.UpdatePantryItem(ctx, userID, productID, 4)

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "STORE_UNAVAILABLE", appErr.ErrorCode())
}

func TestPantryService_ListPantry_MissingUserID(t *testing.T) {
	fx := createTestPantryService(t)

	_, err := fx.service.ListPantry(context.Background(), uuid.Nil)

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "MISSING_PARAMETER", appErr.ErrorCode())
}
