package impl

import (
	"context"
	"strings"
	"testing"

	"larder/internal/domain/entity"
	"larder/internal/domain/repository"
	mockRepo "larder/internal/mocks/repository"
	"larder/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// pantryServiceFixtures holds all test dependencies for pantry service tests.
type pantryServiceFixtures struct {
	t         *testing.T
	service   usecase.PantryUsecase
	txManager *mockRepo.MockTransactionManager
}

func createTestPantryService(t *testing.T) pantryServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	service := NewPantryService(txManager, newDiscardLogger())

	return pantryServiceFixtures{
		t:         t,
		service:   service,
		txManager: txManager,
	}
}

// onExecute expects one transaction, wires the factory through setup, runs
// the transactional function and makes Execute return result.
func (f pantryServiceFixtures) onExecute(ctx context.Context, result error, setup func(factory *mockRepo.MockRepositoryFactory)) {
	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			factory := mockRepo.NewMockRepositoryFactory(f.t)
			setup(factory)
			_ = fn(factory)
		}).
		Return(result)
}

func floatPtr(v float64) *float64 {
	return &v
}

func boolPtr(v bool) *bool {
	return &v
}

// expectMergedList wires the two reads every operation ends with: the pantry
// rows and their catalog products.
func expectMergedList(t *testing.T, factory *mockRepo.MockRepositoryFactory, pantryRepo *mockRepo.MockPantryRepository, userID uuid.UUID, items []*entity.PantryItem, products []*entity.Product) {
	productRepo := mockRepo.NewMockProductRepository(t)
	factory.EXPECT().ProductRepo().Return(productRepo)

	pantryRepo.EXPECT().ListByUser(mock.Anything, userID).Return(items, nil)
	productRepo.EXPECT().FindByIDs(mock.Anything, mock.Anything).Return(products, nil)
}

func TestPantryService_AddPantryItem_Success(t *testing.T) {
	fx := createTestPantryService(t)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()
	input := &usecase.AddPantryItemInput{
		ProductID: productID,
		Quantity:  floatPtr(3),
		Unit:      "g",
		Name:      "Rolled Oats",
		Calories:  floatPtr(120),
	}

	storedItem := &entity.PantryItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  3,
		Unit:      "g",
		Nutrition: entity.Nutrition{Calories: floatPtr(120)},
	}
	catalogProduct := &entity.Product{
		ID:        productID,
		Name:      "Rolled Oats",
		Nutrition: entity.Nutrition{Calories: floatPtr(380)},
	}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		productRepo := mockRepo.NewMockProductRepository(t)
		pantryRepo := mockRepo.NewMockPantryRepository(t)

		factory.EXPECT().UserRepo().Return(userRepo)
		factory.EXPECT().ProductRepo().Return(productRepo)
		factory.EXPECT().PantryRepo().Return(pantryRepo)

		userRepo.EXPECT().
			EnsureShadow(ctx, mock.MatchedBy(func(u *entity.User) bool {
				return u.ID == userID && strings.HasSuffix(u.Email, "@local.invalid")
			})).
			Return(nil)

		productRepo.EXPECT().
			EnsureShadow(ctx, mock.MatchedBy(func(p *entity.Product) bool {
				return p.ID == productID && p.Name == "Rolled Oats" && p.IsActive
			})).
			Return(nil)

		pantryRepo.EXPECT().
			Upsert(ctx, mock.MatchedBy(func(item *entity.PantryItem) bool {
				return item.UserID == userID &&
					item.ProductID == productID &&
					item.Quantity == 3 &&
					item.Unit == "g" &&
					item.Nutrition.Calories != nil && *item.Nutrition.Calories == 120
			})).
			Return(nil)

		pantryRepo.EXPECT().ListByUser(ctx, userID).Return([]*entity.PantryItem{storedItem}, nil)
		productRepo.EXPECT().FindByIDs(ctx, []uuid.UUID{productID}).Return([]*entity.Product{catalogProduct}, nil)
	})

	entries, err := fx.service.AddPantryItem(ctx, userID, input)

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, productID, entries[0].ID)
	assert.Equal(t, 3.0, entries[0].Quantity)
	assert.Equal(t, "g", entries[0].Unit)
	assert.Equal(t, 120.0, entries[0].Calories, "item override beats the catalog's 380")
}

func TestPantryService_AddPantryItem_DefaultsQuantityAndUnit(t *testing.T) {
	fx := createTestPantryService(t)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()
	input := &usecase.AddPantryItemInput{ProductID: productID}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		productRepo := mockRepo.NewMockProductRepository(t)
		pantryRepo := mockRepo.NewMockPantryRepository(t)

		factory.EXPECT().UserRepo().Return(userRepo)
		factory.EXPECT().ProductRepo().Return(productRepo)
		factory.EXPECT().PantryRepo().Return(pantryRepo)

		userRepo.EXPECT().EnsureShadow(ctx, mock.Anything).Return(nil)

		productRepo.EXPECT().
			EnsureShadow(ctx, mock.MatchedBy(func(p *entity.Product) bool {
				return p.Name == entity.UnknownLabel
			})).
			Return(nil)

		pantryRepo.EXPECT().
			Upsert(ctx, mock.MatchedBy(func(item *entity.PantryItem) bool {
				return item.Quantity == 1 && item.Unit == DefaultPantryUnit
			})).
			Return(nil)

		pantryRepo.EXPECT().ListByUser(ctx, userID).Return([]*entity.PantryItem{}, nil)
		productRepo.EXPECT().FindByIDs(ctx, []uuid.UUID{}).Return([]*entity.Product{}, nil)
	})

	entries, err := fx.service.AddPantryItem(ctx, userID, input)

	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestPantryService_UpdatePantryItem_ReplacesQuantity(t *testing.T) {
	fx := createTestPantryService(t)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		pantryRepo := mockRepo.NewMockPantryRepository(t)
		factory.EXPECT().PantryRepo().Return(pantryRepo)

		pantryRepo.EXPECT().UpdateQuantity(ctx, userID, productID, 5.0).Return(nil)
		expectMergedList(t, factory, pantryRepo, userID,
			[]*entity.PantryItem{{UserID: userID, ProductID: productID, Quantity: 5}},
			[]*entity.Product{{ID: productID, Name: "Milk"}})
	})

	entries, err := fx.service.UpdatePantryItem(ctx, userID, productID, 5)

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 5.0, entries[0].Quantity)
}

func TestPantryService_UpdatePantryItem_ZeroDeletesRow(t *testing.T) {
	fx := createTestPantryService(t)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		pantryRepo := mockRepo.NewMockPantryRepository(t)
		factory.EXPECT().PantryRepo().Return(pantryRepo)

		pantryRepo.EXPECT().Delete(ctx, userID, productID).Return(nil)
		expectMergedList(t, factory, pantryRepo, userID, []*entity.PantryItem{}, []*entity.Product{})
	})

	entries, err := fx.service.UpdatePantryItem(ctx, userID, productID, 0)

	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestPantryService_UpdatePantryItem_NegativeDeletesRow(t *testing.T) {
	fx := createTestPantryService(t)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		pantryRepo := mockRepo.NewMockPantryRepository(t)
		factory.EXPECT().PantryRepo().Return(pantryRepo)

		pantryRepo.EXPECT().Delete(ctx, userID, productID).Return(nil)
		expectMergedList(t, factory, pantryRepo, userID, []*entity.PantryItem{}, []*entity.Product{})
	})

	_, err := fx.service.UpdatePantryItem(ctx, userID, productID, -2)

	require.NoError(t, err)
}

func TestPantryService_RemovePantryItem_AbsentRowIsNotAnError(t *testing.T) {
	fx := createTestPantryService(t)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		pantryRepo := mockRepo.NewMockPantryRepository(t)
		factory.EXPECT().PantryRepo().Return(pantryRepo)

		pantryRepo.EXPECT().Delete(ctx, userID, productID).Return(nil)
		expectMergedList(t, factory, pantryRepo, userID, []*entity.PantryItem{}, []*entity.Product{})
	})

	entries, err := fx.service.RemovePantryItem(ctx, userID, productID)

	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestPantryService_ClearPantry_Success(t *testing.T) {
	fx := createTestPantryService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		pantryRepo := mockRepo.NewMockPantryRepository(t)
		factory.EXPECT().PantryRepo().Return(pantryRepo)

		pantryRepo.EXPECT().DeleteByUser(ctx, userID).Return(nil)
		expectMergedList(t, factory, pantryRepo, userID, []*entity.PantryItem{}, []*entity.Product{})
	})

	entries, err := fx.service.ClearPantry(ctx, userID)

	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestPantryService_ListPantry_MissingCatalogRowRendersUnknown(t *testing.T) {
	fx := createTestPantryService(t)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		pantryRepo := mockRepo.NewMockPantryRepository(t)
		factory.EXPECT().PantryRepo().Return(pantryRepo)

		expectMergedList(t, factory, pantryRepo, userID,
			[]*entity.PantryItem{{
				UserID:    userID,
				ProductID: productID,
				Quantity:  2,
				Nutrition: entity.Nutrition{Calories: floatPtr(50)},
			}},
			[]*entity.Product{})
	})

	entries, err := fx.service.ListPantry(ctx, userID)

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, entity.UnknownLabel, entries[0].Name)
	assert.Equal(t, 50.0, entries[0].Calories)
}
