package impl

import (
	"context"
	"testing"
	"time"

	"larder/internal/domain/entity"
	domainerrors "larder/internal/domain/errors"
	"larder/internal/domain/repository"
	mockRepo "larder/internal/mocks/repository"
	"larder/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// mealLogServiceFixtures holds all test dependencies for meal log service tests.
type mealLogServiceFixtures struct {
	t         *testing.T
	service   usecase.MealLogUsecase
	txManager *mockRepo.MockTransactionManager
}

func createTestMealLogService(t *testing.T) mealLogServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	service := NewMealLogService(txManager, newDiscardLogger())

	return mealLogServiceFixtures{
		t:         t,
		service:   service,
		txManager: txManager,
	}
}

func (f mealLogServiceFixtures) onExecute(ctx context.Context, result error, setup func(factory *mockRepo.MockRepositoryFactory)) {
	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			factory := mockRepo.NewMockRepositoryFactory(f.t)
			setup(factory)
			_ = fn(factory)
		}).
		Return(result)
}

func TestMealLogService_LogMeal_Success(t *testing.T) {
	fx := createTestMealLogService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.LogMealInput{
		MealName: "Overnight oats",
		MealType: "breakfast",
		Calories: floatPtr(420),
	}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		mealLogRepo := mockRepo.NewMockMealLogRepository(t)

		factory.EXPECT().UserRepo().Return(userRepo)
		factory.EXPECT().MealLogRepo().Return(mealLogRepo)

		userRepo.EXPECT().EnsureShadow(ctx, mock.Anything).Return(nil)
		mealLogRepo.EXPECT().
			Create(ctx, mock.MatchedBy(func(log *entity.MealLog) bool {
				return log.UserID == userID &&
					log.MealName == "Overnight oats" &&
					log.MealType == entity.MealTypeBreakfast &&
					!log.LoggedAt.IsZero()
			})).
			Return(nil)
	})

	log, err := fx.service.LogMeal(ctx, userID, input)

	require.NoError(t, err)
	assert.Equal(t, entity.MealTypeBreakfast, log.MealType)
	assert.Equal(t, 420.0, *log.Calories)
}

func TestMealLogService_LogMeal_InvalidMealType(t *testing.T) {
	fx := createTestMealLogService(t)

	_, err := fx.service.LogMeal(context.Background(), uuid.New(), &usecase.LogMealInput{
		MealName: "Mystery",
		MealType: "brunch",
	})

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_MEAL_TYPE", appErr.ErrorCode())
}

func TestMealLogService_ListMealLogs_AppliesDefaults(t *testing.T) {
	fx := createTestMealLogService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mealLogRepo := mockRepo.NewMockMealLogRepository(t)
		factory.EXPECT().MealLogRepo().Return(mealLogRepo)

		mealLogRepo.EXPECT().
			ListByUser(ctx, userID, mock.MatchedBy(func(f repository.MealLogFilter) bool {
				return f.Limit == defaultMealLogLimit && f.Offset == 0
			})).
			Return([]*entity.MealLog{}, int64(0), nil)
	})

	out, err := fx.service.ListMealLogs(ctx, userID, &usecase.ListMealLogsInput{})

	require.NoError(t, err)
	assert.Equal(t, defaultMealLogLimit, out.Limit)
	assert.Empty(t, out.Entries)
}

func TestMealLogService_UpdateMealLog_NotFound(t *testing.T) {
	fx := createTestMealLogService(t)

	ctx := context.Background()
	userID := uuid.New()
	logID := uuid.New()
	newName := "Lentil soup"

	fx.onExecute(ctx, domainerrors.ErrMealLogNotFound, func(factory *mockRepo.MockRepositoryFactory) {
		mealLogRepo := mockRepo.NewMockMealLogRepository(t)
		factory.EXPECT().MealLogRepo().Return(mealLogRepo)

		mealLogRepo.EXPECT().FindByID(ctx, userID, logID).Return(nil, repository.ErrMealLogNotFound)
	})

	_, err := fx.service.UpdateMealLog(ctx, userID, logID, &usecase.UpdateMealLogInput{MealName: &newName})

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.HTTPCode())
}

func TestMealLogService_GetStats_Success(t *testing.T) {
	fx := createTestMealLogService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mealLogRepo := mockRepo.NewMockMealLogRepository(t)
		factory.EXPECT().MealLogRepo().Return(mealLogRepo)

		mealLogRepo.EXPECT().
			CountSince(ctx, userID, mock.MatchedBy(func(since time.Time) bool {
				return time.Since(since) < 24*time.Hour
			})).
			Return(int64(2), nil)
		mealLogRepo.EXPECT().
			CountSince(ctx, userID, mock.MatchedBy(func(since time.Time) bool {
				return time.Since(since) > 6*24*time.Hour
			})).
			Return(int64(11), nil)
		mealLogRepo.EXPECT().
			SumCaloriesSince(ctx, userID, mock.Anything).
			Return(830.0, nil)
	})

	stats, err := fx.service.GetStats(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.EntriesToday)
	assert.Equal(t, int64(11), stats.EntriesLast7Days)
	assert.Equal(t, 830.0, stats.CaloriesToday)
}
