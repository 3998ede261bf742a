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

// defaultMealLogLimit bounds meal log pages when no limit is supplied.
const defaultMealLogLimit = 50

// mealLogService implements the MealLogUsecase interface.
type mealLogService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
	now       func() time.Time
}

// NewMealLogService is the constructor for mealLogService.
func NewMealLogService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.MealLogUsecase {
	return &mealLogService{
		txManager: txManager,
		logger:    logger,
		now:       time.Now,
	}
}

// LogMeal records a new meal entry for the user.
func (srv *mealLogService) LogMeal(ctx context.Context, userID uuid.UUID, input *usecase.LogMealInput) (*entity.MealLog, error) {
	mealType := entity.MealType(input.MealType)
	if !mealType.Valid() {
		return nil, domainerrors.ErrInvalidMealType.WrapMessage(input.MealType)
	}

	loggedAt := srv.now().UTC()
	if input.LoggedAt != nil {
		loggedAt = input.LoggedAt.UTC()
	}

	log := &entity.MealLog{
		UserID:   userID,
		MealID:   input.MealID,
		MealName: input.MealName,
		MealType: mealType,
		Calories: input.Calories,
		LoggedAt: loggedAt,
	}

	srv.logger.Info("Logging meal", "userID", userID, "mealType", mealType)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.UserRepo().EnsureShadow(ctx, entity.NewShadowUser(userID)); err != nil {
			return errors.Wrap(err, "failed to ensure user")
		}

		if err := repoFactory.MealLogRepo().Create(ctx, log); err != nil {
			return errors.Wrap(err, "failed to create meal log")
		}

		return nil
	})
	if err != nil {
		return nil, asStoreError(err, "failed to log meal")
	}

	return log, nil
}

// GetMealLog retrieves a single entry owned by the user.
func (srv *mealLogService) GetMealLog(ctx context.Context, userID, id uuid.UUID) (*entity.MealLog, error) {
	var log *entity.MealLog

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.MealLogRepo().FindByID(ctx, userID, id)
		if err != nil {
			if errors.Is(err, repository.ErrMealLogNotFound) {
				return domainerrors.ErrMealLogNotFound
			}

			return errors.Wrap(err, "failed to find meal log")
		}
		log = found

		return nil
	})
	if err != nil {
		return nil, asStoreError(err, "failed to get meal log")
	}

	return log, nil
}

// ListMealLogs retrieves one page of the user's entries, newest first.
func (srv *mealLogService) ListMealLogs(ctx context.Context, userID uuid.UUID, input *usecase.ListMealLogsInput) (*usecase.MealLogListOutput, error) {
	if input.MealType != "" && !entity.MealType(input.MealType).Valid() {
		return nil, domainerrors.ErrInvalidMealType.WrapMessage(input.MealType)
	}

	limit := input.Limit
	if limit <= 0 {
		limit = defaultMealLogLimit
	}
	offset := input.Offset
	if offset < 0 {
		offset = 0
	}

	filter := repository.MealLogFilter{
		MealType:  entity.MealType(input.MealType),
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		Search:    input.Search,
		Limit:     limit,
		Offset:    offset,
	}

	var (
		logs  []*entity.MealLog
		total int64
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, count, err := repoFactory.MealLogRepo().ListByUser(ctx, userID, filter)
		if err != nil {
			return errors.Wrap(err, "failed to list meal logs")
		}
		logs = found
		total = count

		return nil
	})
	if err != nil {
		return nil, asStoreError(err, "failed to list meal logs")
	}

	return &usecase.MealLogListOutput{
		Entries: logs,
		Total:   total,
		Limit:   limit,
		Offset:  offset,
	}, nil
}

// UpdateMealLog applies a partial update to an entry owned by the user.
func (srv *mealLogService) UpdateMealLog(ctx context.Context, userID, id uuid.UUID, input *usecase.UpdateMealLogInput) (*entity.MealLog, error) {
	if input.MealType != nil && !entity.MealType(*input.MealType).Valid() {
		return nil, domainerrors.ErrInvalidMealType.WrapMessage(*input.MealType)
	}

	srv.logger.Info("Updating meal log", "userID", userID, "mealLogID", id)

	var log *entity.MealLog

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		mealLogRepo := repoFactory.MealLogRepo()

		found, err := mealLogRepo.FindByID(ctx, userID, id)
		if err != nil {
			if errors.Is(err, repository.ErrMealLogNotFound) {
				return domainerrors.ErrMealLogNotFound
			}

			return errors.Wrap(err, "failed to find meal log")
		}

		if input.MealID != nil {
			found.MealID = input.MealID
		}
		if input.MealName != nil {
			found.MealName = *input.MealName
		}
		if input.MealType != nil {
			found.MealType = entity.MealType(*input.MealType)
		}
		if input.Calories != nil {
			found.Calories = input.Calories
		}
		if input.LoggedAt != nil {
			found.LoggedAt = input.LoggedAt.UTC()
		}

		if err := mealLogRepo.Update(ctx, found); err != nil {
			if errors.Is(err, repository.ErrMealLogNotFound) {
				return domainerrors.ErrMealLogNotFound
			}

			return errors.Wrap(err, "failed to update meal log")
		}
		log = found

		return nil
	})
	if err != nil {
		return nil, asStoreError(err, "failed to update meal log")
	}

	return log, nil
}

// DeleteMealLog removes an entry owned by the user.
func (srv *mealLogService) DeleteMealLog(ctx context.Context, userID, id uuid.UUID) error {
	srv.logger.Info("Deleting meal log", "userID", userID, "mealLogID", id)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.MealLogRepo().Delete(ctx, userID, id); err != nil {
			if errors.Is(err, repository.ErrMealLogNotFound) {
				return domainerrors.ErrMealLogNotFound
			}

			return errors.Wrap(err, "failed to delete meal log")
		}

		return nil
	})
	if err != nil {
		return asStoreError(err, "failed to delete meal log")
	}

	return nil
}

// GetStats summarizes the user's recent tracking activity.
func (srv *mealLogService) GetStats(ctx context.Context, userID uuid.UUID) (*entity.MealLogStats, error) {
	now := srv.now().UTC()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	weekAgo := now.AddDate(0, 0, -7)

	stats := &entity.MealLogStats{}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		mealLogRepo := repoFactory.MealLogRepo()

		today, err := mealLogRepo.CountSince(ctx, userID, startOfDay)
		if err != nil {
			return errors.Wrap(err, "failed to count today's meal logs")
		}

		week, err := mealLogRepo.CountSince(ctx, userID, weekAgo)
		if err != nil {
			return errors.Wrap(err, "failed to count this week's meal logs")
		}

		calories, err := mealLogRepo.SumCaloriesSince(ctx, userID, startOfDay)
		if err != nil {
			return errors.Wrap(err, "failed to sum today's calories")
		}

		stats.EntriesToday = today
		stats.EntriesLast7Days = week
		stats.CaloriesToday = calories

		return nil
	})
	if err != nil {
		return nil, asStoreError(err, "failed to get meal log stats")
	}

	return stats, nil
}
