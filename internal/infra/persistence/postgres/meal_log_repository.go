package postgres

import (
	"context"
	"time"

	"larder/internal/domain/entity"
	domainerrors "larder/internal/domain/errors"
	"larder/internal/domain/repository"
	"larder/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// mealLogRepository implements the repository.MealLogRepository interface using GORM.
type mealLogRepository struct {
	db *gorm.DB
}

// NewMealLogRepository is the constructor for mealLogRepository.
func NewMealLogRepository(db *gorm.DB) repository.MealLogRepository {
	return &mealLogRepository{
		db: db,
	}
}

// Create persists a new meal log entry.
func (repo *mealLogRepository) Create(ctx context.Context, log *entity.MealLog) error {
	logM := fromMealLogDomain(log)

	if err := repo.db.WithContext(ctx).Create(logM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("meal log references a missing user")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required meal log information")
		}

		return domainerrors.NewStoreUnavailableError(err, "failed to create meal log")
	}

	log.ID = logM.ID
	log.CreatedAt = logM.CreatedAt
	log.UpdatedAt = logM.UpdatedAt

	return nil
}

// FindByID retrieves a single meal log entry scoped to its owner.
func (repo *mealLogRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.MealLog, error) {
	var logM model.MealLogModel

	if err := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&logM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMealLogNotFound
		}

		return nil, errors.Wrap(err, "failed to find meal log by ID")
	}

	return toMealLogDomain(&logM), nil
}

// ListByUser retrieves meal log entries matching the filter, most recent first,
// along with the total count before pagination.
func (repo *mealLogRepository) ListByUser(ctx context.Context, userID uuid.UUID, filter repository.MealLogFilter) ([]*entity.MealLog, int64, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.MealLogModel{}).
		Where("user_id = ?", userID)

	if filter.MealType != "" {
		query = query.Where("meal_type = ?", filter.MealType)
	}
	if filter.StartDate != nil {
		query = query.Where("logged_at >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("logged_at <= ?", *filter.EndDate)
	}
	if filter.Search != "" {
		query = query.Where("meal_name ILIKE ?", "%"+filter.Search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count meal logs")
	}

	var logModels []*model.MealLogModel
	if err := query.
		Order("logged_at DESC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&logModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list meal logs")
	}

	logs := make([]*entity.MealLog, 0, len(logModels))
	for _, logM := range logModels {
		logs = append(logs, toMealLogDomain(logM))
	}

	return logs, total, nil
}

// Update modifies an existing meal log entry owned by the user.
func (repo *mealLogRepository) Update(ctx context.Context, log *entity.MealLog) error {
	logM := fromMealLogDomain(log)

	res := repo.db.WithContext(ctx).
		Model(&model.MealLogModel{}).
		Where("id = ? AND user_id = ?", log.ID, log.UserID).
		Select("meal_id", "meal_name", "meal_type", "calories", "logged_at", "updated_at").
		Updates(logM)
	if res.Error != nil {
		return domainerrors.NewStoreUnavailableError(res.Error, "failed to update meal log")
	}
	if res.RowsAffected == 0 {
		return repository.ErrMealLogNotFound
	}

	return nil
}

// Delete removes a meal log entry owned by the user.
func (repo *mealLogRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	res := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.MealLogModel{})
	if res.Error != nil {
		return domainerrors.NewStoreUnavailableError(res.Error, "failed to delete meal log")
	}
	if res.RowsAffected == 0 {
		return repository.ErrMealLogNotFound
	}

	return nil
}

// CountSince counts meal log entries logged at or after the given instant.
func (repo *mealLogRepository) CountSince(ctx context.Context, userID uuid.UUID, since time.Time) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.MealLogModel{}).
		Where("user_id = ? AND logged_at >= ?", userID, since).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count meal logs")
	}

	return count, nil
}

// SumCaloriesSince totals the recorded calories of entries logged at or after
// the given instant. Entries without a calorie value contribute nothing.
func (repo *mealLogRepository) SumCaloriesSince(ctx context.Context, userID uuid.UUID, since time.Time) (float64, error) {
	var total float64

	if err := repo.db.WithContext(ctx).
		Model(&model.MealLogModel{}).
		Where("user_id = ? AND logged_at >= ?", userID, since).
		Select("COALESCE(SUM(calories), 0)").
		Scan(&total).Error; err != nil {
		return 0, errors.Wrap(err, "failed to sum meal log calories")
	}

	return total, nil
}

// toMealLogDomain converts a GORM MealLogModel to a domain MealLog entity.
func toMealLogDomain(data *model.MealLogModel) *entity.MealLog {
	if data == nil {
		return nil
	}

	return &entity.MealLog{
		ID:        data.ID,
		UserID:    data.UserID,
		MealID:    data.MealID,
		MealName:  data.MealName,
		MealType:  entity.MealType(data.MealType),
		Calories:  data.Calories,
		LoggedAt:  data.LoggedAt,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromMealLogDomain converts a domain MealLog entity to a GORM MealLogModel.
func fromMealLogDomain(data *entity.MealLog) *model.MealLogModel {
	if data == nil {
		return nil
	}

	return &model.MealLogModel{
		ID:       data.ID,
		UserID:   data.UserID,
		MealID:   data.MealID,
		MealName: data.MealName,
		MealType: string(data.MealType),
		Calories: data.Calories,
		LoggedAt: data.LoggedAt,
	}
}
