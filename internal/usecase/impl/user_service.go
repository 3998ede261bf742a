package impl

import (
	"context"
	"log/slog"

	"larder/internal/domain/entity"
	domainerrors "larder/internal/domain/errors"
	"larder/internal/domain/repository"
	"larder/internal/domain/service"
	"larder/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager repository.TransactionManager
	hasher    service.PasswordHasher
	logger    *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(
	txManager repository.TransactionManager,
	hasher service.PasswordHasher,
	logger *slog.Logger,
) usecase.UserUsecase {
	return &userService{
		txManager: txManager,
		hasher:    hasher,
		logger:    logger,
	}
}

// ListUsers retrieves every registered user with profile data.
func (srv *userService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	var users []*entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.UserRepo().List(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list users")
		}
		users = found

		return nil
	})
	if err != nil {
		return nil, asStoreError(err, "failed to list users")
	}

	return users, nil
}

// GetUser retrieves a single user by ID.
func (srv *userService) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var user *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.UserRepo().FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to find user")
		}
		user = found

		return nil
	})
	if err != nil {
		return nil, asStoreError(err, "failed to get user")
	}

	return user, nil
}

// CreateUser registers a new user with a hashed credential.
func (srv *userService) CreateUser(ctx context.Context, input *usecase.CreateUserInput) (*entity.User, error) {
	srv.logger.Info("Creating user", "email", input.Email)

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	user := &entity.User{
		Email:        input.Email,
		PasswordHash: hash,
		FirstName:    input.FirstName,
		MiddleName:   input.MiddleName,
		LastName:     input.LastName,
		Profile:      profileFromInput(uuid.Nil, input.Profile),
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.UserRepo().Create(ctx, user); err != nil {
			return errors.Wrap(err, "failed to create user")
		}

		return nil
	})
	if err != nil {
		return nil, asStoreError(err, "failed to create user")
	}

	return user, nil
}

// UpdateUser applies a partial update to a user. Profile data, when present,
// replaces the stored profile wholesale.
func (srv *userService) UpdateUser(ctx context.Context, id uuid.UUID, input *usecase.UpdateUserInput) (*entity.User, error) {
	srv.logger.Info("Updating user", "userID", id)

	var user *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		found, err := userRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to find user")
		}

		if input.Email != nil {
			found.Email = *input.Email
		}
		if input.Password != nil {
			hash, err := srv.hasher.Hash(*input.Password)
			if err != nil {
				return domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
			}
			found.PasswordHash = hash
		}
		if input.FirstName != nil {
			found.FirstName = *input.FirstName
		}
		if input.MiddleName != nil {
			found.MiddleName = *input.MiddleName
		}
		if input.LastName != nil {
			found.LastName = *input.LastName
		}
		if input.Profile != nil {
			found.Profile = profileFromInput(found.ID, input.Profile)
		}

		if err := userRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update user")
		}
		user = found

		return nil
	})
	if err != nil {
		return nil, asStoreError(err, "failed to update user")
	}

	return user, nil
}

// DeleteUser removes a user account.
func (srv *userService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	srv.logger.Info("Deleting user", "userID", id)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.UserRepo().Delete(ctx, id); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to delete user")
		}

		return nil
	})
	if err != nil {
		return asStoreError(err, "failed to delete user")
	}

	return nil
}

// profileFromInput builds a profile entity from the request sub-payload.
func profileFromInput(userID uuid.UUID, input *usecase.UserProfileInput) *entity.UserProfile {
	if input == nil {
		return nil
	}

	return &entity.UserProfile{
		UserID:                userID,
		DateOfBirth:           input.DateOfBirth,
		Gender:                input.Gender,
		ActivityLevel:         input.ActivityLevel,
		HeightCM:              input.HeightCM,
		CurrentWeight:         input.CurrentWeight,
		TargetWeight:          input.TargetWeight,
		HealthGoals:           input.HealthGoals,
		WaterReminderEnabled:  input.WaterReminderEnabled,
		WaterReminderInterval: input.WaterReminderInterval,
	}
}
