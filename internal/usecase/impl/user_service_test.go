package impl

import (
	"context"
	"testing"

	"larder/internal/domain/entity"
	domainerrors "larder/internal/domain/errors"
	"larder/internal/domain/repository"
	mockRepo "larder/internal/mocks/repository"
	mockService "larder/internal/mocks/service"
	"larder/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	t         *testing.T
	service   usecase.UserUsecase
	txManager *mockRepo.MockTransactionManager
	hasher    *mockService.MockPasswordHasher
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	hasher := mockService.NewMockPasswordHasher(t)
	service := NewUserService(txManager, hasher, newDiscardLogger())

	return userServiceFixtures{
		t:         t,
		service:   service,
		txManager: txManager,
		hasher:    hasher,
	}
}

func (f userServiceFixtures) onExecute(ctx context.Context, result error, setup func(factory *mockRepo.MockRepositoryFactory)) {
	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			factory := mockRepo.NewMockRepositoryFactory(f.t)
			setup(factory)
			_ = fn(factory)
		}).
		Return(result)
}

func TestUserService_CreateUser_HashesPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.CreateUserInput{
		Email:     "alex@example.com",
		Password:  "correct horse battery",
		FirstName: "Alex",
	}

	fx.hasher.EXPECT().Hash("correct horse battery").Return("$2a$10$hashed", nil)

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(userRepo)

		userRepo.EXPECT().
			Create(ctx, mock.MatchedBy(func(u *entity.User) bool {
				return u.Email == "alex@example.com" && u.PasswordHash == "$2a$10$hashed"
			})).
			Return(nil)
	})

	user, err := fx.service.CreateUser(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "$2a$10$hashed", user.PasswordHash)
	assert.Equal(t, "Alex", user.FirstName)
}

func TestUserService_CreateUser_HashFailure(t *testing.T) {
	fx := createTestUserService(t)

	fx.hasher.EXPECT().Hash(mock.Anything).Return("", errors.New("bcrypt: cost out of range"))

	_, err := fx.service.CreateUser(context.Background(), &usecase.CreateUserInput{
		Email:    "alex@example.com",
		Password: "pw",
	})

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "PASSWORD_HASH_FAILED", appErr.ErrorCode())
}

func TestUserService_GetUser_NotFound(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.onExecute(ctx, domainerrors.ErrUserNotFound, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(userRepo)

		userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)
	})

	_, err := fx.service.GetUser(ctx, userID)

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "USER_NOT_FOUND", appErr.ErrorCode())
}

func TestUserService_UpdateUser_PartialUpdate(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	newFirst := "Sam"

	existing := &entity.User{
		ID:        userID,
		Email:     "sam@example.com",
		FirstName: "Samuel",
		LastName:  "Reyes",
	}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(userRepo)

		userRepo.EXPECT().FindByID(ctx, userID).Return(existing, nil)
		userRepo.EXPECT().
			Update(ctx, mock.MatchedBy(func(u *entity.User) bool {
				return u.FirstName == "Sam" && u.LastName == "Reyes" && u.Email == "sam@example.com"
			})).
			Return(nil)
	})

	user, err := fx.service.UpdateUser(ctx, userID, &usecase.UpdateUserInput{FirstName: &newFirst})

	require.NoError(t, err)
	assert.Equal(t, "Sam", user.FirstName)
	assert.Equal(t, "Reyes", user.LastName, "unset fields stay untouched")
}

func TestUserService_UpdateUser_ReplacesProfile(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	height := 178.0

	existing := &entity.User{ID: userID, Email: "sam@example.com"}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(userRepo)

		userRepo.EXPECT().FindByID(ctx, userID).Return(existing, nil)
		userRepo.EXPECT().
			Update(ctx, mock.MatchedBy(func(u *entity.User) bool {
				return u.Profile != nil &&
					u.Profile.UserID == userID &&
					u.Profile.HeightCM != nil && *u.Profile.HeightCM == 178
			})).
			Return(nil)
	})

	user, err := fx.service.UpdateUser(ctx, userID, &usecase.UpdateUserInput{
		Profile: &usecase.UserProfileInput{HeightCM: &height},
	})

	require.NoError(t, err)
	require.NotNil(t, user.Profile)
	assert.Equal(t, 178.0, *user.Profile.HeightCM)
}

func TestUserService_DeleteUser_NotFound(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.onExecute(ctx, domainerrors.ErrUserNotFound, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(userRepo)

		userRepo.EXPECT().Delete(ctx, userID).Return(repository.ErrUserNotFound)
	})

	err := fx.service.DeleteUser(ctx, userID)

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.HTTPCode())
}
