package usecase

import (
	"context"
	"time"

	"larder/internal/domain/entity"

	"github.com/google/uuid"
)

// UserUsecase defines the interface for user-management operations.
type UserUsecase interface {
	ListUsers(ctx context.Context) ([]*entity.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error)
	CreateUser(ctx context.Context, input *CreateUserInput) (*entity.User, error)
	UpdateUser(ctx context.Context, id uuid.UUID, input *UpdateUserInput) (*entity.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

// CreateUserInput defines the data required to register a user.
type CreateUserInput struct {
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=8"`
	FirstName  string `json:"first_name,omitempty" validate:"omitempty,max=100"`
	MiddleName string `json:"middle_name,omitempty" validate:"omitempty,max=100"`
	LastName   string `json:"last_name,omitempty" validate:"omitempty,max=100"`

	Profile *UserProfileInput `json:"profile,omitempty"`
}

// UpdateUserInput defines the partial-update payload for a user. Nil fields
// are left unchanged.
type UpdateUserInput struct {
	Email      *string `json:"email,omitempty" validate:"omitempty,email"`
	Password   *string `json:"password,omitempty" validate:"omitempty,min=8"`
	FirstName  *string `json:"first_name,omitempty" validate:"omitempty,max=100"`
	MiddleName *string `json:"middle_name,omitempty" validate:"omitempty,max=100"`
	LastName   *string `json:"last_name,omitempty" validate:"omitempty,max=100"`

	Profile *UserProfileInput `json:"profile,omitempty"`
}

// UserProfileInput defines the profile sub-payload used by create and update.
type UserProfileInput struct {
	DateOfBirth           *time.Time `json:"date_of_birth,omitempty"`
	Gender                string     `json:"gender,omitempty" validate:"omitempty,max=50"`
	ActivityLevel         string     `json:"activity_level,omitempty" validate:"omitempty,max=50"`
	HeightCM              *float64   `json:"height_cm,omitempty" validate:"omitempty,min=0"`
	CurrentWeight         *float64   `json:"current_weight,omitempty" validate:"omitempty,min=0"`
	TargetWeight          *float64   `json:"target_weight,omitempty" validate:"omitempty,min=0"`
	HealthGoals           []string   `json:"health_goals,omitempty"`
	WaterReminderEnabled  bool       `json:"water_reminder_enabled"`
	WaterReminderInterval *int       `json:"water_reminder_interval,omitempty" validate:"omitempty,min=1"`
}
