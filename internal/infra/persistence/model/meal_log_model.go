package model

import (
	"time"

	"github.com/google/uuid"
)

// MealLogModel mirrors the 'meal_tracking' table.
type MealLogModel struct {
	ID       uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	UserID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	MealID   *uuid.UUID `gorm:"type:uuid"`
	MealName string     `gorm:"type:varchar(255);not null"`
	MealType string     `gorm:"type:varchar(20);not null"`
	Calories *float64
	LoggedAt time.Time `gorm:"not null;default:now();index"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (MealLogModel) TableName() string {
	return "meal_tracking"
}
