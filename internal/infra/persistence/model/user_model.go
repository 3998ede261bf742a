package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. IDs normally arrive from the external
// auth provider and are inserted verbatim; the column default only covers
// locally created accounts.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	FirstName    string    `gorm:"type:varchar(100)"`
	MiddleName   string    `gorm:"type:varchar(100)"`
	LastName     string    `gorm:"type:varchar(100)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Profile *UserProfileModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// UserProfileModel mirrors the 'user_profiles' table. UserID references users.id (UUID).
type UserProfileModel struct {
	UserID                uuid.UUID  `gorm:"primaryKey;type:uuid"`
	DateOfBirth           *time.Time `gorm:"type:date"`
	Gender                string     `gorm:"type:varchar(50)"`
	ActivityLevel         string     `gorm:"type:varchar(50)"`
	HeightCM              *float64   `gorm:"column:height_cm"`
	CurrentWeight         *float64
	TargetWeight          *float64
	HealthGoals           []string `gorm:"serializer:json;type:jsonb"`
	WaterReminderEnabled  bool     `gorm:"not null;default:false"`
	WaterReminderInterval *int
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserProfileModel) TableName() string {
	return "user_profiles"
}
