// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// User is the account record behind every pantry row and meal log. The ID is
// externally supplied (it originates from the hosted auth provider), so rows
// referencing an unknown ID get a shadow user created first.
type User struct {
	ID           uuid.UUID    // Externally supplied identifier; primary key for all user-owned data.
	Email        string       // Unique login identifier.
	PasswordHash string       // Bcrypt hash, or an opaque placeholder for shadow users.
	FirstName    string       // Optional given name.
	MiddleName   string       // Optional middle name.
	LastName     string       // Optional family name.
	Profile      *UserProfile // Nutrition profile; nil when the user never filled it in.
	CreatedAt    time.Time    // Timestamp of when this account was created.
	UpdatedAt    time.Time    // Timestamp of the last modification.
}

// UserProfile holds the nutrition-planning attributes of a user.
type UserProfile struct {
	UserID                uuid.UUID  // Foreign key to the owning User.
	DateOfBirth           *time.Time // Optional date of birth.
	Gender                string     // Free-form gender label.
	ActivityLevel         string     // e.g. "sedentary", "moderate", "active".
	HeightCM              *float64   // Height in centimeters.
	CurrentWeight         *float64   // Current weight in kilograms.
	TargetWeight          *float64   // Target weight in kilograms.
	HealthGoals           []string   // Free-form goal labels.
	WaterReminderEnabled  bool       // Whether hydration reminders are on.
	WaterReminderInterval *int       // Reminder interval in minutes.
	UpdatedAt             time.Time  // Timestamp of the last modification.
}

// NewShadowUser synthesizes a minimal placeholder account for an externally
// managed identifier so that pantry writes can satisfy their foreign key.
// The email is deterministic per ID; the credential is a random opaque value
// that can never be used to log in.
func NewShadowUser(id uuid.UUID) *User {
	return &User{
		ID:           id,
		Email:        fmt.Sprintf("user_%s@local.invalid", id),
		PasswordHash: "external-" + uuid.NewString(),
	}
}
