// Package entity defines the domain entities for the users feature.
package entity

import "time"

// User represents a stored user record.
type User struct {
	// ID is assigned by the datastore on creation and never changes.
	ID uint `gorm:"primaryKey"`

	Name string `gorm:"size:255;not null"`

	// Email must be unique across all users.
	// The unique index is the authoritative guard; the usecase pre-check only avoids a wasted write.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Age is always greater than 0.
	Age int `gorm:"not null"`

	// Dob is the date of birth.
	Dob time.Time `gorm:"not null"`

	// Password holds the bcrypt hash, never the plaintext.
	Password string `gorm:"size:255;not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// UserUpdate carries the fields replaced by a full update.
type UserUpdate struct {
	Name  string
	Email string
	Age   int
	Dob   time.Time
}
