// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// User represents a registered account. Accounts are never deleted;
// the only mutable field after registration is Bio.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"unique;not null" json:"username"`
	Password  string    `gorm:"not null" json:"-"`
	Bio       string    `json:"bio"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
