package models

import (
	"time"
)

// Post is the primary content unit. Author holds the username of the
// account that created the post; edit/delete authorization compares
// against it at the handler layer.
type Post struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Author  string `gorm:"not null;index" json:"author"`
	Title   string `gorm:"not null" json:"title"`
	Content string `gorm:"not null" json:"content"`
	// LikesCount is not persisted; computed at query time
	LikesCount int `gorm:"-:migration;->" json:"likes_count"`
	// CommentsCount is not persisted; computed at query time
	CommentsCount int `gorm:"-:migration;->" json:"comments_count"`
	// Liked indicates whether the current requesting user liked this post (computed)
	Liked     bool      `gorm:"-:migration;->" json:"liked"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
