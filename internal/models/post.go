// Package models contains data structures for the application's domain models.
package models

import "time"

// MaxContentLen is the maximum rune length of post and comment content.
const MaxContentLen = 280

// Post represents an entry on the global timeline.
//
// AuthorDisplayName and AuthorUsername are snapshots of the author's profile
// taken at creation time; they are never backfilled when the profile changes.
type Post struct {
	ID                uint   `gorm:"primaryKey" json:"id"`
	UserID            uint   `gorm:"not null;index" json:"user_id"`
	User              *User  `gorm:"foreignKey:UserID" json:"-"`
	AuthorDisplayName string `gorm:"size:50" json:"author_display_name"`
	AuthorUsername    string `gorm:"size:30" json:"author_username"`
	Content           string `gorm:"type:text;not null" json:"content"`
	// LikesCount is not persisted; computed from the like ledger at query time
	LikesCount int64 `gorm:"->" json:"likes_count"`
	// CommentsCount is not persisted; computed at query time
	CommentsCount int64 `gorm:"->" json:"comments_count"`
	// Liked indicates whether the current requesting user liked this post (computed)
	Liked     bool      `gorm:"->" json:"liked"`
	CreatedAt time.Time `json:"created_at"`
}
