package models

import "time"

// Like is a membership record in the like ledger. Its existence is the single
// source of truth for whether a user likes a post; like counts are the
// cardinality of this set, never a stored aggregate.
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_likes_post_user" json:"post_id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_likes_post_user" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
