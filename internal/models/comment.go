package models

import "time"

// Comment belongs to exactly one post and carries the same author snapshot
// fields as Post.
type Comment struct {
	ID                uint   `gorm:"primaryKey" json:"id"`
	PostID            uint   `gorm:"not null;index" json:"post_id"`
	UserID            uint   `gorm:"not null;index" json:"user_id"`
	User              *User  `gorm:"foreignKey:UserID" json:"-"`
	AuthorDisplayName string `gorm:"size:50" json:"author_display_name"`
	AuthorUsername    string `gorm:"size:30" json:"author_username"`
	Content           string `gorm:"type:text;not null" json:"content"`
	CreatedAt         time.Time `json:"created_at"`
}
