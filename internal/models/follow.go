package models

import "time"

// Follow is a directed edge in the follow graph (follower -> following).
// The check constraint rejects self-follows at the data layer; the unique
// index makes the edge set a proper set.
type Follow struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	FollowerID  uint      `gorm:"not null;uniqueIndex:idx_follows_edge;check:chk_follows_no_self,follower_id <> following_id" json:"follower_id"`
	FollowingID uint      `gorm:"not null;uniqueIndex:idx_follows_edge;index" json:"following_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName specifies the table name for GORM
func (Follow) TableName() string {
	return "follows"
}
