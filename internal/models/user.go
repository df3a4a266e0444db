// Package models contains data structures for the application's domain models.
package models

import "time"

// User represents an account in the Ripple application. The ID doubles as the
// principal id referenced by posts, likes and follow edges.
//
// DisplayName and Bio start empty at signup and are filled in on the first
// profile edit.
type User struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Email       string    `gorm:"unique;not null" json:"email"`
	Password    string    `gorm:"not null" json:"-"`
	Username    string    `gorm:"uniqueIndex;size:30;not null" json:"username"`
	DisplayName string    `gorm:"size:50" json:"display_name"`
	Bio         string    `gorm:"type:text" json:"bio"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// FollowersCount and FollowingCount are not persisted; derived from the
	// follow edge set at query time.
	FollowersCount int64 `gorm:"->" json:"followers_count"`
	FollowingCount int64 `gorm:"->" json:"following_count"`
}

// Profile is the public view of a user, safe to embed in follower listings.
type Profile struct {
	ID          uint      `json:"id"`
	Username    string    `json:"username"`
	DisplayName string    `json:"display_name"`
	Bio         string    `json:"bio"`
	CreatedAt   time.Time `json:"created_at"`
}

// PublicUser is the profile endpoint's view of a user: the public profile
// fields plus follow-graph counts. Email and password never leave the
// /users/me surface.
type PublicUser struct {
	Profile
	FollowersCount int64 `json:"followers_count"`
	FollowingCount int64 `json:"following_count"`
}

// AuthorName returns the name to snapshot onto posts and comments: the
// display name when set, otherwise the username.
func (u *User) AuthorName() string {
	if u.DisplayName != "" {
		return u.DisplayName
	}
	return u.Username
}

// PublicProfile strips credential fields from a user.
func (u *User) PublicProfile() Profile {
	return Profile{
		ID:          u.ID,
		Username:    u.Username,
		DisplayName: u.DisplayName,
		Bio:         u.Bio,
		CreatedAt:   u.CreatedAt,
	}
}

// PublicView is the profile endpoint's response shape.
func (u *User) PublicView() PublicUser {
	return PublicUser{
		Profile:        u.PublicProfile(),
		FollowersCount: u.FollowersCount,
		FollowingCount: u.FollowingCount,
	}
}
