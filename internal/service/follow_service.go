package service

import (
	"context"

	"ripple/internal/cache"
	"ripple/internal/events"
	"ripple/internal/models"
	"ripple/internal/observability"
	"ripple/internal/repository"
)

type FollowService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
	events     *events.Publisher
}

func NewFollowService(followRepo repository.FollowRepository, userRepo repository.UserRepository, publisher *events.Publisher) *FollowService {
	return &FollowService{
		followRepo: followRepo,
		userRepo:   userRepo,
		events:     publisher,
	}
}

// ToggleFollow flips the directed edge follower -> following: it inserts the
// edge if absent, otherwise removes it. Self-follows are rejected before
// touching the database. Returns whether the caller follows the target after
// the toggle.
func (s *FollowService) ToggleFollow(ctx context.Context, followerID, followingID uint) (bool, error) {
	if followerID == followingID {
		return false, models.NewValidationError("You cannot follow yourself")
	}

	if _, err := s.userRepo.GetByID(ctx, followingID); err != nil {
		return false, err
	}

	inserted, err := s.followRepo.Follow(ctx, followerID, followingID)
	if err != nil {
		return false, err
	}

	following := inserted
	if inserted {
		observability.FollowToggles.WithLabelValues("following").Inc()
		s.events.Publish(ctx, events.UserFollowed, map[string]any{
			"follower_id":  followerID,
			"following_id": followingID,
		})
	} else {
		if _, err := s.followRepo.Unfollow(ctx, followerID, followingID); err != nil {
			return false, err
		}
		observability.FollowToggles.WithLabelValues("unfollowed").Inc()
		s.events.Publish(ctx, events.UserUnfollowed, map[string]any{
			"follower_id":  followerID,
			"following_id": followingID,
		})
	}

	// Cached profiles carry follower counts derived from the edge set.
	cache.InvalidateProfile(ctx, followerID)
	cache.InvalidateProfile(ctx, followingID)

	return following, nil
}

func (s *FollowService) IsFollowing(ctx context.Context, followerID, followingID uint) (bool, error) {
	return s.followRepo.IsFollowing(ctx, followerID, followingID)
}

// Followers returns the public profiles of everyone following the user.
func (s *FollowService) Followers(ctx context.Context, userID uint) ([]models.Profile, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	users, err := s.followRepo.Followers(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toProfiles(users), nil
}

// Following returns the public profiles of everyone the user follows.
func (s *FollowService) Following(ctx context.Context, userID uint) ([]models.Profile, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	users, err := s.followRepo.Following(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toProfiles(users), nil
}

func toProfiles(users []models.User) []models.Profile {
	profiles := make([]models.Profile, 0, len(users))
	for i := range users {
		profiles = append(profiles, users[i].PublicProfile())
	}
	return profiles
}
