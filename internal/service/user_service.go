package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"ripple/internal/cache"
	"ripple/internal/models"
	"ripple/internal/repository"
	"ripple/internal/validation"
)

const (
	maxDisplayNameLen = 50
	maxBioLen         = 500
)

type UserService struct {
	userRepo repository.UserRepository
}

type UpdateProfileInput struct {
	UserID      uint
	Username    *string
	DisplayName *string
	Bio         *string
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// GetMe returns the caller's own account, always read fresh from the
// database so a just-saved profile edit is visible immediately.
func (s *UserService) GetMe(ctx context.Context, userID uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// GetUser returns a user's public-facing record with follow-graph counts.
// Only the public view is cached and returned, so email and credentials
// never reach the wire or redis for other users' profiles.
func (s *UserService) GetUser(ctx context.Context, id uint) (*models.PublicUser, error) {
	var profile models.PublicUser
	err := cache.Aside(ctx, cache.ProfileKey(id), &profile, cache.ProfileTTL, func() error {
		fetched, fetchErr := s.userRepo.GetByID(ctx, id)
		if fetchErr != nil {
			return fetchErr
		}
		profile = fetched.PublicView()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdateProfile applies a partial profile edit. Only fields present in the
// input change; a nil field leaves the stored value alone. Posts and
// comments written before the edit keep their author snapshots.
func (s *UserService) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	if in.Username != nil {
		// Stored lowercase; Alice and alice resolve to the same handle.
		username := strings.ToLower(strings.TrimSpace(*in.Username))
		if username != user.Username {
			if err := validation.ValidateUsername(username); err != nil {
				return nil, models.NewValidationError(err.Error())
			}
			taken, err := s.userRepo.UsernameTaken(ctx, username, user.ID)
			if err != nil {
				return nil, err
			}
			if taken {
				return nil, models.NewConflictError("Username is already taken")
			}
			user.Username = username
		}
	}

	if in.DisplayName != nil {
		displayName := strings.TrimSpace(*in.DisplayName)
		if utf8.RuneCountInString(displayName) > maxDisplayNameLen {
			return nil, models.NewValidationError("Display name must not exceed 50 characters")
		}
		user.DisplayName = displayName
	}

	if in.Bio != nil {
		bio := strings.TrimSpace(*in.Bio)
		if utf8.RuneCountInString(bio) > maxBioLen {
			return nil, models.NewValidationError("Bio must not exceed 500 characters")
		}
		user.Bio = bio
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return s.userRepo.GetByID(ctx, user.ID)
}
