package service

import (
	"context"
	"strings"
	"testing"

	"ripple/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestUpdateProfilePartialEdit(t *testing.T) {
	userRepo := noopUserRepo()
	stored := &models.User{ID: 1, Username: "alice", Bio: "old bio"}
	userRepo.getByIDFn = func(_ context.Context, _ uint) (*models.User, error) {
		u := *stored
		return &u, nil
	}
	userRepo.updateFn = func(_ context.Context, user *models.User) error {
		stored = user
		return nil
	}

	svc := NewUserService(userRepo)
	got, err := svc.UpdateProfile(context.Background(), UpdateProfileInput{
		UserID:      1,
		DisplayName: strPtr("  Alice A.  "),
	})
	require.NoError(t, err)

	assert.Equal(t, "Alice A.", got.DisplayName, "display name is stored trimmed")
	assert.Equal(t, "old bio", got.Bio, "absent fields stay untouched")
	assert.Equal(t, "alice", got.Username)
}

func TestUpdateProfileValidations(t *testing.T) {
	svc := NewUserService(noopUserRepo())
	ctx := context.Background()

	_, err := svc.UpdateProfile(ctx, UpdateProfileInput{
		UserID:      1,
		DisplayName: strPtr(strings.Repeat("d", maxDisplayNameLen+1)),
	})
	assertValidationError(t, err)

	_, err = svc.UpdateProfile(ctx, UpdateProfileInput{
		UserID: 1,
		Bio:    strPtr(strings.Repeat("b", maxBioLen+1)),
	})
	assertValidationError(t, err)

	_, err = svc.UpdateProfile(ctx, UpdateProfileInput{
		UserID:   1,
		Username: strPtr("has spaces"),
	})
	assertValidationError(t, err)
}

func TestUpdateProfileLowercasesUsername(t *testing.T) {
	userRepo := noopUserRepo()
	stored := &models.User{ID: 1, Username: "alice"}
	userRepo.getByIDFn = func(_ context.Context, _ uint) (*models.User, error) {
		u := *stored
		return &u, nil
	}
	var checkedUsername string
	userRepo.usernameTakenFn = func(_ context.Context, username string, _ uint) (bool, error) {
		checkedUsername = username
		return false, nil
	}
	userRepo.updateFn = func(_ context.Context, user *models.User) error {
		stored = user
		return nil
	}

	svc := NewUserService(userRepo)
	got, err := svc.UpdateProfile(context.Background(), UpdateProfileInput{
		UserID:   1,
		Username: strPtr("  Alice_99  "),
	})
	require.NoError(t, err)

	assert.Equal(t, "alice_99", got.Username, "usernames are stored lowercase")
	assert.Equal(t, "alice_99", checkedUsername, "uniqueness is checked against the lowercase form")
}

func TestUpdateProfileUsernameConflict(t *testing.T) {
	userRepo := noopUserRepo()
	userRepo.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
		return &models.User{ID: id, Username: "alice"}, nil
	}
	userRepo.usernameTakenFn = func(_ context.Context, username string, excludeUserID uint) (bool, error) {
		return username == "bob", nil
	}

	svc := NewUserService(userRepo)
	_, err := svc.UpdateProfile(context.Background(), UpdateProfileInput{
		UserID:   1,
		Username: strPtr("bob"),
	})
	assertAppError(t, err, "CONFLICT")

	// Keeping the current username is never a conflict.
	_, err = svc.UpdateProfile(context.Background(), UpdateProfileInput{
		UserID:   1,
		Username: strPtr("alice"),
	})
	require.NoError(t, err)
}

func TestGetUserMissing(t *testing.T) {
	userRepo := noopUserRepo()
	userRepo.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
		return nil, models.NewNotFoundError("User", id)
	}

	svc := NewUserService(userRepo)
	_, err := svc.GetUser(context.Background(), 404)
	assertNotFoundError(t, err)
}
