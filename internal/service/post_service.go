// Package service contains the business rules sitting between the HTTP
// handlers and the repositories: validation, ownership checks, author
// snapshots and event publication.
package service

import (
	"context"

	"ripple/internal/events"
	"ripple/internal/models"
	"ripple/internal/observability"
	"ripple/internal/repository"
	"ripple/internal/validation"
)

type PostService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
	events   *events.Publisher
}

type CreatePostInput struct {
	UserID  uint
	Content string
}

type ListPostsInput struct {
	Limit         int
	Offset        int
	CurrentUserID uint
}

func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository, publisher *events.Publisher) *PostService {
	return &PostService{
		postRepo: postRepo,
		userRepo: userRepo,
		events:   publisher,
	}
}

// CreatePost validates the content, snapshots the author's current profile
// onto the post and stores it. The snapshot fields are frozen at this point;
// later profile edits do not rewrite them.
func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	content, err := validation.ValidateContent(in.Content, models.MaxContentLen)
	if err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	author, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	post := &models.Post{
		UserID:            author.ID,
		AuthorDisplayName: author.AuthorName(),
		AuthorUsername:    author.Username,
		Content:           content,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	observability.PostsCreated.Inc()
	s.events.Publish(ctx, events.PostCreated, map[string]any{
		"post_id": post.ID,
		"user_id": author.ID,
	})

	return s.postRepo.GetByID(ctx, post.ID, in.UserID)
}

func (s *PostService) ListPosts(ctx context.Context, in ListPostsInput) ([]*models.Post, error) {
	return s.postRepo.List(ctx, in.Limit, in.Offset, in.CurrentUserID)
}

func (s *PostService) GetPost(ctx context.Context, id uint, currentUserID uint) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, id, currentUserID)
}

func (s *PostService) GetUserPosts(ctx context.Context, userID uint, limit, offset int, currentUserID uint) ([]*models.Post, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.postRepo.ListByAuthor(ctx, userID, limit, offset, currentUserID)
}

// DeletePost removes a post after checking that the caller authored it. The
// repository deletes the post's comments and likes in the same transaction.
func (s *PostService) DeletePost(ctx context.Context, userID, postID uint) error {
	post, err := s.postRepo.GetByID(ctx, postID, userID)
	if err != nil {
		return err
	}
	if post.UserID != userID {
		return models.NewForbiddenError("You can only delete your own posts")
	}

	if err := s.postRepo.Delete(ctx, postID); err != nil {
		return err
	}

	s.events.Publish(ctx, events.PostDeleted, map[string]any{
		"post_id": postID,
		"user_id": userID,
	})
	return nil
}

// ToggleLike flips the caller's like on a post: it inserts the ledger record
// if absent, otherwise removes it. Both arms are single atomic statements in
// the repository, so concurrent toggles settle on a valid state instead of
// double-inserting. Returns the post with its refreshed counts.
func (s *PostService) ToggleLike(ctx context.Context, userID, postID uint) (*models.Post, error) {
	if _, err := s.postRepo.GetByID(ctx, postID, 0); err != nil {
		return nil, err
	}

	inserted, err := s.postRepo.Like(ctx, userID, postID)
	if err != nil {
		return nil, err
	}

	if inserted {
		observability.LikeToggles.WithLabelValues("liked").Inc()
		s.events.Publish(ctx, events.PostLiked, map[string]any{
			"post_id": postID,
			"user_id": userID,
		})
	} else {
		if _, err := s.postRepo.Unlike(ctx, userID, postID); err != nil {
			return nil, err
		}
		observability.LikeToggles.WithLabelValues("unliked").Inc()
		s.events.Publish(ctx, events.PostUnliked, map[string]any{
			"post_id": postID,
			"user_id": userID,
		})
	}

	return s.postRepo.GetByID(ctx, postID, userID)
}
