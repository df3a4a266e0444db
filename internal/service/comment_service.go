package service

import (
	"context"

	"ripple/internal/events"
	"ripple/internal/models"
	"ripple/internal/observability"
	"ripple/internal/repository"
	"ripple/internal/validation"
)

type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
	userRepo    repository.UserRepository
	events      *events.Publisher
}

type CreateCommentInput struct {
	UserID  uint
	PostID  uint
	Content string
}

func NewCommentService(
	commentRepo repository.CommentRepository,
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
	publisher *events.Publisher,
) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		userRepo:    userRepo,
		events:      publisher,
	}
}

// CreateComment validates the content, checks the target post exists and
// stores the comment with the author's profile snapshot.
func (s *CommentService) CreateComment(ctx context.Context, in CreateCommentInput) (*models.Comment, error) {
	content, err := validation.ValidateContent(in.Content, models.MaxContentLen)
	if err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	if _, err := s.postRepo.GetByID(ctx, in.PostID, 0); err != nil {
		return nil, err
	}

	author, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		PostID:            in.PostID,
		UserID:            author.ID,
		AuthorDisplayName: author.AuthorName(),
		AuthorUsername:    author.Username,
		Content:           content,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	observability.CommentsCreated.Inc()
	s.events.Publish(ctx, events.CommentCreated, map[string]any{
		"comment_id": comment.ID,
		"post_id":    in.PostID,
		"user_id":    author.ID,
	})

	return comment, nil
}

// ListComments returns a post's comments oldest-first, 404ing when the post
// itself is missing rather than returning an empty list.
func (s *CommentService) ListComments(ctx context.Context, postID uint) ([]*models.Comment, error) {
	if _, err := s.postRepo.GetByID(ctx, postID, 0); err != nil {
		return nil, err
	}
	return s.commentRepo.ListByPost(ctx, postID)
}
