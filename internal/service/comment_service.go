package service

import (
	"context"

	"scribe/internal/models"
	"scribe/internal/repository"
)

// CommentService implements the comment CRUD state machine. The target postId
// is recorded as given and never checked against post existence.
type CommentService struct {
	comments repository.CommentRepository
}

// NewCommentService creates a new CommentService.
func NewCommentService(comments repository.CommentRepository) *CommentService {
	return &CommentService{comments: comments}
}

// CreateComment persists a comment against the referenced post.
func (s *CommentService) CreateComment(ctx context.Context, user *models.User, postID uint, text string) (*models.Comment, error) {
	if text == "" {
		return nil, models.NewValidationError("please enter comment text")
	}

	comment := &models.Comment{
		PostID:  postID,
		UserID:  user.ID,
		Comment: text,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, models.NewUnexpectedError(err)
	}

	created, err := s.comments.GetByID(ctx, comment.ID)
	if err != nil {
		return nil, models.NewUnexpectedError(err)
	}
	return created, nil
}

// ListComments returns a post's comments, newest first. An unknown postId
// yields an empty list, not an error.
func (s *CommentService) ListComments(ctx context.Context, postID uint) ([]*models.Comment, error) {
	comments, err := s.comments.ListByPost(ctx, postID)
	if err != nil {
		return nil, models.NewUnexpectedError(err)
	}
	return comments, nil
}

// UpdateComment mutates a comment's text.
func (s *CommentService) UpdateComment(ctx context.Context, user *models.User, commentID uint, text string) (*models.Comment, error) {
	if text == "" {
		return nil, models.NewValidationError("please enter comment text")
	}

	comment, err := s.comments.GetByID(ctx, commentID)
	if err != nil {
		return nil, models.NewUnexpectedError(err)
	}
	if comment == nil {
		return nil, models.NewNotFoundError("comment not found")
	}
	if !CanMutate(comment.UserID, user) {
		return nil, models.NewNotOwnerError("only the author can edit this comment")
	}

	comment.Comment = text
	if err := s.comments.Update(ctx, comment); err != nil {
		return nil, models.NewUnexpectedError(err)
	}
	return comment, nil
}

// DeleteComment removes a comment owned by the caller.
func (s *CommentService) DeleteComment(ctx context.Context, user *models.User, commentID uint) error {
	comment, err := s.comments.GetByID(ctx, commentID)
	if err != nil {
		return models.NewUnexpectedError(err)
	}
	if comment == nil {
		return models.NewNotFoundError("comment not found")
	}
	if !CanMutate(comment.UserID, user) {
		return models.NewNotOwnerError("only the author can delete this comment")
	}

	if err := s.comments.Delete(ctx, commentID); err != nil {
		return models.NewUnexpectedError(err)
	}
	return nil
}
