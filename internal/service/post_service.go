package service

import (
	"context"

	"scribe/internal/models"
	"scribe/internal/repository"
)

// PostService implements the post CRUD state machine.
type PostService struct {
	posts repository.PostRepository
}

// CreatePostInput carries the post creation fields.
type CreatePostInput struct {
	UserID  uint
	Title   string
	Content string
}

// NewPostService creates a new PostService.
func NewPostService(posts repository.PostRepository) *PostService {
	return &PostService{posts: posts}
}

// CreatePost validates the required fields and persists the post with the
// caller as owner.
func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if in.Title == "" || in.Content == "" {
		return nil, models.NewValidationError("title and content are required")
	}

	post := &models.Post{
		UserID:  in.UserID,
		Title:   in.Title,
		Content: in.Content,
	}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, models.NewUnexpectedError(err)
	}

	created, err := s.posts.GetByID(ctx, post.ID)
	if err != nil {
		return nil, models.NewUnexpectedError(err)
	}
	return created, nil
}

// ListPosts returns all posts, newest first.
func (s *PostService) ListPosts(ctx context.Context) ([]*models.Post, error) {
	posts, err := s.posts.List(ctx)
	if err != nil {
		return nil, models.NewUnexpectedError(err)
	}
	return posts, nil
}

// GetPost returns a single post by id.
func (s *PostService) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, models.NewUnexpectedError(err)
	}
	if post == nil {
		return nil, models.NewNotFoundError("post not found")
	}
	return post, nil
}

// UpdatePost mutates a post's content. Both title and content are required in
// the request, but the title is immutable after creation and is not changed.
func (s *PostService) UpdatePost(ctx context.Context, user *models.User, postID uint, title, content string) (*models.Post, error) {
	if title == "" || content == "" {
		return nil, models.NewValidationError("title and content are required")
	}

	post, err := s.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if !CanMutate(post.UserID, user) {
		return nil, models.NewNotOwnerError("only the author can edit this post")
	}

	post.Content = content
	if err := s.posts.Update(ctx, post); err != nil {
		return nil, models.NewUnexpectedError(err)
	}
	return post, nil
}

// DeletePost removes a post owned by the caller.
func (s *PostService) DeletePost(ctx context.Context, user *models.User, postID uint) error {
	post, err := s.GetPost(ctx, postID)
	if err != nil {
		return err
	}
	if !CanMutate(post.UserID, user) {
		return models.NewNotOwnerError("only the author can delete this post")
	}

	if err := s.posts.Delete(ctx, postID); err != nil {
		return models.NewUnexpectedError(err)
	}
	return nil
}

// LikePost increments a post's like counter and returns the new count.
func (s *PostService) LikePost(ctx context.Context, postID uint) (int, error) {
	post, err := s.GetPost(ctx, postID)
	if err != nil {
		return 0, err
	}

	post.Likes++
	if err := s.posts.Update(ctx, post); err != nil {
		return 0, models.NewUnexpectedError(err)
	}
	return post.Likes, nil
}
