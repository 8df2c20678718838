package server

import (
	"scribe/internal/cache"
	"scribe/internal/middleware"
	"scribe/internal/models"
	"scribe/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreatePost handles POST /posts.
func (s *Server) CreatePost(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var req struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusPreconditionFailed,
			models.NewValidationError("request format is invalid"))
	}

	_, err := s.postService.CreatePost(c.Context(), service.CreatePostInput{
		UserID:  user.ID,
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		return s.respondServiceError(c, err, fiber.StatusPreconditionFailed)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "post created successfully",
	})
}

// GetPosts handles GET /posts. Public; newest first.
func (s *Server) GetPosts(c *fiber.Ctx) error {
	posts, err := s.postService.ListPosts(c.Context())
	if err != nil {
		return s.respondServiceError(c, err, fiber.StatusBadRequest)
	}

	data := make([]postSummary, 0, len(posts))
	for _, p := range posts {
		data = append(data, newPostSummary(p))
	}

	return c.JSON(fiber.Map{"data": data})
}

// GetPost handles GET /posts/:id. Public; served from the cache when warm.
func (s *Server) GetPost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id", fiber.StatusBadRequest)
	if err != nil {
		return nil
	}

	var cached postDetail
	if cache.LookupPost(c.Context(), id, &cached) {
		return c.JSON(fiber.Map{"data": cached})
	}

	post, err := s.postService.GetPost(c.Context(), id)
	if err != nil {
		return s.respondServiceError(c, err, fiber.StatusBadRequest)
	}

	detail := newPostDetail(post)
	cache.CachePost(c.Context(), id, detail)

	return c.JSON(fiber.Map{"data": detail})
}

// UpdatePost handles PUT /posts/:id. Only the content is mutated; the title
// stays as created.
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	id, err := s.parseID(c, "id", fiber.StatusBadRequest)
	if err != nil {
		return nil
	}

	var req struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusPreconditionFailed,
			models.NewValidationError("request format is invalid"))
	}

	_, err = s.postService.UpdatePost(c.Context(), user, id, req.Title, req.Content)
	if err != nil {
		return s.respondServiceError(c, err, fiber.StatusPreconditionFailed)
	}

	cache.InvalidatePost(c.Context(), id)

	return c.JSON(fiber.Map{
		"message": "post updated successfully",
	})
}

// DeletePost handles DELETE /posts/:id.
func (s *Server) DeletePost(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	id, err := s.parseID(c, "id", fiber.StatusBadRequest)
	if err != nil {
		return nil
	}

	if err := s.postService.DeletePost(c.Context(), user, id); err != nil {
		return s.respondServiceError(c, err, fiber.StatusPreconditionFailed)
	}

	cache.InvalidatePost(c.Context(), id)

	return c.JSON(fiber.Map{
		"message": "post deleted successfully",
	})
}

// LikePost handles PUT /posts/:id/like.
func (s *Server) LikePost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id", fiber.StatusBadRequest)
	if err != nil {
		return nil
	}

	likes, err := s.postService.LikePost(c.Context(), id)
	if err != nil {
		return s.respondServiceError(c, err, fiber.StatusBadRequest)
	}

	cache.InvalidatePost(c.Context(), id)

	return c.JSON(fiber.Map{"likes": likes})
}
