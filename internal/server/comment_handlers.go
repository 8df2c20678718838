package server

import (
	"scribe/internal/middleware"
	"scribe/internal/models"

	"github.com/gofiber/fiber/v2"
)

// CreateComment handles POST /comments/:postId. A malformed postId param is
// 412 here; missing comment text is 400, per the original API contract.
func (s *Server) CreateComment(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	postID, err := s.parseID(c, "postId", fiber.StatusPreconditionFailed)
	if err != nil {
		return nil
	}

	var req struct {
		Comment string `json:"comment"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("please enter comment text"))
	}

	_, err = s.commentService.CreateComment(c.Context(), user, postID, req.Comment)
	if err != nil {
		return s.respondServiceError(c, err, fiber.StatusBadRequest)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "comment created successfully",
	})
}

// GetComments handles GET /comments/:postId. Public; newest first. An unknown
// postId returns an empty list.
func (s *Server) GetComments(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "postId", fiber.StatusBadRequest)
	if err != nil {
		return nil
	}

	comments, err := s.commentService.ListComments(c.Context(), postID)
	if err != nil {
		return s.respondServiceError(c, err, fiber.StatusBadRequest)
	}

	data := make([]commentView, 0, len(comments))
	for _, cm := range comments {
		data = append(data, newCommentView(cm))
	}

	return c.JSON(fiber.Map{"data": data})
}

// UpdateComment handles PUT /comments/:id. Missing text is 412 here, unlike
// comment creation where it is 400.
func (s *Server) UpdateComment(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	id, err := s.parseID(c, "id", fiber.StatusBadRequest)
	if err != nil {
		return nil
	}

	var req struct {
		Comment string `json:"comment"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusPreconditionFailed,
			models.NewValidationError("please enter comment text"))
	}

	_, err = s.commentService.UpdateComment(c.Context(), user, id, req.Comment)
	if err != nil {
		return s.respondServiceError(c, err, fiber.StatusPreconditionFailed)
	}

	return c.JSON(fiber.Map{
		"message": "comment updated successfully",
	})
}

// DeleteComment handles DELETE /comments/:id.
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	id, err := s.parseID(c, "id", fiber.StatusBadRequest)
	if err != nil {
		return nil
	}

	if err := s.commentService.DeleteComment(c.Context(), user, id); err != nil {
		return s.respondServiceError(c, err, fiber.StatusBadRequest)
	}

	return c.JSON(fiber.Map{
		"message": "comment deleted successfully",
	})
}
