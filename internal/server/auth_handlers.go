package server

import (
	"scribe/internal/models"
	"scribe/internal/service"

	"github.com/gofiber/fiber/v2"
)

// Signup handles POST /signup.
//
// Account field violations all map to 412 with a specific message; anything
// the validation pass did not catch surfaces as a generic 400.
func (s *Server) Signup(c *fiber.Ctx) error {
	var req struct {
		Nickname string `json:"nickname"`
		Password string `json:"password"`
		Confirm  string `json:"confirm"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("request format is invalid"))
	}

	_, err := s.authService.Signup(c.Context(), service.SignupInput{
		Nickname: req.Nickname,
		Password: req.Password,
		Confirm:  req.Confirm,
	})
	if err != nil {
		return s.respondServiceError(c, err, fiber.StatusPreconditionFailed)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "signed up successfully",
	})
}

// Login handles POST /login. A failed credential check never reveals whether
// the nickname or the password was wrong.
func (s *Server) Login(c *fiber.Ctx) error {
	var req struct {
		Nickname string `json:"nickname"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusPreconditionFailed,
			models.NewValidationError("check your nickname and password"))
	}

	token, err := s.authService.Login(c.Context(), req.Nickname, req.Password)
	if err != nil {
		return s.respondServiceError(c, err, fiber.StatusPreconditionFailed)
	}

	return c.JSON(fiber.Map{
		"token": token,
	})
}
