package server

import (
	"errors"
	"log/slog"

	"scribe/internal/middleware"
	"scribe/internal/models"

	"github.com/gofiber/fiber/v2"
)

// errResponseWritten is a sentinel indicating the HTTP response was already
// committed by a helper. Handlers must return nil (not this error) to avoid
// Fiber's ErrorHandler overwriting the response.
var errResponseWritten = errors.New("response already written")

// parseID extracts a route parameter by name as a positive uint. On failure it
// writes a JSON error response with the given status and returns
// errResponseWritten. Callers should check: if err != nil { return nil }.
//
// The status varies because the original API reports a malformed comment
// postId param as 412 on create but 400 on list and update.
func (s *Server) parseID(c *fiber.Ctx, param string, status int) (uint, error) {
	id, err := c.ParamsInt(param)
	if err != nil || id <= 0 {
		_ = models.RespondWithError(c, status,
			models.NewValidationError("request format is invalid"))
		return 0, errResponseWritten
	}
	return uint(id), nil
}

// respondServiceError maps a service error onto the endpoint's status
// contract. validationStatus is the endpoint-specific status for
// VALIDATION_FAILED; everything else is fixed by the taxonomy. UNEXPECTED is
// logged server-side and surfaced as a generic 400.
func (s *Server) respondServiceError(c *fiber.Ctx, err error, validationStatus int) error {
	status := fiber.StatusBadRequest
	switch models.CodeOf(err) {
	case models.CodeValidation:
		status = validationStatus
	case models.CodeNotFound:
		status = fiber.StatusNotFound
	case models.CodeNotOwner:
		status = fiber.StatusUnauthorized
	case models.CodeAuthRequired, models.CodeAuthInvalid:
		status = fiber.StatusUnauthorized
	case models.CodeUnexpected:
		middleware.Logger.ErrorContext(c.UserContext(), "request failed unexpectedly",
			slog.String("error", err.Error()))
	}
	return models.RespondWithError(c, status, err)
}
