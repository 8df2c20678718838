// Package middleware provides authentication, logging, and metrics middleware.
package middleware

import (
	"context"
	"strings"

	"scribe/internal/auth"
	"scribe/internal/models"
	"scribe/internal/repository"

	"github.com/gofiber/fiber/v2"
)

// CurrentUserKey is the fiber locals key holding the authenticated *models.User.
const CurrentUserKey = "currentUser"

// AuthGate authenticates requests: it extracts the bearer credential, verifies
// it with the token codec, resolves the subject to a user record, and attaches
// the identity to the request.
type AuthGate struct {
	codec *auth.TokenCodec
	users repository.UserRepository
}

// NewAuthGate creates an AuthGate from the codec and the identity store.
func NewAuthGate(codec *auth.TokenCodec, users repository.UserRepository) *AuthGate {
	return &AuthGate{codec: codec, users: users}
}

// extractBearer pulls the token out of an Authorization header value. Missing
// header, missing token half, and wrong scheme are all identically "no
// credential".
func extractBearer(header string) (string, bool) {
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

// Required returns middleware enforcing authentication for protected routes.
// A verified token whose subject no longer resolves to a user record is
// rejected the same way as a tampered token, so no handler ever sees a nil
// identity.
func (g *AuthGate) Required() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, ok := extractBearer(c.Get("Authorization"))
		if !ok {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewAuthRequiredError())
		}

		userID, err := g.codec.Verify(tokenString)
		if err != nil {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewAuthInvalidError())
		}

		user, err := g.users.GetByID(c.Context(), userID)
		if err != nil {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewUnexpectedError(err))
		}
		if user == nil {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewAuthInvalidError())
		}

		c.Locals(CurrentUserKey, user)
		// Sync to UserContext so the context-aware logger picks up the user id.
		ctx := context.WithValue(c.UserContext(), UserIDKey, user.ID)
		c.SetUserContext(ctx)

		return c.Next()
	}
}

// CurrentUser returns the identity attached by Required, or nil on public
// routes.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(CurrentUserKey).(*models.User)
	return user
}
