// Package middleware provides the HTTP middleware stack for the API.
package middleware

import (
	"strings"

	"bloghub/internal/identity"
	"bloghub/internal/models"
	"bloghub/internal/observability"

	"github.com/gofiber/fiber/v2"
)

// AuthRequired resolves the bearer token through dir. A missing credential
// is rejected with 401 and an unresolvable one with 403.
func AuthRequired(dir identity.Directory) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := bearerToken(c.Get(fiber.HeaderAuthorization))
		if !ok {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Authorization header required"))
		}

		userID, err := dir.Resolve(c.UserContext(), token)
		if err != nil {
			return models.RespondWithError(c, fiber.StatusForbidden,
				models.NewForbiddenError("Access token is invalid"))
		}

		c.Locals("userID", userID)
		c.SetUserContext(observability.WithUserID(c.UserContext(), userID))
		return c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
