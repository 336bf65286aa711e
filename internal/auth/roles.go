package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kolnlaviste/HireLink/internal/domain"
	apperrors "github.com/kolnlaviste/HireLink/pkg/util"
)

// RequireRole ensures the authenticated principal holds one of the allowed
// roles. With no arguments it only requires authentication.
func RequireRole(allowed ...domain.Role) fiber.Handler {
	allowedSet := make(map[domain.Role]struct{}, len(allowed))
	for _, role := range allowed {
		allowedSet[role] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return apperrors.NewMissingToken("authentication required")
		}
		if len(allowedSet) == 0 {
			return c.Next()
		}
		if _, exists := allowedSet[principal.Role]; !exists {
			return apperrors.NewForbiddenRole("insufficient role")
		}
		return c.Next()
	}
}
