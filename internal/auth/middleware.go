package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/kolnlaviste/HireLink/internal/domain"
	apperrors "github.com/kolnlaviste/HireLink/pkg/util"
)

const principalKey = "auth_principal"

// Principal represents the authenticated caller for the lifetime of one
// request. It is built from token claims alone; nothing here is persisted.
type Principal struct {
	IdentityID string
	Email      string
	Role       domain.Role
}

// AuthMiddleware validates bearer tokens and attaches principals.
type AuthMiddleware struct {
	tokens *TokenManager
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(tokens *TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// Handle enforces authentication for protected routes. A request with no
// bearer token terminates with 401; a token that fails signature or expiry
// checks terminates with 403. The handler chain is never reached in either
// case.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return apperrors.NewMissingToken("missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewMissingToken("invalid authorization header")
	}

	claims, err := m.tokens.ParseToken(parts[1])
	if err != nil {
		return apperrors.NewInvalidToken("invalid or expired token")
	}

	c.Locals(principalKey, &Principal{
		IdentityID: claims.IdentityID,
		Email:      claims.Email,
		Role:       claims.Role,
	})
	return c.Next()
}

// PrincipalFromContext retrieves the authenticated identity.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}
