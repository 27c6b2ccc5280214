package middleware

import (
	"errors"
	"strings"

	"valiant-hris/internal/core/domain"
	"valiant-hris/internal/pkg/jwt"
	"valiant-hris/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// Locals keys set by AuthMiddleware
const (
	LocalUserID   = "userID"
	LocalRole     = "role"
	LocalIdentity = "identity"
)

// Identity is the authenticated caller attached to the request
type Identity struct {
	UserID string
	Role   domain.Role
}

// TokenVerifier verifies access tokens
type TokenVerifier interface {
	Verify(token string) (*jwt.Claims, error)
}

// AuthMiddleware authenticates requests using the Authorization bearer header
func AuthMiddleware(verifier TokenVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return response.Unauthorized(c, "Access token required")
		}
		accessToken := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if accessToken == "" {
			return response.Unauthorized(c, "Access token required")
		}

		claims, err := verifier.Verify(accessToken)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				return response.Unauthorized(c, "Access token expired")
			}
			return response.Unauthorized(c, "Invalid access token")
		}

		identity := &Identity{UserID: claims.UserID, Role: domain.Role(claims.Role)}
		c.Locals(LocalUserID, identity.UserID)
		c.Locals(LocalRole, identity.Role)
		c.Locals(LocalIdentity, identity)

		return c.Next()
	}
}

// CurrentUser returns the identity attached by AuthMiddleware
func CurrentUser(c *fiber.Ctx) (*Identity, bool) {
	identity, ok := c.Locals(LocalIdentity).(*Identity)
	return identity, ok && identity != nil
}

// RequireRole allows only callers holding one of roles
func RequireRole(roles ...domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, ok := CurrentUser(c)
		if !ok {
			return response.Unauthorized(c, "Unauthorized")
		}

		for _, role := range roles {
			if identity.Role == role {
				return c.Next()
			}
		}

		return response.Forbidden(c, "You don't have permission to access this resource")
	}
}

// AdminOnly allows only the admin role
func AdminOnly() fiber.Handler {
	return RequireRole(domain.RoleAdmin)
}

// ManagerOrAdmin allows manager or admin roles
func ManagerOrAdmin() fiber.Handler {
	return RequireRole(domain.RoleManager, domain.RoleAdmin)
}
