package middleware

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/littleoaks/preschool-api/internal/auth"
)

// claimsLocal is the fiber.Ctx locals key holding the authenticated claims.
const claimsLocal = "auth_claims"

// Authenticate validates the bearer session token and attaches its claims to
// the request. The token is self-contained; no store lookup happens here.
func Authenticate(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authz := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(strings.ToLower(authz), "bearer ") {
			return fiber.NewError(http.StatusUnauthorized, "missing bearer token")
		}
		raw := strings.TrimSpace(authz[len("Bearer "):])
		claims, err := auth.VerifyToken(secret, raw)
		if err != nil {
			return fiber.NewError(http.StatusUnauthorized, "invalid token")
		}
		c.Locals(claimsLocal, claims)
		return c.Next()
	}
}

// RequireRoles restricts a route to the listed roles. It must run after
// Authenticate; without an authenticated identity the request is refused.
func RequireRoles(roles ...string) fiber.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		claims, ok := c.Locals(claimsLocal).(auth.Claims)
		if !ok {
			return fiber.NewError(http.StatusForbidden, "forbidden")
		}
		if _, ok := allowed[claims.Role]; !ok {
			return fiber.NewError(http.StatusForbidden, "forbidden for role "+claims.Role)
		}
		return c.Next()
	}
}

// ClaimsFrom returns the authenticated claims attached by Authenticate.
func ClaimsFrom(c *fiber.Ctx) (auth.Claims, bool) {
	claims, ok := c.Locals(claimsLocal).(auth.Claims)
	return claims, ok
}
