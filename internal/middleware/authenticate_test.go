package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/littleoaks/preschool-api/internal/auth"
	"github.com/littleoaks/preschool-api/internal/users"
)

const testSecret = "test-secret"

func newProtectedApp(t *testing.T) *fiber.App {
	t.Helper()
	app := fiber.New()
	app.Use(Authenticate(testSecret))
	app.Get("/whoami", func(c *fiber.Ctx) error {
		claims, ok := ClaimsFrom(c)
		if !ok {
			return fiber.NewError(http.StatusInternalServerError, "claims missing")
		}
		return c.JSON(fiber.Map{"role": claims.Role, "phone": claims.Phone})
	})
	app.Get("/admin-only", RequireRoles(users.RoleAdmin), func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusOK)
	})
	return app
}

func get(t *testing.T, app *fiber.App, path, token string) int {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request %s: %v", path, err)
	}
	resp.Body.Close()
	return resp.StatusCode
}

func TestAuthenticateRejectsMissingAndBadTokens(t *testing.T) {
	app := newProtectedApp(t)

	if status := get(t, app, "/whoami", ""); status != http.StatusUnauthorized {
		t.Fatalf("no token: expected 401, got %d", status)
	}
	if status := get(t, app, "/whoami", "garbage"); status != http.StatusUnauthorized {
		t.Fatalf("bad token: expected 401, got %d", status)
	}

	wrongSecret, err := auth.IssueToken("other-secret", "123", auth.Identity{Role: users.RoleAdmin})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	if status := get(t, app, "/whoami", wrongSecret); status != http.StatusUnauthorized {
		t.Fatalf("wrong secret: expected 401, got %d", status)
	}
}

func TestAuthenticateAcceptsValidToken(t *testing.T) {
	app := newProtectedApp(t)

	token, err := auth.IssueToken(testSecret, "+917000000001", auth.Identity{Role: users.RoleTeacher, UserID: "u1"})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	if status := get(t, app, "/whoami", token); status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
}

func TestRequireRolesForbidsOtherRoles(t *testing.T) {
	app := newProtectedApp(t)

	teacher, err := auth.IssueToken(testSecret, "123", auth.Identity{Role: users.RoleTeacher})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	if status := get(t, app, "/admin-only", teacher); status != http.StatusForbidden {
		t.Fatalf("teacher on admin route: expected 403, got %d", status)
	}

	admin, err := auth.IssueToken(testSecret, "123", auth.Identity{Role: users.RoleAdmin})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	if status := get(t, app, "/admin-only", admin); status != http.StatusOK {
		t.Fatalf("admin on admin route: expected 200, got %d", status)
	}
}
