package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/littleoaks/preschool-api/internal/users"
)

func newTestApp(t *testing.T, assert AssertionVerifier, seed ...users.User) *fiber.App {
	t.Helper()
	svc := newTestService(t, assert, seed...)
	h := NewHandler(svc)

	app := fiber.New()
	app.Post("/auth/request-otp", h.RequestOTP)
	app.Post("/auth/verify-otp", h.VerifyOTP)
	app.Post("/auth/firebase-login", h.FederatedLogin)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, payload any) (int, map[string]any) {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request %s: %v", path, err)
	}
	defer resp.Body.Close()

	var decoded map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp.StatusCode, decoded
}

func TestRequestOTPRequiresPhone(t *testing.T) {
	app := newTestApp(t, nil)

	status, body := postJSON(t, app, "/auth/request-otp", fiber.Map{"phone": "  "})
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", status)
	}
	if body["message"] != "Phone number is required" {
		t.Fatalf("unexpected message: %v", body["message"])
	}
}

func TestRequestOTPRoleMismatch(t *testing.T) {
	app := newTestApp(t, nil)

	// Unknown phone declaring a staff role is rejected up front.
	status, body := postJSON(t, app, "/auth/request-otp", fiber.Map{"phone": "+917000000009", "role": users.RoleTeacher})
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", status)
	}
	if body["message"] != "Invalid role selected for this account" {
		t.Fatalf("unexpected message: %v", body["message"])
	}
}

func TestOTPLoginEndToEnd(t *testing.T) {
	app := newTestApp(t, nil)

	status, body := postJSON(t, app, "/auth/request-otp", fiber.Map{"phone": allowListed, "role": users.RoleAdmin})
	if status != http.StatusOK {
		t.Fatalf("request-otp: expected 200, got %d (%v)", status, body)
	}
	code, _ := body["otp"].(string)
	if code == "" {
		t.Fatal("expected otp in response")
	}

	status, body = postJSON(t, app, "/auth/verify-otp", fiber.Map{"phone": allowListed, "otp": code})
	if status != http.StatusOK {
		t.Fatalf("verify-otp: expected 200, got %d (%v)", status, body)
	}
	if token, _ := body["token"].(string); token == "" {
		t.Fatal("expected token in response")
	}
	user, _ := body["user"].(map[string]any)
	if user["role"] != users.RoleAdmin || user["phone"] != allowListed {
		t.Fatalf("unexpected user: %v", user)
	}

	// Replay of the consumed code.
	status, body = postJSON(t, app, "/auth/verify-otp", fiber.Map{"phone": allowListed, "otp": code})
	if status != http.StatusBadRequest {
		t.Fatalf("replay: expected 400, got %d", status)
	}
	if body["message"] != "Invalid or expired OTP" {
		t.Fatalf("unexpected message: %v", body["message"])
	}
}

func TestVerifyOTPBlockedAccountResponse(t *testing.T) {
	app := newTestApp(t, nil,
		users.User{ID: "u1", Phone: "+917000000010", Role: users.RoleParent, Active: false, CreatedAt: time.Now()},
	)

	status, body := postJSON(t, app, "/auth/request-otp", fiber.Map{"phone": "+917000000010"})
	if status != http.StatusOK {
		t.Fatalf("request-otp: expected 200, got %d", status)
	}
	code, _ := body["otp"].(string)

	status, body = postJSON(t, app, "/auth/verify-otp", fiber.Map{"phone": "+917000000010", "otp": code})
	if status != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", status)
	}
	if body["blocked"] != true {
		t.Fatalf("expected blocked flag, got %v", body)
	}
}

func TestFederatedLoginHandlerResponses(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		app := newTestApp(t, nil)
		status, _ := postJSON(t, app, "/auth/firebase-login", fiber.Map{"idToken": "tok", "phone": "123"})
		if status != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", status)
		}
	})

	t.Run("phone mismatch", func(t *testing.T) {
		app := newTestApp(t, stubVerifier{assertion: Assertion{Phone: "+919000000001"}})
		status, body := postJSON(t, app, "/auth/firebase-login", fiber.Map{"idToken": "tok", "phone": "+919000000002"})
		if status != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", status)
		}
		if body["message"] != "Phone mismatch" {
			t.Fatalf("unexpected message: %v", body["message"])
		}
	})

	t.Run("bad assertion", func(t *testing.T) {
		app := newTestApp(t, stubVerifier{err: ErrAssertionInvalid})
		status, _ := postJSON(t, app, "/auth/firebase-login", fiber.Map{"idToken": "tok", "phone": "123"})
		if status != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", status)
		}
	})

	t.Run("unregistered phone", func(t *testing.T) {
		app := newTestApp(t, stubVerifier{assertion: Assertion{Phone: "+917000000011"}})
		status, _ := postJSON(t, app, "/auth/firebase-login", fiber.Map{"idToken": "tok", "phone": "+917000000011"})
		if status != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", status)
		}
	})

	t.Run("registered teacher", func(t *testing.T) {
		app := newTestApp(t, stubVerifier{assertion: Assertion{Phone: "+917000000012"}},
			users.User{ID: "u1", Name: "Meera", Phone: "+917000000012", Role: users.RoleTeacher, Active: true, CreatedAt: time.Now()},
		)
		status, body := postJSON(t, app, "/auth/firebase-login", fiber.Map{"idToken": "tok", "phone": "+917000000012"})
		if status != http.StatusOK {
			t.Fatalf("expected 200, got %d (%v)", status, body)
		}
		user, _ := body["user"].(map[string]any)
		if user["role"] != users.RoleTeacher {
			t.Fatalf("unexpected user: %v", user)
		}
	})
}
