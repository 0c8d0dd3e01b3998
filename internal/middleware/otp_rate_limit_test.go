package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

func newRateLimitedApp(t *testing.T, maxPerMin int) *fiber.App {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	cache := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		cache.Close()
		mr.Close()
	})

	app := fiber.New()
	app.Post("/otp", OTPRateLimit(cache, maxPerMin), func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusOK)
	})
	return app
}

func postOTP(t *testing.T, app *fiber.App, phone string) int {
	t.Helper()
	body := []byte(`{"phone":"` + phone + `"}`)
	req := httptest.NewRequest(http.MethodPost, "/otp", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	resp.Body.Close()
	return resp.StatusCode
}

func TestOTPRateLimitPerPhone(t *testing.T) {
	app := newRateLimitedApp(t, 2)

	for i := 0; i < 2; i++ {
		if status := postOTP(t, app, "+917000000001"); status != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i+1, status)
		}
	}
	if status := postOTP(t, app, "+917000000001"); status != http.StatusTooManyRequests {
		t.Fatalf("expected 429 after limit, got %d", status)
	}

	// A different phone has its own budget.
	if status := postOTP(t, app, "+917000000002"); status != http.StatusOK {
		t.Fatalf("other phone: expected 200, got %d", status)
	}
}

func TestOTPRateLimitFailsOpenWithoutRedis(t *testing.T) {
	app := fiber.New()
	app.Post("/otp", OTPRateLimit(nil, 1), func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusOK)
	})

	for i := 0; i < 3; i++ {
		if status := postOTP(t, app, "123"); status != http.StatusOK {
			t.Fatalf("expected 200 without redis, got %d", status)
		}
	}
}
