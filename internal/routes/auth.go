package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/littleoaks/preschool-api/internal/auth"
)

// RegisterAuthRoutes wires the login endpoints. Both OTP endpoints sit behind
// the per-phone rate limiter; the federated endpoint carries its own
// verification cost and is left unthrottled.
func RegisterAuthRoutes(r fiber.Router, h *auth.Handler, rateLimiter fiber.Handler) {
	group := r.Group("/auth")
	group.Post("/request-otp", rateLimiter, h.RequestOTP)
	group.Post("/verify-otp", rateLimiter, h.VerifyOTP)
	group.Post("/firebase-login", h.FederatedLogin)
}
