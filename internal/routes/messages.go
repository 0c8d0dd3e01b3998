package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/littleoaks/preschool-api/internal/messages"
)

// RegisterMessageRoutes wires message-thread endpoints for all authenticated
// roles; the sender's identity always comes from the session claims.
func RegisterMessageRoutes(r fiber.Router, h *messages.Handler) {
	r.Post("/messages", h.Send)
	r.Post("/messages/:id/read", h.MarkRead)
	r.Get("/students/:id/messages", h.Thread)
}
