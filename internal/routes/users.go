package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/littleoaks/preschool-api/internal/middleware"
	"github.com/littleoaks/preschool-api/internal/users"
)

// RegisterUserRoutes wires credential-store management, admin only.
func RegisterUserRoutes(r fiber.Router, h *users.Handler) {
	group := r.Group("/users", middleware.RequireRoles(users.RoleAdmin))
	group.Post("", h.Create)
	group.Get("", h.List)
	group.Get("/:id", h.Get)
	group.Put("/:id", h.Update)
	group.Post("/:id/block", h.Block)
	group.Post("/:id/unblock", h.Unblock)
	group.Delete("/:id", h.Delete)
}
