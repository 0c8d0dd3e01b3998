package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/littleoaks/preschool-api/internal/announcements"
	"github.com/littleoaks/preschool-api/internal/middleware"
	"github.com/littleoaks/preschool-api/internal/users"
)

// RegisterAnnouncementRoutes wires announcement endpoints. Reading is open to
// every authenticated role; the handler filters by audience.
func RegisterAnnouncementRoutes(r fiber.Router, h *announcements.Handler) {
	group := r.Group("/announcements")
	group.Get("", h.List)
	group.Post("", middleware.RequireRoles(users.RoleAdmin, users.RoleTeacher), h.Publish)
	group.Delete("/:id", middleware.RequireRoles(users.RoleAdmin), h.Delete)
}
