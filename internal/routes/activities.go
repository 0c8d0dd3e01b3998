package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/littleoaks/preschool-api/internal/activities"
	"github.com/littleoaks/preschool-api/internal/middleware"
	"github.com/littleoaks/preschool-api/internal/users"
)

// RegisterActivityRoutes wires activity endpoints.
func RegisterActivityRoutes(r fiber.Router, h *activities.Handler) {
	staffOnly := middleware.RequireRoles(users.RoleAdmin, users.RoleTeacher)

	group := r.Group("/activities")
	group.Post("", staffOnly, h.Create)
	group.Get("", h.List)
	group.Get("/:id", h.Get)
	group.Delete("/:id", staffOnly, h.Delete)

	r.Get("/students/:id/activities", h.ByStudent)
}
