package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/littleoaks/preschool-api/internal/middleware"
	"github.com/littleoaks/preschool-api/internal/staff"
	"github.com/littleoaks/preschool-api/internal/users"
)

// RegisterStaffRoutes wires teacher-record endpoints.
func RegisterStaffRoutes(r fiber.Router, h *staff.Handler) {
	group := r.Group("/teachers")
	adminOnly := middleware.RequireRoles(users.RoleAdmin)

	group.Post("", adminOnly, h.Create)
	group.Get("", middleware.RequireRoles(users.RoleAdmin, users.RoleTeacher), h.List)
	group.Get("/:id", middleware.RequireRoles(users.RoleAdmin, users.RoleTeacher), h.Get)
	group.Put("/:id", adminOnly, h.Update)
	group.Delete("/:id", adminOnly, h.Delete)
}
