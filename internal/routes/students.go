package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/littleoaks/preschool-api/internal/middleware"
	"github.com/littleoaks/preschool-api/internal/students"
	"github.com/littleoaks/preschool-api/internal/users"
)

// RegisterStudentRoutes wires student CRUD. Reads are open to every role and
// scoped inside the handler; writes are admin only.
func RegisterStudentRoutes(r fiber.Router, h *students.Handler) {
	group := r.Group("/students")
	adminOnly := middleware.RequireRoles(users.RoleAdmin)

	group.Post("", adminOnly, h.Enroll)
	group.Get("", h.List)
	group.Get("/:id", h.Get)
	group.Put("/:id", adminOnly, h.Update)
	group.Delete("/:id", adminOnly, h.Delete)
}
