package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/littleoaks/preschool-api/internal/exams"
	"github.com/littleoaks/preschool-api/internal/middleware"
	"github.com/littleoaks/preschool-api/internal/users"
)

// RegisterExamRoutes wires exam result endpoints.
func RegisterExamRoutes(r fiber.Router, h *exams.Handler) {
	r.Post("/exams", middleware.RequireRoles(users.RoleAdmin, users.RoleTeacher), h.Record)
	r.Delete("/exams/:id", middleware.RequireRoles(users.RoleAdmin), h.Delete)
	r.Get("/students/:id/exams", h.ByStudent)
}
