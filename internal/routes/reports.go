package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/littleoaks/preschool-api/internal/middleware"
	"github.com/littleoaks/preschool-api/internal/reports"
	"github.com/littleoaks/preschool-api/internal/users"
)

// RegisterReportRoutes wires daily report endpoints.
func RegisterReportRoutes(r fiber.Router, h *reports.Handler) {
	r.Post("/reports", middleware.RequireRoles(users.RoleAdmin, users.RoleTeacher), h.Submit)
	r.Get("/reports", middleware.RequireRoles(users.RoleAdmin), h.List)
	r.Get("/students/:id/reports", h.ByStudent)
}
