package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/littleoaks/preschool-api/internal/fees"
	"github.com/littleoaks/preschool-api/internal/middleware"
	"github.com/littleoaks/preschool-api/internal/users"
)

// RegisterFeeRoutes wires fee endpoints. Parents see their child's fees via
// the nested student route; management is admin only.
func RegisterFeeRoutes(r fiber.Router, h *fees.Handler) {
	adminOnly := middleware.RequireRoles(users.RoleAdmin)

	group := r.Group("/fees", adminOnly)
	group.Post("", h.Charge)
	group.Get("", h.List)
	group.Post("/:id/payments", h.Settle)

	r.Get("/students/:id/fees", middleware.RequireRoles(users.RoleAdmin, users.RoleParent), h.ByStudent)
}
