package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/littleoaks/preschool-api/internal/expenses"
	"github.com/littleoaks/preschool-api/internal/middleware"
	"github.com/littleoaks/preschool-api/internal/users"
)

// RegisterExpenseRoutes wires the admin-only expense ledger.
func RegisterExpenseRoutes(r fiber.Router, h *expenses.Handler) {
	group := r.Group("/expenses", middleware.RequireRoles(users.RoleAdmin))
	group.Post("", h.Create)
	group.Get("", h.List)
	group.Delete("/:id", h.Delete)
}
