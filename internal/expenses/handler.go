package expenses

import (
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Handler exposes expense endpoints (admin only at the route level).
type Handler struct {
	repo Repository
}

// NewHandler constructs an expense HTTP handler.
func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

type expenseRequest struct {
	Category    string     `json:"category"`
	Description string     `json:"description"`
	AmountCents int64      `json:"amount_cents"`
	IncurredOn  *time.Time `json:"incurred_on"`
}

// Create handles POST /expenses.
func (h *Handler) Create(c *fiber.Ctx) error {
	var req expenseRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if req.AmountCents <= 0 {
		return fiber.NewError(http.StatusBadRequest, "amount must be positive")
	}
	e := Expense{
		ID:          uuid.New().String(),
		Category:    req.Category,
		Description: req.Description,
		AmountCents: req.AmountCents,
		IncurredOn:  req.IncurredOn,
		CreatedAt:   time.Now().UTC(),
	}
	if err := h.repo.Create(c.UserContext(), e); err != nil {
		return fiber.NewError(http.StatusInternalServerError, "could not record expense")
	}
	return c.Status(http.StatusCreated).JSON(e)
}

// List handles GET /expenses.
func (h *Handler) List(c *fiber.Ctx) error {
	out, err := h.repo.List(c.UserContext())
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, "could not list expenses")
	}
	return c.JSON(fiber.Map{"expenses": out})
}

// Delete handles DELETE /expenses/:id.
func (h *Handler) Delete(c *fiber.Ctx) error {
	if err := h.repo.Delete(c.UserContext(), c.Params("id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			return fiber.NewError(http.StatusNotFound, err.Error())
		}
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(fiber.Map{"status": "deleted"})
}
