package fees

import (
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes fee endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a fee HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type feeRequest struct {
	StudentID   string     `json:"student_id"`
	Description string     `json:"description"`
	AmountCents int64      `json:"amount_cents"`
	DueDate     *time.Time `json:"due_date"`
}

// Charge handles POST /fees (admin).
func (h *Handler) Charge(c *fiber.Ctx) error {
	var req feeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	fee, err := h.service.Charge(c.UserContext(), Input{
		StudentID:   req.StudentID,
		Description: req.Description,
		AmountCents: req.AmountCents,
		DueDate:     req.DueDate,
	})
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	return c.Status(http.StatusCreated).JSON(fee)
}

// List handles GET /fees (admin).
func (h *Handler) List(c *fiber.Ctx) error {
	out, err := h.service.List(c.UserContext())
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, "could not list fees")
	}
	return c.JSON(fiber.Map{"fees": out})
}

// ByStudent handles GET /students/:id/fees.
func (h *Handler) ByStudent(c *fiber.Ctx) error {
	out, err := h.service.ForStudent(c.UserContext(), c.Params("id"))
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, "could not list fees")
	}
	return c.JSON(fiber.Map{"fees": out})
}

type paymentRequest struct {
	AmountCents int64  `json:"amount_cents"`
	Method      string `json:"method"`
}

// Settle handles POST /fees/:id/payments (admin).
func (h *Handler) Settle(c *fiber.Ctx) error {
	var req paymentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	payment, err := h.service.Settle(c.UserContext(), c.Params("id"), req.AmountCents, req.Method)
	switch {
	case errors.Is(err, ErrNotFound):
		return fiber.NewError(http.StatusNotFound, err.Error())
	case errors.Is(err, ErrAlreadyPaid):
		return fiber.NewError(http.StatusConflict, err.Error())
	case err != nil:
		return fiber.NewError(http.StatusInternalServerError, "could not record payment")
	}
	return c.Status(http.StatusCreated).JSON(payment)
}
