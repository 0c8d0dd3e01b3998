package messages

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/littleoaks/preschool-api/internal/middleware"
)

// Handler exposes message-thread endpoints.
type Handler struct {
	repo Repository
}

// NewHandler constructs a message HTTP handler.
func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

type messageRequest struct {
	StudentID string `json:"student_id"`
	Body      string `json:"body"`
}

// Send handles POST /messages. Sender identity comes from the session, not
// the payload.
func (h *Handler) Send(c *fiber.Ctx) error {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		return fiber.NewError(http.StatusForbidden, "forbidden")
	}
	var req messageRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	req.Body = strings.TrimSpace(req.Body)
	if req.StudentID == "" || req.Body == "" {
		return fiber.NewError(http.StatusBadRequest, "student_id and body are required")
	}

	m := Message{
		ID:         uuid.New().String(),
		StudentID:  req.StudentID,
		SenderRole: claims.Role,
		Body:       req.Body,
		CreatedAt:  time.Now().UTC(),
	}
	if claims.UserID != "" {
		m.SenderID = &claims.UserID
	}
	if err := h.repo.Create(c.UserContext(), m); err != nil {
		return fiber.NewError(http.StatusInternalServerError, "could not send message")
	}
	return c.Status(http.StatusCreated).JSON(m)
}

// Thread handles GET /students/:id/messages.
func (h *Handler) Thread(c *fiber.Ctx) error {
	out, err := h.repo.ListByStudent(c.UserContext(), c.Params("id"))
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, "could not load messages")
	}
	return c.JSON(fiber.Map{"messages": out})
}

// MarkRead handles POST /messages/:id/read.
func (h *Handler) MarkRead(c *fiber.Ctx) error {
	if err := h.repo.MarkRead(c.UserContext(), c.Params("id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			return fiber.NewError(http.StatusNotFound, err.Error())
		}
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(fiber.Map{"status": "read"})
}
