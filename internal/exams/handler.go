package exams

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Handler exposes exam result endpoints.
type Handler struct {
	repo Repository
}

// NewHandler constructs an exam HTTP handler.
func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

type resultRequest struct {
	StudentID string     `json:"student_id"`
	ExamName  string     `json:"exam_name"`
	Subject   string     `json:"subject"`
	Grade     string     `json:"grade"`
	Remarks   string     `json:"remarks"`
	ExamDate  *time.Time `json:"exam_date"`
}

// Record handles POST /exams (admin, teacher).
func (h *Handler) Record(c *fiber.Ctx) error {
	var req resultRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if req.StudentID == "" || strings.TrimSpace(req.ExamName) == "" {
		return fiber.NewError(http.StatusBadRequest, "student_id and exam_name are required")
	}
	res := Result{
		ID:        uuid.New().String(),
		StudentID: req.StudentID,
		ExamName:  strings.TrimSpace(req.ExamName),
		Subject:   req.Subject,
		Grade:     req.Grade,
		Remarks:   req.Remarks,
		ExamDate:  req.ExamDate,
		CreatedAt: time.Now().UTC(),
	}
	if err := h.repo.Create(c.UserContext(), res); err != nil {
		return fiber.NewError(http.StatusInternalServerError, "could not record result")
	}
	return c.Status(http.StatusCreated).JSON(res)
}

// ByStudent handles GET /students/:id/exams.
func (h *Handler) ByStudent(c *fiber.Ctx) error {
	out, err := h.repo.ListByStudent(c.UserContext(), c.Params("id"))
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, "could not list results")
	}
	return c.JSON(fiber.Map{"results": out})
}

// Delete handles DELETE /exams/:id (admin).
func (h *Handler) Delete(c *fiber.Ctx) error {
	if err := h.repo.Delete(c.UserContext(), c.Params("id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			return fiber.NewError(http.StatusNotFound, err.Error())
		}
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(fiber.Map{"status": "deleted"})
}
