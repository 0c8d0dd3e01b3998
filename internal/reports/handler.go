package reports

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Handler exposes daily report endpoints.
type Handler struct {
	repo Repository
}

// NewHandler constructs a report HTTP handler.
func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

type reportRequest struct {
	StudentID  string     `json:"student_id"`
	ReportDate *time.Time `json:"report_date"`
	Meals      string     `json:"meals"`
	Naps       string     `json:"naps"`
	Mood       string     `json:"mood"`
	Notes      string     `json:"notes"`
	TeacherID  *string    `json:"teacher_id"`
}

// Submit handles POST /reports (teacher, admin). Resubmitting for the same
// student and day replaces the earlier report.
func (h *Handler) Submit(c *fiber.Ctx) error {
	var req reportRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if req.StudentID == "" {
		return fiber.NewError(http.StatusBadRequest, "student_id is required")
	}
	date := time.Now().UTC().Truncate(24 * time.Hour)
	if req.ReportDate != nil {
		date = req.ReportDate.UTC().Truncate(24 * time.Hour)
	}
	rep := Report{
		ID:         uuid.New().String(),
		StudentID:  req.StudentID,
		ReportDate: date,
		Meals:      req.Meals,
		Naps:       req.Naps,
		Mood:       req.Mood,
		Notes:      req.Notes,
		TeacherID:  req.TeacherID,
		CreatedAt:  time.Now().UTC(),
	}
	if err := h.repo.Upsert(c.UserContext(), rep); err != nil {
		return fiber.NewError(http.StatusInternalServerError, "could not save report")
	}
	return c.Status(http.StatusCreated).JSON(rep)
}

// ByStudent handles GET /students/:id/reports.
func (h *Handler) ByStudent(c *fiber.Ctx) error {
	out, err := h.repo.ListByStudent(c.UserContext(), c.Params("id"))
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, "could not list reports")
	}
	return c.JSON(fiber.Map{"reports": out})
}

// List handles GET /reports (admin).
func (h *Handler) List(c *fiber.Ctx) error {
	out, err := h.repo.List(c.UserContext())
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, "could not list reports")
	}
	return c.JSON(fiber.Map{"reports": out})
}
