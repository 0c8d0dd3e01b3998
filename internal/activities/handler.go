package activities

import (
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes activity endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs an activity HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type activityRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	ScheduledOn *time.Time `json:"scheduled_on"`
	TeacherID   *string    `json:"teacher_id"`
	StudentIDs  []string   `json:"student_ids"`
}

// Create handles POST /activities (admin, teacher).
func (h *Handler) Create(c *fiber.Ctx) error {
	var req activityRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	activity, err := h.service.Create(c.UserContext(), Input{
		Title:       req.Title,
		Description: req.Description,
		ScheduledOn: req.ScheduledOn,
		TeacherID:   req.TeacherID,
		StudentIDs:  req.StudentIDs,
	})
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	return c.Status(http.StatusCreated).JSON(activity)
}

// List handles GET /activities.
func (h *Handler) List(c *fiber.Ctx) error {
	out, err := h.service.List(c.UserContext())
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, "could not list activities")
	}
	return c.JSON(fiber.Map{"activities": out})
}

// Get handles GET /activities/:id.
func (h *Handler) Get(c *fiber.Ctx) error {
	activity, err := h.service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return fiber.NewError(http.StatusNotFound, err.Error())
		}
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(activity)
}

// ByStudent handles GET /students/:id/activities.
func (h *Handler) ByStudent(c *fiber.Ctx) error {
	out, err := h.service.ForStudent(c.UserContext(), c.Params("id"))
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, "could not list activities")
	}
	return c.JSON(fiber.Map{"activities": out})
}

// Delete handles DELETE /activities/:id (admin, teacher).
func (h *Handler) Delete(c *fiber.Ctx) error {
	if err := h.service.Remove(c.UserContext(), c.Params("id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			return fiber.NewError(http.StatusNotFound, err.Error())
		}
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(fiber.Map{"status": "deleted"})
}
