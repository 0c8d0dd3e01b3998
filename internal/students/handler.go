package students

import (
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/littleoaks/preschool-api/internal/middleware"
	"github.com/littleoaks/preschool-api/internal/users"
)

// Handler exposes student endpoints. What a caller may see depends on role:
// admins see everything, teachers their roster, parents their own children.
type Handler struct {
	service *Service
}

// NewHandler constructs a student HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type studentRequest struct {
	Name        string     `json:"name"`
	DateOfBirth *time.Time `json:"date_of_birth"`
	ClassName   string     `json:"class_name"`
	TeacherID   *string    `json:"teacher_id"`
	ParentName  string     `json:"parent_name"`
	ParentPhone string     `json:"parent_phone"`
}

func (r studentRequest) input() Input {
	return Input{
		Name:        r.Name,
		DateOfBirth: r.DateOfBirth,
		ClassName:   r.ClassName,
		TeacherID:   r.TeacherID,
		ParentName:  r.ParentName,
		ParentPhone: r.ParentPhone,
	}
}

// Enroll handles POST /students (admin).
func (h *Handler) Enroll(c *fiber.Ctx) error {
	var req studentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	student, err := h.service.Enroll(c.UserContext(), req.input())
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	return c.Status(http.StatusCreated).JSON(student)
}

// List handles GET /students, scoped by the caller's role.
func (h *Handler) List(c *fiber.Ctx) error {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		return fiber.NewError(http.StatusForbidden, "forbidden")
	}

	var (
		out []Student
		err error
	)
	switch claims.Role {
	case users.RoleAdmin:
		out, err = h.service.List(c.UserContext())
	case users.RoleTeacher:
		out, err = h.service.Roster(c.UserContext(), claims.UserID)
	default:
		out, err = h.service.Children(c.UserContext(), claims.Phone)
	}
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, "could not list students")
	}
	return c.JSON(fiber.Map{"students": out})
}

// Get handles GET /students/:id.
func (h *Handler) Get(c *fiber.Ctx) error {
	student, err := h.service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return fiber.NewError(http.StatusNotFound, err.Error())
		}
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	if claims, ok := middleware.ClaimsFrom(c); ok && claims.Role == users.RoleParent && student.ParentPhone != claims.Phone {
		return fiber.NewError(http.StatusForbidden, "forbidden")
	}
	return c.JSON(student)
}

// Update handles PUT /students/:id (admin).
func (h *Handler) Update(c *fiber.Ctx) error {
	var req studentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	student, err := h.service.Update(c.UserContext(), c.Params("id"), req.input())
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return fiber.NewError(http.StatusNotFound, err.Error())
		}
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(student)
}

// Delete handles DELETE /students/:id (admin).
func (h *Handler) Delete(c *fiber.Ctx) error {
	if err := h.service.Remove(c.UserContext(), c.Params("id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			return fiber.NewError(http.StatusNotFound, err.Error())
		}
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(fiber.Map{"status": "deleted"})
}
