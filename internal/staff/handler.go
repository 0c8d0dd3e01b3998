package staff

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Handler exposes teacher-record endpoints.
type Handler struct {
	repo Repository
}

// NewHandler constructs a staff HTTP handler.
func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

type teacherRequest struct {
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	ClassName string `json:"class_name"`
}

// Create handles POST /teachers (admin).
func (h *Handler) Create(c *fiber.Ctx) error {
	var req teacherRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Phone = strings.TrimSpace(req.Phone)
	if req.Name == "" || req.Phone == "" {
		return fiber.NewError(http.StatusBadRequest, "name and phone are required")
	}
	t := Teacher{
		ID:        uuid.New().String(),
		Name:      req.Name,
		Phone:     req.Phone,
		ClassName: req.ClassName,
		CreatedAt: time.Now().UTC(),
	}
	if err := h.repo.Create(c.UserContext(), t); err != nil {
		return fiber.NewError(http.StatusInternalServerError, "could not create teacher")
	}
	return c.Status(http.StatusCreated).JSON(t)
}

// List handles GET /teachers.
func (h *Handler) List(c *fiber.Ctx) error {
	out, err := h.repo.List(c.UserContext())
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, "could not list teachers")
	}
	return c.JSON(fiber.Map{"teachers": out})
}

// Get handles GET /teachers/:id.
func (h *Handler) Get(c *fiber.Ctx) error {
	t, err := h.repo.FindByID(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return fiber.NewError(http.StatusNotFound, err.Error())
		}
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(t)
}

// Update handles PUT /teachers/:id (admin).
func (h *Handler) Update(c *fiber.Ctx) error {
	t, err := h.repo.FindByID(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return fiber.NewError(http.StatusNotFound, err.Error())
		}
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	var req teacherRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if v := strings.TrimSpace(req.Name); v != "" {
		t.Name = v
	}
	if v := strings.TrimSpace(req.Phone); v != "" {
		t.Phone = v
	}
	if req.ClassName != "" {
		t.ClassName = req.ClassName
	}
	if err := h.repo.Update(c.UserContext(), t); err != nil {
		return fiber.NewError(http.StatusInternalServerError, "could not update teacher")
	}
	return c.JSON(t)
}

// Delete handles DELETE /teachers/:id (admin).
func (h *Handler) Delete(c *fiber.Ctx) error {
	if err := h.repo.Delete(c.UserContext(), c.Params("id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			return fiber.NewError(http.StatusNotFound, err.Error())
		}
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(fiber.Map{"status": "deleted"})
}
