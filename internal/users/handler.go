package users

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes admin-only user management endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a user HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type userRequest struct {
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Role   string `json:"role"`
	Active *bool  `json:"is_active"`
}

// Create handles POST /users.
func (h *Handler) Create(c *fiber.Ctx) error {
	var req userRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	user, err := h.service.Create(c.UserContext(), Input{Name: req.Name, Phone: req.Phone, Role: req.Role, Active: req.Active})
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	return c.Status(http.StatusCreated).JSON(user)
}

// List handles GET /users.
func (h *Handler) List(c *fiber.Ctx) error {
	out, err := h.service.List(c.UserContext())
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, "could not list users")
	}
	return c.JSON(fiber.Map{"users": out})
}

// Get handles GET /users/:id.
func (h *Handler) Get(c *fiber.Ctx) error {
	user, err := h.service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return notFoundOr500(err)
	}
	return c.JSON(user)
}

// Update handles PUT /users/:id.
func (h *Handler) Update(c *fiber.Ctx) error {
	var req userRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	user, err := h.service.Update(c.UserContext(), c.Params("id"), Input{Name: req.Name, Phone: req.Phone, Role: req.Role, Active: req.Active})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return fiber.NewError(http.StatusNotFound, err.Error())
		}
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(user)
}

// Block handles POST /users/:id/block, deactivating the account.
func (h *Handler) Block(c *fiber.Ctx) error {
	if err := h.service.SetActive(c.UserContext(), c.Params("id"), false); err != nil {
		return notFoundOr500(err)
	}
	return c.JSON(fiber.Map{"status": "blocked"})
}

// Unblock handles POST /users/:id/unblock, reactivating the account.
func (h *Handler) Unblock(c *fiber.Ctx) error {
	if err := h.service.SetActive(c.UserContext(), c.Params("id"), true); err != nil {
		return notFoundOr500(err)
	}
	return c.JSON(fiber.Map{"status": "active"})
}

// Delete handles DELETE /users/:id.
func (h *Handler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.UserContext(), c.Params("id")); err != nil {
		return notFoundOr500(err)
	}
	return c.JSON(fiber.Map{"status": "deleted"})
}

func notFoundOr500(err error) error {
	if errors.Is(err, ErrNotFound) {
		return fiber.NewError(http.StatusNotFound, err.Error())
	}
	return fiber.NewError(http.StatusInternalServerError, err.Error())
}
