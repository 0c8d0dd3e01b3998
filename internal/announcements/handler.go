package announcements

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/littleoaks/preschool-api/internal/middleware"
	"github.com/littleoaks/preschool-api/internal/notification"
	"github.com/littleoaks/preschool-api/internal/users"
)

// Handler exposes announcement endpoints.
type Handler struct {
	repo     Repository
	notifier notification.Notifier
}

// NewHandler constructs an announcement HTTP handler.
func NewHandler(repo Repository, notifier notification.Notifier) *Handler {
	return &Handler{repo: repo, notifier: notifier}
}

type announcementRequest struct {
	Title    string `json:"title"`
	Body     string `json:"body"`
	Audience string `json:"audience"`
}

// Publish handles POST /announcements (admin, teacher).
func (h *Handler) Publish(c *fiber.Ctx) error {
	var req announcementRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		return fiber.NewError(http.StatusBadRequest, "title is required")
	}
	switch req.Audience {
	case "":
		req.Audience = AudienceAll
	case AudienceAll, AudienceTeachers, AudienceParents:
	default:
		return fiber.NewError(http.StatusBadRequest, "invalid audience")
	}

	a := Announcement{
		ID:        uuid.New().String(),
		Title:     req.Title,
		Body:      req.Body,
		Audience:  req.Audience,
		CreatedAt: time.Now().UTC(),
	}
	if err := h.repo.Create(c.UserContext(), a); err != nil {
		return fiber.NewError(http.StatusInternalServerError, "could not publish announcement")
	}
	if h.notifier != nil {
		_ = h.notifier.Send(context.WithoutCancel(c.UserContext()), notification.Message{
			Kind:        notification.KindAnnouncement,
			Destination: a.Audience,
			Body:        a.Title,
		})
	}
	return c.Status(http.StatusCreated).JSON(a)
}

// List handles GET /announcements, filtered to the caller's audience.
func (h *Handler) List(c *fiber.Ctx) error {
	audience := AudienceAll
	if claims, ok := middleware.ClaimsFrom(c); ok {
		switch claims.Role {
		case users.RoleTeacher:
			audience = AudienceTeachers
		case users.RoleParent:
			audience = AudienceParents
		case users.RoleAdmin:
			// Admins see everything; listing both scoped audiences keeps
			// the query shape identical.
			teacherNotices, err := h.repo.ListForAudience(c.UserContext(), AudienceTeachers)
			if err != nil {
				return fiber.NewError(http.StatusInternalServerError, "could not list announcements")
			}
			parentNotices, err := h.repo.ListForAudience(c.UserContext(), AudienceParents)
			if err != nil {
				return fiber.NewError(http.StatusInternalServerError, "could not list announcements")
			}
			return c.JSON(fiber.Map{"announcements": mergeUnique(teacherNotices, parentNotices)})
		}
	}
	out, err := h.repo.ListForAudience(c.UserContext(), audience)
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, "could not list announcements")
	}
	return c.JSON(fiber.Map{"announcements": out})
}

// Delete handles DELETE /announcements/:id (admin).
func (h *Handler) Delete(c *fiber.Ctx) error {
	if err := h.repo.Delete(c.UserContext(), c.Params("id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			return fiber.NewError(http.StatusNotFound, err.Error())
		}
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(fiber.Map{"status": "deleted"})
}

func mergeUnique(lists ...[]Announcement) []Announcement {
	seen := make(map[string]struct{})
	var out []Announcement
	for _, list := range lists {
		for _, a := range list {
			if _, ok := seen[a.ID]; ok {
				continue
			}
			seen[a.ID] = struct{}{}
			out = append(out, a)
		}
	}
	return out
}
