package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes the login endpoints. Unlike the generic CRUD handlers these
// return the {success, message, ...} shapes the mobile clients depend on.
type Handler struct {
	svc *Service
}

// NewHandler constructs an auth HTTP handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

type requestOTPRequest struct {
	Phone string `json:"phone"`
	Role  string `json:"role"`
}

// RequestOTP handles POST /auth/request-otp.
func (h *Handler) RequestOTP(c *fiber.Ctx) error {
	var req requestOTPRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid request body")
	}
	req.Phone = strings.TrimSpace(req.Phone)
	if req.Phone == "" {
		return fail(c, http.StatusBadRequest, "Phone number is required")
	}

	code, err := h.svc.RequestOTP(c.UserContext(), req.Phone, req.Role)
	switch {
	case errors.Is(err, ErrAccountBlocked):
		return blocked(c)
	case errors.Is(err, ErrRoleMismatch):
		return fail(c, http.StatusBadRequest, "Invalid role selected for this account")
	case err != nil:
		return fail(c, http.StatusInternalServerError, "Could not generate OTP")
	}

	// The code is echoed in the response because no SMS gateway is wired up.
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "OTP generated",
		"otp":     code,
	})
}

type verifyOTPRequest struct {
	Phone string `json:"phone"`
	OTP   string `json:"otp"`
}

// VerifyOTP handles POST /auth/verify-otp.
func (h *Handler) VerifyOTP(c *fiber.Ctx) error {
	var req verifyOTPRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid request body")
	}
	req.Phone = strings.TrimSpace(req.Phone)
	if req.Phone == "" || req.OTP == "" {
		return fail(c, http.StatusBadRequest, "Phone number and OTP are required")
	}

	token, user, err := h.svc.VerifyOTP(c.UserContext(), req.Phone, req.OTP)
	switch {
	case errors.Is(err, ErrInvalidOTP):
		return fail(c, http.StatusBadRequest, "Invalid or expired OTP")
	case errors.Is(err, ErrAccountBlocked):
		return blocked(c)
	case err != nil:
		return fail(c, http.StatusInternalServerError, "Could not complete login")
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"success": true,
		"token":   token,
		"user":    user,
	})
}

type federatedLoginRequest struct {
	IDToken string `json:"idToken"`
	Phone   string `json:"phone"`
}

// FederatedLogin handles POST /auth/firebase-login.
func (h *Handler) FederatedLogin(c *fiber.Ctx) error {
	var req federatedLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid request body")
	}
	req.Phone = strings.TrimSpace(req.Phone)
	if req.IDToken == "" || req.Phone == "" {
		return fail(c, http.StatusBadRequest, "idToken and phone are required")
	}

	token, user, err := h.svc.FederatedLogin(c.UserContext(), req.IDToken, req.Phone)
	switch {
	case errors.Is(err, ErrFederatedDisabled):
		return fail(c, http.StatusServiceUnavailable, "Federated login is not available")
	case errors.Is(err, ErrAssertionInvalid):
		return fail(c, http.StatusUnauthorized, "Invalid identity token")
	case errors.Is(err, ErrPhoneMismatch):
		return fail(c, http.StatusBadRequest, "Phone mismatch")
	case errors.Is(err, ErrNotRegistered):
		return fail(c, http.StatusNotFound, "Phone number not registered")
	case errors.Is(err, ErrAccountBlocked):
		return blocked(c)
	case err != nil:
		return fail(c, http.StatusInternalServerError, "Could not complete login")
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"success": true,
		"token":   token,
		"user":    user,
	})
}

func fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"success": false, "message": message})
}

func blocked(c *fiber.Ctx) error {
	return c.Status(http.StatusForbidden).JSON(fiber.Map{
		"success": false,
		"blocked": true,
		"message": "Your account has been blocked. Please contact the school office.",
	})
}
