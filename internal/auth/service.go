package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/littleoaks/preschool-api/internal/config"
	"github.com/littleoaks/preschool-api/internal/notification"
)

// ErrInvalidOTP is returned when no live matching code exists for the phone.
var ErrInvalidOTP = errors.New("invalid or expired OTP")

// ErrFederatedDisabled is returned when no assertion verifier is configured.
var ErrFederatedDisabled = errors.New("federated login is not configured")

// Service drives the login flows: OTP issuance/verification and the
// federated alternative, both funneling into role resolution and token
// issuance.
type Service struct {
	cfg      config.Config
	otp      OTPStore
	resolver *Resolver
	assert   AssertionVerifier
	notifier notification.Notifier
}

// NewService wires the auth service. assert may be nil when federated login
// is not configured.
func NewService(cfg config.Config, otp OTPStore, resolver *Resolver, assert AssertionVerifier, notifier notification.Notifier) *Service {
	return &Service{cfg: cfg, otp: otp, resolver: resolver, assert: assert, notifier: notifier}
}

// AuthedUser is the identity block echoed back with a fresh token.
type AuthedUser struct {
	Phone string `json:"phone"`
	Role  string `json:"role"`
	Name  string `json:"name"`
	ID    string `json:"id"`
}

// RequestOTP pre-validates the declared role, then issues a fresh code for
// the phone, superseding any previous one.
func (s *Service) RequestOTP(ctx context.Context, phone, declaredRole string) (string, error) {
	if err := s.resolver.PrecheckRole(ctx, phone, declaredRole); err != nil {
		return "", err
	}
	code, err := s.otp.Issue(ctx, phone)
	if err != nil {
		return "", err
	}
	if s.notifier != nil {
		_ = s.notifier.Send(ctx, notification.Message{
			Kind:        notification.KindOTP,
			Destination: phone,
			Body:        fmt.Sprintf("Your login code is %s. It expires in 5 minutes.", code),
		})
	}
	return code, nil
}

// VerifyOTP consumes a live code and mints a session token.
func (s *Service) VerifyOTP(ctx context.Context, phone, code string) (string, AuthedUser, error) {
	ok, err := s.otp.Verify(ctx, phone, code)
	if err != nil {
		return "", AuthedUser{}, err
	}
	if !ok {
		return "", AuthedUser{}, ErrInvalidOTP
	}

	id, err := s.resolver.ResolveFinalRole(ctx, phone)
	if err != nil {
		return "", AuthedUser{}, err
	}
	if !id.Active {
		return "", AuthedUser{}, ErrAccountBlocked
	}

	return s.issue(phone, id)
}

// FederatedLogin verifies a third-party identity assertion instead of an OTP.
// The claimed phone must match the one the assertion vouches for, and unlike
// the OTP path there is no parent fallback: unknown phones are rejected.
func (s *Service) FederatedLogin(ctx context.Context, rawToken, claimedPhone string) (string, AuthedUser, error) {
	if s.assert == nil {
		return "", AuthedUser{}, ErrFederatedDisabled
	}

	assertion, err := s.assert.Verify(ctx, rawToken)
	if err != nil {
		return "", AuthedUser{}, err
	}
	if NormalizePhone(assertion.Phone) != NormalizePhone(claimedPhone) {
		return "", AuthedUser{}, ErrPhoneMismatch
	}

	id, err := s.resolver.ResolveFederated(ctx, claimedPhone)
	if err != nil {
		return "", AuthedUser{}, err
	}

	return s.issue(claimedPhone, id)
}

func (s *Service) issue(phone string, id Identity) (string, AuthedUser, error) {
	token, err := IssueToken(s.cfg.JWTSecret, phone, id)
	if err != nil {
		return "", AuthedUser{}, fmt.Errorf("sign token: %w", err)
	}
	return token, AuthedUser{Phone: phone, Role: id.Role, Name: id.Name, ID: id.UserID}, nil
}
