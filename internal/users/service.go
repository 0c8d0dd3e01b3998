package users

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Service manages credential-store users.
type Service struct {
	repo Repository
}

// NewService creates a new user service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Input carries the caller-supplied user fields.
type Input struct {
	Name   string
	Phone  string
	Role   string
	Active *bool
}

// Create provisions a user row for a phone number.
func (s *Service) Create(ctx context.Context, in Input) (User, error) {
	in.Phone = strings.TrimSpace(in.Phone)
	if in.Phone == "" {
		return User{}, errors.New("phone is required")
	}
	if !ValidRole(in.Role) {
		return User{}, errors.New("invalid role")
	}

	user := User{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(in.Name),
		Phone:     in.Phone,
		Role:      in.Role,
		Active:    true,
		CreatedAt: time.Now().UTC(),
	}
	if in.Active != nil {
		user.Active = *in.Active
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return User{}, err
	}
	return user, nil
}

// Update rewrites an existing user's fields.
func (s *Service) Update(ctx context.Context, id string, in Input) (User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return User{}, err
	}
	if in.Phone = strings.TrimSpace(in.Phone); in.Phone != "" {
		user.Phone = in.Phone
	}
	if in.Name = strings.TrimSpace(in.Name); in.Name != "" {
		user.Name = in.Name
	}
	if in.Role != "" {
		if !ValidRole(in.Role) {
			return User{}, errors.New("invalid role")
		}
		user.Role = in.Role
	}
	if in.Active != nil {
		user.Active = *in.Active
	}
	if err := s.repo.Update(ctx, user); err != nil {
		return User{}, err
	}
	return user, nil
}

// Get fetches a user by id.
func (s *Service) Get(ctx context.Context, id string) (User, error) {
	return s.repo.FindByID(ctx, id)
}

// List returns all users.
func (s *Service) List(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}

// SetActive blocks or unblocks an account.
func (s *Service) SetActive(ctx context.Context, id string, active bool) error {
	return s.repo.SetActive(ctx, id, active)
}

// Delete removes a user row.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
