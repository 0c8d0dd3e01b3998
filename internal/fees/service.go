package fees

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Service manages fee charges and settlements.
type Service struct {
	repo Repository
}

// NewService creates a new fee service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Input carries the caller-supplied fee fields.
type Input struct {
	StudentID   string
	Description string
	AmountCents int64
	DueDate     *time.Time
}

// Charge raises a fee against a student.
func (s *Service) Charge(ctx context.Context, in Input) (Fee, error) {
	if in.StudentID == "" {
		return Fee{}, errors.New("student_id is required")
	}
	if in.AmountCents <= 0 {
		return Fee{}, errors.New("amount must be positive")
	}

	fee := Fee{
		ID:          uuid.New().String(),
		StudentID:   in.StudentID,
		Description: in.Description,
		AmountCents: in.AmountCents,
		DueDate:     in.DueDate,
		Status:      StatusDue,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, fee); err != nil {
		return Fee{}, err
	}
	return fee, nil
}

// Settle records a payment against a fee. The full amount is taken from the
// fee itself when the caller passes zero.
func (s *Service) Settle(ctx context.Context, feeID string, amountCents int64, method string) (Payment, error) {
	if amountCents <= 0 {
		fee, err := s.repo.FindByID(ctx, feeID)
		if err != nil {
			return Payment{}, err
		}
		amountCents = fee.AmountCents
	}
	return s.repo.RecordPayment(ctx, feeID, amountCents, method)
}

// Get fetches one fee.
func (s *Service) Get(ctx context.Context, id string) (Fee, error) {
	return s.repo.FindByID(ctx, id)
}

// List returns all fees.
func (s *Service) List(ctx context.Context) ([]Fee, error) {
	return s.repo.List(ctx)
}

// ForStudent returns the fees charged to one student.
func (s *Service) ForStudent(ctx context.Context, studentID string) ([]Fee, error) {
	return s.repo.ListByStudent(ctx, studentID)
}
