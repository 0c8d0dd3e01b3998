package fees

import (
	"errors"
	"time"
)

const (
	// StatusDue marks an unpaid fee.
	StatusDue = "due"
	// StatusPaid marks a settled fee.
	StatusPaid = "paid"
)

var (
	// ErrNotFound is returned when no fee matches the lookup key.
	ErrNotFound = errors.New("fee not found")
	// ErrAlreadyPaid guards against double settlement.
	ErrAlreadyPaid = errors.New("fee already paid")
)

// Fee is a charge against a student's account.
type Fee struct {
	ID          string     `json:"id"`
	StudentID   string     `json:"student_id"`
	Description string     `json:"description"`
	AmountCents int64      `json:"amount_cents"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
}

// Payment settles a fee.
type Payment struct {
	ID          string    `json:"id"`
	FeeID       string    `json:"fee_id"`
	AmountCents int64     `json:"amount_cents"`
	Method      string    `json:"method"`
	PaidAt      time.Time `json:"paid_at"`
}
