package expenses

import (
	"errors"
	"time"
)

// ErrNotFound is returned when no expense matches the lookup key.
var ErrNotFound = errors.New("expense not found")

// Expense is an operational cost entry visible only to administrators.
type Expense struct {
	ID          string     `json:"id"`
	Category    string     `json:"category"`
	Description string     `json:"description"`
	AmountCents int64      `json:"amount_cents"`
	IncurredOn  *time.Time `json:"incurred_on,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}
