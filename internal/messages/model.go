package messages

import (
	"errors"
	"time"
)

// ErrNotFound is returned when no message matches the lookup key.
var ErrNotFound = errors.New("message not found")

// Message is a teacher/parent exchange attached to a student's thread.
type Message struct {
	ID         string    `json:"id"`
	StudentID  string    `json:"student_id"`
	SenderID   *string   `json:"sender_id,omitempty"`
	SenderRole string    `json:"sender_role"`
	Body       string    `json:"body"`
	Read       bool      `json:"is_read"`
	CreatedAt  time.Time `json:"created_at"`
}
