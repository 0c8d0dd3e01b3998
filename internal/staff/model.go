package staff

import (
	"errors"
	"time"
)

// ErrNotFound is returned when no teacher record matches the lookup key.
var ErrNotFound = errors.New("teacher not found")

// Teacher is a staff record. The phone number ties it to the teacher's login.
type Teacher struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	ClassName string    `json:"class_name"`
	CreatedAt time.Time `json:"created_at"`
}
