package activities

import (
	"errors"
	"time"
)

// ErrNotFound is returned when no activity matches the lookup key.
var ErrNotFound = errors.New("activity not found")

// Activity is a scheduled class activity together with the students signed up
// for it. The activity row and its association rows live or die together.
type Activity struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	ScheduledOn *time.Time `json:"scheduled_on,omitempty"`
	TeacherID   *string    `json:"teacher_id,omitempty"`
	StudentIDs  []string   `json:"student_ids"`
	CreatedAt   time.Time  `json:"created_at"`
}
