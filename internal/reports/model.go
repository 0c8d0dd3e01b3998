package reports

import (
	"errors"
	"time"
)

// ErrNotFound is returned when no report matches the lookup key.
var ErrNotFound = errors.New("report not found")

// Report is a teacher's daily note about a student: meals, naps, mood, and
// anything the guardian should know. One per student per day.
type Report struct {
	ID         string    `json:"id"`
	StudentID  string    `json:"student_id"`
	ReportDate time.Time `json:"report_date"`
	Meals      string    `json:"meals"`
	Naps       string    `json:"naps"`
	Mood       string    `json:"mood"`
	Notes      string    `json:"notes"`
	TeacherID  *string   `json:"teacher_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
