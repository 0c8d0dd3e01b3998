package exams

import (
	"errors"
	"time"
)

// ErrNotFound is returned when no result matches the lookup key.
var ErrNotFound = errors.New("exam result not found")

// Result is a graded assessment entry for a student.
type Result struct {
	ID        string     `json:"id"`
	StudentID string     `json:"student_id"`
	ExamName  string     `json:"exam_name"`
	Subject   string     `json:"subject"`
	Grade     string     `json:"grade"`
	Remarks   string     `json:"remarks"`
	ExamDate  *time.Time `json:"exam_date,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}
