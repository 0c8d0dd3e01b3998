package students

import (
	"errors"
	"time"
)

// ErrNotFound is returned when no student matches the lookup key.
var ErrNotFound = errors.New("student not found")

// Student is an enrolled child. ParentPhone links the record to the guardian
// login; TeacherID links it to the class teacher.
type Student struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	ClassName   string     `json:"class_name"`
	TeacherID   *string    `json:"teacher_id,omitempty"`
	ParentName  string     `json:"parent_name"`
	ParentPhone string     `json:"parent_phone"`
	CreatedAt   time.Time  `json:"created_at"`
}
