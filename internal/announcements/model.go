package announcements

import (
	"errors"
	"time"
)

// Audience values restrict who sees an announcement.
const (
	AudienceAll      = "all"
	AudienceTeachers = "teachers"
	AudienceParents  = "parents"
)

// ErrNotFound is returned when no announcement matches the lookup key.
var ErrNotFound = errors.New("announcement not found")

// Announcement is a school-wide or audience-scoped notice.
type Announcement struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Audience  string    `json:"audience"`
	CreatedAt time.Time `json:"created_at"`
}
