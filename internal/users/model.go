package users

import (
	"errors"
	"time"
)

// Role values form a closed enumeration; anything else is rejected at the door.
const (
	RoleAdmin   = "admin"
	RoleTeacher = "teacher"
	RoleParent  = "parent"
)

// ErrNotFound is returned when no user matches the lookup key.
var ErrNotFound = errors.New("user not found")

// User is a credential-store record. Phone numbers are the natural key used
// by the login flows.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Role      string    `json:"role"`
	Active    bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// ValidRole reports whether role is one of the known enumeration values.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleTeacher, RoleParent:
		return true
	default:
		return false
	}
}
