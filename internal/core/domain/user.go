package domain

import "time"

// Role is the closed set of user roles. No other value is accepted at
// the boundary.
type Role string

const (
	RoleViewer Role = "viewer"
	RoleEntry  Role = "entry"
	RoleAdmin  Role = "admin"
)

// IsValid reports whether the role is one of the three accepted values.
func (r Role) IsValid() bool {
	switch r {
	case RoleViewer, RoleEntry, RoleAdmin:
		return true
	}
	return false
}

// User represents an application user. Users are created (by bootstrap
// or an admin) and deleted, never updated in place.
type User struct {
	UserID       int64     `json:"id"`
	Username     string    `json:"username"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}
