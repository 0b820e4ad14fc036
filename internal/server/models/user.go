// Package models contains the persistent data shapes of the SIGA server.
package models

import "time"

// Roles stored on a user record. Authorization beyond the stored string is
// out of scope for this service.
const (
	RoleAdmin = "admin"
	RoleCoach = "coach"
)

// User is a full user record, including the password hash. It never leaves
// the repository/service layer.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	Role         string
	Name         string
	CreatedAt    time.Time
}

// Identity is the sanitized view of a user returned to callers after a
// successful credential check. It deliberately has no hash field.
type Identity struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Name     string `json:"name"`
}

// Identity derives the sanitized view from a full record.
func (u *User) Identity() *Identity {
	return &Identity{ID: u.ID, Username: u.Username, Role: u.Role, Name: u.Name}
}
