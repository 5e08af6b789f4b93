package domain

import "time"

// Role is the coarse capability attached to an authenticated user.
type Role string

const (
	// RoleAdmin may read and mutate the document.
	RoleAdmin Role = "admin"
	// RoleViewer may only read the document.
	RoleViewer Role = "viewer"
)

// IsValid returns true if the role is known.
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleViewer
}

// String returns the role name.
func (r Role) String() string {
	return string(r)
}

// CanEdit reports whether the role is allowed to mutate the document.
func (r Role) CanEdit() bool {
	return r == RoleAdmin
}

// User is an account known to the access gate.
type User struct {
	Username string
	Name     string
	Role     Role
}

// Credential pairs a user with its bcrypt password hash.
type Credential struct {
	User         User
	PasswordHash string
}

// Session is the result of a successful login. It only lives for the
// lifetime of the process.
type Session struct {
	ID        string
	User      User
	StartedAt time.Time
}

// CanEdit is shorthand for s.User.Role.CanEdit.
func (s *Session) CanEdit() bool {
	return s != nil && s.User.Role.CanEdit()
}
