package models

// User role constants
const (
	RoleAdmin     = "ADMIN"
	RoleLawyer    = "LAWYER"
	RoleAssistant = "ASSISTANT"
)

// User represents a member of the firm. Users are case owners and digest recipients.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// EntityID returns the user identifier
func (u User) EntityID() string { return u.ID }

// Clone returns a copy of the user
func (u User) Clone() User { return u }

// IsValidRole checks if the role is valid
func IsValidRole(role string) bool {
	return contains([]string{RoleAdmin, RoleLawyer, RoleAssistant}, role)
}
