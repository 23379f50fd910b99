package domain

import "time"

const (
	// RoleAdmin gates the /admin surface.
	RoleAdmin = "admin"
	// DefaultRole is assigned to every newly registered account.
	DefaultRole = "user"
)

// User models an account in the system. PasswordHash is never serialized
// to JSON; API responses carry the profile fields only.
type User struct {
	ID           string    `json:"id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Roles        []string  `json:"roles"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// HasAnyRole reports whether the user holds at least one of the given roles.
func (u *User) HasAnyRole(roles ...string) bool {
	for _, want := range roles {
		for _, have := range u.Roles {
			if have == want {
				return true
			}
		}
	}
	return false
}
