package domain

import "time"

// User represents an account that can sign in to the admin panel.
// Passwords are stored as bcrypt hashes only; the hash never serializes.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}

// TokenClaims carries the identity asserted by a verified auth token.
type TokenClaims struct {
	UserID   int64
	Username string
	Role     string
}

// ValidRoles contains all valid user roles.
var ValidRoles = []string{"admin", "editor"}

// IsValidRole checks if a role is valid.
func IsValidRole(role string) bool {
	for _, r := range ValidRoles {
		if r == role {
			return true
		}
	}
	return false
}
