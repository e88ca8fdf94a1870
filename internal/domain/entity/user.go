// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is an account able to sign in. The role is fixed at creation.
type User struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Email        string    // Login identifier, unique across every role.
	PasswordHash string    // bcrypt hash; the plaintext is never stored.
	Role         Role      // SUPER_ADMIN, INSTITUTE or STUDENT.
	FullName     string    // Display name; owner name for institute accounts.
	Phone        string    // Optional contact number.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NormalizeEmail trims and lower-cases an email so lookups and uniqueness are case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// AuthUser is the public projection of a user returned alongside a token.
type AuthUser struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Role  Role      `json:"role"`
}

// ToAuthUser strips everything but the identity fields.
func (u *User) ToAuthUser() AuthUser {
	return AuthUser{ID: u.ID, Email: u.Email, Role: u.Role}
}
