// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the type of account a user holds in the system.
type Role string

const (
	// RoleSuperAdmin administers every tenant.
	RoleSuperAdmin Role = "SUPER_ADMIN"
	// RoleInstitute owns exactly one institute.
	RoleInstitute Role = "INSTITUTE"
	// RoleStudent belongs to exactly one institute through a student profile.
	RoleStudent Role = "STUDENT"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleSuperAdmin, RoleInstitute, RoleStudent:
		return true
	default:
		return false
	}
}

// IsTenantScoped reports whether accounts with this role belong to a single institute.
func (r Role) IsTenantScoped() bool {
	return r == RoleInstitute || r == RoleStudent
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ToStrings converts Roles to []string.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}
