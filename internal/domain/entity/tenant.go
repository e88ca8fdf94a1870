package entity

import "github.com/google/uuid"

// TenantScope identifies the institute an INSTITUTE or STUDENT account is bound to.
type TenantScope struct {
	InstituteID   uuid.UUID
	InstituteName string
	InstituteSlug string
}

// Matches reports whether the scope belongs to the portal addressed by the given slug.
func (s *TenantScope) Matches(slug string) bool {
	if s == nil {
		return false
	}
	want := NormalizeSlug(slug)

	return want != "" && s.InstituteSlug == want
}
