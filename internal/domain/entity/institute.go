package entity

import (
	"time"

	"github.com/google/uuid"
)

// Institute is a tenant of the platform, owned by exactly one INSTITUTE account.
type Institute struct {
	ID              uuid.UUID
	Name            string
	Slug            *string // nil for legacy rows created before slugs existed
	Description     *string
	OwnerID         uuid.UUID
	LogoURL         *string
	Address         *string
	Phone           *string
	ShowInfoOnLogin bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// CanonicalSlug returns the stored slug, or the slug derived from the name when none is stored.
func (i *Institute) CanonicalSlug() string {
	if i.Slug != nil && *i.Slug != "" {
		return NormalizeSlug(*i.Slug)
	}

	return NormalizeSlug(i.Name)
}

// InstituteDetailsPatch carries the optional presentation fields an owner may change.
// Nil fields are left untouched.
type InstituteDetailsPatch struct {
	LogoURL         *string
	Address         *string
	Phone           *string
	ShowInfoOnLogin *bool
}

// IsEmpty reports whether the patch changes nothing.
func (p InstituteDetailsPatch) IsEmpty() bool {
	return p.LogoURL == nil && p.Address == nil && p.Phone == nil && p.ShowInfoOnLogin == nil
}

// Apply copies the provided fields onto the institute.
func (p InstituteDetailsPatch) Apply(i *Institute) {
	if p.LogoURL != nil {
		i.LogoURL = p.LogoURL
	}
	if p.Address != nil {
		i.Address = p.Address
	}
	if p.Phone != nil {
		i.Phone = p.Phone
	}
	if p.ShowInfoOnLogin != nil {
		i.ShowInfoOnLogin = *p.ShowInfoOnLogin
	}
}
