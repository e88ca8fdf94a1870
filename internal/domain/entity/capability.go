package entity

import (
	domainerrors "examadda/internal/domain/errors"

	"github.com/pkg/errors"
)

// Capability names a protected operation.
type Capability string

const (
	CapabilityLogout              Capability = "auth.logout"
	CapabilityCreateUser          Capability = "users.create"
	CapabilityCreateInstitute     Capability = "institutes.create"
	CapabilityReadOwnInstitute    Capability = "institutes.read_own"
	CapabilityUpdateOwnInstitute  Capability = "institutes.update_own"
	CapabilitySuperAdminDashboard Capability = "dashboard.super_admin"
	CapabilityInstituteDashboard  Capability = "dashboard.institute"
	CapabilityStudentDashboard    Capability = "dashboard.student"
)

// capabilities is the single source of truth for which roles may perform which operation.
var capabilities = map[Capability]Roles{
	CapabilityLogout:              {RoleSuperAdmin, RoleInstitute, RoleStudent},
	CapabilityCreateUser:          {RoleSuperAdmin},
	CapabilityCreateInstitute:     {RoleInstitute, RoleSuperAdmin},
	CapabilityReadOwnInstitute:    {RoleSuperAdmin, RoleInstitute, RoleStudent},
	CapabilityUpdateOwnInstitute:  {RoleInstitute},
	CapabilitySuperAdminDashboard: {RoleSuperAdmin},
	CapabilityInstituteDashboard:  {RoleInstitute},
	CapabilityStudentDashboard:    {RoleStudent},
}

// AllowedRoles returns a copy of the roles granted a capability. Unknown capabilities grant nobody.
func AllowedRoles(c Capability) Roles {
	return append(Roles(nil), capabilities[c]...)
}

// Can reports whether role holds capability c.
func (r Role) Can(c Capability) bool {
	return capabilities[c].Contains(r)
}

// Capabilities lists every capability held by the role.
func (r Role) Capabilities() []Capability {
	var held []Capability
	for c, roles := range capabilities {
		if roles.Contains(r) {
			held = append(held, c)
		}
	}

	return held
}

// Authorize returns a forbidden error unless role holds capability c.
func Authorize(c Capability, role Role) error {
	if role.Can(c) {
		return nil
	}

	return errors.Wrapf(domainerrors.ErrForbidden, "role %q lacks capability %q", role, c)
}
