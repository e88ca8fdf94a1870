package usecase

import (
	"context"
	"time"

	"examadda/internal/domain/entity"

	"github.com/google/uuid"
)

// PlaceholderUnknown stands in for a related record that could not be loaded.
const PlaceholderUnknown = "N/A"

// UserRef is a compact reference to a user.
type UserRef struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

// InstituteRef is a compact reference to an institute.
type InstituteRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// UserRow is a row of the super-admin user listing.
type UserRow struct {
	ID        uuid.UUID   `json:"id"`
	Email     string      `json:"email"`
	Role      entity.Role `json:"role"`
	CreatedAt time.Time   `json:"createdAt"`
}

// InstituteRow is a row of the super-admin institute listing.
type InstituteRow struct {
	InstituteView
	Owner UserRef `json:"owner"`
}

// StudentRow is a student as seen from a dashboard.
type StudentRow struct {
	ID        uuid.UUID     `json:"id"`
	FullName  string        `json:"fullName"`
	User      UserRef       `json:"user"`
	Institute *InstituteRef `json:"institute,omitempty"`
	CreatedAt time.Time     `json:"createdAt"`
}

// DashboardCounts aggregates record totals.
type DashboardCounts struct {
	Users      int `json:"users"`
	Institutes int `json:"institutes"`
	Students   int `json:"students"`
}

// SuperAdminDashboard lists every tenant and account on the platform.
type SuperAdminDashboard struct {
	Counts     DashboardCounts `json:"counts"`
	Users      []UserRow       `json:"users"`
	Institutes []InstituteRow  `json:"institutes"`
	Students   []StudentRow    `json:"students"`
}

// InstituteDashboard is an owner's view of their institute.
type InstituteDashboard struct {
	Institute *InstituteView `json:"institute"`
	Students  []StudentRow   `json:"students"`
	Counts    struct {
		Students int `json:"students"`
	} `json:"counts"`
}

// StudentDashboard is a student's view of their own profile.
type StudentDashboard struct {
	Profile   StudentRow     `json:"profile"`
	Institute *InstituteView `json:"institute"`
}

// DashboardUsecase serves per-role dashboard summaries.
type DashboardUsecase interface {
	SuperAdmin(ctx context.Context, principal entity.AuthUser) (*SuperAdminDashboard, error)
	Institute(ctx context.Context, principal entity.AuthUser) (*InstituteDashboard, error)
	Student(ctx context.Context, principal entity.AuthUser) (*StudentDashboard, error)
}
