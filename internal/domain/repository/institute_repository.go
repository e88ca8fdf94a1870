package repository

import (
	"context"
	"errors"

	"examadda/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrInstituteNotFound is returned when no institute matches the lookup.
var ErrInstituteNotFound = errors.New("institute not found")

// ErrTenantScopeNotFound is returned when an INSTITUTE or STUDENT account has no institute to bind to.
var ErrTenantScopeNotFound = errors.New("tenant scope not found")

// InstituteRepository persists institutes and resolves tenant scope.
type InstituteRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Institute, error)

	// FindByOwnerID returns the single institute owned by the user.
	FindByOwnerID(ctx context.Context, ownerID uuid.UUID) (*entity.Institute, error)

	// FindBySlug matches the normalized slug against stored slugs, then against
	// names of institutes that have no stored slug.
	FindBySlug(ctx context.Context, slug string) (*entity.Institute, error)

	// ListAll returns every institute ordered by the given field.
	ListAll(ctx context.Context, order InstituteOrder) ([]*entity.Institute, error)

	// Create persists a new institute for its owner. Owner and slug collisions are conflicts.
	Create(ctx context.Context, institute *entity.Institute) error

	// UpdateDetails applies the patch to the institute owned by ownerID and returns the result.
	UpdateDetails(ctx context.Context, ownerID uuid.UUID, patch entity.InstituteDetailsPatch) (*entity.Institute, error)

	// ResolveTenantScope finds the institute a tenant-scoped account belongs to.
	ResolveTenantScope(ctx context.Context, userID uuid.UUID, role entity.Role) (*entity.TenantScope, error)
}

// InstituteOrder selects the listing order for ListAll.
type InstituteOrder int

const (
	// OrderNewestFirst sorts by creation time descending.
	OrderNewestFirst InstituteOrder = iota
	// OrderByName sorts alphabetically by name.
	OrderByName
)
