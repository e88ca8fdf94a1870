package repository

import (
	"context"
	"errors"

	"examadda/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrStudentProfileNotFound is returned when a user has no student profile.
var ErrStudentProfileNotFound = errors.New("student profile not found")

// StudentRepository persists student profiles.
type StudentRepository interface {
	// Create persists a profile. A missing institute yields ErrInstituteNotFound (domain).
	Create(ctx context.Context, profile *entity.StudentProfile) error

	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.StudentProfile, error)

	// ListByInstituteID returns the institute's students, newest first.
	ListByInstituteID(ctx context.Context, instituteID uuid.UUID) ([]*entity.StudentProfile, error)

	// ListAll returns every student profile, newest first.
	ListAll(ctx context.Context) ([]*entity.StudentProfile, error)
}
