// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"examadda/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their normalized email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByIDs returns the users that exist among ids, in no particular order.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.User, error)

	// ListAll returns every user, newest first.
	ListAll(ctx context.Context) ([]*entity.User, error)

	// Create persists a new user. A duplicate email yields ErrEmailAlreadyRegistered.
	Create(ctx context.Context, user *entity.User) error

	// DeleteByEmail removes the user with the given email if present.
	DeleteByEmail(ctx context.Context, email string) error
}
