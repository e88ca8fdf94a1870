package usecase

import (
	"context"

	"examadda/internal/domain/entity"
)

// CreateUserInput defines an administrative account creation. Any role is allowed.
type CreateUserInput struct {
	Email    string
	Password string
	Role     entity.Role
}

// UserUsecase covers administrative user management.
type UserUsecase interface {
	CreateUser(ctx context.Context, principal entity.AuthUser, input *CreateUserInput) (*entity.AuthUser, error)
}
