// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"examadda/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to self-register an account.
// An empty Role registers a STUDENT.
type RegisterInput struct {
	Email    string
	Password string
	Role     entity.Role
}

// RegisterInstituteInput defines the data required to register an institute together with its owner.
type RegisterInstituteInput struct {
	Email         string
	Password      string
	OwnerName     string
	Phone         string
	InstituteName string
	Description   *string
}

// RegisterStudentInput defines the data required to register a student into an existing institute.
type RegisterStudentInput struct {
	Email       string
	Password    string
	FullName    string
	Phone       string
	InstituteID uuid.UUID
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// InstituteLoginInput is a login through a tenant portal addressed by slug.
type InstituteLoginInput struct {
	Slug     string
	Email    string
	Password string
}

// --- Output DTOs ---

// AuthOutput is returned by every successful registration and login.
type AuthOutput struct {
	AccessToken string          `json:"accessToken"`
	User        entity.AuthUser `json:"user"`
}

// AuthUsecase coordinates registration, login and tenant-scoped login.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)
	RegisterInstitute(ctx context.Context, input *RegisterInstituteInput) (*AuthOutput, error)
	RegisterStudent(ctx context.Context, input *RegisterStudentInput) (*AuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
	LoginForInstitute(ctx context.Context, input *InstituteLoginInput) (*AuthOutput, error)

	// Logout acknowledges a sign-out. Tokens are stateless, so nothing is revoked.
	Logout(ctx context.Context, principal entity.AuthUser) error
}
