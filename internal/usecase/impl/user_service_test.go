package impl

import (
	"context"
	"testing"

	"examadda/internal/domain/entity"
	domainerrors "examadda/internal/domain/errors"
	"examadda/internal/domain/repository"
	mockRepo "examadda/internal/mocks/repository"
	mockSvc "examadda/internal/mocks/service"
	"examadda/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserService_CreateUser(t *testing.T) {
	newService := func(t *testing.T) (usecase.UserUsecase, *mockRepo.MockUserRepository, *mockSvc.MockPasswordHasher) {
		userRepo := mockRepo.NewMockUserRepository(t)
		hasher := mockSvc.NewMockPasswordHasher(t)

		return NewUserService(UserServiceParams{UserRepo: userRepo, Hasher: hasher, Logger: newDiscardLogger()}), userRepo, hasher
	}

	t.Run("super admin creates another super admin", func(t *testing.T) {
		svc, userRepo, hasher := newService(t)
		ctx := context.Background()

		userRepo.EXPECT().FindByEmail(ctx, "ops@example.com").Return(nil, repository.ErrUserNotFound)
		hasher.EXPECT().Hash(ctx, "secret123").Return("hashed", nil)
		userRepo.EXPECT().
			Create(ctx, mock.MatchedBy(func(u *entity.User) bool { return u.Role == entity.RoleSuperAdmin })).
			Run(func(ctx context.Context, u *entity.User) { u.ID = uuid.New() }).
			Return(nil)

		created, err := svc.CreateUser(ctx, principal(entity.RoleSuperAdmin), &usecase.CreateUserInput{
			Email:    "OPS@example.com",
			Password: "secret123",
			Role:     entity.RoleSuperAdmin,
		})

		require.NoError(t, err)
		assert.Equal(t, "ops@example.com", created.Email)
		assert.Equal(t, entity.RoleSuperAdmin, created.Role)
	})

	t.Run("institute owner is forbidden", func(t *testing.T) {
		svc, _, _ := newService(t)

		_, err := svc.CreateUser(context.Background(), principal(entity.RoleInstitute), &usecase.CreateUserInput{
			Email:    "x@example.com",
			Password: "secret123",
			Role:     entity.RoleStudent,
		})

		assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
	})

	t.Run("email taken", func(t *testing.T) {
		svc, userRepo, _ := newService(t)
		ctx := context.Background()

		userRepo.EXPECT().FindByEmail(ctx, "x@example.com").Return(&entity.User{}, nil)

		_, err := svc.CreateUser(ctx, principal(entity.RoleSuperAdmin), &usecase.CreateUserInput{
			Email:    "x@example.com",
			Password: "secret123",
			Role:     entity.RoleStudent,
		})

		assert.True(t, errors.Is(err, domainerrors.ErrEmailAlreadyRegistered))
	})
}
