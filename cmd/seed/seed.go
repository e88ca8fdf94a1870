package main

import (
	"context"
	"strings"

	"examadda/internal/domain/entity"
	"examadda/internal/domain/repository"
	"examadda/internal/domain/service"

	"github.com/pkg/errors"
)

const minPasswordLength = 6

var errMissingCredentials = errors.New("email and password are required (flags -email/-password or SEED_EMAIL/SEED_PASSWORD)")

// seedSuperAdmin replaces any account registered under email with a fresh SUPER_ADMIN in one transaction.
// A user that still owns an institute or a student profile cannot be replaced and the transaction rolls back.
func seedSuperAdmin(
	ctx context.Context,
	tm repository.TransactionManager,
	hasher service.PasswordHasher,
	email, password string,
) (*entity.User, error) {
	email = entity.NormalizeEmail(email)
	if email == "" || strings.TrimSpace(password) == "" {
		return nil, errMissingCredentials
	}
	if len(password) < minPasswordLength {
		return nil, errors.Errorf("password must be at least %d characters", minPasswordLength)
	}

	hash, err := hasher.Hash(ctx, password)
	if err != nil {
		return nil, errors.Wrap(err, "hash password")
	}

	user := &entity.User{
		Email:        email,
		PasswordHash: hash,
		Role:         entity.RoleSuperAdmin,
	}

	err = tm.Execute(ctx, func(repos repository.RepositoryFactory) error {
		if err := repos.UserRepo().DeleteByEmail(ctx, email); err != nil {
			return errors.Wrapf(err, "delete existing user %s", email)
		}

		return errors.Wrap(repos.UserRepo().Create(ctx, user), "create super admin")
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}
