package postgres

import (
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
	pgCheckViolation      = "23514"
)

func pgError(err error) (*pgconn.PgError, bool) {
	if err == nil {
		return nil, false
	}

	var pgErr *pgconn.PgError
	ok := errors.As(err, &pgErr)

	return pgErr, ok
}

// uniqueViolation reports whether err is a unique violation and, when known, the violated constraint.
func uniqueViolation(err error) (constraint string, ok bool) {
	if pgErr, found := pgError(err); found {
		if pgErr.Code != pgUniqueViolation {
			return "", false
		}

		return strings.ToLower(pgErr.ConstraintName), true
	}

	return "", errors.Is(err, gorm.ErrDuplicatedKey)
}

// foreignKeyViolation reports whether err is a foreign key violation and the violated constraint.
func foreignKeyViolation(err error) (constraint string, ok bool) {
	if pgErr, found := pgError(err); found {
		if pgErr.Code != pgForeignKeyViolation {
			return "", false
		}

		return strings.ToLower(pgErr.ConstraintName), true
	}

	return "", errors.Is(err, gorm.ErrForeignKeyViolated)
}

func isNotNullConstraintViolation(err error) bool {
	if pgErr, found := pgError(err); found {
		return pgErr.Code == pgNotNullViolation
	}

	return false
}

func isCheckConstraintViolation(err error) bool {
	if pgErr, found := pgError(err); found {
		return pgErr.Code == pgCheckViolation
	}

	return errors.Is(err, gorm.ErrCheckConstraintViolated)
}
