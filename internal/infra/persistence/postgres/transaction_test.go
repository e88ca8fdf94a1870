package postgres

import (
	"context"
	"regexp"
	"testing"

	domainerrors "examadda/internal/domain/errors"
	"examadda/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var deleteUserSQL = regexp.QuoteMeta(`DELETE FROM "users"`)

func newMockTransactionManager(t *testing.T) (repository.TransactionManager, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: gormlogger.Discard,
	})
	require.NoError(t, err)

	return NewTransactionManager(db), sqlMock
}

func deleteBoth(ctx context.Context) func(repository.RepositoryFactory) error {
	return func(repos repository.RepositoryFactory) error {
		if err := repos.UserRepo().DeleteByEmail(ctx, "first@example.com"); err != nil {
			return err
		}

		return repos.UserRepo().DeleteByEmail(ctx, "second@example.com")
	}
}

func TestTransactionManager_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("commits when every write succeeds", func(t *testing.T) {
		tm, sqlMock := newMockTransactionManager(t)
		sqlMock.ExpectBegin()
		sqlMock.ExpectExec(deleteUserSQL).WithArgs("first@example.com").WillReturnResult(sqlmock.NewResult(0, 1))
		sqlMock.ExpectExec(deleteUserSQL).WithArgs("second@example.com").WillReturnResult(sqlmock.NewResult(0, 1))
		sqlMock.ExpectCommit()

		require.NoError(t, tm.Execute(ctx, deleteBoth(ctx)))
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("rolls back when the second write fails", func(t *testing.T) {
		tm, sqlMock := newMockTransactionManager(t)
		sqlMock.ExpectBegin()
		sqlMock.ExpectExec(deleteUserSQL).WithArgs("first@example.com").WillReturnResult(sqlmock.NewResult(0, 1))
		sqlMock.ExpectExec(deleteUserSQL).WithArgs("second@example.com").WillReturnError(errors.New("connection reset"))
		sqlMock.ExpectRollback()

		err := tm.Execute(ctx, deleteBoth(ctx))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "connection reset")
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("returns the callback error unchanged", func(t *testing.T) {
		tm, sqlMock := newMockTransactionManager(t)
		sqlMock.ExpectBegin()
		sqlMock.ExpectRollback()

		err := tm.Execute(ctx, func(repository.RepositoryFactory) error {
			return domainerrors.ErrInstituteNotFound
		})

		assert.ErrorIs(t, err, domainerrors.ErrInstituteNotFound)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("rolls back and re-panics", func(t *testing.T) {
		tm, sqlMock := newMockTransactionManager(t)
		sqlMock.ExpectBegin()
		sqlMock.ExpectRollback()

		assert.PanicsWithValue(t, "boom", func() {
			_ = tm.Execute(ctx, func(repository.RepositoryFactory) error {
				panic("boom")
			})
		})
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("begin failure", func(t *testing.T) {
		tm, sqlMock := newMockTransactionManager(t)
		sqlMock.ExpectBegin().WillReturnError(errors.New("too many connections"))

		called := false
		err := tm.Execute(ctx, func(repository.RepositoryFactory) error {
			called = true

			return nil
		})

		assert.ErrorIs(t, err, domainerrors.ErrTransactionFailed)
		assert.False(t, called)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("commit failure", func(t *testing.T) {
		tm, sqlMock := newMockTransactionManager(t)
		sqlMock.ExpectBegin()
		sqlMock.ExpectCommit().WillReturnError(errors.New("serialization failure"))

		err := tm.Execute(ctx, func(repository.RepositoryFactory) error { return nil })

		require.ErrorIs(t, err, domainerrors.ErrTransactionFailed)
		assert.Contains(t, err.Error(), "serialization failure")
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})
}
