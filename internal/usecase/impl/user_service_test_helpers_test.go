package impl

import (
	"io"
	"log/slog"
	"testing"

	"examadda/internal/domain/entity"
	mockRepo "examadda/internal/mocks/repository"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// txFactory wires a mock RepositoryFactory handing out the given repositories.
// Nil repositories are not expected to be requested.
type txFactory struct {
	factory       *mockRepo.MockRepositoryFactory
	userRepo      *mockRepo.MockUserRepository
	instituteRepo *mockRepo.MockInstituteRepository
	studentRepo   *mockRepo.MockStudentRepository
}

func newTxFactory(t *testing.T) *txFactory {
	return &txFactory{
		factory:       mockRepo.NewMockRepositoryFactory(t),
		userRepo:      mockRepo.NewMockUserRepository(t),
		instituteRepo: mockRepo.NewMockInstituteRepository(t),
		studentRepo:   mockRepo.NewMockStudentRepository(t),
	}
}

func (f *txFactory) withUsers() *txFactory {
	f.factory.EXPECT().UserRepo().Return(f.userRepo)

	return f
}

func (f *txFactory) withInstitutes() *txFactory {
	f.factory.EXPECT().InstituteRepo().Return(f.instituteRepo)

	return f
}

func (f *txFactory) withStudents() *txFactory {
	f.factory.EXPECT().StudentRepo().Return(f.studentRepo)

	return f
}

func principal(role entity.Role) entity.AuthUser {
	return entity.AuthUser{ID: uuid.New(), Email: "caller@example.com", Role: role}
}

func strPtr(s string) *string {
	return &s
}
