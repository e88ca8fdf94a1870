package postgres

import (
	"context"

	"examadda/internal/domain/entity"
	domainerrors "examadda/internal/domain/errors"
	"examadda/internal/domain/repository"
	"examadda/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type studentRepository struct {
	db *gorm.DB
}

// NewStudentRepository is the constructor for studentRepository.
func NewStudentRepository(db *gorm.DB) repository.StudentRepository {
	return &studentRepository{db: db}
}

// Create persists a student profile. A dangling institute reference is reported as not found.
func (repo *studentRepository) Create(ctx context.Context, profile *entity.StudentProfile) error {
	row := &model.StudentProfileModel{
		UserID:      profile.UserID,
		InstituteID: profile.InstituteID,
		FullName:    profile.FullName,
	}

	if err := repo.db.WithContext(ctx).Omit("User", "Institute").Create(row).Error; err != nil {
		if _, ok := foreignKeyViolation(err); ok {
			return domainerrors.ErrInstituteNotFound.WrapMessage("student profile references a missing institute")
		}
		if _, ok := uniqueViolation(err); ok {
			return domainerrors.ErrConflict.WrapMessage("student profile already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create student profile")
	}

	profile.CreatedAt = row.CreatedAt
	profile.UpdatedAt = row.UpdatedAt

	return nil
}

func (repo *studentRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.StudentProfile, error) {
	var row model.StudentProfileModel
	if err := repo.db.WithContext(ctx).Where("user_id = ?", userID).Take(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStudentProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find student profile")
	}

	return toStudentDomain(&row), nil
}

func (repo *studentRepository) ListByInstituteID(ctx context.Context, instituteID uuid.UUID) ([]*entity.StudentProfile, error) {
	var rows []*model.StudentProfileModel
	err := repo.db.WithContext(ctx).
		Where("institute_id = ?", instituteID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list institute students")
	}

	return toStudentsDomain(rows), nil
}

func (repo *studentRepository) ListAll(ctx context.Context) ([]*entity.StudentProfile, error) {
	var rows []*model.StudentProfileModel
	if err := repo.db.WithContext(ctx).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list students")
	}

	return toStudentsDomain(rows), nil
}

func toStudentDomain(data *model.StudentProfileModel) *entity.StudentProfile {
	return &entity.StudentProfile{
		UserID:      data.UserID,
		InstituteID: data.InstituteID,
		FullName:    data.FullName,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func toStudentsDomain(rows []*model.StudentProfileModel) []*entity.StudentProfile {
	profiles := make([]*entity.StudentProfile, 0, len(rows))
	for _, row := range rows {
		profiles = append(profiles, toStudentDomain(row))
	}

	return profiles
}
