package postgres

import (
	"context"
	"strings"

	"examadda/internal/domain/entity"
	domainerrors "examadda/internal/domain/errors"
	"examadda/internal/domain/repository"
	"examadda/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// nameSlugExpr normalizes a name in SQL the same way entity.NormalizeSlug does for ASCII input.
const nameSlugExpr = "regexp_replace(lower(name), '[^a-z0-9]+', '', 'g')"

type instituteRepository struct {
	db *gorm.DB
}

// NewInstituteRepository is the constructor for instituteRepository.
func NewInstituteRepository(db *gorm.DB) repository.InstituteRepository {
	return &instituteRepository{db: db}
}

func (repo *instituteRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Institute, error) {
	return repo.take(ctx, "failed to find institute by id", "id = ?", id)
}

func (repo *instituteRepository) FindByOwnerID(ctx context.Context, ownerID uuid.UUID) (*entity.Institute, error) {
	return repo.take(ctx, "failed to find institute by owner", "owner_id = ?", ownerID)
}

func (repo *instituteRepository) FindBySlug(ctx context.Context, slug string) (*entity.Institute, error) {
	normalized := entity.NormalizeSlug(slug)
	if normalized == "" {
		return nil, repository.ErrInstituteNotFound
	}

	inst, err := repo.take(ctx, "failed to find institute by slug", "slug = ?", normalized)
	if !errors.Is(err, repository.ErrInstituteNotFound) {
		return inst, err
	}

	// Rows created before slugs existed are addressed by their normalized name.
	return repo.take(ctx, "failed to find institute by name slug", "slug IS NULL AND "+nameSlugExpr+" = ?", normalized)
}

func (repo *instituteRepository) ListAll(ctx context.Context, order repository.InstituteOrder) ([]*entity.Institute, error) {
	orderBy := "created_at DESC"
	if order == repository.OrderByName {
		orderBy = "name ASC"
	}

	var rows []*model.InstituteModel
	if err := repo.db.WithContext(ctx).Order(orderBy).Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list institutes")
	}

	institutes := make([]*entity.Institute, 0, len(rows))
	for _, row := range rows {
		institutes = append(institutes, toInstituteDomain(row))
	}

	return institutes, nil
}

// Create persists a new institute. The slug is stored normalized.
func (repo *instituteRepository) Create(ctx context.Context, institute *entity.Institute) error {
	if institute.ID == uuid.Nil {
		institute.ID = uuid.New()
	}
	if institute.Slug != nil {
		normalized := entity.NormalizeSlug(*institute.Slug)
		institute.Slug = &normalized
	}
	instM := fromInstituteDomain(institute)

	if err := repo.db.WithContext(ctx).Omit("Owner").Create(instM).Error; err != nil {
		if constraint, ok := uniqueViolation(err); ok {
			return classifyInstituteConflict(constraint)
		}
		if _, ok := foreignKeyViolation(err); ok {
			return domainerrors.ErrUserNotFound.WrapMessage("institute owner does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create institute")
	}

	institute.CreatedAt = instM.CreatedAt
	institute.UpdatedAt = instM.UpdatedAt

	return nil
}

func (repo *instituteRepository) UpdateDetails(ctx context.Context, ownerID uuid.UUID, patch entity.InstituteDetailsPatch) (*entity.Institute, error) {
	current, err := repo.FindByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if patch.IsEmpty() {
		return current, nil
	}

	updates := map[string]any{}
	if patch.LogoURL != nil {
		updates["logo_url"] = *patch.LogoURL
	}
	if patch.Address != nil {
		updates["address"] = *patch.Address
	}
	if patch.Phone != nil {
		updates["phone"] = *patch.Phone
	}
	if patch.ShowInfoOnLogin != nil {
		updates["show_info_on_login"] = *patch.ShowInfoOnLogin
	}

	err = repo.db.WithContext(ctx).
		Model(&model.InstituteModel{}).
		Where("id = ?", current.ID).
		Updates(updates).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to update institute details")
	}

	return repo.FindByID(ctx, current.ID)
}

func (repo *instituteRepository) ResolveTenantScope(ctx context.Context, userID uuid.UUID, role entity.Role) (*entity.TenantScope, error) {
	var inst *entity.Institute
	var err error

	switch role {
	case entity.RoleInstitute:
		inst, err = repo.FindByOwnerID(ctx, userID)
	case entity.RoleStudent:
		var row model.InstituteModel
		err = repo.db.WithContext(ctx).
			Select("institutes.*").
			Joins("JOIN student_profiles sp ON sp.institute_id = institutes.id").
			Where("sp.user_id = ?", userID).
			Take(&row).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTenantScopeNotFound
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to resolve student tenant scope")
		}
		inst = toInstituteDomain(&row)
	default:
		return nil, repository.ErrTenantScopeNotFound
	}

	if errors.Is(err, repository.ErrInstituteNotFound) {
		return nil, repository.ErrTenantScopeNotFound
	}
	if err != nil {
		return nil, err
	}

	return &entity.TenantScope{
		InstituteID:   inst.ID,
		InstituteName: inst.Name,
		InstituteSlug: inst.CanonicalSlug(),
	}, nil
}

func (repo *instituteRepository) take(ctx context.Context, failure string, query string, args ...any) (*entity.Institute, error) {
	var row model.InstituteModel
	if err := repo.db.WithContext(ctx).Where(query, args...).Take(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrInstituteNotFound
		}

		return nil, errors.Wrap(err, failure)
	}

	return toInstituteDomain(&row), nil
}

func classifyInstituteConflict(constraint string) error {
	switch {
	case constraint == model.InstituteSlugIndex || strings.Contains(constraint, "slug"):
		return domainerrors.ErrInstituteSlugTaken.WrapMessage("institute slug already exists")
	case constraint == model.InstituteOwnerIndex || strings.Contains(constraint, "owner"):
		return domainerrors.ErrInstituteAlreadyOwned.WrapMessage("owner already has an institute")
	default:
		return domainerrors.ErrConflict.WrapMessage("institute conflicts with an existing record")
	}
}

// --- Mapper Functions ---

func toInstituteDomain(data *model.InstituteModel) *entity.Institute {
	if data == nil {
		return nil
	}

	return &entity.Institute{
		ID:              data.ID,
		Name:            data.Name,
		Slug:            data.Slug,
		Description:     data.Description,
		OwnerID:         data.OwnerID,
		LogoURL:         data.LogoURL,
		Address:         data.Address,
		Phone:           data.Phone,
		ShowInfoOnLogin: data.ShowInfoOnLogin,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func fromInstituteDomain(data *entity.Institute) *model.InstituteModel {
	if data == nil {
		return nil
	}

	return &model.InstituteModel{
		ID:              data.ID,
		Name:            data.Name,
		Slug:            data.Slug,
		Description:     data.Description,
		OwnerID:         data.OwnerID,
		LogoURL:         data.LogoURL,
		Address:         data.Address,
		Phone:           data.Phone,
		ShowInfoOnLogin: data.ShowInfoOnLogin,
	}
}
