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

type instituteServiceFixtures struct {
	service       usecase.InstituteUsecase
	instituteRepo *mockRepo.MockInstituteRepository
	qrService     *mockSvc.MockQRCodeService
}

func createTestInstituteService(t *testing.T) instituteServiceFixtures {
	fx := instituteServiceFixtures{
		instituteRepo: mockRepo.NewMockInstituteRepository(t),
		qrService:     mockSvc.NewMockQRCodeService(t),
	}
	fx.service = NewInstituteService(InstituteServiceParams{
		InstituteRepo: fx.instituteRepo,
		QRService:     fx.qrService,
		Logger:        newDiscardLogger(),
	})

	return fx
}

func TestInstituteService_Create(t *testing.T) {
	t.Run("derives slug from name", func(t *testing.T) {
		fx := createTestInstituteService(t)
		ctx := context.Background()
		owner := principal(entity.RoleInstitute)

		fx.instituteRepo.EXPECT().FindByOwnerID(ctx, owner.ID).Return(nil, repository.ErrInstituteNotFound)
		fx.instituteRepo.EXPECT().
			Create(ctx, mock.MatchedBy(func(i *entity.Institute) bool {
				return *i.Slug == "sunriseclasses" && i.OwnerID == owner.ID
			})).
			Run(func(ctx context.Context, i *entity.Institute) { i.ID = uuid.New() }).
			Return(nil)

		view, err := fx.service.Create(ctx, owner, &usecase.CreateInstituteInput{Name: "Sunrise Classes"})

		require.NoError(t, err)
		assert.Equal(t, "sunriseclasses", view.Slug)
		assert.Equal(t, owner.ID, view.OwnerID)
	})

	t.Run("owner already has one", func(t *testing.T) {
		fx := createTestInstituteService(t)
		ctx := context.Background()
		owner := principal(entity.RoleInstitute)

		fx.instituteRepo.EXPECT().FindByOwnerID(ctx, owner.ID).Return(&entity.Institute{ID: uuid.New()}, nil)

		_, err := fx.service.Create(ctx, owner, &usecase.CreateInstituteInput{Name: "Second"})

		assert.True(t, errors.Is(err, domainerrors.ErrInstituteAlreadyOwned))
	})

	t.Run("students may not create", func(t *testing.T) {
		fx := createTestInstituteService(t)

		_, err := fx.service.Create(context.Background(), principal(entity.RoleStudent), &usecase.CreateInstituteInput{Name: "Mine"})

		assert.True(t, errors.Is(err, domainerrors.ErrInstituteCreationForbidden))
	})

	t.Run("name without letters or digits", func(t *testing.T) {
		fx := createTestInstituteService(t)

		_, err := fx.service.Create(context.Background(), principal(entity.RoleInstitute), &usecase.CreateInstituteInput{Name: "..."})

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidInstituteName))
	})
}

func TestInstituteService_GetMine(t *testing.T) {
	fx := createTestInstituteService(t)
	ctx := context.Background()
	owner := principal(entity.RoleInstitute)
	stranger := principal(entity.RoleStudent)

	fx.instituteRepo.EXPECT().
		FindByOwnerID(ctx, owner.ID).
		Return(&entity.Institute{ID: uuid.New(), Name: "Legacy Name", OwnerID: owner.ID}, nil)
	fx.instituteRepo.EXPECT().FindByOwnerID(ctx, stranger.ID).Return(nil, repository.ErrInstituteNotFound)

	view, err := fx.service.GetMine(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, "legacyname", view.Slug)

	_, err = fx.service.GetMine(ctx, stranger)
	assert.True(t, errors.Is(err, domainerrors.ErrInstituteNotFound))
}

func TestInstituteService_UpdateMineDetails(t *testing.T) {
	fx := createTestInstituteService(t)
	ctx := context.Background()
	owner := principal(entity.RoleInstitute)
	show := true
	patch := entity.InstituteDetailsPatch{Address: strPtr("12 MG Road"), ShowInfoOnLogin: &show}

	fx.instituteRepo.EXPECT().
		UpdateDetails(ctx, owner.ID, patch).
		Return(&entity.Institute{ID: uuid.New(), Name: "A", Address: strPtr("12 MG Road"), ShowInfoOnLogin: true}, nil)

	view, err := fx.service.UpdateMineDetails(ctx, owner, patch)

	require.NoError(t, err)
	assert.Equal(t, "12 MG Road", *view.Address)
	assert.True(t, view.ShowInfoOnLogin)

	_, err = fx.service.UpdateMineDetails(ctx, principal(entity.RoleSuperAdmin), patch)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestInstituteService_GetPublicBySlug(t *testing.T) {
	fx := createTestInstituteService(t)
	ctx := context.Background()

	hidden := &entity.Institute{ID: uuid.New(), Name: "Hidden", Phone: strPtr("9876543210"), LogoURL: strPtr("https://cdn/logo.png")}
	shown := &entity.Institute{ID: uuid.New(), Name: "Shown", Phone: strPtr("9876543210"), ShowInfoOnLogin: true}

	fx.instituteRepo.EXPECT().FindBySlug(ctx, "hidden").Return(hidden, nil)
	fx.instituteRepo.EXPECT().FindBySlug(ctx, "shown").Return(shown, nil)
	fx.instituteRepo.EXPECT().FindBySlug(ctx, "nobody").Return(nil, repository.ErrInstituteNotFound)

	view, err := fx.service.GetPublicBySlug(ctx, "hidden")
	require.NoError(t, err)
	assert.Nil(t, view.Phone)
	assert.Nil(t, view.LogoURL)

	view, err = fx.service.GetPublicBySlug(ctx, "shown")
	require.NoError(t, err)
	require.NotNil(t, view.Phone)
	assert.Equal(t, "9876543210", *view.Phone)

	_, err = fx.service.GetPublicBySlug(ctx, "nobody")
	assert.True(t, errors.Is(err, domainerrors.ErrInstituteNotFound))
}

func TestInstituteService_ListPublic(t *testing.T) {
	fx := createTestInstituteService(t)
	ctx := context.Background()

	fx.instituteRepo.EXPECT().
		ListAll(ctx, repository.OrderByName).
		Return([]*entity.Institute{
			{ID: uuid.New(), Name: "Alpha", Slug: strPtr("alpha")},
			{ID: uuid.New(), Name: "Beta Classes"},
		}, nil)

	list, err := fx.service.ListPublic(ctx)

	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "alpha", list[0].Slug)
	assert.Equal(t, "betaclasses", list[1].Slug)
}

func TestInstituteService_PortalQRCode(t *testing.T) {
	fx := createTestInstituteService(t)
	ctx := context.Background()

	fx.instituteRepo.EXPECT().FindBySlug(ctx, "Alpha").Return(&entity.Institute{Name: "Alpha", Slug: strPtr("alpha")}, nil)
	fx.qrService.EXPECT().GeneratePortalQR("alpha").Return([]byte{0x89, 0x50}, nil)

	png, err := fx.service.PortalQRCode(ctx, "Alpha")

	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 0x50}, png)
}
