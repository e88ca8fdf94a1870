package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "examadda/internal/delivery/context"
	"examadda/internal/domain/entity"
	domainerrors "examadda/internal/domain/errors"
	"examadda/internal/domain/repository"
	"examadda/internal/domain/service"
	"examadda/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type instituteService struct {
	instituteRepo repository.InstituteRepository
	qrService     service.QRCodeService
	logger        *slog.Logger
}

// InstituteServiceParams holds dependencies for InstituteService, injected by Fx.
type InstituteServiceParams struct {
	fx.In

	InstituteRepo repository.InstituteRepository
	QRService     service.QRCodeService
	Logger        *slog.Logger
}

// NewInstituteService is the constructor for instituteService.
func NewInstituteService(params InstituteServiceParams) usecase.InstituteUsecase {
	return &instituteService{
		instituteRepo: params.InstituteRepo,
		qrService:     params.QRService,
		logger:        params.Logger,
	}
}

func (srv *instituteService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create registers an institute for an already authenticated owner.
func (srv *instituteService) Create(ctx context.Context, principal entity.AuthUser, input *usecase.CreateInstituteInput) (*usecase.InstituteView, error) {
	if err := entity.Authorize(entity.CapabilityCreateInstitute, principal.Role); err != nil {
		return nil, errors.Wrap(domainerrors.ErrInstituteCreationForbidden, err.Error())
	}

	name := strings.TrimSpace(input.Name)
	slug := entity.NormalizeSlug(name)
	if slug == "" {
		return nil, errors.WithStack(domainerrors.ErrInvalidInstituteName)
	}

	_, err := srv.instituteRepo.FindByOwnerID(ctx, principal.ID)
	switch {
	case err == nil:
		return nil, errors.WithStack(domainerrors.ErrInstituteAlreadyOwned)
	case !errors.Is(err, repository.ErrInstituteNotFound):
		return nil, errors.Wrap(err, "failed to check existing institute")
	}

	institute := &entity.Institute{
		Name:        name,
		Slug:        &slug,
		Description: input.Description,
		OwnerID:     principal.ID,
	}
	if err := srv.instituteRepo.Create(ctx, institute); err != nil {
		srv.log(ctx).Warn("Failed to create institute", slog.Any("ownerID", principal.ID), slog.String("slug", slug), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create institute")
	}

	srv.log(ctx).Info("Institute created", slog.Any("instituteID", institute.ID), slog.String("slug", slug))

	return usecase.NewInstituteView(institute), nil
}

func (srv *instituteService) GetMine(ctx context.Context, principal entity.AuthUser) (*usecase.InstituteView, error) {
	if err := entity.Authorize(entity.CapabilityReadOwnInstitute, principal.Role); err != nil {
		return nil, err
	}

	institute, err := srv.instituteRepo.FindByOwnerID(ctx, principal.ID)
	if err != nil {
		return nil, mapInstituteLookupErr(err)
	}

	return usecase.NewInstituteView(institute), nil
}

// UpdateMineDetails changes only the fields present in the patch.
func (srv *instituteService) UpdateMineDetails(ctx context.Context, principal entity.AuthUser, patch entity.InstituteDetailsPatch) (*usecase.InstituteView, error) {
	if err := entity.Authorize(entity.CapabilityUpdateOwnInstitute, principal.Role); err != nil {
		return nil, err
	}

	institute, err := srv.instituteRepo.UpdateDetails(ctx, principal.ID, patch)
	if err != nil {
		return nil, mapInstituteLookupErr(err)
	}

	srv.log(ctx).Info("Institute details updated", slog.Any("instituteID", institute.ID))

	return usecase.NewInstituteView(institute), nil
}

func (srv *instituteService) GetPublicBySlug(ctx context.Context, slug string) (*usecase.PublicInstituteView, error) {
	institute, err := srv.instituteRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, mapInstituteLookupErr(err)
	}

	return usecase.NewPublicInstituteView(institute), nil
}

func (srv *instituteService) ListPublic(ctx context.Context) ([]usecase.InstituteSummary, error) {
	institutes, err := srv.instituteRepo.ListAll(ctx, repository.OrderByName)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list institutes")
	}

	summaries := make([]usecase.InstituteSummary, 0, len(institutes))
	for _, inst := range institutes {
		summaries = append(summaries, usecase.InstituteSummary{
			ID:   inst.ID,
			Name: inst.Name,
			Slug: inst.CanonicalSlug(),
		})
	}

	return summaries, nil
}

// PortalQRCode renders the login portal of an existing institute.
func (srv *instituteService) PortalQRCode(ctx context.Context, slug string) ([]byte, error) {
	institute, err := srv.instituteRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, mapInstituteLookupErr(err)
	}

	png, err := srv.qrService.GeneratePortalQR(institute.CanonicalSlug())
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInternalError, err.Error())
	}

	return png, nil
}

func mapInstituteLookupErr(err error) error {
	if errors.Is(err, repository.ErrInstituteNotFound) {
		return errors.WithStack(domainerrors.ErrInstituteNotFound)
	}

	return errors.Wrap(err, "failed to load institute")
}
