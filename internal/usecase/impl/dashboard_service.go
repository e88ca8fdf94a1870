package impl

import (
	"context"
	"log/slog"

	deliverycontext "examadda/internal/delivery/context"
	"examadda/internal/domain/entity"
	domainerrors "examadda/internal/domain/errors"
	"examadda/internal/domain/repository"
	"examadda/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type dashboardService struct {
	userRepo      repository.UserRepository
	instituteRepo repository.InstituteRepository
	studentRepo   repository.StudentRepository
	logger        *slog.Logger
}

// DashboardServiceParams holds dependencies for DashboardService, injected by Fx.
type DashboardServiceParams struct {
	fx.In

	UserRepo      repository.UserRepository
	InstituteRepo repository.InstituteRepository
	StudentRepo   repository.StudentRepository
	Logger        *slog.Logger
}

// NewDashboardService is the constructor for dashboardService.
func NewDashboardService(params DashboardServiceParams) usecase.DashboardUsecase {
	return &dashboardService{
		userRepo:      params.UserRepo,
		instituteRepo: params.InstituteRepo,
		studentRepo:   params.StudentRepo,
		logger:        params.Logger,
	}
}

func (srv *dashboardService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SuperAdmin summarizes every account, institute and student, newest first.
func (srv *dashboardService) SuperAdmin(ctx context.Context, principal entity.AuthUser) (*usecase.SuperAdminDashboard, error) {
	if err := entity.Authorize(entity.CapabilitySuperAdminDashboard, principal.Role); err != nil {
		return nil, err
	}

	users, err := srv.userRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}
	institutes, err := srv.instituteRepo.ListAll(ctx, repository.OrderNewestFirst)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list institutes")
	}
	students, err := srv.studentRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list students")
	}

	usersByID := indexUsers(users)
	institutesByID := make(map[uuid.UUID]*entity.Institute, len(institutes))

	dash := &usecase.SuperAdminDashboard{
		Counts: usecase.DashboardCounts{
			Users:      len(users),
			Institutes: len(institutes),
			Students:   len(students),
		},
		Users:      make([]usecase.UserRow, 0, len(users)),
		Institutes: make([]usecase.InstituteRow, 0, len(institutes)),
		Students:   make([]usecase.StudentRow, 0, len(students)),
	}

	for _, u := range users {
		dash.Users = append(dash.Users, usecase.UserRow{
			ID:        u.ID,
			Email:     u.Email,
			Role:      u.Role,
			CreatedAt: u.CreatedAt,
		})
	}

	for _, inst := range institutes {
		institutesByID[inst.ID] = inst
		dash.Institutes = append(dash.Institutes, usecase.InstituteRow{
			InstituteView: *usecase.NewInstituteView(inst),
			Owner:         userRef(inst.OwnerID, usersByID),
		})
	}

	for _, s := range students {
		row := studentRow(s, usersByID)
		row.Institute = instituteRef(s.InstituteID, institutesByID)
		dash.Students = append(dash.Students, row)
	}

	srv.log(ctx).Debug("Super admin dashboard built", slog.Any("counts", dash.Counts))

	return dash, nil
}

// Institute lists the students of the caller's institute.
func (srv *dashboardService) Institute(ctx context.Context, principal entity.AuthUser) (*usecase.InstituteDashboard, error) {
	if err := entity.Authorize(entity.CapabilityInstituteDashboard, principal.Role); err != nil {
		return nil, err
	}

	institute, err := srv.instituteRepo.FindByOwnerID(ctx, principal.ID)
	if err != nil {
		return nil, mapInstituteLookupErr(err)
	}

	students, err := srv.studentRepo.ListByInstituteID(ctx, institute.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list institute students")
	}

	ids := make([]uuid.UUID, 0, len(students))
	for _, s := range students {
		ids = append(ids, s.UserID)
	}
	users, err := srv.userRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load student accounts")
	}
	usersByID := indexUsers(users)

	dash := &usecase.InstituteDashboard{
		Institute: usecase.NewInstituteView(institute),
		Students:  make([]usecase.StudentRow, 0, len(students)),
	}
	for _, s := range students {
		dash.Students = append(dash.Students, studentRow(s, usersByID))
	}
	dash.Counts.Students = len(students)

	return dash, nil
}

// Student returns the caller's own profile and institute.
func (srv *dashboardService) Student(ctx context.Context, principal entity.AuthUser) (*usecase.StudentDashboard, error) {
	if err := entity.Authorize(entity.CapabilityStudentDashboard, principal.Role); err != nil {
		return nil, err
	}

	profile, err := srv.studentRepo.FindByUserID(ctx, principal.ID)
	if err != nil {
		if errors.Is(err, repository.ErrStudentProfileNotFound) {
			return nil, errors.WithStack(domainerrors.ErrStudentProfileNotFound)
		}

		return nil, errors.Wrap(err, "failed to load student profile")
	}

	user, err := srv.userRepo.FindByID(ctx, principal.ID)
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to load student account")
	}

	institute, err := srv.instituteRepo.FindByID(ctx, profile.InstituteID)
	if err != nil {
		return nil, mapInstituteLookupErr(err)
	}

	usersByID := map[uuid.UUID]*entity.User{}
	if user != nil {
		usersByID[user.ID] = user
	}

	row := studentRow(profile, usersByID)
	row.Institute = &usecase.InstituteRef{ID: institute.ID, Name: institute.Name}

	return &usecase.StudentDashboard{
		Profile:   row,
		Institute: usecase.NewInstituteView(institute),
	}, nil
}

func indexUsers(users []*entity.User) map[uuid.UUID]*entity.User {
	byID := make(map[uuid.UUID]*entity.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	return byID
}

func userRef(id uuid.UUID, usersByID map[uuid.UUID]*entity.User) usecase.UserRef {
	if u, ok := usersByID[id]; ok {
		return usecase.UserRef{ID: u.ID, Email: u.Email}
	}

	return usecase.UserRef{ID: id, Email: usecase.PlaceholderUnknown}
}

func instituteRef(id uuid.UUID, institutesByID map[uuid.UUID]*entity.Institute) *usecase.InstituteRef {
	if inst, ok := institutesByID[id]; ok {
		return &usecase.InstituteRef{ID: inst.ID, Name: inst.Name}
	}

	return &usecase.InstituteRef{ID: id, Name: usecase.PlaceholderUnknown}
}

func studentRow(s *entity.StudentProfile, usersByID map[uuid.UUID]*entity.User) usecase.StudentRow {
	return usecase.StudentRow{
		ID:        s.UserID,
		FullName:  s.FullName,
		User:      userRef(s.UserID, usersByID),
		CreatedAt: s.CreatedAt,
	}
}
