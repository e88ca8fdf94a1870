// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "examadda/internal/delivery/context"
	"examadda/internal/domain/entity"
	domainerrors "examadda/internal/domain/errors"
	"examadda/internal/domain/repository"
	"examadda/internal/domain/service"
	"examadda/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// dummyPasswordHash is compared against when the email is unknown so that a miss
// costs about as much as a wrong password.
const dummyPasswordHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

const publishTimeout = 3 * time.Second

// authService implements the AuthUsecase interface.
type authService struct {
	txManager     repository.TransactionManager
	userRepo      repository.UserRepository
	instituteRepo repository.InstituteRepository
	hasher        service.PasswordHasher
	tokenService  service.TokenService
	publisher     service.EventPublisher
	logger        *slog.Logger
	now           func() time.Time
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	UserRepo      repository.UserRepository
	InstituteRepo repository.InstituteRepository
	Hasher        service.PasswordHasher
	TokenService  service.TokenService
	Publisher     service.EventPublisher
	Logger        *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:     params.TxManager,
		userRepo:      params.UserRepo,
		instituteRepo: params.InstituteRepo,
		hasher:        params.Hasher,
		tokenService:  params.TokenService,
		publisher:     params.Publisher,
		logger:        params.Logger,
		now:           time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a bare account. SUPER_ADMIN cannot be self-registered.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	role := input.Role
	if role == "" {
		role = entity.RoleStudent
	}
	if !role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown role")
	}
	if role == entity.RoleSuperAdmin {
		srv.log(ctx).Warn("Rejected self-registration of privileged role", slog.String("email", input.Email))

		return nil, errors.WithStack(domainerrors.ErrRoleNotAllowed)
	}

	email := entity.NormalizeEmail(input.Email)
	srv.log(ctx).Info("Starting registration", slog.Any("role", role), slog.String("email", email))

	if err := srv.ensureEmailAvailable(ctx, email); err != nil {
		return nil, err
	}

	passwordHash, err := srv.hasher.Hash(ctx, input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	user := &entity.User{
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
	}
	if err := srv.userRepo.Create(ctx, user); err != nil {
		srv.log(ctx).Warn("Failed to create user", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create user during registration")
	}

	srv.publishRegistered(ctx, user, uuid.Nil)

	return srv.issue(ctx, user)
}

// RegisterInstitute creates the owner account and its institute in one transaction.
func (srv *authService) RegisterInstitute(ctx context.Context, input *usecase.RegisterInstituteInput) (*usecase.AuthOutput, error) {
	email := entity.NormalizeEmail(input.Email)
	name := strings.TrimSpace(input.InstituteName)
	slug := entity.NormalizeSlug(name)
	if slug == "" {
		return nil, errors.WithStack(domainerrors.ErrInvalidInstituteName)
	}

	srv.log(ctx).Info("Starting institute registration", slog.String("email", email), slog.String("slug", slug))

	if err := srv.ensureEmailAvailable(ctx, email); err != nil {
		return nil, err
	}

	passwordHash, err := srv.hasher.Hash(ctx, input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password during institute registration")
	}

	user := &entity.User{
		Email:        email,
		PasswordHash: passwordHash,
		Role:         entity.RoleInstitute,
		FullName:     strings.TrimSpace(input.OwnerName),
		Phone:        strings.TrimSpace(input.Phone),
	}
	institute := &entity.Institute{
		Name:        name,
		Slug:        &slug,
		Description: input.Description,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.UserRepo().Create(ctx, user); err != nil {
			return errors.Wrap(err, "failed to create institute owner")
		}

		institute.OwnerID = user.ID
		if err := repoFactory.InstituteRepo().Create(ctx, institute); err != nil {
			return errors.Wrap(err, "failed to create institute")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Institute registration rolled back", slog.String("email", email), slog.String("slug", slug), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute institute registration transaction")
	}

	srv.log(ctx).Debug("Institute registered", slog.Any("userID", user.ID), slog.Any("instituteID", institute.ID))
	srv.publishRegistered(ctx, user, institute.ID)

	return srv.issue(ctx, user)
}

// RegisterStudent creates a student account bound to an existing institute in one transaction.
func (srv *authService) RegisterStudent(ctx context.Context, input *usecase.RegisterStudentInput) (*usecase.AuthOutput, error) {
	email := entity.NormalizeEmail(input.Email)
	srv.log(ctx).Info("Starting student registration", slog.String("email", email), slog.Any("instituteID", input.InstituteID))

	if err := srv.ensureEmailAvailable(ctx, email); err != nil {
		return nil, err
	}

	passwordHash, err := srv.hasher.Hash(ctx, input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password during student registration")
	}

	fullName := strings.TrimSpace(input.FullName)
	user := &entity.User{
		Email:        email,
		PasswordHash: passwordHash,
		Role:         entity.RoleStudent,
		FullName:     fullName,
		Phone:        strings.TrimSpace(input.Phone),
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.InstituteRepo().FindByID(ctx, input.InstituteID); err != nil {
			if errors.Is(err, repository.ErrInstituteNotFound) {
				return errors.WithStack(domainerrors.ErrInstituteNotFound)
			}

			return errors.Wrap(err, "failed to load institute")
		}

		if err := repoFactory.UserRepo().Create(ctx, user); err != nil {
			return errors.Wrap(err, "failed to create student user")
		}

		profile := &entity.StudentProfile{
			UserID:      user.ID,
			InstituteID: input.InstituteID,
			FullName:    fullName,
		}
		if err := repoFactory.StudentRepo().Create(ctx, profile); err != nil {
			return errors.Wrap(err, "failed to create student profile")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Student registration rolled back", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute student registration transaction")
	}

	srv.publishRegistered(ctx, user, input.InstituteID)

	return srv.issue(ctx, user)
}

// Login verifies credentials and issues a token.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	user, err := srv.authenticate(ctx, input.Email, input.Password)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("User logged in", slog.Any("userID", user.ID), slog.Any("role", user.Role))

	return srv.issue(ctx, user)
}

// LoginForInstitute verifies credentials and additionally requires the account to belong
// to the institute addressed by the slug.
func (srv *authService) LoginForInstitute(ctx context.Context, input *usecase.InstituteLoginInput) (*usecase.AuthOutput, error) {
	user, err := srv.authenticate(ctx, input.Email, input.Password)
	if err != nil {
		return nil, err
	}

	if !user.Role.IsTenantScoped() {
		srv.log(ctx).Warn("Portal login by non tenant account", slog.Any("userID", user.ID), slog.Any("role", user.Role))

		return nil, errors.WithStack(domainerrors.ErrInvalidPortalLogin)
	}

	scope, err := srv.instituteRepo.ResolveTenantScope(ctx, user.ID, user.Role)
	if err != nil {
		if errors.Is(err, repository.ErrTenantScopeNotFound) {
			srv.log(ctx).Warn("Portal login without tenant scope", slog.Any("userID", user.ID))

			return nil, errors.WithStack(domainerrors.ErrInvalidPortalLogin)
		}

		return nil, errors.Wrap(err, "failed to resolve tenant scope")
	}

	if !scope.Matches(input.Slug) {
		srv.log(ctx).Warn("Cross-tenant portal login rejected",
			slog.Any("userID", user.ID),
			slog.String("requested", entity.NormalizeSlug(input.Slug)),
			slog.String("resolved", scope.InstituteSlug),
		)

		return nil, errors.WithStack(domainerrors.ErrInvalidPortalLogin)
	}

	return srv.issue(ctx, user)
}

// Logout has no server state to clear.
func (srv *authService) Logout(ctx context.Context, principal entity.AuthUser) error {
	if err := entity.Authorize(entity.CapabilityLogout, principal.Role); err != nil {
		return err
	}

	srv.log(ctx).Debug("User logged out", slog.Any("userID", principal.ID))

	return nil
}

// authenticate collapses "no such user" and "wrong password" into one error.
func (srv *authService) authenticate(ctx context.Context, email, password string) (*entity.User, error) {
	email = entity.NormalizeEmail(email)

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to find user by email")
	}

	hash := dummyPasswordHash
	if user != nil {
		hash = user.PasswordHash
	}

	ok, checkErr := srv.hasher.Check(ctx, password, hash)
	if checkErr != nil {
		return nil, errors.Wrap(checkErr, "failed to verify password")
	}

	if user == nil || !ok {
		srv.log(ctx).Warn("Login failed", slog.String("email", email))

		return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
	}

	return user, nil
}

func (srv *authService) ensureEmailAvailable(ctx context.Context, email string) error {
	_, err := srv.userRepo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		srv.log(ctx).Warn("Email already registered", slog.String("email", email))

		return errors.WithStack(domainerrors.ErrEmailAlreadyRegistered)
	case errors.Is(err, repository.ErrUserNotFound):
		return nil
	default:
		return errors.Wrap(err, "failed to check email availability")
	}
}

func (srv *authService) issue(ctx context.Context, user *entity.User) (*usecase.AuthOutput, error) {
	token, err := srv.tokenService.Issue(user)
	if err != nil {
		srv.log(ctx).Error("Failed to issue access token", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrTokenIssueFailed, err.Error())
	}

	return &usecase.AuthOutput{
		AccessToken: token,
		User:        user.ToAuthUser(),
	}, nil
}

// publishRegistered emits an account event. Failures are logged only.
func (srv *authService) publishRegistered(ctx context.Context, user *entity.User, instituteID uuid.UUID) {
	if srv.publisher == nil {
		return
	}

	event := &service.AccountEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		EventID:    uuid.New().String(),
		Type:       service.EventTypeAccountRegistered,
		UserID:     user.ID.String(),
		Email:      user.Email,
		Role:       user.Role.String(),
		OccurredAt: srv.now().UTC(),
	}
	if instituteID != uuid.Nil {
		event.InstituteID = instituteID.String()
	}

	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	if err := srv.publisher.PublishAccountEvent(pubCtx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish account event",
			slog.String("event_id", event.EventID),
			slog.Any("userID", user.ID),
			slog.Any("error", err),
		)
	}
}
