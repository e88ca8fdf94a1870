package impl

import (
	"context"
	"net/http"
	"testing"

	"examadda/internal/domain/entity"
	domainerrors "examadda/internal/domain/errors"
	"examadda/internal/domain/repository"
	"examadda/internal/domain/service"
	mockRepo "examadda/internal/mocks/repository"
	mockSvc "examadda/internal/mocks/service"
	"examadda/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service       usecase.AuthUsecase
	txManager     *mockRepo.MockTransactionManager
	userRepo      *mockRepo.MockUserRepository
	instituteRepo *mockRepo.MockInstituteRepository
	hasher        *mockSvc.MockPasswordHasher
	tokenService  *mockSvc.MockTokenService
	publisher     *mockSvc.MockEventPublisher
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	fx := authServiceFixtures{
		txManager:     mockRepo.NewMockTransactionManager(t),
		userRepo:      mockRepo.NewMockUserRepository(t),
		instituteRepo: mockRepo.NewMockInstituteRepository(t),
		hasher:        mockSvc.NewMockPasswordHasher(t),
		tokenService:  mockSvc.NewMockTokenService(t),
		publisher:     mockSvc.NewMockEventPublisher(t),
	}

	fx.service = NewAuthService(AuthServiceParams{
		TxManager:     fx.txManager,
		UserRepo:      fx.userRepo,
		InstituteRepo: fx.instituteRepo,
		Hasher:        fx.hasher,
		TokenService:  fx.tokenService,
		Publisher:     fx.publisher,
		Logger:        newDiscardLogger(),
	})

	return fx
}

// runInTx makes the mocked transaction manager run fn against the given factory and
// return whatever fn returns, like the real one.
func (fx authServiceFixtures) runInTx(ctx context.Context, tx *txFactory) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(tx.factory)
		})
}

func (fx authServiceFixtures) expectIssue(token string) {
	fx.tokenService.EXPECT().Issue(mock.AnythingOfType("*entity.User")).Return(token, nil)
}

func (fx authServiceFixtures) expectPublish(role entity.Role) {
	fx.publisher.EXPECT().
		PublishAccountEvent(mock.Anything, mock.MatchedBy(func(e *service.AccountEvent) bool {
			return e.Type == service.EventTypeAccountRegistered && e.Role == role.String() && e.EventID != ""
		})).
		Return(nil)
}

func TestAuthService_Register_DefaultsToStudent(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "new@example.com").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash(ctx, "secret123").Return("hashed", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.Email == "new@example.com" && u.Role == entity.RoleStudent && u.PasswordHash == "hashed"
		})).
		Run(func(ctx context.Context, u *entity.User) { u.ID = uuid.New() }).
		Return(nil)
	fx.expectPublish(entity.RoleStudent)
	fx.expectIssue("token")

	output, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Email:    "  New@Example.com ",
		Password: "secret123",
	})

	require.NoError(t, err)
	assert.Equal(t, "token", output.AccessToken)
	assert.Equal(t, "new@example.com", output.User.Email)
	assert.Equal(t, entity.RoleStudent, output.User.Role)
	assert.NotEqual(t, uuid.Nil, output.User.ID)
}

func TestAuthService_Register_SuperAdminForbidden(t *testing.T) {
	fx := createTestAuthService(t)

	_, err := fx.service.Register(context.Background(), &usecase.RegisterInput{
		Email:    "root@example.com",
		Password: "secret123",
		Role:     entity.RoleSuperAdmin,
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrRoleNotAllowed))
}

func TestAuthService_Register_UnknownRole(t *testing.T) {
	fx := createTestAuthService(t)

	_, err := fx.service.Register(context.Background(), &usecase.RegisterInput{
		Email:    "x@example.com",
		Password: "secret123",
		Role:     entity.Role("ADMIN"),
	})

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "taken@example.com").Return(&entity.User{ID: uuid.New()}, nil)

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Email:    "taken@example.com",
		Password: "secret123",
		Role:     entity.RoleInstitute,
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailAlreadyRegistered))
}

func TestAuthService_Register_RaceLostOnInsert(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "race@example.com").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash(ctx, "secret123").Return("hashed", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(domainerrors.ErrEmailAlreadyRegistered.WrapMessage("email already exists"))

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{Email: "race@example.com", Password: "secret123"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailAlreadyRegistered))
}

func TestAuthService_Register_PublishFailureIgnored(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "a@example.com").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash(ctx, "secret123").Return("hashed", nil)
	fx.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	fx.publisher.EXPECT().PublishAccountEvent(mock.Anything, mock.Anything).Return(errors.New("broker down"))
	fx.expectIssue("token")

	output, err := fx.service.Register(ctx, &usecase.RegisterInput{Email: "a@example.com", Password: "secret123"})

	require.NoError(t, err)
	assert.Equal(t, "token", output.AccessToken)
}

func TestAuthService_RegisterInstitute_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	tx := newTxFactory(t).withUsers().withInstitutes()
	ownerID := uuid.New()

	fx.userRepo.EXPECT().FindByEmail(ctx, "owner@example.com").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash(ctx, "secret123").Return("hashed", nil)
	fx.runInTx(ctx, tx)
	tx.userRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.Role == entity.RoleInstitute && u.FullName == "Asha Rao" && u.Phone == "9876543210"
		})).
		Run(func(ctx context.Context, u *entity.User) { u.ID = ownerID }).
		Return(nil)
	tx.instituteRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(i *entity.Institute) bool {
			return i.Name == "Exam Adda!" && i.Slug != nil && *i.Slug == "examadda" && i.OwnerID == ownerID
		})).
		Run(func(ctx context.Context, i *entity.Institute) { i.ID = uuid.New() }).
		Return(nil)
	fx.publisher.EXPECT().
		PublishAccountEvent(mock.Anything, mock.MatchedBy(func(e *service.AccountEvent) bool {
			return e.Role == "INSTITUTE" && e.InstituteID != "" && e.UserID == ownerID.String()
		})).
		Return(nil)
	fx.expectIssue("token")

	output, err := fx.service.RegisterInstitute(ctx, &usecase.RegisterInstituteInput{
		Email:         "owner@example.com",
		Password:      "secret123",
		OwnerName:     " Asha Rao ",
		Phone:         "9876543210",
		InstituteName: " Exam Adda! ",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.RoleInstitute, output.User.Role)
	assert.Equal(t, ownerID, output.User.ID)
}

func TestAuthService_RegisterInstitute_SlugCollisionRollsBack(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	tx := newTxFactory(t).withUsers().withInstitutes()

	fx.userRepo.EXPECT().FindByEmail(ctx, "b@x.com").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash(ctx, "secret123").Return("hashed", nil)
	fx.runInTx(ctx, tx)
	tx.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	tx.instituteRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Institute")).
		Return(domainerrors.ErrInstituteSlugTaken.WrapMessage("institute slug already exists"))

	output, err := fx.service.RegisterInstitute(ctx, &usecase.RegisterInstituteInput{
		Email:         "b@x.com",
		Password:      "secret123",
		OwnerName:     "Owner B",
		Phone:         "9876543210",
		InstituteName: "Exam Adda",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInstituteSlugTaken))
	fx.tokenService.AssertNotCalled(t, "Issue", mock.Anything)
	fx.publisher.AssertNotCalled(t, "PublishAccountEvent", mock.Anything, mock.Anything)
}

func TestAuthService_RegisterInstitute_NameWithoutAlphanumerics(t *testing.T) {
	fx := createTestAuthService(t)

	_, err := fx.service.RegisterInstitute(context.Background(), &usecase.RegisterInstituteInput{
		Email:         "owner@example.com",
		Password:      "secret123",
		OwnerName:     "Owner",
		Phone:         "9876543210",
		InstituteName: "!!! ---",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInstituteName))
}

func TestAuthService_RegisterStudent_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	tx := newTxFactory(t).withInstitutes().withUsers().withStudents()
	instituteID := uuid.New()
	studentID := uuid.New()

	fx.userRepo.EXPECT().FindByEmail(ctx, "kid@example.com").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash(ctx, "secret123").Return("hashed", nil)
	fx.runInTx(ctx, tx)
	tx.instituteRepo.EXPECT().FindByID(ctx, instituteID).Return(&entity.Institute{ID: instituteID}, nil)
	tx.userRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(u *entity.User) bool { return u.Role == entity.RoleStudent })).
		Run(func(ctx context.Context, u *entity.User) { u.ID = studentID }).
		Return(nil)
	tx.studentRepo.EXPECT().
		Create(ctx, &entity.StudentProfile{UserID: studentID, InstituteID: instituteID, FullName: "Ravi Kumar"}).
		Return(nil)
	fx.expectPublish(entity.RoleStudent)
	fx.expectIssue("token")

	output, err := fx.service.RegisterStudent(ctx, &usecase.RegisterStudentInput{
		Email:       "kid@example.com",
		Password:    "secret123",
		FullName:    "Ravi Kumar",
		Phone:       "9876543210",
		InstituteID: instituteID,
	})

	require.NoError(t, err)
	assert.Equal(t, studentID, output.User.ID)
	assert.Equal(t, entity.RoleStudent, output.User.Role)
}

func TestAuthService_RegisterStudent_UnknownInstitute(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	tx := newTxFactory(t).withInstitutes()
	instituteID := uuid.New()

	fx.userRepo.EXPECT().FindByEmail(ctx, "kid@example.com").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash(ctx, "secret123").Return("hashed", nil)
	fx.runInTx(ctx, tx)
	tx.instituteRepo.EXPECT().FindByID(ctx, instituteID).Return(nil, repository.ErrInstituteNotFound)

	_, err := fx.service.RegisterStudent(ctx, &usecase.RegisterStudentInput{
		Email:       "kid@example.com",
		Password:    "secret123",
		FullName:    "Ravi Kumar",
		Phone:       "9876543210",
		InstituteID: instituteID,
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInstituteNotFound))
	tx.userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "a@example.com", PasswordHash: "hashed", Role: entity.RoleInstitute}

	fx.userRepo.EXPECT().FindByEmail(ctx, "a@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check(ctx, "secret123", "hashed").Return(true, nil)
	fx.tokenService.EXPECT().Issue(user).Return("token", nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "A@Example.com", Password: "secret123"})

	require.NoError(t, err)
	assert.Equal(t, "token", output.AccessToken)
	assert.Equal(t, user.ToAuthUser(), output.User)
}

func TestAuthService_Login_TokenIssueFailure(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "a@example.com", PasswordHash: "hashed", Role: entity.RoleStudent}

	fx.userRepo.EXPECT().FindByEmail(ctx, "a@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check(ctx, "secret123", "hashed").Return(true, nil)
	fx.tokenService.EXPECT().Issue(user).Return("", errors.New("key is of invalid type"))

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "a@example.com", Password: "secret123"})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrTokenIssueFailed)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusInternalServerError, appErr.HTTPCode())
	assert.Equal(t, "TOKEN_ISSUE_FAILED", appErr.ErrorCode())
}

func TestAuthService_Login_FailuresAreIndistinguishable(t *testing.T) {
	ctx := context.Background()

	unknown := createTestAuthService(t)
	unknown.userRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)
	unknown.hasher.EXPECT().Check(ctx, "secret123", dummyPasswordHash).Return(false, nil)

	_, errUnknown := unknown.service.Login(ctx, &usecase.LoginInput{Email: "ghost@example.com", Password: "secret123"})

	wrong := createTestAuthService(t)
	wrong.userRepo.EXPECT().
		FindByEmail(ctx, "a@example.com").
		Return(&entity.User{ID: uuid.New(), Email: "a@example.com", PasswordHash: "hashed", Role: entity.RoleStudent}, nil)
	wrong.hasher.EXPECT().Check(ctx, "bad-password", "hashed").Return(false, nil)

	_, errWrong := wrong.service.Login(ctx, &usecase.LoginInput{Email: "a@example.com", Password: "bad-password"})

	require.Error(t, errUnknown)
	require.Error(t, errWrong)
	assert.True(t, errors.Is(errUnknown, domainerrors.ErrInvalidCredentials))
	assert.True(t, errors.Is(errWrong, domainerrors.ErrInvalidCredentials))

	var a, b domainerrors.AppError
	require.True(t, errors.As(errUnknown, &a))
	require.True(t, errors.As(errWrong, &b))
	assert.Equal(t, a.Message(), b.Message())
	assert.Equal(t, a.ErrorCode(), b.ErrorCode())
}

func TestAuthService_Login_HasherCancelled(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "a@example.com").
		Return(&entity.User{ID: uuid.New(), PasswordHash: "hashed", Role: entity.RoleStudent}, nil)
	fx.hasher.EXPECT().Check(ctx, "secret123", "hashed").Return(false, context.Canceled)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "a@example.com", Password: "secret123"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.False(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_LoginForInstitute(t *testing.T) {
	studentID := uuid.New()
	student := &entity.User{ID: studentID, Email: "kid@example.com", PasswordHash: "hashed", Role: entity.RoleStudent}
	scopeA := &entity.TenantScope{InstituteID: uuid.New(), InstituteName: "Alpha Academy", InstituteSlug: "alphaacademy"}

	t.Run("matching slug in any spelling", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByEmail(ctx, "kid@example.com").Return(student, nil)
		fx.hasher.EXPECT().Check(ctx, "secret123", "hashed").Return(true, nil)
		fx.instituteRepo.EXPECT().ResolveTenantScope(ctx, studentID, entity.RoleStudent).Return(scopeA, nil)
		fx.tokenService.EXPECT().Issue(student).Return("token", nil)

		output, err := fx.service.LoginForInstitute(ctx, &usecase.InstituteLoginInput{
			Slug:     "Alpha-Academy",
			Email:    "kid@example.com",
			Password: "secret123",
		})

		require.NoError(t, err)
		assert.Equal(t, "token", output.AccessToken)
	})

	t.Run("other tenant portal", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByEmail(ctx, "kid@example.com").Return(student, nil)
		fx.hasher.EXPECT().Check(ctx, "secret123", "hashed").Return(true, nil)
		fx.instituteRepo.EXPECT().ResolveTenantScope(ctx, studentID, entity.RoleStudent).Return(scopeA, nil)

		_, err := fx.service.LoginForInstitute(ctx, &usecase.InstituteLoginInput{
			Slug:     "beta",
			Email:    "kid@example.com",
			Password: "secret123",
		})

		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidPortalLogin))
	})

	t.Run("account without tenant scope", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByEmail(ctx, "kid@example.com").Return(student, nil)
		fx.hasher.EXPECT().Check(ctx, "secret123", "hashed").Return(true, nil)
		fx.instituteRepo.EXPECT().
			ResolveTenantScope(ctx, studentID, entity.RoleStudent).
			Return(nil, repository.ErrTenantScopeNotFound)

		_, err := fx.service.LoginForInstitute(ctx, &usecase.InstituteLoginInput{
			Slug:     "alphaacademy",
			Email:    "kid@example.com",
			Password: "secret123",
		})

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidPortalLogin))
	})

	t.Run("super admin cannot use a portal", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()
		admin := &entity.User{ID: uuid.New(), Email: "root@example.com", PasswordHash: "hashed", Role: entity.RoleSuperAdmin}

		fx.userRepo.EXPECT().FindByEmail(ctx, "root@example.com").Return(admin, nil)
		fx.hasher.EXPECT().Check(ctx, "secret123", "hashed").Return(true, nil)

		_, err := fx.service.LoginForInstitute(ctx, &usecase.InstituteLoginInput{
			Slug:     "alphaacademy",
			Email:    "root@example.com",
			Password: "secret123",
		})

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidPortalLogin))
		fx.instituteRepo.AssertNotCalled(t, "ResolveTenantScope", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("bad credentials take precedence", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByEmail(ctx, "kid@example.com").Return(student, nil)
		fx.hasher.EXPECT().Check(ctx, "nope", "hashed").Return(false, nil)

		_, err := fx.service.LoginForInstitute(ctx, &usecase.InstituteLoginInput{
			Slug:     "alphaacademy",
			Email:    "kid@example.com",
			Password: "nope",
		})

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	})
}

func TestAuthService_Logout(t *testing.T) {
	fx := createTestAuthService(t)

	require.NoError(t, fx.service.Logout(context.Background(), principal(entity.RoleStudent)))

	err := fx.service.Logout(context.Background(), entity.AuthUser{ID: uuid.New(), Role: entity.Role("GUEST")})
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}
