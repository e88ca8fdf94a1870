package router

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"examadda/config"
	"examadda/internal/delivery/api/middleware"
	"examadda/internal/delivery/api/router/handler"
	"examadda/internal/delivery/api/validator"
	"examadda/internal/domain/entity"
	"examadda/internal/domain/service"
	"examadda/internal/infra/metrics"
	mockSvc "examadda/internal/mocks/service"
	mockUC "examadda/internal/mocks/usecase"
	"examadda/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type routerFixtures struct {
	e           *echo.Echo
	tokens      *mockSvc.MockTokenService
	authUC      *mockUC.MockAuthUsecase
	instituteUC *mockUC.MockInstituteUsecase
	dashboardUC *mockUC.MockDashboardUsecase
	userUC      *mockUC.MockUserUsecase
}

func createTestRouter(t *testing.T, m *metrics.Metrics) routerFixtures {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{Metrics: &config.MetricsConfig{Enabled: m != nil}}
	cfg.HTTP.BasePath = "/api"

	fx := routerFixtures{
		e:           echo.New(),
		tokens:      mockSvc.NewMockTokenService(t),
		authUC:      mockUC.NewMockAuthUsecase(t),
		instituteUC: mockUC.NewMockInstituteUsecase(t),
		dashboardUC: mockUC.NewMockDashboardUsecase(t),
		userUC:      mockUC.NewMockUserUsecase(t),
	}
	fx.e.Validator = validator.New()
	fx.e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	r := NewRouter(RouterParams{
		AuthHandler:      handler.NewAuthHandler(handler.AuthHandlerParams{AuthUC: fx.authUC, Metrics: m, Logger: logger}),
		InstituteHandler: handler.NewInstituteHandler(handler.InstituteHandlerParams{InstituteUC: fx.instituteUC, Logger: logger}),
		DashboardHandler: handler.NewDashboardHandler(handler.DashboardHandlerParams{DashboardUC: fx.dashboardUC, Logger: logger}),
		UserHandler:      handler.NewUserHandler(handler.UserHandlerParams{UserUC: fx.userUC, Logger: logger}),
		HealthHandler:    handler.NewHealthHandler(handler.HealthHandlerParams{Config: cfg}),
		AuthMiddleware:   middleware.NewAuthMiddleware(fx.tokens),
		Metrics:          m,
		Config:           cfg,
	})
	r.RegisterRoutes(fx.e)
	r.RegisterMetricsRoute(fx.e)

	return fx
}

// tokenFor makes the token service accept "<role>-token" as that role.
func (fx routerFixtures) tokenFor(role entity.Role) (string, uuid.UUID) {
	id := uuid.New()
	token := role.String() + "-token"
	fx.tokens.EXPECT().Verify(token).Return(&service.Claims{UserID: id, Email: "x@example.com", Role: role}, nil).Maybe()

	return token, id
}

func (fx routerFixtures) do(method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	fx.e.ServeHTTP(rec, req)

	return rec
}

func TestRouter_DashboardCapabilities(t *testing.T) {
	fx := createTestRouter(t, nil)
	adminToken, _ := fx.tokenFor(entity.RoleSuperAdmin)
	ownerToken, _ := fx.tokenFor(entity.RoleInstitute)
	studentToken, _ := fx.tokenFor(entity.RoleStudent)

	fx.dashboardUC.EXPECT().SuperAdmin(mock.Anything, mock.Anything).Return(&usecase.SuperAdminDashboard{}, nil)
	fx.dashboardUC.EXPECT().Institute(mock.Anything, mock.Anything).Return(&usecase.InstituteDashboard{}, nil)
	fx.dashboardUC.EXPECT().Student(mock.Anything, mock.Anything).Return(&usecase.StudentDashboard{}, nil)

	tests := []struct {
		path  string
		token string
		want  int
	}{
		{"/api/dashboard/super-admin", "", http.StatusUnauthorized},
		{"/api/dashboard/super-admin", studentToken, http.StatusForbidden},
		{"/api/dashboard/super-admin", ownerToken, http.StatusForbidden},
		{"/api/dashboard/super-admin", adminToken, http.StatusOK},
		{"/api/dashboard/institute", studentToken, http.StatusForbidden},
		{"/api/dashboard/institute", ownerToken, http.StatusOK},
		{"/api/dashboard/student", adminToken, http.StatusForbidden},
		{"/api/dashboard/student", studentToken, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.path+"/"+tt.token, func(t *testing.T) {
			assert.Equal(t, tt.want, fx.do(http.MethodGet, tt.path, tt.token).Code)
		})
	}
}

func TestRouter_InvalidToken(t *testing.T) {
	fx := createTestRouter(t, nil)
	fx.tokens.EXPECT().Verify("forged").Return(nil, errors.New("signature is invalid"))

	rec := fx.do(http.MethodGet, "/api/institutes/me", "forged")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_TOKEN")
}

func TestRouter_PrincipalReachesUsecase(t *testing.T) {
	fx := createTestRouter(t, nil)
	ownerToken, ownerID := fx.tokenFor(entity.RoleInstitute)

	fx.instituteUC.EXPECT().
		GetMine(mock.Anything, mock.MatchedBy(func(p entity.AuthUser) bool { return p.ID == ownerID })).
		Return(&usecase.InstituteView{ID: uuid.New(), OwnerID: ownerID}, nil)

	assert.Equal(t, http.StatusOK, fx.do(http.MethodGet, "/api/institutes/me", ownerToken).Code)
}

func TestRouter_PublicRoutes(t *testing.T) {
	fx := createTestRouter(t, nil)
	fx.instituteUC.EXPECT().ListPublic(mock.Anything).Return([]usecase.InstituteSummary{}, nil)

	assert.Equal(t, http.StatusOK, fx.do(http.MethodGet, "/api/institutes", "").Code)
	assert.Equal(t, http.StatusOK, fx.do(http.MethodGet, "/health", "").Code)
	assert.Equal(t, http.StatusOK, fx.do(http.MethodGet, "/api", "").Code)
	assert.Equal(t, http.StatusNotFound, fx.do(http.MethodGet, "/metrics", "").Code)
}

func TestRouter_MetricsRoute(t *testing.T) {
	fx := createTestRouter(t, metrics.New())

	rec := fx.do(http.MethodGet, "/metrics", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
