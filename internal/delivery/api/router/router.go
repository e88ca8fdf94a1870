// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"examadda/config"
	"examadda/internal/delivery/api/middleware"
	"examadda/internal/delivery/api/router/handler"
	"examadda/internal/domain/entity"
	"examadda/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const defaultMetricsPath = "/metrics"

type RouterParams struct {
	fx.In

	AuthHandler      *handler.AuthHandler
	InstituteHandler *handler.InstituteHandler
	DashboardHandler *handler.DashboardHandler
	UserHandler      *handler.UserHandler
	HealthHandler    *handler.HealthHandler
	AuthMiddleware   *middleware.AuthMiddleware
	Metrics          *metrics.Metrics `optional:"true"`
	Config           *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler      *handler.AuthHandler
	instituteHandler *handler.InstituteHandler
	dashboardHandler *handler.DashboardHandler
	userHandler      *handler.UserHandler
	healthHandler    *handler.HealthHandler
	authMiddleware   *middleware.AuthMiddleware
	metrics          *metrics.Metrics
	config           *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:      params.AuthHandler,
		instituteHandler: params.InstituteHandler,
		dashboardHandler: params.DashboardHandler,
		userHandler:      params.UserHandler,
		healthHandler:    params.HealthHandler,
		authMiddleware:   params.AuthMiddleware,
		metrics:          params.Metrics,
		config:           params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Probes stay at the root so orchestrators need not know the base path.
	e.GET("/", r.healthHandler.Root)
	e.GET("/health", r.healthHandler.Health)

	api := e.Group(r.config.HTTP.BasePath)
	api.GET("", r.healthHandler.Root)
	api.GET("/health", r.healthHandler.Health)

	// guard chains authentication with a capability check from the capability table.
	guard := func(c entity.Capability) []echo.MiddlewareFunc {
		return []echo.MiddlewareFunc{r.authMiddleware.Authenticate, r.authMiddleware.RequireCapability(c)}
	}

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/register/institute", r.authHandler.RegisterInstitute)
		authGroup.POST("/register/student", r.authHandler.RegisterStudent)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/login/institute/:slug", r.authHandler.LoginForInstitute)
		authGroup.POST("/logout", r.authHandler.Logout, guard(entity.CapabilityLogout)...)
	}

	usersGroup := api.Group("/users")
	{
		usersGroup.POST("", r.userHandler.CreateUser, guard(entity.CapabilityCreateUser)...)
	}

	institutesGroup := api.Group("/institutes")
	{
		institutesGroup.GET("", r.instituteHandler.List)
		institutesGroup.POST("", r.instituteHandler.Create, guard(entity.CapabilityCreateInstitute)...)
		institutesGroup.GET("/me", r.instituteHandler.GetMine, guard(entity.CapabilityReadOwnInstitute)...)
		institutesGroup.PATCH("/me/details", r.instituteHandler.UpdateMineDetails, guard(entity.CapabilityUpdateOwnInstitute)...)
		institutesGroup.GET("/slug/:slug", r.instituteHandler.GetBySlug)
		institutesGroup.GET("/slug/:slug/qr", r.instituteHandler.PortalQRCode)
	}

	dashboardGroup := api.Group("/dashboard")
	{
		dashboardGroup.GET("/super-admin", r.dashboardHandler.SuperAdmin, guard(entity.CapabilitySuperAdminDashboard)...)
		dashboardGroup.GET("/institute", r.dashboardHandler.Institute, guard(entity.CapabilityInstituteDashboard)...)
		dashboardGroup.GET("/student", r.dashboardHandler.Student, guard(entity.CapabilityStudentDashboard)...)
	}
}

// RegisterMetricsRoute exposes the Prometheus registry when metrics are enabled.
func (r *router) RegisterMetricsRoute(e *echo.Echo) {
	if r.metrics == nil {
		return
	}

	path := defaultMetricsPath
	if r.config.Metrics != nil && r.config.Metrics.Path != "" {
		path = r.config.Metrics.Path
	}

	e.GET(path, echo.WrapHandler(r.metrics.Handler()))
}
