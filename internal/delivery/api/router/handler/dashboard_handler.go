package handler

import (
	"log/slog"
	"net/http"

	"examadda/internal/delivery/api/middleware"
	"examadda/internal/delivery/api/response"
	"examadda/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DashboardHandlerParams holds dependencies for DashboardHandler, injected by Fx.
type DashboardHandlerParams struct {
	fx.In

	DashboardUC usecase.DashboardUsecase
	Logger      *slog.Logger
}

// DashboardHandler serves the per-role dashboards.
type DashboardHandler struct {
	dashboardUC usecase.DashboardUsecase
	logger      *slog.Logger
}

// NewDashboardHandler is the constructor for DashboardHandler
func NewDashboardHandler(params DashboardHandlerParams) *DashboardHandler {
	return &DashboardHandler{
		dashboardUC: params.DashboardUC,
		logger:      params.Logger,
	}
}

// SuperAdmin handles GET /dashboard/super-admin
func (h *DashboardHandler) SuperAdmin(c echo.Context) error {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return unauthenticated(c)
	}

	dash, err := h.dashboardUC.SuperAdmin(c.Request().Context(), principal)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, dash, "Super admin dashboard fetched successfully")
}

// Institute handles GET /dashboard/institute
func (h *DashboardHandler) Institute(c echo.Context) error {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return unauthenticated(c)
	}

	dash, err := h.dashboardUC.Institute(c.Request().Context(), principal)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, dash, "Institute dashboard fetched successfully")
}

// Student handles GET /dashboard/student
func (h *DashboardHandler) Student(c echo.Context) error {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return unauthenticated(c)
	}

	dash, err := h.dashboardUC.Student(c.Request().Context(), principal)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, dash, "Student dashboard fetched successfully")
}
