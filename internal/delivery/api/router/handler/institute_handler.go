package handler

import (
	"log/slog"
	"net/http"

	"examadda/internal/delivery/api/middleware"
	"examadda/internal/delivery/api/response"
	"examadda/internal/domain/entity"
	domainerrors "examadda/internal/domain/errors"
	"examadda/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// InstituteHandlerParams holds dependencies for InstituteHandler, injected by Fx.
type InstituteHandlerParams struct {
	fx.In

	InstituteUC usecase.InstituteUsecase
	Logger      *slog.Logger
}

// InstituteHandler serves institute management and the public tenant lookups.
type InstituteHandler struct {
	instituteUC usecase.InstituteUsecase
	logger      *slog.Logger
}

// NewInstituteHandler is the constructor for InstituteHandler
func NewInstituteHandler(params InstituteHandlerParams) *InstituteHandler {
	return &InstituteHandler{
		instituteUC: params.InstituteUC,
		logger:      params.Logger,
	}
}

// CreateInstituteRequest represents the request body for creating an institute
type CreateInstituteRequest struct {
	Name        string  `json:"name" validate:"required,min=2"`
	Description *string `json:"description,omitempty"`
}

// UpdateInstituteDetailsRequest carries the optional presentation fields.
type UpdateInstituteDetailsRequest struct {
	LogoURL         *string `json:"logoUrl,omitempty" validate:"omitempty,url"`
	Address         *string `json:"address,omitempty"`
	Phone           *string `json:"phone,omitempty" validate:"omitempty,phone"`
	ShowInfoOnLogin *bool   `json:"showInfoOnLogin,omitempty"`
}

// Create handles POST /institutes
func (h *InstituteHandler) Create(c echo.Context) error {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return unauthenticated(c)
	}

	var req CreateInstituteRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	view, err := h.instituteUC.Create(c.Request().Context(), principal, &usecase.CreateInstituteInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, view, "Institute created successfully")
}

// GetMine handles GET /institutes/me
func (h *InstituteHandler) GetMine(c echo.Context) error {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return unauthenticated(c)
	}

	view, err := h.instituteUC.GetMine(c.Request().Context(), principal)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view, "Institute fetched successfully")
}

// UpdateMineDetails handles PATCH /institutes/me/details
func (h *InstituteHandler) UpdateMineDetails(c echo.Context) error {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return unauthenticated(c)
	}

	var req UpdateInstituteDetailsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	view, err := h.instituteUC.UpdateMineDetails(c.Request().Context(), principal, entity.InstituteDetailsPatch{
		LogoURL:         req.LogoURL,
		Address:         req.Address,
		Phone:           req.Phone,
		ShowInfoOnLogin: req.ShowInfoOnLogin,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view, "Institute details updated successfully")
}

// GetBySlug handles GET /institutes/slug/:slug
func (h *InstituteHandler) GetBySlug(c echo.Context) error {
	view, err := h.instituteUC.GetPublicBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view, "Institute fetched successfully")
}

// PortalQRCode handles GET /institutes/slug/:slug/qr and returns a PNG image.
func (h *InstituteHandler) PortalQRCode(c echo.Context) error {
	png, err := h.instituteUC.PortalQRCode(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set("Cache-Control", "public, max-age=3600")

	return c.Blob(http.StatusOK, "image/png", png)
}

// List handles GET /institutes
func (h *InstituteHandler) List(c echo.Context) error {
	list, err := h.instituteUC.ListPublic(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, list, "Institutes fetched successfully")
}

func unauthenticated(c echo.Context) error {
	return response.Unauthorized(c, domainerrors.ErrUnauthenticated.ErrorCode(), domainerrors.ErrUnauthenticated.Message())
}
