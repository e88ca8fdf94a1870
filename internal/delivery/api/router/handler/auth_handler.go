package handler

import (
	"log/slog"
	"net/http"

	"examadda/internal/delivery/api/middleware"
	"examadda/internal/delivery/api/response"
	"examadda/internal/domain/entity"
	domainerrors "examadda/internal/domain/errors"
	"examadda/internal/infra/metrics"
	"examadda/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC  usecase.AuthUsecase
	Metrics *metrics.Metrics `optional:"true"`
	Logger  *slog.Logger
}

// AuthHandler serves registration, login and logout.
type AuthHandler struct {
	authUC  usecase.AuthUsecase
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC:  params.AuthUC,
		metrics: params.Metrics,
		logger:  params.Logger,
	}
}

// RegisterRequest is the body of the generic self-registration endpoint.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role,omitempty" validate:"omitempty,role"`
}

// RegisterInstituteRequest registers an owner account and its institute.
type RegisterInstituteRequest struct {
	Email         string  `json:"email" validate:"required,email"`
	Password      string  `json:"password" validate:"required,min=6"`
	OwnerName     string  `json:"ownerName" validate:"required,min=2"`
	Phone         string  `json:"phone" validate:"required,phone"`
	InstituteName string  `json:"instituteName" validate:"required,min=2"`
	Description   *string `json:"description,omitempty"`
}

// RegisterStudentRequest registers a student into an existing institute.
type RegisterStudentRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	FullName    string `json:"fullName" validate:"required,min=2"`
	Phone       string `json:"phone" validate:"required,phone"`
	InstituteID string `json:"instituteId" validate:"required,uuid"`
}

// LoginRequest is used by both the global and the institute portal login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	out, err := h.authUC.Register(c.Request().Context(), &usecase.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Role:     entity.Role(req.Role),
	})

	return h.respond(c, "register", http.StatusCreated, out, err, "Registration successful")
}

// RegisterInstitute handles POST /auth/register/institute
func (h *AuthHandler) RegisterInstitute(c echo.Context) error {
	var req RegisterInstituteRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	out, err := h.authUC.RegisterInstitute(c.Request().Context(), &usecase.RegisterInstituteInput{
		Email:         req.Email,
		Password:      req.Password,
		OwnerName:     req.OwnerName,
		Phone:         req.Phone,
		InstituteName: req.InstituteName,
		Description:   req.Description,
	})

	return h.respond(c, "register_institute", http.StatusCreated, out, err, "Institute registered successfully")
}

// RegisterStudent handles POST /auth/register/student
func (h *AuthHandler) RegisterStudent(c echo.Context) error {
	var req RegisterStudentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	// Already checked by the uuid rule.
	instituteID := uuid.MustParse(req.InstituteID)

	out, err := h.authUC.RegisterStudent(c.Request().Context(), &usecase.RegisterStudentInput{
		Email:       req.Email,
		Password:    req.Password,
		FullName:    req.FullName,
		Phone:       req.Phone,
		InstituteID: instituteID,
	})

	return h.respond(c, "register_student", http.StatusCreated, out, err, "Student registered successfully")
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	out, err := h.authUC.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})

	return h.respond(c, "login", http.StatusOK, out, err, "Login successful")
}

// LoginForInstitute handles POST /auth/login/institute/:slug
func (h *AuthHandler) LoginForInstitute(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	out, err := h.authUC.LoginForInstitute(c.Request().Context(), &usecase.InstituteLoginInput{
		Slug:     c.Param("slug"),
		Email:    req.Email,
		Password: req.Password,
	})

	return h.respond(c, "login_institute", http.StatusOK, out, err, "Login successful")
}

// Logout handles POST /auth/logout. Tokens are stateless; the client discards its copy.
func (h *AuthHandler) Logout(c echo.Context) error {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return unauthenticated(c)
	}

	if err := h.authUC.Logout(c.Request().Context(), principal); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Logged out successfully")
}

func (h *AuthHandler) respond(c echo.Context, operation string, status int, out *usecase.AuthOutput, err error, message string) error {
	if err != nil {
		h.metrics.ObserveAuth(operation, outcomeOf(err))

		return response.HandleAppError(c, err)
	}

	h.metrics.ObserveAuth(operation, metrics.OutcomeSuccess)

	return response.Success(c, status, out, message)
}

// outcomeOf separates caller mistakes from server faults.
func outcomeOf(err error) string {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) && appErr.HTTPCode() < http.StatusInternalServerError {
		return metrics.OutcomeRejected
	}

	return metrics.OutcomeError
}
