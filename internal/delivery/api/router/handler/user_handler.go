package handler

import (
	"log/slog"
	"net/http"

	"examadda/internal/delivery/api/middleware"
	"examadda/internal/delivery/api/response"
	"examadda/internal/domain/entity"
	"examadda/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// UserHandler serves administrative account management.
type UserHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// CreateUserRequest lets a super admin create an account with any role.
type CreateUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,role"`
}

// CreateUser handles POST /users
func (h *UserHandler) CreateUser(c echo.Context) error {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return unauthenticated(c)
	}

	var req CreateUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	created, err := h.userUC.CreateUser(c.Request().Context(), principal, &usecase.CreateUserInput{
		Email:    req.Email,
		Password: req.Password,
		Role:     entity.Role(req.Role),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	h.logger.Info("User created by administrator",
		slog.String("created_user_id", created.ID.String()),
		slog.String("role", created.Role.String()),
		slog.String("actor_id", principal.ID.String()),
	)

	return response.Success(c, http.StatusCreated, created, "User created successfully")
}
