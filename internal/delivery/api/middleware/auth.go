package middleware

import (
	"strings"

	"examadda/internal/delivery/api/response"
	deliverycontext "examadda/internal/delivery/context"
	"examadda/internal/domain/entity"
	domainerrors "examadda/internal/domain/errors"
	"examadda/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware provides middleware for bearer token authentication and capability checks.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate verifies the access token and stores the principal on the request.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return renderAuthError(c, domainerrors.ErrUnauthenticated)
		}

		tokenString, found := strings.CutPrefix(authHeader, bearerPrefix)
		if !found || strings.TrimSpace(tokenString) == "" {
			return renderAuthError(c, domainerrors.ErrUnauthenticated)
		}

		claims, err := m.tokenSvc.Verify(strings.TrimSpace(tokenString))
		if err != nil {
			return renderAuthError(c, domainerrors.ErrInvalidToken)
		}

		deliverycontext.SetPrincipal(c, entity.AuthUser{
			ID:    claims.UserID,
			Email: claims.Email,
			Role:  claims.Role,
		})

		return next(c)
	}
}

// RequireCapability rejects principals whose role does not hold the capability.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireCapability(capability entity.Capability) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, ok := deliverycontext.GetPrincipal(c)
			if !ok {
				return renderAuthError(c, domainerrors.ErrUnauthenticated)
			}

			if !principal.Role.Can(capability) {
				return response.Forbidden(c, domainerrors.ErrForbidden.ErrorCode(), domainerrors.ErrForbidden.Message())
			}

			return next(c)
		}
	}
}

func renderAuthError(c echo.Context, appErr *domainerrors.BaseError) error {
	return response.Unauthorized(c, appErr.ErrorCode(), appErr.Message())
}

// GetPrincipal retrieves the authenticated account from the context.
func GetPrincipal(c echo.Context) (entity.AuthUser, bool) {
	return deliverycontext.GetPrincipal(c)
}
