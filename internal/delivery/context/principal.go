package context

import (
	"examadda/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// SetPrincipal stores the authenticated account for downstream handlers.
func SetPrincipal(c echo.Context, principal entity.AuthUser) {
	c.Set(echoPrincipalKey, principal)
}

// GetPrincipal returns the account set by the authentication middleware.
func GetPrincipal(c echo.Context) (entity.AuthUser, bool) {
	principal, ok := c.Get(echoPrincipalKey).(entity.AuthUser)

	return principal, ok
}
