package handler

import (
	"net/http"

	domainerrors "examadda/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

var errMalformedBody = domainerrors.NewBaseError(
	http.StatusBadRequest,
	"INVALID_INPUT",
	"Malformed request body",
	"",
)

// bindAndValidate decodes the request into req and runs the struct validator.
// Validation errors are returned as-is so the error handler can list the offending fields.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return errors.Wrap(errMalformedBody, err.Error())
	}

	return c.Validate(req)
}
