package handler

import (
	"github.com/labstack/echo/v4"

	apperrors "learnhub/internal/errors"
)

// domainError maps a service error to an echo HTTP error with the standard
// {error, code} body.
func domainError(err error) *echo.HTTPError {
	he := apperrors.MapErrorToHTTP(err)
	return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
}
