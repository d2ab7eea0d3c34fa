package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/labstack/echo/v4"

	"github.com/tidepool-org/vitals/auth"
	"github.com/tidepool-org/vitals/errors"
)

const (
	PatientBasicAuth      = "patientBasicAuth"
	ProfessionalBasicAuth = "professionalBasicAuth"
)

// Authenticated checks that the basic auth middlewares accepted the request
// for the security scheme the operation requires.
func Authenticated(_ context.Context, input *openapi3filter.AuthenticationInput) error {
	authData := auth.GetAuthData(input.RequestValidationInput.Request.Context())
	switch input.SecuritySchemeName {
	case PatientBasicAuth:
		if authData != nil && authData.Patient != nil {
			return nil
		}
	case ProfessionalBasicAuth:
		if authData != nil && authData.Professional {
			return nil
		}
	}
	return echo.NewHTTPError(http.StatusUnauthorized, "missing credentials for "+input.SecuritySchemeName)
}

// RequestValidationError maps request validation failures onto the service errors
func RequestValidationError(_ echo.Context, err *echo.HTTPError) error {
	switch err.Code {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %v", errors.BadRequest, err.Message)
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %v", errors.Unauthorized, err.Message)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %v", errors.NotFound, err.Message)
	default:
		return err
	}
}
