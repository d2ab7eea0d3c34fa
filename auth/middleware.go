package auth

import (
	"context"
	stdErrors "errors"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/tidepool-org/vitals/patients"
)

var AuthContextKey = AuthKey("auth")

type AuthKey string

// Auth describes who made the request. Patient is nil for professionals.
type Auth struct {
	Patient      *patients.Patient
	Professional bool
}

type AuthMiddlewareOpts struct {
	Skipper middleware.Skipper
}

// NewPatientAuthMiddleware checks the basic auth name and password of every
// request against the stored patients.
func NewPatientAuthMiddleware(authenticator PatientAuthenticator, opts AuthMiddlewareOpts) echo.MiddlewareFunc {
	return middleware.BasicAuthWithConfig(middleware.BasicAuthConfig{
		Skipper: opts.Skipper,
		Realm:   "patients",
		Validator: func(name, password string, c echo.Context) (bool, error) {
			patient, err := authenticator.Authenticate(c.Request().Context(), name, password)
			if stdErrors.Is(err, ErrInvalidCredentials) {
				return false, nil
			} else if err != nil {
				return false, err
			}

			SetAuthData(c, &Auth{Patient: patient})
			return true, nil
		},
	})
}

// NewProfessionalAuthMiddleware checks the basic auth password of every
// request against the shared professional password. The user name is ignored.
func NewProfessionalAuthMiddleware(authenticator ProfessionalAuthenticator, opts AuthMiddlewareOpts) echo.MiddlewareFunc {
	return middleware.BasicAuthWithConfig(middleware.BasicAuthConfig{
		Skipper: opts.Skipper,
		Realm:   "professionals",
		Validator: func(_, password string, c echo.Context) (bool, error) {
			err := authenticator.Authenticate(c.Request().Context(), password)
			if stdErrors.Is(err, ErrInvalidCredentials) {
				return false, nil
			} else if err != nil {
				return false, err
			}

			SetAuthData(c, &Auth{Professional: true})
			return true, nil
		},
	})
}

func GetAuthData(ctx context.Context) *Auth {
	if auth, ok := ctx.Value(AuthContextKey).(*Auth); ok {
		return auth
	}

	return nil
}

func SetAuthData(ec echo.Context, auth *Auth) {
	ctx := context.WithValue(ec.Request().Context(), AuthContextKey, auth)
	ec.SetRequest(ec.Request().WithContext(ctx))
}
