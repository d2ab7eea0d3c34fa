package api

import (
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func RouteSkipper(routes []string) middleware.Skipper {
	routesMap := map[string]struct{}{}
	for _, route := range routes {
		routesMap[route] = struct{}{}
	}

	return func(ec echo.Context) bool {
		_, ok := routesMap[ec.Path()]
		return ok
	}
}

// WithSkipper bypasses a middleware that has no skipper of its own.
func WithSkipper(skipper middleware.Skipper, mw echo.MiddlewareFunc) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		wrapped := mw(next)
		return func(ec echo.Context) error {
			if skipper(ec) {
				return next(ec)
			}
			return wrapped(ec)
		}
	}
}

const (
	PatientRoutesPrefix      = "/v1/patients/me"
	ProfessionalRoutesPrefix = "/v1/professional"
)

// SkipUnlessPrefix skips every route outside of prefix.
func SkipUnlessPrefix(prefix string) middleware.Skipper {
	return func(ec echo.Context) bool {
		return !strings.HasPrefix(ec.Path(), prefix)
	}
}
