package api

import (
	"context"
	stdErrors "errors"
	"fmt"
	"net/http"

	"github.com/brpaz/echozap"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	oapiMiddleware "github.com/oapi-codegen/echo-middleware"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/tidepool-org/vitals/auth"
	"github.com/tidepool-org/vitals/config"
	"github.com/tidepool-org/vitals/errors"
	"github.com/tidepool-org/vitals/history"
	"github.com/tidepool-org/vitals/locale"
	"github.com/tidepool-org/vitals/logger"
	"github.com/tidepool-org/vitals/patients"
	patientsRepository "github.com/tidepool-org/vitals/patients/repository"
	patientsService "github.com/tidepool-org/vitals/patients/service"
	"github.com/tidepool-org/vitals/store"
)

func Start(e *echo.Echo, cfg *config.Config, logger *zap.SugaredLogger, lifecycle fx.Lifecycle) {
	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				address := fmt.Sprintf(":%d", cfg.HttpPort)
				if err := e.Start(address); err != nil && !stdErrors.Is(err, http.ErrServerClosed) {
					logger.Errorw("http server stopped", "address", address, "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return e.Shutdown(ctx)
		},
	})
}

func SetReady(healthCheck *HealthCheck, repo patients.Repository, lifecycle fx.Lifecycle) {
	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			// The repository loads the store in its own start hook, which runs
			// before this one because hooks are executed in topological order
			healthCheck.SetReady(true)
			return nil
		},
		OnStop: nil,
	})
}

type ServerParams struct {
	fx.In

	Handler       *Handler
	HealthCheck   *HealthCheck
	Patients      auth.PatientAuthenticator
	Professionals auth.ProfessionalAuthenticator
	Logger        *zap.Logger
}

func NewServer(p ServerParams) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	swagger, err := GetSwagger()
	if err != nil {
		return nil, err
	}

	// Do not validate servers in the open api spec
	swagger.Servers = nil

	// Skip validation and logging for readiness probe
	skipper := RouteSkipper([]string{"/ready"})
	patientAuth := auth.NewPatientAuthMiddleware(p.Patients, auth.AuthMiddlewareOpts{
		Skipper: SkipUnlessPrefix(PatientRoutesPrefix),
	})
	professionalAuth := auth.NewProfessionalAuthMiddleware(p.Professionals, auth.AuthMiddlewareOpts{
		Skipper: SkipUnlessPrefix(ProfessionalRoutesPrefix),
	})
	requestValidator := oapiMiddleware.OapiRequestValidatorWithOptions(swagger, &oapiMiddleware.Options{
		Options: openapi3filter.Options{
			AuthenticationFunc: Authenticated,
		},
		ErrorHandler: RequestValidationError,
		Skipper:      skipper,
	})

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(WithSkipper(skipper, echozap.ZapLogger(p.Logger)))
	e.Use(patientAuth)
	e.Use(professionalAuth)
	e.Use(requestValidator)

	e.HTTPErrorHandler = errors.CustomHTTPErrorHandler

	e.GET("/ready", p.HealthCheck.Ready)
	RegisterHandlers(e, p.Handler)

	return e, nil
}

// Dependencies returns the providers shared by the server and the command line tools
func Dependencies() []fx.Option {
	return []fx.Option{
		fx.Provide(
			config.NewConfig,
			logger.NewProductionLogger,
			logger.Suggar,
			store.NewConfig,
			store.NewBackend[patients.Patient],
			patientsRepository.NewRepository,
			patientsService.NewService,
			auth.NewPasswordMatcher,
			auth.NewPatientAuthenticator,
			auth.NewProfessionalAuthenticator,
			locale.NewPrinter,
			history.NewRenderer,
			NewHealthCheck,
			NewHandler,
			NewServer,
		),
	}
}

func MainLoop() {
	fx.New(
		append(Dependencies(),
			fx.Invoke(SetReady),
			fx.Invoke(Start),
		)...,
	).Run()
}
