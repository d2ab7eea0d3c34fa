package auth

import (
	"context"
	"crypto/subtle"
	"fmt"

	"go.uber.org/zap"

	"github.com/tidepool-org/vitals/config"
	"github.com/tidepool-org/vitals/errors"
	"github.com/tidepool-org/vitals/patients"
)

var ErrInvalidCredentials = fmt.Errorf("%w: invalid credentials", errors.Unauthorized)

//go:generate go tool mockgen -source=./authentication.go -destination=./test/mock_authentication.go -package test

// PasswordMatcher compares a stored password with the one provided at login.
type PasswordMatcher interface {
	Matches(stored, provided string) bool
}

// PatientAuthenticator resolves a name and password to the first matching
// patient in store order.
type PatientAuthenticator interface {
	Authenticate(ctx context.Context, name, password string) (*patients.Patient, error)
}

// ProfessionalAuthenticator checks the shared professional password.
type ProfessionalAuthenticator interface {
	Authenticate(ctx context.Context, password string) error
}

// PlaintextMatcher compares passwords as stored, without hashing.
type PlaintextMatcher struct{}

var _ PasswordMatcher = PlaintextMatcher{}

func NewPasswordMatcher() PasswordMatcher {
	return PlaintextMatcher{}
}

func (PlaintextMatcher) Matches(stored, provided string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(provided)) == 1
}

type patientAuthenticator struct {
	logger   *zap.SugaredLogger
	matcher  PasswordMatcher
	patients patients.Service
}

var _ PatientAuthenticator = &patientAuthenticator{}

func NewPatientAuthenticator(service patients.Service, matcher PasswordMatcher, logger *zap.SugaredLogger) PatientAuthenticator {
	return &patientAuthenticator{
		logger:   logger,
		matcher:  matcher,
		patients: service,
	}
}

func (p *patientAuthenticator) Authenticate(ctx context.Context, name, password string) (*patients.Patient, error) {
	list, err := p.patients.List(ctx)
	if err != nil {
		return nil, err
	}

	for i := range list {
		if list[i].Profile.Name == name && p.matcher.Matches(list[i].Password, password) {
			p.logger.Infow("patient logged in", "name", name)
			return &list[i], nil
		}
	}

	p.logger.Infow("failed patient login", "name", name)
	return nil, ErrInvalidCredentials
}

type professionalAuthenticator struct {
	logger   *zap.SugaredLogger
	matcher  PasswordMatcher
	password string
}

var _ ProfessionalAuthenticator = &professionalAuthenticator{}

func NewProfessionalAuthenticator(cfg *config.Config, matcher PasswordMatcher, logger *zap.SugaredLogger) ProfessionalAuthenticator {
	return &professionalAuthenticator{
		logger:   logger,
		matcher:  matcher,
		password: cfg.ProfessionalPassword,
	}
}

func (p *professionalAuthenticator) Authenticate(_ context.Context, password string) error {
	if !p.matcher.Matches(p.password, password) {
		p.logger.Infow("failed professional login")
		return ErrInvalidCredentials
	}

	p.logger.Infow("professional logged in")
	return nil
}
