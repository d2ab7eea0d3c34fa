package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/tidepool-org/vitals/classify"
	"github.com/tidepool-org/vitals/errors"
	"github.com/tidepool-org/vitals/patients"
)

type service struct {
	logger       *zap.SugaredLogger
	now          func() time.Time
	patientsRepo patients.Repository
}

var _ patients.Service = &service{}

func NewService(repo patients.Repository, logger *zap.SugaredLogger) (patients.Service, error) {
	return NewServiceWithClock(repo, logger, time.Now)
}

// NewServiceWithClock uses now to timestamp new readings.
func NewServiceWithClock(repo patients.Repository, logger *zap.SugaredLogger, now func() time.Time) (patients.Service, error) {
	return &service{
		logger:       logger,
		now:          now,
		patientsRepo: repo,
	}, nil
}

func (s *service) Create(ctx context.Context, profile patients.Profile, password string) (*patients.Patient, error) {
	if profile.Age < 0 {
		return nil, fmt.Errorf("%w: age must not be negative", errors.BadRequest)
	}

	existing, err := s.patientsRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range existing {
		if p.Profile.Name == profile.Name {
			s.logger.Warnw("a patient with the same name already exists, login will resolve to the first one", "name", profile.Name)
			break
		}
	}

	s.logger.Infow("creating patient", "name", profile.Name)
	return s.patientsRepo.Create(ctx, patients.New(profile, password))
}

func (s *service) Get(ctx context.Context, index int) (*patients.Patient, error) {
	return s.patientsRepo.Get(ctx, index)
}

func (s *service) List(ctx context.Context) ([]patients.Patient, error) {
	return s.patientsRepo.List(ctx)
}

func (s *service) RecordBMI(ctx context.Context, index int, measurement patients.BMIMeasurement) (*patients.BMIReading, error) {
	bmi, category, err := classify.BMI(measurement.Weight, measurement.Height)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.BadRequest, err)
	}

	reading := patients.BMIReading{
		Weight:   measurement.Weight,
		Height:   measurement.Height,
		BMI:      bmi,
		Category: category,
		Time:     s.timestamp(),
	}
	if _, err := s.patientsRepo.AddBMIReading(ctx, index, reading); err != nil {
		return nil, err
	}

	s.logger.Infow("recorded bmi reading", "patient", index, "category", category)
	return &reading, nil
}

func (s *service) RecordPressure(ctx context.Context, index int, measurement patients.PressureMeasurement) (*patients.PressureReading, error) {
	if measurement.Systolic < 0 || measurement.Diastolic < 0 {
		return nil, fmt.Errorf("%w: systolic and diastolic pressure must not be negative", errors.BadRequest)
	}

	reading := patients.PressureReading{
		Systolic:  measurement.Systolic,
		Diastolic: measurement.Diastolic,
		Category:  classify.Pressure(measurement.Systolic, measurement.Diastolic),
		Comment:   measurement.Comment,
		Time:      s.timestamp(),
	}
	if _, err := s.patientsRepo.AddPressureReading(ctx, index, reading); err != nil {
		return nil, err
	}

	s.logger.Infow("recorded pressure reading", "patient", index, "category", reading.Category)
	return &reading, nil
}

func (s *service) RecordGlucose(ctx context.Context, index int, measurement patients.GlucoseMeasurement) (*patients.GlucoseReading, error) {
	if !(measurement.Glucose >= 0) || math.IsInf(measurement.Glucose, 0) {
		return nil, fmt.Errorf("%w: glucose must not be negative", errors.BadRequest)
	}

	reading := patients.GlucoseReading{
		Glucose:  measurement.Glucose,
		Category: classify.Glucose(measurement.Glucose),
		Comment:  measurement.Comment,
		Time:     s.timestamp(),
	}
	if _, err := s.patientsRepo.AddGlucoseReading(ctx, index, reading); err != nil {
		return nil, err
	}

	s.logger.Infow("recorded glucose reading", "patient", index, "category", reading.Category)
	return &reading, nil
}

func (s *service) timestamp() string {
	return s.now().Format(patients.TimeLayout)
}
