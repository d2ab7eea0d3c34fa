package repository

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/mohae/deepcopy"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/tidepool-org/vitals/patients"
	"github.com/tidepool-org/vitals/store"
)

type repository struct {
	mu       sync.Mutex
	backend  store.Backend[patients.Patient]
	logger   *zap.SugaredLogger
	patients []patients.Patient
	loaded   bool
}

var _ patients.Repository = &repository{}

func NewRepository(backend store.Backend[patients.Patient], logger *zap.SugaredLogger, lifecycle fx.Lifecycle) (patients.Repository, error) {
	repo := &repository{
		backend: backend,
		logger:  logger,
	}

	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return repo.Initialize(ctx)
		},
	})

	return repo, nil
}

func (r *repository) Initialize(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.load(ctx)
}

func (r *repository) Get(ctx context.Context, index int) (*patients.Patient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	if index < 0 || index >= len(r.patients) {
		return nil, patients.ErrNotFound
	}

	return clone(r.patients[index]), nil
}

func (r *repository) List(ctx context.Context) ([]patients.Patient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	result := make([]patients.Patient, 0, len(r.patients))
	for _, patient := range r.patients {
		result = append(result, *clone(patient))
	}
	return result, nil
}

func (r *repository) Create(ctx context.Context, patient patients.Patient) (*patients.Patient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	created := *clone(patient)
	created.Index = len(r.patients)
	created.EnsureHistories()

	updated := append(slices.Clone(r.patients), created)
	if err := r.save(ctx, updated); err != nil {
		return nil, fmt.Errorf("error creating patient: %w", err)
	}

	return clone(created), nil
}

func (r *repository) AddBMIReading(ctx context.Context, index int, reading patients.BMIReading) (*patients.Patient, error) {
	return r.update(ctx, index, func(patient *patients.Patient) {
		patient.BMIHistory = append(patient.BMIHistory, reading)
	})
}

func (r *repository) AddPressureReading(ctx context.Context, index int, reading patients.PressureReading) (*patients.Patient, error) {
	return r.update(ctx, index, func(patient *patients.Patient) {
		patient.PressureHistory = append(patient.PressureHistory, reading)
	})
}

func (r *repository) AddGlucoseReading(ctx context.Context, index int, reading patients.GlucoseReading) (*patients.Patient, error) {
	return r.update(ctx, index, func(patient *patients.Patient) {
		patient.GlucoseHistory = append(patient.GlucoseHistory, reading)
	})
}

// update applies the mutation to a copy of the patient and only keeps it once
// the whole collection has been saved.
func (r *repository) update(ctx context.Context, index int, mutate func(patient *patients.Patient)) (*patients.Patient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	if index < 0 || index >= len(r.patients) {
		return nil, patients.ErrNotFound
	}

	patient := clone(r.patients[index])
	mutate(patient)

	updated := slices.Clone(r.patients)
	updated[index] = *patient
	if err := r.save(ctx, updated); err != nil {
		return nil, fmt.Errorf("error updating patient: %w", err)
	}

	return clone(*patient), nil
}

func (r *repository) ensureLoaded(ctx context.Context) error {
	if r.loaded {
		return nil
	}
	return r.load(ctx)
}

func (r *repository) load(ctx context.Context) error {
	items, err := r.backend.Load(ctx)
	if err != nil {
		return fmt.Errorf("unable to load patients: %w", err)
	}

	for i := range items {
		items[i].Index = i
		items[i].EnsureHistories()
	}
	r.patients = items
	r.loaded = true

	r.logger.Infow("loaded patients", "count", len(items))
	return nil
}

func (r *repository) save(ctx context.Context, updated []patients.Patient) error {
	if err := r.backend.Save(ctx, updated); err != nil {
		r.logger.Errorw("unable to save patients", "error", err)
		return fmt.Errorf("unable to save patients: %w", err)
	}

	r.patients = updated
	return nil
}

func clone(patient patients.Patient) *patients.Patient {
	c := deepcopy.Copy(patient).(patients.Patient)
	return &c
}
