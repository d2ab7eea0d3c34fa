package patients

import "context"

//go:generate go tool mockgen -source=./repo.go -destination=./test/mock_repository.go -package test MockRepository

// Repository keeps every patient in memory and persists the whole collection
// after each mutation. A mutation that cannot be persisted is discarded.
type Repository interface {
	Initialize(ctx context.Context) error
	Get(ctx context.Context, index int) (*Patient, error)
	List(ctx context.Context) ([]Patient, error)
	Create(ctx context.Context, patient Patient) (*Patient, error)
	AddBMIReading(ctx context.Context, index int, reading BMIReading) (*Patient, error)
	AddPressureReading(ctx context.Context, index int, reading PressureReading) (*Patient, error)
	AddGlucoseReading(ctx context.Context, index int, reading GlucoseReading) (*Patient, error)
}
