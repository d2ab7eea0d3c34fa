package store

import (
	"context"
	"fmt"

	"go.uber.org/fx"
)

// NewBackend returns the backend selected by the configuration. The mongo
// client, when one is created, is disconnected when the application stops.
func NewBackend[T any](cfg *Config, lifecycle fx.Lifecycle) (Backend[T], error) {
	switch cfg.Backend {
	case BackendFile:
		return NewFileBackend[T](cfg.Path), nil
	case BackendMemory:
		return NewMemoryBackend[T](), nil
	case BackendMongo:
		cs, err := cfg.GetConnectionString()
		if err != nil {
			return nil, err
		}
		client, err := NewClient(cs)
		if err != nil {
			return nil, err
		}
		lifecycle.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return client.Disconnect(ctx)
			},
		})
		db, err := NewDatabase(client, cfg)
		if err != nil {
			return nil, err
		}
		return NewMongoBackend[T](db, cfg.DocumentKey), nil
	default:
		return nil, fmt.Errorf("unsupported store backend %q", cfg.Backend)
	}
}
