package store

import (
	"context"
	"time"
)

var (
	ContextTimeout = time.Duration(20) * time.Second
)

//go:generate go tool mockgen -source=./store.go -destination=./test/mock_backend.go -package test MockBackend

// Backend persists a whole collection at once. Load returns an empty,
// non-nil collection when nothing has been saved yet.
type Backend[T any] interface {
	Load(ctx context.Context) ([]T, error)
	Save(ctx context.Context, items []T) error
}
