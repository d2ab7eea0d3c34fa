package store

import (
	"context"
	"sync"

	"github.com/mohae/deepcopy"
)

// MemoryBackend keeps a private copy of the last saved collection.
type MemoryBackend[T any] struct {
	mu    sync.Mutex
	items []T
	saves int
}

var _ Backend[struct{}] = &MemoryBackend[struct{}]{}

func NewMemoryBackend[T any](items ...T) *MemoryBackend[T] {
	return &MemoryBackend[T]{
		items: copyItems(items),
	}
}

func (m *MemoryBackend[T]) Load(ctx context.Context) ([]T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return copyItems(m.items), nil
}

func (m *MemoryBackend[T]) Save(ctx context.Context, items []T) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.items = copyItems(items)
	m.saves++
	return nil
}

// Saves returns how many times the collection was saved.
func (m *MemoryBackend[T]) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.saves
}

func copyItems[T any](items []T) []T {
	if len(items) == 0 {
		return []T{}
	}
	return deepcopy.Copy(items).([]T)
}
