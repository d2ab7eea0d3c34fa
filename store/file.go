package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const (
	defaultFileMode = fs.FileMode(0o644)
	indent          = "    "
)

// FileBackend keeps the collection as an indented JSON array in a single file.
// Every save rewrites the whole file.
type FileBackend[T any] struct {
	path string
}

var _ Backend[struct{}] = &FileBackend[struct{}]{}

func NewFileBackend[T any](path string) *FileBackend[T] {
	return &FileBackend[T]{path: path}
}

func (f *FileBackend[T]) Path() string {
	return f.path
}

func (f *FileBackend[T]) Load(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []T{}, nil
	} else if err != nil {
		return nil, fmt.Errorf("unable to read %s: %w", f.path, err)
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("unable to parse %s: %w", f.path, err)
	}
	if items == nil {
		items = []T{}
	}

	return items, nil
}

// Save writes to a temporary file next to the target and renames it into
// place, so a failed write leaves the previous contents intact.
func (f *FileBackend[T]) Save(ctx context.Context, items []T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if items == nil {
		items = []T{}
	}

	buf := &bytes.Buffer{}
	encoder := json.NewEncoder(buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", indent)
	if err := encoder.Encode(items); err != nil {
		return fmt.Errorf("unable to encode %s: %w", f.path, err)
	}

	mode := defaultFileMode
	if info, err := os.Stat(f.path); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), "."+filepath.Base(f.path)+".*")
	if err != nil {
		return fmt.Errorf("unable to write %s: %w", f.path, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return fmt.Errorf("unable to write %s: %w", f.path, err)
	}
	if err := tmp.Chmod(mode); err != nil {
		tmp.Close()
		return fmt.Errorf("unable to write %s: %w", f.path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("unable to write %s: %w", f.path, err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("unable to write %s: %w", f.path, err)
	}

	return nil
}
