// Package kv is the local key-value persistence used for favorites.
package kv

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by Get for unknown keys
var ErrNotFound = errors.New("key not found")

// Store is a small string-keyed byte store
type Store interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Close() error
}

// Open returns the store for backend ("file", "sqlite" or "memory")
func Open(backend, path string) (Store, error) {
	switch backend {
	case "file", "":
		return NewFileStore(path), nil
	case "sqlite":
		return OpenSQLite(path)
	case "memory":
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}
