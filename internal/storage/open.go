package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/alexisbeaulieu97/navshell/internal/ports"
)

// Supported backend names.
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Store is a KVStore that owns resources.
type Store interface {
	ports.KVStore
	io.Closer
}

// Open constructs the named backend. path is ignored by the memory backend.
func Open(ctx context.Context, backend, path string) (Store, error) {
	switch backend {
	case BackendMemory:
		return NewMemory(), nil
	case BackendFile, "":
		return NewFile(path)
	case BackendSQLite:
		return OpenSQLite(ctx, path)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}

var (
	_ Store = (*Memory)(nil)
	_ Store = (*File)(nil)
	_ Store = (*SQLite)(nil)
)
