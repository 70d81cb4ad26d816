package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

const fileFormatVersion = "1.0"

// fileDocument is the on-disk layout of a File store.
type fileDocument struct {
	Version string            `json:"version"`
	Entries map[string]string `json:"entries"`
}

// File persists entries as a single JSON document. Every call re-reads the
// document so edits made by other processes are observed, and every write is
// atomic (temporary file plus rename).
type File struct {
	path string
	mu   sync.Mutex
}

// NewFile creates a File store at path, creating parent directories. The
// document itself is created on first write.
func NewFile(path string) (*File, error) {
	if path == "" {
		return nil, errors.New("store path is required")
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}
	return &File{path: path}, nil
}

// Path returns the document location.
func (f *File) Path() string {
	return f.path
}

// Get implements ports.KVStore.
func (f *File) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	doc, err := f.load()
	if err != nil {
		return "", false, err
	}
	v, ok := doc.Entries[key]
	return v, ok, nil
}

// Set implements ports.KVStore.
func (f *File) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	doc, err := f.load()
	if err != nil {
		return err
	}
	doc.Entries[key] = value
	return f.save(doc)
}

// Delete implements ports.KVStore. Deleting from a missing document is a
// no-op.
func (f *File) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	doc, err := f.load()
	if err != nil {
		return err
	}
	if _, ok := doc.Entries[key]; !ok {
		return nil
	}
	delete(doc.Entries, key)
	return f.save(doc)
}

// Close implements io.Closer.
func (f *File) Close() error {
	return nil
}

// load reads the document. A missing file yields an empty document.
func (f *File) load() (fileDocument, error) {
	doc := fileDocument{Version: fileFormatVersion, Entries: make(map[string]string)}

	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return doc, nil
		}
		return doc, fmt.Errorf("failed to read store: %w", err)
	}

	if err := json.Unmarshal(data, &doc); err != nil {
		return doc, fmt.Errorf("failed to parse store: %w", err)
	}
	if doc.Entries == nil {
		doc.Entries = make(map[string]string)
	}
	return doc, nil
}

// save writes the document atomically.
func (f *File) save(doc fileDocument) error {
	doc.Version = fileFormatVersion
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal store: %w", err)
	}

	// Unique per write so concurrent processes never share a temp file.
	tmp, err := os.CreateTemp(filepath.Dir(f.path), ".settings-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to write temporary file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to write temporary file: %w", err)
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to set store permissions: %w", err)
	}

	if err := os.Rename(tmpPath, f.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}

	return nil
}
