// Package mapimage handles the store map image: a single binary blob
// kept in file storage and referenced from the preference store by URI.
//
// The map being unavailable is an expected state, not a failure: the
// search and catalog surfaces keep working without it.
package mapimage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ovchar/storenav/internal/store"
)

// ErrUnavailable reports the "map unavailable" state: no URI stored, or
// the stored URI no longer resolves to readable content.
var ErrUnavailable = errors.New("map image unavailable")

// FileStore abstracts the file storage collaborator. The OS
// implementation is used at runtime; tests inject an in-memory fake.
type FileStore interface {
	ReadFile(uri string) ([]byte, error)
	WriteFile(path string, data []byte) (uri string, err error)
}

// OSStore stores files under a base directory on the local filesystem.
// WriteFile returns the absolute path as the URI.
type OSStore struct {
	BaseDir string
}

// ReadFile reads the file at the given URI (an absolute path).
func (s OSStore) ReadFile(uri string) ([]byte, error) {
	data, err := os.ReadFile(uri)
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", uri, err)
	}
	return data, nil
}

// WriteFile writes data under the base directory and returns the
// absolute path as the stored URI.
func (s OSStore) WriteFile(path string, data []byte) (string, error) {
	full := filepath.Join(s.BaseDir, path)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", fmt.Errorf("write %q: %w", path, err)
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return "", fmt.Errorf("write %q: %w", path, err)
	}
	abs, err := filepath.Abs(full)
	if err != nil {
		return "", fmt.Errorf("write %q: %w", path, err)
	}
	return abs, nil
}

// MemStore is an in-memory FileStore for tests.
type MemStore struct {
	Files map[string][]byte
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{Files: make(map[string][]byte)}
}

// ReadFile returns the stored content for uri.
func (s *MemStore) ReadFile(uri string) ([]byte, error) {
	data, ok := s.Files[uri]
	if !ok {
		return nil, fmt.Errorf("read %q: %w", uri, os.ErrNotExist)
	}
	return data, nil
}

// WriteFile stores data under path and returns it unchanged as the URI.
func (s *MemStore) WriteFile(path string, data []byte) (string, error) {
	s.Files[path] = append([]byte(nil), data...)
	return path, nil
}

// Load resolves the configured map image: URI from the preference
// store, content from file storage.
//
// Returns ErrUnavailable (wrapped) when no URI is stored or the content
// cannot be read. Callers treat that as the "map unavailable" state and
// must not fail product or search functionality over it.
func Load(ctx context.Context, prefs store.Prefs, files FileStore) ([]byte, error) {
	uri, ok, err := store.LoadMapImageURI(ctx, prefs)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("no map image configured: %w", ErrUnavailable)
	}

	data, err := files.ReadFile(uri)
	if err != nil {
		return nil, fmt.Errorf("map image %q unreadable: %w", uri, ErrUnavailable)
	}
	return data, nil
}

// Save writes the image to file storage under the given name and
// records the resulting URI in the preference store.
func Save(ctx context.Context, prefs store.Prefs, files FileStore, name string, data []byte) (string, error) {
	uri, err := files.WriteFile(name, data)
	if err != nil {
		return "", fmt.Errorf("store map image: %w", err)
	}
	if err := store.SaveMapImageURI(ctx, prefs, uri); err != nil {
		return "", err
	}
	return uri, nil
}
