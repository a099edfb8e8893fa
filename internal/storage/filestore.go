package storage

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

// Storage keys. Each key maps to exactly one persisted record.
const (
	KeySessionUser       = "weatherAppUser"
	KeyFavoriteLocations = "favoriteLocations"
	KeyRecentSearches    = "recentSearches"
)

// ErrNotFound is returned when no record exists for a key.
var ErrNotFound = errors.New("no record for key")

// Store is the durable key-value contract the services persist through.
// Records are opaque byte slices; last writer wins, no cross-process
// transaction is attempted.
type Store interface {
	Read(key string) ([]byte, error)
	Write(key string, data []byte) error
	Delete(key string) error
}

// FileStore keeps one human-readable JSON file per key under a data
// directory. It is the local-profile analog of the browser's per-origin
// key-value storage.
type FileStore struct {
	mu  sync.Mutex
	dir string
}

// NewFileStore creates the data directory if needed and returns a store
// rooted at it.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "create data directory")
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(key string) string {
	// Keys are fixed identifiers, but guard against path separators anyway.
	key = strings.ReplaceAll(key, string(os.PathSeparator), "_")
	return filepath.Join(s.dir, key+".json")
}

// Read returns the record for key, or ErrNotFound if absent.
func (s *FileStore) Read(key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrapf(err, "read record %q", key)
	}
	return data, nil
}

// Write replaces the record for key. The write goes through a temp file and
// a rename so a crash never leaves a half-written record behind.
func (s *FileStore) Write(key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	target := s.path(key)
	tmp, err := os.CreateTemp(s.dir, key+"-*.tmp")
	if err != nil {
		return errors.Wrapf(err, "write record %q", key)
	}
	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return errors.Wrapf(err, "write record %q", key)
	}
	if err = tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return errors.Wrapf(err, "write record %q", key)
	}
	if err = os.Rename(tmp.Name(), target); err != nil {
		os.Remove(tmp.Name())
		return errors.Wrapf(err, "write record %q", key)
	}
	return nil
}

// Delete removes the record for key. Deleting an absent record is not an
// error.
func (s *FileStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "delete record %q", key)
	}
	return nil
}
