// Package devicestore is a small string key value store kept on the
// machine running the service. Nothing in it is ever synced anywhere.
package devicestore

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/2beens/fitjournal/pkg"
)

type Store interface {
	// GetItem returns the value under key, and false when there is none.
	GetItem(ctx context.Context, key string) (string, bool, error)
	SetItem(ctx context.Context, key, value string) error
	RemoveItem(ctx context.Context, key string) error
}

// FileStore keeps one file per key under a directory.
type FileStore struct {
	dir   string
	mutex sync.RWMutex
}

func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		return nil, errors.New("device store dir cannot be empty")
	}
	exists, err := pkg.PathExists(dir, true)
	if err != nil {
		return nil, fmt.Errorf("device store dir: %w", err)
	}
	if !exists {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("create device store dir: %w", err)
		}
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) keyPath(key string) string {
	return filepath.Join(s.dir, base64.RawURLEncoding.EncodeToString([]byte(key))+".json")
}

func (s *FileStore) GetItem(_ context.Context, key string) (string, bool, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	data, err := os.ReadFile(s.keyPath(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("read item [%s]: %w", key, err)
	}
	return string(data), true, nil
}

// SetItem writes to a temp file first, so a crash never leaves a half
// written value behind.
func (s *FileStore) SetItem(_ context.Context, key, value string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	tmp, err := os.CreateTemp(s.dir, "item-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(value); err != nil {
		tmp.Close()
		return fmt.Errorf("write item [%s]: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close item [%s]: %w", key, err)
	}
	if err := os.Rename(tmp.Name(), s.keyPath(key)); err != nil {
		return fmt.Errorf("store item [%s]: %w", key, err)
	}
	return nil
}

func (s *FileStore) RemoveItem(_ context.Context, key string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if err := os.Remove(s.keyPath(key)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove item [%s]: %w", key, err)
	}
	return nil
}

type MemStore struct {
	items map[string]string
	mutex sync.RWMutex
}

func NewMemStore() *MemStore {
	return &MemStore{
		items: make(map[string]string),
	}
}

func (s *MemStore) GetItem(_ context.Context, key string) (string, bool, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	value, ok := s.items[key]
	return value, ok, nil
}

func (s *MemStore) SetItem(_ context.Context, key, value string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.items[key] = value
	return nil
}

func (s *MemStore) RemoveItem(_ context.Context, key string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	delete(s.items, key)
	return nil
}
