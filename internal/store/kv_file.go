package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// fileKV is a [KeyValue] persisted as one JSON object of string values,
// the on-disk analog of browser local storage. Every mutation rewrites the
// whole file before returning.
type fileKV struct {
	path string

	mu     sync.RWMutex
	values map[string]string
}

// NewFileKV opens the store at path, loading existing values. A missing
// file is treated as empty and created on the first write.
func NewFileKV(path string) (KeyValue, error) {
	s := &fileKV{
		path:   path,
		values: make(map[string]string),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *fileKV) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.values[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	return []byte(v), nil
}

func (s *fileKV) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, existed := s.values[key]
	s.values[key] = string(value)
	if err := s.persist(); err != nil {
		if existed {
			s.values[key] = prev
		} else {
			delete(s.values, key)
		}
		return err
	}
	return nil
}

func (s *fileKV) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, existed := s.values[key]
	if !existed {
		return nil
	}

	delete(s.values, key)
	if err := s.persist(); err != nil {
		s.values[key] = prev
		return err
	}
	return nil
}

func (s *fileKV) Close() error {
	return nil
}

func (s *fileKV) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read storage file: %w", err)
	}

	if len(data) == 0 {
		return nil
	}

	if err = json.Unmarshal(data, &s.values); err != nil {
		return fmt.Errorf("%w: decode storage file: %w", ErrCorruptedData, err)
	}
	if s.values == nil {
		s.values = make(map[string]string)
	}

	return nil
}

// persist writes to a temporary file in the same directory and renames it
// over the target, so readers never observe a half-written file.
func (s *fileKV) persist() error {
	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create storage dir: %w", err)
		}
	}

	payload, err := json.MarshalIndent(s.values, "", "  ")
	if err != nil {
		return fmt.Errorf("encode storage: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp storage file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err = tmp.Write(payload); err != nil {
		tmp.Close()
		return fmt.Errorf("write storage file: %w", err)
	}
	if err = tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return fmt.Errorf("chmod storage file: %w", err)
	}
	// data must reach the disk before the rename makes it visible
	if err = tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync storage file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close storage file: %w", err)
	}

	if err = os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("replace storage file: %w", err)
	}

	return nil
}
