// Package storage provides the persistent key-value store and the
// recipe collection that lives on top of it.
package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"flashrecipe/internal/domain"
	"flashrecipe/internal/logger"
)

// Compile-time interface check.
var _ domain.KeyValue = (*FileKV)(nil)

// FileKV stores each key as a JSON file under a directory. Writes are
// atomic: a temp file is written and renamed over the target, so a
// crash mid-write never leaves a truncated value behind.
type FileKV struct {
	dir string
	log *logger.Logger
}

// NewFileKV creates the directory if needed and returns a store rooted
// at dir.
func NewFileKV(dir string, log *logger.Logger) (*FileKV, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}
	return &FileKV{dir: dir, log: log}, nil
}

func (s *FileKV) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Read returns the value stored under key, or domain.ErrNotFound if the
// key is absent.
func (s *FileKV) Read(ctx context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(s.path(key))
	if errors.Is(err, os.ErrNotExist) {
		s.log.Debug("kv: key absent: %s", key)
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reading key %s: %w", key, err)
	}
	return data, nil
}

// Write stores value under key, replacing any previous value.
func (s *FileKV) Write(ctx context.Context, key string, value []byte) error {
	target := s.path(key)
	tmp, err := os.CreateTemp(s.dir, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("writing key %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replacing key %s: %w", key, err)
	}
	s.log.Debug("kv: wrote %s (%d bytes)", key, len(value))
	return nil
}

// Delete removes a key. Deleting an absent key is not an error.
func (s *FileKV) Delete(ctx context.Context, key string) error {
	err := os.Remove(s.path(key))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("deleting key %s: %w", key, err)
	}
	return nil
}
