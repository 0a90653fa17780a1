package storage

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
)

// LocalBackend stores one file per key under a base directory
type LocalBackend struct {
	baseDir string
}

// NewLocalBackend creates a filesystem backend rooted at baseDir
func NewLocalBackend(baseDir string) *LocalBackend {
	return &LocalBackend{baseDir: baseDir}
}

// path escapes the key so it always maps to a single file inside baseDir
func (l *LocalBackend) path(key string) string {
	return filepath.Join(l.baseDir, url.PathEscape(key)+".json")
}

func (l *LocalBackend) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(l.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return data, nil
}

// Set writes to a temporary file and renames it so readers never see a partial document
func (l *LocalBackend) Set(ctx context.Context, key string, value []byte) error {
	if err := os.MkdirAll(l.baseDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	fullPath := l.path(key)
	tmp := fullPath + ".tmp"
	if err := os.WriteFile(tmp, value, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	if err := os.Rename(tmp, fullPath); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace file: %w", err)
	}
	return nil
}

func (l *LocalBackend) Remove(ctx context.Context, key string) error {
	if err := os.Remove(l.path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}
