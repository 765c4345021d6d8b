package persistence

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/dfryer1193/memestack/storage/domain"
	"github.com/rs/zerolog/log"
)

var _ domain.BlobStore = (*FileBlobStore)(nil)

// FileBlobStore keeps one file per key under a directory. It backs STORAGE_BACKEND=file.
type FileBlobStore struct {
	dir string
}

func NewFileBlobStore(dir string) *FileBlobStore {
	return &FileBlobStore{
		dir: dir,
	}
}

// Ensure creates the storage directory if it does not exist.
func (s *FileBlobStore) Ensure(context.Context) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("failed to create storage directory: %w", err)
	}
	log.Info().Str("dir", s.dir).Msg("Storage directory ready")
	return nil
}

func (s *FileBlobStore) Put(_ context.Context, key string, data []byte) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}

	// Write then rename so readers never see a partial file.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write blob file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to move blob file into place: %w", err)
	}
	return nil
}

func (s *FileBlobStore) Get(_ context.Context, key string) ([]byte, error) {
	path, err := s.path(key)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("get %s: %w", key, domain.ErrKeyNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read blob file: %w", err)
	}
	return data, nil
}

func (s *FileBlobStore) Delete(_ context.Context, key string) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}

	err = os.Remove(path)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("delete %s: %w", key, domain.ErrKeyNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to remove blob file: %w", err)
	}
	return nil
}

// path maps key to a file directly inside dir. Keys that would escape it are rejected.
func (s *FileBlobStore) path(key string) (string, error) {
	if key == "" || key == "." || key == ".." || strings.ContainsAny(key, `/\`) || strings.HasSuffix(key, ".tmp") {
		return "", fmt.Errorf("key %q: %w", key, domain.ErrUnsafeKey)
	}
	return filepath.Join(s.dir, key), nil
}
