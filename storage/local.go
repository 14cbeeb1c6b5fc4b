package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// LocalStore implements ArchiveStore on the local filesystem
type LocalStore struct {
	basePath string
}

// NewLocalStore creates a local archive store rooted at basePath
func NewLocalStore(basePath string) (*LocalStore, error) {
	// Create base directory if it doesn't exist
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create archive directory: %w", err)
	}

	return &LocalStore{
		basePath: basePath,
	}, nil
}

// Put stores an artifact locally
func (s *LocalStore) Put(ctx context.Context, runID uuid.UUID, name string, data io.Reader) (string, error) {
	key := archivePath(runID, name)
	fullPath := filepath.Join(s.basePath, key)

	// Create directory structure
	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create artifact: %w", err)
	}
	defer file.Close()

	_, err = io.Copy(file, data)
	if err != nil {
		os.Remove(fullPath) // Clean up on error
		return "", fmt.Errorf("failed to write artifact: %w", err)
	}

	return key, nil
}

// Get retrieves an artifact from the local archive
func (s *LocalStore) Get(ctx context.Context, archivePath string) (io.ReadCloser, error) {
	fullPath := filepath.Join(s.basePath, archivePath)

	file, err := os.Open(fullPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("artifact not found: %s", archivePath)
		}
		return nil, fmt.Errorf("failed to open artifact: %w", err)
	}

	return file, nil
}

// Delete removes an artifact from the local archive
func (s *LocalStore) Delete(ctx context.Context, archivePath string) error {
	fullPath := filepath.Join(s.basePath, archivePath)

	err := os.Remove(fullPath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete artifact: %w", err)
	}

	return nil
}
