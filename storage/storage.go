package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
)

// ArchiveStore persists ingestion artifacts: the chunk batches written per
// run and the raw documents they were derived from. Paths returned by Put
// are opaque keys, valid for Get and Delete on the same store.
type ArchiveStore interface {
	// Put stores an artifact for an ingestion run and returns its archive path
	Put(ctx context.Context, runID uuid.UUID, name string, data io.Reader) (string, error)

	// Get retrieves an artifact by archive path
	Get(ctx context.Context, archivePath string) (io.ReadCloser, error)

	// Delete removes an artifact by archive path
	Delete(ctx context.Context, archivePath string) error
}

// BackendType selects the archive backend
type BackendType string

const (
	BackendLocal BackendType = "local"
	BackendS3    BackendType = "s3"
)

// Config holds archive store configuration
type Config struct {
	Backend      BackendType
	LocalPath    string // for local archives
	S3Bucket     string // for S3 archives
	S3Region     string // for S3 archives
	AWSAccessKey string
	AWSSecretKey string
}

// New creates an archive store from configuration
func New(cfg Config) (ArchiveStore, error) {
	switch cfg.Backend {
	case BackendLocal:
		return NewLocalStore(cfg.LocalPath)
	case BackendS3:
		return NewS3Store(cfg)
	default:
		return nil, fmt.Errorf("unknown archive backend: %s", cfg.Backend)
	}
}

// NewFromEnv creates an archive store from environment variables
func NewFromEnv() (ArchiveStore, error) {
	backend := os.Getenv("ARCHIVE_BACKEND")
	if backend == "" {
		backend = "local" // Default to local for development
	}

	cfg := Config{
		Backend: BackendType(backend),
	}

	switch BackendType(backend) {
	case BackendLocal:
		localPath := os.Getenv("ARCHIVE_LOCAL_PATH")
		if localPath == "" {
			localPath = "./data/archive" // Default archive path
		}
		cfg.LocalPath = localPath
		return NewLocalStore(cfg.LocalPath)

	case BackendS3:
		cfg.S3Bucket = os.Getenv("AWS_S3_BUCKET")
		cfg.S3Region = os.Getenv("AWS_REGION")
		if cfg.S3Region == "" {
			cfg.S3Region = "us-east-1" // Default region
		}
		cfg.AWSAccessKey = os.Getenv("AWS_ACCESS_KEY_ID")
		cfg.AWSSecretKey = os.Getenv("AWS_SECRET_ACCESS_KEY")

		if cfg.S3Bucket == "" {
			return nil, errors.New("AWS_S3_BUCKET environment variable is required for S3 archives")
		}

		return NewS3Store(cfg)

	default:
		return nil, fmt.Errorf("unknown archive backend: %s", backend)
	}
}

// archivePath builds a unique archive key for a run artifact. The runID
// segment groups one ingestion run's artifacts together.
func archivePath(runID uuid.UUID, name string) string {
	// Sanitize artifact name
	name = strings.ReplaceAll(name, " ", "_")
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")

	return fmt.Sprintf("runs/%s/%s", runID.String(), name)
}
