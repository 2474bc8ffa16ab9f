package storage

import (
	"context"
	"fmt"
	"io"
)

// Storage stores uploaded files under slash-separated keys.
type Storage interface {
	// Save stores a file at the given path
	Save(ctx context.Context, path string, reader io.Reader, contentType string) error

	// Delete removes a file; a missing file is not an error
	Delete(ctx context.Context, path string) error

	// Exists checks if a file exists at the given path
	Exists(ctx context.Context, path string) (bool, error)

	// GetURL returns the public URL for the file
	GetURL(ctx context.Context, path string) (string, error)
}

// Config holds storage configuration
type Config struct {
	Type      string // local, s3
	BasePath  string // For local storage
	BaseURL   string // Public URL base
	Bucket    string // For S3
	Region    string // For S3
	AccessKey string // For S3
	SecretKey string // For S3
	Endpoint  string // S3-compatible endpoint (MinIO, R2)
}

// NewStorage creates a storage backend based on configuration
func NewStorage(ctx context.Context, cfg Config) (Storage, error) {
	switch cfg.Type {
	case "", "local":
		return NewLocalStorage(cfg)
	case "s3":
		return NewS3Storage(ctx, cfg)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}
