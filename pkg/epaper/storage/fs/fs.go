package fs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/presslayer/epaper-studio/pkg/epaper"
)

// Store is a filesystem implementation of the epaper.AssetStore interface.
// Keys map directly to paths under the base directory.
type Store struct {
	baseDir string
}

// Config options for the filesystem asset store
type Config struct {
	BaseDir string // Base directory for storing assets
}

// New creates a new filesystem asset store
func New(config Config) (epaper.AssetStore, error) {
	if config.BaseDir == "" {
		return nil, errors.New("base directory is required")
	}

	if err := os.MkdirAll(config.BaseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create base directory: %w", err)
	}

	return &Store{baseDir: config.BaseDir}, nil
}

// Upload stores an asset directly on the filesystem
func (s *Store) Upload(ctx context.Context, key string, reader io.Reader) error {
	filePath := filepath.Join(s.baseDir, key)

	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, reader); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}

// UploadWithParams stores an asset with additional parameters.
// The filesystem store does not persist MIME types; they are detected on read.
func (s *Store) UploadWithParams(ctx context.Context, reader io.Reader, params epaper.UploadParams) error {
	return s.Upload(ctx, params.Key, reader)
}

// Download retrieves an asset directly from the filesystem
func (s *Store) Download(ctx context.Context, key string) (io.ReadCloser, error) {
	file, err := os.Open(filepath.Join(s.baseDir, key))
	if os.IsNotExist(err) {
		return nil, epaper.ErrAssetNotFound
	} else if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	return file, nil
}

// Delete deletes an asset from the filesystem
func (s *Store) Delete(ctx context.Context, key string) error {
	filePath := filepath.Join(s.baseDir, key)

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return epaper.ErrAssetNotFound
	}

	if err := os.Remove(filePath); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}

	s.cleanupEmptyDirectories(filepath.Dir(filePath))

	return nil
}

// GetAssetMeta retrieves metadata for an asset on the filesystem
func (s *Store) GetAssetMeta(ctx context.Context, key string) (*epaper.AssetMeta, error) {
	filePath := filepath.Join(s.baseDir, key)

	info, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		return nil, epaper.ErrAssetNotFound
	} else if err != nil {
		return nil, fmt.Errorf("failed to get file info: %w", err)
	}

	contentType := "application/octet-stream"
	if file, err := os.Open(filePath); err == nil {
		defer file.Close()
		buffer := make([]byte, 512)
		if n, err := file.Read(buffer); err == nil {
			contentType = http.DetectContentType(buffer[:n])
		}
	}

	return &epaper.AssetMeta{
		Key:         key,
		Size:        info.Size(),
		ContentType: contentType,
		UpdatedAt:   info.ModTime(),
	}, nil
}

// cleanupEmptyDirectories recursively removes empty directories up to baseDir
func (s *Store) cleanupEmptyDirectories(dir string) {
	if dir == s.baseDir {
		return
	}

	if entries, err := os.ReadDir(dir); err == nil && len(entries) == 0 {
		if os.Remove(dir) == nil {
			s.cleanupEmptyDirectories(filepath.Dir(dir))
		}
	}
}
