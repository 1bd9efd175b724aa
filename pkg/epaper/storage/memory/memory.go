package memory

import (
	"bytes"
	"context"
	"io"
	"sync"
	"time"

	"github.com/presslayer/epaper-studio/pkg/epaper"
)

// Store is an in-memory implementation of the epaper.AssetStore interface
type Store struct {
	mu        sync.RWMutex
	assets    map[string][]byte
	mimeTypes map[string]string
	updatedAt map[string]time.Time
}

// New creates a new in-memory asset store
func New() epaper.AssetStore {
	return &Store{
		assets:    make(map[string][]byte),
		mimeTypes: make(map[string]string),
		updatedAt: make(map[string]time.Time),
	}
}

// Upload stores an asset directly
func (s *Store) Upload(ctx context.Context, key string, reader io.Reader) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.assets[key] = data
	s.updatedAt[key] = time.Now().UTC()
	// Set default MIME type if not set
	if _, exists := s.mimeTypes[key]; !exists {
		s.mimeTypes[key] = "application/octet-stream"
	}
	return nil
}

// UploadWithParams stores an asset with an explicit MIME type
func (s *Store) UploadWithParams(ctx context.Context, reader io.Reader, params epaper.UploadParams) error {
	if err := s.Upload(ctx, params.Key, reader); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if params.MimeType != "" {
		s.mimeTypes[params.Key] = params.MimeType
	}
	return nil
}

// Download retrieves an asset directly
func (s *Store) Download(ctx context.Context, key string) (io.ReadCloser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, exists := s.assets[key]
	if !exists {
		return nil, epaper.ErrAssetNotFound
	}

	return io.NopCloser(bytes.NewReader(data)), nil
}

// Delete deletes an asset
func (s *Store) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.assets[key]; !exists {
		return epaper.ErrAssetNotFound
	}

	delete(s.assets, key)
	delete(s.mimeTypes, key)
	delete(s.updatedAt, key)
	return nil
}

// GetAssetMeta retrieves metadata for a stored asset
func (s *Store) GetAssetMeta(ctx context.Context, key string) (*epaper.AssetMeta, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, exists := s.assets[key]
	if !exists {
		return nil, epaper.ErrAssetNotFound
	}

	return &epaper.AssetMeta{
		Key:         key,
		Size:        int64(len(data)),
		ContentType: s.mimeTypes[key],
		UpdatedAt:   s.updatedAt[key],
	}, nil
}
